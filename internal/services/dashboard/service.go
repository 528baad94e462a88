package dashboard

import (
    "context"
    "errors"
    "fmt"
    "time"

    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "xeni/internal/catalog"
    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/metrics"
    "xeni/internal/ports"
)

// Repos are the data sources a report is built from.
type Repos struct {
    Cases     ports.CaseRepository
    Documents ports.DocumentRepository
    Issues    ports.IssueRepository
    Snapshots ports.SnapshotRepository
}

type Service struct {
    repos    Repos
    catalog  *catalog.Catalog
    memo     *health.Memo
    cache    ports.ReportCache
    cacheTTL time.Duration
    metrics  *metrics.Metrics
    log      *zap.Logger
    now      func() time.Time
}

type Option func(*Service)

// WithCache adds a shared report cache keyed on the case version.
func WithCache(c ports.ReportCache, ttl time.Duration) Option {
    return func(s *Service) { s.cache, s.cacheTTL = c, ttl }
}

func WithClock(now func() time.Time) Option {
    return func(s *Service) { s.now = now }
}

func New(repos Repos, cat *catalog.Catalog, m *metrics.Metrics, log *zap.Logger, opts ...Option) *Service {
    s := &Service{repos: repos, catalog: cat, metrics: m, log: log, now: time.Now}
    for _, o := range opts {
        o(s)
    }
    s.memo = health.NewMemo(s.now)
    return s
}

// Health returns the current report for a case. A report cached for the same
// case version and deadline distance is served without loading documents and issues.
func (s *Service) Health(ctx context.Context, caseID string) (health.Report, error) {
    c, err := s.repos.Cases.GetCase(ctx, caseID)
    if err != nil {
        return health.Report{}, fmt.Errorf("get case %s: %w", caseID, err)
    }

    key := cacheKey(c, s.now())
    if s.cache != nil {
        r, found, err := s.cache.GetReport(ctx, key)
        if err != nil {
            s.log.Warn("report cache read failed", zap.String("case_id", caseID), zap.Error(err))
        }
        s.metrics.ObserveLookup("cache", found)
        if found {
            return r, nil
        }
    }

    b, err := s.load(ctx, c)
    if err != nil {
        return health.Report{}, err
    }
    r, hit := s.memo.Evaluate(b, s.slotsFor(c))
    s.metrics.ObserveLookup("memo", hit)
    if !hit {
        s.metrics.Evaluations.WithLabelValues(string(r.Tier)).Inc()
        s.metrics.Scores.Observe(float64(r.Score))
        s.log.Debug("case evaluated",
            zap.String("case_id", caseID),
            zap.Int("score", r.Score),
            zap.String("tier", string(r.Tier)),
            zap.String("responsibility", string(r.Responsibility)))
    }

    if s.cache != nil {
        if err := s.cache.SetReport(ctx, key, r, s.cacheTTL); err != nil {
            s.log.Warn("report cache write failed", zap.String("case_id", caseID), zap.Error(err))
        }
    }
    return r, nil
}

// Bundle loads the case with its current documents and issues.
func (s *Service) Bundle(ctx context.Context, caseID string) (domain.CaseBundle, error) {
    c, err := s.repos.Cases.GetCase(ctx, caseID)
    if err != nil {
        return domain.CaseBundle{}, fmt.Errorf("get case %s: %w", caseID, err)
    }
    return s.load(ctx, c)
}

// Latest returns the last persisted snapshot for a case.
func (s *Service) Latest(ctx context.Context, caseID string) (ports.Snapshot, error) {
    snap, found, err := s.repos.Snapshots.LatestSnapshot(ctx, caseID)
    if err != nil {
        return ports.Snapshot{}, fmt.Errorf("latest snapshot %s: %w", caseID, err)
    }
    if !found {
        return ports.Snapshot{}, ports.ErrNotFound
    }
    return snap, nil
}

func (s *Service) load(ctx context.Context, c domain.Case) (domain.CaseBundle, error) {
    b := domain.CaseBundle{Case: c}
    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        docs, err := s.repos.Documents.ListDocuments(gctx, c.ID)
        if err != nil {
            return fmt.Errorf("list documents %s: %w", c.ID, err)
        }
        b.Documents = docs
        return nil
    })
    g.Go(func() error {
        issues, err := s.repos.Issues.ListIssues(gctx, c.ID)
        if err != nil {
            return fmt.Errorf("list issues %s: %w", c.ID, err)
        }
        b.Issues = issues
        return nil
    })
    if err := g.Wait(); err != nil {
        return domain.CaseBundle{}, err
    }
    return b, nil
}

// slotsFor returns the catalog templates for the case's visa type. An unknown
// visa type still gets a score, just without sections.
func (s *Service) slotsFor(c domain.Case) []domain.EvidenceSlotTemplate {
    slots, err := s.catalog.SlotsFor(c.VisaType)
    if errors.Is(err, catalog.ErrUnknownVisaType) {
        s.log.Warn("no evidence catalog for visa type", zap.String("case_id", c.ID), zap.String("visa_type", c.VisaType))
        return nil
    }
    return slots
}

func cacheKey(c domain.Case, now time.Time) string {
    return fmt.Sprintf("health:%s:%d:%d", c.ID, c.UpdatedAt.UnixNano(), health.DaysUntil(c.Deadline, now))
}
