package issues

import (
    "context"
    "errors"
    "fmt"
    "time"

    "go.uber.org/zap"

    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/metrics"
    "xeni/internal/ports"
)

var (
    ErrAlreadyResolved = errors.New("issue already resolved")
    ErrInvalidFilter   = errors.New("invalid issue filter")
)

type Service struct {
    cases   ports.CaseRepository
    issues  ports.IssueRepository
    jobs    ports.JobRepository
    metrics *metrics.Metrics
    log     *zap.Logger
    now     func() time.Time
}

func New(cases ports.CaseRepository, issues ports.IssueRepository, jobs ports.JobRepository, m *metrics.Metrics, log *zap.Logger) *Service {
    return &Service{cases: cases, issues: issues, jobs: jobs, metrics: m, log: log, now: time.Now}
}

// List returns the case's issues matching f, open and most severe first.
func (s *Service) List(ctx context.Context, caseID string, f health.IssueFilter) ([]domain.Issue, error) {
    if err := validateFilter(f); err != nil {
        return nil, err
    }
    if _, err := s.cases.GetCase(ctx, caseID); err != nil {
        return nil, fmt.Errorf("get case %s: %w", caseID, err)
    }
    all, err := s.issues.ListIssues(ctx, caseID)
    if err != nil {
        return nil, fmt.Errorf("list issues %s: %w", caseID, err)
    }
    return health.SortIssues(health.Filter(all, f)), nil
}

// Resolve moves an open issue to resolved and queues a health recompute for
// its case. Issues never reopen.
func (s *Service) Resolve(ctx context.Context, issueID string) (domain.Issue, error) {
    is, err := s.issues.GetIssue(ctx, issueID)
    if err != nil {
        return domain.Issue{}, fmt.Errorf("get issue %s: %w", issueID, err)
    }
    if !is.IsOpen() {
        return is, ErrAlreadyResolved
    }
    changed, err := s.issues.MarkResolved(ctx, issueID, s.now().UTC())
    if err != nil {
        return domain.Issue{}, fmt.Errorf("resolve issue %s: %w", issueID, err)
    }
    if !changed {
        // lost a race with another resolver
        return is, ErrAlreadyResolved
    }
    s.metrics.IssuesResolved.Inc()

    if jobID, err := s.jobs.Enqueue(ctx, is.CaseID); err != nil {
        s.log.Warn("enqueue recompute failed", zap.String("case_id", is.CaseID), zap.Error(err))
    } else {
        s.log.Info("issue resolved", zap.String("issue_id", issueID), zap.String("case_id", is.CaseID), zap.String("job_id", jobID))
    }

    return s.issues.GetIssue(ctx, issueID)
}

func validateFilter(f health.IssueFilter) error {
    switch {
    case f.Status != "" && !f.Status.Valid():
        return fmt.Errorf("%w: status %q", ErrInvalidFilter, f.Status)
    case f.Type != "" && !f.Type.Valid():
        return fmt.Errorf("%w: type %q", ErrInvalidFilter, f.Type)
    case f.Severity != "" && !f.Severity.Valid():
        return fmt.Errorf("%w: severity %q", ErrInvalidFilter, f.Severity)
    }
    return nil
}
