package memory

import (
    "context"
    "sort"
    "sync"
    "time"

    "github.com/google/uuid"

    "xeni/internal/domain"
    "xeni/internal/ports"
)

// Store is an in-memory implementation of every repository port. It backs
// local development and tests, seeded from fixture bundles.
type Store struct {
    mu        sync.RWMutex
    cases     map[string]domain.Case
    documents map[string][]domain.Document
    issues    map[string]domain.Issue
    jobs      map[string]*job
    jobOrder  []string
    snapshots map[string][]ports.Snapshot
    now       func() time.Time
}

type job struct {
    id     string
    caseID string
    status string // queued|running|completed|failed
    reason string
}

var (
    _ ports.CaseRepository     = (*Store)(nil)
    _ ports.DocumentRepository = (*Store)(nil)
    _ ports.IssueRepository    = (*Store)(nil)
    _ ports.JobRepository      = (*Store)(nil)
    _ ports.SnapshotRepository = (*Store)(nil)
)

func NewStore() *Store {
    return &Store{
        cases:     make(map[string]domain.Case),
        documents: make(map[string][]domain.Document),
        issues:    make(map[string]domain.Issue),
        jobs:      make(map[string]*job),
        snapshots: make(map[string][]ports.Snapshot),
        now:       time.Now,
    }
}

// Seed loads bundles, replacing any case with the same id.
func (s *Store) Seed(bundles ...domain.CaseBundle) {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, b := range bundles {
        c := b.Case
        if c.UpdatedAt.IsZero() {
            c.UpdatedAt = s.now()
        }
        s.cases[c.ID] = c
        docs := make([]domain.Document, len(b.Documents))
        for i, d := range b.Documents {
            d.CaseID = c.ID
            docs[i] = d
        }
        s.documents[c.ID] = docs
        for _, is := range b.Issues {
            is.CaseID = c.ID
            s.issues[is.ID] = is
        }
    }
}

func (s *Store) GetCase(ctx context.Context, caseID string) (domain.Case, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    c, ok := s.cases[caseID]
    if !ok {
        return domain.Case{}, ports.ErrNotFound
    }
    return c, nil
}

func (s *Store) ListDocuments(ctx context.Context, caseID string) ([]domain.Document, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return append([]domain.Document(nil), s.documents[caseID]...), nil
}

func (s *Store) ListIssues(ctx context.Context, caseID string) ([]domain.Issue, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    var out []domain.Issue
    for _, is := range s.issues {
        if is.CaseID == caseID {
            out = append(out, is)
        }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
    return out, nil
}

func (s *Store) GetIssue(ctx context.Context, issueID string) (domain.Issue, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    is, ok := s.issues[issueID]
    if !ok {
        return domain.Issue{}, ports.ErrNotFound
    }
    return is, nil
}

func (s *Store) MarkResolved(ctx context.Context, issueID string, at time.Time) (bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    is, ok := s.issues[issueID]
    if !ok {
        return false, ports.ErrNotFound
    }
    if is.Status == domain.StatusResolved {
        return false, nil
    }
    is.Status = domain.StatusResolved
    is.ResolvedAt = &at
    s.issues[issueID] = is
    if c, ok := s.cases[is.CaseID]; ok {
        c.UpdatedAt = s.now()
        s.cases[is.CaseID] = c
    }
    return true, nil
}

// Jobs

func (s *Store) Enqueue(ctx context.Context, caseID string) (string, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    s.jobs[id] = &job{id: id, caseID: caseID, status: "queued"}
    s.jobOrder = append(s.jobOrder, id)
    return id, nil
}

func (s *Store) ClaimNext(ctx context.Context) (ports.HealthJob, bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, id := range s.jobOrder {
        j := s.jobs[id]
        if j.status == "queued" {
            j.status = "running"
            return ports.HealthJob{ID: j.id, CaseID: j.caseID}, true, nil
        }
    }
    return ports.HealthJob{}, false, nil
}

func (s *Store) MarkCompleted(ctx context.Context, jobID string) error {
    return s.finish(jobID, "completed", "")
}

func (s *Store) MarkFailed(ctx context.Context, jobID string, reason string) error {
    return s.finish(jobID, "failed", reason)
}

func (s *Store) finish(jobID, status, reason string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    j, ok := s.jobs[jobID]
    if !ok {
        return ports.ErrNotFound
    }
    j.status, j.reason = status, reason
    return nil
}

// StartJobForCase claims the oldest queued job for the case, creating one if
// none is waiting.
func (s *Store) StartJobForCase(ctx context.Context, caseID string) (string, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, id := range s.jobOrder {
        j := s.jobs[id]
        if j.caseID == caseID && j.status == "queued" {
            j.status = "running"
            return j.id, nil
        }
    }
    id := uuid.NewString()
    s.jobs[id] = &job{id: id, caseID: caseID, status: "running"}
    s.jobOrder = append(s.jobOrder, id)
    return id, nil
}

// JobStatus reports a job's status and failure reason. Used by tests.
func (s *Store) JobStatus(jobID string) (status, reason string, ok bool) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    j, ok := s.jobs[jobID]
    if !ok {
        return "", "", false
    }
    return j.status, j.reason, true
}

// Snapshots

func (s *Store) SaveSnapshot(ctx context.Context, snap ports.Snapshot) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if snap.ID == "" {
        snap.ID = uuid.NewString()
    }
    s.snapshots[snap.CaseID] = append(s.snapshots[snap.CaseID], snap)
    return nil
}

func (s *Store) LatestSnapshot(ctx context.Context, caseID string) (ports.Snapshot, bool, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    snaps := s.snapshots[caseID]
    if len(snaps) == 0 {
        return ports.Snapshot{}, false, nil
    }
    return snaps[len(snaps)-1], true, nil
}
