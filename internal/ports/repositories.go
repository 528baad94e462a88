package ports

import (
    "context"
    "errors"
    "time"

    "xeni/internal/domain"
)

// ErrNotFound is returned by every repository when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// CaseRepository fetches case aggregates.
type CaseRepository interface {
    GetCase(ctx context.Context, caseID string) (domain.Case, error)
}

// DocumentRepository lists the documents uploaded to a case.
type DocumentRepository interface {
    ListDocuments(ctx context.Context, caseID string) ([]domain.Document, error)
}

// IssueRepository lists and transitions detected issues.
type IssueRepository interface {
    ListIssues(ctx context.Context, caseID string) ([]domain.Issue, error)
    GetIssue(ctx context.Context, issueID string) (domain.Issue, error)
    // MarkResolved moves an open issue to resolved. It reports false when the
    // issue was already resolved and leaves it untouched.
    MarkResolved(ctx context.Context, issueID string, at time.Time) (changed bool, err error)
}

// Snapshot is a persisted health evaluation.
type Snapshot struct {
    ID             string                `json:"id"`
    CaseID         string                `json:"caseId"`
    Score          int                   `json:"score"`
    Tier           domain.Tier           `json:"tier"`
    Responsibility domain.Responsibility `json:"responsibility"`
    Fingerprint    string                `json:"fingerprint"`
    ComputedAt     time.Time             `json:"computedAt"`
}

// SnapshotRepository stores health snapshots per case.
type SnapshotRepository interface {
    SaveSnapshot(ctx context.Context, s Snapshot) error
    LatestSnapshot(ctx context.Context, caseID string) (s Snapshot, found bool, err error)
}
