package ports

import (
    "context"
    "time"

    "xeni/internal/domain"
    "xeni/internal/health"
)

// Dashboard produces health reports for cases.
type Dashboard interface {
    Health(ctx context.Context, caseID string) (health.Report, error)
    Bundle(ctx context.Context, caseID string) (domain.CaseBundle, error)
}

// Checklist provides ordered section progress for a case.
type Checklist interface {
    Sections(ctx context.Context, caseID string) ([]health.SectionProgress, error)
}

// Issues lists and resolves case issues.
type Issues interface {
    List(ctx context.Context, caseID string, f health.IssueFilter) ([]domain.Issue, error)
    Resolve(ctx context.Context, issueID string) (domain.Issue, error)
}

// ReportCache keeps evaluated reports keyed by case version.
type ReportCache interface {
    GetReport(ctx context.Context, key string) (r health.Report, found bool, err error)
    SetReport(ctx context.Context, key string, r health.Report, ttl time.Duration) error
}

// TierChanged is emitted when a recomputed snapshot lands in a different tier.
type TierChanged struct {
    CaseID         string                `json:"caseId"`
    From           domain.Tier           `json:"from"`
    To             domain.Tier           `json:"to"`
    Score          int                   `json:"score"`
    Responsibility domain.Responsibility `json:"responsibility"`
    At             time.Time             `json:"at"`
}

// EventPublisher delivers case events to downstream consumers.
type EventPublisher interface {
    PublishTierChanged(ctx context.Context, evt TierChanged) error
}
