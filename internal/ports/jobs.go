package ports

import "context"

type HealthJob struct {
    ID     string
    CaseID string
}

// JobRepository supports claiming and updating health recompute jobs.
type JobRepository interface {
    Enqueue(ctx context.Context, caseID string) (jobID string, err error)
    ClaimNext(ctx context.Context) (job HealthJob, found bool, err error)
    MarkCompleted(ctx context.Context, jobID string) error
    MarkFailed(ctx context.Context, jobID string, reason string) error
    StartJobForCase(ctx context.Context, caseID string) (jobID string, err error)
}
