package postgres

import (
    "context"
    "errors"
    "time"

    "github.com/jackc/pgx/v5"

    "xeni/internal/ports"
)

var _ ports.JobRepository = (*DB)(nil)

func (db *DB) Enqueue(ctx context.Context, caseID string) (string, error) {
    var id string
    err := db.Pool.QueryRow(ctx, `INSERT INTO health_jobs (case_id) VALUES ($1) RETURNING id::text`, caseID).Scan(&id)
    return id, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.HealthJob, found bool, err error) {
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return job, false, err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    err = tx.QueryRow(ctx, `
        SELECT id::text, case_id FROM health_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.CaseID)
    if errors.Is(err, pgx.ErrNoRows) {
        return job, false, nil
    }
    if err != nil { return job, false, err }

    if _, err = tx.Exec(ctx, `
        UPDATE health_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
        return job, false, err
    }
    return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    return db.finish(ctx, jobID, "completed", "")
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    return db.finish(ctx, jobID, "failed", reason)
}

func (db *DB) finish(ctx context.Context, jobID, status, reason string) error {
    tag, err := db.Pool.Exec(ctx, `
        UPDATE health_jobs SET status=$2, reason=$3, finished_at=now() WHERE id=$1
    `, jobID, status, reason)
    if err != nil {
        return err
    }
    if tag.RowsAffected() == 0 {
        return ports.ErrNotFound
    }
    return nil
}

// StartJobForCase claims the queued job for a case, or creates a running one
// when nothing is queued, and returns its id.
func (db *DB) StartJobForCase(ctx context.Context, caseID string) (jobID string, err error) {
    tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
    if err != nil { return "", err }
    defer func() {
        if err != nil { _ = tx.Rollback(ctx) } else { _ = tx.Commit(ctx) }
    }()

    err = tx.QueryRow(ctx, `
        SELECT id::text FROM health_jobs
        WHERE case_id = $1 AND status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, caseID).Scan(&jobID)
    if errors.Is(err, pgx.ErrNoRows) {
        err = tx.QueryRow(ctx, `
            INSERT INTO health_jobs (case_id, status, started_at, attempts)
            VALUES ($1, 'running', now(), 1) RETURNING id::text
        `, caseID).Scan(&jobID)
        return jobID, err
    }
    if err != nil { return "", err }
    if _, err = tx.Exec(ctx, `UPDATE health_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1`, jobID); err != nil {
        return "", err
    }
    return jobID, nil
}
