package healthrunner

import (
    "context"
    "fmt"
    "sync"
    "time"

    "go.uber.org/zap"

    "xeni/internal/health"
    "xeni/internal/metrics"
    "xeni/internal/ports"
)

// JobProcessor performs the work for a job's case id.
type JobProcessor interface {
    Process(ctx context.Context, caseID string) error
}

// Evaluator produces the current report for a case.
type Evaluator interface {
    Health(ctx context.Context, caseID string) (health.Report, error)
}

// Recomputer evaluates a case, stores the result as a snapshot and announces
// tier changes.
type Recomputer struct {
    Evaluator Evaluator
    Snapshots ports.SnapshotRepository
    Events    ports.EventPublisher
    Metrics   *metrics.Metrics
    Log       *zap.Logger
}

func (r Recomputer) Process(ctx context.Context, caseID string) error {
    report, err := r.Evaluator.Health(ctx, caseID)
    if err != nil {
        return fmt.Errorf("evaluate %s: %w", caseID, err)
    }
    prev, found, err := r.Snapshots.LatestSnapshot(ctx, caseID)
    if err != nil {
        return fmt.Errorf("previous snapshot %s: %w", caseID, err)
    }
    snap := ports.Snapshot{
        CaseID:         caseID,
        Score:          report.Score,
        Tier:           report.Tier,
        Responsibility: report.Responsibility,
        Fingerprint:    report.Fingerprint,
        ComputedAt:     report.ComputedAt,
    }
    if err := r.Snapshots.SaveSnapshot(ctx, snap); err != nil {
        return fmt.Errorf("save snapshot %s: %w", caseID, err)
    }
    if !found || prev.Tier == report.Tier {
        return nil
    }

    evt := ports.TierChanged{
        CaseID:         caseID,
        From:           prev.Tier,
        To:             report.Tier,
        Score:          report.Score,
        Responsibility: report.Responsibility,
        At:             report.ComputedAt,
    }
    // The snapshot is already stored; a lost event is logged, not retried.
    if err := r.Events.PublishTierChanged(ctx, evt); err != nil {
        r.Metrics.Events.WithLabelValues("tier_changed", "error").Inc()
        r.Log.Error("publish tier change", zap.String("case_id", caseID), zap.Error(err))
        return nil
    }
    r.Metrics.Events.WithLabelValues("tier_changed", "ok").Inc()
    r.Log.Info("case tier changed",
        zap.String("case_id", caseID),
        zap.String("from", string(prev.Tier)),
        zap.String("to", string(report.Tier)),
        zap.Int("score", report.Score))
    return nil
}

// Run starts worker goroutines that claim jobs and process them. It returns
// immediately; workers stop when ctx is cancelled, and the returned channel is
// closed once every in-flight job has finished.
func Run(ctx context.Context, repo ports.JobRepository, processor JobProcessor, concurrency int, pollInterval time.Duration, m *metrics.Metrics, log *zap.Logger) <-chan struct{} {
    done := make(chan struct{})
    if concurrency < 1 {
        close(done)
        return done
    }
    jobsCh := make(chan ports.HealthJob, concurrency)

    // dispatcher loop
    go func() {
        ticker := time.NewTicker(pollInterval)
        defer ticker.Stop()
        defer close(jobsCh)
        for {
            select {
            case <-ctx.Done():
                return
            case <-ticker.C:
                for {
                    job, found, err := repo.ClaimNext(ctx)
                    if err != nil {
                        if ctx.Err() == nil {
                            log.Warn("job claim error", zap.Error(err))
                        }
                        break
                    }
                    if !found { break }
                    select {
                    case jobsCh <- job:
                    case <-ctx.Done():
                        return
                    }
                }
            }
        }
    }()

    // workers
    var wg sync.WaitGroup
    for i := 0; i < concurrency; i++ {
        wg.Add(1)
        go func(idx int) {
            defer wg.Done()
            wlog := log.With(zap.Int("worker", idx))
            for job := range jobsCh {
                runJob(ctx, repo, processor, job, m, wlog)
            }
        }(i)
    }
    go func() {
        wg.Wait()
        close(done)
    }()
    return done
}

func runJob(ctx context.Context, repo ports.JobRepository, processor JobProcessor, job ports.HealthJob, m *metrics.Metrics, log *zap.Logger) {
    start := time.Now()
    defer func() { m.JobDuration.Observe(time.Since(start).Seconds()) }()

    if err := processor.Process(ctx, job.CaseID); err != nil {
        m.Jobs.WithLabelValues("failed").Inc()
        if merr := repo.MarkFailed(ctx, job.ID, err.Error()); merr != nil {
            log.Error("mark failed", zap.String("job_id", job.ID), zap.Error(merr))
        }
        log.Warn("job failed", zap.String("job_id", job.ID), zap.String("case_id", job.CaseID), zap.Error(err))
        return
    }
    m.Jobs.WithLabelValues("completed").Inc()
    if err := repo.MarkCompleted(ctx, job.ID); err != nil {
        log.Error("complete err", zap.String("job_id", job.ID), zap.Error(err))
    }
}

// ProcessInline recomputes a specific case synchronously using the same
// processor logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor JobProcessor, caseID string) error {
    jobID, err := repo.StartJobForCase(ctx, caseID)
    if err != nil { return err }
    if err := processor.Process(ctx, caseID); err != nil {
        _ = repo.MarkFailed(ctx, jobID, err.Error())
        return err
    }
    return repo.MarkCompleted(ctx, jobID)
}
