package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/collectors"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "github.com/spf13/cobra"
    "go.uber.org/zap"

    httpadapter "xeni/internal/adapters/http"
    "xeni/internal/adapters/kafka"
    "xeni/internal/adapters/memory"
    pg "xeni/internal/adapters/postgres"
    "xeni/internal/adapters/redis"
    "xeni/internal/catalog"
    "xeni/internal/config"
    "xeni/internal/metrics"
    "xeni/internal/ports"
    "xeni/internal/services/checklist"
    "xeni/internal/services/dashboard"
    "xeni/internal/services/drafts"
    "xeni/internal/services/issues"
    "xeni/internal/workers/healthrunner"
)

var serveCmd = &cobra.Command{
    Use:   "serve",
    Short: "Start the HTTP API and the health recompute workers",
    Long: `Serves the case health API on LISTEN_ADDR.

Postgres is used when DATABASE_URL is set, otherwise cases live in memory and
are seeded from FIXTURES_PATH or the built-in demo cases. REDIS_ADDR enables
the shared report cache and KAFKA_BROKERS enables tier change events.`,
    RunE: runServe,
}

// store is everything the services and workers read and write.
type store interface {
    ports.CaseRepository
    ports.DocumentRepository
    ports.IssueRepository
    ports.JobRepository
    ports.SnapshotRepository
}

func runServe(cmd *cobra.Command, _ []string) error {
    cfg, log, err := setup()
    if err != nil { return err }
    defer func() { _ = log.Sync() }()

    ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    cat, err := catalog.Load(cfg.CatalogPath)
    if err != nil { return err }
    log.Info("evidence catalog loaded", zap.Strings("visa_types", cat.VisaTypes()))

    st, closeStore, err := openStore(ctx, cfg, log)
    if err != nil { return err }
    defer closeStore()

    reg := prometheus.NewRegistry()
    reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
    m := metrics.New(reg)

    var cache ports.ReportCache = memory.NewCache(cfg.CacheTTL, time.Minute)
    if cfg.RedisAddr != "" {
        rc, err := redis.Connect(ctx, cfg.RedisAddr)
        if err != nil {
            return fmt.Errorf("redis connect: %w", err)
        }
        defer rc.Close()
        cache = rc
        log.Info("report cache: redis", zap.String("addr", cfg.RedisAddr))
    }

    var events ports.EventPublisher = memory.NewEvents(1000)
    if len(cfg.KafkaBrokers) > 0 {
        p := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
        defer p.Close()
        events = p
        log.Info("tier events: kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
    }

    dash := dashboard.New(dashboard.Repos{Cases: st, Documents: st, Issues: st, Snapshots: st},
        cat, m, log.Named("dashboard"), dashboard.WithCache(cache, cfg.CacheTTL))
    processor := healthrunner.Recomputer{Evaluator: dash, Snapshots: st, Events: events, Metrics: m, Log: log.Named("recompute")}

    srv := httpadapter.New(httpadapter.Deps{
        Dashboard:   dash,
        Snapshots:   dash,
        Checklist:   checklist.New(dash),
        Issues:      issues.New(st, st, st, m, log.Named("issues")),
        Drafts:      drafts.New(dash),
        Jobs:        st,
        Processor:   processor,
        Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
        CORSOrigins: cfg.CORSOrigins,
        Log:         log.Named("http"),
    })

    // the store is closed by a deferred call, so every return below waits for workersDone first
    workersDone := healthrunner.Run(ctx, st, processor, cfg.HealthWorkers, cfg.PollInterval, m, log.Named("worker"))
    if cfg.HealthWorkers > 0 {
        log.Info("health workers started", zap.Int("count", cfg.HealthWorkers))
    }

    hs := &http.Server{Addr: cfg.ListenAddr, Handler: srv.Routes(), ReadHeaderTimeout: 10 * time.Second}
    errCh := make(chan error, 1)
    go func() { errCh <- hs.ListenAndServe() }()
    log.Info("listening", zap.String("addr", cfg.ListenAddr))

    select {
    case <-ctx.Done():
        log.Info("shutting down")
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        err := hs.Shutdown(shutdownCtx)
        <-workersDone
        return err
    case err := <-errCh:
        stop()
        <-workersDone
        if errors.Is(err, http.ErrServerClosed) {
            return nil
        }
        return fmt.Errorf("server error: %w", err)
    }
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (store, func(), error) {
    if cfg.DatabaseURL == "" {
        bundles, err := loadFixtures(cfg.FixturesPath)
        if err != nil {
            return nil, nil, err
        }
        st := memory.NewStore()
        st.Seed(bundles...)
        log.Info("in-memory store seeded", zap.Int("cases", len(bundles)))
        return st, func() {}, nil
    }

    db, err := pg.Connect(ctx, cfg.DatabaseURL, log.Named("postgres"))
    if err != nil {
        return nil, nil, fmt.Errorf("db connect: %w", err)
    }
    if err := db.Migrate(ctx); err != nil {
        db.Close()
        return nil, nil, err
    }
    if cfg.FixturesPath != "" {
        bundles, err := memory.LoadBundles(cfg.FixturesPath)
        if err != nil {
            db.Close()
            return nil, nil, err
        }
        for _, b := range bundles {
            if err := db.SeedBundle(ctx, b); err != nil {
                db.Close()
                return nil, nil, err
            }
        }
    }
    return db, db.Close, nil
}
