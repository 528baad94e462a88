package main

import (
    "errors"

    "github.com/spf13/cobra"
    "go.uber.org/zap"

    pg "xeni/internal/adapters/postgres"
    "xeni/internal/adapters/memory"
    "xeni/internal/domain"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
    Use:   "migrate",
    Short: "Apply database migrations",
    Long: `Applies the embedded goose migrations to DATABASE_URL. With --seed the
cases in FIXTURES_PATH (or the built-in demo cases) are upserted afterwards.`,
    RunE: runMigrate,
}

func init() {
    migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "upsert fixture cases after migrating")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
    cfg, log, err := setup()
    if err != nil { return err }
    defer func() { _ = log.Sync() }()
    if cfg.DatabaseURL == "" {
        return errors.New("DATABASE_URL is required to migrate")
    }

    ctx := cmd.Context()
    db, err := pg.Connect(ctx, cfg.DatabaseURL, log)
    if err != nil { return err }
    defer db.Close()

    if err := db.Migrate(ctx); err != nil { return err }
    if !migrateSeed { return nil }

    bundles, err := loadFixtures(cfg.FixturesPath)
    if err != nil { return err }
    for _, b := range bundles {
        if err := db.SeedBundle(ctx, b); err != nil { return err }
    }
    log.Info("seeded cases", zap.Int("count", len(bundles)))
    return nil
}

func loadFixtures(path string) ([]domain.CaseBundle, error) {
    if path == "" {
        return memory.DemoBundles()
    }
    return memory.LoadBundles(path)
}
