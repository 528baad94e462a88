package postgres

import (
    "context"
    "embed"
    "fmt"

    "github.com/jackc/pgx/v5/stdlib"
    "github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
    sqlDB := stdlib.OpenDBFromPool(db.Pool)
    defer sqlDB.Close()

    provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, mustSub(migrations, "migrations"))
    if err != nil {
        return fmt.Errorf("goose provider: %w", err)
    }
    results, err := provider.Up(ctx)
    if err != nil {
        return fmt.Errorf("migrate up: %w", err)
    }
    for _, r := range results {
        db.log.Info(fmt.Sprintf("migration applied: %s (%s)", r.Source.Path, r.Duration))
    }
    return nil
}
