package main

import (
    "errors"
    "fmt"
    "os"

    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "xeni/internal/config"
    "xeni/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
    Use:   "xeni",
    Short: "Case health scoring and issue tracking for immigration case files",
    CompletionOptions: cobra.CompletionOptions{
        HiddenDefaultCmd: true,
    },
    SilenceUsage: true,
}

func init() {
    rootCmd.AddCommand(serveCmd)
    rootCmd.AddCommand(migrateCmd)
    rootCmd.AddCommand(scoreCmd)
    rootCmd.Version = version
}

func main() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

// setup loads configuration and builds the process logger. A missing
// DATABASE_URL is reported but not fatal.
func setup() (config.Config, *zap.Logger, error) {
    cfg, cfgErr := config.Load()
    log, err := logging.New(cfg.Env, cfg.LogLevel)
    if err != nil {
        return cfg, nil, fmt.Errorf("logger: %w", err)
    }
    switch {
    case errors.Is(cfgErr, config.ErrNoDatabaseURL):
        log.Warn("no database configured, using the in-memory store")
    case cfgErr != nil:
        return cfg, log, cfgErr
    }
    return cfg, log, nil
}
