package main

import (
    "errors"
    "fmt"
    "os"
    "time"

    "github.com/goccy/go-json"
    "github.com/spf13/cobra"

    "xeni/internal/catalog"
    "xeni/internal/health"
)

var (
    scoreAt      string
    scoreCatalog string
)

var scoreCmd = &cobra.Command{
    Use:   "score [fixtures.yaml]",
    Short: "Evaluate case bundles from a fixture file and print their reports",
    Long: `Reads a YAML file with a top-level "cases:" list of bundles (the built-in
demo cases when no file is given), evaluates each one against the evidence
catalog and prints the reports as JSON. No database is touched.`,
    Args: cobra.MaximumNArgs(1),
    RunE: runScore,
}

func init() {
    scoreCmd.Flags().StringVar(&scoreAt, "at", "", "evaluate as of this RFC 3339 time instead of now")
    scoreCmd.Flags().StringVar(&scoreCatalog, "catalog", "", "evidence catalog YAML (defaults to the built-in one)")
}

func runScore(cmd *cobra.Command, args []string) error {
    now := time.Now().UTC()
    if scoreAt != "" {
        t, err := time.Parse(time.RFC3339, scoreAt)
        if err != nil {
            return fmt.Errorf("--at: %w", err)
        }
        now = t
    }
    cat, err := catalog.Load(scoreCatalog)
    if err != nil { return err }

    var path string
    if len(args) == 1 {
        path = args[0]
    }
    bundles, err := loadFixtures(path)
    if err != nil { return err }

    reports := make([]health.Report, 0, len(bundles))
    for _, b := range bundles {
        slots, err := cat.SlotsFor(b.Case.VisaType)
        if err != nil && !errors.Is(err, catalog.ErrUnknownVisaType) {
            return err
        }
        if err != nil {
            fmt.Fprintf(os.Stderr, "warning: case %s: %v\n", b.Case.ID, err)
        }
        reports = append(reports, health.Evaluate(b, slots, now))
    }

    enc := json.NewEncoder(cmd.OutOrStdout())
    enc.SetIndent("", "  ")
    return enc.Encode(reports)
}
