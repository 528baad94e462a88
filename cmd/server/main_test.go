package main

import (
    "bytes"
    "testing"

    "github.com/goccy/go-json"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/domain"
    "xeni/internal/health"
)

func TestScoreDemoCases(t *testing.T) {
    var out bytes.Buffer
    rootCmd.SetOut(&out)
    rootCmd.SetArgs([]string{"score", "--at", "2026-10-18T12:00:00Z"})
    t.Cleanup(func() { rootCmd.SetArgs(nil); scoreAt = "" })
    require.NoError(t, rootCmd.Execute())

    var reports []health.Report
    require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
    require.Len(t, reports, 2)
    assert.Equal(t, "case-001", reports[0].CaseID)
    assert.Equal(t, 72, reports[0].Score)
    assert.Equal(t, domain.TierAttention, reports[0].Tier)
    assert.Equal(t, "case-002", reports[1].CaseID)
    assert.Equal(t, 100, reports[1].Score)
}

func TestScoreRejectsBadTime(t *testing.T) {
    rootCmd.SetOut(new(bytes.Buffer))
    rootCmd.SetErr(new(bytes.Buffer))
    rootCmd.SetArgs([]string{"score", "--at", "yesterday"})
    t.Cleanup(func() { rootCmd.SetArgs(nil); scoreAt = "" })
    assert.Error(t, rootCmd.Execute())
}
