package redis

import (
    "context"
    "os"
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/domain"
    "xeni/internal/health"
)

func TestCacheRoundTrip(t *testing.T) {
    addr := os.Getenv("XENI_TEST_REDIS_ADDR")
    if addr == "" {
        t.Skip("XENI_TEST_REDIS_ADDR not set")
    }
    ctx := context.Background()
    c, err := Connect(ctx, addr)
    require.NoError(t, err)
    t.Cleanup(func() { _ = c.Close() })

    key := "test:" + uuid.NewString()
    _, found, err := c.GetReport(ctx, key)
    require.NoError(t, err)
    assert.False(t, found)

    days := 3
    want := health.Report{
        CaseID: "case-1", Score: 72, Tier: domain.TierAttention,
        Responsibility: domain.ResponsibleClient, DaysUntilDeadline: &days,
        Sections: []health.SectionProgress{{SlotID: "passport", Current: 1, Required: 1, IsComplete: true, State: health.SectionComplete}},
        ComputedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
    }
    require.NoError(t, c.SetReport(ctx, key, want, time.Minute))

    got, found, err := c.GetReport(ctx, key)
    require.NoError(t, err)
    require.True(t, found)
    assert.Equal(t, want, got)
}
