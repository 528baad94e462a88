package dashboard

import (
    "context"
    "testing"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/testutil"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"

    "xeni/internal/adapters/memory"
    "xeni/internal/catalog"
    "xeni/internal/domain"
    "xeni/internal/metrics"
    "xeni/internal/ports"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...Option) (*Service, *memory.Store, *metrics.Metrics) {
    t.Helper()
    bundles, err := memory.DemoBundles()
    require.NoError(t, err)
    store := memory.NewStore()
    store.Seed(bundles...)
    cat, err := catalog.Default()
    require.NoError(t, err)
    m := metrics.New(prometheus.NewRegistry())
    opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
    svc := New(Repos{Cases: store, Documents: store, Issues: store, Snapshots: store}, cat, m, zap.NewNop(), opts...)
    return svc, store, m
}

func TestHealth(t *testing.T) {
    svc, _, m := newService(t)
    r, err := svc.Health(context.Background(), "case-001")
    require.NoError(t, err)
    assert.Equal(t, 72, r.Score)
    assert.Equal(t, domain.TierAttention, r.Tier)
    assert.Equal(t, domain.ResponsibleLawyer, r.Responsibility)
    assert.Equal(t, 2, r.Counts.Open)
    assert.Equal(t, 1, r.Counts.Resolved)
    assert.Equal(t, fixedNow, r.ComputedAt)
    assert.NotEmpty(t, r.Sections)

    _, err = svc.Health(context.Background(), "case-001")
    require.NoError(t, err)
    assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("memo", "hit")))
    assert.Equal(t, 1.0, testutil.ToFloat64(m.Evaluations.WithLabelValues(string(domain.TierAttention))))
}

func TestHealthNotFound(t *testing.T) {
    svc, _, _ := newService(t)
    _, err := svc.Health(context.Background(), "nope")
    assert.ErrorIs(t, err, ports.ErrNotFound)
    _, err = svc.Bundle(context.Background(), "nope")
    assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestHealthUsesSharedCache(t *testing.T) {
    ctx := context.Background()
    svc, store, m := newService(t, WithCache(memory.NewCache(time.Minute, time.Minute), time.Minute))

    first, err := svc.Health(ctx, "case-001")
    require.NoError(t, err)
    second, err := svc.Health(ctx, "case-001")
    require.NoError(t, err)
    assert.Equal(t, first.Fingerprint, second.Fingerprint)
    assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("cache", "miss")))
    assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("cache", "hit")))

    // a resolved issue bumps the case version, so the cached report is bypassed
    _, err = store.MarkResolved(ctx, "iss-001", fixedNow)
    require.NoError(t, err)
    third, err := svc.Health(ctx, "case-001")
    require.NoError(t, err)
    assert.Equal(t, 87, third.Score)
    assert.Equal(t, domain.ResponsibleClient, third.Responsibility)
}

func TestHealthUnknownVisaTypeHasNoSections(t *testing.T) {
    svc, store, _ := newService(t)
    store.Seed(domain.CaseBundle{
        Case: domain.Case{ID: "case-x", VisaType: "investor", Client: domain.Client{Name: "A B", AvgResponseDays: 1}},
        Issues: []domain.Issue{{
            ID: "iss-x", Type: domain.IssueQuality, Severity: domain.SeverityWarning, Status: domain.StatusOpen,
        }},
    })

    r, err := svc.Health(context.Background(), "case-x")
    require.NoError(t, err)
    assert.Equal(t, 92, r.Score)
    assert.Equal(t, domain.ResponsibleClient, r.Responsibility)
    assert.Empty(t, r.Sections)
    assert.Nil(t, r.DaysUntilDeadline)
}

func TestLatest(t *testing.T) {
    ctx := context.Background()
    svc, store, _ := newService(t)

    _, err := svc.Latest(ctx, "case-001")
    assert.ErrorIs(t, err, ports.ErrNotFound)

    require.NoError(t, store.SaveSnapshot(ctx, ports.Snapshot{CaseID: "case-001", Score: 72, Tier: domain.TierAttention, ComputedAt: fixedNow}))
    snap, err := svc.Latest(ctx, "case-001")
    require.NoError(t, err)
    assert.Equal(t, 72, snap.Score)
}
