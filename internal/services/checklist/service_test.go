package checklist

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/ports"
)

type stubDashboard struct {
    report health.Report
    err    error
}

func (s stubDashboard) Health(ctx context.Context, caseID string) (health.Report, error) {
    return s.report, s.err
}

func (s stubDashboard) Bundle(ctx context.Context, caseID string) (domain.CaseBundle, error) {
    return domain.CaseBundle{}, s.err
}

func TestSections(t *testing.T) {
    want := []health.SectionProgress{{SlotID: "passport", State: health.SectionComplete}}
    got, err := New(stubDashboard{report: health.Report{Sections: want}}).Sections(context.Background(), "c")
    require.NoError(t, err)
    assert.Equal(t, want, got)
}

func TestSectionsNeverNil(t *testing.T) {
    got, err := New(stubDashboard{}).Sections(context.Background(), "c")
    require.NoError(t, err)
    assert.NotNil(t, got)
    assert.Empty(t, got)
}

func TestSectionsPropagatesErrors(t *testing.T) {
    _, err := New(stubDashboard{err: ports.ErrNotFound}).Sections(context.Background(), "c")
    assert.ErrorIs(t, err, ports.ErrNotFound)
}
