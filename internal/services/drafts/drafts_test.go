package drafts

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/adapters/memory"
    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/ports"
)

func demoBundle(t *testing.T, id string) domain.CaseBundle {
    t.Helper()
    bundles, err := memory.DemoBundles()
    require.NoError(t, err)
    for _, b := range bundles {
        if b.Case.ID == id {
            return b
        }
    }
    t.Fatalf("no demo case %s", id)
    return domain.CaseBundle{}
}

func TestComposeEmail(t *testing.T) {
    d, err := Compose(demoBundle(t, "case-001"), Request{})
    require.NoError(t, err)

    assert.Equal(t, ChannelEmail, d.Channel)
    assert.Equal(t, "Action needed: 1 document for XN-2026-0147", d.Subject)
    assert.Contains(t, d.Body, "Dear Lucia Fernandes,")
    assert.Contains(t, d.Body, "- Council Tax Bill: Please upload a clearer scan or the PDF version of your council tax bill.")
    assert.Contains(t, d.Body, "Please send these by 20 November 2026")
    assert.Contains(t, d.Body, "Priya Raman")
    assert.NotContains(t, d.Body, "Marriage Certificate", "compliance issues are not sent to the client")
    require.Len(t, d.Items, 1)
    assert.Equal(t, "iss-002", d.Items[0].IssueID)
    assert.Equal(t, []string{"email", "portal"}, d.RecommendedChannels)
}

func TestComposeFriendlyTone(t *testing.T) {
    d, err := Compose(demoBundle(t, "case-001"), Request{Tone: "friendly"})
    require.NoError(t, err)
    assert.Contains(t, d.Body, "Hi Lucia,")
}

func TestComposeSMSAndPortal(t *testing.T) {
    b := demoBundle(t, "case-001")

    sms, err := Compose(b, Request{Channel: ChannelSMS})
    require.NoError(t, err)
    assert.Empty(t, sms.Subject)
    assert.Contains(t, sms.Body, "XN-2026-0147: 1 item needs your attention (Council Tax Bill).")
    assert.Contains(t, sms.Body, "Due 20 November 2026.")

    portal, err := Compose(b, Request{Channel: ChannelPortal})
    require.NoError(t, err)
    assert.Equal(t, "1 item to update", portal.Subject)
    assert.Contains(t, portal.Body, "1. Council Tax Bill")
}

func TestComposeOrdersItemsAndMergesChannels(t *testing.T) {
    created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
    b := domain.CaseBundle{
        Case: domain.Case{ID: "c", Client: domain.Client{Name: "Ana Silva"}, Advisor: "Sam"},
        Documents: []domain.Document{{ID: "d1", Name: "Payslip"}, {ID: "d2", Name: "Bank Statement"}},
        Issues: []domain.Issue{
            {ID: "a", Type: domain.IssueQuality, Severity: domain.SeverityWarning, Status: domain.StatusOpen,
                DocumentIDs: []string{"d1"}, Description: "Cropped.", CreatedAt: created,
                AIRecommendation: &domain.AIRecommendation{Channels: []string{"sms", "email"}}},
            {ID: "b", Type: domain.IssueQuality, Severity: domain.SeverityError, Status: domain.StatusOpen,
                DocumentIDs: []string{"d2"}, Title: "Unreadable", CreatedAt: created,
                AIRecommendation: &domain.AIRecommendation{Channels: []string{"email", "portal"}}},
            {ID: "c", Type: domain.IssueLogic, Severity: domain.SeverityError, Status: domain.StatusOpen, CreatedAt: created},
            {ID: "d", Type: domain.IssueQuality, Severity: domain.SeverityError, Status: domain.StatusResolved, CreatedAt: created},
        },
    }

    d, err := Compose(b, Request{Channel: ChannelSMS})
    require.NoError(t, err)
    require.Len(t, d.Items, 2)
    assert.Equal(t, "b", d.Items[0].IssueID, "errors before warnings")
    assert.Equal(t, "Bank Statement", d.Items[0].Document)
    assert.Equal(t, "Unreadable", d.Items[0].Action)
    assert.Equal(t, "Cropped.", d.Items[1].Action)
    assert.Equal(t, []string{"email", "portal", "sms"}, d.RecommendedChannels)
    assert.Contains(t, d.Body, "2 items need your attention (Bank Statement, Payslip).")
}

func TestComposeNothingToRequest(t *testing.T) {
    _, err := Compose(demoBundle(t, "case-002"), Request{})
    assert.ErrorIs(t, err, ErrNothingToRequest)
}

type stubDashboard struct{ bundle domain.CaseBundle }

func (s stubDashboard) Bundle(ctx context.Context, caseID string) (domain.CaseBundle, error) {
    if caseID != s.bundle.Case.ID {
        return domain.CaseBundle{}, ports.ErrNotFound
    }
    return s.bundle, nil
}

func (s stubDashboard) Health(ctx context.Context, caseID string) (health.Report, error) {
    return health.Report{}, nil
}

func TestServiceDraft(t *testing.T) {
    svc := New(stubDashboard{bundle: demoBundle(t, "case-001")})

    d, err := svc.Draft(context.Background(), "case-001", Request{Channel: ChannelPortal})
    require.NoError(t, err)
    assert.Equal(t, ChannelPortal, d.Channel)

    _, err = svc.Draft(context.Background(), "case-001", Request{Channel: "fax"})
    assert.ErrorIs(t, err, ErrInvalidRequest)
    _, err = svc.Draft(context.Background(), "case-001", Request{Tone: "angry"})
    assert.ErrorIs(t, err, ErrInvalidRequest)
    _, err = svc.Draft(context.Background(), "nope", Request{})
    assert.ErrorIs(t, err, ports.ErrNotFound)
}
