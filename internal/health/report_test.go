package health

import (
    "testing"
    "time"

    "github.com/goccy/go-json"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/domain"
)

func sampleBundle(now time.Time) domain.CaseBundle {
    deadline := now.Add(50 * time.Hour)
    q := open("i1", domain.IssueQuality, domain.SeverityWarning)
    q.TargetSlotID = "passport"
    return domain.CaseBundle{
        Case: domain.Case{
            ID:       "case-1",
            VisaType: "skilled-worker",
            Client:   domain.Client{Name: "Ana", AvgResponseDays: 4},
            Deadline: &deadline,
            Stats:    domain.Stats{DocumentsTotal: 99},
        },
        Documents: []domain.Document{
            doc("d1", domain.PipelineReady, "passport"),
            doc("d2", domain.PipelineUploading),
        },
        Issues: []domain.Issue{
            q,
            issue("i2", domain.IssueLogic, domain.SeverityError, domain.StatusResolved),
        },
    }
}

func TestEvaluate(t *testing.T) {
    now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
    b := sampleBundle(now)
    slots := []domain.EvidenceSlotTemplate{
        slot("passport", domain.PriorityRequired, nil),
        slot("bank", domain.PriorityRequired, nil),
    }

    r := Evaluate(b, slots, now)

    // 100 - 8 (warning) - 20 (2 days left) - 5 (4 day responses)
    assert.Equal(t, 67, r.Score)
    assert.Equal(t, domain.TierAttention, r.Tier)
    assert.Equal(t, domain.ResponsibleClient, r.Responsibility)
    require.NotNil(t, r.DaysUntilDeadline)
    assert.Equal(t, 2, *r.DaysUntilDeadline)
    assert.Equal(t, domain.Stats{DocumentsTotal: 2, DocumentsUploaded: 1, QualityIssues: 1}, r.Stats)
    assert.Equal(t, Counts{Open: 1, Resolved: 1, Warnings: 1, Quality: 1}, r.Counts)
    require.Len(t, r.Sections, 2)
    assert.Equal(t, "passport", r.Sections[0].SlotID)
    assert.Equal(t, "bank", r.Sections[1].SlotID)
    assert.NotEmpty(t, r.Fingerprint)
}

func TestEvaluateWithoutDeadline(t *testing.T) {
    now := time.Now()
    b := domain.CaseBundle{Case: domain.Case{ID: "c"}}
    r := Evaluate(b, nil, now)
    assert.Nil(t, r.DaysUntilDeadline)
    assert.Equal(t, 100, r.Score)
    assert.Equal(t, domain.ResponsibleGovernment, r.Responsibility)
    require.NotNil(t, r.Sections)
    assert.Empty(t, r.Sections)

    raw, err := json.Marshal(r)
    require.NoError(t, err)
    assert.Contains(t, string(raw), `"sections":[]`)
}

func TestFingerprintTracksInputs(t *testing.T) {
    now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
    b := sampleBundle(now)
    base := Fingerprint(b, nil, now)

    assert.Equal(t, base, Fingerprint(b, nil, now.Add(time.Minute)))

    changed := sampleBundle(now)
    changed.Issues[0].Status = domain.StatusResolved
    assert.NotEqual(t, base, Fingerprint(changed, nil, now))

    moved := sampleBundle(now)
    moved.Documents[0].AssignedToSlots = []string{"bank"}
    assert.NotEqual(t, base, Fingerprint(moved, nil, now))

    assert.NotEqual(t, base, Fingerprint(b, nil, now.Add(24*time.Hour)))
}

func TestMemo(t *testing.T) {
    now := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
    m := NewMemo(func() time.Time { return now })
    b := sampleBundle(now)

    first, hit := m.Evaluate(b, nil)
    assert.False(t, hit)
    again, hit := m.Evaluate(b, nil)
    assert.True(t, hit)
    assert.Equal(t, first, again)

    b.Issues[0].Status = domain.StatusResolved
    updated, hit := m.Evaluate(b, nil)
    assert.False(t, hit)
    assert.Greater(t, updated.Score, first.Score)
}
