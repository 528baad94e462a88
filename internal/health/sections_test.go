package health

import (
    "testing"

    "github.com/google/go-cmp/cmp"
    "github.com/stretchr/testify/assert"

    "xeni/internal/domain"
)

func intp(n int) *int { return &n }

func slot(id string, prio domain.SlotPriority, min *int) domain.EvidenceSlotTemplate {
    return domain.EvidenceSlotTemplate{ID: id, Name: id, Priority: prio, MinCount: min}
}

func doc(id string, st domain.PipelineStatus, slots ...string) domain.Document {
    return domain.Document{ID: id, PipelineStatus: st, AssignedToSlots: slots}
}

func TestAggregateSectionPartial(t *testing.T) {
    s := slot("bank", domain.PriorityRequired, intp(2))
    p := AggregateSection(s, []domain.Document{doc("d1", domain.PipelineReady, "bank")}, nil)

    assert.Equal(t, 1, p.Current)
    assert.Equal(t, 2, p.Required)
    assert.False(t, p.IsComplete)
    assert.False(t, p.IsMissing)
    assert.Equal(t, SectionInProgress, p.State)
}

func TestAggregateSectionMissing(t *testing.T) {
    p := AggregateSection(slot("passport", domain.PriorityRequired, intp(1)), nil, nil)

    assert.True(t, p.IsMissing)
    assert.False(t, p.IsComplete)
    assert.Equal(t, SectionEmpty, p.State)

    opt := AggregateSection(slot("cv", domain.PriorityOptional, nil), nil, nil)
    assert.False(t, opt.IsMissing)
    assert.Equal(t, 1, opt.Required)
    assert.Equal(t, SectionEmpty, opt.State)
}

func TestAggregateSectionCompleteness(t *testing.T) {
    s := slot("address", domain.PriorityRequired, nil)
    ready := []domain.Document{doc("d1", domain.PipelineReady, "address", "other")}

    p := AggregateSection(s, ready, nil)
    assert.True(t, p.IsComplete)
    assert.Equal(t, SectionComplete, p.State)

    // not enough documents
    p = AggregateSection(slot("address", domain.PriorityRequired, intp(2)), ready, nil)
    assert.False(t, p.IsComplete)

    // an open issue on the slot
    warn := open("i1", domain.IssueQuality, domain.SeverityWarning)
    warn.TargetSlotID = "address"
    p = AggregateSection(s, ready, []domain.Issue{warn})
    assert.False(t, p.IsComplete)
    assert.Equal(t, 1, p.QualityCount)
    assert.Equal(t, SectionIssue, p.State)

    // the same issue resolved no longer counts
    warn.Status = domain.StatusResolved
    p = AggregateSection(s, ready, []domain.Issue{warn})
    assert.True(t, p.IsComplete)

    // a document stuck on a pipeline side branch
    for _, st := range []domain.PipelineStatus{domain.PipelineQualityIssue, domain.PipelineConflict} {
        p = AggregateSection(s, []domain.Document{doc("d1", st, "address")}, nil)
        assert.False(t, p.IsComplete, st)
        assert.True(t, p.HasPipelineIssue, st)
        assert.Equal(t, SectionIssue, p.State, st)
    }
}

func TestAggregateSectionCritical(t *testing.T) {
    crit := open("i1", domain.IssueLogic, domain.SeverityError)
    crit.TargetSlotID = "employment"
    elsewhere := open("i2", domain.IssueQuality, domain.SeverityError)
    elsewhere.TargetSlotID = "unknown-slot"

    p := AggregateSection(slot("employment", domain.PriorityConditional, nil),
        []domain.Document{doc("d1", domain.PipelineReady, "employment")},
        []domain.Issue{crit, elsewhere})

    assert.True(t, p.HasCritical)
    assert.Equal(t, 1, p.IssueCount)
    assert.Equal(t, 1, p.ComplianceCount)
    assert.Equal(t, SectionCritical, p.State)
}

func TestSortSections(t *testing.T) {
    in := []SectionProgress{
        {SlotID: "complete", IsComplete: true},
        {SlotID: "missing", IsMissing: true},
        {SlotID: "two-issues", IssueCount: 2},
        {SlotID: "partial"},
        {SlotID: "critical", HasCritical: true, IssueCount: 1},
        {SlotID: "one-issue", IssueCount: 1},
    }
    got := SortSections(in)

    ids := make([]string, len(got))
    for i, p := range got {
        ids[i] = p.SlotID
    }
    want := []string{"critical", "two-issues", "one-issue", "missing", "partial", "complete"}
    if diff := cmp.Diff(want, ids); diff != "" {
        t.Fatalf("section order mismatch (-want +got):\n%s", diff)
    }
    assert.Equal(t, "complete", in[0].SlotID)
}

func TestAggregateSectionsIdempotent(t *testing.T) {
    slots := []domain.EvidenceSlotTemplate{
        slot("passport", domain.PriorityRequired, nil),
        slot("bank", domain.PriorityRequired, intp(3)),
    }
    docs := []domain.Document{doc("d1", domain.PipelineReady, "passport"), doc("d2", domain.PipelineConflict, "bank")}
    first := AggregateSections(slots, docs, nil)
    second := AggregateSections(slots, docs, nil)
    if diff := cmp.Diff(first, second); diff != "" {
        t.Fatalf("aggregation not idempotent:\n%s", diff)
    }
}
