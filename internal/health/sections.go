package health

import (
    "sort"

    "xeni/internal/domain"
)

// SectionState is the single visual state a checklist section is drawn in.
type SectionState string

const (
    SectionComplete   SectionState = "complete"
    SectionCritical   SectionState = "critical"
    SectionIssue      SectionState = "issue"
    SectionInProgress SectionState = "in_progress"
    SectionEmpty      SectionState = "empty"
)

type SectionProgress struct {
    SlotID           string              `json:"slotId"`
    Name             string              `json:"name"`
    Priority         domain.SlotPriority `json:"priority"`
    Current          int                 `json:"current"`
    Required         int                 `json:"required"`
    IssueCount       int                 `json:"issueCount"`
    QualityCount     int                 `json:"qualityCount"`
    ComplianceCount  int                 `json:"complianceCount"`
    HasCritical      bool                `json:"hasCritical"`
    HasPipelineIssue bool                `json:"hasPipelineIssue"`
    IsComplete       bool                `json:"isComplete"`
    IsMissing        bool                `json:"isMissing"`
    State            SectionState        `json:"state"`
}

// AggregateSection rolls the documents assigned to a slot and the open issues
// targeting it into one progress record. Documents or issues pointing at
// other slots are ignored.
func AggregateSection(slot domain.EvidenceSlotTemplate, docs []domain.Document, issues []domain.Issue) SectionProgress {
    p := SectionProgress{
        SlotID:   slot.ID,
        Name:     slot.Name,
        Priority: slot.Priority,
        Required: 1,
    }
    if slot.MinCount != nil {
        p.Required = *slot.MinCount
    }

    for _, d := range docs {
        if !contains(d.AssignedToSlots, slot.ID) {
            continue
        }
        p.Current++
        if d.PipelineStatus.Blocking() {
            p.HasPipelineIssue = true
        }
    }

    for _, is := range issues {
        if !is.IsOpen() || is.TargetSlotID != slot.ID {
            continue
        }
        p.IssueCount++
        switch is.Type {
        case domain.IssueQuality:
            p.QualityCount++
        case domain.IssueLogic:
            p.ComplianceCount++
        }
        if is.Severity == domain.SeverityError {
            p.HasCritical = true
        }
    }

    p.IsMissing = p.Current == 0 && slot.Priority == domain.PriorityRequired
    p.IsComplete = p.Current >= p.Required && p.IssueCount == 0 && !p.HasPipelineIssue
    p.State = p.state()
    return p
}

func (p SectionProgress) state() SectionState {
    switch {
    case p.IsComplete:
        return SectionComplete
    case p.HasCritical:
        return SectionCritical
    case p.IssueCount > 0 || p.HasPipelineIssue:
        return SectionIssue
    case p.Current > 0:
        return SectionInProgress
    default:
        return SectionEmpty
    }
}

// AggregateSections aggregates every slot in catalog order.
func AggregateSections(slots []domain.EvidenceSlotTemplate, docs []domain.Document, issues []domain.Issue) []SectionProgress {
    out := make([]SectionProgress, 0, len(slots))
    for _, s := range slots {
        out = append(out, AggregateSection(s, docs, issues))
    }
    return out
}

// SortSections returns a copy in the order a caseworker should look at them:
// critical first, most issues next, then incomplete before complete, then
// missing before present. Ties keep catalog order.
func SortSections(sections []SectionProgress) []SectionProgress {
    out := make([]SectionProgress, len(sections))
    copy(out, sections)
    sort.SliceStable(out, func(i, j int) bool {
        a, b := out[i], out[j]
        if a.HasCritical != b.HasCritical {
            return a.HasCritical
        }
        if a.IssueCount != b.IssueCount {
            return a.IssueCount > b.IssueCount
        }
        if a.IsComplete != b.IsComplete {
            return !a.IsComplete
        }
        if a.IsMissing != b.IsMissing {
            return a.IsMissing
        }
        return false
    })
    return out
}
