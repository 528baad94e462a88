package health

import (
    "sort"

    "xeni/internal/domain"
)

// Classification partitions a set of issues. ByType and BySeverity only hold
// open issues; resolved issues never count toward scoring.
type Classification struct {
    Open       []domain.Issue
    Resolved   []domain.Issue
    ByType     map[domain.IssueType][]domain.Issue
    BySeverity map[domain.Severity][]domain.Issue
}

// Classify splits issues by status, and open issues by type and severity.
// Input order is preserved within every partition and the input is not modified.
func Classify(issues []domain.Issue) Classification {
    c := Classification{
        ByType:     make(map[domain.IssueType][]domain.Issue, 2),
        BySeverity: make(map[domain.Severity][]domain.Issue, 3),
    }
    for _, is := range issues {
        if !is.IsOpen() {
            c.Resolved = append(c.Resolved, is)
            continue
        }
        c.Open = append(c.Open, is)
        c.ByType[is.Type] = append(c.ByType[is.Type], is)
        c.BySeverity[is.Severity] = append(c.BySeverity[is.Severity], is)
    }
    return c
}

func (c Classification) OpenErrors() int     { return len(c.BySeverity[domain.SeverityError]) }
func (c Classification) OpenWarnings() int   { return len(c.BySeverity[domain.SeverityWarning]) }
func (c Classification) OpenInfos() int      { return len(c.BySeverity[domain.SeverityInfo]) }
func (c Classification) OpenCompliance() int { return len(c.ByType[domain.IssueLogic]) }
func (c Classification) OpenQuality() int    { return len(c.ByType[domain.IssueQuality]) }

// IssueFilter selects issues for list views. Zero-value fields match anything.
type IssueFilter struct {
    Status     domain.IssueStatus
    Type       domain.IssueType
    Severity   domain.Severity
    SlotID     string
    DocumentID string
}

func (f IssueFilter) Match(is domain.Issue) bool {
    if f.Status != "" && is.Status != f.Status {
        return false
    }
    if f.Type != "" && is.Type != f.Type {
        return false
    }
    if f.Severity != "" && is.Severity != f.Severity {
        return false
    }
    if f.SlotID != "" && is.TargetSlotID != f.SlotID {
        return false
    }
    if f.DocumentID != "" && !contains(is.DocumentIDs, f.DocumentID) {
        return false
    }
    return true
}

func Filter(issues []domain.Issue, f IssueFilter) []domain.Issue {
    out := make([]domain.Issue, 0, len(issues))
    for _, is := range issues {
        if f.Match(is) {
            out = append(out, is)
        }
    }
    return out
}

// SortIssues returns a copy ordered open-first, then by severity, newest first,
// with the id as the final tie-break.
func SortIssues(issues []domain.Issue) []domain.Issue {
    out := append([]domain.Issue(nil), issues...)
    sort.SliceStable(out, func(i, j int) bool {
        a, b := out[i], out[j]
        if a.IsOpen() != b.IsOpen() {
            return a.IsOpen()
        }
        if ra, rb := a.Severity.Rank(), b.Severity.Rank(); ra != rb {
            return ra < rb
        }
        if !a.CreatedAt.Equal(b.CreatedAt) {
            return a.CreatedAt.After(b.CreatedAt)
        }
        return a.ID < b.ID
    })
    return out
}

func contains(xs []string, x string) bool {
    for _, v := range xs {
        if v == x {
            return true
        }
    }
    return false
}
