package health

import (
    "strconv"
    "time"

    "github.com/cespare/xxhash/v2"

    "xeni/internal/domain"
)

// Report is everything the dashboard shows for a case, derived from one snapshot.
type Report struct {
    CaseID            string                `json:"caseId"`
    Score             int                   `json:"score"`
    Tier              domain.Tier           `json:"tier"`
    Responsibility    domain.Responsibility `json:"responsibility"`
    DaysUntilDeadline *int                  `json:"daysUntilDeadline,omitempty"`
    Stats             domain.Stats          `json:"stats"`
    Counts            Counts                `json:"counts"`
    Sections          []SectionProgress     `json:"sections"`
    Fingerprint       string                `json:"fingerprint"`
    ComputedAt        time.Time             `json:"computedAt"`
}

type Counts struct {
    Open       int `json:"open"`
    Resolved   int `json:"resolved"`
    Errors     int `json:"errors"`
    Warnings   int `json:"warnings"`
    Infos      int `json:"infos"`
    Quality    int `json:"quality"`
    Compliance int `json:"compliance"`
}

// Aggregate recomputes the case stats from its current documents and issues.
func Aggregate(docs []domain.Document, issues []domain.Issue) domain.Stats {
    c := Classify(issues)
    st := domain.Stats{
        DocumentsTotal: len(docs),
        QualityIssues:  c.OpenQuality(),
        LogicIssues:    c.OpenCompliance(),
    }
    for _, d := range docs {
        if d.PipelineStatus != domain.PipelineUploading {
            st.DocumentsUploaded++
        }
    }
    return st
}

// Evaluate runs the classifier, scorer, resolver and section aggregator over a
// case bundle.
func Evaluate(b domain.CaseBundle, slots []domain.EvidenceSlotTemplate, now time.Time) Report {
    c := Classify(b.Issues)
    days := DaysUntil(b.Case.Deadline, now)
    score := scoreClassified(c, days, b.Case.Client.AvgResponseDays)

    r := Report{
        CaseID:         b.Case.ID,
        Score:          score,
        Tier:           TierFor(score),
        Responsibility: Resolve(c.OpenErrors(), c.OpenCompliance(), c.OpenQuality()),
        Stats:          Aggregate(b.Documents, b.Issues),
        Counts: Counts{
            Open:       len(c.Open),
            Resolved:   len(c.Resolved),
            Errors:     c.OpenErrors(),
            Warnings:   c.OpenWarnings(),
            Infos:      c.OpenInfos(),
            Quality:    c.OpenQuality(),
            Compliance: c.OpenCompliance(),
        },
        Sections:    SortSections(AggregateSections(slots, b.Documents, b.Issues)),
        Fingerprint: Fingerprint(b, slots, now),
        ComputedAt:  now,
    }
    if days != NoDeadline {
        r.DaysUntilDeadline = &days
    }
    return r
}

// Fingerprint hashes every input that can change a Report. The day count is
// included rather than now itself so a report stays valid for the rest of a day.
func Fingerprint(b domain.CaseBundle, slots []domain.EvidenceSlotTemplate, now time.Time) string {
    h := xxhash.New()
    w := func(parts ...string) {
        for _, p := range parts {
            _, _ = h.WriteString(p)
            _, _ = h.Write([]byte{0})
        }
    }
    w(b.Case.ID,
        strconv.Itoa(DaysUntil(b.Case.Deadline, now)),
        strconv.FormatFloat(b.Case.Client.AvgResponseDays, 'f', -1, 64))
    for _, d := range b.Documents {
        w("d", d.ID, string(d.PipelineStatus))
        w(d.AssignedToSlots...)
    }
    for _, is := range b.Issues {
        w("i", is.ID, string(is.Type), string(is.Severity), string(is.Status), is.TargetSlotID)
    }
    for _, s := range slots {
        lo, hi := "-", "-"
        if s.MinCount != nil {
            lo = strconv.Itoa(*s.MinCount)
        }
        if s.MaxCount != nil {
            hi = strconv.Itoa(*s.MaxCount)
        }
        w("s", s.ID, s.Name, string(s.Priority), lo, hi)
    }
    return strconv.FormatUint(h.Sum64(), 16)
}
