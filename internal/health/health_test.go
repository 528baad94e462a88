package health

import (
    "fmt"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "xeni/internal/domain"
)

func issue(id string, t domain.IssueType, sev domain.Severity, st domain.IssueStatus) domain.Issue {
    return domain.Issue{ID: id, Type: t, Severity: sev, Status: st}
}

func open(id string, t domain.IssueType, sev domain.Severity) domain.Issue {
    return issue(id, t, sev, domain.StatusOpen)
}

func TestScoreScenarios(t *testing.T) {
    tests := []struct {
        name     string
        issues   []domain.Issue
        days     int
        response float64
        score    int
        tier     domain.Tier
        resp     domain.Responsibility
    }{
        {
            name: "no issues", days: 14, response: 2,
            score: 100, tier: domain.TierHealthy, resp: domain.ResponsibleGovernment,
        },
        {
            name:   "single logic error",
            issues: []domain.Issue{open("a", domain.IssueLogic, domain.SeverityError)},
            days:   14, response: 2,
            score: 85, tier: domain.TierHealthy, resp: domain.ResponsibleLawyer,
        },
        {
            name:   "single logic error close to deadline",
            issues: []domain.Issue{open("a", domain.IssueLogic, domain.SeverityError)},
            days:   2, response: 2,
            score: 65, tier: domain.TierAttention, resp: domain.ResponsibleLawyer,
        },
        {
            name: "three errors two warnings",
            issues: []domain.Issue{
                open("a", domain.IssueQuality, domain.SeverityError),
                open("b", domain.IssueQuality, domain.SeverityError),
                open("c", domain.IssueQuality, domain.SeverityError),
                open("d", domain.IssueQuality, domain.SeverityWarning),
                open("e", domain.IssueQuality, domain.SeverityWarning),
            },
            days: 30, response: 1,
            score: 39, tier: domain.TierCritical, resp: domain.ResponsibleLawyer,
        },
        {
            name:   "quality warning goes to client",
            issues: []domain.Issue{open("a", domain.IssueQuality, domain.SeverityWarning)},
            days:   30, response: 0,
            score: 92, tier: domain.TierHealthy, resp: domain.ResponsibleClient,
        },
        {
            name: "resolved issues are ignored",
            issues: []domain.Issue{
                issue("a", domain.IssueLogic, domain.SeverityError, domain.StatusResolved),
                open("b", domain.IssueQuality, domain.SeverityInfo),
            },
            days: 10, response: 4,
            score: 92, tier: domain.TierHealthy, resp: domain.ResponsibleClient,
        },
        {
            name: "deadline under a week and slow client",
            days: 5, response: 6,
            score: 80, tier: domain.TierHealthy, resp: domain.ResponsibleGovernment,
        },
        {
            name: "deadline today",
            days: 0, response: 0,
            score: 80, tier: domain.TierHealthy, resp: domain.ResponsibleGovernment,
        },
    }
    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            s := Score(tc.issues, tc.days, tc.response)
            assert.Equal(t, tc.score, s)
            assert.Equal(t, tc.tier, TierFor(s))
            assert.Equal(t, tc.resp, ResolveIssues(tc.issues))
        })
    }
}

func TestScoreNoPenaltyWithoutPressure(t *testing.T) {
    assert.Equal(t, 100, Score(nil, NoDeadline, 0))
    assert.Equal(t, 100, Score(nil, 7, 3))
}

func TestScoreDeadlinePenaltyIsTiered(t *testing.T) {
    assert.Equal(t, 80, Score(nil, 2, 0))
    assert.Equal(t, 80, Score(nil, -4, 0))
    assert.Equal(t, 90, Score(nil, 3, 0))
    assert.Equal(t, 90, Score(nil, 6, 0))
    assert.Equal(t, 100, Score(nil, 7, 0))
}

func TestScoreBounds(t *testing.T) {
    var issues []domain.Issue
    for i := 0; i < 50; i++ {
        issues = append(issues, open(fmt.Sprint(i), domain.IssueLogic, domain.SeverityError))
    }
    assert.Equal(t, 0, Score(issues, 0, 30))

    for n := 0; n <= 12; n++ {
        for _, days := range []int{-1, 2, 5, 30} {
            for _, resp := range []float64{0, 4, 9} {
                s := Score(issues[:n], days, resp)
                require.GreaterOrEqual(t, s, 0)
                require.LessOrEqual(t, s, 100)
            }
        }
    }
}

func TestScoreMonotonic(t *testing.T) {
    base := []domain.Issue{
        open("a", domain.IssueQuality, domain.SeverityWarning),
        open("b", domain.IssueLogic, domain.SeverityInfo),
    }
    before := Score(base, 10, 2)
    more := append(append([]domain.Issue(nil), base...), open("c", domain.IssueLogic, domain.SeverityError))
    assert.LessOrEqual(t, Score(more, 10, 2), before)

    resolved := append([]domain.Issue(nil), base...)
    resolved[0].Status = domain.StatusResolved
    assert.GreaterOrEqual(t, Score(resolved, 10, 2), before)
}

func TestTierIsStepFunction(t *testing.T) {
    rank := map[domain.Tier]int{domain.TierCritical: 0, domain.TierAttention: 1, domain.TierHealthy: 2}
    prev := -1
    for s := 0; s <= 100; s++ {
        r, ok := rank[TierFor(s)]
        require.True(t, ok, "score %d", s)
        require.GreaterOrEqual(t, r, prev, "score %d", s)
        prev = r
    }
    assert.Equal(t, domain.TierCritical, TierFor(59))
    assert.Equal(t, domain.TierAttention, TierFor(60))
    assert.Equal(t, domain.TierAttention, TierFor(79))
    assert.Equal(t, domain.TierHealthy, TierFor(80))
}

func TestResolveTotal(t *testing.T) {
    valid := map[domain.Responsibility]bool{
        domain.ResponsibleLawyer: true, domain.ResponsibleClient: true, domain.ResponsibleGovernment: true,
    }
    for crit := 0; crit < 3; crit++ {
        for comp := 0; comp < 3; comp++ {
            for qual := 0; qual < 3; qual++ {
                assert.True(t, valid[Resolve(crit, comp, qual)])
            }
        }
    }
    assert.Equal(t, domain.ResponsibleGovernment, Resolve(0, 0, 0))
    assert.Equal(t, domain.ResponsibleClient, Resolve(0, 0, 1))
    assert.Equal(t, domain.ResponsibleLawyer, Resolve(0, 1, 1))
    assert.Equal(t, domain.ResponsibleLawyer, Resolve(1, 0, 0))
}

func TestDaysUntil(t *testing.T) {
    now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
    at := func(h int) *time.Time { d := now.Add(time.Duration(h) * time.Hour); return &d }

    assert.Equal(t, NoDeadline, DaysUntil(nil, now))
    assert.Equal(t, 0, DaysUntil(at(5), now))
    assert.Equal(t, 1, DaysUntil(at(36), now))
    assert.Equal(t, 7, DaysUntil(at(7*24), now))
    assert.Equal(t, -1, DaysUntil(at(-2), now))
}

func TestClassify(t *testing.T) {
    issues := []domain.Issue{
        open("a", domain.IssueQuality, domain.SeverityError),
        issue("b", domain.IssueLogic, domain.SeverityError, domain.StatusResolved),
        open("c", domain.IssueLogic, domain.SeverityWarning),
        open("d", domain.IssueQuality, domain.SeverityInfo),
    }
    snapshot := append([]domain.Issue(nil), issues...)

    c := Classify(issues)
    assert.Len(t, c.Open, 3)
    assert.Len(t, c.Resolved, 1)
    assert.Equal(t, 1, c.OpenErrors())
    assert.Equal(t, 1, c.OpenWarnings())
    assert.Equal(t, 1, c.OpenInfos())
    assert.Equal(t, 1, c.OpenCompliance())
    assert.Equal(t, 2, c.OpenQuality())
    assert.Equal(t, "a", c.Open[0].ID)
    assert.Equal(t, snapshot, issues)

    empty := Classify(nil)
    assert.Empty(t, empty.Open)
    assert.Zero(t, empty.OpenErrors())
    assert.Zero(t, empty.OpenQuality())
}

func TestFilterAndSortIssues(t *testing.T) {
    t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
    issues := []domain.Issue{
        {ID: "1", Type: domain.IssueQuality, Severity: domain.SeverityInfo, Status: domain.StatusOpen, TargetSlotID: "passport", CreatedAt: t0},
        {ID: "2", Type: domain.IssueLogic, Severity: domain.SeverityError, Status: domain.StatusResolved, TargetSlotID: "passport", CreatedAt: t0},
        {ID: "3", Type: domain.IssueLogic, Severity: domain.SeverityError, Status: domain.StatusOpen, DocumentIDs: []string{"doc-1"}, CreatedAt: t0},
        {ID: "4", Type: domain.IssueQuality, Severity: domain.SeverityInfo, Status: domain.StatusOpen, CreatedAt: t0.Add(time.Hour)},
    }

    got := Filter(issues, IssueFilter{SlotID: "passport"})
    assert.Len(t, got, 2)
    got = Filter(issues, IssueFilter{Status: domain.StatusOpen, Type: domain.IssueQuality})
    assert.Len(t, got, 2)
    got = Filter(issues, IssueFilter{DocumentID: "doc-1"})
    require.Len(t, got, 1)
    assert.Equal(t, "3", got[0].ID)
    assert.Len(t, Filter(issues, IssueFilter{}), 4)

    sorted := SortIssues(issues)
    ids := make([]string, len(sorted))
    for i, is := range sorted {
        ids[i] = is.ID
    }
    assert.Equal(t, []string{"3", "4", "1", "2"}, ids)
    assert.Equal(t, "1", issues[0].ID)
}
