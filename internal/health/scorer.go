package health

import (
    "math"
    "time"

    "xeni/internal/domain"
)

// Penalty weights. These are shared with the dashboard front end and must not drift.
const (
    maxScore = 100

    penaltyError   = 15
    penaltyWarning = 8
    penaltyInfo    = 3

    penaltyDeadlineUrgent = 20 // fewer than 3 days left
    penaltyDeadlineSoon   = 10 // fewer than 7 days left

    penaltySlowClient     = 10 // more than 5 days average response
    penaltySluggishClient = 5  // more than 3 days average response

    healthyFloor   = 80
    attentionFloor = 60
)

// NoDeadline is what DaysUntil reports for a case without a deadline. It is
// far past every time-pressure threshold.
const NoDeadline = math.MaxInt32

// Score computes the case health score in [0,100].
func Score(issues []domain.Issue, daysUntilDeadline int, clientAvgResponseDays float64) int {
    return scoreClassified(Classify(issues), daysUntilDeadline, clientAvgResponseDays)
}

func scoreClassified(c Classification, daysUntilDeadline int, clientAvgResponseDays float64) int {
    score := maxScore
    score -= penaltyError * c.OpenErrors()
    score -= penaltyWarning * c.OpenWarnings()
    // anything that is neither error nor warning weighs as info
    score -= penaltyInfo * (len(c.Open) - c.OpenErrors() - c.OpenWarnings())

    // tiered, not cumulative
    switch {
    case daysUntilDeadline < 3:
        score -= penaltyDeadlineUrgent
    case daysUntilDeadline < 7:
        score -= penaltyDeadlineSoon
    }

    switch {
    case clientAvgResponseDays > 5:
        score -= penaltySlowClient
    case clientAvgResponseDays > 3:
        score -= penaltySluggishClient
    }

    if score < 0 {
        return 0
    }
    if score > maxScore {
        return maxScore
    }
    return score
}

func TierFor(score int) domain.Tier {
    switch {
    case score >= healthyFloor:
        return domain.TierHealthy
    case score >= attentionFloor:
        return domain.TierAttention
    default:
        return domain.TierCritical
    }
}

// DaysUntil returns whole days from now to the deadline, floored, so a
// deadline 36 hours out counts as 1 day and one already passed is negative.
func DaysUntil(deadline *time.Time, now time.Time) int {
    if deadline == nil {
        return NoDeadline
    }
    return int(math.Floor(deadline.Sub(now).Hours() / 24))
}
