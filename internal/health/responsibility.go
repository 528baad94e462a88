package health

import "xeni/internal/domain"

// Resolve decides who holds the ball. Critical or compliance problems stay with
// the lawyer, document quality problems go back to the client, and a case with
// nothing open is waiting on the government.
func Resolve(openCritical, openCompliance, openQuality int) domain.Responsibility {
    if openCritical > 0 || openCompliance > 0 {
        return domain.ResponsibleLawyer
    }
    if openQuality > 0 {
        return domain.ResponsibleClient
    }
    return domain.ResponsibleGovernment
}

func ResolveIssues(issues []domain.Issue) domain.Responsibility {
    c := Classify(issues)
    return Resolve(c.OpenErrors(), c.OpenCompliance(), c.OpenQuality())
}
