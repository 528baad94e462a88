package drafts

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/flosch/pongo2/v6"
    "github.com/go-playground/validator/v10"

    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/ports"
)

var (
    ErrNothingToRequest = errors.New("no open quality issues to request from the client")
    ErrInvalidRequest   = errors.New("invalid draft request")
)

const (
    ChannelEmail  = "email"
    ChannelSMS    = "sms"
    ChannelPortal = "portal"
)

type Request struct {
    Channel string `json:"channel" validate:"omitempty,oneof=email sms portal"`
    Tone    string `json:"tone" validate:"omitempty,oneof=formal friendly"`
}

// Item is one thing the client is asked to fix.
type Item struct {
    IssueID  string          `json:"issueId"`
    Document string          `json:"document"`
    Severity domain.Severity `json:"severity"`
    Action   string          `json:"action"`
}

type Draft struct {
    CaseID              string   `json:"caseId"`
    Channel             string   `json:"channel"`
    Subject             string   `json:"subject,omitempty"`
    Body                string   `json:"body"`
    Items               []Item   `json:"items"`
    RecommendedChannels []string `json:"recommendedChannels"`
}

// Compose drafts a client message asking for the fixes behind every open
// quality issue in the bundle. Compliance issues stay with the lawyer and are
// never sent to the client.
func Compose(b domain.CaseBundle, req Request) (Draft, error) {
    channel := req.Channel
    if channel == "" {
        channel = ChannelEmail
    }

    docNames := make(map[string]string, len(b.Documents))
    for _, d := range b.Documents {
        docNames[d.ID] = d.Name
    }

    quality := health.Filter(b.Issues, health.IssueFilter{Status: domain.StatusOpen, Type: domain.IssueQuality})
    if len(quality) == 0 {
        return Draft{}, ErrNothingToRequest
    }
    quality = health.SortIssues(quality)

    d := Draft{CaseID: b.Case.ID, Channel: channel, RecommendedChannels: []string{}}
    seen := map[string]bool{}
    for _, is := range quality {
        d.Items = append(d.Items, Item{
            IssueID:  is.ID,
            Document: documentLabel(is, docNames),
            Severity: is.Severity,
            Action:   action(is),
        })
        if is.AIRecommendation != nil {
            for _, ch := range is.AIRecommendation.Channels {
                if !seen[ch] {
                    seen[ch] = true
                    d.RecommendedChannels = append(d.RecommendedChannels, ch)
                }
            }
        }
    }

    ctx := pongo2.Context{
        "client":     b.Case.Client.Name,
        "first_name": firstName(b.Case.Client.Name),
        "reference":  reference(b.Case),
        "advisor":    b.Case.Advisor,
        "tone":       req.Tone,
        "items":      d.Items,
        "count":      len(d.Items),
        "deadline":   "",
    }
    if b.Case.Deadline != nil {
        ctx["deadline"] = b.Case.Deadline.Format("2 January 2006")
    }

    var err error
    switch channel {
    case ChannelEmail:
        if d.Subject, err = emailSubject.Execute(ctx); err != nil {
            return Draft{}, fmt.Errorf("render subject: %w", err)
        }
        d.Body, err = emailBody.Execute(ctx)
    case ChannelSMS:
        d.Body, err = smsBody.Execute(ctx)
    case ChannelPortal:
        if d.Subject, err = portalSubject.Execute(ctx); err != nil {
            return Draft{}, fmt.Errorf("render subject: %w", err)
        }
        d.Body, err = portalBody.Execute(ctx)
    default:
        return Draft{}, fmt.Errorf("%w: channel %q", ErrInvalidRequest, channel)
    }
    if err != nil {
        return Draft{}, fmt.Errorf("render body: %w", err)
    }
    d.Body = strings.TrimSpace(d.Body)
    return d, nil
}

func documentLabel(is domain.Issue, names map[string]string) string {
    for _, id := range is.DocumentIDs {
        if n := names[id]; n != "" {
            return n
        }
    }
    if is.Title != "" {
        return is.Title
    }
    return "General"
}

func action(is domain.Issue) string {
    switch {
    case is.AIRecommendation != nil && is.AIRecommendation.Message != "":
        return is.AIRecommendation.Message
    case is.Description != "":
        return is.Description
    default:
        return is.Title
    }
}

func firstName(full string) string {
    if f := strings.Fields(full); len(f) > 0 {
        return f[0]
    }
    return full
}

func reference(c domain.Case) string {
    if c.Reference != "" {
        return c.Reference
    }
    return c.ID
}

// Service drafts messages for stored cases.
type Service struct {
    dashboard ports.Dashboard
    validate  *validator.Validate
}

func New(dashboard ports.Dashboard) *Service {
    return &Service{dashboard: dashboard, validate: validator.New()}
}

func (s *Service) Draft(ctx context.Context, caseID string, req Request) (Draft, error) {
    if err := s.validate.Struct(req); err != nil {
        return Draft{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
    }
    b, err := s.dashboard.Bundle(ctx, caseID)
    if err != nil {
        return Draft{}, err
    }
    return Compose(b, req)
}
