package checklist

import (
    "context"

    "xeni/internal/health"
    "xeni/internal/ports"
)

// Service serves the checklist navigation: section progress in review order.
type Service struct {
    dashboard ports.Dashboard
}

func New(dashboard ports.Dashboard) *Service { return &Service{dashboard: dashboard} }

func (s *Service) Sections(ctx context.Context, caseID string) ([]health.SectionProgress, error) {
    r, err := s.dashboard.Health(ctx, caseID)
    if err != nil {
        return nil, err
    }
    if r.Sections == nil {
        return []health.SectionProgress{}, nil
    }
    return r.Sections, nil
}
