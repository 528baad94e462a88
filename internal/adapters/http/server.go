package httpadapter

import (
    "context"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"
    "go.uber.org/zap"

    api "xeni/internal/api"
    "xeni/internal/domain"
    "xeni/internal/health"
    "xeni/internal/ports"
    "xeni/internal/services/drafts"
    "xeni/internal/workers/healthrunner"
)

// Drafter composes client messages for a case.
type Drafter interface {
    Draft(ctx context.Context, caseID string, req drafts.Request) (drafts.Draft, error)
}

// SnapshotReader returns the last persisted health snapshot for a case.
type SnapshotReader interface {
    Latest(ctx context.Context, caseID string) (ports.Snapshot, error)
}

// Deps are the services the HTTP API is served from.
type Deps struct {
    Dashboard   ports.Dashboard
    Snapshots   SnapshotReader
    Checklist   ports.Checklist
    Issues      ports.Issues
    Drafts      Drafter
    Jobs        ports.JobRepository
    Processor   healthrunner.JobProcessor
    Metrics     http.Handler
    CORSOrigins []string
    Log         *zap.Logger
}

// Server implements the generated StrictServerInterface.
type Server struct {
    Deps
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(d Deps) *Server { return &Server{Deps: d} }

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(s.logRequests)
    r.Use(middleware.Recoverer)
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins: s.CORSOrigins,
        AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
        AllowedHeaders: []string{"Accept", "Content-Type"},
        MaxAge:         300,
    }))
    if s.Metrics != nil {
        r.Handle("/metrics", s.Metrics)
    }

    // Generated handler wiring
    handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
        RequestErrorHandlerFunc:  s.writeRequestError,
        ResponseErrorHandlerFunc: s.writeError,
    })
    api.HandlerWithOptions(handler, api.ChiServerOptions{
        BaseRouter:       r,
        ErrorHandlerFunc: s.writeRequestError,
    })
    return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
    return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

func (s *Server) GetCaseHealth(ctx context.Context, req api.GetCaseHealthRequestObject) (api.GetCaseHealthResponseObject, error) {
    report, err := s.Dashboard.Health(ctx, req.CaseId)
    if err != nil {
        return nil, err
    }
    // Blocking path: persist a snapshot with the same processor the workers use.
    if req.Params.Wait != nil && *req.Params.Wait {
        ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
        defer cancel()
        if err := healthrunner.ProcessInline(ctx2, s.Jobs, s.Processor, req.CaseId); err != nil {
            return nil, err
        }
    }
    return api.GetCaseHealth200JSONResponse(report), nil
}

func (s *Server) ListCaseSections(ctx context.Context, req api.ListCaseSectionsRequestObject) (api.ListCaseSectionsResponseObject, error) {
    sections, err := s.Checklist.Sections(ctx, req.CaseId)
    if err != nil {
        return nil, err
    }
    return api.ListCaseSections200JSONResponse(sections), nil
}

func (s *Server) ListCaseIssues(ctx context.Context, req api.ListCaseIssuesRequestObject) (api.ListCaseIssuesResponseObject, error) {
    p := req.Params
    f := health.IssueFilter{SlotID: deref(p.Slot), DocumentID: deref(p.Document)}
    if p.Status != nil { f.Status = domain.IssueStatus(*p.Status) }
    if p.Type != nil { f.Type = domain.IssueType(*p.Type) }
    if p.Severity != nil { f.Severity = domain.Severity(*p.Severity) }

    list, err := s.Issues.List(ctx, req.CaseId, f)
    if err != nil {
        return nil, err
    }
    if list == nil {
        list = []domain.Issue{}
    }
    return api.ListCaseIssues200JSONResponse(list), nil
}

func (s *Server) ResolveIssue(ctx context.Context, req api.ResolveIssueRequestObject) (api.ResolveIssueResponseObject, error) {
    is, err := s.Issues.Resolve(ctx, req.IssueId)
    if err != nil {
        return nil, err
    }
    return api.ResolveIssue200JSONResponse(is), nil
}

func (s *Server) CreateCaseDraft(ctx context.Context, req api.CreateCaseDraftRequestObject) (api.CreateCaseDraftResponseObject, error) {
    d, err := s.Drafts.Draft(ctx, req.CaseId, *req.Body)
    if err != nil {
        return nil, err
    }
    return api.CreateCaseDraft200JSONResponse(d), nil
}

func (s *Server) GetLatestSnapshot(ctx context.Context, req api.GetLatestSnapshotRequestObject) (api.GetLatestSnapshotResponseObject, error) {
    snap, err := s.Snapshots.Latest(ctx, req.CaseId)
    if err != nil {
        return nil, err
    }
    return api.GetLatestSnapshot200JSONResponse(snap), nil
}

func deref(p *string) string {
    if p == nil {
        return ""
    }
    return *p
}
