package httpadapter

import (
    "errors"
    "net/http"

    "github.com/go-chi/chi/v5/middleware"
    "github.com/goccy/go-json"
    "go.uber.org/zap"

    api "xeni/internal/api"
    "xeni/internal/ports"
    "xeni/internal/services/drafts"
    "xeni/internal/services/issues"
)

type requestError struct{ err error }

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error { return &requestError{err: err} }

func statusFor(err error) int {
    var reqErr *requestError
    switch {
    case errors.As(err, &reqErr),
        errors.Is(err, issues.ErrInvalidFilter),
        errors.Is(err, drafts.ErrInvalidRequest):
        return http.StatusBadRequest
    case errors.Is(err, ports.ErrNotFound):
        return http.StatusNotFound
    case errors.Is(err, issues.ErrAlreadyResolved):
        return http.StatusConflict
    case errors.Is(err, drafts.ErrNothingToRequest):
        return http.StatusUnprocessableEntity
    default:
        return http.StatusInternalServerError
    }
}

// writeRequestError reports malformed parameters and bodies.
func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
    s.writeError(w, r, badRequest(err))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
    status := statusFor(err)
    msg := err.Error()
    if status == http.StatusInternalServerError {
        s.Log.Error("request failed",
            zap.String("method", r.Method),
            zap.String("path", r.URL.Path),
            zap.String("request_id", middleware.GetReqID(r.Context())),
            zap.Error(err))
        msg = http.StatusText(status)
    }
    writeJSON(w, status, api.Error{Status: status, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}
