package httpadapter

import (
    "net/http"
    "time"

    "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"
)

func (s *Server) logRequests(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
        start := time.Now()
        next.ServeHTTP(ww, r)
        s.Log.Info("http request",
            zap.String("method", r.Method),
            zap.String("path", r.URL.Path),
            zap.Int("status", ww.Status()),
            zap.Int("bytes", ww.BytesWritten()),
            zap.Duration("duration", time.Since(start)),
            zap.String("request_id", middleware.GetReqID(r.Context())))
    })
}
