package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/logger"
)

// RequestLogger attaches a request-scoped logger carrying the chi request
// id and path, then logs one line per completed request.  Must run after
// chi's RequestID middleware.
func RequestLogger(base *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := base.With("request_id", chimw.GetReqID(r.Context()), "path", r.URL.Path)
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), log)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			kv := []any{"method", r.Method, "status", status, "bytes", ww.BytesWritten(), "dur", time.Since(start)}
			if status >= 500 {
				log.Warnw("request", kv...)
				return
			}
			log.Debugw("request", kv...)
		})
	}
}
