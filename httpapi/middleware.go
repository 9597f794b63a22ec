package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/goliatone/go-mock-backend/internal/apierr"
)

// CORS allows any origin. OPTIONS requests are answered here with an empty
// 200 and never reach the dispatcher.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, PATCH, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Limit bounds the number of requests served at once. Excess requests wait
// for a slot until their context ends.
func Limit(maxConcurrent int64, metrics *Metrics, logger *slog.Logger) func(http.Handler) http.Handler {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultConfig().MaxConcurrent
	}
	sem := semaphore.NewWeighted(maxConcurrent)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if err := sem.Acquire(ctx, 1); err != nil {
				metrics.rejected()
				writeError(ctx, w, logger, middleware.GetReqID(ctx),
					apierr.Internal("request abandoned while waiting for a worker", err))
				return
			}
			defer sem.Release(1)

			metrics.inflight(1)
			defer metrics.inflight(-1)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request and feeds the request metrics.
func RequestLogger(logger *slog.Logger, metrics *Metrics, resolve func(method, path string) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := r.URL.Path
			if resolve != nil {
				route = resolve(r.Method, r.URL.Path)
			}
			metrics.observe(r.Method, route, status, elapsed)

			logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", elapsed),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
