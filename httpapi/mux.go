package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-mock-backend/router"
)

// MuxOptions collects what NewMux wires together.
type MuxOptions struct {
	Registry *router.Registry
	Config   Config
	Metrics  *Metrics
	Logger   *slog.Logger
}

// NewMux builds the outer HTTP surface: health and metrics endpoints, and
// every other path handed to the dispatcher behind the concurrency limit.
func NewMux(opts MuxOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	resolve := func(method, path string) string {
		if route, _, ok := opts.Registry.Lookup(method, path); ok {
			return route.Pattern
		}
		return "unmatched"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger, opts.Metrics, resolve))
	r.Use(CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	api := Limit(opts.Config.MaxConcurrent, opts.Metrics, logger)(
		NewHandler(opts.Registry,
			WithHandlerLogger(logger),
			WithMaxBodyBytes(opts.Config.MaxBodyBytes),
		),
	)
	r.NotFound(api.ServeHTTP)
	r.MethodNotAllowed(api.ServeHTTP)
	return r
}
