package router

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
)

// Supported methods.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

// ParamData names the request body argument.
const ParamData = "data"

var validMethods = map[string]bool{
	MethodGet:     true,
	MethodPost:    true,
	MethodPut:     true,
	MethodPatch:   true,
	MethodDelete:  true,
	MethodOptions: true,
}

// Args carries the arguments assembled for a handler.
type Args struct {
	// Path holds the pattern bindings.
	Path map[string]string
	// Data is the request body, set when the route requires it.
	Data entity.Record
	// IDs is the batch id list, set on batch routes.
	IDs []string
	// Query holds query string values. Never required.
	Query map[string]string
}

// Param returns a path binding.
func (a Args) Param(name string) string {
	return a.Path[name]
}

// Handler serves one route.
type Handler func(ctx context.Context, args Args) (any, error)

// Route binds a pattern and method to a handler.
type Route struct {
	Pattern string
	Method  string
	Handler Handler
	// BatchParam names the body field holding the id list of a batch route.
	BatchParam string
	// Params is filled in by Register from RequiredParams.
	Params []string
}

// Request is the transport-neutral input to Dispatch. A nil Body means the
// request carried none.
type Request struct {
	Method string
	Path   string
	Body   entity.Record
	Query  map[string]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry holds routes in registration order.
type Registry struct {
	mu     sync.RWMutex
	routes []Route
	index  map[string]int
	logger *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		index:  make(map[string]int),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// Register adds routes in order. It stops at the first invalid or
// conflicting route; routes before it stay registered.
func (r *Registry) Register(routes ...Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, route := range routes {
		if err := validateRoute(route); err != nil {
			return err
		}
		key := routeKey(route.Method, route.Pattern)
		if _, exists := r.index[key]; exists {
			return apierr.RouteConflict(route.Method, route.Pattern)
		}

		route.Params = RequiredParams(route.Pattern, route.Method, route.BatchParam)
		r.index[key] = len(r.routes)
		r.routes = append(r.routes, route)
		r.logger.Debug("route registered", "method", route.Method, "pattern", route.Pattern, "params", route.Params)
	}
	return nil
}

func validateRoute(route Route) error {
	if !validMethods[route.Method] {
		return apierr.Internal(fmt.Sprintf("invalid method %q for route %s", route.Method, route.Pattern), nil)
	}
	if !strings.HasPrefix(route.Pattern, "/") {
		return apierr.Internal(fmt.Sprintf("route pattern %q must start with /", route.Pattern), nil)
	}
	for _, name := range PathParams(route.Pattern) {
		if name == "" {
			return apierr.Internal(fmt.Sprintf("route pattern %q has an empty parameter", route.Pattern), nil)
		}
	}
	if route.Handler == nil {
		return apierr.Internal(fmt.Sprintf("route %s %s has no handler", route.Method, route.Pattern), nil)
	}
	return nil
}

// Routes returns the registered routes in registration order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Route(nil), r.routes...)
}

// Lookup returns the first route matching method and path, with its bindings.
func (r *Registry) Lookup(method, path string) (Route, map[string]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if ok, params := Match(route.Pattern, path); ok {
			return route, params, true
		}
	}
	return Route{}, nil, false
}

// Dispatch resolves req to a route, assembles the handler arguments and runs
// the handler. The handler's result and error are returned unchanged.
func (r *Registry) Dispatch(ctx context.Context, req Request) (any, error) {
	route, bindings, ok := r.Lookup(req.Method, req.Path)
	if !ok {
		return nil, apierr.RouteNotFound(req.Method, req.Path)
	}

	args, err := assemble(route, bindings, req)
	if err != nil {
		return nil, err
	}
	return route.Handler(ctx, args)
}

func assemble(route Route, bindings map[string]string, req Request) (Args, error) {
	args := Args{
		Path:  bindings,
		Query: req.Query,
	}
	if args.Query == nil {
		args.Query = map[string]string{}
	}

	for _, param := range route.Params {
		switch {
		case hasKey(bindings, param):
		case param == ParamData:
			if req.Body == nil {
				return Args{}, apierr.MissingParameter("request body required", ParamData)
			}
			args.Data = req.Body
		case param == route.BatchParam:
			raw, present := req.Body[param]
			if !present {
				return Args{}, apierr.MissingParameter(fmt.Sprintf("%s required in request body", param), param)
			}
			ids, ok := entity.AsStrings(raw)
			if !ok {
				return Args{}, apierr.MalformedInput(fmt.Sprintf("%s must be a list of strings", param), nil)
			}
			args.IDs = ids
		default:
			return Args{}, apierr.MissingParameter(fmt.Sprintf("missing required parameter: %s", param), param)
		}
	}
	return args, nil
}

func hasKey(m map[string]string, key string) bool {
	_, ok := m[key]
	return ok
}
