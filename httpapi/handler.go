package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/router"
)

// Dispatcher is the part of router.Registry the handler needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, req router.Request) (any, error)
}

// Handler adapts HTTP requests to Dispatcher calls: it decodes the JSON body,
// collects the query string, and writes the result or the error envelope.
type Handler struct {
	dispatcher   Dispatcher
	logger       *slog.Logger
	maxBodyBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the logger for failed requests.
func WithHandlerLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMaxBodyBytes caps request bodies. Zero or less leaves the default.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns a Handler dispatching to d.
func NewHandler(d Dispatcher, opts ...HandlerOption) *Handler {
	h := &Handler{
		dispatcher:   d,
		logger:       slog.Default(),
		maxBodyBytes: DefaultConfig().MaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	body, err := h.readBody(w, r)
	if err != nil {
		writeError(ctx, w, h.logger, reqID, err)
		return
	}

	result, err := h.dispatcher.Dispatch(ctx, router.Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   body,
		Query:  firstValues(r),
	})
	if err != nil {
		writeError(ctx, w, h.logger, reqID, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readBody decodes a JSON object body. An empty body yields nil, which the
// dispatcher reports as missing where one is required.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (entity.Record, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apierr.MalformedInput("request body too large", err)
		}
		return nil, apierr.MalformedInput("could not read request body", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, apierr.MalformedInput("request body must be a JSON object", err)
	}
	if body == nil {
		// literal null
		return nil, nil
	}
	return entity.Record(body), nil
}

func firstValues(r *http.Request) map[string]string {
	values := r.URL.Query()
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
