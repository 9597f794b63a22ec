// Package service implements the entity services behind the API. Each
// resource is a Service over one entity contract; its Routes method returns
// the route table the router registers at startup.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goliatone/go-mock-backend/dao"
	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/router"
)

// RouteProvider is implemented by every service.
type RouteProvider interface {
	Routes() []router.Route
}

// DeleteResult is the response of a single delete.
type DeleteResult struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Option configures a Service.
type Option func(*options)

type options struct {
	logger *slog.Logger
	newID  func() string
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIDGenerator replaces the uuid generator used for entities whose
// contract allows a generated id.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Service provides CRUD for one entity kind on top of a DAO.
type Service[T entity.Entity] struct {
	dao      dao.DAO
	codec    entity.Codec[T]
	resource Resource
	logger   *slog.Logger
	newID    func() string
}

// New builds a service. d must serve the codec's kind; a mismatch is a
// wiring bug and panics.
func New[T entity.Entity](d dao.DAO, codec entity.Codec[T], resource Resource, opts ...Option) *Service[T] {
	if d.Kind() != codec.Kind {
		panic(fmt.Sprintf("service %s: dao serves %s, codec expects %s", resource.Path, d.Kind(), codec.Kind))
	}

	o := options{
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service[T]{
		dao:      d,
		codec:    codec,
		resource: resource,
		logger:   o.logger.With("resource", resource.Name()),
		newID:    o.newID,
	}
}

// Resource returns the resource the service is mounted on.
func (s *Service[T]) Resource() Resource { return s.resource }

// Create validates data, assigns an id when the contract generates one and
// the caller gave none, and stores the entity.
func (s *Service[T]) Create(ctx context.Context, data entity.Record) (T, error) {
	var zero T

	if data == nil {
		return zero, s.codec.Validate(nil)
	}

	record := data.Clone()
	if s.codec.GeneratedID {
		if id, _ := record.String(s.codec.IDField); id == "" {
			record[s.codec.IDField] = s.newID()
		}
	}

	item, err := s.codec.Decode(record)
	if err != nil {
		return zero, err
	}
	if _, err := s.dao.Create(ctx, item.ToRecord()); err != nil {
		return zero, err
	}

	s.logger.Debug("entity created", "id", item.ID())
	return item, nil
}

// Update merges patch onto the stored record and validates the result. The
// identifier always stays id, whatever the patch says.
func (s *Service[T]) Update(ctx context.Context, id string, patch entity.Record) (T, error) {
	var zero T

	existing, err := s.dao.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	merged := existing.Merge(patch)
	merged[s.codec.IDField] = id

	item, err := s.codec.Decode(merged)
	if err != nil {
		return zero, err
	}
	if _, err := s.dao.Update(ctx, id, item.ToRecord()); err != nil {
		return zero, err
	}

	s.logger.Debug("entity updated", "id", id)
	return item, nil
}

// Delete removes the entity with the given id.
func (s *Service[T]) Delete(ctx context.Context, id string) (DeleteResult, error) {
	ok, err := s.dao.DeleteByID(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if !ok {
		return DeleteResult{}, apierr.RecordNotFound(s.codec.Kind.String(), id)
	}

	s.logger.Debug("entity deleted", "id", id)
	return DeleteResult{Status: "deleted", ID: id}, nil
}

// DeleteBatch removes every id it can and reports the rest.
func (s *Service[T]) DeleteBatch(ctx context.Context, ids []string) (dao.BatchResult, error) {
	result, err := s.dao.DeleteBatch(ctx, ids)
	if err != nil {
		return dao.BatchResult{}, err
	}
	if result.Status == dao.BatchPartial {
		s.logger.Info("batch delete partially failed", "failed", result.Failed)
	}
	return result, nil
}

// GetAll returns every entity matching filters, in insertion order.
func (s *Service[T]) GetAll(ctx context.Context, filters dao.Filters) ([]T, error) {
	records, err := s.dao.GetBatch(ctx, filters)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, s.codec.FromRecord(r))
	}
	return out, nil
}

// GetByID returns the entity with the given id.
func (s *Service[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	record, err := s.dao.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.codec.FromRecord(record), nil
}

// Routes returns the resource's route table:
//
//	GET    /api/<r>
//	POST   /api/<r>
//	GET    /api/<r>/{id}
//	PATCH  /api/<r>/{id}
//	DELETE /api/<r>/{id}
//	DELETE /api/<r>Batch
func (s *Service[T]) Routes() []router.Route {
	collection := s.resource.Path
	item := collection + "/{id}"

	return []router.Route{
		{Pattern: collection, Method: router.MethodGet, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.GetAll(ctx, queryFilters(args.Query))
		}},
		{Pattern: collection, Method: router.MethodPost, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.Create(ctx, args.Data)
		}},
		{Pattern: item, Method: router.MethodGet, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.GetByID(ctx, args.Param("id"))
		}},
		{Pattern: item, Method: router.MethodPatch, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.Update(ctx, args.Param("id"), args.Data)
		}},
		{Pattern: item, Method: router.MethodDelete, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.Delete(ctx, args.Param("id"))
		}},
		{Pattern: s.resource.BatchPath(), Method: router.MethodDelete, BatchParam: s.resource.BatchParam, Handler: func(ctx context.Context, args router.Args) (any, error) {
			return s.DeleteBatch(ctx, args.IDs)
		}},
	}
}

// queryFilters turns query parameters into exact-match filters. Values stay
// strings, so only string fields can be filtered from a query.
func queryFilters(query map[string]string) dao.Filters {
	if len(query) == 0 {
		return nil
	}
	filters := make(dao.Filters, len(query))
	for k, v := range query {
		filters[k] = v
	}
	return filters
}
