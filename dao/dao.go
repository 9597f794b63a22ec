// Package dao implements the generic data access object every entity service
// delegates to. A RecordDAO is bound to one kind and one identifier field of
// a shared store.Store.
package dao

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/store"
)

// Filters restricts GetBatch to records whose fields equal every value given.
type Filters map[string]any

// Matches reports whether r satisfies every filter pair.
func (f Filters) Matches(r entity.Record) bool {
	for key, want := range f {
		got, ok := r[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// DAO is the data access contract for a single entity kind.
type DAO interface {
	Kind() entity.Kind
	IDField() string
	GetByID(ctx context.Context, id string) (entity.Record, error)
	GetBatch(ctx context.Context, filters Filters) ([]entity.Record, error)
	Create(ctx context.Context, record entity.Record) (entity.Record, error)
	Update(ctx context.Context, id string, record entity.Record) (entity.Record, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteBatch(ctx context.Context, ids []string) (BatchResult, error)
}

// Batch result statuses.
const (
	BatchSuccess = "success"
	BatchPartial = "partial"
)

// BatchResult summarizes a batch delete. Deleted and Failed keep input order
// and are never nil.
type BatchResult struct {
	Status  string   `json:"status"`
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
	Message string   `json:"message"`
}

func newBatchResult(deleted, failed []string) BatchResult {
	status := BatchSuccess
	if len(failed) > 0 {
		status = BatchPartial
	}
	return BatchResult{
		Status:  status,
		Deleted: deleted,
		Failed:  failed,
		Message: fmt.Sprintf("Successfully deleted %d items, failed to delete %d items", len(deleted), len(failed)),
	}
}

// Option configures a RecordDAO.
type Option func(*RecordDAO)

// WithLogger sets the logger for batch outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(d *RecordDAO) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// RecordDAO is the store-backed DAO.
type RecordDAO struct {
	store   *store.Store
	kind    entity.Kind
	idField string
	logger  *slog.Logger
}

var _ DAO = (*RecordDAO)(nil)

// New binds a DAO to kind in s, using idField as the identifier key.
func New(s *store.Store, kind entity.Kind, idField string, opts ...Option) *RecordDAO {
	d := &RecordDAO{
		store:   s,
		kind:    kind,
		idField: idField,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *RecordDAO) Kind() entity.Kind { return d.kind }
func (d *RecordDAO) IDField() string   { return d.idField }

// GetByID returns the first record with the given id.
func (d *RecordDAO) GetByID(ctx context.Context, id string) (entity.Record, error) {
	record, ok, err := d.store.Find(ctx, d.kind, d.idField, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.RecordNotFound(d.kind.String(), id)
	}
	return record, nil
}

// GetBatch returns every record of the kind in insertion order, narrowed by
// filters when any are given.
func (d *RecordDAO) GetBatch(ctx context.Context, filters Filters) ([]entity.Record, error) {
	records, err := d.store.GetAll(ctx, d.kind)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return records, nil
	}

	out := make([]entity.Record, 0, len(records))
	for _, r := range records {
		if filters.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Create appends record. Identifier uniqueness is not enforced.
func (d *RecordDAO) Create(ctx context.Context, record entity.Record) (entity.Record, error) {
	if err := d.store.Add(ctx, d.kind, record); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// Update replaces the record with the given id.
func (d *RecordDAO) Update(ctx context.Context, id string, record entity.Record) (entity.Record, error) {
	ok, err := d.store.Update(ctx, d.kind, d.idField, id, record)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierr.RecordNotFound(d.kind.String(), id)
	}
	return record.Clone(), nil
}

// DeleteByID removes the record with the given id. A missing record is
// reported as false, not as an error.
func (d *RecordDAO) DeleteByID(ctx context.Context, id string) (bool, error) {
	return d.store.DeleteByID(ctx, d.kind, d.idField, id)
}

// DeleteBatch deletes every id independently, in input order. Ids that are
// absent land in Failed; the batch as a whole never fails for them.
func (d *RecordDAO) DeleteBatch(ctx context.Context, ids []string) (BatchResult, error) {
	deleted := make([]string, 0, len(ids))
	failed := make([]string, 0)

	for _, id := range ids {
		ok, err := d.store.DeleteByID(ctx, d.kind, d.idField, id)
		if err != nil {
			return BatchResult{}, err
		}
		if ok {
			deleted = append(deleted, id)
		} else {
			failed = append(failed, id)
		}
	}

	result := newBatchResult(deleted, failed)
	d.logger.Debug("batch delete",
		"kind", d.kind,
		"deleted", len(deleted),
		"failed", len(failed),
	)
	return result, nil
}
