package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
)

// Seeder produces the initial content of every collection.
type Seeder interface {
	Seed(ctx context.Context) (map[entity.Kind][]entity.Record, error)
}

// SeederFunc adapts a function to Seeder.
type SeederFunc func(ctx context.Context) (map[entity.Kind][]entity.Record, error)

func (f SeederFunc) Seed(ctx context.Context) (map[entity.Kind][]entity.Record, error) {
	return f(ctx)
}

// Empty seeds nothing.
var Empty Seeder = SeederFunc(func(context.Context) (map[entity.Kind][]entity.Record, error) {
	return nil, nil
})

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for seeding events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the process-lifetime table of entity collections. Each kind maps to
// an ordered slice of records; order is insertion order.
//
// A single RWMutex guards all collections. Mutations hold the write lock for
// their whole scan-then-write sequence, reads hold the read lock while they
// copy. Records handed in or out are cloned, so nothing outside the store
// holds a reference to live data.
type Store struct {
	mu   sync.RWMutex
	data map[entity.Kind][]entity.Record

	seedMu sync.Mutex
	seeded atomic.Bool
	seeder Seeder

	logger *slog.Logger
}

// New creates an empty store. The seeder runs on the first operation or an
// explicit Initialize call, whichever comes first.
func New(seeder Seeder, opts ...Option) *Store {
	if seeder == nil {
		seeder = Empty
	}
	s := &Store{
		data:   emptyCollections(),
		seeder: seeder,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func emptyCollections() map[entity.Kind][]entity.Record {
	data := make(map[entity.Kind][]entity.Record, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		data[kind] = []entity.Record{}
	}
	return data
}

// Initialize populates every collection from the seeder exactly once.
// Concurrent callers block until the first one finishes; later calls are
// no-ops. A failed seed leaves the store unseeded so the next call retries.
func (s *Store) Initialize(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.seeded.Load() {
		return nil
	}

	seed, err := s.seeder.Seed(ctx)
	if err != nil {
		return apierr.Internal("seed store", err)
	}

	data := emptyCollections()
	for kind, records := range seed {
		if !kind.Valid() {
			return apierr.Internal(fmt.Sprintf("seed store: unknown kind %q", kind), nil)
		}
		cloned := make([]entity.Record, 0, len(records))
		for _, r := range records {
			cloned = append(cloned, r.Clone())
		}
		data[kind] = cloned
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	s.seeded.Store(true)

	for _, kind := range entity.Kinds() {
		s.logger.Debug("store seeded", "kind", kind, "records", len(data[kind]))
	}
	return nil
}

// Initialized reports whether the seeder already ran.
func (s *Store) Initialized() bool {
	return s.seeded.Load()
}

// Reset drops every record and re-arms seeding.
func (s *Store) Reset() {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	s.mu.Lock()
	s.data = emptyCollections()
	s.mu.Unlock()
	s.seeded.Store(false)
}

func (s *Store) ready(ctx context.Context, kind entity.Kind) error {
	if !kind.Valid() {
		return apierr.Internal(fmt.Sprintf("unknown kind %q", kind), nil)
	}
	return s.Initialize(ctx)
}

// GetAll returns a copy of the kind's collection in insertion order.
func (s *Store) GetAll(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	if err := s.ready(ctx, kind); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.data[kind]
	out := make([]entity.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out, nil
}

// Find returns the first record whose idField equals id.
func (s *Store) Find(ctx context.Context, kind entity.Kind, idField, id string) (entity.Record, bool, error) {
	if err := s.ready(ctx, kind); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.data[kind], idField, id); i >= 0 {
		return s.data[kind][i].Clone(), true, nil
	}
	return nil, false, nil
}

// Len returns the number of records of the given kind.
func (s *Store) Len(ctx context.Context, kind entity.Kind) (int, error) {
	if err := s.ready(ctx, kind); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[kind]), nil
}

// Add appends record to the kind's collection. Identifiers are not checked
// for uniqueness; lookups return the first match.
func (s *Store) Add(ctx context.Context, kind entity.Kind, record entity.Record) error {
	if err := s.ready(ctx, kind); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[kind] = append(s.data[kind], record.Clone())
	return nil
}

// Update replaces the first record whose idField equals id and reports
// whether one was found.
func (s *Store) Update(ctx context.Context, kind entity.Kind, idField, id string, record entity.Record) (bool, error) {
	if err := s.ready(ctx, kind); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.data[kind], idField, id)
	if i < 0 {
		return false, nil
	}
	s.data[kind][i] = record.Clone()
	return true, nil
}

// DeleteByID removes the first record whose idField equals id and reports
// whether one was found. Remaining records keep their order.
func (s *Store) DeleteByID(ctx context.Context, kind entity.Kind, idField, id string) (bool, error) {
	if err := s.ready(ctx, kind); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.data[kind]
	i := indexOf(records, idField, id)
	if i < 0 {
		return false, nil
	}
	s.data[kind] = append(records[:i:i], records[i+1:]...)
	return true, nil
}

func indexOf(records []entity.Record, idField, id string) int {
	for i, r := range records {
		if v, ok := r.String(idField); ok && v == id {
			return i
		}
	}
	return -1
}
