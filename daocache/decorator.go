package daocache

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-mock-backend/cache"
	"github.com/goliatone/go-mock-backend/dao"
	"github.com/goliatone/go-mock-backend/entity"
)

var _ dao.DAO = (*CachedDAO)(nil)

// CachedDAO decorates a dao.DAO with read-through caching of GetByID and
// GetBatch.
//
// Keys are namespaced by kind and by a write generation. Every successful
// write bumps the generation before dropping older keys, so a read that
// raced with the write can only populate a key no later reader will ask for.
type CachedDAO struct {
	base          dao.DAO
	cache         cache.CacheService
	keySerializer cache.KeySerializer
	keyRegistry   *sync.Map
	namespace     string
	generation    atomic.Uint64
	logger        *slog.Logger
}

// Option configures a CachedDAO.
type Option func(*CachedDAO)

// WithLogger sets the logger used to report invalidation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CachedDAO) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithKeySerializer overrides the default key serializer.
func WithKeySerializer(serializer cache.KeySerializer) Option {
	return func(c *CachedDAO) {
		if serializer != nil {
			c.keySerializer = serializer
		}
	}
}

// New wraps base with caching backed by cacheService.
func New(base dao.DAO, cacheService cache.CacheService, opts ...Option) *CachedDAO {
	c := &CachedDAO{
		base:          base,
		cache:         cacheService,
		keySerializer: cache.NewDefaultKeySerializer(),
		keyRegistry:   &sync.Map{},
		namespace:     toSnake(base.Kind().String()) + cache.KeySeparator,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CachedDAO) Kind() entity.Kind { return c.base.Kind() }
func (c *CachedDAO) IDField() string   { return c.base.IDField() }

// Namespace is the key prefix shared by every entry of this DAO.
func (c *CachedDAO) Namespace() string { return c.namespace }

// GetByID returns a cached copy of the record. Not-found results are not cached.
func (c *CachedDAO) GetByID(ctx context.Context, id string) (entity.Record, error) {
	key := c.key("GetByID", id)
	record, err := cache.GetOrFetch(ctx, c.cache, key, func(ctx context.Context) (entity.Record, error) {
		return c.base.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// GetBatch returns cached copies of the filtered collection. Filter sets
// that differ only in map order share an entry.
func (c *CachedDAO) GetBatch(ctx context.Context, filters dao.Filters) ([]entity.Record, error) {
	key := c.key("GetBatch", map[string]any(filters))
	records, err := cache.GetOrFetch(ctx, c.cache, key, func(ctx context.Context) ([]entity.Record, error) {
		return c.base.GetBatch(ctx, filters)
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out, nil
}

func (c *CachedDAO) Create(ctx context.Context, record entity.Record) (entity.Record, error) {
	result, err := c.base.Create(ctx, record)
	if err == nil {
		c.invalidate(ctx)
	}
	return result, err
}

func (c *CachedDAO) Update(ctx context.Context, id string, record entity.Record) (entity.Record, error) {
	result, err := c.base.Update(ctx, id, record)
	if err == nil {
		c.invalidate(ctx)
	}
	return result, err
}

func (c *CachedDAO) DeleteByID(ctx context.Context, id string) (bool, error) {
	ok, err := c.base.DeleteByID(ctx, id)
	if err == nil && ok {
		c.invalidate(ctx)
	}
	return ok, err
}

func (c *CachedDAO) DeleteBatch(ctx context.Context, ids []string) (dao.BatchResult, error) {
	result, err := c.base.DeleteBatch(ctx, ids)
	if err == nil && len(result.Deleted) > 0 {
		c.invalidate(ctx)
	}
	return result, err
}

func (c *CachedDAO) generationPrefix(gen uint64) string {
	return c.namespace + "g" + strconv.FormatUint(gen, 10) + cache.KeySeparator
}

func (c *CachedDAO) key(method string, args ...any) string {
	key := c.generationPrefix(c.generation.Load()) + c.keySerializer.SerializeKey(method, args...)
	c.keyRegistry.Store(key, struct{}{})
	return key
}

// invalidate moves readers to a new generation and drops every key tracked
// under an older one.
func (c *CachedDAO) invalidate(ctx context.Context) {
	current := c.generationPrefix(c.generation.Add(1))

	var stale []string
	c.keyRegistry.Range(func(k, _ any) bool {
		if key, ok := k.(string); ok && !strings.HasPrefix(key, current) {
			stale = append(stale, key)
		}
		return true
	})
	if len(stale) == 0 {
		return
	}

	if err := c.cache.InvalidateKeys(ctx, stale); err != nil {
		c.logger.Warn("cache invalidation failed", "namespace", c.namespace, "keys", len(stale), "error", err)
		return
	}
	for _, key := range stale {
		c.keyRegistry.Delete(key)
	}
}
