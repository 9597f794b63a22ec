// Package cacheinfra adapts sturdyc to the cache.CacheService contract.
package cacheinfra

import (
	"context"

	"github.com/viccon/sturdyc"
)

// entry boxes cached values. sturdyc type-asserts every fetch result, and a
// nil interface fails that assertion, which would replace the fetch error
// with sturdyc.ErrInvalidType.
type entry struct {
	value any
}

// SturdycService is a sharded in-process read-through cache.
type SturdycService struct {
	client *sturdyc.Client[entry]
}

// NewSturdycService validates cfg and builds the sturdyc client.
func NewSturdycService(cfg Config) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[entry](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.options()...,
	)
	return &SturdycService{client: client}, nil
}

// GetOrFetch returns the cached value for key, calling fetch on a miss.
// Concurrent misses for the same key share one fetch. Errors are not cached;
// nil results are.
func (s *SturdycService) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	e, err := s.client.GetOrFetch(ctx, key, func(ctx context.Context) (entry, error) {
		value, err := fetch(ctx)
		return entry{value: value}, err
	})
	if err != nil {
		return nil, err
	}
	return e.value, nil
}

// InvalidateKeys drops every key given.
func (s *SturdycService) InvalidateKeys(ctx context.Context, keys []string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

// Keys lists the keys currently held, in no particular order.
func (s *SturdycService) Keys() []string {
	return s.client.ScanKeys()
}
