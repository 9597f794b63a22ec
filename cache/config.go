package cache

import (
	"time"

	"github.com/goliatone/go-mock-backend/internal/cacheinfra"
)

// Config is the read cache section of the service configuration.
type Config struct {
	Enabled            bool          `mapstructure:"enabled" yaml:"enabled"`
	Capacity           int           `mapstructure:"capacity" yaml:"capacity"`
	NumShards          int           `mapstructure:"num_shards" yaml:"num_shards"`
	TTL                time.Duration `mapstructure:"ttl" yaml:"ttl"`
	EvictionPercentage int           `mapstructure:"eviction_percentage" yaml:"eviction_percentage"`
	EvictionInterval   time.Duration `mapstructure:"eviction_interval" yaml:"eviction_interval"`
	EarlyRefresh       EarlyRefresh  `mapstructure:"early_refresh" yaml:"early_refresh"`
}

// EarlyRefresh keeps hot keys fresh by refetching them in the background
// once they are older than a random age between MinAsync and MaxAsync.
// Entries older than Sync are refetched before being served.
type EarlyRefresh struct {
	Enabled        bool          `mapstructure:"enabled" yaml:"enabled"`
	MinAsync       time.Duration `mapstructure:"min_async" yaml:"min_async"`
	MaxAsync       time.Duration `mapstructure:"max_async" yaml:"max_async"`
	Sync           time.Duration `mapstructure:"sync" yaml:"sync"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" yaml:"retry_base_delay"`
}

// DefaultConfig returns a disabled cache with usable sizing, so enabling it
// only takes flipping Enabled.
func DefaultConfig() Config {
	c := cacheinfra.DefaultConfig()
	return Config{
		Enabled:            false,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

// Validate checks sizing. A disabled cache is always valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	return c.toInternal().Validate()
}

// NewCacheService builds the sturdyc-backed service.
func NewCacheService(cfg Config) (CacheService, error) {
	svc, err := cacheinfra.NewSturdycService(cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (c Config) toInternal() cacheinfra.Config {
	cfg := cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
	if er := c.EarlyRefresh; er.Enabled {
		cfg.EarlyRefresh = &cacheinfra.EarlyRefreshConfig{
			MinAsyncRefreshTime: er.MinAsync,
			MaxAsyncRefreshTime: er.MaxAsync,
			SyncRefreshTime:     er.Sync,
			RetryBaseDelay:      er.RetryBaseDelay,
		}
	}
	return cfg
}
