package cacheinfra

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/viccon/sturdyc"
)

// Config holds the sturdyc client settings.
type Config struct {
	// Capacity is the maximum number of entries held across all shards.
	Capacity int
	// NumShards splits the keyspace to reduce lock contention.
	NumShards int
	// TTL is how long an entry stays valid after it was fetched.
	TTL time.Duration
	// EvictionPercentage is the share of a full shard evicted at once (1-100).
	EvictionPercentage int
	// EarlyRefresh enables background refreshes of hot keys. Nil disables it.
	EarlyRefresh *EarlyRefreshConfig
	// EvictionInterval overrides how often expired entries are swept. Zero keeps
	// the sturdyc default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig mirrors sturdyc.WithEarlyRefreshes.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig sizes the cache for a mock data set of a few hundred records.
// Early refresh stays off.
func DefaultConfig() Config {
	return Config{
		Capacity:           1000,
		NumShards:          16,
		TTL:                30 * time.Second,
		EvictionPercentage: 10,
	}
}

func (c Config) options() []sturdyc.Option {
	var options []sturdyc.Option
	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}
	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}
	return options
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Capacity <= 0 {
		result = multierror.Append(result, &ConfigError{Field: "Capacity", Message: "must be greater than 0"})
	}
	if c.NumShards <= 0 {
		result = multierror.Append(result, &ConfigError{Field: "NumShards", Message: "must be greater than 0"})
	}
	if c.NumShards > 0 && c.Capacity > 0 && c.NumShards > c.Capacity {
		result = multierror.Append(result, &ConfigError{Field: "NumShards", Message: "must not exceed Capacity"})
	}
	if c.TTL <= 0 {
		result = multierror.Append(result, &ConfigError{Field: "TTL", Message: "must be greater than 0"})
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		result = multierror.Append(result, &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"})
	}
	if er := c.EarlyRefresh; er != nil {
		if er.MinAsyncRefreshTime < 0 || er.MaxAsyncRefreshTime < 0 || er.SyncRefreshTime < 0 || er.RetryBaseDelay < 0 {
			result = multierror.Append(result, &ConfigError{Field: "EarlyRefresh", Message: "durations must be non-negative"})
		}
		if er.MaxAsyncRefreshTime < er.MinAsyncRefreshTime {
			result = multierror.Append(result, &ConfigError{Field: "EarlyRefresh.MaxAsyncRefreshTime", Message: "must not be lower than MinAsyncRefreshTime"})
		}
	}

	return result.ErrorOrNil()
}

// ConfigError describes one invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
