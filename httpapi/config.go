package httpapi

import "time"

// Config is the server section of the service configuration.
type Config struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	MaxConcurrent   int64         `mapstructure:"max_concurrent" yaml:"max_concurrent"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DefaultConfig serves on :8080 with at most 10 requests in flight.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxConcurrent:   10,
		MaxBodyBytes:    1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}
