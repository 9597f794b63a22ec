// Package config assembles the service configuration from defaults, an
// optional YAML file, and MOCKAPI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/goliatone/go-mock-backend/cache"
	"github.com/goliatone/go-mock-backend/httpapi"
	"github.com/goliatone/go-mock-backend/internal/logging"
	"github.com/goliatone/go-mock-backend/seed"
)

// EnvPrefix prefixes every environment override. "server.addr" is read
// from MOCKAPI_SERVER_ADDR.
const EnvPrefix = "MOCKAPI"

// Config aggregates configuration for the service. Each section is owned
// by the package it configures.
type Config struct {
	Server httpapi.Config `mapstructure:"server" yaml:"server"`
	Log    logging.Config `mapstructure:"log" yaml:"log"`
	Seed   seed.Config    `mapstructure:"seed" yaml:"seed"`
	Cache  cache.Config   `mapstructure:"cache" yaml:"cache"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Server: httpapi.DefaultConfig(),
		Log:    logging.DefaultConfig(),
		Seed:   seed.DefaultConfig(),
		Cache:  cache.DefaultConfig(),
	}
}

// Load reads configuration. With an empty path, mockapi.yaml in the working
// directory is used when present; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mockapi")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section and reports all failures together.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Server.Addr == "" {
		result = multierror.Append(result, errors.New("server.addr is required"))
	}
	if c.Server.MaxConcurrent <= 0 {
		result = multierror.Append(result, errors.New("server.max_concurrent must be positive"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		result = multierror.Append(result, errors.New("server.max_body_bytes must be positive"))
	}
	if err := c.Log.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("log: %w", err))
	}
	if err := c.Seed.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("seed: %w", err))
	}
	if err := c.Cache.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("cache: %w", err))
	}
	return result.ErrorOrNil()
}

// bindEnvs registers every leaf key of cfg so viper consults the matching
// environment variable while unmarshalling.
func bindEnvs(v *viper.Viper, cfg any, parts ...string) {
	val := reflect.ValueOf(cfg)
	typ := reflect.TypeOf(cfg)
	if typ.Kind() == reflect.Ptr {
		val = val.Elem()
		typ = typ.Elem()
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		key := append(append([]string{}, parts...), tag)
		if f.Type.Kind() == reflect.Struct {
			bindEnvs(v, val.Field(i).Interface(), key...)
			continue
		}
		_ = v.BindEnv(strings.Join(key, "."))
	}
}
