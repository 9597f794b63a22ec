package seed

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mock-backend/store"
)

// Config is the seed section of the service configuration.
type Config struct {
	// File optionally names a YAML seed document. Kinds it lists replace the
	// generated ones.
	File   string `mapstructure:"file" yaml:"file"`
	Counts Counts `mapstructure:"counts" yaml:"counts"`
}

// DefaultConfig generates the default data set.
func DefaultConfig() Config {
	return Config{Counts: DefaultCounts()}
}

// Validate rejects negative counts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c.Counts,
		validation.Field(&c.Counts.Clients, validation.Min(0)),
		validation.Field(&c.Counts.Tpps, validation.Min(0)),
		validation.Field(&c.Counts.Orgs, validation.Min(0)),
		validation.Field(&c.Counts.Relations, validation.Min(0)),
	)
}

// Seeder returns the store seeder described by c.
func (c Config) Seeder(logger *slog.Logger) store.Seeder {
	producer := NewProducer(c.Counts, logger)
	if c.File == "" {
		return producer
	}
	return NewFileSeeder(c.File, producer, logger)
}
