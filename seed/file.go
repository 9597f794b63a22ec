package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/store"
)

type validator struct {
	idField  string
	validate func(entity.Record) error
}

var validators = map[entity.Kind]validator{
	entity.KindClient:    {entity.ClientCodec.IDField, entity.ClientCodec.Validate},
	entity.KindTpp:       {entity.TppCodec.IDField, entity.TppCodec.Validate},
	entity.KindOrg:       {entity.OrgCodec.IDField, entity.OrgCodec.Validate},
	entity.KindScope:     {entity.ScopeCodec.IDField, entity.ScopeCodec.Validate},
	entity.KindClientOrg: {entity.ClientOrgCodec.IDField, entity.ClientOrgCodec.Validate},
	entity.KindTppOrg:    {entity.TppOrgCodec.IDField, entity.TppOrgCodec.Validate},
	entity.KindEnv:       {entity.EnvCodec.IDField, entity.EnvCodec.Validate},
}

// FileSeeder loads collections from a YAML document keyed by kind:
//
//	client:
//	  - clientId: "1"
//	    clientName: Robinshood client 1
//	    ...
//	env:
//	  - id: "1"
//	    name: dev 1
//
// Kinds missing from the document are filled by the fallback seeder.
type FileSeeder struct {
	path     string
	fallback store.Seeder
	logger   *slog.Logger
}

// NewFileSeeder returns a seeder reading path. fallback may be nil.
func NewFileSeeder(path string, fallback store.Seeder, logger *slog.Logger) *FileSeeder {
	if fallback == nil {
		fallback = store.Empty
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSeeder{path: path, fallback: fallback, logger: logger}
}

// Seed implements store.Seeder.
func (f *FileSeeder) Seed(ctx context.Context) (map[entity.Kind][]entity.Record, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", f.path, err)
	}

	loaded, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", f.path, err)
	}

	out, err := f.fallback.Seed(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = make(map[entity.Kind][]entity.Record, len(loaded))
	}
	for kind, records := range loaded {
		out[kind] = records
		f.logger.Debug("seed file collection loaded", "kind", kind, "records", len(records), "file", f.path)
	}
	return out, nil
}

// Parse decodes and validates a YAML seed document.
func Parse(raw []byte) (map[entity.Kind][]entity.Record, error) {
	var doc map[string][]map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, apierr.MalformedInput("invalid seed document", err)
	}

	out := make(map[entity.Kind][]entity.Record, len(doc))
	for name, items := range doc {
		kind := entity.Kind(name)
		v, ok := validators[kind]
		if !ok {
			return nil, apierr.MalformedInput(fmt.Sprintf("unknown kind %q in seed document", name), nil)
		}

		records := make([]entity.Record, 0, len(items))
		for i, item := range items {
			r := entity.Record(item).Clone()
			if _, ok := r.String(v.idField); !ok {
				return nil, apierr.MissingParameter(fmt.Sprintf("%s[%d]: %s required", kind, i, v.idField), v.idField)
			}
			if err := v.validate(r); err != nil {
				return nil, err
			}
			records = append(records, r)
		}
		out[kind] = records
	}
	return out, nil
}
