package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/pkg/testsupport"
)

func TestFileSeeder_OverridesListedKinds(t *testing.T) {
	seeder := NewFileSeeder("testdata/seed.yaml", NewProducer(DefaultCounts(), nil), nil)

	data, err := seeder.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	envs := data[entity.KindEnv]
	if len(envs) != 1 || envs[0]["name"] != "staging" || envs[0]["stillUsing"] != true {
		t.Errorf("unexpected env collection: %v", envs)
	}
	if len(data[entity.KindScope]) != 1 {
		t.Errorf("expected scope collection from file, got %d", len(data[entity.KindScope]))
	}
	if len(data[entity.KindClient]) != 15 {
		t.Errorf("expected clients from fallback, got %d", len(data[entity.KindClient]))
	}
}

func TestFileSeeder_MissingFile(t *testing.T) {
	seeder := NewFileSeeder(filepath.Join(t.TempDir(), "absent.yaml"), nil, nil)
	if _, err := seeder.Seed(context.Background()); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{"unknown kind", "widget:\n  - id: x\n", apierr.CodeMalformedInput},
		{"not yaml", "client: [", apierr.CodeMalformedInput},
		{"missing id", "org:\n  - orgName: Acme\n", apierr.CodeMissingParameter},
		{"invalid record", "org:\n  - orgId: ORG9\n    orgName: 12\n", apierr.CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !apierr.HasCode(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestParse_NestedRelations(t *testing.T) {
	raw := testsupport.LoadFixture(t, testsupport.FixturePath("seed.yaml"))
	dir := t.TempDir()
	path := filepath.Join(dir, "relations.yaml")
	doc := append(raw, []byte("tppOrg:\n  - tppOrgId: TO1\n    tpp:\n      tppId: TPP1\n      tppName: One\n    org:\n      orgId: ORG1\n      orgName: Org\n")...)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewFileSeeder(path, nil, nil).Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	rel := entity.TppOrgCodec.FromRecord(data[entity.KindTppOrg][0])
	if rel.Tpp.TppID != "TPP1" || rel.Org.OrgName != "Org" {
		t.Errorf("nested records not decoded: %+v", rel)
	}
}
