package seed

import (
	"context"
	"testing"

	"github.com/goliatone/go-mock-backend/entity"
)

func TestProducer_DefaultDataSet(t *testing.T) {
	data, err := NewProducer(DefaultCounts(), nil).Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	want := map[entity.Kind]int{
		entity.KindClient:    15,
		entity.KindTpp:       5,
		entity.KindScope:     4,
		entity.KindOrg:       5,
		entity.KindTppOrg:    3,
		entity.KindClientOrg: 3,
		entity.KindEnv:       4,
	}
	for kind, n := range want {
		if got := len(data[kind]); got != n {
			t.Errorf("%s: expected %d records, got %d", kind, n, got)
		}
	}

	first := data[entity.KindClient][0]
	if first["clientId"] != "1" || first["clientName"] != "Robinshood client 1" {
		t.Errorf("unexpected first client: %v", first)
	}
	last := data[entity.KindClient][14]
	if last["clientId"] != "15" || last["clientName"] != "Robinshood client 5" {
		t.Errorf("unexpected last client: %v", last)
	}
}

func TestProducer_RecordsPassValidation(t *testing.T) {
	data, err := NewProducer(DefaultCounts(), nil).Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for kind, records := range data {
		v := validators[kind]
		for _, r := range records {
			if err := v.validate(r); err != nil {
				t.Errorf("%s record %v failed validation: %v", kind, r, err)
			}
		}
	}
}

func TestTpps_AlternateTypeAndStatus(t *testing.T) {
	tpps := Tpps(2)
	if tpps[0].TppType != "Processor" || tpps[0].Status != entity.StatusInactive {
		t.Errorf("TPP1: got %s/%s", tpps[0].TppType, tpps[0].Status)
	}
	if tpps[1].TppType != "Aggregator" || tpps[1].Status != entity.StatusActive {
		t.Errorf("TPP2: got %s/%s", tpps[1].TppType, tpps[1].Status)
	}
}

func TestOrgs_EveryThirdInactive(t *testing.T) {
	for _, org := range Orgs(6) {
		inactive := org.OrgID == "ORG3" || org.OrgID == "ORG6"
		if (org.Status == entity.StatusInactive) != inactive {
			t.Errorf("%s: unexpected status %s", org.OrgID, org.Status)
		}
	}
}

func TestRelations_BoundedByShorterSide(t *testing.T) {
	rels := TppOrgs(Tpps(2), Orgs(5), 3)
	if len(rels) != 2 {
		t.Fatalf("expected 2 relations, got %d", len(rels))
	}
	if rels[1].TppOrgID != "TPP_ORG_2" || rels[1].Org.OrgID != "ORG2" {
		t.Errorf("unexpected relation: %+v", rels[1])
	}

	if got := ClientOrgs(Clients(3), Orgs(3), 0); len(got) != 0 {
		t.Errorf("expected no client orgs, got %d", len(got))
	}
}

func TestProducer_ZeroCounts(t *testing.T) {
	data, err := NewProducer(Counts{}, nil).Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(data[entity.KindClient]) != 0 || len(data[entity.KindTppOrg]) != 0 {
		t.Errorf("expected empty generated collections")
	}
	if len(data[entity.KindScope]) != 4 {
		t.Errorf("fixed tables should still be present")
	}
}
