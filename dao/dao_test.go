package dao

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/goliatone/go-mock-backend/entity"
	"github.com/goliatone/go-mock-backend/internal/apierr"
	"github.com/goliatone/go-mock-backend/seed"
	"github.com/goliatone/go-mock-backend/store"
)

func newClientDAO(t *testing.T) *RecordDAO {
	t.Helper()
	s := store.New(seed.NewProducer(seed.DefaultCounts(), nil))
	return New(s, entity.KindClient, "clientId")
}

func TestGetByID(t *testing.T) {
	d := newClientDAO(t)
	ctx := context.Background()

	r, err := d.GetByID(ctx, "3")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if r["clientName"] != "Robinshood client 3" {
		t.Errorf("unexpected record: %v", r)
	}

	_, err = d.GetByID(ctx, "999")
	if !apierr.HasCode(err, apierr.CodeRecordNotFound) {
		t.Errorf("expected RecordNotFound, got %v", err)
	}
}

func TestGetBatch_Filters(t *testing.T) {
	d := newClientDAO(t)
	ctx := context.Background()

	all, err := d.GetBatch(ctx, nil)
	if err != nil {
		t.Fatalf("GetBatch: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("expected 15 clients, got %d", len(all))
	}

	named, _ := d.GetBatch(ctx, Filters{"clientName": "Robinshood client 5"})
	if len(named) != 11 {
		t.Errorf("expected 11 clients named 'Robinshood client 5', got %d", len(named))
	}
	if named[0]["clientId"] != "5" || named[10]["clientId"] != "15" {
		t.Errorf("filter did not keep order: first=%v last=%v", named[0]["clientId"], named[10]["clientId"])
	}

	none, _ := d.GetBatch(ctx, Filters{"clientName": "Robinshood client 5", "clientId": "1"})
	if len(none) != 0 {
		t.Errorf("filters must all match, got %d records", len(none))
	}

	missing, _ := d.GetBatch(ctx, Filters{"nope": "x"})
	if len(missing) != 0 {
		t.Errorf("unknown field must not match, got %d", len(missing))
	}
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	d := newClientDAO(t)
	ctx := context.Background()

	record := entity.Client{
		ClientID:   "16",
		ClientName: "New client",
		Contacts:   []string{"a@example.com"},
		Status:     entity.StatusActive,
	}.ToRecord()

	if _, err := d.Create(ctx, record); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := d.GetByID(ctx, "16")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(got, record) {
		t.Errorf("round trip mismatch:\n got  %v\n want %v", got, record)
	}

	all, _ := d.GetBatch(ctx, nil)
	if all[len(all)-1]["clientId"] != "16" {
		t.Errorf("new client should appear last")
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	d := newClientDAO(t)
	ctx := context.Background()

	existing, _ := d.GetByID(ctx, "2")
	updated := existing.Merge(entity.Record{"clientDesc": "patched"})

	if _, err := d.Update(ctx, "2", updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	once, _ := d.GetBatch(ctx, nil)

	if _, err := d.Update(ctx, "2", updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	twice, _ := d.GetBatch(ctx, nil)

	if !reflect.DeepEqual(once, twice) {
		t.Error("second identical update changed the collection")
	}

	_, err := d.Update(ctx, "404", updated)
	if !apierr.HasCode(err, apierr.CodeRecordNotFound) {
		t.Errorf("expected RecordNotFound, got %v", err)
	}
}

func TestDeleteByID_SecondDeleteReportsFalse(t *testing.T) {
	d := newClientDAO(t)
	ctx := context.Background()

	ok, err := d.DeleteByID(ctx, "1")
	if err != nil || !ok {
		t.Fatalf("first delete: ok=%v err=%v", ok, err)
	}
	ok, err = d.DeleteByID(ctx, "1")
	if err != nil {
		t.Fatalf("second delete returned error: %v", err)
	}
	if ok {
		t.Error("second delete should report false")
	}
}

func TestDeleteBatch(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		status  string
		deleted []string
		failed  []string
		message string
	}{
		{
			name:    "partial",
			ids:     []string{"1", "missing"},
			status:  BatchPartial,
			deleted: []string{"1"},
			failed:  []string{"missing"},
			message: "Successfully deleted 1 items, failed to delete 1 items",
		},
		{
			name:    "success",
			ids:     []string{"4", "5"},
			status:  BatchSuccess,
			deleted: []string{"4", "5"},
			failed:  []string{},
			message: "Successfully deleted 2 items, failed to delete 0 items",
		},
		{
			name:    "repeated id",
			ids:     []string{"6", "6"},
			status:  BatchPartial,
			deleted: []string{"6"},
			failed:  []string{"6"},
			message: "Successfully deleted 1 items, failed to delete 1 items",
		},
		{
			name:    "empty",
			ids:     nil,
			status:  BatchSuccess,
			deleted: []string{},
			failed:  []string{},
			message: "Successfully deleted 0 items, failed to delete 0 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newClientDAO(t)
			res, err := d.DeleteBatch(context.Background(), tt.ids)
			if err != nil {
				t.Fatalf("DeleteBatch: %v", err)
			}
			if res.Status != tt.status {
				t.Errorf("status: got %s want %s", res.Status, tt.status)
			}
			if !reflect.DeepEqual(res.Deleted, tt.deleted) {
				t.Errorf("deleted: got %v want %v", res.Deleted, tt.deleted)
			}
			if !reflect.DeepEqual(res.Failed, tt.failed) {
				t.Errorf("failed: got %v want %v", res.Failed, tt.failed)
			}
			if res.Message != tt.message {
				t.Errorf("message: got %q want %q", res.Message, tt.message)
			}
		})
	}
}

func TestBatchResult_JSONNeverNull(t *testing.T) {
	d := newClientDAO(t)
	res, _ := d.DeleteBatch(context.Background(), []string{"x"})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"status":"partial","deleted":[],"failed":["x"],"message":"Successfully deleted 0 items, failed to delete 1 items"}`
	if string(raw) != want {
		t.Errorf("got %s", raw)
	}
}

func TestFilters_MatchesNonStringValues(t *testing.T) {
	r := entity.Record{"stillUsing": true, "contacts": []string{"a"}}
	if !(Filters{"stillUsing": true}).Matches(r) {
		t.Error("bool filter should match")
	}
	if (Filters{"stillUsing": "true"}).Matches(r) {
		t.Error("string filter must not match bool value")
	}
	if !(Filters{"contacts": []string{"a"}}).Matches(r) {
		t.Error("list filter should match by deep equality")
	}
}
