package docstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"salonsync-backend/docstore"
)

func newTestStore(t *testing.T) *docstore.BoltStore {
	t.Helper()
	dir := t.TempDir()
	s, err := docstore.OpenBolt(filepath.Join(dir, "test.db"), "customers", "appointments")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetAllEmpty(t *testing.T) {
	s := newTestStore(t)
	docs := s.GetAll(context.Background(), "customers")
	if len(docs) != 0 {
		t.Fatalf("expected empty list, got %d documents", len(docs))
	}
}

func TestGetAllUnknownCollection(t *testing.T) {
	s := newTestStore(t)
	docs := s.GetAll(context.Background(), "nope")
	if len(docs) != 0 {
		t.Fatalf("expected empty list, got %d documents", len(docs))
	}
}

func TestAddStampsIDAndTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "customers", docstore.Document{"name": "Asha", "mobile": "9876543210"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}

	docs := s.GetAll(ctx, "customers")
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc["id"] != id {
		t.Fatalf("expected id %q, got %v", id, doc["id"])
	}
	if doc["name"] != "Asha" {
		t.Fatalf("expected name Asha, got %v", doc["name"])
	}
	created, _ := doc["createdAt"].(string)
	updated, _ := doc["updatedAt"].(string)
	if created == "" || created != updated {
		t.Fatalf("expected equal createdAt/updatedAt, got %q and %q", created, updated)
	}
	if _, err := time.Parse(time.RFC3339Nano, created); err != nil {
		t.Fatalf("createdAt is not a timestamp: %v", err)
	}
}

func TestAddIgnoresReservedKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "customers", docstore.Document{
		"name":      "Asha",
		"id":        "smuggled",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := s.GetAll(ctx, "customers")[0]
	if doc["id"] != id {
		t.Fatalf("expected adapter-assigned id %q, got %v", id, doc["id"])
	}
	if doc["createdAt"] == "1999-01-01T00:00:00Z" {
		t.Fatal("caller-supplied createdAt must be overwritten")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "customers", docstore.Document{"name": "Asha", "mobile": "9876543210"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := s.GetAll(ctx, "customers")[0]

	time.Sleep(2 * time.Millisecond)
	if err := s.Update(ctx, "customers", id, docstore.Document{"notes": "VIP"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := s.GetAll(ctx, "customers")[0]
	if after["name"] != "Asha" || after["mobile"] != "9876543210" {
		t.Fatalf("existing fields changed: %v", after)
	}
	if after["notes"] != "VIP" {
		t.Fatalf("expected notes VIP, got %v", after["notes"])
	}
	if after["createdAt"] != before["createdAt"] {
		t.Fatalf("createdAt changed from %v to %v", before["createdAt"], after["createdAt"])
	}
	prev, err := time.Parse(time.RFC3339Nano, before["updatedAt"].(string))
	if err != nil {
		t.Fatalf("updatedAt is not a timestamp: %v", err)
	}
	next, err := time.Parse(time.RFC3339Nano, after["updatedAt"].(string))
	if err != nil {
		t.Fatalf("updatedAt is not a timestamp: %v", err)
	}
	if !next.After(prev) {
		t.Fatalf("expected updatedAt to advance, got %v then %v", prev, next)
	}
}

func TestUpdateCannotChangeID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.Add(ctx, "customers", docstore.Document{"name": "Asha"})
	if err := s.Update(ctx, "customers", id, docstore.Document{"id": "forged"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := s.GetAll(ctx, "customers")[0]
	if doc["id"] != id {
		t.Fatalf("expected id %q, got %v", id, doc["id"])
	}
}

func TestUpdateMissingDocument(t *testing.T) {
	s := newTestStore(t)
	err := s.Update(context.Background(), "customers", "missing", docstore.Document{"notes": "x"})
	if err != docstore.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.Add(ctx, "customers", docstore.Document{"name": "Asha"})
	if err := s.Delete(ctx, "customers", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs := s.GetAll(ctx, "customers"); len(docs) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(docs))
	}

	// Deleting an id that is already gone is not an error.
	if err := s.Delete(ctx, "customers", id); err != nil {
		t.Fatalf("unexpected error on repeat delete: %v", err)
	}
}

func TestAddReturnsUsableForeignKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	customerID, err := s.Add(ctx, "customers", docstore.Document{"name": "Asha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Add(ctx, "appointments", docstore.Document{"customerId": customerID, "service": "Haircut"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	appt := s.GetAll(ctx, "appointments")[0]
	if appt["customerId"] != customerID {
		t.Fatalf("expected customerId %q, got %v", customerID, appt["customerId"])
	}
}

func TestSubscribeDeliversSnapshots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var snapshots [][]docstore.Document
	unsubscribe := s.Subscribe("customers", func(docs []docstore.Document) {
		snapshots = append(snapshots, docs)
	})
	defer unsubscribe()

	if len(snapshots) != 1 || len(snapshots[0]) != 0 {
		t.Fatalf("expected one empty initial snapshot, got %v", snapshots)
	}

	id, _ := s.Add(ctx, "customers", docstore.Document{"name": "Asha"})
	s.Update(ctx, "customers", id, docstore.Document{"notes": "VIP"})
	s.Delete(ctx, "customers", id)

	if len(snapshots) != 4 {
		t.Fatalf("expected 4 snapshots, got %d", len(snapshots))
	}
	last := snapshots[len(snapshots)-1]
	if len(last) != 0 {
		t.Fatalf("expected final snapshot empty, got %d documents", len(last))
	}
	if len(snapshots[1]) != 1 || snapshots[1][0]["id"] != id {
		t.Fatalf("expected add snapshot with %q, got %v", id, snapshots[1])
	}
	if snapshots[2][0]["notes"] != "VIP" {
		t.Fatalf("expected update snapshot to carry notes, got %v", snapshots[2])
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	calls := 0
	unsubscribe := s.Subscribe("customers", func([]docstore.Document) { calls++ })
	unsubscribe()
	unsubscribe() // safe to call again

	if _, err := s.Add(ctx, "customers", docstore.Document{"name": "Asha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected only the initial delivery, got %d calls", calls)
	}
}

func TestSubscribeIndependentCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	customerCalls, appointmentCalls := 0, 0
	defer s.Subscribe("customers", func([]docstore.Document) { customerCalls++ })()
	defer s.Subscribe("appointments", func([]docstore.Document) { appointmentCalls++ })()

	s.Add(ctx, "customers", docstore.Document{"name": "Asha"})

	if customerCalls != 2 {
		t.Fatalf("expected 2 customer deliveries, got %d", customerCalls)
	}
	if appointmentCalls != 1 {
		t.Fatalf("expected only the initial appointments delivery, got %d", appointmentCalls)
	}
}
