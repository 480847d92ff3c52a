package sync

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

func newTestStore(t *testing.T) *docstore.BoltStore {
	t.Helper()
	dir := t.TempDir()
	s, err := docstore.OpenBolt(filepath.Join(dir, "test.db"), models.CollectionTemplates)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func templateNames(docs []docstore.Document) map[string]bool {
	names := map[string]bool{}
	for _, doc := range docs {
		if name, ok := doc["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestSeedCreatesDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	SeedDefaultTemplates(ctx, s)

	docs := s.GetAll(ctx, models.CollectionTemplates)
	if len(docs) != 3 {
		t.Fatalf("expected 3 seeded templates, got %d", len(docs))
	}
	names := templateNames(docs)
	for _, want := range []string{"Grand Sale", "Festival Offer", "Loyalty Discount"} {
		if !names[want] {
			t.Fatalf("expected template %q, got %v", want, names)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		SeedDefaultTemplates(ctx, s)
	}

	docs := s.GetAll(ctx, models.CollectionTemplates)
	if len(docs) != 3 {
		t.Fatalf("expected 3 templates after repeated seeding, got %d", len(docs))
	}
}

func TestSeedPreservesExistingContents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, models.CollectionTemplates, docstore.Document{
		"name": "My Own Promo", "content": "Come visit!", "category": "general",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	SeedDefaultTemplates(ctx, s)

	docs := s.GetAll(ctx, models.CollectionTemplates)
	if len(docs) != 1 {
		t.Fatalf("expected the single user template untouched, got %d documents", len(docs))
	}
	if docs[0]["id"] != id || docs[0]["name"] != "My Own Promo" {
		t.Fatalf("user template was modified: %v", docs[0])
	}
}

// failingStore simulates a backend where every write fails.
type failingStore struct{}

func (failingStore) GetAll(context.Context, string) []docstore.Document { return nil }
func (failingStore) Add(context.Context, string, docstore.Document) (string, error) {
	return "", errors.New("write refused")
}
func (failingStore) Update(context.Context, string, string, docstore.Document) error {
	return errors.New("write refused")
}
func (failingStore) Delete(context.Context, string, string) error {
	return errors.New("write refused")
}
func (failingStore) Subscribe(string, func([]docstore.Document)) func() { return func() {} }
func (failingStore) Close() error                                       { return nil }

func TestSeedSwallowsWriteFailures(t *testing.T) {
	// Must not panic or error; seeding never blocks startup.
	SeedDefaultTemplates(context.Background(), failingStore{})
}
