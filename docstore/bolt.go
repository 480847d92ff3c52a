package docstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	bolt "github.com/boltdb/bolt"
)

// BoltStore is the embedded backend: one BoltDB bucket per collection,
// documents stored as JSON under their id. It needs no external database
// process, which makes it the first-run/offline deployment mode and the
// backend used in tests.
//
// Because the file can only be written by this process, snapshots are
// published synchronously on the writer's goroutine right after each
// successful write.
type BoltStore struct {
	db  *bolt.DB
	hub *hub
}

// OpenBolt opens (or creates) the database file and ensures a bucket
// exists for every named collection. Creating buckets is idempotent, so
// this is safe to run on every startup.
func OpenBolt(path string, collections ...string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range collections {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db, hub: newHub()}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) GetAll(ctx context.Context, collection string) []Document {
	docs := []Document{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var doc Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		log.Printf("docstore: read %s: %v", collection, err)
		return []Document{}
	}
	return docs
}

func (s *BoltStore) Add(ctx context.Context, collection string, payload Document) (string, error) {
	id := newID()
	doc := newDocument(payload, id, nowStamp())
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		return b.Put([]byte(id), raw)
	})
	if err != nil {
		return "", err
	}
	s.publish(ctx, collection)
	return id, nil
}

func (s *BoltStore) Update(ctx context.Context, collection, id string, patch Document) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		var existing Document
		if err := json.Unmarshal(v, &existing); err != nil {
			return err
		}
		merged := mergeDocument(existing, patch, nowStamp())
		raw, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), raw)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, collection)
	return nil
}

func (s *BoltStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		return err
	}
	s.publish(ctx, collection)
	return nil
}

func (s *BoltStore) Subscribe(collection string, fn func([]Document)) func() {
	unsubscribe := s.hub.subscribe(collection, fn)
	// Initial delivery, so a fresh subscriber sees current contents
	// without waiting for the next write.
	fn(s.GetAll(context.Background(), collection))
	return unsubscribe
}

func (s *BoltStore) publish(ctx context.Context, collection string) {
	if !s.hub.active(collection) {
		return
	}
	s.hub.publish(collection, s.GetAll(ctx, collection))
}
