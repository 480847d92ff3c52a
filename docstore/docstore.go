// Package docstore is a thin document-database layer: CRUD plus live
// collection snapshots against named collections, with adapter-managed ids
// and timestamps. Two backends exist, Postgres and Bolt, behind one
// interface.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// Document is one stored entity: field names to values, always carrying
// "id", "createdAt" and "updatedAt" once persisted.
type Document map[string]interface{}

// ErrNotFound is returned when an update targets a document that does not
// exist in its collection.
var ErrNotFound = errors.New("document not found")

// Store is the adapter contract. GetAll never fails: on a read error it
// logs and returns an empty list, so callers can always render "no data".
// Write operations do return errors, because callers need to know whether
// a create produced a usable id.
//
// Subscribe registers a listener that receives the full current contents
// of the collection immediately and again after every change. The returned
// function detaches the listener; it is safe to call more than once, and
// once it returns no further deliveries happen. Listener callbacks must
// not call Subscribe or an unsubscribe function from within themselves.
type Store interface {
	GetAll(ctx context.Context, collection string) []Document
	Add(ctx context.Context, collection string, payload Document) (string, error)
	Update(ctx context.Context, collection, id string, patch Document) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(collection string, fn func([]Document)) func()
	Close() error
}

// Keys the adapter owns. Payloads and patches may not set them; any
// attempt is dropped silently.
const (
	keyID        = "id"
	keyCreatedAt = "createdAt"
	keyUpdatedAt = "updatedAt"
)

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func newID() string {
	return uuid.NewString()
}

// newDocument builds the document written by Add: the payload's fields
// plus a fresh id and equal createdAt/updatedAt stamps.
func newDocument(payload Document, id, now string) Document {
	doc := make(Document, len(payload)+3)
	for k, v := range payload {
		doc[k] = v
	}
	doc[keyID] = id
	doc[keyCreatedAt] = now
	doc[keyUpdatedAt] = now
	return doc
}

// mergeDocument applies a partial patch onto an existing document. Fields
// absent from the patch keep their stored values; id and createdAt are
// immutable; updatedAt is refreshed.
func mergeDocument(existing, patch Document, now string) Document {
	doc := make(Document, len(existing)+len(patch))
	for k, v := range existing {
		doc[k] = v
	}
	for k, v := range patch {
		switch k {
		case keyID, keyCreatedAt, keyUpdatedAt:
			continue
		}
		doc[k] = v
	}
	doc[keyUpdatedAt] = now
	return doc
}

// Encode converts a typed value into a Document via its JSON form.
func Encode(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeList converts raw documents into a typed slice. Documents that do
// not decode are logged and skipped rather than failing the whole
// snapshot.
func DecodeList[T any](docs []Document) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			log.Printf("docstore: encode document %v: %v", doc[keyID], err)
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Printf("docstore: decode document %v: %v", doc[keyID], err)
			continue
		}
		out = append(out, v)
	}
	return out
}
