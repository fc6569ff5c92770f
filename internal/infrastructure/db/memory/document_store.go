// Package memory provides an in-process document store with the same value
// semantics as the MongoDB store. Documents are kept BSON-encoded, so what
// comes back out has been through the same codec as a real round trip.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/infrastructure/db/bsondoc"
)

// DocumentStore implements ports.DocumentStore in memory. Safe for concurrent
// use.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string][]bson.Raw)}
}

// CreateDocument appends document to collection, assigning an ObjectID when
// the document carries no _id.
func (s *DocumentStore) CreateDocument(ctx context.Context, collection string, document any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := bson.Marshal(document)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	if _, err := bson.Raw(raw).LookupErr("_id"); err != nil {
		var d bson.D
		if err := bson.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("insert into %s: %w", collection, err)
		}
		d = append(bson.D{{Key: "_id", Value: primitive.NewObjectID()}}, d...)
		if raw, err = bson.Marshal(d); err != nil {
			return fmt.Errorf("insert into %s: %w", collection, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], raw)
	return nil
}

// GetDocuments returns matches in insertion order, truncated to limit when
// limit > 0.
func (s *DocumentStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Document{}
	for _, raw := range s.collections[collection] {
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		doc := bsondoc.ToDocument(m)
		if !bsondoc.Matches(doc, filter) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
