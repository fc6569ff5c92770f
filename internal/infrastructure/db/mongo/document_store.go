package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nextier/cms-api/internal/core/domain"
	"github.com/nextier/cms-api/internal/infrastructure/db/bsondoc"
)

// DocumentStore implements ports.DocumentStore on a MongoDB database. It adds
// no indexes and enforces no schema.
type DocumentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) CreateDocument(ctx context.Context, collection string, document any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.db.Collection(collection).InsertOne(ctx, document); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// GetDocuments runs an equality find. Querying a collection that does not
// exist returns no documents.
func (s *DocumentStore) GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	out := []domain.Document{}
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		out = append(out, bsondoc.ToDocument(m))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return out, nil
}

// Ping runs the ping command against the content database.
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}
