package ports

import (
	"context"

	"github.com/nextier/cms-api/internal/core/domain"
)

// DocumentStore is a thin pass-through over a schemaless document database.
type DocumentStore interface {
	// CreateDocument inserts an already validated document into collection.
	CreateDocument(ctx context.Context, collection string, document any) error

	// GetDocuments returns the documents of collection matching the equality
	// filter, in natural order. A limit <= 0 returns every match. Missing
	// collections yield an empty slice, not an error.
	GetDocuments(ctx context.Context, collection string, filter domain.Document, limit int) ([]domain.Document, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
