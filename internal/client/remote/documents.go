package remote

import (
	"context"
	"encoding/json"
	"time"
)

// Document is one entity of a remote collection. Data holds the entity
// fields without the server-owned id and timestamps.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentStore is the shared remote document store.
type DocumentStore interface {
	// List returns every document of collection, newest first.
	List(ctx context.Context, collection string) ([]Document, error)
	// Create stores fields as a new document and returns the assigned id.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update merges fields into an existing document and stamps its
	// modification time. Unknown ids are ignored.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document; deleting a missing id is not an error.
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}
