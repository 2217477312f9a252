// Package service defines the shared interface for collection operations.
// Commands and extensions depend on this interface rather than concrete
// implementations, enabling testing with mocks and future backend changes.
package service

import (
	"context"
	"database/sql"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/store"
)

// Service defines all collection operations.
//
// Extensions receive a Service through extension.Context; commands that
// manage their own lifecycle obtain one with collection.New() and must
// Close it:
//
//	svc, err := collection.New("", "")
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	results, err := svc.Search(ctx, service.SearchRequest{...})
type Service interface {
	// Close checkpoints the WAL and releases database resources.
	Close() error

	// CreateCollection creates an empty collection.
	// Returns store.ErrAlreadyExists if the name is taken.
	CreateCollection(ctx context.Context, name, description string) (*store.Collection, error)

	// Collection returns one collection with its record count.
	// Returns store.ErrNotFound if it does not exist.
	Collection(ctx context.Context, name string) (*store.Collection, error)

	// ListCollections returns all collections ordered by name.
	ListCollections(ctx context.Context) ([]store.Collection, error)

	// DropCollection removes a collection and its records.
	DropCollection(ctx context.Context, name string) error

	// Import stores records in a collection, creating it when missing.
	// Returns the number of records written.
	Import(ctx context.Context, name string, recs []fuzzy.Record, opts ImportOptions) (int, error)

	// Records returns a collection's records in import order.
	// Set limit to 0 for all records.
	Records(ctx context.Context, name string, limit int) ([]fuzzy.Record, error)

	// Search runs a fuzzy search over one collection.
	Search(ctx context.Context, req SearchRequest) ([]fuzzy.Result, error)

	// Stats returns aggregate database statistics.
	Stats(ctx context.Context) (*store.Stats, error)

	// Checkpoint flushes the WAL to the main database file.
	Checkpoint(ctx context.Context) error

	// Compact checkpoints and rebuilds the database file.
	Compact(ctx context.Context) error

	// DB returns the underlying SQLite connection.
	// Extensions use this to create custom tables.
	// Do not close this connection directly; use Service.Close().
	DB() *sql.DB

	// DBPath returns the path to the database file.
	DBPath() string

	// Tx runs fn within a database transaction. A nil return commits,
	// an error rolls back.
	Tx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// ImportOptions configures Service.Import.
type ImportOptions struct {
	Replace     bool   // replace existing records instead of appending
	Description string // used when the collection is created
	Author      string // recorded on the import event
}
