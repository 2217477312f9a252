// interfaces.go defines the storage abstraction for record persistence.
//
// Separated from the SQLite implementation to enable testing and potential
// alternative backends. The interfaces are granular (Reader, Writer,
// Maintainer) so consumers only depend on the capabilities they need.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
)

// Reader defines read-only operations for collections and their records.
type Reader interface {
	// Collection returns a single collection with its record count.
	// Returns ErrNotFound if it does not exist.
	Collection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns every collection ordered by name.
	ListCollections(ctx context.Context) ([]Collection, error)

	// Records returns records in position order. A limit of 0 returns all.
	Records(ctx context.Context, name string, limit int) ([]Record, error)

	// CountRecords returns the number of records in a collection.
	CountRecords(ctx context.Context, name string) (int64, error)

	// Stats returns aggregate database statistics.
	Stats(ctx context.Context) (*Stats, error)
}

// Writer defines operations that modify collections.
type Writer interface {
	// CreateCollection creates an empty collection. Returns ErrAlreadyExists
	// if the name is taken.
	CreateCollection(ctx context.Context, name string, opts CreateOptions) (*Collection, error)

	// DropCollection removes a collection and all of its records.
	DropCollection(ctx context.Context, name string) error

	// AppendRecords adds records after the existing ones and returns how
	// many were written.
	AppendRecords(ctx context.Context, name string, data []json.RawMessage) (int, error)

	// ReplaceRecords removes every record in the collection, then appends
	// data, atomically.
	ReplaceRecords(ctx context.Context, name string, data []json.RawMessage) (int, error)
}

// Maintainer defines operations for database maintenance and lifecycle.
type Maintainer interface {
	// Close releases the database connection.
	Close() error

	// DB exposes the underlying connection for extensions needing custom tables.
	DB() *sql.DB

	// Checkpoint flushes WAL to the main database file.
	Checkpoint(ctx context.Context) error

	// Compact rebuilds the database file, reclaiming space left by dropped
	// collections.
	Compact(ctx context.Context) error
}

// Store defines the persistence interface for record collections.
type Store interface {
	Reader
	Writer
	Maintainer
}
