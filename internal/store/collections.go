// collections.go implements collection lifecycle operations.
//
// Names are validated here as well as in the service layer because the store
// is the persistence boundary: extensions and tests reach it directly.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jpl-au/sift/internal/validate"
)

// CreateCollection creates an empty collection.
func (s *SQLiteStore) CreateCollection(ctx context.Context, name string, opts CreateOptions) (*Collection, error) {
	name, err := validate.Collection(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx, `INSERT INTO collections (name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?)`, name, nilIfEmpty(opts.Description), now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("create collection %s: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create collection %s: %w", name, err)
	}
	return &Collection{
		ID:          id,
		Name:        name,
		Description: opts.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Collection returns a single collection with its record count.
func (s *SQLiteStore) Collection(ctx context.Context, name string) (*Collection, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+collectionColumns+` FROM collections c WHERE c.name = ?`, name)
	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("scan collection: %w", err)
	}
	return &c, nil
}

// ListCollections returns every collection ordered by name.
func (s *SQLiteStore) ListCollections(ctx context.Context) ([]Collection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+collectionColumns+` FROM collections c ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DropCollection removes a collection and its records in one transaction.
func (s *SQLiteStore) DropCollection(ctx context.Context, name string) error {
	return s.Tx(ctx, func(tx *sql.Tx) error {
		id, err := collectionID(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE collection_id = ?`, id); err != nil {
			return fmt.Errorf("drop records of %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id); err != nil {
			return fmt.Errorf("drop collection %s: %w", name, err)
		}
		return nil
	})
}

// isUniqueViolation reports whether err came from a UNIQUE constraint.
// The modernc driver exposes only a message, so match on that.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nilIfEmpty returns nil for empty strings so they are stored as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
