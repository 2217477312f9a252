// stats.go implements aggregate statistics for operational visibility.
//
// The queries use COUNT, SUM(length()) and MIN/MAX directly in SQLite so
// statistics never load record data into memory.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Stats returns aggregate database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	var oldest, newest sql.NullInt64

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), MIN(created_at), MAX(updated_at) FROM collections`).
		Scan(&st.Collections, &oldest, &newest)
	if err != nil {
		return nil, fmt.Errorf("collection stats: %w", err)
	}
	st.OldestAt = oldest.Int64
	st.NewestAt = newest.Int64

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(length(data)), 0) FROM records`).
		Scan(&st.Records, &st.Bytes)
	if err != nil {
		return nil, fmt.Errorf("record stats: %w", err)
	}

	var largest sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT c.name FROM collections c
		JOIN records r ON r.collection_id = c.id
		GROUP BY c.id ORDER BY COUNT(*) DESC, c.name LIMIT 1`).Scan(&largest)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("largest collection: %w", err)
	}
	st.Largest = largest.String

	return &st, nil
}
