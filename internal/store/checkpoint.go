// checkpoint.go implements WAL maintenance for SQLite.
//
// Checkpoint runs on graceful shutdown of the MCP server and after large
// imports. TRUNCATE mode flushes the WAL completely and removes the -wal and
// -shm files.

package store

import (
	"context"
	"fmt"
)

// Checkpoint writes all WAL data back to the main database file and truncates
// the WAL.
func (s *SQLiteStore) Checkpoint(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}

// Compact rebuilds the database file. Dropping a collection frees pages but
// SQLite keeps the file at its high-water mark until VACUUM runs.
func (s *SQLiteStore) Compact(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}
