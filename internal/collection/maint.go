// maint.go implements database maintenance for the Service layer.

package collection

import (
	"context"

	"github.com/jpl-au/sift/internal/store"
)

// Stats returns aggregate database statistics.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx)
}

// Checkpoint flushes the WAL to the main database file, removing the -wal
// and -shm files.
func (s *Service) Checkpoint(ctx context.Context) error {
	return s.store.Checkpoint(ctx)
}

// Compact checkpoints the WAL, then rebuilds the database file so space
// freed by dropped collections is returned to the filesystem.
func (s *Service) Compact(ctx context.Context) error {
	if err := s.store.Checkpoint(ctx); err != nil {
		return err
	}
	return s.store.Compact(ctx)
}
