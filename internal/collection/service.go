// Package collection implements service.Service on top of the SQLite store.
// It discovers the repository, applies configured limits, converts stored
// JSON into fuzzy records and notifies extensions of changes.
package collection

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/repo"
	"github.com/jpl-au/sift/internal/service"
	"github.com/jpl-au/sift/internal/store"
)

// Service provides collection operations backed by a Store.
type Service struct {
	store      *store.SQLiteStore
	dbPath     string
	maxRecords int
	extCtx     extension.Context // for firing events to extensions
}

var _ service.Service = (*Service)(nil)

// New opens the database named db. With an empty dir the database is found
// by walking up from the working directory; otherwise dir is the project
// directory holding .sift/. Returns repo.ErrNotInitialised if no database exists.
func New(db, dir string) (*Service, error) {
	dbPath, err := locate(db, dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	// Databases created by older builds may lack newer tables.
	if err := s.Init(); err != nil {
		s.Close()
		return nil, fmt.Errorf("init store: %w", err)
	}

	return &Service{
		store:      s,
		dbPath:     dbPath,
		maxRecords: cfg.MaxRecords(),
	}, nil
}

func locate(db, dir string) (string, error) {
	if dir == "" {
		return repo.Discover(db)
	}
	p := filepath.Join(dir, repo.Dir, repo.DBFileName(db))
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("%w: %s", repo.ErrNotInitialised, p)
	}
	return p, nil
}

// Close checkpoints the WAL and closes the database connection.
func (s *Service) Close() error {
	if err := s.store.Checkpoint(context.Background()); err != nil {
		log.Event("service:close", "checkpoint").Write(err)
	}
	return s.store.Close()
}

// ReloadConfig re-reads configured limits. Call after "sift config" changes
// them in a long-running process such as the MCP server.
func (s *Service) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.maxRecords = cfg.MaxRecords()
	return nil
}

// SetExtensionContext sets the extension context for firing events.
// Called from cmd after creating the context.
func (s *Service) SetExtensionContext(ctx extension.Context) {
	s.extCtx = ctx
}

// fireEvent notifies all registered extension event handlers. Handler
// errors are logged, never returned: the change has already committed.
func (s *Service) fireEvent(e extension.Event) {
	if s.extCtx == nil {
		return
	}
	for _, ext := range extension.All() {
		if h, ok := ext.(extension.EventHandler); ok {
			if err := h.HandleEvent(s.extCtx, e); err != nil {
				log.Event("event:error", "error").
					Collection(e.EventCollection()).
					Detail("ext", ext.Name()).
					Detail("event", string(e.EventType())).
					Write(err)
			}
		}
	}
}

// DB returns the underlying database connection for extensions.
func (s *Service) DB() *sql.DB {
	return s.store.DB()
}

// DBPath returns the path to the database file.
func (s *Service) DBPath() string {
	return s.dbPath
}

// Dir returns the .sift directory holding the database.
func (s *Service) Dir() string {
	return filepath.Dir(s.dbPath)
}

// Tx runs fn within a database transaction.
func (s *Service) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := s.store.Tx(ctx, fn); err != nil {
		return fmt.Errorf("transaction rolled back: %w", err)
	}
	return nil
}
