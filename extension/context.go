// context.go defines the Context interface for extension access to sift internals.
//
// Extensions receive a Context during Init(), not at construction: they
// register in init() before any database has been discovered. Context is an
// interface so tests can supply their own.

package extension

import (
	"database/sql"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/service"
)

// Context provides extensions controlled access to sift internals.
type Context interface {
	// Service returns the collection service.
	Service() service.Service

	// DB exposes the database for extensions needing custom tables.
	// Extensions should create their own tables, not modify core tables.
	DB() *sql.DB

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	db  *sql.DB
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, db *sql.DB, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		db:  db,
		cfg: cfg,
	}
}

// Service returns the collection service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// DB returns the raw database connection.
func (c *extContext) DB() *sql.DB {
	return c.db
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
