// Package core provides the core extension for sift.
// It registers commands: init, config, serve, guide, db, stats, compact,
// version. It checkpoints the WAL after bulk collection changes.
package core

import (
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Storeless     = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the shared service for stats and compact.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns all core CLI commands for repository management.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newDBCmd(),
		e.newStatsCmd(),
		e.newCompactCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil; the core tools are built into internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoStoreCommands returns commands that manage their own service lifecycle.
// serve opens the store itself and must start before sift_init. db only
// touches gitignore entries. version needs no database.
func (e *Extension) NoStoreCommands() []string {
	return []string{"serve", "db", "version"}
}
