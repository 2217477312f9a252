// Package collection provides collection management commands.
// Registers commands: import, ls, rm, export.
package collection

import (
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the collection extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "collection".
func (e *Extension) Name() string { return "collection" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns import, ls, rm and export.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newImportCmd(),
		e.newLsCmd(),
		e.newRmCmd(),
		e.newExportCmd(),
	}
}

// MCPTools returns nil; collection tools are built into internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
