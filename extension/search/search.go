// Package search provides fuzzy search over collections and record files.
// Registers commands: search, explain. Contributes the sift_explain MCP
// tool.
package search

import (
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Storeless     = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the search and explain commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
		newExplainCmd(),
	}
}

// MCPTools returns sift_explain. sift_search lives in internal/mcp because
// it needs the open store.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{explainTool()}
}

// NoStoreCommands lists commands that can run without a store. search opens
// it itself unless --file is given.
func (e *Extension) NoStoreCommands() []string {
	return []string{"search", "explain"}
}
