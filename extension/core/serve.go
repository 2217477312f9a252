// serve.go implements "sift serve". Unlike other commands it blocks,
// handling MCP requests over stdio, and manages its own service lifecycle
// so that it can start before a store exists.

package core

import (
	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --db to serve a specific database:
  sift serve --db people    # serve sift-people.db

See 'sift guide mcp' for the available tools.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.DB(), cmd.Dir())
		},
	}
}
