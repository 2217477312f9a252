// explain.go implements "sift explain" and the sift_explain MCP tool. Both
// show how one pattern matched one string, without touching the store.

package search

import (
	"context"
	"fmt"

	"github.com/jpl-au/sift/cmd"
	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/diff"
	"github.com/jpl-au/sift/internal/format"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "explain <pattern> <text>",
		Short: "Show how a pattern matches a string",
		Long: `Show where a pattern matched a string and how many characters it skipped.

  sift explain rd "robin david"
  sift explain -c Rd "Robin David"`,
		Args: cobra.ExactArgs(2),
		RunE: runExplain,
	}
	c.Flags().BoolP(extension.FlagCaseSensitive, "c", false, "Compare without lowercasing")
	c.Flags().IntP(extension.FlagMaxInsertions, "i", fuzzy.Unbounded, "Most characters the match may skip (-1 for no limit)")
	return c
}

func runExplain(c *cobra.Command, args []string) error {
	opts := fuzzy.DefaultOptions()
	if cfg, err := config.Load(); err == nil {
		opts = cfg.SearchOptions()
	}
	if c.Flags().Changed(extension.FlagCaseSensitive) {
		opts.CaseSensitive, _ = c.Flags().GetBool(extension.FlagCaseSensitive)
	}
	if c.Flags().Changed(extension.FlagMaxInsertions) {
		opts.MaxInsertions, _ = c.Flags().GetInt(extension.FlagMaxInsertions)
	}

	e := diff.Explain(args[0], args[1], opts)

	log.Event("search:explain", "explain").
		Author(cmd.Author()).
		Query(args[0]).
		Results(boolToInt(e.Matched)).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(e)
	}
	colour := false
	if cfg, err := config.Load(); err == nil {
		colour = format.UseColour(cfg.Colour())
	}
	fmt.Fprint(cmd.Out(), e.Format(colour))
	return nil
}

func explainTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("sift_explain",
			mcp.WithDescription("Show how a fuzzy pattern matches a string: matched character positions, skipped characters and the insertion count"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Pattern to match")),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to match against")),
			mcp.WithBoolean("case_sensitive", mcp.Description("Compare without lowercasing")),
			mcp.WithNumber("max_insertions", mcp.Description("Maximum skipped characters, -1 for no limit")),
		),
		Handler: handleExplain,
	}
}

// handleExplain works without a store, so extCtx may be nil.
func handleExplain(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	opts := fuzzy.DefaultOptions()
	if cfg, err := config.Load(); err == nil {
		opts = cfg.SearchOptions()
	}
	opts = opts.Merge(explainOverrides(req))

	e := diff.Explain(pattern, text, opts)

	log.Event("mcp:sift_explain", "explain").Author("mcp").Query(pattern).Results(boolToInt(e.Matched)).Write(nil)

	data, err := store.MarshalJSON(e)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// explainOverrides reads the optional tool arguments. Absent or mistyped
// values leave the configured option in place.
func explainOverrides(req mcp.CallToolRequest) fuzzy.Overrides {
	var ov fuzzy.Overrides
	args, _ := req.Params.Arguments.(map[string]any)
	if v, ok := args["case_sensitive"].(bool); ok {
		ov.CaseSensitive = &v
	}
	if v, ok := args["max_insertions"].(float64); ok {
		n := int(v)
		ov.MaxInsertions = &n
	}
	return ov
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
