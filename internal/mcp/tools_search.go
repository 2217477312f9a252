// tools_search.go implements the sift_search tool.

package mcp

import (
	"context"
	"strings"

	"github.com/jpl-au/sift/fuzzy"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// search handles sift_search tool calls. Unset parameters fall back to the
// configured search defaults.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError("collection is required"), nil //nolint:nilerr
	}
	patterns := getStrings(req, "patterns")
	if len(patterns) == 0 {
		return mcp.NewToolResultError("patterns is required"), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sreq := searchRequest(cfg, req)
	sreq.Collection = name
	sreq.Patterns = patterns

	results, err := h.svc.Search(ctx, sreq)

	log.Event("mcp:sift_search", "search").
		Author("mcp").
		Collection(name).
		Query(patterns...).
		Results(len(results)).
		Detail("fields", sreq.Selector.String()).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if results == nil {
		results = []fuzzy.Result{}
	}
	return jsonResult(results)
}

// searchRequest overlays the tool arguments onto the configured defaults.
func searchRequest(cfg *config.Config, req mcp.CallToolRequest) service.SearchRequest {
	fields := getStrings(req, "fields")
	selector := fuzzy.ParseSelector(cfg.Fields())
	if len(fields) > 0 {
		selector = fuzzy.ParseSelector(strings.Join(fields, ","))
	}

	opts := cfg.SearchOptions().Merge(fuzzy.Overrides{
		CaseSensitive: optBool(req, "case_sensitive"),
		FieldMatching: optBool(req, "field_matching"),
		MaxInsertions: optInt(req, "max_insertions"),
	})

	return service.SearchRequest{
		Selector: selector,
		Options:  opts,
		Limit:    getInt(req, "limit", cfg.Limit()),
		Workers:  cfg.Workers(),
	}
}
