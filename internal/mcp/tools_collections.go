// tools_collections.go implements the collection management tools:
// sift_collections, sift_import and sift_drop.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/records"
	"github.com/jpl-au/sift/internal/service"
	"github.com/jpl-au/sift/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// listCollections handles sift_collections tool calls.
func (h *handlers) listCollections(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	cols, err := h.svc.ListCollections(ctx)

	log.Event("mcp:sift_collections", "list").Author("mcp").Results(len(cols)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := make([]store.CollectionJSON, len(cols))
	for i := range cols {
		out[i] = cols[i].ToJSON()
	}
	return jsonResult(out)
}

// importRecords handles sift_import tool calls. Records arrive as JSON text;
// a payload that is not a single JSON value is read as JSON lines.
func (h *handlers) importRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError("collection is required"), nil //nolint:nilerr
	}
	text, err := req.RequireString("records")
	if err != nil {
		return mcp.NewToolResultError("records is required"), nil //nolint:nilerr
	}
	author := getString(req, "author", "mcp")
	replace := getBool(req, "replace", false)

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lopts := records.LoadOptions{
		Root:       getString(req, "root", ""),
		MaxRecords: cfg.MaxRecords(),
	}
	recs, err := records.Load(strings.NewReader(text), records.FormatJSON, lopts)
	if err != nil && lopts.Root == "" {
		recs, err = records.Load(strings.NewReader(text), records.FormatJSONL, lopts)
	}

	var n int
	if err == nil {
		n, err = h.svc.Import(ctx, name, recs, service.ImportOptions{
			Replace: replace,
			Author:  author,
		})
	}

	log.Event("mcp:sift_import", "import").
		Author(author).
		Collection(name).
		Results(n).
		Detail("replace", replace).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"collection": name,
		"imported":   n,
		"replaced":   replace,
	})
}

// dropCollection handles sift_drop tool calls.
func (h *handlers) dropCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError("collection is required"), nil //nolint:nilerr
	}

	err = h.svc.DropCollection(ctx, name)

	log.Event("mcp:sift_drop", "drop").Author("mcp").Collection(name).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("dropped %s", name)), nil
}
