// tools_init.go implements sift_init, the one tool that works without an
// existing store.

package mcp

import (
	"context"
	"log/slog"

	"github.com/jpl-au/sift/internal/collection"
	"github.com/jpl-au/sift/internal/log"
	"github.com/jpl-au/sift/internal/repo"
	"github.com/mark3labs/mcp-go/mcp"
)

// initStore handles sift_init tool calls.
func (h *handlers) initStore(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.svc != nil {
		return mcp.NewToolResultError("store already initialised"), nil
	}

	local := getBool(req, "local", false)

	dir, err := repo.Init(repo.InitOptions{DB: h.db, Local: local, Dir: h.dir})

	log.Event("mcp:sift_init", "init").Author("mcp").Detail("local", local).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc, err := collection.New(h.db, h.dir)
	if err != nil {
		return mcp.NewToolResultError("init succeeded but failed to open store: " + err.Error()), nil
	}
	h.attach(svc)

	slog.Info("store initialised", "dir", dir, "local", local)

	if local {
		return mcp.NewToolResultText("store initialised (local - gitignored)"), nil
	}
	return mcp.NewToolResultText("store initialised"), nil
}
