// Package mcp implements the Model Context Protocol server, exposing sift
// collections and fuzzy search to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sift/extension"
	"github.com/jpl-au/sift/internal/collection"
	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/repo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNotInitialised is returned by tools when no database exists yet.
const ErrNotInitialised = "store not initialised - call sift_init first"

// Serve starts the MCP server over stdio.
//
// The server starts even if no database exists so a client can call
// sift_init. Tools that need a database return ErrNotInitialised until then.
func Serve(db, dir string) error {
	// stdout is reserved for JSON-RPC
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{db: db, dir: dir}

	svc, err := collection.New(db, dir)
	if err != nil && !errors.Is(err, repo.ErrNotInitialised) {
		slog.Error("failed to open store", "error", err)
		return err
	}
	if err == nil {
		h.attach(svc)
		defer svc.Close()
	} else {
		slog.Info("sift not initialised, starting in uninitialised mode - call sift_init to create store")
	}

	s := newServer(h)

	slog.Info("sift MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"sift",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the collection
// service. svc is nil until a database exists.
type handlers struct {
	db     string
	dir    string
	svc    *collection.Service
	extCtx extension.Context
}

// attach makes svc available to tools and to extension handlers.
func (h *handlers) attach(svc *collection.Service) {
	h.svc = svc
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config not loaded, using defaults", "error", err)
		cfg = &config.Config{}
	}
	h.extCtx = extension.NewContext(svc, svc.DB(), cfg)
	svc.SetExtensionContext(h.extCtx)
}

// requireInit returns an error result if the store is not initialised.
func (h *handlers) requireInit() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNotInitialised)
	}
	return nil
}

func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"sift://collections/{name}",
			"Collection",
			mcp.WithTemplateDescription("Records of a collection as a JSON array, in import order"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readCollection,
	)
}

func registerTools(s *server.MCPServer, h *handlers) {
	// Works without an existing store
	s.AddTool(
		mcp.NewTool("sift_init",
			mcp.WithDescription("Initialise a new sift store. Call this first if other tools return 'store not initialised'."),
			mcp.WithBoolean("local", mcp.Description("If true, the database is gitignored")),
		),
		h.initStore,
	)

	s.AddTool(
		mcp.NewTool("sift_search",
			mcp.WithDescription("Fuzzy subsequence search over one collection. Every pattern must match as an ordered, possibly gapped, subsequence of a selected field. Results are ranked best first."),
			mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
			mcp.WithArray("patterns", mcp.Required(), mcp.WithStringItems(), mcp.Description("Patterns that must all match")),
			mcp.WithArray("fields", mcp.WithStringItems(), mcp.Description("Field paths to search, e.g. name or name.last (default: config search.fields)")),
			mcp.WithBoolean("case_sensitive", mcp.Description("Compare without lowercasing")),
			mcp.WithBoolean("field_matching", mcp.Description("Require all patterns to match within one field")),
			mcp.WithNumber("max_insertions", mcp.Description("Maximum skipped characters per match, -1 for no limit")),
			mcp.WithNumber("limit", mcp.Description("Maximum results (0 for all)")),
		),
		h.search,
	)

	s.AddTool(
		mcp.NewTool("sift_collections",
			mcp.WithDescription("List collections with their record counts"),
		),
		h.listCollections,
	)

	s.AddTool(
		mcp.NewTool("sift_import",
			mcp.WithDescription("Import records into a collection, creating it when missing"),
			mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name (lowercase letters, digits, - and _)")),
			mcp.WithString("records", mcp.Required(), mcp.Description("Records as JSON: an array of objects, one object, or JSON lines")),
			mcp.WithString("root", mcp.Description("Path to the record array inside the JSON document, e.g. data.items")),
			mcp.WithBoolean("replace", mcp.Description("Replace existing records instead of appending")),
			mcp.WithString("author", mcp.Description("Author attribution")),
		),
		h.importRecords,
	)

	s.AddTool(
		mcp.NewTool("sift_drop",
			mcp.WithDescription("Delete a collection and all of its records"),
			mcp.WithString("collection", mcp.Required(), mcp.Description("Collection name")),
		),
		h.dropCollection,
	)

	s.AddTool(
		mcp.NewTool("sift_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. search.fields) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("sift_config_set",
			mcp.WithDescription("Set a configuration value"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (e.g. search.fields, search.max_insertions)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("sift_guide",
			mcp.WithDescription("Get help/guide content for sift commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'search', 'import') or empty for index")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds the MCP tools contributed by extensions.
// Handlers run with the extension context of the open store, which is nil
// until sift_init succeeds.
func registerExtensionTools(s *server.MCPServer, h *handlers) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, h.extCtx, req)
			})
		}
	}
}
