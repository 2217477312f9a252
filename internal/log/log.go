// Package log provides centralised audit logging for sift operations.
// Logs are stored in ~/.sift/log/sift-log.db and record every CLI command
// and MCP tool invocation across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:search", "search").
//		Author(cmd.Author()).
//		Collection(name).
//		Query(patterns...).
//		Results(len(results)).
//		Write(err)
//
//	log.Event("collection:import", "import").
//		Author(cmd.Author()).
//		Collection(name).
//		Detail("files", len(files)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:search",
// "collection:rm", "mcp:search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source     string // e.g., "search:search", "mcp:sift_search"
	Author     string // who performed the action
	Action     string // verb: search, import, drop, explain, etc.
	Collection string // collection the operation targeted
	Query      string // patterns, joined with a single space

	Results int // output: records matched, imported or listed

	// Timing, in milliseconds since the epoch
	Start int64
	End   int64

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:search")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:search")
//
// The action describes what was performed: "search", "import", "list",
// "drop", "export", "explain", "config".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author(). For MCP tools, use "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Collection sets the collection this operation affects.
// Leave unset for operations that don't target a collection (e.g., config).
func (b *Builder) Collection(name string) *Builder {
	b.entry.Collection = name
	return b
}

// Query records the search patterns.
func (b *Builder) Query(patterns ...string) *Builder {
	b.entry.Query = strings.Join(patterns, " ")
	return b
}

// Results sets how many records the operation produced or touched.
func (b *Builder) Results(n int) *Builder {
	b.entry.Results = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// field selectors, option values, file counts. Can be called repeatedly.
//
// Example:
//
//	log.Event("search:search", "search").
//		Detail("fields", sel.String()).
//		Detail("field_matching", opts.FieldMatching)
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry, deriving success/failure from err.
//
// Example:
//
//	results, err := svc.Search(ctx, req)
//	log.Event("search:search", "search").Collection(req.Collection).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the .sift directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
