package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/sift/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const people = `[
  {"id": 0, "name": "Robin David", "email": "robin.david@gmail.com"},
  {"id": 1, "name": "Loris Francois", "email": "loris.francois@gmail.com"},
  {"id": 2, "name": "Armand Roy", "email": "armand.roy@live.com"},
  {"id": 3, "name": "Mathias Meunier", "email": "mathias.meunier@gmail.com"},
  {"id": 4, "name": "Ruben Bernard", "email": "ruben.bernard@yahoo.com"}
]`

// newHandlers returns handlers for a fresh project with HOME and the
// working directory isolated in temp dirs. The store is not initialised.
func newHandlers(t *testing.T) *handlers {
	t.Helper()
	home, work := t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(work)
	h := &handlers{dir: work}
	t.Cleanup(func() {
		if h.svc != nil {
			h.svc.Close()
		}
	})
	return h
}

func request(name string, arguments map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = arguments
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func call(t *testing.T, fn func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), name string, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := fn(context.Background(), request(name, arguments))
	require.NoError(t, err)
	return res
}

func ids(t *testing.T, res *mcp.CallToolResult) []int {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var results []struct {
		Entry struct {
			ID int `json:"id"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &results))
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Entry.ID
	}
	return out
}

func TestTools_Uninitialised(t *testing.T) {
	h := newHandlers(t)

	res := call(t, h.search, "sift_search", map[string]any{"collection": "people", "patterns": []any{"x"}})
	assert.True(t, res.IsError)
	assert.Equal(t, ErrNotInitialised, text(t, res))

	res = call(t, h.listCollections, "sift_collections", nil)
	assert.True(t, res.IsError)

	res = call(t, h.initStore, "sift_init", nil)
	assert.False(t, res.IsError, text(t, res))
	assert.Equal(t, "store initialised", text(t, res))
	require.NotNil(t, h.svc)

	res = call(t, h.initStore, "sift_init", nil)
	assert.True(t, res.IsError)
}

func TestTools_ImportSearchDrop(t *testing.T) {
	h := newHandlers(t)
	call(t, h.initStore, "sift_init", nil)

	res := call(t, h.importRecords, "sift_import", map[string]any{"collection": "people", "records": people})
	require.False(t, res.IsError, text(t, res))
	assert.JSONEq(t, `{"collection": "people", "imported": 5, "replaced": false}`, text(t, res))

	t.Run("search", func(t *testing.T) {
		res := call(t, h.search, "sift_search", map[string]any{
			"collection": "people",
			"patterns":   []any{"gmail", "oi"},
			"fields":     []any{"name", "email"},
		})
		assert.Equal(t, []int{1, 0}, ids(t, res))
	})

	t.Run("search options", func(t *testing.T) {
		res := call(t, h.search, "sift_search", map[string]any{
			"collection":     "people",
			"patterns":       []any{"rd"},
			"fields":         []any{"name", "email"},
			"max_insertions": float64(0),
		})
		assert.Equal(t, []int{4}, ids(t, res))

		res = call(t, h.search, "sift_search", map[string]any{
			"collection":     "people",
			"patterns":       []any{"ruben"},
			"fields":         []any{"name"},
			"case_sensitive": true,
		})
		assert.Empty(t, ids(t, res))
	})

	t.Run("search needs patterns", func(t *testing.T) {
		res := call(t, h.search, "sift_search", map[string]any{"collection": "people"})
		assert.True(t, res.IsError)
	})

	t.Run("configured fields", func(t *testing.T) {
		res := call(t, h.configSet, "sift_config_set", map[string]any{"key": "search.fields", "value": "name,email"})
		require.False(t, res.IsError, text(t, res))

		res = call(t, h.search, "sift_search", map[string]any{"collection": "people", "patterns": []any{"gmail"}})
		assert.Equal(t, []int{0, 1, 3}, ids(t, res))

		res = call(t, h.configGet, "sift_config_get", map[string]any{"key": "search.fields"})
		assert.JSONEq(t, `{"search.fields": "name,email"}`, text(t, res))
	})

	t.Run("json lines and root", func(t *testing.T) {
		res := call(t, h.importRecords, "sift_import", map[string]any{
			"collection": "lines",
			"records":    "{\"name\": \"Ada\"}\n{\"name\": \"Grace\"}\n",
		})
		require.False(t, res.IsError, text(t, res))

		res = call(t, h.importRecords, "sift_import", map[string]any{
			"collection": "nested",
			"records":    `{"data": {"items": [{"name": "Ada"}]}}`,
			"root":       "data.items",
		})
		require.False(t, res.IsError, text(t, res))
	})

	t.Run("list", func(t *testing.T) {
		res := call(t, h.listCollections, "sift_collections", nil)
		var cols []struct {
			Name    string `json:"name"`
			Records int    `json:"records"`
		}
		require.NoError(t, json.Unmarshal([]byte(text(t, res)), &cols))
		require.Len(t, cols, 3)
		assert.Equal(t, "lines", cols[0].Name)
		assert.Equal(t, 2, cols[0].Records)
	})

	t.Run("drop", func(t *testing.T) {
		res := call(t, h.dropCollection, "sift_drop", map[string]any{"collection": "people"})
		assert.Equal(t, "dropped people", text(t, res))

		res = call(t, h.dropCollection, "sift_drop", map[string]any{"collection": "people"})
		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "collection not found")
	})
}

func TestSearchRequest(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Set("search.fields", "name"))
	require.NoError(t, cfg.Set("search.case_sensitive", "true"))

	sreq := searchRequest(cfg, request("sift_search", map[string]any{}))
	assert.Equal(t, "name", sreq.Selector.String())
	assert.True(t, sreq.Options.CaseSensitive)
	assert.Equal(t, config.DefaultLimit, sreq.Limit)

	sreq = searchRequest(cfg, request("sift_search", map[string]any{
		"fields":         []any{"name.last", "email"},
		"case_sensitive": false,
		"max_insertions": float64(2),
		"limit":          float64(5),
	}))
	assert.Equal(t, "name.last,email", sreq.Selector.String())
	assert.False(t, sreq.Options.CaseSensitive)
	assert.Equal(t, 2, sreq.Options.MaxInsertions)
	assert.Equal(t, 5, sreq.Limit)
}

func TestParseCollectionURI(t *testing.T) {
	name, err := parseCollectionURI("sift://collections/people")
	require.NoError(t, err)
	assert.Equal(t, "people", name)

	name, err = parseCollectionURI("sift://collections/people/")
	require.NoError(t, err)
	assert.Equal(t, "people", name)

	_, err = parseCollectionURI("sift://collections/")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = parseCollectionURI("file:///etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidURI)

	_, err = parseCollectionURI("sift://collections/a/b")
	assert.ErrorIs(t, err, ErrInvalidURI)
}

func TestReadCollection(t *testing.T) {
	h := newHandlers(t)
	call(t, h.initStore, "sift_init", nil)
	call(t, h.importRecords, "sift_import", map[string]any{"collection": "people", "records": people})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "sift://collections/people"
	contents, err := h.readCollection(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &recs))
	require.Len(t, recs, 5)
	assert.Equal(t, "Robin David", recs[0]["name"])
}
