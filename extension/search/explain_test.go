package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/sift/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at temp dirs so no real
// config is read.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(t.TempDir())
}

func explainCall(t *testing.T, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "sift_explain"
	req.Params.Arguments = arguments
	res, err := handleExplain(context.Background(), nil, req)
	require.NoError(t, err)
	return res
}

type explanation struct {
	Matched    bool  `json:"matched"`
	Insertions int   `json:"insertions"`
	Indexes    []int `json:"matchIndexes"`
}

func decode(t *testing.T, res *mcp.CallToolResult) explanation {
	t.Helper()
	require.False(t, res.IsError)
	var e explanation
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &e))
	return e
}

func TestExplainTool(t *testing.T) {
	isolate(t)

	e := decode(t, explainCall(t, map[string]any{"pattern": "rd", "text": "robin david"}))
	assert.True(t, e.Matched)
	assert.Equal(t, 5, e.Insertions)
	assert.Equal(t, []int{0, 6}, e.Indexes)

	e = decode(t, explainCall(t, map[string]any{"pattern": "rd", "text": "robin david", "max_insertions": float64(0)}))
	assert.False(t, e.Matched)

	e = decode(t, explainCall(t, map[string]any{"pattern": "RD", "text": "robin david", "case_sensitive": true}))
	assert.False(t, e.Matched)

	res := explainCall(t, map[string]any{"text": "robin david"})
	assert.True(t, res.IsError)
}

func TestExplainTool_ConfigDefaults(t *testing.T) {
	isolate(t)
	cfg, err := config.LoadScope(config.ScopeGlobal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("search.max_insertions", "0"))
	require.NoError(t, cfg.Set("search.case_sensitive", "true"))
	require.NoError(t, cfg.Save())

	e := decode(t, explainCall(t, map[string]any{"pattern": "rd", "text": "robin david"}))
	assert.False(t, e.Matched, "configured cap applies")

	e = decode(t, explainCall(t, map[string]any{"pattern": "rd", "text": "robin david", "max_insertions": float64(-1)}))
	assert.True(t, e.Matched, "argument overrides the cap")

	e = decode(t, explainCall(t, map[string]any{"pattern": "RD", "text": "robin david", "max_insertions": float64(-1)}))
	assert.False(t, e.Matched, "configured case sensitivity applies")

	e = decode(t, explainCall(t, map[string]any{"pattern": "RD", "text": "robin david", "max_insertions": float64(-1), "case_sensitive": false}))
	assert.True(t, e.Matched)
}

func TestExtension(t *testing.T) {
	ext := &Extension{}
	names := map[string]bool{}
	for _, c := range ext.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["search"])
	assert.True(t, names["explain"])
	assert.ElementsMatch(t, []string{"search", "explain"}, ext.NoStoreCommands())

	tools := ext.MCPTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "sift_explain", tools[0].Tool.Name)
}
