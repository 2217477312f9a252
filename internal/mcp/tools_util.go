// tools_util.go provides helpers for extracting typed MCP tool parameters.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the default rather than an error, since LLM clients often omit them.

package mcp

import (
	"github.com/jpl-au/sift/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

func args(req mcp.CallToolRequest) map[string]any {
	m, _ := req.Params.Arguments.(map[string]any)
	return m
}

// getString returns a string parameter or def.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool returns a boolean parameter or def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := args(req)[name].(bool); ok {
		return v
	}
	return def
}

// getInt returns a numeric parameter or def. JSON numbers arrive as float64.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	if v, ok := args(req)[name].(float64); ok {
		return int(v)
	}
	return def
}

// optBool returns nil when the parameter is absent, so config defaults apply.
func optBool(req mcp.CallToolRequest, name string) *bool {
	if v, ok := args(req)[name].(bool); ok {
		return &v
	}
	return nil
}

// optInt returns nil when the parameter is absent.
func optInt(req mcp.CallToolRequest, name string) *int {
	if v, ok := args(req)[name].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

// getStrings returns the string elements of an array parameter. Non-string
// elements are skipped. Returns nil when the parameter is absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	arr, ok := args(req)[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// jsonResult serialises v as indented JSON in a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := store.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
