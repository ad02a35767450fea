// Package tools implements the MCP tool handlers for the PandA server.
//
// Each tool is a struct that receives dependencies via its constructor
// (DIP) and exposes Definition() plus a Handle compatible with mcp-go's
// CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on the engines and the journal, not on each other
// - OCP: new tools are added without modifying existing ones
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// mapArg extracts an object argument from a tool request.
// Returns nil when the key is missing or not an object.
func mapArg(req mcp.CallToolRequest, key string) map[string]any {
	v, _ := req.GetArguments()[key].(map[string]any)
	return v
}

// mapSliceArg extracts an array-of-objects argument from a tool request.
// Non-object elements are skipped.
func mapSliceArg(req mcp.CallToolRequest, key string) []map[string]any {
	items, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// jsonResult marshals v as indented JSON into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
