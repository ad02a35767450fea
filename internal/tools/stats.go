package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pandamcp/panda/internal/journal"
)

// StatsTool handles the panda_stats MCP tool.
type StatsTool struct {
	journal *journal.Store
}

// NewStatsTool creates a StatsTool over the given journal store.
func NewStatsTool(jrnl *journal.Store) *StatsTool {
	return &StatsTool{journal: jrnl}
}

// Definition returns the MCP tool definition for registration.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("panda_stats",
		mcp.WithDescription(
			"Show invocation statistics — total tool calls, calls per tool, and most-used frameworks.",
		),
	)
}

// Handle processes the panda_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.journal == nil {
		return mcp.NewToolResultText("Journal is disabled — no statistics available."), nil
	}

	stats, err := t.journal.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	var sb strings.Builder
	sb.WriteString("## Invocation Statistics\n\n")
	sb.WriteString(fmt.Sprintf("- **Total calls**: %d\n", stats.TotalInvocations))

	if len(stats.ByTool) > 0 {
		sb.WriteString("\n### By Tool\n")
		for _, tc := range stats.ByTool {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", tc.Tool, tc.Count))
		}
	}

	if len(stats.TopFrameworks) > 0 {
		sb.WriteString("\n### Top Frameworks\n")
		for _, fc := range stats.TopFrameworks {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", fc.Framework, fc.Count))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
