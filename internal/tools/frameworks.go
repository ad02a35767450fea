package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pandamcp/panda/internal/framework"
)

// FrameworksTool handles the panda_frameworks MCP tool.
// It is a read-only catalog of the registered frameworks.
type FrameworksTool struct {
	registry *framework.Registry
}

// NewFrameworksTool creates a FrameworksTool over the given registry.
func NewFrameworksTool(reg *framework.Registry) *FrameworksTool {
	return &FrameworksTool{registry: reg}
}

// Definition returns the MCP tool definition for registration.
func (t *FrameworksTool) Definition() mcp.Tool {
	return mcp.NewTool("panda_frameworks",
		mcp.WithDescription(
			"List the available planning and auditing frameworks with their descriptions.",
		),
		mcp.WithString("domain",
			mcp.Description("Restrict the listing to one domain. Omit for both."),
			mcp.Enum(string(framework.Planning), string(framework.Auditing)),
		),
	)
}

// Handle processes the panda_frameworks tool call.
func (t *FrameworksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	domains := []framework.Domain{framework.Planning, framework.Auditing}
	if d := req.GetString("domain", ""); d != "" {
		dom := framework.Domain(d)
		if err := framework.ValidateDomain(dom); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		domains = []framework.Domain{dom}
	}

	var sb strings.Builder
	sb.WriteString("## Available Frameworks\n")
	for _, d := range domains {
		sb.WriteString(fmt.Sprintf("\n### %s\n", titleCase(string(d))))
		for _, id := range t.registry.List(d) {
			rec, err := t.registry.Get(d, id)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", rec.ID, rec.Description))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
