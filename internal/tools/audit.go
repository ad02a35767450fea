package tools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pandamcp/panda/internal/enhance"
	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/journal"
	"github.com/pandamcp/panda/internal/session"
)

// AuditTool handles the panda_audit MCP tool.
type AuditTool struct {
	engine  *enhance.AuditEngine
	journal *journal.Store // nullable — works without a journal
}

// NewAuditTool creates an AuditTool with its dependencies.
func NewAuditTool(engine *enhance.AuditEngine, jrnl *journal.Store) *AuditTool {
	return &AuditTool{engine: engine, journal: jrnl}
}

// Definition returns the MCP tool definition for registration.
func (t *AuditTool) Definition() mcp.Tool {
	phases := framework.Phases()
	phaseNames := make([]string, len(phases))
	for i, p := range phases {
		phaseNames[i] = string(p)
	}

	return mcp.NewTool("panda_audit",
		mcp.WithDescription(
			"Enhance an audit objective with a structured audit framework. "+
				"Returns the phase's methodology and investigation questions for "+
				"the AI to apply. Walk the phases in order, resending collected "+
				"evidence on each call; the reporting structure appears in the "+
				"final analysis_reporting phase.",
		),
		mcp.WithString("audit_objective",
			mcp.Required(),
			mcp.Description("The audit objective or scope statement to enhance."),
		),
		mcp.WithString("framework",
			mcp.Description("Explicit audit framework id. Omit to get a suggestion."),
		),
		mcp.WithObject("context",
			mcp.Description("Free-form context; string values also feed the framework suggester."),
		),
		mcp.WithString("phase",
			mcp.Description("Current audit phase. Defaults to planning."),
			mcp.Enum(phaseNames...),
		),
		mcp.WithArray("evidence_collected",
			mcp.Description("All evidence items collected so far. "+
				"The server is stateless — resend them every call."),
		),
	)
}

// Handle processes the panda_audit tool call.
func (t *AuditTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objective := strings.TrimSpace(req.GetString("audit_objective", ""))
	if objective == "" {
		return mcp.NewToolResultError("audit_objective is required"), nil
	}

	auditReq := enhance.AuditRequest{
		Objective: objective,
		Framework: req.GetString("framework", ""),
		Context:   mapArg(req, "context"),
		Phase:     req.GetString("phase", ""),
	}
	for _, m := range mapSliceArg(req, "evidence_collected") {
		auditReq.Evidence = append(auditReq.Evidence, session.Evidence(m))
	}

	resp, err := t.engine.Enhance(auditReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.record(resp.FrameworkUsed, string(resp.Phase))
	return jsonResult(resp)
}

func (t *AuditTool) record(fw, phase string) {
	if t.journal == nil {
		return
	}
	err := t.journal.Record(journal.Invocation{
		Tool:      "panda_audit",
		Domain:    string(framework.Auditing),
		Framework: fw,
		Phase:     phase,
	})
	if err != nil {
		slog.Warn("journal record failed", "tool", "panda_audit", "error", err)
	}
}
