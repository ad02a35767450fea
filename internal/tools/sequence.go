package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pandamcp/panda/internal/journal"
	"github.com/pandamcp/panda/internal/sequence"
)

// SequenceTool handles the panda_sequence MCP tool.
type SequenceTool struct {
	executor *sequence.Executor
	journal  *journal.Store // nullable — works without a journal
}

// NewSequenceTool creates a SequenceTool with its dependencies.
func NewSequenceTool(exec *sequence.Executor, jrnl *journal.Store) *SequenceTool {
	return &SequenceTool{executor: exec, journal: jrnl}
}

// Definition returns the MCP tool definition for registration.
func (t *SequenceTool) Definition() mcp.Tool {
	return mcp.NewTool("panda_sequence",
		mcp.WithDescription(
			"Execute an ordered sequence of plan and audit enhancement steps "+
				"with a shared context threaded through them. Each completed step's "+
				"output is merged into the context (later steps win on key conflicts) "+
				"and kept under step_N_result. A failing step stops the run; the "+
				"partial trace up to and including the failure is returned.",
		),
		mcp.WithArray("steps",
			mcp.Required(),
			mcp.Description("Ordered steps. Each is an object with 'tool' "+
				"('plan' or 'audit'), optional 'id', and tool-specific 'parameters' "+
				"('thought' for plan, 'audit_objective' for audit, plus 'framework', "+
				"'phase', 'evidence_collected', ...)."),
		),
		mcp.WithObject("context",
			mcp.Description("Initial shared context visible to every step."),
		),
	)
}

// Handle processes the panda_sequence tool call.
func (t *SequenceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawSteps := mapSliceArg(req, "steps")
	if len(rawSteps) == 0 {
		return mcp.NewToolResultError("steps is required and must be a non-empty array"), nil
	}

	plan := sequence.Plan{Context: mapArg(req, "context")}
	for _, m := range rawSteps {
		step := sequence.Step{}
		step.ID, _ = m["id"].(string)
		step.Tool, _ = m["tool"].(string)
		step.Parameters, _ = m["parameters"].(map[string]any)
		plan.Steps = append(plan.Steps, step)
	}

	result := t.executor.Run(plan)

	t.record(len(plan.Steps))
	return jsonResult(result)
}

func (t *SequenceTool) record(stepCount int) {
	if t.journal == nil {
		return
	}
	err := t.journal.Record(journal.Invocation{
		Tool:      "panda_sequence",
		StepCount: stepCount,
	})
	if err != nil {
		slog.Warn("journal record failed", "tool", "panda_sequence", "error", err)
	}
}
