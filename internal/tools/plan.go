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

// PlanTool handles the panda_plan MCP tool.
type PlanTool struct {
	engine  *enhance.PlanEngine
	journal *journal.Store // nullable — works without a journal
}

// NewPlanTool creates a PlanTool with its dependencies.
// jrnl may be nil — invocations are simply not recorded.
func NewPlanTool(engine *enhance.PlanEngine, jrnl *journal.Store) *PlanTool {
	return &PlanTool{engine: engine, journal: jrnl}
}

// Definition returns the MCP tool definition for registration.
func (t *PlanTool) Definition() mcp.Tool {
	return mcp.NewTool("panda_plan",
		mcp.WithDescription(
			"Enhance a planning thought with a structured thinking framework. "+
				"Returns the framework's guiding questions, structure, and next steps "+
				"for the AI to apply — the tool itself does no reasoning. Omit "+
				"'framework' to have one suggested from the thought; resend "+
				"'previous_steps' on each call to track multi-step progress.",
		),
		mcp.WithString("thought",
			mcp.Required(),
			mcp.Description("The planning thought or problem statement to enhance."),
		),
		mcp.WithString("framework",
			mcp.Description("Explicit planning framework id. Omit to get a suggestion."),
		),
		mcp.WithObject("context",
			mcp.Description("Free-form context; string values also feed the framework suggester."),
		),
		mcp.WithNumber("step_number",
			mcp.Description("Current step number in a multi-step sequence. Defaults to 1."),
		),
		mcp.WithArray("previous_steps",
			mcp.Description("Previously completed steps, as returned by earlier calls. "+
				"The server is stateless — resend them every call."),
		),
	)
}

// Handle processes the panda_plan tool call.
func (t *PlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	thought := strings.TrimSpace(req.GetString("thought", ""))
	if thought == "" {
		return mcp.NewToolResultError("thought is required"), nil
	}

	planReq := enhance.PlanRequest{
		Thought:    thought,
		Framework:  req.GetString("framework", ""),
		Context:    mapArg(req, "context"),
		StepNumber: intArg(req, "step_number", 0),
	}
	for _, m := range mapSliceArg(req, "previous_steps") {
		planReq.PreviousSteps = append(planReq.PreviousSteps, session.StepRecord(m))
	}

	resp, err := t.engine.Enhance(planReq)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.record(resp.FrameworkUsed)
	return jsonResult(resp)
}

func (t *PlanTool) record(fw string) {
	if t.journal == nil {
		return
	}
	err := t.journal.Record(journal.Invocation{
		Tool:      "panda_plan",
		Domain:    string(framework.Planning),
		Framework: fw,
	})
	if err != nil {
		slog.Warn("journal record failed", "tool", "panda_plan", "error", err)
	}
}
