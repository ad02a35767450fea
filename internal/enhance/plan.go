// Package enhance implements the two enhancement engines behind the MCP
// tools: planning and auditing. Both are pure with respect to their
// inputs plus the registry contents — same request, same registry, same
// response — and neither retains anything between calls.
//
// The engines deliberately do no reasoning of their own: they resolve a
// framework (explicitly named or suggested from the intent text), echo its
// guidance, and bookkeep the caller-supplied progress or evidence state.
package enhance

import (
	"strings"

	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/session"
)

// PlanRequest is one enhance-planning call.
type PlanRequest struct {
	Thought       string
	Framework     string // optional explicit framework id
	Context       map[string]any
	StepNumber    int
	PreviousSteps []session.StepRecord
}

// PlanResponse is the structured guidance returned for one planning call.
type PlanResponse struct {
	FrameworkUsed       string            `json:"framework_used"`
	SuggestedFrameworks []string          `json:"suggested_frameworks,omitempty"`
	Description         string            `json:"description"`
	Questions           []string          `json:"questions"`
	Structure           []framework.Stage `json:"structure"`
	NextSteps           string            `json:"next_steps"`
	StepNumber          int               `json:"step_number"`
	Progress            session.Progress  `json:"progress"`
}

// PlanEngine resolves planning frameworks and tracks sequence progress.
type PlanEngine struct {
	registry  *framework.Registry
	suggester *framework.Suggester
}

// NewPlanEngine creates a PlanEngine with its dependencies.
func NewPlanEngine(reg *framework.Registry, sug *framework.Suggester) *PlanEngine {
	return &PlanEngine{registry: reg, suggester: sug}
}

// Enhance resolves a framework for the thought and returns its guidance.
// An explicitly named framework that is not registered fails with
// *framework.UnknownFrameworkError; with no explicit framework the
// suggester picks, and the full ranked list is echoed so the caller can
// steer the next step differently.
func (e *PlanEngine) Enhance(req PlanRequest) (*PlanResponse, error) {
	resp := &PlanResponse{}

	fw := strings.TrimSpace(req.Framework)
	if fw == "" {
		suggested := e.suggester.Suggest(framework.Planning, req.Thought, req.Context)
		fw = suggested[0]
		resp.SuggestedFrameworks = suggested
	}

	rec, err := e.registry.Get(framework.Planning, fw)
	if err != nil {
		return nil, err
	}

	progress := session.TrackProgress(req.StepNumber, req.PreviousSteps)

	resp.FrameworkUsed = rec.ID
	resp.Description = rec.Description
	resp.Questions = rec.Questions
	resp.Structure = rec.Stages
	resp.NextSteps = rec.NextSteps
	resp.StepNumber = progress.CurrentStep
	resp.Progress = progress
	return resp, nil
}
