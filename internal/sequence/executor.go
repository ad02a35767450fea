// Package sequence runs an ordered plan of enhancement steps with a
// shared context threaded through them. Execution is synchronous and
// in-process; a step failure stops the run but keeps the partial trace.
package sequence

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pandamcp/panda/internal/enhance"
	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/session"
)

// Tools a step may name.
const (
	ToolPlan  = "plan"
	ToolAudit = "audit"
)

// Step is one entry in a plan. Parameters are tool-specific and merged
// on top of the shared context when the step runs.
type Step struct {
	ID         string         `json:"id,omitempty"`
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Plan is an ordered list of steps plus the initial shared context.
type Plan struct {
	Steps   []Step         `json:"steps"`
	Context map[string]any `json:"context,omitempty"`
}

// Step statuses in a trace.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// FailureRecord describes why a step failed. Kind is a stable
// machine-readable class; Message is the underlying error text.
type FailureRecord struct {
	Tool    string `json:"tool"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// StepResult is one executed step in the trace.
type StepResult struct {
	Index   int            `json:"index"`
	ID      string         `json:"id,omitempty"`
	Tool    string         `json:"tool"`
	Status  string         `json:"status"`
	Output  map[string]any `json:"output,omitempty"`
	Failure *FailureRecord `json:"failure,omitempty"`
}

// Result is the outcome of a run. FailedStep is nil on full success,
// otherwise the index of the step that stopped the run; the trace then
// holds every completed step plus the failed one.
type Result struct {
	Trace        []StepResult   `json:"trace"`
	FinalContext map[string]any `json:"final_context"`
	FailedStep   *int           `json:"failed_step,omitempty"`
}

// UnknownToolError reports a step naming a tool the executor has no
// engine for.
type UnknownToolError struct {
	Tool  string
	Index int
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("step %d: unknown tool %q", e.Index, e.Tool)
}

// Executor runs plans against the two enhancement engines.
type Executor struct {
	plan  *enhance.PlanEngine
	audit *enhance.AuditEngine
}

// NewExecutor creates an Executor over the given engines.
func NewExecutor(plan *enhance.PlanEngine, audit *enhance.AuditEngine) *Executor {
	return &Executor{plan: plan, audit: audit}
}

// Run executes the plan's steps in order. Tool inputs come from the
// step's own parameters only; the shared context reaches an engine
// solely as its Context (suggester input), so a context key can never
// shadow an omitted parameter. Each completed step's output is merged
// back into the context last-write-wins, and also kept under
// "step_N_result" for later steps. The input plan is never mutated.
func (x *Executor) Run(plan Plan) *Result {
	ctx := cloneContext(plan.Context)
	res := &Result{Trace: make([]StepResult, 0, len(plan.Steps))}

	var evidence []session.Evidence

	for i, step := range plan.Steps {
		sr := StepResult{Index: i, ID: step.ID, Tool: step.Tool}

		var out map[string]any
		var err error
		switch step.Tool {
		case ToolPlan:
			out, err = x.runPlan(step.Parameters, ctx)
		case ToolAudit:
			out, evidence, err = x.runAudit(step.Parameters, ctx, evidence)
		default:
			err = &UnknownToolError{Tool: step.Tool, Index: i}
		}

		if err != nil {
			sr.Status = StatusFailed
			sr.Failure = &FailureRecord{
				Tool:    step.Tool,
				Kind:    failureKind(err),
				Message: err.Error(),
			}
			res.Trace = append(res.Trace, sr)
			idx := i
			res.FailedStep = &idx
			break
		}

		sr.Status = StatusCompleted
		sr.Output = out
		res.Trace = append(res.Trace, sr)

		for k, v := range out {
			ctx[k] = v
		}
		ctx[fmt.Sprintf("step_%d_result", i+1)] = out
	}

	res.FinalContext = ctx
	return res
}

func (x *Executor) runPlan(params, ctx map[string]any) (map[string]any, error) {
	req := enhance.PlanRequest{
		Thought:    stringParam(params, "thought"),
		Framework:  stringParam(params, "framework"),
		Context:    ctx,
		StepNumber: intParam(params, "step_number"),
	}
	if prev, ok := params["previous_steps"].([]any); ok {
		for _, p := range prev {
			if m, ok := p.(map[string]any); ok {
				req.PreviousSteps = append(req.PreviousSteps, session.StepRecord(m))
			}
		}
	}
	resp, err := x.plan.Enhance(req)
	if err != nil {
		return nil, err
	}
	return toMap(resp)
}

func (x *Executor) runAudit(params, ctx map[string]any, carried []session.Evidence) (map[string]any, []session.Evidence, error) {
	var fresh []session.Evidence
	if items, ok := params["evidence_collected"].([]any); ok {
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				fresh = append(fresh, session.Evidence(m))
			}
		}
	}
	evidence := session.AppendEvidence(carried, fresh)

	req := enhance.AuditRequest{
		Objective: stringParam(params, "audit_objective"),
		Framework: stringParam(params, "framework"),
		Context:   ctx,
		Phase:     stringParam(params, "phase"),
		Evidence:  evidence,
	}
	resp, err := x.audit.Enhance(req)
	if err != nil {
		return nil, carried, err
	}
	out, err := toMap(resp)
	if err != nil {
		return nil, carried, err
	}
	return out, evidence, nil
}

// failureKind classifies an error into a stable trace label.
func failureKind(err error) string {
	var ut *UnknownToolError
	var uf *framework.UnknownFrameworkError
	var ip *framework.InvalidPhaseError
	switch {
	case errors.As(err, &ut):
		return "unknown_tool"
	case errors.As(err, &uf):
		return "unknown_framework"
	case errors.As(err, &ip):
		return "invalid_phase"
	default:
		return "internal"
	}
}

func cloneContext(ctx map[string]any) map[string]any {
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

func stringParam(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intParam(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// toMap flattens a response struct into a generic map via its JSON shape,
// so step outputs merge into the shared context uniformly.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
