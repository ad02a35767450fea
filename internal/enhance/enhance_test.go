package enhance

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/session"
)

func newEngines(t *testing.T) (*PlanEngine, *AuditEngine) {
	t.Helper()
	reg := framework.MustLoad()
	sug := framework.NewSuggester(reg)
	return NewPlanEngine(reg, sug), NewAuditEngine(reg, sug)
}

// --- PlanEngine ---

func TestPlanEngine_ExplicitFramework(t *testing.T) {
	plan, _ := newEngines(t)

	resp, err := plan.Enhance(PlanRequest{
		Thought:   "rebuild the deployment pipeline",
		Framework: "first_principles",
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if resp.FrameworkUsed != "first_principles" {
		t.Errorf("expected first_principles, got %s", resp.FrameworkUsed)
	}
	if len(resp.SuggestedFrameworks) != 0 {
		t.Error("explicit framework should not trigger suggestions")
	}
	if len(resp.Questions) == 0 || len(resp.Structure) == 0 || resp.NextSteps == "" {
		t.Error("response should carry the framework's full guidance")
	}
}

func TestPlanEngine_UnknownFramework(t *testing.T) {
	plan, _ := newEngines(t)

	_, err := plan.Enhance(PlanRequest{
		Thought:   "anything",
		Framework: "nonexistent",
	})
	if err == nil {
		t.Fatal("expected error for unknown framework")
	}
	var ufe *framework.UnknownFrameworkError
	if !errors.As(err, &ufe) {
		t.Errorf("expected *UnknownFrameworkError, got %T", err)
	}
}

func TestPlanEngine_SuggestsWhenOmitted(t *testing.T) {
	plan, _ := newEngines(t)

	resp, err := plan.Enhance(PlanRequest{
		Thought: "break down this project into tasks",
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if len(resp.SuggestedFrameworks) == 0 {
		t.Fatal("omitted framework should produce suggestions")
	}
	if resp.FrameworkUsed != resp.SuggestedFrameworks[0] {
		t.Errorf("applied framework %s should be the top suggestion %s",
			resp.FrameworkUsed, resp.SuggestedFrameworks[0])
	}
	if resp.FrameworkUsed != "task_decomposition" {
		t.Errorf("expected task_decomposition, got %s", resp.FrameworkUsed)
	}
}

func TestPlanEngine_TracksProgress(t *testing.T) {
	plan, _ := newEngines(t)

	resp, err := plan.Enhance(PlanRequest{
		Thought:    "next step",
		Framework:  "default",
		StepNumber: 3,
		PreviousSteps: []session.StepRecord{
			{"framework": "default", "insight": "scoped the work"},
			{"framework": "critical_path", "insight": "found the bottleneck"},
		},
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if resp.StepNumber != 3 {
		t.Errorf("expected step number 3, got %d", resp.StepNumber)
	}
	if resp.Progress.StepCount != 2 {
		t.Errorf("expected step count 2, got %d", resp.Progress.StepCount)
	}
}

func TestPlanEngine_Deterministic(t *testing.T) {
	plan, _ := newEngines(t)

	req := PlanRequest{Thought: "design a new user onboarding experience"}
	first, err := plan.Enhance(req)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	second, err := plan.Enhance(req)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical requests must yield identical responses")
	}
}

// --- AuditEngine ---

func TestAuditEngine_DefaultsToPlanningPhase(t *testing.T) {
	_, audit := newEngines(t)

	resp, err := audit.Enhance(AuditRequest{
		Objective: "assess the quarterly close process",
		Framework: "general_audit",
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if resp.Phase != framework.PhasePlanning {
		t.Errorf("expected planning phase, got %s", resp.Phase)
	}
	if resp.NextPhase != string(framework.PhaseInformationGathering) {
		t.Errorf("expected next phase information_gathering, got %s", resp.NextPhase)
	}
	if len(resp.Reporting) != 0 {
		t.Error("reporting structure belongs to the final phase only")
	}
	if len(resp.Methodology) == 0 {
		t.Error("expected a non-empty methodology for the phase")
	}
}

func TestAuditEngine_InvalidPhase(t *testing.T) {
	_, audit := newEngines(t)

	_, err := audit.Enhance(AuditRequest{
		Objective: "anything",
		Framework: "general_audit",
		Phase:     "wrap_up",
	})
	if err == nil {
		t.Fatal("expected error for invalid phase")
	}
	var ipe *framework.InvalidPhaseError
	if !errors.As(err, &ipe) {
		t.Errorf("expected *InvalidPhaseError, got %T", err)
	}
}

func TestAuditEngine_TerminalPhaseCarriesReporting(t *testing.T) {
	_, audit := newEngines(t)

	resp, err := audit.Enhance(AuditRequest{
		Objective: "security posture review",
		Framework: "security_audit",
		Phase:     string(framework.PhaseAnalysisReporting),
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if len(resp.Reporting) == 0 {
		t.Error("final phase should include the reporting structure")
	}
	if resp.NextPhase != "" {
		t.Errorf("terminal phase should have no next phase, got %s", resp.NextPhase)
	}
}

func TestAuditEngine_SummarizesEvidence(t *testing.T) {
	_, audit := newEngines(t)

	resp, err := audit.Enhance(AuditRequest{
		Objective: "review change management controls",
		Framework: "it_audit",
		Phase:     string(framework.PhaseTestingEvaluation),
		Evidence: []session.Evidence{
			{"finding": "no rollback plan"},
			{"finding": "unreviewed changes"},
			{"finding": "stale runbooks"},
			{"finding": "shared admin account"},
		},
	})
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if resp.EvidenceSummary.Count != 4 {
		t.Errorf("expected evidence count 4, got %d", resp.EvidenceSummary.Count)
	}
	if len(resp.EvidenceSummary.Recent) != 3 {
		t.Errorf("expected 3 recent entries, got %d", len(resp.EvidenceSummary.Recent))
	}
}

func TestAuditEngine_RepeatedPhaseCallIsIdempotent(t *testing.T) {
	_, audit := newEngines(t)

	req := AuditRequest{
		Objective: "gdpr compliance review",
		Phase:     string(framework.PhaseInformationGathering),
	}
	first, err := audit.Enhance(req)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	second, err := audit.Enhance(req)
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeating a phase call must not change the response")
	}
}
