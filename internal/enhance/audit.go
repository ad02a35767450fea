package enhance

import (
	"strings"

	"github.com/pandamcp/panda/internal/framework"
	"github.com/pandamcp/panda/internal/session"
)

// AuditRequest is one enhance-auditing call. Evidence holds every item
// collected so far, carried by the caller across phases.
type AuditRequest struct {
	Objective string
	Framework string // optional explicit framework id
	Context   map[string]any
	Phase     string // empty means planning
	Evidence  []session.Evidence
}

// AuditResponse is the structured guidance returned for one audit phase.
// Reporting is populated only in the analysis_reporting phase; NextPhase
// is empty once the terminal phase is reached.
type AuditResponse struct {
	FrameworkUsed          string                    `json:"framework_used"`
	SuggestedFrameworks    []string                  `json:"suggested_frameworks,omitempty"`
	Description            string                    `json:"description"`
	InvestigationQuestions []string                  `json:"investigation_questions"`
	Phase                  framework.Phase           `json:"phase"`
	Methodology            []string                  `json:"methodology"`
	EvidenceSummary        session.EvidenceSummary   `json:"evidence_summary"`
	Reporting              []framework.ReportSection `json:"reporting,omitempty"`
	NextPhase              string                    `json:"next_phase,omitempty"`
}

// AuditEngine resolves audit frameworks and walks the fixed phase cycle.
type AuditEngine struct {
	registry  *framework.Registry
	suggester *framework.Suggester
}

// NewAuditEngine creates an AuditEngine with its dependencies.
func NewAuditEngine(reg *framework.Registry, sug *framework.Suggester) *AuditEngine {
	return &AuditEngine{registry: reg, suggester: sug}
}

// Enhance resolves a framework and phase for the objective and returns
// the phase's methodology. Calling it twice with the same request yields
// the same response; advancing phases is entirely the caller's move.
func (e *AuditEngine) Enhance(req AuditRequest) (*AuditResponse, error) {
	phase, err := framework.ParsePhase(req.Phase)
	if err != nil {
		return nil, err
	}

	resp := &AuditResponse{}

	fw := strings.TrimSpace(req.Framework)
	if fw == "" {
		suggested := e.suggester.Suggest(framework.Auditing, req.Objective, req.Context)
		fw = suggested[0]
		resp.SuggestedFrameworks = suggested
	}

	rec, err := e.registry.Get(framework.Auditing, fw)
	if err != nil {
		return nil, err
	}

	resp.FrameworkUsed = rec.ID
	resp.Description = rec.Description
	resp.InvestigationQuestions = rec.Questions
	resp.Phase = phase
	resp.Methodology = rec.Methodology[phase]
	resp.EvidenceSummary = session.SummarizeEvidence(req.Evidence)
	if phase.Terminal() {
		resp.Reporting = rec.Reporting
	} else if next, ok := phase.Next(); ok {
		resp.NextPhase = string(next)
	}
	return resp, nil
}
