// Package framework holds the template records for both reasoning domains —
// planning mental models and audit frameworks — together with the registry
// that stores and validates them and the keyword suggester that maps
// free-text intent to candidate frameworks.
//
// This package follows the same design principles as the rest of the server:
// - SRP: types, registry, suggester, and builtin data in separate files
// - DIP: consumers receive the Registry at composition time, never via globals
// - OCP: new frameworks are added through Register without modifying lookup
package framework

import "fmt"

// --- Domain enum ---

// Domain identifies one of the two framework families.
type Domain string

const (
	Planning Domain = "planning"
	Auditing Domain = "auditing"
)

// validDomains is the set of allowed domains.
var validDomains = map[Domain]bool{
	Planning: true,
	Auditing: true,
}

// ValidateDomain returns an error if the domain is not recognized.
func ValidateDomain(d Domain) error {
	if !validDomains[d] {
		return fmt.Errorf("invalid domain %q: must be one of: planning, auditing", d)
	}
	return nil
}

// DefaultFramework returns the fallback framework id for a domain.
// The suggester returns it as the sole candidate when no keyword matches,
// so a suggestion list is never empty.
func DefaultFramework(d Domain) string {
	if d == Auditing {
		return "general_audit"
	}
	return "default"
}

// --- Phase enum (auditing) ---

// Phase is one of the four fixed audit-investigation stages.
// The set is closed: audit methodology is always keyed by exactly
// these four phases, in this order.
type Phase string

const (
	PhasePlanning             Phase = "planning"
	PhaseInformationGathering Phase = "information_gathering"
	PhaseTestingEvaluation    Phase = "testing_evaluation"
	PhaseAnalysisReporting    Phase = "analysis_reporting"
)

// phaseOrder fixes the linear ordering of audit phases.
var phaseOrder = []Phase{
	PhasePlanning,
	PhaseInformationGathering,
	PhaseTestingEvaluation,
	PhaseAnalysisReporting,
}

// Phases returns the four audit phases in their fixed order.
// The returned slice is a copy.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// ParsePhase validates a caller-supplied phase string. An empty string
// resolves to the initial phase (planning) — the caller simply hasn't
// entered the audit state machine yet. Anything outside the closed set
// fails with *InvalidPhaseError.
func ParsePhase(s string) (Phase, error) {
	if s == "" {
		return PhasePlanning, nil
	}
	for _, p := range phaseOrder {
		if Phase(s) == p {
			return p, nil
		}
	}
	return "", &InvalidPhaseError{Phase: s}
}

// Index returns the ordinal position of the phase, or -1 if unknown.
func (p Phase) Index() int {
	for i, ph := range phaseOrder {
		if p == ph {
			return i
		}
	}
	return -1
}

// Next returns the successor phase. ok is false at analysis_reporting,
// which is terminal, and for unknown phases.
func (p Phase) Next() (Phase, bool) {
	idx := p.Index()
	if idx < 0 || idx >= len(phaseOrder)-1 {
		return "", false
	}
	return phaseOrder[idx+1], true
}

// Terminal reports whether the phase has no successor.
func (p Phase) Terminal() bool {
	return p == PhaseAnalysisReporting
}

// --- Template record ---

// Stage is one named step in a planning framework's structure.
type Stage struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// ReportSection is one section of an audit framework's reporting structure.
type ReportSection struct {
	Section string `json:"section"`
	Detail  string `json:"detail"`
}

// Record is the immutable template for one framework. Planning records
// carry Stages and NextSteps; auditing records carry Methodology (keyed by
// the closed phase set) and Reporting. A record has no behavior of its own —
// the external agent does the actual reasoning.
type Record struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`

	// Planning shape.
	Stages    []Stage `json:"structure,omitempty"`
	NextSteps string  `json:"next_steps,omitempty"`

	// Auditing shape.
	Methodology map[Phase][]string `json:"methodology,omitempty"`
	Reporting   []ReportSection    `json:"reporting_structure,omitempty"`
}

// Validate checks a record against the required-fields contract for its
// domain. A violation is returned as *RegistryLoadError naming the record,
// so a bad builtin fails loudly at load time instead of being skipped.
func Validate(d Domain, rec Record) error {
	if err := ValidateDomain(d); err != nil {
		return err
	}
	if rec.ID == "" {
		return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "empty id"}
	}
	if rec.Description == "" {
		return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "empty description"}
	}
	if len(rec.Questions) == 0 {
		return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "no questions"}
	}

	switch d {
	case Planning:
		if len(rec.Stages) == 0 {
			return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "planning record has no stages"}
		}
		if rec.Methodology != nil {
			return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "planning record carries audit methodology"}
		}
	case Auditing:
		if len(rec.Stages) > 0 {
			return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "auditing record carries planning stages"}
		}
		for _, p := range phaseOrder {
			if len(rec.Methodology[p]) == 0 {
				return &RegistryLoadError{
					Domain: d, ID: rec.ID,
					Reason: fmt.Sprintf("methodology missing phase %q", p),
				}
			}
		}
	}

	return nil
}
