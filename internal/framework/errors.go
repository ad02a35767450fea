package framework

import "fmt"

// RegistryLoadError reports a builtin or registered record that violates
// the required-fields contract. Against shipped data this is a programming
// defect — the server treats it as fatal at startup.
type RegistryLoadError struct {
	Domain Domain
	ID     string
	Reason string
}

func (e *RegistryLoadError) Error() string {
	id := e.ID
	if id == "" {
		id = "(no id)"
	}
	return fmt.Sprintf("loading %s framework %s: %s", e.Domain, id, e.Reason)
}

// UnknownFrameworkError reports a caller-supplied framework id absent from
// the registry. Recoverable: surfaced as a normal failure result.
type UnknownFrameworkError struct {
	Domain Domain
	ID     string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown %s framework %q", e.Domain, e.ID)
}

// InvalidPhaseError reports a caller-supplied audit phase outside the
// closed phase set. Recoverable.
type InvalidPhaseError struct {
	Phase string
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid audit phase %q: must be one of: planning, information_gathering, testing_evaluation, analysis_reporting", e.Phase)
}
