package session

// Evidence is one free-form record collected during an audit session.
// Entries are never mutated after append.
type Evidence map[string]any

// maxRecentEvidence is how many trailing entries a summary echoes back.
const maxRecentEvidence = 3

// AppendEvidence returns carried with fresh appended. The accumulated
// sequence is strictly additive: the carried slice is copied, never
// mutated, truncated, or reordered, so a caller's own slice stays intact.
func AppendEvidence(carried, fresh []Evidence) []Evidence {
	out := make([]Evidence, 0, len(carried)+len(fresh))
	out = append(out, carried...)
	out = append(out, fresh...)
	return out
}

// EvidenceSummary is the compact view of accumulated evidence echoed
// back with audit guidance.
type EvidenceSummary struct {
	Count  int        `json:"count"`
	Recent []Evidence `json:"recent,omitempty"`
}

// SummarizeEvidence returns the entry count plus the last few entries
// in their original order.
func SummarizeEvidence(ev []Evidence) EvidenceSummary {
	s := EvidenceSummary{Count: len(ev)}
	start := 0
	if len(ev) > maxRecentEvidence {
		start = len(ev) - maxRecentEvidence
	}
	if len(ev) > 0 {
		s.Recent = append(s.Recent, ev[start:]...)
	}
	return s
}
