// Package session models the per-call state the service bookkeeps for a
// reasoning agent: planning step progress and audit evidence.
//
// Nothing here persists. The caller owns the state, resends it on every
// call, and gets an updated copy back — the server holds no session store
// between calls. That statelessness is a deliberate invariant, not an
// oversight.
package session

import "sort"

// StepRecord is one prior planning step as resent by the caller.
// Keys are caller-defined; "framework" and "insight" are recognized
// for progress summaries.
type StepRecord map[string]any

// maxInsightLen caps a recorded insight, in runes, in progress summaries.
const maxInsightLen = 100

// maxRecentSteps is how many trailing steps a progress summary shows.
const maxRecentSteps = 5

// StepSummary is a compact view of one prior step.
type StepSummary struct {
	Step      int    `json:"step"`
	Framework string `json:"framework,omitempty"`
	Insight   string `json:"insight,omitempty"`
}

// Progress summarizes where the caller is in a multi-step planning
// sequence. It is derived entirely from caller-supplied fields.
type Progress struct {
	CurrentStep       int           `json:"current_step"`
	StepCount         int           `json:"step_count"`
	RecentSteps       []StepSummary `json:"recent_steps,omitempty"`
	DistinctFramework int           `json:"distinct_frameworks,omitempty"`
	MostUsedFramework string        `json:"most_used_framework,omitempty"`
}

// TrackProgress builds a Progress from the caller's step number and
// previously completed steps. A zero or negative step number defaults
// to 1. The most-used framework tie-break is deterministic: equal counts
// resolve to the framework that appeared first in the sequence.
func TrackProgress(stepNumber int, previous []StepRecord) Progress {
	if stepNumber <= 0 {
		stepNumber = 1
	}

	p := Progress{
		CurrentStep: stepNumber,
		StepCount:   len(previous),
	}
	if len(previous) == 0 {
		return p
	}

	start := 0
	if len(previous) > maxRecentSteps {
		start = len(previous) - maxRecentSteps
	}
	for i := start; i < len(previous); i++ {
		p.RecentSteps = append(p.RecentSteps, summarizeStep(i+1, previous[i]))
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, step := range previous {
		fw, _ := step["framework"].(string)
		if fw == "" {
			continue
		}
		counts[fw]++
		if _, seen := firstSeen[fw]; !seen {
			firstSeen[fw] = i
		}
	}
	if len(counts) > 0 {
		p.DistinctFramework = len(counts)
		names := make([]string, 0, len(counts))
		for fw := range counts {
			names = append(names, fw)
		}
		sort.Slice(names, func(i, j int) bool {
			a, b := names[i], names[j]
			if counts[a] != counts[b] {
				return counts[a] > counts[b]
			}
			return firstSeen[a] < firstSeen[b]
		})
		p.MostUsedFramework = names[0]
	}

	return p
}

func summarizeStep(number int, step StepRecord) StepSummary {
	s := StepSummary{Step: number}
	if fw, ok := step["framework"].(string); ok {
		s.Framework = fw
	}
	if insight, ok := step["insight"].(string); ok {
		if r := []rune(insight); len(r) > maxInsightLen {
			insight = string(r[:maxInsightLen])
		}
		s.Insight = insight
	}
	return s
}
