package framework

import (
	"sort"
	"strings"
)

// --- Keyword taxonomy ---
//
// Each rule maps a fixed phrase set to the frameworks it argues for.
// Scoring counts distinct matched terms, so a term never double-counts
// no matter how often it appears in the intent text.

type keywordRule struct {
	terms      []string
	candidates []string
}

var planningKeywords = []keywordRule{
	{terms: []string{"fundamentals", "fundamental", "assumption", "first principles", "breakdown", "from scratch", "basics"},
		candidates: []string{"first_principles"}},
	{terms: []string{"system", "interconnect", "feedback loop", "relationship", "ripple", "holistic"},
		candidates: []string{"systems_thinking"}},
	{terms: []string{"user", "customer", "experience", "empathy", "persona", "usability"},
		candidates: []string{"design_thinking"}},
	{terms: []string{"deadline", "timeline", "dependency", "dependencies", "bottleneck", "schedule", "sequence of tasks"},
		candidates: []string{"critical_path"}},
	{terms: []string{"strength", "weakness", "opportunity", "threat", "competitive", "swot"},
		candidates: []string{"swot_analysis"}},
	{terms: []string{"break down", "tasks", "subtask", "decompose", "milestones", "work breakdown"},
		candidates: []string{"task_decomposition"}},
	{terms: []string{"challenge", "devil", "counterargument", "poke holes", "stress-test", "what could go wrong"},
		candidates: []string{"devils_advocate"}},
	{terms: []string{"scenario", "future", "uncertainty", "what if", "contingency"},
		candidates: []string{"scenario_planning"}},
	{terms: []string{"decision", "choose", "option", "trade-off", "tradeoff", "alternatives"},
		candidates: []string{"decision_trees"}},
	{terms: []string{"iterate", "feedback", "learning loop", "course correction", "retrospective"},
		candidates: []string{"feedback_loops"}},
	{terms: []string{"mvp", "minimal", "minimum viable", "lean", "quick win", "simplest"},
		candidates: []string{"minimum_viable_plan"}},
	{terms: []string{"attack", "adversary", "abuse", "threat model", "vulnerability"},
		candidates: []string{"threat_modeling"}},
	{terms: []string{"prototype", "experiment", "validate", "proof of concept", "spike"},
		candidates: []string{"rapid_prototyping"}},
}

var auditingKeywords = []keywordRule{
	{terms: []string{"security", "vulnerability", "access control", "threat", "penetration", "encryption", "breach"},
		candidates: []string{"security_audit"}},
	{terms: []string{"compliance", "regulation", "regulatory", "policy", "gdpr", "legal", "statute"},
		candidates: []string{"compliance_audit"}},
	{terms: []string{"quality", "defect", "standards", "iso", "customer satisfaction", "continuous improvement"},
		candidates: []string{"quality_audit"}},
	{terms: []string{"process", "workflow", "efficiency", "procedure", "operations", "handoff"},
		candidates: []string{"process_audit"}},
	{terms: []string{"financial", "budget", "cost", "expense", "accounting", "transaction", "reconciliation"},
		candidates: []string{"financial_audit"}},
	{terms: []string{"infrastructure", "backup", "availability", "change management", "disaster recovery", "it controls"},
		candidates: []string{"it_audit"}},
}

// --- Tie-break priority ---
//
// When two frameworks score identically, the earlier entry in this table
// wins: general-purpose frameworks rank above specialized ones. This is a
// deliberate, fixed policy — never incidental map iteration order.

var planningPriority = []string{
	"default",
	"first_principles",
	"systems_thinking",
	"task_decomposition",
	"design_thinking",
	"critical_path",
	"decision_trees",
	"swot_analysis",
	"scenario_planning",
	"devils_advocate",
	"feedback_loops",
	"minimum_viable_plan",
	"rapid_prototyping",
	"threat_modeling",
}

var auditingPriority = []string{
	"general_audit",
	"security_audit",
	"quality_audit",
	"process_audit",
	"compliance_audit",
	"financial_audit",
	"it_audit",
}

func domainKeywords(d Domain) []keywordRule {
	if d == Auditing {
		return auditingKeywords
	}
	return planningKeywords
}

func domainPriority(d Domain) []string {
	if d == Auditing {
		return auditingPriority
	}
	return planningPriority
}

// Suggester ranks registered frameworks against free-text intent.
// It is a pure function of its inputs plus the static keyword tables:
// identical inputs always produce an identical ranking.
type Suggester struct {
	registry *Registry
}

// NewSuggester creates a Suggester backed by the given registry.
func NewSuggester(reg *Registry) *Suggester {
	return &Suggester{registry: reg}
}

// Suggest returns candidate framework ids, most relevant first.
// Keyword hits in the intent text score primary; hits in the context's
// string fields break score ties; remaining ties fall back to the fixed
// per-domain priority table. The result is never empty: with no keyword
// match at all, the domain's default framework is the sole suggestion.
func (s *Suggester) Suggest(d Domain, intent string, context map[string]any) []string {
	intentText := strings.ToLower(intent)
	ctxText := strings.ToLower(contextText(context))

	type scored struct {
		id           string
		intentScore  int
		contextScore int
	}

	hits := make(map[string]*scored)
	for _, rule := range domainKeywords(d) {
		ruleIntent, ruleContext := 0, 0
		for _, term := range rule.terms {
			if strings.Contains(intentText, term) {
				ruleIntent++
			}
			if ctxText != "" && strings.Contains(ctxText, term) {
				ruleContext++
			}
		}
		if ruleIntent == 0 && ruleContext == 0 {
			continue
		}
		for _, id := range rule.candidates {
			if !s.registry.Exists(d, id) {
				continue
			}
			sc := hits[id]
			if sc == nil {
				sc = &scored{id: id}
				hits[id] = sc
			}
			sc.intentScore += ruleIntent
			sc.contextScore += ruleContext
		}
	}

	if len(hits) == 0 {
		return []string{DefaultFramework(d)}
	}

	ranked := make([]scored, 0, len(hits))
	for _, sc := range hits {
		ranked = append(ranked, *sc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.intentScore != b.intentScore {
			return a.intentScore > b.intentScore
		}
		if a.contextScore != b.contextScore {
			return a.contextScore > b.contextScore
		}
		return s.priority(d, a.id) < s.priority(d, b.id)
	})

	out := make([]string, len(ranked))
	for i, sc := range ranked {
		out[i] = sc.id
	}
	return out
}

// priority returns the tie-break rank for an id: its position in the
// domain's priority table, or past the table (in registration order)
// for frameworks added via Register.
func (s *Suggester) priority(d Domain, id string) int {
	table := domainPriority(d)
	for i, known := range table {
		if known == id {
			return i
		}
	}
	return len(table) + s.registry.ordinal(d, id)
}

// contextText flattens the string leaves of a context map into one
// searchable blob. Keys are visited in sorted order so the result is
// deterministic for identical input.
func contextText(context map[string]any) string {
	if len(context) == 0 {
		return ""
	}

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		appendLeaves(&b, context[k])
	}
	return b.String()
}

func appendLeaves(b *strings.Builder, v any) {
	switch val := v.(type) {
	case string:
		b.WriteString(val)
		b.WriteByte('\n')
	case []any:
		for _, item := range val {
			appendLeaves(b, item)
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendLeaves(b, val[k])
		}
	}
}
