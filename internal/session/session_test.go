package session

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// --- TrackProgress ---

func TestTrackProgress_DefaultsToStepOne(t *testing.T) {
	p := TrackProgress(0, nil)
	if p.CurrentStep != 1 {
		t.Errorf("expected current step 1, got %d", p.CurrentStep)
	}
	if p.StepCount != 0 || len(p.RecentSteps) != 0 {
		t.Errorf("empty history should yield empty progress, got %+v", p)
	}
}

func TestTrackProgress_NegativeStepNumber(t *testing.T) {
	p := TrackProgress(-3, nil)
	if p.CurrentStep != 1 {
		t.Errorf("expected current step 1, got %d", p.CurrentStep)
	}
}

func TestTrackProgress_RecentStepsKeepsLastFive(t *testing.T) {
	var previous []StepRecord
	for i := 0; i < 8; i++ {
		previous = append(previous, StepRecord{"framework": "default", "insight": "x"})
	}

	p := TrackProgress(9, previous)
	if p.StepCount != 8 {
		t.Errorf("expected step count 8, got %d", p.StepCount)
	}
	if len(p.RecentSteps) != 5 {
		t.Fatalf("expected 5 recent steps, got %d", len(p.RecentSteps))
	}
	if p.RecentSteps[0].Step != 4 || p.RecentSteps[4].Step != 8 {
		t.Errorf("recent steps should cover 4..8, got %d..%d",
			p.RecentSteps[0].Step, p.RecentSteps[4].Step)
	}
}

func TestTrackProgress_MostUsedFramework(t *testing.T) {
	previous := []StepRecord{
		{"framework": "first_principles"},
		{"framework": "systems_thinking"},
		{"framework": "systems_thinking"},
		{"framework": "first_principles"},
		{"framework": "systems_thinking"},
	}

	p := TrackProgress(6, previous)
	if p.MostUsedFramework != "systems_thinking" {
		t.Errorf("expected systems_thinking, got %s", p.MostUsedFramework)
	}
	if p.DistinctFramework != 2 {
		t.Errorf("expected 2 distinct frameworks, got %d", p.DistinctFramework)
	}
}

func TestTrackProgress_MostUsedTieBreaksOnFirstSeen(t *testing.T) {
	previous := []StepRecord{
		{"framework": "design_thinking"},
		{"framework": "critical_path"},
		{"framework": "critical_path"},
		{"framework": "design_thinking"},
	}

	p := TrackProgress(5, previous)
	if p.MostUsedFramework != "design_thinking" {
		t.Errorf("equal counts should resolve to the first-seen framework, got %s", p.MostUsedFramework)
	}
}

func TestTrackProgress_TruncatesLongInsights(t *testing.T) {
	long := strings.Repeat("a", 500)
	p := TrackProgress(2, []StepRecord{{"insight": long}})
	if got := len(p.RecentSteps[0].Insight); got != maxInsightLen {
		t.Errorf("expected insight truncated to %d, got %d", maxInsightLen, got)
	}
}

func TestTrackProgress_TruncationKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 200)
	p := TrackProgress(2, []StepRecord{{"insight": long}})
	got := p.RecentSteps[0].Insight
	if !utf8.ValidString(got) {
		t.Fatalf("truncated insight is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != maxInsightLen {
		t.Errorf("expected %d runes, got %d", maxInsightLen, n)
	}
}

func TestTrackProgress_SkipsNonStringFrameworks(t *testing.T) {
	p := TrackProgress(2, []StepRecord{{"framework": 42}, {"framework": "default"}})
	if p.MostUsedFramework != "default" {
		t.Errorf("expected default, got %s", p.MostUsedFramework)
	}
	if p.DistinctFramework != 1 {
		t.Errorf("expected 1 distinct framework, got %d", p.DistinctFramework)
	}
}

// --- Evidence ---

func TestAppendEvidence_IsAdditive(t *testing.T) {
	carried := []Evidence{{"finding": "a"}, {"finding": "b"}}
	fresh := []Evidence{{"finding": "c"}}

	got := AppendEvidence(carried, fresh)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[2]["finding"] != "c" {
		t.Errorf("fresh evidence should land at the end, got %v", got[2])
	}
}

func TestAppendEvidence_NeverMutatesCarried(t *testing.T) {
	carried := make([]Evidence, 1, 4)
	carried[0] = Evidence{"finding": "a"}
	snapshot := []Evidence{{"finding": "a"}}

	_ = AppendEvidence(carried, []Evidence{{"finding": "b"}})
	if !reflect.DeepEqual(carried, snapshot) {
		t.Errorf("carried slice was mutated: %v", carried)
	}
}

func TestSummarizeEvidence_Empty(t *testing.T) {
	s := SummarizeEvidence(nil)
	if s.Count != 0 || len(s.Recent) != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestSummarizeEvidence_KeepsLastThree(t *testing.T) {
	ev := []Evidence{
		{"finding": "1"}, {"finding": "2"}, {"finding": "3"}, {"finding": "4"},
	}

	s := SummarizeEvidence(ev)
	if s.Count != 4 {
		t.Errorf("expected count 4, got %d", s.Count)
	}
	if len(s.Recent) != 3 {
		t.Fatalf("expected 3 recent entries, got %d", len(s.Recent))
	}
	if s.Recent[0]["finding"] != "2" || s.Recent[2]["finding"] != "4" {
		t.Errorf("recent should be the trailing entries in order, got %v", s.Recent)
	}
}
