package framework

import (
	"errors"
	"testing"
)

// --- Phases ---

func TestParsePhase_EmptyDefaultsToPlanning(t *testing.T) {
	p, err := ParsePhase("")
	if err != nil {
		t.Fatalf("ParsePhase(\"\") failed: %v", err)
	}
	if p != PhasePlanning {
		t.Errorf("expected planning, got %s", p)
	}
}

func TestParsePhase_Invalid(t *testing.T) {
	_, err := ParsePhase("interrogation")
	if err == nil {
		t.Fatal("expected error for invalid phase")
	}
	var ipe *InvalidPhaseError
	if !errors.As(err, &ipe) {
		t.Errorf("expected *InvalidPhaseError, got %T", err)
	}
}

func TestPhase_CycleOrder(t *testing.T) {
	want := []Phase{PhasePlanning, PhaseInformationGathering, PhaseTestingEvaluation, PhaseAnalysisReporting}
	got := Phases()
	if len(got) != len(want) {
		t.Fatalf("expected %d phases, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phase %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestPhase_NextWalksTheCycle(t *testing.T) {
	p := PhasePlanning
	for !p.Terminal() {
		next, ok := p.Next()
		if !ok {
			t.Fatalf("Next() failed at non-terminal phase %s", p)
		}
		if next.Index() != p.Index()+1 {
			t.Errorf("Next(%s): expected index %d, got %d", p, p.Index()+1, next.Index())
		}
		p = next
	}
	if p != PhaseAnalysisReporting {
		t.Errorf("terminal phase should be analysis_reporting, got %s", p)
	}
	if _, ok := p.Next(); ok {
		t.Error("Next() should fail at the terminal phase")
	}
}

// --- Registry ---

func TestRegistry_LoadAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Load(Planning); err != nil {
		t.Fatalf("Load(planning) failed: %v", err)
	}

	rec, err := reg.Get(Planning, "first_principles")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.ID != "first_principles" {
		t.Errorf("expected id first_principles, got %s", rec.ID)
	}
	if rec.Description == "" || len(rec.Questions) == 0 || len(rec.Stages) == 0 {
		t.Error("planning record should carry description, questions, and stages")
	}
}

func TestRegistry_LoadIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Load(Auditing); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	before := len(reg.List(Auditing))

	if err := reg.Load(Auditing); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if after := len(reg.List(Auditing)); after != before {
		t.Errorf("repeated Load changed the catalog: %d -> %d", before, after)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := MustLoad()
	_, err := reg.Get(Planning, "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown framework")
	}
	var ufe *UnknownFrameworkError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnknownFrameworkError, got %T", err)
	}
	if ufe.ID != "nonexistent" || ufe.Domain != Planning {
		t.Errorf("error should name the missing id and domain, got %+v", ufe)
	}
}

func TestRegistry_DefaultsExist(t *testing.T) {
	reg := MustLoad()
	for _, d := range []Domain{Planning, Auditing} {
		if !reg.Exists(d, DefaultFramework(d)) {
			t.Errorf("default framework %q must be registered for %s", DefaultFramework(d), d)
		}
	}
}

func TestRegistry_ExistsAgreesWithGet(t *testing.T) {
	reg := MustLoad()
	for _, d := range []Domain{Planning, Auditing} {
		for _, id := range reg.List(d) {
			if !reg.Exists(d, id) {
				t.Errorf("%s/%s listed but Exists is false", d, id)
			}
			if _, err := reg.Get(d, id); err != nil {
				t.Errorf("%s/%s listed but Get failed: %v", d, id, err)
			}
		}
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := MustLoad()
	err := reg.Register(Planning, Record{
		ID:          "default",
		Description: "shadowing attempt",
		Questions:   []string{"?"},
		Stages:      []Stage{{Name: "only", Detail: "x"}},
	})
	if err == nil {
		t.Fatal("registering a duplicate id should fail")
	}

	rec, getErr := reg.Get(Planning, "default")
	if getErr != nil {
		t.Fatalf("Get after failed Register: %v", getErr)
	}
	if rec.Description == "shadowing attempt" {
		t.Error("failed Register must not replace the existing record")
	}
}

func TestRegistry_RegisterValidates(t *testing.T) {
	reg := MustLoad()
	err := reg.Register(Planning, Record{ID: "incomplete", Description: "no questions"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var rle *RegistryLoadError
	if !errors.As(err, &rle) {
		t.Errorf("expected *RegistryLoadError, got %T", err)
	}
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	reg := MustLoad()
	ids := reg.List(Planning)
	if len(ids) == 0 {
		t.Fatal("expected builtin planning frameworks")
	}
	ids[0] = "mutated"
	if reg.List(Planning)[0] == "mutated" {
		t.Error("List must return a copy, not the internal slice")
	}
}

// --- Builtin data shape ---

func TestBuiltins_AuditingMethodologyCoversAllPhases(t *testing.T) {
	reg := MustLoad()
	for _, id := range reg.List(Auditing) {
		rec, err := reg.Get(Auditing, id)
		if err != nil {
			t.Fatalf("Get(%s): %v", id, err)
		}
		for _, p := range Phases() {
			if len(rec.Methodology[p]) == 0 {
				t.Errorf("%s: methodology missing phase %s", id, p)
			}
		}
		if len(rec.Reporting) == 0 {
			t.Errorf("%s: reporting structure is empty", id)
		}
	}
}

func TestValidate_PlanningNeedsStages(t *testing.T) {
	err := Validate(Planning, Record{
		ID:          "broken",
		Description: "no stages",
		Questions:   []string{"?"},
	})
	if err == nil {
		t.Fatal("planning record without stages should fail validation")
	}
}
