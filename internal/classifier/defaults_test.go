//nolint:testpackage // Testing internal defaults requires same package access
package classifier

import (
	"testing"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

func TestDefaultPhases_Shape(t *testing.T) {
	phases := DefaultPhases("proj-1")

	if len(phases) != domain.PhaseCount {
		t.Fatalf("expected %d phases, got %d", domain.PhaseCount, len(phases))
	}

	wantNames := []domain.PhaseName{
		domain.PhaseUnaware,
		domain.PhaseProblemAware,
		domain.PhaseSolutionAware,
		domain.PhaseProductAware,
		domain.PhaseMostAware,
	}

	seenOrders := make(map[int]bool)
	for i, phase := range phases {
		if phase.Name != wantNames[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantNames[i], phase.Name)
		}
		if phase.Order != i+1 {
			t.Errorf("phase %s: expected order %d, got %d", phase.Name, i+1, phase.Order)
		}
		if seenOrders[phase.Order] {
			t.Errorf("duplicate order %d", phase.Order)
		}
		seenOrders[phase.Order] = true

		if phase.ProjectID != "proj-1" {
			t.Errorf("phase %s: expected project id set, got %q", phase.Name, phase.ProjectID)
		}
		if phase.Percentage != 0 {
			t.Errorf("phase %s: expected zero percentage, got %f", phase.Name, phase.Percentage)
		}
		if phase.Content == nil || len(phase.Content) != 0 {
			t.Errorf("phase %s: expected empty content bucket", phase.Name)
		}
		if phase.DisplayName == "" || phase.Color == "" {
			t.Errorf("phase %s: missing display name or color", phase.Name)
		}
		if len(phase.Indicators) == 0 {
			t.Errorf("phase %s: expected default indicators", phase.Name)
		}
		if len(phase.RecommendedAngles) != 2 {
			t.Errorf("phase %s: expected 2 default angles, got %d", phase.Name, len(phase.RecommendedAngles))
		}
		for _, ind := range phase.Indicators {
			if ind.ID == "" {
				t.Errorf("phase %s: indicator %q has no stable id", phase.Name, ind.Pattern)
			}
			if ind.Weight <= 0 || ind.Weight > 10 {
				t.Errorf("phase %s: indicator %q weight %f out of range", phase.Name, ind.Pattern, ind.Weight)
			}
		}
	}
}

func TestDefaultPhases_CopiesAreIndependent(t *testing.T) {
	first := DefaultPhases("proj-1")
	first[0].Indicators[0].Weight = 99
	first[0].Indicators = append(first[0].Indicators, domain.Indicator{ID: "custom", Pattern: "x"})
	first[0].Percentage = 42

	second := DefaultPhases("proj-1")
	if second[0].Indicators[0].Weight == 99 {
		t.Error("mutating one copy leaked into the defaults")
	}
	if second[0].Percentage != 0 {
		t.Error("expected fresh copy with zero percentage")
	}
	for _, ind := range second[0].Indicators {
		if ind.ID == "custom" {
			t.Error("appended indicator leaked into the defaults")
		}
	}
}
