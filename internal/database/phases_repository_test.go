//nolint:testpackage // Testing internal scan helpers requires same package access
package database

import (
	"testing"
	"time"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

// fakeRow feeds canned column values into scanPhase.
type fakeRow struct {
	values []any
}

func (r *fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch out := d.(type) {
		case *int:
			*out = r.values[i].(int)
		case *string:
			*out = r.values[i].(string)
		case *domain.PhaseName:
			*out = r.values[i].(domain.PhaseName)
		case *float64:
			*out = r.values[i].(float64)
		case *[]byte:
			*out = r.values[i].([]byte)
		case *time.Time:
			*out = r.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanPhase_RestoresNestedLists(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	original := &domain.Phase{
		ID:          7,
		ProjectID:   "proj-1",
		Name:        domain.PhaseProblemAware,
		DisplayName: "Probleembewust",
		Description: "desc",
		Order:       2,
		Color:       "#F87171",
		Percentage:  25,
		Indicators: []domain.Indicator{
			{ID: "i1", Pattern: "probleem", Weight: 3, Description: "noemt een probleem"},
		},
		RecommendedAngles: []domain.MarketingAngle{
			{ID: "a1", Title: "Pijnpunt uitvergroten", Examples: []string{"voor/na"}},
		},
		Content: []domain.ContentItem{
			{SourceID: "c1", Text: "tekst", Platform: domain.PlatformReddit, Timestamp: now, Confidence: 0.8},
		},
	}

	indicators, angles, content, err := marshalPhaseLists(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	row := &fakeRow{values: []any{
		original.ID, original.ProjectID, original.Name, original.DisplayName,
		original.Description, original.Order, original.Color, original.Percentage,
		indicators, angles, content, now, now,
	}}

	phase, err := scanPhase(row)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	if phase.Name != domain.PhaseProblemAware || phase.Order != 2 {
		t.Errorf("unexpected phase identity: %s/%d", phase.Name, phase.Order)
	}
	if len(phase.Indicators) != 1 || phase.Indicators[0].Pattern != "probleem" {
		t.Errorf("indicators not restored: %+v", phase.Indicators)
	}
	if len(phase.RecommendedAngles) != 1 || phase.RecommendedAngles[0].ID != "a1" {
		t.Errorf("angles not restored: %+v", phase.RecommendedAngles)
	}
	if len(phase.Content) != 1 || phase.Content[0].Platform != domain.PlatformReddit {
		t.Errorf("content not restored: %+v", phase.Content)
	}
	if !phase.Content[0].Timestamp.Equal(now) {
		t.Errorf("timestamp drifted: %v vs %v", phase.Content[0].Timestamp, now)
	}
}

func TestScanPhase_EmptyLists(t *testing.T) {
	now := time.Now()
	row := &fakeRow{values: []any{
		1, "proj-1", domain.PhaseUnaware, "Onbewust", "", 1, "#9CA3AF", 0.0,
		[]byte(`[]`), []byte(`[]`), []byte(`[]`), now, now,
	}}

	phase, err := scanPhase(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(phase.Indicators) != 0 || len(phase.RecommendedAngles) != 0 || len(phase.Content) != 0 {
		t.Errorf("expected empty lists, got %+v", phase)
	}
}

func TestScanPhase_MalformedJSON(t *testing.T) {
	now := time.Now()
	row := &fakeRow{values: []any{
		1, "proj-1", domain.PhaseUnaware, "Onbewust", "", 1, "#9CA3AF", 0.0,
		[]byte(`{broken`), []byte(`[]`), []byte(`[]`), now, now,
	}}

	if _, err := scanPhase(row); err == nil {
		t.Error("expected error for malformed indicator json")
	}
}
