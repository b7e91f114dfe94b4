//nolint:testpackage // Testing internal engine state requires same package access
package classifier

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/normalize"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, keysAndValues ...any) {}
func (m *mockLogger) Info(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warn(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Error(msg string, keysAndValues ...any) {}

// memStore records saved phases in call order.
type memStore struct {
	saved []domain.PhaseName
	err   error
}

func (s *memStore) SavePhase(_ context.Context, phase *domain.Phase) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, phase.Name)
	return nil
}

func (s *memStore) savedCount(name domain.PhaseName) int {
	n := 0
	for _, saved := range s.saved {
		if saved == name {
			n++
		}
	}
	return n
}

func newTestEngine(store PhaseStore) *Engine {
	return NewEngine(normalize.NewDefault(), store, &mockLogger{}, nil)
}

// testPhases builds a five-phase set with one single-token indicator
// per phase so scores are easy to predict.
func testPhases(projectID string) []*domain.Phase {
	return []*domain.Phase{
		{ProjectID: projectID, Name: domain.PhaseUnaware, DisplayName: "Unaware", Order: 1,
			Indicators: []domain.Indicator{{ID: "u1", Pattern: "foo", Weight: 2}}},
		{ProjectID: projectID, Name: domain.PhaseProblemAware, DisplayName: "Problem Aware", Order: 2,
			Indicators: []domain.Indicator{{ID: "p1", Pattern: "bar", Weight: 3}}},
		{ProjectID: projectID, Name: domain.PhaseSolutionAware, DisplayName: "Solution Aware", Order: 3,
			Indicators: []domain.Indicator{{ID: "s1", Pattern: "baz", Weight: 4}}},
		{ProjectID: projectID, Name: domain.PhaseProductAware, DisplayName: "Product Aware", Order: 4,
			Indicators: []domain.Indicator{{ID: "pr1", Pattern: "qux", Weight: 1}}},
		{ProjectID: projectID, Name: domain.PhaseMostAware, DisplayName: "Most Aware", Order: 5,
			Indicators: []domain.Indicator{{ID: "m1", Pattern: "checkout", Weight: 5}}},
	}
}

func TestEngine_Classify_WinnerAndConfidence(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", testPhases("proj-1"))

	item := domain.ContentInput{ID: "c1", Text: "foo bar bar"}
	result, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Phase != domain.PhaseProblemAware {
		t.Errorf("expected problemAware, got %s", result.Phase)
	}

	// bar counts once regardless of repetition: unaware 2, problem 3.
	if result.Scores[domain.PhaseUnaware] != 2 {
		t.Errorf("expected unaware score 2, got %f", result.Scores[domain.PhaseUnaware])
	}
	if result.Scores[domain.PhaseProblemAware] != 3 {
		t.Errorf("expected problemAware score 3, got %f", result.Scores[domain.PhaseProblemAware])
	}

	want := 3.0 / 5.0
	if math.Abs(result.Confidence-want) > 1e-9 {
		t.Errorf("expected confidence %f, got %f", want, result.Confidence)
	}
}

func TestEngine_Classify_NoSignalDefaultsToUnaware(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", testPhases("proj-1"))

	item := domain.ContentInput{ID: "c1", Text: "volstrekt neutrale tekst"}
	result, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Phase != domain.PhaseUnaware {
		t.Errorf("expected unaware for zero-signal content, got %s", result.Phase)
	}
	if result.Confidence != 0 {
		t.Errorf("expected confidence 0, got %f", result.Confidence)
	}
}

func TestEngine_Classify_TieResolvesToLowestOrder(t *testing.T) {
	engine := newTestEngine(&memStore{})
	phases := testPhases("proj-1")
	phases[1].Indicators[0].Weight = 2 // same as unaware's foo
	cctx := engine.NewContext("proj-1", phases)

	item := domain.ContentInput{ID: "c1", Text: "foo bar"}
	for i := 0; i < 10; i++ {
		result, err := engine.Classify(context.Background(), cctx, item, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Phase != domain.PhaseUnaware {
			t.Fatalf("expected tie to resolve to unaware, got %s", result.Phase)
		}
	}
}

func TestEngine_Classify_LegacyContentField(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", testPhases("proj-1"))

	item := domain.ContentInput{ID: "c1", Content: "checkout nu"}
	result, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Phase != domain.PhaseMostAware {
		t.Errorf("expected mostAware via legacy content field, got %s", result.Phase)
	}
}

func TestEngine_Classify_NotInitialized(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", nil)

	_, err := engine.Classify(context.Background(), cctx, domain.ContentInput{Text: "foo"}, nil)
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	_, err = engine.ClassifyAll(context.Background(), cctx, []domain.ContentInput{{Text: "foo"}}, nil)
	if !errors.Is(err, domain.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized from ClassifyAll, got %v", err)
	}
}

func TestEngine_Classify_DutchDefaults(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", DefaultPhases("proj-1"))

	item := domain.ContentInput{ID: "c1", Text: "Hoe kan ik dit probleem oplossen?"}
	result, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Phase != domain.PhaseProblemAware {
		t.Errorf("expected problemAware, got %s (scores %v)", result.Phase, result.Scores)
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("confidence out of range: %f", result.Confidence)
	}
}

func TestEngine_Classify_StemmedIndicatorMatch(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", DefaultPhases("proj-1"))

	// "problemen" stems to the same form as the "probleem" indicator.
	item := domain.ContentInput{ID: "c1", Text: "wij hebben last van grote problemen"}
	result, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Phase != domain.PhaseProblemAware {
		t.Errorf("expected problemAware, got %s (scores %v)", result.Phase, result.Scores)
	}
}

func TestEngine_ClassifyAll_PreservesOrder(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", testPhases("proj-1"))

	items := []domain.ContentInput{
		{ID: "a", Text: "checkout"},
		{ID: "b", Text: "foo"},
		{ID: "c", Text: "baz"},
	}

	results, err := engine.ClassifyAll(context.Background(), cctx, items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}

	wantPhases := []domain.PhaseName{domain.PhaseMostAware, domain.PhaseUnaware, domain.PhaseSolutionAware}
	for i, result := range results {
		if result.Item.ID != items[i].ID {
			t.Errorf("result %d: expected item %s, got %s", i, items[i].ID, result.Item.ID)
		}
		if result.Phase != wantPhases[i] {
			t.Errorf("result %d: expected %s, got %s", i, wantPhases[i], result.Phase)
		}
	}
}

func TestEngine_Classify_Deterministic(t *testing.T) {
	engine := newTestEngine(&memStore{})
	cctx := engine.NewContext("proj-1", DefaultPhases("proj-1"))

	item := domain.ContentInput{ID: "c1", Text: "waar kan ik dit kopen met korting"}
	first, err := engine.Classify(context.Background(), cctx, item, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := engine.Classify(context.Background(), cctx, item, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Phase != first.Phase || again.Confidence != first.Confidence {
			t.Fatalf("classification not deterministic: %s/%f vs %s/%f",
				first.Phase, first.Confidence, again.Phase, again.Confidence)
		}
	}
}
