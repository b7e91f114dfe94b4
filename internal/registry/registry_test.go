//nolint:testpackage // Testing internal registry requires same package access
package registry

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...any)  {}
func (nopLogger) Error(msg string, keysAndValues ...any) {}
func (nopLogger) Warn(msg string, keysAndValues ...any)  {}
func (nopLogger) Debug(msg string, keysAndValues ...any) {}

type phaseKey struct {
	projectID string
	name      domain.PhaseName
}

// fakeStore is an in-memory Store.
type fakeStore struct {
	phases map[phaseKey]*domain.Phase
	saves  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{phases: make(map[phaseKey]*domain.Phase)}
}

func (s *fakeStore) ListPhases(_ context.Context, projectID string) ([]*domain.Phase, error) {
	var phases []*domain.Phase
	for key, phase := range s.phases {
		if key.projectID == projectID {
			phases = append(phases, phase)
		}
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i].Order < phases[j].Order })
	return phases, nil
}

func (s *fakeStore) GetPhase(_ context.Context, projectID string, name domain.PhaseName) (*domain.Phase, error) {
	phase, ok := s.phases[phaseKey{projectID, name}]
	if !ok {
		return nil, domain.NewNotFound("phase", projectID+"/"+string(name))
	}
	return phase, nil
}

func (s *fakeStore) InsertPhase(_ context.Context, phase *domain.Phase) error {
	s.phases[phaseKey{phase.ProjectID, phase.Name}] = phase
	return nil
}

func (s *fakeStore) SavePhase(_ context.Context, phase *domain.Phase) error {
	key := phaseKey{phase.ProjectID, phase.Name}
	if _, ok := s.phases[key]; !ok {
		return domain.NewNotFound("phase", phase.ProjectID+"/"+string(phase.Name))
	}
	s.phases[key] = phase
	s.saves++
	return nil
}

func (s *fakeStore) DeletePhases(_ context.Context, projectID string) error {
	for key := range s.phases {
		if key.projectID == projectID {
			delete(s.phases, key)
		}
	}
	return nil
}

func TestRegistry_Load_InitializesDefaults(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})

	phases, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, phases, domain.PhaseCount)

	for i, phase := range phases {
		assert.Equal(t, i+1, phase.Order)
		assert.Equal(t, "proj-1", phase.ProjectID)
	}

	// A second load returns the stored phases instead of re-initializing.
	again, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, again, domain.PhaseCount)
}

func TestRegistry_ResetToDefaults_DiscardsCustomization(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})

	_, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	custom, err := reg.AddIndicator(context.Background(), "proj-1", domain.PhaseUnaware,
		domain.Indicator{Pattern: "maatwerk", Weight: 2})
	require.NoError(t, err)
	customCount := len(custom.Indicators)

	phases, err := reg.ResetToDefaults(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, phases, domain.PhaseCount)

	unaware, err := store.GetPhase(context.Background(), "proj-1", domain.PhaseUnaware)
	require.NoError(t, err)
	assert.Less(t, len(unaware.Indicators), customCount, "custom indicator should be gone")
	for _, ind := range unaware.Indicators {
		assert.NotEqual(t, "maatwerk", ind.Pattern)
	}
}

func TestRegistry_AddIndicator_WeightValidation(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})
	_, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	_, err = reg.AddIndicator(context.Background(), "proj-1", domain.PhaseUnaware,
		domain.Indicator{Pattern: "x", Weight: -1})
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	_, err = reg.AddIndicator(context.Background(), "proj-1", domain.PhaseUnaware,
		domain.Indicator{Pattern: "x", Weight: 11})
	assert.ErrorIs(t, err, ErrWeightOutOfRange)

	phase, err := reg.AddIndicator(context.Background(), "proj-1", domain.PhaseUnaware,
		domain.Indicator{Pattern: "zero-weight"})
	require.NoError(t, err)
	added := phase.Indicators[len(phase.Indicators)-1]
	assert.Equal(t, defaultIndicatorWeight, added.Weight, "zero weight defaults to 1")
	assert.NotEmpty(t, added.ID, "registry assigns the id")
}

func TestRegistry_AddIndicator_UnknownPhase(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})
	_, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	_, err = reg.AddIndicator(context.Background(), "proj-1", "weirdPhase",
		domain.Indicator{Pattern: "x", Weight: 1})
	assert.True(t, domain.IsNotFound(err), "expected not-found, got %v", err)
}

func TestRegistry_RemoveIndicator(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})
	_, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	phase, err := reg.AddIndicator(context.Background(), "proj-1", domain.PhaseProblemAware,
		domain.Indicator{Pattern: "tijdelijk", Weight: 2})
	require.NoError(t, err)
	added := phase.Indicators[len(phase.Indicators)-1]
	countBefore := len(phase.Indicators)

	phase, err = reg.RemoveIndicator(context.Background(), "proj-1", domain.PhaseProblemAware, added.ID)
	require.NoError(t, err)
	assert.Len(t, phase.Indicators, countBefore-1)
	for _, ind := range phase.Indicators {
		assert.NotEqual(t, added.ID, ind.ID)
	}

	// Removing an unknown id is a no-op, not an error.
	savesBefore := store.saves
	phase, err = reg.RemoveIndicator(context.Background(), "proj-1", domain.PhaseProblemAware, "no-such-id")
	require.NoError(t, err)
	assert.Len(t, phase.Indicators, countBefore-1)
	assert.Greater(t, store.saves, savesBefore, "no-op removal still persists")
}

func TestRegistry_AddAndRemoveAngle(t *testing.T) {
	store := newFakeStore()
	reg := New(store, nopLogger{})
	_, err := reg.Load(context.Background(), "proj-1")
	require.NoError(t, err)

	phase, err := reg.AddAngle(context.Background(), "proj-1", domain.PhaseMostAware,
		domain.MarketingAngle{Title: "Laatste kans", Examples: []string{"Countdown campagne"}})
	require.NoError(t, err)
	added := phase.RecommendedAngles[len(phase.RecommendedAngles)-1]
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Laatste kans", added.Title)

	phase, err = reg.RemoveAngle(context.Background(), "proj-1", domain.PhaseMostAware, added.ID)
	require.NoError(t, err)
	for _, angle := range phase.RecommendedAngles {
		assert.NotEqual(t, added.ID, angle.ID)
	}
}

func TestRegistry_MutationsOnMissingProject(t *testing.T) {
	reg := New(newFakeStore(), nopLogger{})

	_, err := reg.RemoveAngle(context.Background(), "ghost", domain.PhaseUnaware, "id")
	assert.True(t, domain.IsNotFound(err), "expected not-found, got %v", err)

	var nf *domain.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
