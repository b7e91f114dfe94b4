// Package registry manages the per-project phase definitions: canonical
// defaults, load-or-initialize, and indicator/angle mutations.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/funnelscope/awareness-classifier/internal/classifier"
	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/logging"
)

// Indicator weight bounds.
const (
	defaultIndicatorWeight = 1.0
	maxIndicatorWeight     = 10.0
)

// ErrWeightOutOfRange rejects indicator weights outside 0-10.
var ErrWeightOutOfRange = errors.New("indicator weight out of range 0-10")

// Store is the phase persistence interface the registry operates on.
// Implemented by the database layer; tests use an in-memory store.
type Store interface {
	// ListPhases returns a project's phases ordered by phase order.
	// An empty slice (not an error) when the project has no phases.
	ListPhases(ctx context.Context, projectID string) ([]*domain.Phase, error)
	// GetPhase returns one phase; a *domain.NotFoundError when missing.
	GetPhase(ctx context.Context, projectID string, name domain.PhaseName) (*domain.Phase, error)
	// InsertPhase inserts a new phase row.
	InsertPhase(ctx context.Context, phase *domain.Phase) error
	// SavePhase updates an existing phase row.
	SavePhase(ctx context.Context, phase *domain.Phase) error
	// DeletePhases removes all phases of a project.
	DeletePhases(ctx context.Context, projectID string) error
}

// Registry owns phase definition lifecycle for all projects.
type Registry struct {
	store  Store
	logger logging.Logger
}

// New creates a phase registry on top of a store.
func New(store Store, logger logging.Logger) *Registry {
	return &Registry{store: store, logger: logger}
}

// ResetToDefaults destructively re-initializes a project's phases:
// existing phases (including any customization) are deleted and the
// five canonical defaults inserted. Returns the new phases ordered by
// phase order.
func (r *Registry) ResetToDefaults(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	if err := r.store.DeletePhases(ctx, projectID); err != nil {
		return nil, fmt.Errorf("delete phases for project %s: %w", projectID, err)
	}

	phases := classifier.DefaultPhases(projectID)
	for _, phase := range phases {
		if err := r.store.InsertPhase(ctx, phase); err != nil {
			return nil, fmt.Errorf("insert default phase %s: %w", phase.Name, err)
		}
	}

	r.logger.Info("Project phases reset to defaults",
		"project_id", projectID,
		"phases", len(phases),
	)

	return phases, nil
}

// Load returns a project's phases ordered by phase order, initializing
// the canonical defaults when the project has none yet.
func (r *Registry) Load(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	phases, err := r.store.ListPhases(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load phases for project %s: %w", projectID, err)
	}
	if len(phases) == 0 {
		return r.ResetToDefaults(ctx, projectID)
	}
	return phases, nil
}

// AddIndicator appends an indicator to a phase and persists it. The
// indicator id is assigned here; a zero weight defaults to 1.
func (r *Registry) AddIndicator(ctx context.Context, projectID string, phaseName domain.PhaseName, indicator domain.Indicator) (*domain.Phase, error) {
	if indicator.Weight < 0 || indicator.Weight > maxIndicatorWeight {
		return nil, fmt.Errorf("%w: %v", ErrWeightOutOfRange, indicator.Weight)
	}
	if indicator.Weight == 0 {
		indicator.Weight = defaultIndicatorWeight
	}
	indicator.ID = uuid.NewString()

	phase, err := r.store.GetPhase(ctx, projectID, phaseName)
	if err != nil {
		return nil, err
	}

	phase.Indicators = append(phase.Indicators, indicator)
	if err := r.store.SavePhase(ctx, phase); err != nil {
		return nil, fmt.Errorf("save phase %s: %w", phaseName, err)
	}

	r.logger.Info("Indicator added",
		"project_id", projectID,
		"phase", string(phaseName),
		"pattern", indicator.Pattern,
	)

	return phase, nil
}

// RemoveIndicator removes an indicator by id and persists the phase.
// An absent id is a no-op, not an error.
func (r *Registry) RemoveIndicator(ctx context.Context, projectID string, phaseName domain.PhaseName, indicatorID string) (*domain.Phase, error) {
	phase, err := r.store.GetPhase(ctx, projectID, phaseName)
	if err != nil {
		return nil, err
	}

	kept := phase.Indicators[:0]
	for _, ind := range phase.Indicators {
		if ind.ID != indicatorID {
			kept = append(kept, ind)
		}
	}
	phase.Indicators = kept

	if err := r.store.SavePhase(ctx, phase); err != nil {
		return nil, fmt.Errorf("save phase %s: %w", phaseName, err)
	}
	return phase, nil
}

// AddAngle appends a recommended marketing angle to a phase and
// persists it. The angle id is assigned here.
func (r *Registry) AddAngle(ctx context.Context, projectID string, phaseName domain.PhaseName, angle domain.MarketingAngle) (*domain.Phase, error) {
	angle.ID = uuid.NewString()

	phase, err := r.store.GetPhase(ctx, projectID, phaseName)
	if err != nil {
		return nil, err
	}

	phase.RecommendedAngles = append(phase.RecommendedAngles, angle)
	if err := r.store.SavePhase(ctx, phase); err != nil {
		return nil, fmt.Errorf("save phase %s: %w", phaseName, err)
	}

	r.logger.Info("Marketing angle added",
		"project_id", projectID,
		"phase", string(phaseName),
		"title", angle.Title,
	)

	return phase, nil
}

// RemoveAngle removes a recommended angle by id and persists the phase.
// An absent id is a no-op, not an error.
func (r *Registry) RemoveAngle(ctx context.Context, projectID string, phaseName domain.PhaseName, angleID string) (*domain.Phase, error) {
	phase, err := r.store.GetPhase(ctx, projectID, phaseName)
	if err != nil {
		return nil, err
	}

	kept := phase.RecommendedAngles[:0]
	for _, angle := range phase.RecommendedAngles {
		if angle.ID != angleID {
			kept = append(kept, angle)
		}
	}
	phase.RecommendedAngles = kept

	if err := r.store.SavePhase(ctx, phase); err != nil {
		return nil, fmt.Errorf("save phase %s: %w", phaseName, err)
	}
	return phase, nil
}
