package classifier

import (
	"sort"

	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/normalize"
)

// ClassificationContext carries the loaded phases of one project plus
// the pattern automaton built from their indicators. It replaces hidden
// per-session state: every engine call takes the context explicitly, so
// concurrent use across projects is safe by construction. The phases
// themselves are mutated by UpdateDistribution/AppendContent, so a
// single context must not be shared by concurrent writers.
type ClassificationContext struct {
	ProjectID string
	Phases    []*domain.Phase // sorted ascending by Order

	matcher *indicatorMatcher
}

// NewContext builds a classification context from loaded phases.
// Phases are sorted by order; the indicator automaton is built once.
func NewContext(projectID string, phases []*domain.Phase, normalizer *normalize.Normalizer) *ClassificationContext {
	sorted := make([]*domain.Phase, len(phases))
	copy(sorted, phases)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	return &ClassificationContext{
		ProjectID: projectID,
		Phases:    sorted,
		matcher:   newIndicatorMatcher(sorted, normalizer),
	}
}

// Initialized reports whether the context holds any phases.
func (c *ClassificationContext) Initialized() bool {
	return c != nil && len(c.Phases) > 0
}

// Phase returns the phase with the given name, or nil.
func (c *ClassificationContext) Phase(name domain.PhaseName) *domain.Phase {
	for _, p := range c.Phases {
		if p.Name == name {
			return p
		}
	}
	return nil
}
