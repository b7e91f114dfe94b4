package classifier

import (
	"fmt"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

// Recommend derives a marketing transition focus from the current phase
// distribution. The dominant phase is the one with the highest
// percentage; the secondary phase is the highest among the rest. When
// the secondary phase sits later in the funnel the recommendation is a
// progression (move the audience forward); otherwise it is an expansion
// (reach a new audience earlier in the funnel).
func (e *Engine) Recommend(cctx *ClassificationContext) (*domain.Recommendation, error) {
	if !cctx.Initialized() {
		return nil, domain.ErrNotInitialized
	}

	dominant := maxByPercentage(cctx.Phases, nil)
	secondary := maxByPercentage(cctx.Phases, dominant)

	rec := &domain.Recommendation{
		DominantPhase: summarize(dominant),
	}

	if secondary == nil {
		// Cannot happen with the fixed five-phase invariant, but a
		// degenerate phase list still yields a usable answer.
		rec.TransitionFocus = deepeningFocus(dominant)
		return rec, nil
	}

	sec := summarize(secondary)
	rec.SecondaryPhase = &sec

	if secondary.Order > dominant.Order {
		rec.TransitionFocus = progressionFocus(dominant, secondary)
	} else {
		rec.TransitionFocus = expansionFocus(dominant, secondary)
	}

	return rec, nil
}

// maxByPercentage returns the phase with the highest percentage,
// skipping exclude. Iteration follows phase order, so ties resolve to
// the earlier phase.
func maxByPercentage(phases []*domain.Phase, exclude *domain.Phase) *domain.Phase {
	var best *domain.Phase
	for _, p := range phases {
		if p == exclude {
			continue
		}
		if best == nil || p.Percentage > best.Percentage {
			best = p
		}
	}
	return best
}

func summarize(p *domain.Phase) domain.PhaseSummary {
	return domain.PhaseSummary{
		Name:              p.Name,
		DisplayName:       p.DisplayName,
		Percentage:        p.Percentage,
		RecommendedAngles: p.RecommendedAngles,
	}
}

func progressionFocus(dominant, secondary *domain.Phase) domain.TransitionFocus {
	return domain.TransitionFocus{
		Type: domain.TransitionProgression,
		Description: fmt.Sprintf(
			"Your audience is moving from %s to %s. Focus your marketing on guiding this transition.",
			dominant.DisplayName, secondary.DisplayName,
		),
		Recommendations: []string{
			fmt.Sprintf("Create content that bridges %s and %s", dominant.DisplayName, secondary.DisplayName),
			fmt.Sprintf("Address the barriers that keep your audience from reaching %s", secondary.DisplayName),
			fmt.Sprintf("Use testimonials from customers who moved from %s to %s", dominant.DisplayName, secondary.DisplayName),
		},
	}
}

func expansionFocus(dominant, secondary *domain.Phase) domain.TransitionFocus {
	return domain.TransitionFocus{
		Type: domain.TransitionExpansion,
		Description: fmt.Sprintf(
			"Beyond your core %s audience there is an opportunity to reach a new audience in %s.",
			dominant.DisplayName, secondary.DisplayName,
		),
		Recommendations: []string{
			fmt.Sprintf("Develop content tailored to the %s phase", secondary.DisplayName),
			fmt.Sprintf("Diversify your channels to reach the %s audience", secondary.DisplayName),
			fmt.Sprintf("Adapt your messaging to speak to %s", secondary.DisplayName),
		},
	}
}

func deepeningFocus(dominant *domain.Phase) domain.TransitionFocus {
	return domain.TransitionFocus{
		Type: domain.TransitionExpansion,
		Description: fmt.Sprintf(
			"Your audience is concentrated in %s. Deepen your reach within this phase.",
			dominant.DisplayName,
		),
		Recommendations: []string{
			fmt.Sprintf("Develop more content tailored to the %s phase", dominant.DisplayName),
			fmt.Sprintf("Diversify your channels to reach more of the %s audience", dominant.DisplayName),
			fmt.Sprintf("Adapt your messaging to resonate within %s", dominant.DisplayName),
		},
	}
}
