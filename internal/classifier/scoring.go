package classifier

import (
	"strings"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

// Context bonus constants.
const (
	// contextMatchBonus is added per matched product-context entry.
	contextMatchBonus = 5.0
	// unawareNoOverlapBonus rewards text with zero product keywords:
	// content that never mentions the product domain is the strongest
	// unaware signal.
	unawareNoOverlapBonus = 5.0
	// unawareLowOverlapBonus rewards text that barely touches the
	// product domain.
	unawareLowOverlapBonus = 3.0
	// unawareLowOverlapMax is the keyword match count up to which the
	// low-overlap bonus applies. Three or more matches earn nothing.
	unawareLowOverlapMax = 2
)

// contextBonus computes the phase-specific bonus from the caller's
// product context. A nil context disables all bonuses, including the
// unaware zero-overlap bonus.
func (e *Engine) contextBonus(phase domain.PhaseName, normText string, pctx *domain.ProductContext) float64 {
	if pctx == nil {
		return 0
	}

	switch phase {
	case domain.PhaseUnaware:
		switch matched := e.countContained(normText, pctx.Keywords); {
		case matched == 0:
			return unawareNoOverlapBonus
		case matched <= unawareLowOverlapMax:
			return unawareLowOverlapBonus
		default:
			return 0
		}
	case domain.PhaseProblemAware:
		return contextMatchBonus * float64(e.countContained(normText, pctx.PainPoints))
	case domain.PhaseSolutionAware:
		return contextMatchBonus * float64(e.countContained(normText, pctx.SolutionTypes))
	case domain.PhaseProductAware:
		return contextMatchBonus * float64(e.countContained(normText, pctx.ProductNames))
	case domain.PhaseMostAware:
		return contextMatchBonus * float64(e.countContained(normText, pctx.PurchaseTerms))
	}
	return 0
}

// countContained counts terms whose normalized form appears in the
// normalized text as a substring. Terms that normalize to the empty
// string never count.
func (e *Engine) countContained(normText string, terms []string) int {
	matched := 0
	for _, term := range terms {
		normTerm := e.normalizer.Normalize(term)
		if normTerm == "" {
			continue
		}
		if strings.Contains(normText, normTerm) {
			matched++
		}
	}
	return matched
}
