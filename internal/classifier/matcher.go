package classifier

import (
	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/normalize"
)

// indicatorRef ties a pattern index back to the phase and weight it
// contributes to.
type indicatorRef struct {
	phase  domain.PhaseName
	weight float64
}

// indicatorMatcher finds indicator patterns in normalized text in a
// single pass using Aho-Corasick. The automaton matches patterns as
// plain substrings, which is exactly the indicator matching policy:
// no token-boundary checks.
type indicatorMatcher struct {
	matcher  *ahocorasick.Matcher
	patterns []string
	refs     [][]indicatorRef // per pattern index
}

// newIndicatorMatcher builds the automaton over the normalized patterns
// of every indicator in every phase. Patterns that normalize to the
// empty string are skipped. The same normalized pattern may back
// indicators in several phases; all of them accumulate on a hit.
func newIndicatorMatcher(phases []*domain.Phase, normalizer *normalize.Normalizer) *indicatorMatcher {
	m := &indicatorMatcher{}
	index := make(map[string]int)

	for _, phase := range phases {
		for _, ind := range phase.Indicators {
			pattern := normalizer.Normalize(ind.Pattern)
			if pattern == "" {
				continue
			}
			i, ok := index[pattern]
			if !ok {
				i = len(m.patterns)
				index[pattern] = i
				m.patterns = append(m.patterns, pattern)
				m.refs = append(m.refs, nil)
			}
			m.refs[i] = append(m.refs[i], indicatorRef{phase: phase.Name, weight: ind.Weight})
		}
	}

	if len(m.patterns) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.patterns)
	}
	return m
}

// baseScores returns the per-phase sum of indicator weights whose
// pattern occurs in the normalized text. Each indicator counts at most
// once regardless of how often its pattern occurs.
func (m *indicatorMatcher) baseScores(normText string) map[domain.PhaseName]float64 {
	scores := make(map[domain.PhaseName]float64, domain.PhaseCount)
	if m.matcher == nil || normText == "" {
		return scores
	}

	for _, hit := range m.matcher.Match([]byte(normText)) {
		if hit >= len(m.refs) {
			continue
		}
		for _, ref := range m.refs[hit] {
			scores[ref.phase] += ref.weight
		}
	}
	return scores
}
