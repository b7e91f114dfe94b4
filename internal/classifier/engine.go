// Package classifier implements the awareness-phase classification
// engine: weighted indicator scoring, confidence normalization, phase
// distribution aggregation, bounded content buckets, and marketing
// transition recommendations.
package classifier

import (
	"context"
	"time"

	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/normalize"
	"github.com/funnelscope/awareness-classifier/internal/telemetry"
)

// PhaseStore persists phase records. Implemented by the database layer;
// tests use an in-memory store.
type PhaseStore interface {
	SavePhase(ctx context.Context, phase *domain.Phase) error
}

// Engine runs classification against an explicit ClassificationContext.
// The engine itself is stateless across projects and safe for
// concurrent use with distinct contexts.
type Engine struct {
	normalizer *normalize.Normalizer
	store      PhaseStore
	logger     Logger
	telemetry  *telemetry.Provider
}

// NewEngine creates a classification engine. store may be nil for
// pure classification use; telemetry may be nil to disable metrics.
func NewEngine(normalizer *normalize.Normalizer, store PhaseStore, logger Logger, tp *telemetry.Provider) *Engine {
	return &Engine{
		normalizer: normalizer,
		store:      store,
		logger:     logger,
		telemetry:  tp,
	}
}

// NewContext builds a classification context for the given project
// using the engine's normalizer.
func (e *Engine) NewContext(projectID string, phases []*domain.Phase) *ClassificationContext {
	return NewContext(projectID, phases, e.normalizer)
}

// Classify scores one content item against every phase and picks the
// highest-scoring one. Ties resolve to the lowest-order phase, so an
// item with no signal at all classifies as unaware with confidence 0.
// Confidence is the winning score's share of the total score.
func (e *Engine) Classify(ctx context.Context, cctx *ClassificationContext, item domain.ContentInput, pctx *domain.ProductContext) (*domain.ClassificationResult, error) {
	if !cctx.Initialized() {
		return nil, domain.ErrNotInitialized
	}

	start := time.Now()
	normText := e.normalizer.Normalize(item.Body())
	base := cctx.matcher.baseScores(normText)

	scores := make(map[domain.PhaseName]float64, len(cctx.Phases))
	var best *domain.Phase
	var bestScore, sum float64

	// Phases iterate in ascending order, so a strict comparison makes
	// the lower-order phase win ties.
	for _, phase := range cctx.Phases {
		score := base[phase.Name] + e.contextBonus(phase.Name, normText, pctx)
		scores[phase.Name] = score
		sum += score
		if best == nil || score > bestScore {
			best = phase
			bestScore = score
		}
	}

	confidence := 0.0
	if sum > 0 {
		confidence = bestScore / sum
	}

	result := &domain.ClassificationResult{
		Item:       item,
		Phase:      best.Name,
		Confidence: confidence,
		Scores:     scores,
	}

	if e.telemetry != nil {
		e.telemetry.RecordClassification(ctx, string(best.Name), confidence, time.Since(start))
	}

	e.logger.Debug("Content classified",
		"project_id", cctx.ProjectID,
		"phase", string(best.Name),
		"confidence", confidence,
		"score", bestScore,
	)

	return result, nil
}

// ClassifyAll classifies items sequentially and independently. Result
// order matches input order.
func (e *Engine) ClassifyAll(ctx context.Context, cctx *ClassificationContext, items []domain.ContentInput, pctx *domain.ProductContext) ([]domain.ClassificationResult, error) {
	if !cctx.Initialized() {
		return nil, domain.ErrNotInitialized
	}

	results := make([]domain.ClassificationResult, len(items))
	for i := range items {
		result, err := e.Classify(ctx, cctx, items[i], pctx)
		if err != nil {
			return nil, err
		}
		results[i] = *result
	}

	e.logger.Info("Batch classified",
		"project_id", cctx.ProjectID,
		"items", len(items),
	)

	return results, nil
}
