// Package processor runs the analysis pipeline: bulk classification,
// distribution aggregation, content appending and recommendation, either
// on demand or driven by the background poller.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/funnelscope/awareness-classifier/internal/classifier"
	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/telemetry"
)

// Logger defines the logging interface.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// PhaseLoader loads (or lazily initializes) a project's phases.
// Implemented by the registry.
type PhaseLoader interface {
	Load(ctx context.Context, projectID string) ([]*domain.Phase, error)
}

// AnalysisReport is the outcome of one full pipeline run.
type AnalysisReport struct {
	ProjectID      string                        `json:"project_id"`
	Results        []domain.ClassificationResult `json:"results"`
	Distribution   map[domain.PhaseName]float64  `json:"distribution"`
	Recommendation *domain.Recommendation        `json:"recommendation"`
	DurationMs     int64                         `json:"duration_ms"`
}

// Analyzer runs the full analysis pipeline for one project batch.
type Analyzer struct {
	engine    *classifier.Engine
	phases    PhaseLoader
	logger    Logger
	telemetry *telemetry.Provider
}

// NewAnalyzer creates an analyzer. telemetry may be nil.
func NewAnalyzer(engine *classifier.Engine, phases PhaseLoader, logger Logger, tp *telemetry.Provider) *Analyzer {
	return &Analyzer{
		engine:    engine,
		phases:    phases,
		logger:    logger,
		telemetry: tp,
	}
}

// AnalyzeBatch classifies a batch, updates the phase distribution,
// appends the items to their phases' content buckets, and derives the
// current recommendation.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, projectID string, items []domain.ContentInput, pctx *domain.ProductContext) (*AnalysisReport, error) {
	start := time.Now()

	phases, err := a.phases.Load(ctx, projectID)
	if err != nil {
		a.recordBatch(len(items), true)
		return nil, fmt.Errorf("load phases: %w", err)
	}

	cctx := a.engine.NewContext(projectID, phases)

	results, err := a.engine.ClassifyAll(ctx, cctx, items, pctx)
	if err != nil {
		a.recordBatch(len(items), true)
		return nil, fmt.Errorf("classify batch: %w", err)
	}

	if err := a.engine.UpdateDistribution(ctx, cctx, results); err != nil {
		a.recordBatch(len(items), true)
		return nil, fmt.Errorf("update distribution: %w", err)
	}

	if err := a.engine.AppendContent(ctx, cctx, results); err != nil {
		a.recordBatch(len(items), true)
		return nil, fmt.Errorf("append content: %w", err)
	}

	recommendation, err := a.engine.Recommend(cctx)
	if err != nil {
		a.recordBatch(len(items), true)
		return nil, fmt.Errorf("derive recommendation: %w", err)
	}

	distribution := make(map[domain.PhaseName]float64, len(cctx.Phases))
	for _, phase := range cctx.Phases {
		distribution[phase.Name] = phase.Percentage
	}

	a.recordBatch(len(items), false)
	a.logger.Info("Analysis batch complete",
		"project_id", projectID,
		"items", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &AnalysisReport{
		ProjectID:      projectID,
		Results:        results,
		Distribution:   distribution,
		Recommendation: recommendation,
		DurationMs:     time.Since(start).Milliseconds(),
	}, nil
}

func (a *Analyzer) recordBatch(size int, failed bool) {
	if a.telemetry != nil {
		a.telemetry.RecordBatch(size, failed)
	}
}
