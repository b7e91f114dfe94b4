package classifier

import (
	"context"
	"fmt"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

const percentScale = 100.0

// UpdateDistribution recomputes each phase's percentage share of the
// batch and persists every phase. An empty batch resets all percentages
// to zero; the reset is still persisted. Idempotent for a fixed batch.
func (e *Engine) UpdateDistribution(ctx context.Context, cctx *ClassificationContext, results []domain.ClassificationResult) error {
	if !cctx.Initialized() {
		return domain.ErrNotInitialized
	}

	counts := make(map[domain.PhaseName]int, len(cctx.Phases))
	for _, r := range results {
		counts[r.Phase]++
	}

	total := len(results)
	for _, phase := range cctx.Phases {
		phase.Percentage = 0
		if total > 0 {
			phase.Percentage = float64(counts[phase.Name]) / float64(total) * percentScale
		}
	}

	for _, phase := range cctx.Phases {
		if err := e.store.SavePhase(ctx, phase); err != nil {
			return fmt.Errorf("save phase %s: %w", phase.Name, err)
		}
	}

	e.logger.Info("Phase distribution updated",
		"project_id", cctx.ProjectID,
		"batch_size", total,
	)

	if e.telemetry != nil {
		for _, phase := range cctx.Phases {
			e.telemetry.SetPhaseShare(string(phase.Name), phase.Percentage)
		}
	}

	return nil
}
