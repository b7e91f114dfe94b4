package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

// AppendContent buckets classified items by phase, prepends them to the
// phase's existing content and truncates to MaxContentItems. Batch items
// are always considered more recent than existing content regardless of
// their own timestamps. Only phases that received new items are persisted.
func (e *Engine) AppendContent(ctx context.Context, cctx *ClassificationContext, results []domain.ClassificationResult) error {
	if !cctx.Initialized() {
		return domain.ErrNotInitialized
	}

	buckets := make(map[domain.PhaseName][]domain.ContentItem)
	for i := range results {
		r := &results[i]
		buckets[r.Phase] = append(buckets[r.Phase], buildContentItem(r))
	}

	for _, phase := range cctx.Phases {
		fresh, ok := buckets[phase.Name]
		if !ok {
			continue
		}

		merged := make([]domain.ContentItem, 0, len(fresh)+len(phase.Content))
		merged = append(merged, fresh...)
		merged = append(merged, phase.Content...)
		if len(merged) > domain.MaxContentItems {
			merged = merged[:domain.MaxContentItems]
		}
		phase.Content = merged

		if err := e.store.SavePhase(ctx, phase); err != nil {
			return fmt.Errorf("save phase %s: %w", phase.Name, err)
		}

		e.logger.Debug("Phase content appended",
			"project_id", cctx.ProjectID,
			"phase", string(phase.Name),
			"new_items", len(fresh),
			"total_items", len(phase.Content),
		)
	}

	return nil
}

// buildContentItem converts a classification result into the stored
// content shape. Missing source ids get a generated identifier; missing
// timestamps default to now.
func buildContentItem(r *domain.ClassificationResult) domain.ContentItem {
	sourceID := r.Item.ID
	if sourceID == "" {
		sourceID = uuid.NewString()
	}

	timestamp := r.Item.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return domain.ContentItem{
		SourceID:   sourceID,
		Text:       r.Item.Body(),
		Platform:   domain.ParsePlatform(r.Item.Platform),
		URL:        r.Item.URL,
		Author:     r.Item.Author,
		Timestamp:  timestamp,
		Confidence: r.Confidence,
	}
}
