// Package storage adapts the database repositories to the interfaces
// the processor consumes.
package storage

import (
	"context"

	"github.com/funnelscope/awareness-classifier/internal/database"
	"github.com/funnelscope/awareness-classifier/internal/domain"
	"github.com/funnelscope/awareness-classifier/internal/processor"
)

// ContentSourceAdapter exposes the pending-content repository as a
// processor.ContentSource.
type ContentSourceAdapter struct {
	repo *database.ContentRepository
}

// NewContentSourceAdapter creates a new adapter.
func NewContentSourceAdapter(repo *database.ContentRepository) *ContentSourceAdapter {
	return &ContentSourceAdapter{repo: repo}
}

// QueryPending returns up to limit unclassified items, oldest first.
func (a *ContentSourceAdapter) QueryPending(ctx context.Context, limit int) ([]*processor.PendingItem, error) {
	rows, err := a.repo.QueryPending(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*processor.PendingItem, len(rows))
	for i, row := range rows {
		items[i] = &processor.PendingItem{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			Input: domain.ContentInput{
				ID:        row.SourceID,
				Text:      row.Text,
				Platform:  row.Platform,
				URL:       row.URL,
				Author:    row.Author,
				Timestamp: row.PostedAt,
			},
		}
	}
	return items, nil
}

// MarkClassified flags the given queue ids as classified.
func (a *ContentSourceAdapter) MarkClassified(ctx context.Context, ids []int64) error {
	return a.repo.MarkClassified(ctx, ids)
}
