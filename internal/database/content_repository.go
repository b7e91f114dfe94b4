package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PendingContent is a raw content item queued for classification.
type PendingContent struct {
	ID        int64     `db:"id"`
	ProjectID string    `db:"project_id"`
	SourceID  string    `db:"source_id"`
	Text      string    `db:"text"`
	Platform  string    `db:"platform"`
	URL       string    `db:"url"`
	Author    string    `db:"author"`
	PostedAt  time.Time `db:"posted_at"`
	CreatedAt time.Time `db:"created_at"`
}

// ContentRepository reads the pending-content inbox filled by upstream
// collectors and marks items once they are classified.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// QueryPending returns up to limit unclassified items, oldest first.
func (r *ContentRepository) QueryPending(ctx context.Context, limit int) ([]*PendingContent, error) {
	query := `
		SELECT id, project_id, source_id, text, platform, url, author, posted_at, created_at
		FROM pending_content
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1
	`

	var items []*PendingContent
	if err := r.db.SelectContext(ctx, &items, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query pending content: %w", err)
	}

	return items, nil
}

// MarkClassified flags the given items as classified.
func (r *ContentRepository) MarkClassified(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE pending_content
		SET status = 'classified', classified_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to mark content classified: %w", err)
	}

	return nil
}
