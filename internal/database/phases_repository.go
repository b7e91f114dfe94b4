package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/funnelscope/awareness-classifier/internal/domain"
)

// PhasesRepository handles database operations for awareness phases.
// Indicators, recommended angles and content are stored as JSONB.
type PhasesRepository struct {
	db *sqlx.DB
}

// NewPhasesRepository creates a new phases repository.
func NewPhasesRepository(db *sqlx.DB) *PhasesRepository {
	return &PhasesRepository{db: db}
}

// ListPhases returns all phases for a project ordered by phase order.
// Returns an empty slice when the project has no phases.
func (r *PhasesRepository) ListPhases(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	query := `
		SELECT id, project_id, name, display_name, description, phase_order, color,
		       percentage, indicators, recommended_angles, content, created_at, updated_at
		FROM awareness_phases
		WHERE project_id = $1
		ORDER BY phase_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var phases []*domain.Phase
	for rows.Next() {
		phase, scanErr := scanPhase(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan phase: %w", scanErr)
		}
		phases = append(phases, phase)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating phases: %w", err)
	}

	return phases, nil
}

// GetPhase retrieves one phase by project and name.
func (r *PhasesRepository) GetPhase(ctx context.Context, projectID string, name domain.PhaseName) (*domain.Phase, error) {
	query := `
		SELECT id, project_id, name, display_name, description, phase_order, color,
		       percentage, indicators, recommended_angles, content, created_at, updated_at
		FROM awareness_phases
		WHERE project_id = $1 AND name = $2
	`

	phase, err := scanPhase(r.db.QueryRowContext(ctx, query, projectID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound("phase", fmt.Sprintf("%s/%s", projectID, name))
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}

	return phase, nil
}

// InsertPhase inserts a new phase row.
func (r *PhasesRepository) InsertPhase(ctx context.Context, phase *domain.Phase) error {
	indicators, angles, content, err := marshalPhaseLists(phase)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO awareness_phases
			(project_id, name, display_name, description, phase_order, color,
			 percentage, indicators, recommended_angles, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(
		ctx,
		query,
		phase.ProjectID,
		phase.Name,
		phase.DisplayName,
		phase.Description,
		phase.Order,
		phase.Color,
		phase.Percentage,
		indicators,
		angles,
		content,
	).Scan(&phase.ID, &phase.CreatedAt, &phase.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert phase: %w", err)
	}

	return nil
}

// SavePhase updates an existing phase row.
func (r *PhasesRepository) SavePhase(ctx context.Context, phase *domain.Phase) error {
	indicators, angles, content, err := marshalPhaseLists(phase)
	if err != nil {
		return err
	}

	query := `
		UPDATE awareness_phases
		SET display_name = $1, description = $2, phase_order = $3, color = $4,
		    percentage = $5, indicators = $6, recommended_angles = $7, content = $8,
		    updated_at = NOW()
		WHERE project_id = $9 AND name = $10
		RETURNING updated_at
	`

	err = r.db.QueryRowContext(
		ctx,
		query,
		phase.DisplayName,
		phase.Description,
		phase.Order,
		phase.Color,
		phase.Percentage,
		indicators,
		angles,
		content,
		phase.ProjectID,
		phase.Name,
	).Scan(&phase.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFound("phase", fmt.Sprintf("%s/%s", phase.ProjectID, phase.Name))
		}
		return fmt.Errorf("failed to save phase: %w", err)
	}

	return nil
}

// DeletePhases removes all phases of a project. Deleting a project with
// no phases is not an error.
func (r *PhasesRepository) DeletePhases(ctx context.Context, projectID string) error {
	query := `DELETE FROM awareness_phases WHERE project_id = $1`

	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("failed to delete phases: %w", err)
	}

	return nil
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanPhase(row scannable) (*domain.Phase, error) {
	var phase domain.Phase
	var indicators, angles, content []byte

	err := row.Scan(
		&phase.ID,
		&phase.ProjectID,
		&phase.Name,
		&phase.DisplayName,
		&phase.Description,
		&phase.Order,
		&phase.Color,
		&phase.Percentage,
		&indicators,
		&angles,
		&content,
		&phase.CreatedAt,
		&phase.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(indicators, &phase.Indicators); err != nil {
		return nil, fmt.Errorf("unmarshal indicators: %w", err)
	}
	if err := json.Unmarshal(angles, &phase.RecommendedAngles); err != nil {
		return nil, fmt.Errorf("unmarshal recommended angles: %w", err)
	}
	if err := json.Unmarshal(content, &phase.Content); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}

	return &phase, nil
}

func marshalPhaseLists(phase *domain.Phase) (indicators, angles, content []byte, err error) {
	if indicators, err = json.Marshal(phase.Indicators); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal indicators: %w", err)
	}
	if angles, err = json.Marshal(phase.RecommendedAngles); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal recommended angles: %w", err)
	}
	if content, err = json.Marshal(phase.Content); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal content: %w", err)
	}
	return indicators, angles, content, nil
}
