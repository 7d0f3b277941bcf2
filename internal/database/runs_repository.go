package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// AnalysisRun is one persisted pipeline run.
type AnalysisRun struct {
	ID           string    `db:"id"            json:"id"`
	OfferName    string    `db:"offer_name"    json:"offer_name"`
	RecordCount  int       `db:"record_count"  json:"record_count"`
	SkippedCount int       `db:"skipped_count" json:"skipped_count"`
	SampleSize   int       `db:"sample_size"   json:"sample_size"`
	TopHookLines []string  `db:"top_hook_lines" json:"top_hook_lines"`
	TopStages    []string  `db:"top_stages"     json:"top_stages"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("analysis run not found")

// RunsRepository persists completed analysis runs.
type RunsRepository struct {
	db *sqlx.DB
}

// NewRunsRepository creates a new runs repository.
func NewRunsRepository(db *sqlx.DB) *RunsRepository {
	return &RunsRepository{db: db}
}

// Create inserts a run and assigns it a fresh identifier.
func (r *RunsRepository) Create(ctx context.Context, run *AnalysisRun) error {
	run.ID = uuid.NewString()

	query := `
		INSERT INTO analysis_runs (id, offer_name, record_count, skipped_count, sample_size, top_hook_lines, top_stages)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		run.ID,
		run.OfferName,
		run.RecordCount,
		run.SkippedCount,
		run.SampleSize,
		pq.Array(run.TopHookLines),
		pq.Array(run.TopStages),
	).Scan(&run.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create analysis run: %w", err)
	}

	return nil
}

// GetByID retrieves one run by its identifier.
func (r *RunsRepository) GetByID(ctx context.Context, id string) (*AnalysisRun, error) {
	var run AnalysisRun
	query := `
		SELECT id, offer_name, record_count, skipped_count, sample_size, top_hook_lines, top_stages, created_at
		FROM analysis_runs
		WHERE id = $1
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.OfferName,
		&run.RecordCount,
		&run.SkippedCount,
		&run.SampleSize,
		pq.Array(&run.TopHookLines),
		pq.Array(&run.TopStages),
		&run.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}

	return &run, nil
}

// List retrieves the most recent runs, newest first.
func (r *RunsRepository) List(ctx context.Context, limit int) ([]*AnalysisRun, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, offer_name, record_count, skipped_count, sample_size, top_hook_lines, top_stages, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []*AnalysisRun
	for rows.Next() {
		var run AnalysisRun
		if err := rows.Scan(
			&run.ID,
			&run.OfferName,
			&run.RecordCount,
			&run.SkippedCount,
			&run.SampleSize,
			pq.Array(&run.TopHookLines),
			pq.Array(&run.TopStages),
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis runs: %w", err)
	}

	return runs, nil
}
