package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jobscout/jobscout/internal/domain"
)

// RunRepository handles database operations for ingestion runs.
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new ingestion run repository.
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new run record. The caller supplies ID, kind, status, and
// params; started_at is populated from the database.
func (r *RunRepository) Create(ctx context.Context, run *domain.IngestionRun) error {
	query := `
		INSERT INTO ingestion_runs (id, kind, status, portals, params)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING started_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		run.ID,
		run.Kind,
		run.Status,
		run.Portals,
		run.Params,
	).Scan(&run.StartedAt)

	if err != nil {
		return fmt.Errorf("failed to create ingestion run: %w", err)
	}

	return nil
}

// Update persists the run's current status, counters, and error fields.
func (r *RunRepository) Update(ctx context.Context, run *domain.IngestionRun) error {
	query := `
		UPDATE ingestion_runs
		SET status = $1, listings_fetched = $2, listings_stored = $3,
		    relevant_found = $4, error_count = $5, error_message = $6,
		    error_details = $7, completed_at = $8, duration_ms = $9
		WHERE id = $10
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		run.Status,
		run.ListingsFetched,
		run.ListingsStored,
		run.RelevantFound,
		run.ErrorCount,
		run.ErrorMessage,
		run.ErrorDetails,
		run.CompletedAt,
		run.DurationMs,
		run.ID,
	)

	return execRequireRows(result,
		wrapErr("failed to update ingestion run", err),
		fmt.Errorf("ingestion run %q: %w", run.ID, ErrNotFound),
	)
}

// GetByID retrieves a run by its ID. Returns ErrNotFound when absent.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*domain.IngestionRun, error) {
	var run domain.IngestionRun
	query := `
		SELECT id, kind, status, portals, listings_fetched, listings_stored,
		       relevant_found, error_count, error_message, error_details, params,
		       started_at, completed_at, duration_ms
		FROM ingestion_runs
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &run, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ingestion run %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ingestion run: %w", err)
	}

	return &run, nil
}

// List retrieves runs most recent first.
func (r *RunRepository) List(ctx context.Context, limit, offset int) ([]*domain.IngestionRun, error) {
	var runs []*domain.IngestionRun
	query := `
		SELECT id, kind, status, portals, listings_fetched, listings_stored,
		       relevant_found, error_count, error_message, error_details, params,
		       started_at, completed_at, duration_ms
		FROM ingestion_runs
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2
	`

	err := r.db.SelectContext(ctx, &runs, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingestion runs: %w", err)
	}

	if runs == nil {
		runs = []*domain.IngestionRun{}
	}

	return runs, nil
}

func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
