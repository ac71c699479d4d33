package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jobscout/jobscout/internal/domain"
)

// EmployerRepository handles database operations for employers.
type EmployerRepository struct {
	db *sqlx.DB
}

// NewEmployerRepository creates a new employer repository.
func NewEmployerRepository(db *sqlx.DB) *EmployerRepository {
	return &EmployerRepository{db: db}
}

// FindByNormalizedName retrieves an employer by its normalized-name natural
// key. Returns ErrNotFound when no employer exists under that key.
func (r *EmployerRepository) FindByNormalizedName(
	ctx context.Context,
	normalizedName string,
) (*domain.Employer, error) {
	var employer domain.Employer
	query := `
		SELECT id, name, normalized_name, website, industry, metadata,
		       created_at, updated_at
		FROM employers
		WHERE normalized_name = $1
	`

	err := r.db.GetContext(ctx, &employer, query, normalizedName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employer %q: %w", normalizedName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}

	return &employer, nil
}

// Create inserts a new employer. The caller supplies ID and NormalizedName;
// timestamps are populated from the database. A concurrent insert under the
// same normalized name surfaces as a unique violation (see IsUniqueViolation).
func (r *EmployerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	query := `
		INSERT INTO employers (id, name, normalized_name, website, industry, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		employer.ID,
		employer.Name,
		employer.NormalizedName,
		employer.Website,
		employer.Industry,
		employer.Metadata,
	).Scan(&employer.CreatedAt, &employer.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create employer: %w", err)
	}

	return nil
}

// Count returns the total number of employers.
func (r *EmployerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employers`); err != nil {
		return 0, fmt.Errorf("failed to count employers: %w", err)
	}
	return count, nil
}
