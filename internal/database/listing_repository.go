package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jobscout/jobscout/internal/domain"
)

// ListingFilter narrows List queries.
type ListingFilter struct {
	Portal       string
	RelevantOnly bool
	Limit        int
	Offset       int
}

// ListingRepository handles database operations for job listings.
type ListingRepository struct {
	db *sqlx.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Upsert inserts the listing or, when a row with the same natural key already
// exists, refreshes its mutable fields. Identity fields (natural_key, portal,
// employer_id) are never rewritten on conflict. Returns true when a new row
// was inserted.
//
// xmax = 0 distinguishes a fresh insert from a conflict-update: an updated
// row carries a deleting-transaction marker, a brand new row does not.
func (r *ListingRepository) Upsert(ctx context.Context, listing *domain.Listing) (bool, error) {
	query := `
		INSERT INTO listings (
			id, natural_key, title, description, url, employer_id, portal,
			relevant, score, metadata, posted_at, scraped_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (natural_key) DO UPDATE SET
			title       = EXCLUDED.title,
			description = EXCLUDED.description,
			url         = EXCLUDED.url,
			relevant    = EXCLUDED.relevant,
			score       = EXCLUDED.score,
			metadata    = EXCLUDED.metadata,
			posted_at   = EXCLUDED.posted_at,
			scraped_at  = EXCLUDED.scraped_at,
			updated_at  = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRowContext(
		ctx,
		query,
		listing.ID,
		listing.NaturalKey,
		listing.Title,
		listing.Description,
		listing.URL,
		listing.EmployerID,
		listing.Portal,
		listing.Relevant,
		listing.Score,
		listing.Metadata,
		listing.PostedAt,
		listing.ScrapedAt,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt, &inserted)

	if err != nil {
		return false, fmt.Errorf("failed to upsert listing: %w", err)
	}

	return inserted, nil
}

// GetByNaturalKey retrieves a listing by its portal-qualified natural key.
func (r *ListingRepository) GetByNaturalKey(ctx context.Context, key string) (*domain.Listing, error) {
	var listing domain.Listing
	query := `
		SELECT id, natural_key, title, description, url, employer_id, portal,
		       relevant, score, metadata, posted_at, scraped_at, created_at, updated_at
		FROM listings
		WHERE natural_key = $1
	`

	err := r.db.GetContext(ctx, &listing, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("listing %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	return &listing, nil
}

// List retrieves listings most recently scraped first, applying the filter.
func (r *ListingRepository) List(ctx context.Context, filter ListingFilter) ([]*domain.Listing, error) {
	query := `
		SELECT id, natural_key, title, description, url, employer_id, portal,
		       relevant, score, metadata, posted_at, scraped_at, created_at, updated_at
		FROM listings
		WHERE ($1 = '' OR portal = $1)
		  AND (NOT $2 OR relevant)
		ORDER BY scraped_at DESC
		LIMIT $3 OFFSET $4
	`

	var listings []*domain.Listing
	err := r.db.SelectContext(
		ctx,
		&listings,
		query,
		filter.Portal,
		filter.RelevantOnly,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	if listings == nil {
		listings = []*domain.Listing{}
	}

	return listings, nil
}

// CountByPortal returns per-portal listing counts.
func (r *ListingRepository) CountByPortal(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT portal, COUNT(*) FROM listings GROUP BY portal`)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var portal string
		var count int
		if scanErr := rows.Scan(&portal, &count); scanErr != nil {
			return nil, fmt.Errorf("failed to scan listing count: %w", scanErr)
		}
		counts[portal] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listing counts: %w", err)
	}

	return counts, nil
}
