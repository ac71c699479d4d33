// Package store sits between the scraping pipeline and the database,
// enforcing the dedup semantics for employers and listings and keeping the
// run ledger.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jobscout/jobscout/internal/database"
	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

// EmployerStore is the employer persistence surface the gateway needs.
type EmployerStore interface {
	FindByNormalizedName(ctx context.Context, normalizedName string) (*domain.Employer, error)
	Create(ctx context.Context, employer *domain.Employer) error
}

// ListingStore is the listing persistence surface the gateway needs.
type ListingStore interface {
	Upsert(ctx context.Context, listing *domain.Listing) (bool, error)
}

// Gateway deduplicates candidates on their natural keys before persisting.
// Employers are get-or-created by normalized name; listings are upserted by
// portal-qualified key, so re-ingesting the same candidate never produces a
// second row.
type Gateway struct {
	employers EmployerStore
	listings  ListingStore
	log       logger.Interface
}

// NewGateway creates a Gateway.
func NewGateway(employers EmployerStore, listings ListingStore, log logger.Interface) *Gateway {
	return &Gateway{employers: employers, listings: listings, log: log}
}

// Upsert persists one candidate listing. It resolves the employer first
// (creating it when unseen), then upserts the listing under its natural key.
// Returns the stored listing and whether a new listing row was created.
func (g *Gateway) Upsert(
	ctx context.Context,
	candidate domain.CandidateListing,
) (*domain.Listing, bool, error) {
	employer, err := g.resolveEmployer(ctx, candidate.EmployerName())
	if err != nil {
		return nil, false, fmt.Errorf("resolve employer: %w", err)
	}

	listing := &domain.Listing{
		ID:          uuid.New().String(),
		NaturalKey:  candidate.NaturalKey(),
		Title:       candidate.Title,
		Description: candidate.Description,
		URL:         candidate.URL,
		EmployerID:  employer.ID,
		Portal:      candidate.Portal,
		Relevant:    candidate.Relevant,
		Score:       candidate.Score,
		Metadata:    candidateMetadata(candidate),
		ScrapedAt:   time.Now().UTC(),
	}

	created, err := g.listings.Upsert(ctx, listing)
	if err != nil {
		return nil, false, fmt.Errorf("upsert listing: %w", err)
	}

	g.log.Debug("listing stored",
		"natural_key", listing.NaturalKey,
		"employer", employer.Name,
		"created", created,
	)

	return listing, created, nil
}

// resolveEmployer finds the employer by normalized name or creates it.
// A concurrent create racing on the same name loses the unique constraint
// and recovers with a second lookup.
func (g *Gateway) resolveEmployer(ctx context.Context, name string) (*domain.Employer, error) {
	normalized := domain.NormalizeEmployerName(name)

	employer, err := g.employers.FindByNormalizedName(ctx, normalized)
	if err == nil {
		return employer, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	employer = &domain.Employer{
		ID:             uuid.New().String(),
		Name:           name,
		NormalizedName: normalized,
	}

	createErr := g.employers.Create(ctx, employer)
	if createErr == nil {
		return employer, nil
	}
	if !database.IsUniqueViolation(createErr) {
		return nil, createErr
	}

	// Lost the insert race; the winner's row must exist now.
	return g.employers.FindByNormalizedName(ctx, normalized)
}

// candidateMetadata captures portal-specific fields that have no dedicated
// column, keeping the raw posted string for later enrichment.
func candidateMetadata(candidate domain.CandidateListing) domain.JSONBMap {
	meta := domain.JSONBMap{}
	if candidate.SourceID != "" {
		meta["source_id"] = candidate.SourceID
	}
	if candidate.PostedRaw != "" {
		meta["posted_raw"] = candidate.PostedRaw
	}
	if len(candidate.Tags) > 0 {
		meta["tags"] = candidate.Tags
	}
	return meta
}
