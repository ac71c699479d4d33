package domain

import (
	"time"
)

// Listing represents a persisted job listing.
// Exactly one Listing exists per natural key regardless of how many ingestion
// runs observe the same candidate; re-ingestion updates mutable fields.
type Listing struct {
	ID string `db:"id" json:"id"`

	// NaturalKey is the portal-qualified external identifier,
	// e.g. "guru_12345" or "weworkremotely_Senior ML Engineer".
	NaturalKey string `db:"natural_key" json:"natural_key"`

	Title       string `db:"title"       json:"title"`
	Description string `db:"description" json:"description"`
	URL         string `db:"url"         json:"url"`

	EmployerID string `db:"employer_id" json:"employer_id"`
	Portal     string `db:"portal"      json:"portal"`

	Relevant bool    `db:"relevant" json:"relevant"`
	Score    float64 `db:"score"    json:"score"`

	Metadata JSONBMap `db:"metadata" json:"metadata,omitempty"`

	PostedAt  *time.Time `db:"posted_at"  json:"posted_at,omitempty"`
	ScrapedAt time.Time  `db:"scraped_at" json:"scraped_at"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
