package domain

import (
	"strings"
	"time"
)

// Employer represents a company or client that posts job listings.
type Employer struct {
	ID string `db:"id" json:"id"`

	// Name is the display name as scraped.
	Name string `db:"name" json:"name"`
	// NormalizedName is the natural key: lower-cased, trimmed, inner
	// whitespace collapsed. Unique across employers.
	NormalizedName string `db:"normalized_name" json:"normalized_name"`

	Website  string   `db:"website"  json:"website,omitempty"`
	Industry string   `db:"industry" json:"industry,omitempty"`
	Metadata JSONBMap `db:"metadata" json:"metadata,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NormalizeEmployerName produces the deterministic natural key for an employer
// name: lower-cased, surrounding whitespace trimmed, runs of inner whitespace
// collapsed to single spaces. " Acme  Inc " and "acme inc" map to the same key.
func NormalizeEmployerName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
