// Package domain provides domain models used across the application.
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// UnknownEmployer is the sentinel employer name used when an adapter could not
// resolve the employer for a listing.
const UnknownEmployer = "Unknown"

// syntheticIDTitleLen bounds the title prefix used in synthesized candidate IDs.
const syntheticIDTitleLen = 20

// CandidateListing is a transient, adapter-produced job listing. It exists only
// for the duration of a single ingestion run and is never persisted directly.
type CandidateListing struct {
	// Portal is the source portal identifier, e.g. "guru".
	Portal string `json:"portal"`
	// SourceID is the portal-native listing identifier. Empty when the portal
	// did not expose one; use NaturalKey to obtain a stable key regardless.
	SourceID string `json:"source_id,omitempty"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Employer    string   `json:"employer"`
	Tags        []string `json:"tags,omitempty"`

	// Relevance classification, filled in by the scorer.
	Relevant  bool    `json:"relevant"`
	Score     float64 `json:"score"`
	PostedRaw string  `json:"posted_raw,omitempty"` // unparsed posting-time text, best effort
}

// NaturalKey returns the portal-qualified key used for idempotent upserts.
// When the portal supplied no native ID the key is synthesized from the portal
// and a title prefix, so repeated runs over the same listing converge.
func (c *CandidateListing) NaturalKey() string {
	id := c.SourceID
	if id == "" {
		id = titlePrefix(c.Title)
	}
	return fmt.Sprintf("%s_%s", c.Portal, id)
}

// titlePrefix returns a trimmed, bounded prefix of the title. The cut lands on
// a rune boundary so synthesized keys stay valid UTF-8.
func titlePrefix(title string) string {
	t := strings.TrimSpace(title)
	if len(t) <= syntheticIDTitleLen {
		return t
	}
	cut := syntheticIDTitleLen
	for cut > 0 && !utf8.RuneStart(t[cut]) {
		cut--
	}
	return t[:cut]
}

// EmployerName returns the candidate's employer, falling back to the
// UnknownEmployer sentinel.
func (c *CandidateListing) EmployerName() string {
	if strings.TrimSpace(c.Employer) == "" {
		return UnknownEmployer
	}
	return c.Employer
}
