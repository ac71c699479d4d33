package domain

import (
	"time"
)

// Run kinds.
const (
	RunKindBulk     = "bulk"
	RunKindRealtime = "realtime"
)

// Run statuses. Terminal statuses (completed, failed) are final.
const (
	RunStatusPending    = "pending"
	RunStatusInProgress = "in_progress"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)

// IngestionRun is the durable audit record for one execution of the pipeline.
// Created at run start and mutated exactly once at completion.
type IngestionRun struct {
	ID string `db:"id" json:"id"`

	Kind   string `db:"kind"   json:"kind"`   // bulk, realtime
	Status string `db:"status" json:"status"` // pending, in_progress, completed, failed

	// Portals is the requested portal scope, comma-separated.
	Portals string `db:"portals" json:"portals"`

	// Counts
	ListingsFetched int `db:"listings_fetched" json:"listings_fetched"`
	ListingsStored  int `db:"listings_stored"  json:"listings_stored"`
	RelevantFound   int `db:"relevant_found"   json:"relevant_found"`
	ErrorCount      int `db:"error_count"      json:"error_count"`

	// Error tracking
	ErrorMessage *string  `db:"error_message" json:"error_message,omitempty"`
	ErrorDetails JSONBMap `db:"error_details" json:"error_details,omitempty"`

	// Request details
	Params JSONBMap `db:"params" json:"params,omitempty"`

	// Timing
	StartedAt   time.Time  `db:"started_at"   json:"started_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	DurationMs  *int64     `db:"duration_ms"  json:"duration_ms,omitempty"`
}

// IsTerminal reports whether the run has reached a final state.
func (r *IngestionRun) IsTerminal() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusFailed
}
