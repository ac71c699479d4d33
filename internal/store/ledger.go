package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/logger"
)

// RunStore is the run persistence surface the ledger needs.
type RunStore interface {
	Create(ctx context.Context, run *domain.IngestionRun) error
	Update(ctx context.Context, run *domain.IngestionRun) error
}

// Ledger records the lifecycle of ingestion runs. Ledger writes are audit
// trail, not control flow: a failed write is logged and the run proceeds.
type Ledger struct {
	runs RunStore
	log  logger.Interface
}

// NewLedger creates a Ledger.
func NewLedger(runs RunStore, log logger.Interface) *Ledger {
	return &Ledger{runs: runs, log: log}
}

// Begin creates a pending run record and returns it.
func (l *Ledger) Begin(
	ctx context.Context,
	kind string,
	portals []string,
	params domain.JSONBMap,
) *domain.IngestionRun {
	run := &domain.IngestionRun{
		ID:        uuid.New().String(),
		Kind:      kind,
		Status:    domain.RunStatusPending,
		Portals:   strings.Join(portals, ","),
		Params:    params,
		StartedAt: time.Now().UTC(),
	}

	if err := l.runs.Create(ctx, run); err != nil {
		l.log.Warn("failed to record run start", "run_id", run.ID, "error", err)
	}

	return run
}

// Start transitions the run to in_progress.
func (l *Ledger) Start(ctx context.Context, run *domain.IngestionRun) {
	run.Status = domain.RunStatusInProgress
	l.persist(ctx, run)
}

// Complete transitions the run to its terminal completed state, freezing the
// counters and timing.
func (l *Ledger) Complete(ctx context.Context, run *domain.IngestionRun) {
	l.finish(ctx, run, domain.RunStatusCompleted)
}

// Fail transitions the run to its terminal failed state with an error summary.
func (l *Ledger) Fail(
	ctx context.Context,
	run *domain.IngestionRun,
	message string,
	details domain.JSONBMap,
) {
	run.ErrorMessage = &message
	run.ErrorDetails = details
	l.finish(ctx, run, domain.RunStatusFailed)
}

func (l *Ledger) finish(ctx context.Context, run *domain.IngestionRun, status string) {
	if run.IsTerminal() {
		l.log.Warn("ignoring transition on terminal run", "run_id", run.ID, "status", run.Status)
		return
	}

	now := time.Now().UTC()
	durationMs := now.Sub(run.StartedAt).Milliseconds()

	run.Status = status
	run.CompletedAt = &now
	run.DurationMs = &durationMs

	l.persist(ctx, run)
}

func (l *Ledger) persist(ctx context.Context, run *domain.IngestionRun) {
	if err := l.runs.Update(ctx, run); err != nil {
		l.log.Warn("failed to record run transition",
			"run_id", run.ID,
			"status", run.Status,
			"error", err,
		)
	}
}
