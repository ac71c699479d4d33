package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jobscout/jobscout/internal/logger"
)

// defaultRunBudget bounds the wall-clock time of one scheduled run.
const defaultRunBudget = 30 * time.Minute

// Executor is the subset of Service the scheduler drives.
type Executor interface {
	Run(ctx context.Context, params Params) (*Summary, error)
}

// Scheduler triggers recurring ingestion runs on a cron spec.
type Scheduler struct {
	cron   *cron.Cron
	exec   Executor
	spec   string
	params Params
	budget time.Duration
	log    logger.Interface
}

// NewScheduler creates a Scheduler. spec uses standard cron syntax,
// descriptors like "@hourly" included.
func NewScheduler(exec Executor, spec string, params Params, log logger.Interface) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		exec:   exec,
		spec:   spec,
		params: params,
		budget: defaultRunBudget,
		log:    log,
	}
}

// Start schedules runs and blocks until ctx is cancelled, then waits for any
// in-flight run to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.trigger(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}

	s.log.Info("scheduler started", "schedule", s.spec)
	s.cron.Start()

	<-ctx.Done()

	s.log.Info("scheduler stopping")
	<-s.cron.Stop().Done()

	return nil
}

// trigger executes one scheduled run under the time budget. A failed run is
// logged; the schedule keeps firing.
func (s *Scheduler) trigger(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	summary, err := s.exec.Run(runCtx, s.params)
	if err != nil {
		s.log.Error("scheduled run failed", "error", err)
		return
	}

	s.log.Info("scheduled run finished",
		"run_id", summary.Run.ID,
		"stored", summary.Run.ListingsStored,
	)
}
