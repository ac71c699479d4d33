package ingest_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/ingest"
	"github.com/jobscout/jobscout/internal/logger"
)

type countingExecutor struct {
	calls atomic.Int64
}

func (c *countingExecutor) Run(context.Context, ingest.Params) (*ingest.Summary, error) {
	c.calls.Add(1)
	return &ingest.Summary{Run: &domain.IngestionRun{ID: "run-x"}}, nil
}

func TestSchedulerTriggersRuns(t *testing.T) {
	exec := &countingExecutor{}
	sched := ingest.NewScheduler(exec, "@every 10ms", ingest.Params{}, logger.NewNoOp())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := sched.Start(ctx)

	require.NoError(t, err)
	assert.Positive(t, exec.calls.Load(), "at least one scheduled run should have fired")
}

func TestSchedulerRejectsInvalidSpec(t *testing.T) {
	sched := ingest.NewScheduler(&countingExecutor{}, "not a schedule", ingest.Params{}, logger.NewNoOp())

	err := sched.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}
