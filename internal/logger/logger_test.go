package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/logger"
)

func TestNewAppliesDefaults(t *testing.T) {
	log, err := logger.New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	_, err := logger.New(&logger.Config{Encoding: "yaml"})
	require.Error(t, err)
}

func TestScopedHelpersChain(t *testing.T) {
	log, err := logger.New(&logger.Config{
		Level:       "debug",
		Encoding:    "json",
		OutputPaths: []string{"/dev/null"},
	})
	require.NoError(t, err)

	scoped := log.WithPortal("guru").WithRunID("run-1").With("page", 1)
	require.NotNil(t, scoped)
	scoped.Info("scoped message")

	noop := logger.NewNoOp().WithPortal("guru").WithRunID("run-1")
	require.NotNil(t, noop)
	noop.Debug("discarded")
}
