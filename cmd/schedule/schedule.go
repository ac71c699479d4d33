// Package schedule implements the schedule command, which runs recurring
// ingestion on a cron spec.
package schedule

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/cmd/common"
	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/ingest"
)

// Command returns the schedule command.
func Command() *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run ingestion on a recurring schedule",
		Long: `Runs bulk ingestion over the configured portals on a cron schedule
(hourly by default) until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, spec)
		},
	}

	cmd.Flags().StringVar(&spec, "spec", "",
		`cron spec, e.g. "@hourly" or "*/30 * * * *" (default: from config)`)

	return cmd
}

func run(cmd *cobra.Command, spec string) error {
	deps, err := common.New()
	if err != nil {
		return err
	}

	db, err := deps.OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := deps.BuildIngestService(common.NewRepositories(db))

	if spec == "" {
		spec = deps.Config.Scheduler.Spec
	}

	scheduler := ingest.NewScheduler(svc, spec, ingest.Params{
		Portals:      deps.Config.Scraper.Portals,
		Kind:         domain.RunKindBulk,
		RelevantOnly: deps.Config.Scraper.FilterRelevant,
	}, deps.Logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return scheduler.Start(ctx)
}
