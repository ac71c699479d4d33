// Package serve implements the serve command, which runs the HTTP API.
package serve

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/cmd/common"
	"github.com/jobscout/jobscout/internal/httpd"
)

// Command returns the serve command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serves the ingestion API: trigger scrapes, inspect runs, and query
stored listings. Shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	deps, err := common.New()
	if err != nil {
		return err
	}

	db, err := deps.OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repos := common.NewRepositories(db)

	server := httpd.NewServer(httpd.Params{
		Address:  deps.Config.Server.Address,
		Ingestor: deps.BuildIngestService(repos),
		Runs:     repos.Runs,
		Listings: repos.Listings,
		Logger:   deps.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
