// Package scrape implements the scrape command, which executes one ingestion
// run from the command line.
package scrape

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/cmd/common"
	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/ingest"
	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/portal"
)

// Command returns the scrape command.
func Command() *cobra.Command {
	var (
		portals      []string
		relevantOnly bool
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one ingestion pass over the configured portals",
		Long: `Scrapes the requested portals (all supported portals by default),
scores each listing for AI/ML relevance, and upserts the results.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, portals, relevantOnly)
		},
	}

	cmd.Flags().StringSliceVar(&portals, "portals", nil,
		"portals to scrape (default: all supported)")
	cmd.Flags().BoolVar(&relevantOnly, "relevant-only", false,
		"store only listings classified as AI/ML relevant (defaults to the configured scraper.filter_relevant)")

	return cmd
}

func run(cmd *cobra.Command, portals []string, relevantOnly bool) error {
	deps, err := common.New()
	if err != nil {
		return err
	}

	for _, name := range portals {
		if !portal.IsSupported(name) {
			return fmt.Errorf("unknown portal %q (supported: %v)", name, portal.All())
		}
	}

	db, err := deps.OpenDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := deps.BuildIngestService(common.NewRepositories(db))

	if len(portals) == 0 {
		portals = deps.Config.Scraper.Portals
	}

	summary, err := svc.Run(cmd.Context(), ingest.Params{
		Portals: portals,
		Kind:    domain.RunKindBulk,
		RelevantOnly: resolveRelevantOnly(relevantOnly,
			cmd.Flags().Changed("relevant-only"), deps.Config.Scraper.FilterRelevant),
	})
	if summary != nil {
		printSummary(summary)
	}

	return err
}

// resolveRelevantOnly picks between the flag and the configured default. An
// explicitly-set flag wins either way, so --relevant-only=false can disable
// filtering that config enables.
func resolveRelevantOnly(flag, flagSet, configured bool) bool {
	if flagSet {
		return flag
	}
	return configured
}

// printSummary renders the per-portal outcome table.
func printSummary(summary *ingest.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Portal", "Fetched", "Relevant", "Status"})

	names := make([]string, 0, len(summary.PerPortal))
	for name := range summary.PerPortal {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t.AppendRow(portalRow(summary.PerPortal[name]))
	}

	run := summary.Run
	t.AppendFooter(table.Row{
		"total", run.ListingsFetched, run.RelevantFound,
		fmt.Sprintf("%s, %d stored", run.Status, run.ListingsStored),
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func portalRow(pr *pipeline.PortalResult) table.Row {
	status := "ok"
	if pr.Err != nil {
		status = "error: " + pr.Err.Error()
	}
	return table.Row{pr.Portal, pr.Fetched, pr.Relevant, status}
}
