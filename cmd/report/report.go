// Package report implements the report command, which renders stored runs and
// listings as tables.
package report

import (
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/jobscout/jobscout/cmd/common"
	"github.com/jobscout/jobscout/internal/database"
)

const (
	defaultRows   = 20
	titleColWidth = 48
)

// Command returns the report command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect stored runs and listings",
	}

	cmd.AddCommand(runsCommand())
	cmd.AddCommand(listingsCommand())

	return cmd
}

func runsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent ingestion runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.New()
			if err != nil {
				return err
			}

			db, err := deps.OpenDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := database.NewRunRepository(db).List(cmd.Context(), limit, 0)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{
				"ID", "Kind", "Status", "Portals", "Fetched", "Stored", "Relevant", "Errors", "Started",
			})
			for _, run := range runs {
				t.AppendRow(table.Row{
					run.ID[:8], run.Kind, run.Status, run.Portals,
					run.ListingsFetched, run.ListingsStored, run.RelevantFound, run.ErrorCount,
					run.StartedAt.Format(time.RFC3339),
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultRows, "maximum runs to show")

	return cmd
}

func listingsCommand() *cobra.Command {
	var (
		limit        int
		portalName   string
		relevantOnly bool
	)

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Show stored listings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := common.New()
			if err != nil {
				return err
			}

			db, err := deps.OpenDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := database.NewListingRepository(db)

			listings, err := repo.List(cmd.Context(), database.ListingFilter{
				Portal:       portalName,
				RelevantOnly: relevantOnly,
				Limit:        limit,
			})
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Portal", "Title", "Relevant", "Score", "Scraped"})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Name: "Title", WidthMax: titleColWidth},
				{Name: "Score", Transformer: text.NewNumberTransformer("%.1f")},
			})
			for _, l := range listings {
				t.AppendRow(table.Row{
					l.Portal, l.Title, l.Relevant, l.Score,
					l.ScrapedAt.Format("2006-01-02 15:04"),
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()

			counts, err := repo.CountByPortal(cmd.Context())
			if err != nil {
				return err
			}
			printCounts(counts)

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultRows, "maximum listings to show")
	cmd.Flags().StringVar(&portalName, "portal", "", "filter by portal")
	cmd.Flags().BoolVar(&relevantOnly, "relevant", false, "show only relevant listings")

	return cmd
}

func printCounts(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Portal", "Total stored"})
	for _, name := range names {
		t.AppendRow(table.Row{name, counts[name]})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
