package commands

import (
	"log/slog"
	"time"

	"bcrpharvest/lib/catalogstore"
	"bcrpharvest/lib/restyutil"
	"bcrpharvest/lib/runstore"
	"bcrpharvest/lib/scrapers/bcrp"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bcrpharvest/cmd/bcrp-cli/utils"
)

var flagLinks string
var flagOut string
var flagWorkers int
var flagShowSkipped bool

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Crawl every category page in the link list and rebuild the catalog file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		links := config.Links
		if flagLinks != "" {
			links = flagLinks
		}
		out := config.Output
		if flagOut != "" {
			out = flagOut
		}
		workers := config.Workers
		if flagWorkers > 0 {
			workers = flagWorkers
		}

		if config.RestyDumpDir != "" {
			bcrp.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(config.RestyDumpDir))
		}
		client, err := bcrp.NewClient(bcrp.ClientOptions{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return err
		}
		harvester := bcrp.NewHarvester(client, workers)

		started := time.Now()
		catalog, skipped, err := harvester.HarvestFile(cmd.Context(), links)
		if err != nil {
			return err
		}
		finished := time.Now()

		err = catalogstore.Save(catalog, out)
		if err != nil {
			return err
		}
		slog.Info(
			"catalog written",
			"output", out,
			"records", len(catalog),
			"skipped", len(skipped),
			"took", finished.Sub(started).Round(time.Millisecond),
		)

		if config.Database != "" {
			store, err := runstore.Open(config.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			linkList, _ := bcrp.ReadLinkList(links)
			_, err = store.Record(cmd.Context(), runstore.Run{
				Started:  started,
				Finished: finished,
				Links:    len(linkList),
				Records:  len(catalog),
				Skipped:  len(skipped),
				Output:   out,
			})
			if err != nil {
				return err
			}
		}

		if flagShowSkipped && len(skipped) > 0 {
			t := utils.NewTable()
			t.AppendHeader(table.Row{"url", "table", "row", "reason"})
			for _, skip := range skipped {
				t.AppendRow(table.Row{skip.Url, skip.Table, skip.Row, skip.Reason})
			}
			t.Render()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(harvestCmd)

	harvestCmd.Flags().StringVar(&flagLinks, "links", "", "link list file (overrides config)")
	harvestCmd.Flags().StringVar(&flagOut, "out", "", "catalog output file (overrides config)")
	harvestCmd.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent page fetches (overrides config)")
	harvestCmd.Flags().BoolVar(&flagShowSkipped, "show-skipped", false, "render a table of skipped links/tables/rows")
}
