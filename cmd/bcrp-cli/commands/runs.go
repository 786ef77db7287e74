package commands

import (
	"time"

	"bcrpharvest/lib/runstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bcrpharvest/cmd/bcrp-cli/utils"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past harvest runs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := runstore.Open(config.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(cmd.Context())
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"id", "started", "took", "links", "records", "skipped", "output"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.Id,
				run.Started.Format(time.DateTime),
				run.Finished.Sub(run.Started).Round(time.Second),
				run.Links,
				run.Records,
				run.Skipped,
				run.Output,
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
