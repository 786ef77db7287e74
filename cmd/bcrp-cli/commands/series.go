package commands

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	"bcrpharvest/lib/scrapers/bcrp"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bcrpharvest/cmd/bcrp-cli/utils"
)

var flagFrom string
var flagTo string
var flagCsv string

var seriesCmd = &cobra.Command{
	Use:   "series <codigo>...",
	Short: "Query the statistics endpoint for one or more series codes.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := bcrp.NewClient(bcrp.ClientOptions{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return err
		}

		data, err := client.FetchSeries(cmd.Context(), args, flagFrom, flagTo)
		if err != nil {
			return err
		}

		if flagCsv != "" {
			return writeSeriesCsv(data, flagCsv)
		}

		header := table.Row{"Periodo"}
		for _, name := range data.Columns {
			header = append(header, name)
		}
		t := utils.NewTable()
		t.AppendHeader(header)
		for i, period := range data.Periods {
			row := table.Row{period}
			for _, v := range data.Values[i] {
				row = append(row, formatObservation(v))
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

func formatObservation(v float64) string {
	if math.IsNaN(v) {
		return "n.d."
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeSeriesCsv(data *bcrp.SeriesTable, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(append([]string{"Periodo"}, data.Columns...)); err != nil {
		return err
	}
	for i, period := range data.Periods {
		row := make([]string, 0, len(data.Columns)+1)
		row = append(row, period)
		for _, v := range data.Values[i] {
			row = append(row, formatObservation(v))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func init() {
	rootCmd.AddCommand(seriesCmd)

	seriesCmd.Flags().StringVar(&flagFrom, "from", "", "first period, e.g. 2010")
	seriesCmd.Flags().StringVar(&flagTo, "to", "", "last period, e.g. 2024")
	seriesCmd.Flags().StringVar(&flagCsv, "csv", "", "write the result to this file instead of rendering a table")
	seriesCmd.MarkFlagRequired("from")
	seriesCmd.MarkFlagRequired("to")
}
