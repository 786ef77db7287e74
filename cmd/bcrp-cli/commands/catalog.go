package commands

import (
	"sort"
	"strings"

	"bcrpharvest/lib/catalogstore"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bcrpharvest/cmd/bcrp-cli/utils"
)

var flagMetadata string
var flagCategory string
var flagLimit int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse a harvested catalog file.",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries, optionally filtered by category.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogstore.Load(metadataPath())
		if err != nil {
			return err
		}

		filter := strings.ToLower(flagCategory)
		t := utils.NewTable()
		t.AppendHeader(table.Row{
			"codigo", "nombre_serie", "fecha_inicio", "fecha_fin", "periodicidad", "categoria",
		})
		for _, record := range catalog {
			if filter != "" && !strings.Contains(strings.ToLower(record.Categoria), filter) {
				continue
			}
			t.AppendRow(table.Row{
				record.Codigo,
				record.NombreSerie,
				record.FechaInicio,
				record.FechaFin,
				record.Periodicidad,
				record.Categoria,
			})
		}
		t.Render()
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog entries against a query by series name similarity.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogstore.Load(metadataPath())
		if err != nil {
			return err
		}
		query := strings.ToLower(args[0])

		type scored struct {
			idx   int
			score float64
		}
		ranked := make([]scored, len(catalog))
		for i, record := range catalog {
			ranked[i] = scored{
				idx:   i,
				score: matchr.JaroWinkler(query, strings.ToLower(record.NombreSerie), false),
			}
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return ranked[a].score > ranked[b].score
		})

		limit := flagLimit
		if limit > len(ranked) {
			limit = len(ranked)
		}
		t := utils.NewTable()
		t.AppendHeader(table.Row{"score", "codigo", "nombre_serie", "categoria"})
		for _, entry := range ranked[:limit] {
			record := catalog[entry.idx]
			t.AppendRow(table.Row{
				int(entry.score * 100),
				record.Codigo,
				record.NombreSerie,
				record.Categoria,
			})
		}
		t.Render()
		return nil
	},
}

func metadataPath() string {
	if flagMetadata != "" {
		return flagMetadata
	}
	return config.Output
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSearchCmd)

	catalogCmd.PersistentFlags().StringVar(&flagMetadata, "metadata", "", "catalog file (defaults to the configured output)")
	catalogListCmd.Flags().StringVar(&flagCategory, "category", "", "only show entries whose category contains this text")
	catalogSearchCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum results to show")
}
