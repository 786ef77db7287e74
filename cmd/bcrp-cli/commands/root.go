package commands

import (
	"context"
	"fmt"
	"os"

	"bcrpharvest/lib/configutil"
	"bcrpharvest/lib/osutil"
	"bcrpharvest/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	// path of the `;`-separated link list file
	Links string `json:"links"`
	// path the harvested catalog is written to
	Output string `json:"output"`
	// path of the sqlite run history, empty disables it
	Database string `json:"database"`
	// concurrent page fetches, clamped to 8
	Workers int `json:"workers"`
	// per-request timeout in seconds
	TimeoutSeconds int `json:"timeout_seconds"`
	// when set, every http exchange is dumped to this directory
	RestyDumpDir string `json:"resty_dump_dir"`
}

func applyDefaults(c *Config) {
	if c.Links == "" {
		c.Links = "master_categorias_urls.csv"
	}
	if c.Output == "" {
		c.Output = "metadata.csv"
	}
	if c.Database == "" {
		c.Database = "bcrp_runs.db"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 20
	}
}

var flagDebug bool
var flagConfig string

var config Config
var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "bcrp-cli",
	Short: "bcrp-cli harvests the BCRP series catalog and queries series data.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(flagDebug)

		var err error
		config, err = configutil.ReadConfig[Config](flagConfig)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", flagConfig, err)
		}
		applyDefaults(&config)

		tel, err = telemetry.SetupFromEnv(cmd.Context(), "bcrp-cli")
		if err != nil {
			return err
		}
		telemetry.InstrumentPerfStats(cmd.Context())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := tel.Shutdown(context.Background())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "bcrp.json5", "path of the configuration file")
}

func Execute() {
	ctx := osutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
