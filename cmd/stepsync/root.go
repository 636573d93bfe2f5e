package stepsync

import (
	"fmt"
	"os"

	"github.com/Isaloum/StepSyncAI-sub005/internal/config"
	"github.com/Isaloum/StepSyncAI-sub005/internal/logging"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	verbose    bool

	// cfg is resolved once per invocation before any subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "stepsync",
	Short: "stepsync tracks sleep, mood, exercise, and medication from your terminal",
	Long:  "stepsync is a local-first wellness tracking CLI with correlation, trend, prediction, and anomaly analytics over your own data.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.Default()
		}
		cfg = loaded
		logging.Setup(cfg.Logging.Level, verbose)
		if err != nil {
			logger := logging.Global()
			logger.Warn().Err(err).Msg("config load failed, using defaults")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
