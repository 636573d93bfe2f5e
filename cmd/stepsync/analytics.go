package stepsync

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Isaloum/StepSyncAI-sub005/internal/analytics"
	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics <mode> [days] [daysAhead]",
	Short: "StepSyncAI Advanced Analytics",
	Long:  "StepSyncAI Advanced Analytics\n\nCorrelation, trend, prediction, and anomaly analytics over your tracked wellness data.",
	Args:  cobra.ArbitraryArgs,
	// An unknown or missing mode shows the mode list and succeeds.
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var analyticsJSON bool

// windowArg reads the optional positional [days], falling back to the
// configured window on anything that is not a positive integer.
func windowArg(args []string) int {
	if len(args) < 1 {
		return cfg.Analytics.WindowDays
	}
	return parsePositiveIntOr(args[0], cfg.Analytics.WindowDays)
}

func horizonArg(args []string) int {
	if len(args) < 2 {
		return cfg.Analytics.HorizonDays
	}
	return parsePositiveIntOr(args[1], cfg.Analytics.HorizonDays)
}

func newComposer(sqldb *sql.DB, windowDays, horizonDays int) *analytics.Composer {
	series := analytics.Aggregate(service.AnalyticsSources(sqldb), time.Now(), windowDays)
	return analytics.NewComposer(series, windowDays, horizonDays, cfg.Analytics.ZThreshold)
}

// runAnalytics opens the database, builds a composer over the requested
// window, and prints whatever section render produces.
func runAnalytics(cmd *cobra.Command, args []string, render func(*analytics.Composer) string) error {
	return withDB(func(sqldb *sql.DB) error {
		c := newComposer(sqldb, windowArg(args), horizonArg(args))
		fmt.Fprintln(cmd.OutOrStdout(), render(c))
		return nil
	})
}

var analyticsDashboardCmd = &cobra.Command{
	Use:   "dashboard [days]",
	Short: "Per-metric summary table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, (*analytics.Composer).Dashboard)
	},
}

var analyticsCorrelationsCmd = &cobra.Command{
	Use:   "correlations [days]",
	Short: "Correlations across all tracked metric pairs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, (*analytics.Composer).Correlations)
	},
}

var analyticsTrendsCmd = &cobra.Command{
	Use:   "trends [days]",
	Short: "Trend direction per metric",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, (*analytics.Composer).Trends)
	},
}

var analyticsSleepExerciseCmd = &cobra.Command{
	Use:   "sleep-exercise [days]",
	Short: "Sleep quality vs exercise correlation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, func(c *analytics.Composer) string {
			return c.PairReport(analytics.PairSleepExercise)
		})
	},
}

var analyticsMoodSleepCmd = &cobra.Command{
	Use:   "mood-sleep [days]",
	Short: "Mood vs sleep quality correlation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, func(c *analytics.Composer) string {
			return c.PairReport(analytics.PairMoodSleep)
		})
	},
}

var analyticsMoodExerciseCmd = &cobra.Command{
	Use:   "mood-exercise [days]",
	Short: "Mood vs exercise correlation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, func(c *analytics.Composer) string {
			return c.PairReport(analytics.PairMoodExercise)
		})
	},
}

var analyticsPredictCmd = &cobra.Command{
	Use:   "predict [days] [daysAhead]",
	Short: "Forecast each metric from its recent trend line",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, (*analytics.Composer).Predictions)
	},
}

var analyticsAnomaliesCmd = &cobra.Command{
	Use:   "anomalies [days]",
	Short: "Flag unusual days per metric",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd, args, (*analytics.Composer).Anomalies)
	},
}

var analyticsReportCmd = &cobra.Command{
	Use:   "report [days] [daysAhead]",
	Short: "Comprehensive analytics report",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !analyticsJSON {
			return runAnalytics(cmd, args, (*analytics.Composer).Report)
		}
		return withDB(func(sqldb *sql.DB) error {
			c := newComposer(sqldb, windowArg(args), horizonArg(args))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(c.Data())
		})
	},
}

func init() {
	analyticsReportCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Emit the report as JSON")

	analyticsCmd.AddCommand(analyticsDashboardCmd)
	analyticsCmd.AddCommand(analyticsCorrelationsCmd)
	analyticsCmd.AddCommand(analyticsTrendsCmd)
	analyticsCmd.AddCommand(analyticsSleepExerciseCmd)
	analyticsCmd.AddCommand(analyticsMoodSleepCmd)
	analyticsCmd.AddCommand(analyticsMoodExerciseCmd)
	analyticsCmd.AddCommand(analyticsPredictCmd)
	analyticsCmd.AddCommand(analyticsAnomaliesCmd)
	analyticsCmd.AddCommand(analyticsReportCmd)
	rootCmd.AddCommand(analyticsCmd)
}
