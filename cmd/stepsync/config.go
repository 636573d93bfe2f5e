package stepsync

import (
	"database/sql"
	"fmt"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stepsync local configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetConfig(sqldb, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			value, err := service.GetConfig(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored and effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) > 0 {
				fmt.Fprintln(out, "Stored:")
				for _, e := range entries {
					fmt.Fprintf(out, "  %s = %s\n", e.Key, e.Value)
				}
			}
			fmt.Fprintln(out, "Effective analytics settings:")
			fmt.Fprintf(out, "  window_days = %d\n", cfg.Analytics.WindowDays)
			fmt.Fprintf(out, "  horizon_days = %d\n", cfg.Analytics.HorizonDays)
			fmt.Fprintf(out, "  z_threshold = %.1f\n", cfg.Analytics.ZThreshold)
			return nil
		})
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
