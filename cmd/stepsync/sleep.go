package stepsync

import (
	"database/sql"
	"fmt"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Manage sleep entries",
}

var (
	sleepDuration float64
	sleepQuality  int
	sleepDate     string
	sleepNotes    string
)

var sleepLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a night of sleep",
	RunE: func(cmd *cobra.Command, args []string) error {
		sleptOn, err := parseDateOrNow(sleepDate)
		if err != nil {
			return err
		}
		in := service.SleepLogInput{
			DurationHours: sleepDuration,
			SleptOn:       sleptOn,
			Notes:         sleepNotes,
		}
		if cmd.Flags().Changed("quality") {
			q := sleepQuality
			in.Quality = &q
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogSleep(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged sleep entry %d\n", id)
			return nil
		})
	},
}

var (
	sleepFromDate string
	sleepToDate   string
	sleepLimit    int
)

var sleepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sleep entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListSleepFilter{
			FromDate: sleepFromDate,
			ToDate:   sleepToDate,
			Limit:    sleepLimit,
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListSleepEntries(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tHOURS\tQUALITY\tNOTES")
			for _, item := range items {
				quality := ""
				if item.Quality != nil {
					quality = fmt.Sprintf("%d", *item.Quality)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f\t%s\t%s\n", item.ID, item.SleptOn, item.DurationHours, quality, item.Notes)
			}
			return nil
		})
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sleep entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("sleep entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteSleepEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sleep entry %d\n", id)
			return nil
		})
	},
}

func init() {
	sleepLogCmd.Flags().Float64Var(&sleepDuration, "duration", 0, "Hours slept (0-24)")
	sleepLogCmd.Flags().IntVar(&sleepQuality, "quality", 0, "Sleep quality rating (1-10)")
	sleepLogCmd.Flags().StringVar(&sleepDate, "date", "", "Date slept (YYYY-MM-DD, default today)")
	sleepLogCmd.Flags().StringVar(&sleepNotes, "notes", "", "Free-form notes")
	_ = sleepLogCmd.MarkFlagRequired("duration")

	sleepListCmd.Flags().StringVar(&sleepFromDate, "from", "", "Start date (YYYY-MM-DD)")
	sleepListCmd.Flags().StringVar(&sleepToDate, "to", "", "End date (YYYY-MM-DD)")
	sleepListCmd.Flags().IntVar(&sleepLimit, "limit", 0, "Maximum rows (default 50)")

	sleepCmd.AddCommand(sleepLogCmd)
	sleepCmd.AddCommand(sleepListCmd)
	sleepCmd.AddCommand(sleepDeleteCmd)
	rootCmd.AddCommand(sleepCmd)
}
