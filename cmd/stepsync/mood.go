package stepsync

import (
	"database/sql"
	"fmt"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Manage mood check-ins",
}

var (
	moodRating int
	moodDate   string
	moodNotes  string
)

var moodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a mood rating",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateOrNow(moodDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogMood(sqldb, service.MoodLogInput{
				Rating:   moodRating,
				LoggedAt: loggedAt,
				Notes:    moodNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged mood entry %d\n", id)
			return nil
		})
	},
}

var (
	moodFromDate string
	moodToDate   string
	moodLimit    int
)

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListMoodFilter{
			FromDate: moodFromDate,
			ToDate:   moodToDate,
			Limit:    moodLimit,
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListMoodEntries(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tLOGGED_AT\tRATING\tNOTES")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%s\n", item.ID, item.LoggedAt.Local().Format("2006-01-02 15:04"), item.Rating, item.Notes)
			}
			return nil
		})
	},
}

var moodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a mood entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("mood entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteMoodEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted mood entry %d\n", id)
			return nil
		})
	},
}

func init() {
	moodLogCmd.Flags().IntVar(&moodRating, "rating", 0, "Mood rating (1-10)")
	moodLogCmd.Flags().StringVar(&moodDate, "date", "", "Date of the check-in (YYYY-MM-DD, default now)")
	moodLogCmd.Flags().StringVar(&moodNotes, "notes", "", "Free-form notes")
	_ = moodLogCmd.MarkFlagRequired("rating")

	moodListCmd.Flags().StringVar(&moodFromDate, "from", "", "Start date (YYYY-MM-DD)")
	moodListCmd.Flags().StringVar(&moodToDate, "to", "", "End date (YYYY-MM-DD)")
	moodListCmd.Flags().IntVar(&moodLimit, "limit", 0, "Maximum rows (default 50)")

	moodCmd.AddCommand(moodLogCmd)
	moodCmd.AddCommand(moodListCmd)
	moodCmd.AddCommand(moodDeleteCmd)
	rootCmd.AddCommand(moodCmd)
}
