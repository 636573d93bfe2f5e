package stepsync

import (
	"database/sql"
	"fmt"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercise logs",
}

var (
	exerciseType     string
	exerciseDuration int
	exerciseDate     string
	exerciseNotes    string
)

var exerciseLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an exercise session",
	RunE: func(cmd *cobra.Command, args []string) error {
		performedAt, err := parseDateOrNow(exerciseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogExercise(sqldb, service.ExerciseLogInput{
				ExerciseType: exerciseType,
				DurationMin:  exerciseDuration,
				PerformedAt:  performedAt,
				Notes:        exerciseNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged exercise %d\n", id)
			return nil
		})
	},
}

var (
	exerciseFromDate string
	exerciseToDate   string
	exerciseListType string
	exerciseLimit    int
)

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListExerciseFilter{
			FromDate:     exerciseFromDate,
			ToDate:       exerciseToDate,
			ExerciseType: exerciseListType,
			Limit:        exerciseLimit,
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListExerciseLogs(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tPERFORMED_AT\tTYPE\tDURATION_MIN\tNOTES")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\n", item.ID, item.PerformedAt.Local().Format("2006-01-02 15:04"), item.ExerciseType, item.DurationMin, item.Notes)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteExerciseLog(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise log %d\n", id)
			return nil
		})
	},
}

func init() {
	exerciseLogCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (e.g. running)")
	exerciseLogCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseLogCmd.Flags().StringVar(&exerciseDate, "date", "", "Date performed (YYYY-MM-DD, default now)")
	exerciseLogCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Free-form notes")
	_ = exerciseLogCmd.MarkFlagRequired("type")
	_ = exerciseLogCmd.MarkFlagRequired("duration")

	exerciseListCmd.Flags().StringVar(&exerciseFromDate, "from", "", "Start date (YYYY-MM-DD)")
	exerciseListCmd.Flags().StringVar(&exerciseToDate, "to", "", "End date (YYYY-MM-DD)")
	exerciseListCmd.Flags().StringVar(&exerciseListType, "type", "", "Filter by exercise type")
	exerciseListCmd.Flags().IntVar(&exerciseLimit, "limit", 0, "Maximum rows (default 50)")

	exerciseCmd.AddCommand(exerciseLogCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
