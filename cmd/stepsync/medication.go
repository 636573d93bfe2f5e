package stepsync

import (
	"database/sql"
	"fmt"

	"github.com/Isaloum/StepSyncAI-sub005/internal/service"
	"github.com/spf13/cobra"
)

var medCmd = &cobra.Command{
	Use:   "med",
	Short: "Manage medications and doses",
}

var (
	medName       string
	medDailyDoses int
	medNotes      string
)

var medAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a medication to the regimen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMedication(sqldb, service.AddMedicationInput{
				Name:       medName,
				DailyDoses: medDailyDoses,
				Notes:      medNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added medication %d\n", id)
			return nil
		})
	},
}

var (
	medTakeID   int64
	medTakeDate string
)

var medTakeCmd = &cobra.Command{
	Use:   "take",
	Short: "Record a dose taken",
	RunE: func(cmd *cobra.Command, args []string) error {
		takenAt, err := parseDateOrNow(medTakeDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.TakeMedication(sqldb, medTakeID, takenAt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded dose for medication %d\n", medTakeID)
			return nil
		})
	},
}

var medListArchived bool

var medListCmd = &cobra.Command{
	Use:   "list",
	Short: "List medications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListMedications(sqldb, medListArchived)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tDAILY_DOSES\tSTATUS\tNOTES")
			for _, item := range items {
				status := "active"
				if item.ArchivedAt != nil {
					status = "archived"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%s\t%s\n", item.ID, item.Name, item.DailyDoses, status, item.Notes)
			}
			return nil
		})
	},
}

var medRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Archive a medication",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("medication id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemoveMedication(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived medication %d\n", id)
			return nil
		})
	},
}

func init() {
	medAddCmd.Flags().StringVar(&medName, "name", "", "Medication name")
	medAddCmd.Flags().IntVar(&medDailyDoses, "daily-doses", 1, "Scheduled doses per day")
	medAddCmd.Flags().StringVar(&medNotes, "notes", "", "Free-form notes")
	_ = medAddCmd.MarkFlagRequired("name")

	medTakeCmd.Flags().Int64Var(&medTakeID, "id", 0, "Medication id")
	medTakeCmd.Flags().StringVar(&medTakeDate, "date", "", "Date taken (YYYY-MM-DD, default now)")
	_ = medTakeCmd.MarkFlagRequired("id")

	medListCmd.Flags().BoolVar(&medListArchived, "all", false, "Include archived medications")

	medCmd.AddCommand(medAddCmd)
	medCmd.AddCommand(medTakeCmd)
	medCmd.AddCommand(medListCmd)
	medCmd.AddCommand(medRemoveCmd)
	rootCmd.AddCommand(medCmd)
}
