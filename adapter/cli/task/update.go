package task

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/commands"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

var (
	updateTitle      string
	updateDue        string
	updateHours      float64
	updateImportance int
	updateDepends    []string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a task",
	Long:  `Update one or more fields of a stored task. Only flags that are set are applied.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		update := commands.UpdateTaskCommand{TaskID: id}
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitle
		}
		if cmd.Flags().Changed("due") {
			due, err := value_objects.ParseDate(updateDue)
			if err != nil {
				return err
			}
			update.DueDate = &due
		}
		if cmd.Flags().Changed("hours") {
			update.EstimatedHours = &updateHours
		}
		if cmd.Flags().Changed("importance") {
			update.Importance = &updateImportance
		}
		if cmd.Flags().Changed("depends") {
			update.Dependencies = updateDepends
			update.SetDeps = true
		}

		if err := app.UpdateTaskHandler.Handle(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task updated: %s\n", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().Float64Var(&updateHours, "hours", 0, "new effort estimate in hours")
	updateCmd.Flags().IntVar(&updateImportance, "importance", 0, "new importance rating, 1-10")
	updateCmd.Flags().StringSliceVar(&updateDepends, "depends", nil, "replacement dependency list")
}
