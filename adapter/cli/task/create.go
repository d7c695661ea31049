package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/commands"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

var (
	dueDate      string
	hours        float64
	importance   int
	dependencies []string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a new task with a title, due date, effort estimate, and
importance rating.

Examples:
  taskrank task create "Finish project report" --due 2026-09-05 --hours 2 --importance 8
  taskrank task create "Review PR" --due 2026-09-01 --hours 0.5 --importance 5 --depends <id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		due, err := value_objects.ParseDate(dueDate)
		if err != nil {
			return err
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
			Title:          args[0],
			DueDate:        due,
			EstimatedHours: hours,
			Importance:     importance,
			Dependencies:   dependencies,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task created: %s\n", result.TaskID)
		fmt.Fprintf(out, "  title: %s\n", args[0])
		fmt.Fprintf(out, "  due: %s\n", due)
		fmt.Fprintf(out, "  estimated hours: %.1f\n", hours)
		fmt.Fprintf(out, "  importance: %d\n", importance)
		if len(dependencies) > 0 {
			fmt.Fprintf(out, "  dependencies: %d\n", len(dependencies))
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	createCmd.Flags().Float64Var(&hours, "hours", 1, "estimated effort in hours (minimum 0.5)")
	createCmd.Flags().IntVar(&importance, "importance", 5, "importance rating, 1-10")
	createCmd.Flags().StringSliceVar(&dependencies, "depends", nil, "identifiers of tasks this one depends on")
	_ = createCmd.MarkFlagRequired("due")
}
