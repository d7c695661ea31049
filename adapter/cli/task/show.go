package task

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		t, err := app.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: id})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", t.Title)
		fmt.Fprintf(out, "  id: %s\n", t.ID)
		fmt.Fprintf(out, "  due: %s\n", t.DueDate)
		fmt.Fprintf(out, "  estimated hours: %.1f\n", t.EstimatedHours)
		fmt.Fprintf(out, "  importance: %d\n", t.Importance)
		if len(t.Dependencies) > 0 {
			fmt.Fprintf(out, "  dependencies: %s\n", strings.Join(t.Dependencies, ", "))
		}
		fmt.Fprintf(out, "  created: %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}
