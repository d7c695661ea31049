package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
)

var (
	sortBy    string
	sortOrder string
	limit     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			SortBy:    sortBy,
			SortOrder: sortOrder,
			Limit:     limit,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks stored.")
			return nil
		}

		for _, t := range tasks {
			fmt.Fprintf(out, "%s  %s\n", t.ID, t.Title)
			fmt.Fprintf(out, "    due %s, %.1fh, importance %d", t.DueDate, t.EstimatedHours, t.Importance)
			if len(t.Dependencies) > 0 {
				fmt.Fprintf(out, ", depends on %s", strings.Join(t.Dependencies, ", "))
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "\n%d task(s)\n", len(tasks))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&sortBy, "sort", "created_at", "sort field (created_at, due_date)")
	listCmd.Flags().StringVar(&sortOrder, "order", "desc", "sort order (asc, desc)")
	listCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of tasks to show (0 = all)")
}
