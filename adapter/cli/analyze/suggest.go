package analyze

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
)

var suggestStrategy string

// SuggestCmd prints the top-ranked tasks to work on today.
var SuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest what to work on today",
	Long:  `Score every stored task and print the top three with a short reason to work on each today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SuggestTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		name := suggestStrategy
		if name == "" {
			name = app.DefaultStrategy
		}

		result, err := app.SuggestTasksHandler.Handle(cmd.Context(), queries.SuggestTasksQuery{
			Strategy: name,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rankColor := color.New(color.FgCyan, color.Bold)

		fmt.Fprintf(out, "Strategy: %s\n\n", result.StrategyUsed)
		for _, s := range result.Suggestions {
			rankColor.Fprintf(out, "%d.", s.Rank)
			fmt.Fprintf(out, " %s (%.2f)\n", deref(s.Title), s.PriorityScore)
			fmt.Fprintf(out, "   %s\n", s.Reason)
		}
		return nil
	},
}

func init() {
	SuggestCmd.Flags().StringVarP(&suggestStrategy, "strategy", "s", "", "weighting strategy")
}
