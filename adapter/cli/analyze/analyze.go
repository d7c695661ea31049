// Package analyze provides the CLI surface of the scoring engine.
package analyze

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
)

var strategy string

// Cmd scores every stored task and prints them by descending priority.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score stored tasks by priority",
	Long: `Score every stored task under the selected strategy and print them
sorted by descending priority score.

Strategies: smart_balance (default), fastest_wins, high_impact, deadline_driven.
Unknown strategy names fall back to smart_balance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AnalyzeTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		analysis, err := app.AnalyzeTasksHandler.Handle(cmd.Context(), queries.AnalyzeTasksQuery{
			Strategy: strategyOrDefault(app),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		scoreColor := color.New(color.FgGreen, color.Bold)
		warnColor := color.New(color.FgRed, color.Bold)

		fmt.Fprintf(out, "Strategy: %s\n\n", analysis.StrategyUsed)
		for _, t := range analysis.Tasks {
			scoreColor.Fprintf(out, "%7.2f", t.PriorityScore)
			fmt.Fprintf(out, "  %s\n", deref(t.Title))
			fmt.Fprintf(out, "         urgency %.0f, importance %.0f, effort %.0f, dependencies %.0f\n",
				t.ScoreBreakdown.UrgencyScore,
				t.ScoreBreakdown.ImportanceScore,
				t.ScoreBreakdown.EffortScore,
				t.ScoreBreakdown.DependencyScore,
			)
			fmt.Fprintf(out, "         %s\n", t.Explanation)
		}

		if len(analysis.CircularDependencies) > 0 {
			warnColor.Fprint(out, "\nCircular dependencies detected: ")
			fmt.Fprintln(out, analysis.CircularDependencies)
		}
		fmt.Fprintf(out, "\n%d task(s) analyzed\n", analysis.TotalTasks)
		return nil
	},
}

func strategyOrDefault(app *cli.App) string {
	if strategy != "" {
		return strategy
	}
	return app.DefaultStrategy
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	Cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "weighting strategy")
}
