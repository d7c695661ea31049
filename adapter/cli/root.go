package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

// SetLogger installs the logger used by CLI commands.
func SetLogger(l *slog.Logger) {
	logger = l
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskrank",
	Short: "taskrank - priority scoring for your tasks",
	Long: `taskrank ranks tasks by a computed priority score so the most
urgent, important, and efficient work surfaces first. Tasks are scored on
due date, importance, estimated effort, and how much other work they block,
under a selectable weighting strategy.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("command start", "command", cmd.CommandPath(), "started_at", time.Now())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Root returns the root command for subcommand registration.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
