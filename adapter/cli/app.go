package cli

import (
	"github.com/taskrankhq/taskrank/internal/prioritize/application/commands"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/services"
)

// App holds the CLI application dependencies.
type App struct {
	// Task command handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler

	// Task query handlers
	ListTasksHandler    *queries.ListTasksHandler
	GetTaskHandler      *queries.GetTaskHandler
	AnalyzeTasksHandler *queries.AnalyzeTasksHandler
	SuggestTasksHandler *queries.SuggestTasksHandler

	// Scoring
	Analyzer        *services.Analyzer
	DefaultStrategy string

	// HTTP API
	HTTPAddr string
}

var currentApp *App

// SetApp installs the application dependencies for command handlers.
func SetApp(app *App) {
	currentApp = app
}

// GetApp returns the installed application, or nil when running without a
// database connection.
func GetApp() *App {
	return currentApp
}
