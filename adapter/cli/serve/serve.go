// Package serve runs the HTTP API server from the CLI.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskrankhq/taskrank/adapter/api"
	"github.com/taskrankhq/taskrank/adapter/cli"
)

var addr string

// Cmd starts the HTTP API server.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server exposing the scoring endpoints and the task
record store. The server shuts down gracefully on context cancellation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		handler := api.NewTaskHandler(api.TaskHandlerConfig{
			Analyzer:   app.Analyzer,
			CreateTask: app.CreateTaskHandler,
			UpdateTask: app.UpdateTaskHandler,
			DeleteTask: app.DeleteTaskHandler,
			ListTasks:  app.ListTasksHandler,
			GetTask:    app.GetTaskHandler,
		})

		cfg := api.DefaultServerConfig()
		if addr != "" {
			cfg.Addr = addr
		} else if app.HTTPAddr != "" {
			cfg.Addr = app.HTTPAddr
		}

		server := api.NewServer(cfg, handler, nil)

		errCh := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")
}
