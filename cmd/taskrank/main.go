package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskrankhq/taskrank/adapter/cli"
	"github.com/taskrankhq/taskrank/adapter/cli/analyze"
	"github.com/taskrankhq/taskrank/adapter/cli/serve"
	"github.com/taskrankhq/taskrank/adapter/cli/task"
	"github.com/taskrankhq/taskrank/internal/app"
	"github.com/taskrankhq/taskrank/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateTaskHandler:   container.CreateTaskHandler,
		UpdateTaskHandler:   container.UpdateTaskHandler,
		DeleteTaskHandler:   container.DeleteTaskHandler,
		ListTasksHandler:    container.ListTasksHandler,
		GetTaskHandler:      container.GetTaskHandler,
		AnalyzeTasksHandler: container.AnalyzeTasksHandler,
		SuggestTasksHandler: container.SuggestTasksHandler,
		Analyzer:            container.Analyzer,
		DefaultStrategy:     cfg.DefaultStrategy,
		HTTPAddr:            cfg.HTTPAddr,
	})

	root := cli.Root()
	root.AddCommand(task.Cmd)
	root.AddCommand(analyze.Cmd)
	root.AddCommand(analyze.SuggestCmd)
	root.AddCommand(serve.Cmd)
	root.SetContext(ctx)

	cli.Execute()
}
