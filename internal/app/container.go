// Package app wires configuration, storage, and handlers together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskrankhq/taskrank/internal/prioritize/application/commands"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/services"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/shared/infrastructure/database"
	"github.com/taskrankhq/taskrank/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	TaskRepo task.Repository
	Analyzer *services.Analyzer

	// Task command handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler

	// Task query handlers
	ListTasksHandler    *queries.ListTasksHandler
	GetTaskHandler      *queries.GetTaskHandler
	AnalyzeTasksHandler *queries.AnalyzeTasksHandler
	SuggestTasksHandler *queries.SuggestTasksHandler

	conn database.Connection
}

// NewContainer initializes all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := database.NewConnection(ctx, database.Config{
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
		MaxConns:   cfg.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	taskRepo, err := newTaskRepository(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	logger.Debug("database ready", "driver", conn.Driver().String())

	analyzer := services.NewAnalyzer(services.NewEngine())

	return &Container{
		Config:   cfg,
		Logger:   logger,
		TaskRepo: taskRepo,
		Analyzer: analyzer,

		CreateTaskHandler: commands.NewCreateTaskHandler(taskRepo),
		UpdateTaskHandler: commands.NewUpdateTaskHandler(taskRepo),
		DeleteTaskHandler: commands.NewDeleteTaskHandler(taskRepo),

		ListTasksHandler:    queries.NewListTasksHandler(taskRepo),
		GetTaskHandler:      queries.NewGetTaskHandler(taskRepo),
		AnalyzeTasksHandler: queries.NewAnalyzeTasksHandler(taskRepo, analyzer),
		SuggestTasksHandler: queries.NewSuggestTasksHandler(taskRepo, analyzer),

		conn: conn,
	}, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
