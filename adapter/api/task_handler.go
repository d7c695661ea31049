package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/application/commands"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/queries"
	"github.com/taskrankhq/taskrank/internal/prioritize/application/services"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// TaskHandler handles task API requests.
type TaskHandler struct {
	analyzer   *services.Analyzer
	createTask *commands.CreateTaskHandler
	updateTask *commands.UpdateTaskHandler
	deleteTask *commands.DeleteTaskHandler
	listTasks  *queries.ListTasksHandler
	getTask    *queries.GetTaskHandler
	logger     *slog.Logger
}

// TaskHandlerConfig holds dependencies for the task handler.
type TaskHandlerConfig struct {
	Analyzer   *services.Analyzer
	CreateTask *commands.CreateTaskHandler
	UpdateTask *commands.UpdateTaskHandler
	DeleteTask *commands.DeleteTaskHandler
	ListTasks  *queries.ListTasksHandler
	GetTask    *queries.GetTaskHandler
	Logger     *slog.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(cfg TaskHandlerConfig) *TaskHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = services.NewAnalyzer(nil)
	}
	return &TaskHandler{
		analyzer:   cfg.Analyzer,
		createTask: cfg.CreateTask,
		updateTask: cfg.UpdateTask,
		deleteTask: cfg.DeleteTask,
		listTasks:  cfg.ListTasks,
		getTask:    cfg.GetTask,
		logger:     cfg.Logger,
	}
}

// analyzeRequest is the body of the analyze and suggest endpoints.
type analyzeRequest struct {
	Tasks    []services.TaskDescription `json:"tasks"`
	Strategy string                     `json:"strategy"`
}

// AnalyzeTasks handles POST /api/v1/tasks/analyze.
func (h *TaskHandler) AnalyzeTasks(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	analysis, err := h.analyzer.Analyze(req.Tasks, req.Strategy)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// SuggestTasks handles POST /api/v1/tasks/suggest.
func (h *TaskHandler) SuggestTasks(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.analyzer.Suggest(req.Tasks, req.Strategy)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeAnalysisError maps analyzer failures onto the error surface:
// empty batches and validation failures are client errors reported with
// their structured details, everything else is internal.
func (h *TaskHandler) writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrEmptyBatch) {
		writeError(w, http.StatusBadRequest, "No tasks provided")
		return
	}

	var validationErr *services.BatchValidationError
	if errors.As(err, &validationErr) {
		details := make(map[string][]string, len(validationErr.Failures))
		for _, failure := range validationErr.Failures {
			details[fmt.Sprintf("task_%d", failure.Index)] = failure.Messages
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation failed",
			"details": details,
		})
		return
	}

	h.logger.Error("task analysis failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Failed to analyze tasks")
}

// createTaskRequest is the body of the task creation endpoint.
type createTaskRequest struct {
	Title          string              `json:"title"`
	DueDate        *value_objects.Date `json:"due_date"`
	EstimatedHours float64             `json:"estimated_hours"`
	Importance     int                 `json:"importance"`
	Dependencies   []string            `json:"dependencies"`
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.DueDate == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: due_date")
		return
	}

	result, err := h.createTask.Handle(r.Context(), commands.CreateTaskCommand{
		Title:          req.Title,
		DueDate:        *req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Importance:     req.Importance,
		Dependencies:   req.Dependencies,
	})
	if err != nil {
		if isDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create task", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": result.TaskID.String()})
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	query := queries.ListTasksQuery{
		SortBy:    r.URL.Query().Get("sort"),
		SortOrder: r.URL.Query().Get("order"),
	}

	tasks, err := h.listTasks.Handle(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTask handles GET /api/v1/tasks/{taskID}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	dto, err := h.getTask.Handle(r.Context(), queries.GetTaskQuery{TaskID: id})
	if err != nil {
		h.writeRepoError(w, err, "failed to get task")
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// updateTaskRequest is the body of the task update endpoint. Absent fields
// are left unchanged; a present dependencies field replaces the list.
type updateTaskRequest struct {
	Title          *string             `json:"title"`
	DueDate        *value_objects.Date `json:"due_date"`
	EstimatedHours *float64            `json:"estimated_hours"`
	Importance     *int                `json:"importance"`
	Dependencies   *[]string           `json:"dependencies"`
}

// UpdateTask handles PUT /api/v1/tasks/{taskID}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	cmd := commands.UpdateTaskCommand{
		TaskID:         id,
		Title:          req.Title,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Importance:     req.Importance,
	}
	if req.Dependencies != nil {
		cmd.Dependencies = *req.Dependencies
		cmd.SetDeps = true
	}

	if err := h.updateTask.Handle(r.Context(), cmd); err != nil {
		if isDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeRepoError(w, err, "failed to update task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/v1/tasks/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.deleteTask.Handle(r.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
		h.writeRepoError(w, err, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("taskID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task identifier")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TaskHandler) writeRepoError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, task.ErrTaskNotFound) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	h.logger.Error(logMsg, "error", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func isDomainError(err error) bool {
	return errors.Is(err, task.ErrEmptyTitle) ||
		errors.Is(err, task.ErrImportanceRange) ||
		errors.Is(err, task.ErrEstimatedTooSmall) ||
		errors.Is(err, task.ErrMissingDueDate)
}
