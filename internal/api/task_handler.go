package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ojharitesh/Launch-Navigator/internal/core"
	"github.com/ojharitesh/Launch-Navigator/internal/models"
)

// TaskHandler handles API endpoints for the task catalog and per-user tasks.
type TaskHandler struct {
	taskService core.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(ts core.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: ts, logger: logger}
}

// mapTaskError maps TaskService errors to HTTP responses.
func mapTaskError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, core.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrTaskNotFound.Error(), Details: err.Error()})
	case errors.Is(err, core.ErrUserTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserTaskNotFound.Error()})
	case errors.Is(err, core.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProfileNotFound.Error()})
	case errors.Is(err, core.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: err.Error()})
	default:
		logger.Error("task operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// ListCatalog handles GET /tasks?state=&business_type=.
func (h *TaskHandler) ListCatalog(c *gin.Context) {
	state := c.Query("state")
	businessType := c.Query("business_type")

	result, err := h.taskService.ListCatalog(c.Request.Context(), state, businessType)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, CatalogResponse{Tasks: result.Tasks, Source: result.Source})
}

// SeedCatalog handles POST /tasks/seed: it persists the built-in catalog.
func (h *TaskHandler) SeedCatalog(c *gin.Context) {
	count, err := h.taskService.SeedCatalog(c.Request.Context())
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Task catalog seeded",
		Data:    gin.H{"count": count},
	})
}

// ListUserTasks handles GET /user-tasks.
func (h *TaskHandler) ListUserTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	tasks, progress, err := h.taskService.ListUserTasks(c.Request.Context(), userID)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, UserTasksResponse{Tasks: tasks, Progress: progress})
}

// AssignTasks handles POST /user-tasks: bulk idempotent assignment from a
// list of catalog task IDs.
func (h *TaskHandler) AssignTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req models.AssignTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	tasks, created, err := h.taskService.AssignTasks(c.Request.Context(), userID, req.TaskIDs)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, AssignTasksResponse{Tasks: tasks, NewlyAssigned: created})
}

// ToggleTask handles PATCH /user-tasks/:userTaskId.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	userTaskID := c.Param("userTaskId")
	if userTaskID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User task ID is required"})
		return
	}
	var req models.ToggleTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	userTask, err := h.taskService.ToggleTask(c.Request.Context(), userID, userTaskID, req.Completed)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, userTask)
}

// DashboardStats handles GET /dashboard/stats.
func (h *TaskHandler) DashboardStats(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	stats, err := h.taskService.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		mapTaskError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
