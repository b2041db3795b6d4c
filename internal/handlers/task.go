package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/middleware"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CreateTaskRequest struct {
	Title      string    `json:"title" binding:"required,max=100"`
	Content    string    `json:"content" binding:"required"`
	AssignedTo uint      `json:"assigned_to" binding:"required"`
	Deadline   time.Time `json:"deadline" binding:"required"`
	Comment    string    `json:"comment"`
	Status     string    `json:"status"`
}

type UpdateTaskRequest struct {
	Title      *string    `json:"title" binding:"omitempty,max=100"`
	Content    *string    `json:"content"`
	AssignedTo *uint      `json:"assigned_to"`
	Deadline   *time.Time `json:"deadline"`
	Comment    *string    `json:"comment"`
	Status     *string    `json:"status"`
}

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(ctx.Request.Context(), models.Task{
		Title:      req.Title,
		Content:    req.Content,
		AssignedBy: principal.ID,
		AssignedTo: req.AssignedTo,
		Deadline:   req.Deadline,
		Comment:    req.Comment,
		Status:     models.TaskStatus(req.Status),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// Update keeps task_id in the query string, which is what the user
// service's client sends.
func (h *TaskHandler) Update(ctx *gin.Context) {
	taskID, ok := parseQueryID(ctx, "task_id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.TaskValues{
		Title:      req.Title,
		Content:    req.Content,
		AssignedTo: req.AssignedTo,
		Deadline:   req.Deadline,
		Comment:    req.Comment,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		values.Status = &status
	}

	if err := h.tasks.Update(ctx.Request.Context(), taskID, values); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task updated successfully"})
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	taskID, ok := parseID(ctx, "task_id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(ctx.Request.Context(), taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func (h *TaskHandler) Get(ctx *gin.Context) {
	taskID, ok := parseID(ctx, "task_id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(ctx.Request.Context(), taskID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (h *TaskHandler) All(ctx *gin.Context) {
	tasks, err := h.tasks.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}
