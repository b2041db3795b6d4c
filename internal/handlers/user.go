package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/middleware"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
	"github.com/crewbase-dev/crewbase/internal/taskclient"
)

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

type UpdateStatusRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UserHandler struct {
	users *services.UserService
	tasks *services.UserTasksService
}

func NewUserHandler(users *services.UserService, tasks *services.UserTasksService) *UserHandler {
	return &UserHandler{users: users, tasks: tasks}
}

func (h *UserHandler) Get(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

// Update edits the caller's own profile; the caller's identity is the
// filter, so nobody can edit anyone else here.
func (h *UserHandler) Update(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.UserValues{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := h.users.UpdateUser(ctx.Request.Context(), principal.ID, values); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user updated successfully"})
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

func (h *UserHandler) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.users.UpdateStatus(ctx.Request.Context(), req.UserID, models.UserStatus(req.Status))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user status updated successfully"})
}

func (h *UserHandler) MyTasks(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	tasks, err := h.tasks.TasksFor(ctx.Request.Context(), principal.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *UserHandler) UpdateMyTask(ctx *gin.Context) {
	taskID, ok := parseQueryID(ctx, "task_id")
	if !ok {
		return
	}

	var update taskclient.TaskUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tasks.UpdateTask(ctx.Request.Context(), taskID, update); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task updated successfully"})
}

func (h *UserHandler) DeleteMyTask(ctx *gin.Context) {
	taskID, ok := parseQueryID(ctx, "task_id")
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(ctx.Request.Context(), taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func (h *UserHandler) MyMotivation(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	grades, err := h.tasks.Motivation(ctx.Request.Context(), principal.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, grades)
}

func (h *UserHandler) MyQuarterlyMotivation(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	average, err := h.tasks.QuarterlyMotivation(ctx.Request.Context(), principal.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"average_rating": average})
}
