package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CreateMotivationRequest struct {
	TaskID  uint   `json:"task_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type UpdateMotivationRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type MotivationHandler struct {
	motivations *services.MotivationService
}

func NewMotivationHandler(motivations *services.MotivationService) *MotivationHandler {
	return &MotivationHandler{motivations: motivations}
}

func (h *MotivationHandler) Create(ctx *gin.Context) {
	var req CreateMotivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	motivation, err := h.motivations.Create(ctx.Request.Context(), models.Motivation{
		TaskID:  req.TaskID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, motivation)
}

func (h *MotivationHandler) Update(ctx *gin.Context) {
	motivationID, ok := parseID(ctx, "motivation_id")
	if !ok {
		return
	}

	var req UpdateMotivationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.MotivationValues{Rating: req.Rating, Comment: req.Comment}
	if err := h.motivations.Update(ctx.Request.Context(), motivationID, values); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "motivation updated successfully"})
}

func (h *MotivationHandler) Delete(ctx *gin.Context) {
	motivationID, ok := parseID(ctx, "motivation_id")
	if !ok {
		return
	}

	if err := h.motivations.Delete(ctx.Request.Context(), motivationID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "motivation deleted successfully"})
}

func (h *MotivationHandler) Get(ctx *gin.Context) {
	motivationID, ok := parseID(ctx, "motivation_id")
	if !ok {
		return
	}

	motivation, err := h.motivations.Get(ctx.Request.Context(), motivationID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, motivation)
}

// GetByTask is consumed by the user service when it assembles a user's
// per-task ratings. A task without a motivation is a 404, not an error body.
func (h *MotivationHandler) GetByTask(ctx *gin.Context) {
	taskID, ok := parseID(ctx, "task_id")
	if !ok {
		return
	}

	motivation, err := h.motivations.GetByTask(ctx.Request.Context(), taskID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, motivation)
}

func (h *MotivationHandler) All(ctx *gin.Context) {
	motivations, err := h.motivations.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, motivations)
}
