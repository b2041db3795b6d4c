package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CreateMeetingRequest struct {
	OrganisationBy uint      `json:"organisation_by" binding:"required"`
	StartAt        time.Time `json:"start_at" binding:"required"`
	EndAt          time.Time `json:"end_at" binding:"required"`
}

type UpdateMeetingRequest struct {
	OrganisationBy *uint      `json:"organisation_by"`
	StartAt        *time.Time `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
}

type CreateParticipantRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type MeetingHandler struct {
	meetings *services.MeetingService
}

func NewMeetingHandler(meetings *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

func (h *MeetingHandler) Create(ctx *gin.Context) {
	var req CreateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.meetings.Create(ctx.Request.Context(), models.Meeting{
		OrganisationBy: req.OrganisationBy,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

// Update answers with the updated row, unlike the other write endpoints.
func (h *MeetingHandler) Update(ctx *gin.Context) {
	meetingID, ok := parseID(ctx, "meeting_id")
	if !ok {
		return
	}

	var req UpdateMeetingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.MeetingValues{
		OrganisationBy: req.OrganisationBy,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
	}
	if err := h.meetings.Update(ctx.Request.Context(), meetingID, values); err != nil {
		respondError(ctx, err)
		return
	}

	meeting, err := h.meetings.Get(ctx.Request.Context(), meetingID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) Delete(ctx *gin.Context) {
	meetingID, ok := parseID(ctx, "meeting_id")
	if !ok {
		return
	}

	if err := h.meetings.Delete(ctx.Request.Context(), meetingID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "meeting deleted successfully"})
}

func (h *MeetingHandler) Get(ctx *gin.Context) {
	meetingID, ok := parseID(ctx, "meeting_id")
	if !ok {
		return
	}

	meeting, err := h.meetings.Get(ctx.Request.Context(), meetingID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) All(ctx *gin.Context) {
	meetings, err := h.meetings.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) CreateParticipant(ctx *gin.Context) {
	var req CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.meetings.CreateParticipant(ctx.Request.Context(), req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

func (h *MeetingHandler) DeleteParticipant(ctx *gin.Context) {
	participantID, ok := parseID(ctx, "participant_id")
	if !ok {
		return
	}

	if err := h.meetings.DeleteParticipant(ctx.Request.Context(), participantID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "participant deleted successfully"})
}

func (h *MeetingHandler) GetParticipant(ctx *gin.Context) {
	participantID, ok := parseID(ctx, "participant_id")
	if !ok {
		return
	}

	participant, err := h.meetings.GetParticipant(ctx.Request.Context(), participantID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

func (h *MeetingHandler) AllParticipants(ctx *gin.Context) {
	participants, err := h.meetings.AllParticipants(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, participants)
}
