package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CreateStructureRequest struct {
	Name      string `json:"name" binding:"required,max=50"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

type UpdateStructureRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	CompanyID *uint   `json:"company_id"`
}

type CreateMemberRequest struct {
	UserID      *uint  `json:"user_id"`
	StructureID uint   `json:"structure_id" binding:"required"`
	ManagerID   *uint  `json:"manager_id"`
	Role        string `json:"role"`
}

type UpdateMemberRequest struct {
	UserID      *uint   `json:"user_id"`
	StructureID *uint   `json:"structure_id"`
	ManagerID   *uint   `json:"manager_id"`
	Role        *string `json:"role"`
}

type StructureHandler struct {
	structures *services.StructureService
}

func NewStructureHandler(structures *services.StructureService) *StructureHandler {
	return &StructureHandler{structures: structures}
}

func (h *StructureHandler) Create(ctx *gin.Context) {
	var req CreateStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	structure, err := h.structures.Create(ctx.Request.Context(), req.Name, req.CompanyID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, structure)
}

func (h *StructureHandler) Update(ctx *gin.Context) {
	structureID, ok := parseID(ctx, "structure_id")
	if !ok {
		return
	}

	var req UpdateStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.StructureValues{Name: req.Name, CompanyID: req.CompanyID}
	if err := h.structures.Update(ctx.Request.Context(), structureID, values); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "structure updated successfully"})
}

func (h *StructureHandler) Delete(ctx *gin.Context) {
	structureID, ok := parseID(ctx, "structure_id")
	if !ok {
		return
	}

	if err := h.structures.Delete(ctx.Request.Context(), structureID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "structure deleted successfully"})
}

func (h *StructureHandler) Get(ctx *gin.Context) {
	structureID, ok := parseID(ctx, "structure_id")
	if !ok {
		return
	}

	structure, err := h.structures.Get(ctx.Request.Context(), structureID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, structure)
}

func (h *StructureHandler) All(ctx *gin.Context) {
	structures, err := h.structures.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, structures)
}

func (h *StructureHandler) CreateMember(ctx *gin.Context) {
	var req CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.structures.CreateMember(ctx.Request.Context(), models.StructureMember{
		UserID:      req.UserID,
		StructureID: req.StructureID,
		ManagerID:   req.ManagerID,
		Role:        models.MemberRole(req.Role),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

func (h *StructureHandler) UpdateMember(ctx *gin.Context) {
	memberID, ok := parseID(ctx, "structure_member_id")
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := models.StructureMemberValues{
		UserID:      req.UserID,
		StructureID: req.StructureID,
		ManagerID:   req.ManagerID,
	}
	if req.Role != nil {
		role := models.MemberRole(*req.Role)
		values.Role = &role
	}

	if err := h.structures.UpdateMember(ctx.Request.Context(), memberID, values); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "structure member updated successfully"})
}

func (h *StructureHandler) DeleteMember(ctx *gin.Context) {
	memberID, ok := parseID(ctx, "structure_member_id")
	if !ok {
		return
	}

	if err := h.structures.DeleteMember(ctx.Request.Context(), memberID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "structure member deleted successfully"})
}

func (h *StructureHandler) GetMember(ctx *gin.Context) {
	memberID, ok := parseID(ctx, "structure_member_id")
	if !ok {
		return
	}

	member, err := h.structures.GetMember(ctx.Request.Context(), memberID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

func (h *StructureHandler) Members(ctx *gin.Context) {
	structureID, ok := parseID(ctx, "structure_id")
	if !ok {
		return
	}

	members, err := h.structures.MembersOf(ctx.Request.Context(), structureID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

func (h *StructureHandler) AllMembers(ctx *gin.Context) {
	members, err := h.structures.AllMembers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}
