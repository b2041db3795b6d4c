package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CompanyRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CompanyHandler struct {
	companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) Create(ctx *gin.Context) {
	var req CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Update(ctx *gin.Context) {
	companyID, ok := parseID(ctx, "company_id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.companies.Update(ctx.Request.Context(), companyID, models.CompanyValues{Name: &req.Name})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "company updated successfully"})
}

func (h *CompanyHandler) Delete(ctx *gin.Context) {
	companyID, ok := parseID(ctx, "company_id")
	if !ok {
		return
	}

	if err := h.companies.Delete(ctx.Request.Context(), companyID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "company deleted successfully"})
}

func (h *CompanyHandler) Get(ctx *gin.Context) {
	companyID, ok := parseID(ctx, "company_id")
	if !ok {
		return
	}

	company, err := h.companies.Get(ctx.Request.Context(), companyID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) All(ctx *gin.Context) {
	companies, err := h.companies.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) AddUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}
	companyID, ok := parseID(ctx, "company_id")
	if !ok {
		return
	}

	if err := h.companies.AddUser(ctx.Request.Context(), userID, companyID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user added to company"})
}

func (h *CompanyHandler) RemoveUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "user_id")
	if !ok {
		return
	}

	if err := h.companies.RemoveUser(ctx.Request.Context(), userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user removed from company"})
}
