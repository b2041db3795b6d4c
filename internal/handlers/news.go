package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/middleware"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type CreateNewsRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type NewsHandler struct {
	news *services.NewsService
}

func NewNewsHandler(news *services.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) Create(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.news.Create(ctx.Request.Context(), req.Title, req.Content, principal.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, news)
}

func (h *NewsHandler) Delete(ctx *gin.Context) {
	newsID, ok := parseID(ctx, "news_id")
	if !ok {
		return
	}

	if err := h.news.Delete(ctx.Request.Context(), newsID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "news deleted successfully"})
}

func (h *NewsHandler) Get(ctx *gin.Context) {
	newsID, ok := parseID(ctx, "news_id")
	if !ok {
		return
	}

	news, err := h.news.Get(ctx.Request.Context(), newsID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, news)
}

func (h *NewsHandler) All(ctx *gin.Context) {
	news, err := h.news.All(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, news)
}
