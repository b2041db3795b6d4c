package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/middleware"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/services"
)

type RegisterRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=5,max=50"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	CompanyID       *uint  `json:"company_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        uint              `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Email     string            `json:"email"`
	Status    models.UserStatus `json:"status"`
	CompanyID *uint             `json:"company_id"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Status:    user.Status,
		CompanyID: user.CompanyID,
	}
}

type AuthHandler struct {
	users  *services.UserService
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.users.Register(ctx.Request.Context(), services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "you have registered successfully"})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	pair, err := h.tokens.NewTokenPair(user.ID)
	if err != nil {
		h.logger.Error("failed to mint token pair", zap.Error(err))
		respondError(ctx, err)
		return
	}

	auth.SetTokenCookies(ctx.Writer, pair)
	ctx.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	auth.ClearTokenCookies(ctx.Writer)
	ctx.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.users.GetUser(ctx.Request.Context(), principal.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

func (h *AuthHandler) AllUsers(ctx *gin.Context) {
	users, err := h.users.AllUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, userResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// Refresh reissues both cookies. The middleware has already validated the
// refresh token; the old one stays valid until its own expiry.
func (h *AuthHandler) Refresh(ctx *gin.Context) {
	principal, err := middleware.CurrentPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	pair, err := h.tokens.NewTokenPair(principal.ID)
	if err != nil {
		h.logger.Error("failed to mint token pair", zap.Error(err))
		respondError(ctx, err)
		return
	}

	auth.SetTokenCookies(ctx.Writer, pair)
	ctx.JSON(http.StatusOK, gin.H{"message": "tokens refreshed successfully"})
}
