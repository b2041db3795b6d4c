package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/crewbase-dev/crewbase/internal/apperr"
	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/repository"
)

const principalKey = "principal"

// Principal is the caller identity stashed in the request context once a
// token has been validated.
type Principal struct {
	ID     uint              `json:"id"`
	Email  string            `json:"email"`
	Status models.UserStatus `json:"status"`
}

// CurrentPrincipal returns the authenticated caller set by one of the
// Require middlewares.
func CurrentPrincipal(ctx *gin.Context) (Principal, error) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, fmt.Errorf("no authenticated principal in context")
	}

	principal, ok := value.(Principal)
	if !ok {
		return Principal{}, fmt.Errorf("invalid principal type in context")
	}

	return principal, nil
}

// Auth gates endpoints on the cookie-carried tokens. The user/team service
// resolves the subject to a user row; the task service validates claims
// only (it has no users table).
type Auth struct {
	tokens *auth.TokenManager
	users  *repository.Repository[models.User]
}

// NewAuth builds the middleware for the user/team service.
func NewAuth(tokens *auth.TokenManager, database *gorm.DB) *Auth {
	return &Auth{
		tokens: tokens,
		users:  repository.New[models.User](database),
	}
}

// NewClaimsAuth builds the middleware for services without a users table.
func NewClaimsAuth(tokens *auth.TokenManager) *Auth {
	return &Auth{tokens: tokens}
}

func abort(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
}

func (a *Auth) authenticate(ctx *gin.Context, cookieName string) (Principal, error) {
	tokenString, err := ctx.Cookie(cookieName)
	if err != nil || tokenString == "" {
		return Principal{}, apperr.TokenMissing("token not found in cookies")
	}

	userID, err := a.tokens.Parse(tokenString)
	if err != nil {
		return Principal{}, err
	}

	if a.users == nil {
		return Principal{ID: userID}, nil
	}

	user, err := a.users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		return Principal{}, err
	}
	if user == nil {
		return Principal{}, apperr.TokenInvalid("user no longer exists")
	}

	return Principal{ID: user.ID, Email: user.Email, Status: user.Status}, nil
}

// RequireUser admits any caller with a valid access token.
func (a *Auth) RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := a.authenticate(ctx, auth.AccessCookie)
		if err != nil {
			abort(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireAdmin admits only group or general admins.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := a.authenticate(ctx, auth.AccessCookie)
		if err != nil {
			abort(ctx, err)
			return
		}

		if !principal.Status.IsAdmin() {
			abort(ctx, apperr.Forbidden("insufficient permissions"))
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireRefresh validates the refresh cookie for the token renewal
// endpoint.
func (a *Auth) RequireRefresh() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, err := a.authenticate(ctx, auth.RefreshCookie)
		if err != nil {
			abort(ctx, err)
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}
