package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/middleware"
	"github.com/crewbase-dev/crewbase/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}))

	return database
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", "HS256")
	require.NoError(t, err)
	return tokens
}

func seedUser(t *testing.T, database *gorm.DB, status models.UserStatus) *models.User {
	t.Helper()

	user := &models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        fmt.Sprintf("%s@example.com", t.Name()),
		PasswordHash: "irrelevant",
		Status:       status,
	}
	require.NoError(t, database.Create(user).Error)
	return user
}

func guardedEngine(guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", guard, func(ctx *gin.Context) {
		principal, err := middleware.CurrentPrincipal(ctx)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, principal)
	})
	return r
}

func request(r *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireUserMissingCookie(t *testing.T) {
	guard := middleware.NewClaimsAuth(newTokens(t))
	r := guardedEngine(guard.RequireUser())

	rec := request(r, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireUserInvalidToken(t *testing.T) {
	guard := middleware.NewClaimsAuth(newTokens(t))
	r := guardedEngine(guard.RequireUser())

	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserClaimsOnly(t *testing.T) {
	tokens := newTokens(t)
	guard := middleware.NewClaimsAuth(tokens)
	r := guardedEngine(guard.RequireUser())

	pair, err := tokens.NewTokenPair(7)
	require.NoError(t, err)

	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestRequireUserResolvesUserRow(t *testing.T) {
	database := newTestDB(t)
	tokens := newTokens(t)
	guard := middleware.NewAuth(tokens, database)
	r := guardedEngine(guard.RequireUser())

	user := seedUser(t, database, models.StatusUser)
	pair, err := tokens.NewTokenPair(user.ID)
	require.NoError(t, err)

	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}

func TestRequireUserRejectsDeletedUser(t *testing.T) {
	database := newTestDB(t)
	tokens := newTokens(t)
	guard := middleware.NewAuth(tokens, database)
	r := guardedEngine(guard.RequireUser())

	pair, err := tokens.NewTokenPair(12345)
	require.NoError(t, err)

	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	database := newTestDB(t)
	tokens := newTokens(t)
	guard := middleware.NewAuth(tokens, database)
	r := guardedEngine(guard.RequireAdmin())

	plain := seedUser(t, database, models.StatusUser)
	pair, err := tokens.NewTokenPair(plain.ID)
	require.NoError(t, err)

	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := &models.User{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "admin@example.com",
		PasswordHash: "irrelevant",
		Status:       models.StatusAdminGeneral,
	}
	require.NoError(t, database.Create(admin).Error)

	pair, err = tokens.NewTokenPair(admin.ID)
	require.NoError(t, err)

	rec = request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRefreshUsesRefreshCookie(t *testing.T) {
	tokens := newTokens(t)
	guard := middleware.NewClaimsAuth(tokens)
	r := guardedEngine(guard.RequireRefresh())

	pair, err := tokens.NewTokenPair(7)
	require.NoError(t, err)

	// The access cookie does not satisfy the refresh gate.
	rec := request(r, &http.Cookie{Name: auth.AccessCookie, Value: pair.Access})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(r, &http.Cookie{Name: auth.RefreshCookie, Value: pair.Refresh})
	assert.Equal(t, http.StatusOK, rec.Code)
}
