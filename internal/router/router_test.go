package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewbase-dev/crewbase/internal/auth"
	"github.com/crewbase-dev/crewbase/internal/models"
	"github.com/crewbase-dev/crewbase/internal/taskclient"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTaskClient struct{}

func (stubTaskClient) ListTasks(ctx context.Context) ([]taskclient.Task, error) { return nil, nil }
func (stubTaskClient) MotivationByTask(ctx context.Context, taskID uint) (*taskclient.Motivation, error) {
	return nil, nil
}
func (stubTaskClient) UpdateTask(ctx context.Context, taskID uint, update taskclient.TaskUpdate) error {
	return nil
}
func (stubTaskClient) DeleteTask(ctx context.Context, taskID uint) error { return nil }

func newTestDB(t *testing.T, modelSet ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(modelSet...))

	return database
}

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", "HS256")
	require.NoError(t, err)
	return tokens
}

func postJSON(r *gin.Engine, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func cookiesOf(rec *httptest.ResponseRecorder) []*http.Cookie {
	return (&http.Response{Header: rec.Header()}).Cookies()
}

func TestRegisterLoginMeFlow(t *testing.T) {
	database := newTestDB(t, &models.Company{}, &models.User{}, &models.Structure{}, &models.StructureMember{}, &models.News{})
	tokens := newTokens(t)
	r := NewUserTeamRouter(zap.NewNop(), database, tokens, stubTaskClient{})

	rec := postJSON(r, "/auth/register", gin.H{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = postJSON(r, "/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookies := cookiesOf(rec)
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
		assert.True(t, c.HttpOnly)
	}
	require.Contains(t, byName, auth.AccessCookie)
	require.Contains(t, byName, auth.RefreshCookie)

	userID, err := tokens.Parse(byName[auth.AccessCookie].Value)
	require.NoError(t, err)

	rec = get(r, "/auth/me", cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "ada@example.com")

	// The refresh flow hands back a fresh cookie pair for the same user.
	rec = postJSON(r, "/auth/refresh", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	refreshed := cookiesOf(rec)
	reissued := map[string]*http.Cookie{}
	for _, c := range refreshed {
		reissued[c.Name] = c
	}
	require.Contains(t, reissued, auth.AccessCookie)
	require.Contains(t, reissued, auth.RefreshCookie)

	refreshedID, err := tokens.Parse(reissued[auth.AccessCookie].Value)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshedID)

	refreshedID, err = tokens.Parse(reissued[auth.RefreshCookie].Value)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshedID)

	rec = get(r, "/auth/me", refreshed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestLoginWrongPassword(t *testing.T) {
	database := newTestDB(t, &models.Company{}, &models.User{}, &models.Structure{}, &models.StructureMember{}, &models.News{})
	r := NewUserTeamRouter(zap.NewNop(), database, newTokens(t), stubTaskClient{})

	rec := postJSON(r, "/auth/register", gin.H{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(r, "/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "wrong-pass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminGateOnUserRoutes(t *testing.T) {
	database := newTestDB(t, &models.Company{}, &models.User{}, &models.Structure{}, &models.StructureMember{}, &models.News{})
	tokens := newTokens(t)
	r := NewUserTeamRouter(zap.NewNop(), database, tokens, stubTaskClient{})

	rec := postJSON(r, "/auth/register", gin.H{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(r, "/auth/login", gin.H{
		"email":    "ada@example.com",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := cookiesOf(rec)

	// A plain user cannot list all accounts.
	rec = get(r, "/auth/all_users", cookies)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.NoError(t, database.Model(&models.User{}).
		Where("email = ?", "ada@example.com").
		Update("status", models.StatusAdminGeneral).Error)

	rec = get(r, "/auth/all_users", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskRouterAuthSurface(t *testing.T) {
	database := newTestDB(t, &models.Task{}, &models.Motivation{}, &models.Meeting{}, &models.Participant{})
	tokens := newTokens(t)
	r := NewTaskRouter(zap.NewNop(), database, tokens)

	// The listing stays open: the user service reads it without cookies.
	rec := get(r, "/tasks/all", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := gin.H{
		"title":       "ship the release",
		"content":     "cut the branch",
		"assigned_to": 2,
		"deadline":    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	rec = postJSON(r, "/tasks/create", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	pair, err := tokens.NewTokenPair(7)
	require.NoError(t, err)
	cookies := []*http.Cookie{{Name: auth.AccessCookie, Value: pair.Access}}

	rec = postJSON(r, "/tasks/create", body, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// assigned_by comes from the token, not the payload.
	assert.Contains(t, rec.Body.String(), `"assigned_by":7`)
}
