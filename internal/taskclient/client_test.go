package taskclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase-dev/crewbase/internal/apperr"
)

func TestListTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tasks/all", r.URL.Path)

		json.NewEncoder(w).Encode([]Task{
			{ID: 1, Title: "first", AssignedBy: 10},
			{ID: 2, Title: "second", AssignedBy: 11},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
}

func TestMotivationByTaskNotRatedYet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/motivations/get_by_taskid/5", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	motivation, err := client.MotivationByTask(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, motivation)
}

func TestMotivationByTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Motivation{ID: 3, TaskID: 5, Rating: 4})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	motivation, err := client.MotivationByTask(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, motivation)
	assert.Equal(t, 4, motivation.Rating)
}

func TestUpdateTaskSendsQueryAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/update", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("task_id"))

		var update TaskUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.Comment)
		assert.Equal(t, "done early", *update.Comment)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	comment := "done early"
	client := NewHTTPClient(server.URL, time.Second)
	err := client.UpdateTask(context.Background(), 7, TaskUpdate{Comment: &comment})
	require.NoError(t, err)
}

func TestDeleteTaskNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	err := client.DeleteTask(context.Background(), 99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUnreachableServiceIsUpstreamError(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", 100*time.Millisecond)

	_, err := client.ListTasks(context.Background())
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestUpstreamStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	_, err := client.ListTasks(context.Background())
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}
