// Package taskclient is the user/team service's client for the
// task/motivation service. It is an interface so callers can be tested
// against a fake, with a timeout injected at construction and upstream
// failures reported as a distinct error kind.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crewbase-dev/crewbase/internal/apperr"
)

type Task struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AssignedBy uint      `json:"assigned_by"`
	AssignedTo uint      `json:"assigned_to"`
	Deadline   time.Time `json:"deadline"`
	Comment    string    `json:"comment"`
	Status     string    `json:"status"`
}

type Motivation struct {
	ID      uint   `json:"id"`
	TaskID  uint   `json:"task_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type TaskUpdate struct {
	Title      *string    `json:"title,omitempty"`
	Content    *string    `json:"content,omitempty"`
	AssignedTo *uint      `json:"assigned_to,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Comment    *string    `json:"comment,omitempty"`
	Status     *string    `json:"status,omitempty"`
}

type Client interface {
	ListTasks(ctx context.Context) ([]Task, error)
	MotivationByTask(ctx context.Context, taskID uint) (*Motivation, error)
	UpdateTask(ctx context.Context, taskID uint, update TaskUpdate) error
	DeleteTask(ctx context.Context, taskID uint) error
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("task service unavailable", err)
	}

	return resp, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]Task, error) {
	resp, err := c.do(ctx, http.MethodGet, "/tasks/all", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Sprintf("task service returned status %d", resp.StatusCode), nil)
	}

	var tasks []Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, apperr.Upstream("task service returned an unreadable response", err)
	}

	return tasks, nil
}

// MotivationByTask returns (nil, nil) when the task has no motivation yet.
func (c *HTTPClient) MotivationByTask(ctx context.Context, taskID uint) (*Motivation, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/motivations/get_by_taskid/%d", taskID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Sprintf("task service returned status %d", resp.StatusCode), nil)
	}

	var motivation Motivation
	if err := json.NewDecoder(resp.Body).Decode(&motivation); err != nil {
		return nil, apperr.Upstream("task service returned an unreadable response", err)
	}

	return &motivation, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, taskID uint, update TaskUpdate) error {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/update?task_id=%d", taskID), update)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return apperr.NotFound("task not found")
	default:
		return apperr.Upstream(fmt.Sprintf("task service returned status %d", resp.StatusCode), nil)
	}
}

func (c *HTTPClient) DeleteTask(ctx context.Context, taskID uint) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/delete/%d", taskID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return apperr.NotFound("task not found")
	default:
		return apperr.Upstream(fmt.Sprintf("task service returned status %d", resp.StatusCode), nil)
	}
}
