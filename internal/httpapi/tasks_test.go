package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-reminder/internal/model"
	"task-reminder/internal/service"
)

func newTaskServer(tasks TaskService) *Server {
	users := &mockUserResolver{
		FindByAPITokenFunc: func(ctx context.Context, token string) (*model.User, error) {
			if token == "valid-token" {
				return &model.User{ID: "user-1", Email: "u@example.com"}, nil
			}
			return nil, errNotStubbed
		},
	}
	return NewServer("top-secret", users, tasks, nil, nil, nil, &mockReminderRunner{})
}

func doJSON(t *testing.T, server *Server, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func TestTasks_RequireAuth(t *testing.T) {
	server := newTaskServer(&mockTaskService{})

	w := doJSON(t, server, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/tasks", "bad-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTask_GateOutcomesAreTyped(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{"no subscription", service.ErrNoSubscription, http.StatusForbidden, "NO_SUBSCRIPTION"},
		{"quota reached", service.ErrTaskLimitReached, http.StatusForbidden, "TASK_LIMIT_REACHED"},
		{"reminder equals due", service.ErrReminderEqualsDue, http.StatusBadRequest, "reminder date cannot be equal to due date"},
		{"reminder after due", service.ErrReminderAfterDue, http.StatusBadRequest, "reminder date must be before due date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := &mockTaskService{
				CreateTaskFunc: func(ctx context.Context, userID string, input service.TaskInput) (*model.Task, error) {
					return nil, tt.serviceErr
				},
			}
			server := newTaskServer(tasks)

			w := doJSON(t, server, http.MethodPost, "/api/tasks", "valid-token", map[string]interface{}{
				"title":   "a task",
				"dueDate": "2025-06-05T00:00:00Z",
			})

			require.Equal(t, tt.wantStatus, w.Code)
			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestCreateTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		CreateTaskFunc: func(ctx context.Context, userID string, input service.TaskInput) (*model.Task, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "a task", input.Title)
			return &model.Task{ID: "task-1", UserID: userID, Title: input.Title, DueDate: input.DueDate}, nil
		},
	}
	server := newTaskServer(tasks)

	w := doJSON(t, server, http.MethodPost, "/api/tasks", "valid-token", map[string]interface{}{
		"title":   "a task",
		"dueDate": "2025-06-05T00:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Success bool `json:"success"`
		Task    struct {
			ID string `json:"ID"`
		} `json:"task"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "task-1", body.Task.ID)
}
