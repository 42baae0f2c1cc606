package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	router http.Handler
	tasks  *mocks.MockTaskStore
	owner  *domain.User
}

func newTaskRouter(svc service.TaskService) http.Handler {
	h := api.NewTaskHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})
	return r
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	users := mocks.NewMockUserStore()
	owner := users.AddUser(&domain.User{Name: "Owner", Email: "owner@example.com", HashedPassword: "x"})
	tasks := mocks.NewMockTaskStore(users)

	svc, err := service.NewTaskService(tasks, users, nil)
	require.NoError(t, err)

	return &taskFixture{router: newTaskRouter(svc), tasks: tasks, owner: owner}
}

func (f *taskFixture) payload(status any) map[string]any {
	return map[string]any{
		"title":   "New Task",
		"content": "Task content",
		"user_id": f.owner.ID,
		"status":  status,
	}
}

func (f *taskFixture) create(t *testing.T, status int) int64 {
	t.Helper()
	rr := doJSON(t, f.router, http.MethodPost, "/api/tasks", f.payload(status), nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	id, ok := decodeBody(t, rr)["id"].(float64)
	require.True(t, ok)
	return int64(id)
}

func taskPath(id int64) string {
	return "/api/tasks/" + strconv.FormatInt(id, 10)
}

func TestCreateAndShowTask(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)

	id := f.create(t, 2)

	rr := doJSON(t, f.router, http.MethodGet, taskPath(id), nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "New Task", body["title"])
	assert.Equal(t, "Task content", body["content"])
	assert.Equal(t, float64(2), body["status"])
	assert.Equal(t, "In Progress", body["status_name"])
	assert.Equal(t, float64(f.owner.ID), body["user_id"])
	assert.Equal(t, map[string]any{
		"id":    float64(f.owner.ID),
		"name":  "Owner",
		"email": "owner@example.com",
	}, body["user"])
	assert.Contains(t, body, "created_at")
	assert.Contains(t, body, "updated_at")
}

func TestListTasks(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)

	rr := doJSON(t, f.router, http.MethodGet, "/api/tasks", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())

	first := f.create(t, 1)
	second := f.create(t, 3)

	rr = doJSON(t, f.router, http.MethodGet, "/api/tasks", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var tasks []api.TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, first, tasks[0].ID)
	assert.Equal(t, "Pending", tasks[0].StatusName)
	assert.Equal(t, second, tasks[1].ID)
	assert.Equal(t, "Completed", tasks[1].StatusName)
	assert.Equal(t, "owner@example.com", tasks[1].User.Email)
}

func TestCreateTaskValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(p map[string]any)
		field   string
		message string
	}{
		{"status out of range", func(p map[string]any) { p["status"] = 4 }, "status", "The selected status is invalid."},
		{"status zero", func(p map[string]any) { p["status"] = 0 }, "status", "The selected status is invalid."},
		{"status not a number", func(p map[string]any) { p["status"] = "done" }, "status", "The status field must be an integer."},
		{"status missing", func(p map[string]any) { delete(p, "status") }, "status", "The status field is required."},
		{"title missing", func(p map[string]any) { delete(p, "title") }, "title", "The title field is required."},
		{"title blank", func(p map[string]any) { p["title"] = "   " }, "title", "The title field is required."},
		{"title too long", func(p map[string]any) { p["title"] = strings.Repeat("a", 256) }, "title", "The title field must not be greater than 255 characters."},
		{"content missing", func(p map[string]any) { delete(p, "content") }, "content", "The content field is required."},
		{"user missing", func(p map[string]any) { delete(p, "user_id") }, "user_id", "The user id field is required."},
		{"user unknown", func(p map[string]any) { p["user_id"] = 9999 }, "user_id", service.MsgUserIDInvalid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newTaskFixture(t)
			p := f.payload(1)
			tc.mutate(p)

			rr := doJSON(t, f.router, http.MethodPost, "/api/tasks", p, nil)

			require.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
			errs := fieldErrors(t, rr)
			assert.Equal(t, []string{tc.message}, errs[tc.field])
			assert.Empty(t, f.tasks.Tasks, "no task should be stored")
		})
	}
}

func TestCreateTaskTitleAtLimit(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	p := f.payload(1)
	long := make([]rune, domain.MaxTitleLength)
	for i := range long {
		long[i] = 'é'
	}
	p["title"] = string(long)

	rr := doJSON(t, f.router, http.MethodPost, "/api/tasks", p, nil)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestShowTaskNotFound(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)

	for _, path := range []string{"/api/tasks/999", "/api/tasks/0", "/api/tasks/-1", "/api/tasks/abc"} {
		rr := doJSON(t, f.router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Equal(t, "null\n", rr.Body.String(), path)
	}
}

func TestUpdateTask(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	id := f.create(t, 1)

	p := f.payload(3)
	p["title"] = "Updated Task"
	rr := doJSON(t, f.router, http.MethodPut, taskPath(id), p, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, map[string]any{"message": api.MsgTaskUpdated}, decodeBody(t, rr))

	rr = doJSON(t, f.router, http.MethodGet, taskPath(id), nil, nil)
	body := decodeBody(t, rr)
	assert.Equal(t, "Updated Task", body["title"])
	assert.Equal(t, "Completed", body["status_name"])
}

func TestUpdateTaskRequiresEveryField(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	id := f.create(t, 1)

	p := f.payload(2)
	delete(p, "status")
	rr := doJSON(t, f.router, http.MethodPut, taskPath(id), p, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"The status field is required."}, fieldErrors(t, rr)["status"])
	assert.Equal(t, domain.TaskStatusPending, f.tasks.Tasks[id].Status, "task must be unchanged")
}

func TestUpdateTaskOrdering(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)

	// Invalid body on an unknown id reports validation first.
	rr := doJSON(t, f.router, http.MethodPut, "/api/tasks/999", map[string]any{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	// Valid body on an unknown id is a 404 with a null body.
	rr = doJSON(t, f.router, http.MethodPut, "/api/tasks/999", f.payload(1), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "null\n", rr.Body.String())

	rr = doJSON(t, f.router, http.MethodPut, "/api/tasks/abc", f.payload(1), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteTaskTwice(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)
	id := f.create(t, 1)

	rr := doJSON(t, f.router, http.MethodDelete, taskPath(id), nil, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doJSON(t, f.router, http.MethodDelete, taskPath(id), nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "null\n", rr.Body.String())

	rr = doJSON(t, f.router, http.MethodGet, taskPath(id), nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTaskHandlerServiceFailure(t *testing.T) {
	t.Parallel()

	svc := &mocks.TestifyMockTaskService{}
	svc.On("ListTasks", mock.Anything).Return(nil, errors.New("connection reset by peer"))
	svc.On("DeleteTask", mock.Anything, int64(5)).Return(fmt.Errorf("wrapped: %w", service.ErrTaskNotFound))

	router := newTaskRouter(svc)

	rr := doJSON(t, router, http.MethodGet, "/api/tasks", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, api.MsgUnexpectedError, decodeBody(t, rr)["error"])

	rr = doJSON(t, router, http.MethodDelete, "/api/tasks/5", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	svc.AssertExpectations(t)
}

func TestMalformedTaskBody(t *testing.T) {
	t.Parallel()
	f := newTaskFixture(t)

	rr := doJSON(t, f.router, http.MethodPost, "/api/tasks", `{"title":`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, api.MsgInvalidRequest, decodeBody(t, rr)["error"])
}
