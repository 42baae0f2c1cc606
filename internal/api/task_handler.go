package api

import (
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/service"
)

// TaskIDParam is the chi URL parameter holding the task id.
const TaskIDParam = "id"

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "list_tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if !bindRequest(w, r, &req) {
		return
	}

	input, err := req.toInput()
	if err != nil {
		HandleAPIError(w, r, err, "create_task")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "create_task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: task.ID})
}

// GetTask handles GET /api/tasks/{id}. Unknown ids answer 404 with a null body.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r, TaskIDParam)
	if !ok {
		shared.RespondWithJSON(w, r, http.StatusNotFound, nil)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "get_task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id}. The body is validated before the
// task is looked up, so an invalid body on an unknown id answers 422.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if !bindRequest(w, r, &req) {
		return
	}

	input, err := req.toInput()
	if err != nil {
		HandleAPIError(w, r, err, "update_task")
		return
	}

	id, ok := getPathID(r, TaskIDParam)
	if !ok {
		shared.RespondWithJSON(w, r, http.StatusNotFound, nil)
		return
	}

	if err := h.taskService.UpdateTask(r.Context(), id, input); err != nil {
		HandleAPIError(w, r, err, "update_task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MsgTaskUpdated})
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(r, TaskIDParam)
	if !ok {
		shared.RespondWithJSON(w, r, http.StatusNotFound, nil)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "delete_task")
		return
	}

	shared.RespondNoContent(w)
}
