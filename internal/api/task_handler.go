package api

import (
	"net/http"

	"github.com/9novikoff/TaskManagementSystem/internal/api/shared"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
)

// TaskHandler handles the task CRUD endpoints. Every route is behind the
// auth middleware, so the caller's user ID is always in the context.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles the POST /tasks endpoint.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.taskService.Create(r.Context(), callerID, taskInputFromRequest(req))

	respondResult(w, r, http.StatusCreated, result)
}

// Get handles the GET /tasks/{taskID} endpoint.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathUUID(r, "taskID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.taskService.GetByID(r.Context(), callerID, taskID)

	respondResult(w, r, http.StatusOK, result)
}

// List handles the GET /tasks endpoint. Filter, sort and pagination come
// from query parameters.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	filter, sort, pagination, err := parseListQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.taskService.List(r.Context(), callerID, filter, sort, pagination)

	respondResult(w, r, http.StatusOK, result)
}

// Update handles the PUT /tasks/{taskID} endpoint.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathUUID(r, "taskID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.taskService.Update(r.Context(), callerID, taskID, taskInputFromRequest(req))

	respondResult(w, r, http.StatusOK, result)
}

// Delete handles the DELETE /tasks/{taskID} endpoint.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := getPathUUID(r, "taskID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result := h.taskService.Delete(r.Context(), callerID, taskID)

	service.Match(result,
		func(deleted bool) int {
			shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{Deleted: deleted})
			return http.StatusOK
		},
		func(svcErr *service.Error) int {
			respondServiceError(w, r, svcErr)
			return statusForKind(svcErr.Kind)
		})
}

func taskInputFromRequest(req TaskRequest) service.TaskInput {
	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
	}
}
