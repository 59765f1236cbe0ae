package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apimiddleware "github.com/9novikoff/TaskManagementSystem/internal/api/middleware"
	"github.com/9novikoff/TaskManagementSystem/internal/domain"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context, where the auth middleware placed it.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := apimiddleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%s is required", paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s has invalid format", paramName)
	}
	return id, nil
}

// parseListQuery builds the filter, sort and pagination inputs from the
// listing endpoint's query parameters. Unrecognized enum values and
// non-numeric page parameters are rejected here; range rules are left to the
// service validators.
func parseListQuery(r *http.Request) (service.TaskFilter, service.TaskSort, service.TaskPagination, error) {
	var (
		filter     service.TaskFilter
		sort       service.TaskSort
		pagination service.TaskPagination
	)
	q := r.URL.Query()

	if raw := q.Get("status"); raw != "" {
		status, err := domain.ParseTaskStatus(raw)
		if err != nil {
			return filter, sort, pagination, errors.New("Invalid status value.")
		}
		filter.Status = &status
	}
	if raw := q.Get("priority"); raw != "" {
		priority, err := domain.ParseTaskPriority(raw)
		if err != nil {
			return filter, sort, pagination, errors.New("Invalid priority value.")
		}
		filter.Priority = &priority
	}
	if raw := q.Get("date_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, sort, pagination, errors.New("date_from has invalid format")
		}
		filter.DateFrom = &from
	}
	if raw := q.Get("date_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, sort, pagination, errors.New("date_to has invalid format")
		}
		filter.DateTo = &to
	}

	sort.SortColumn = q.Get("sort_column")
	if raw := q.Get("is_desc"); raw != "" {
		isDesc, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, sort, pagination, errors.New("is_desc has invalid format")
		}
		sort.IsDesc = isDesc
	}

	if raw := q.Get("page_number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return filter, sort, pagination, errors.New("page_number has invalid format")
		}
		pagination.PageNumber = &number
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return filter, sort, pagination, errors.New("page_size has invalid format")
		}
		pagination.PageSize = &size
	}

	return filter, sort, pagination, nil
}
