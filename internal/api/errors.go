package api

import (
	"log/slog"
	"net/http"

	"github.com/9novikoff/TaskManagementSystem/internal/api/shared"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
)

// statusForKind maps a service error kind to an HTTP status code.
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidationFailed:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindConflict:
		return http.StatusConflict
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondResult projects a service result onto the HTTP response by
// matching exactly one branch: the success value as JSON with the given
// status, or the mapped service error. Returns the status written.
func respondResult[T any](w http.ResponseWriter, r *http.Request, status int, result service.Result[T]) int {
	return service.Match(result,
		func(value T) int {
			shared.RespondWithJSON(w, r, status, value)
			return status
		},
		func(svcErr *service.Error) int {
			respondServiceError(w, r, svcErr)
			return statusForKind(svcErr.Kind)
		})
}

// respondServiceError renders a service error as an HTTP response. Internal
// faults are logged with their original message but sent to the client as an
// opaque 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, svcErr *service.Error) {
	status := statusForKind(svcErr.Kind)

	if svcErr.Kind == service.KindInternal {
		slog.Error("internal service error",
			"error", svcErr.Message,
			"trace_id", shared.GetTraceID(r.Context()),
			"path", r.URL.Path,
			"method", r.Method)
		shared.RespondWithError(w, r, status, "Internal server error")
		return
	}

	shared.RespondWithError(w, r, status, svcErr.Message)
}
