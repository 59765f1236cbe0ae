package api

import (
	"net/http"

	"github.com/9novikoff/TaskManagementSystem/internal/api/shared"
	"github.com/9novikoff/TaskManagementSystem/internal/service"
)

// AuthHandler handles the registration and login endpoints.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles the POST /users/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.userService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})

	respondResult(w, r, http.StatusCreated, result)
}

// Login handles the POST /users/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.userService.Login(r.Context(), service.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})

	service.Match(result,
		func(token string) int {
			shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{Token: token})
			return http.StatusOK
		},
		func(svcErr *service.Error) int {
			respondServiceError(w, r, svcErr)
			return statusForKind(svcErr.Kind)
		})
}
