package api

import "time"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token string `json:"token"`
}

// TaskRequest defines the payload for task create and update endpoints.
// Status and Priority are passed through as raw strings; the service layer
// validates them against the enumerated values.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
}

// DeleteTaskResponse defines the successful response for the task delete
// endpoint.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}
