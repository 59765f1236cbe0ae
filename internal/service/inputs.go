package service

import (
	"time"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// RegisterInput carries the fields needed to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries the credentials supplied at login. The identifier may
// be either a username or an email address.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// TaskInput carries the fields needed to create or fully update a task.
// Status and Priority are raw strings; the validator checks they name
// recognized enumerated values.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
	Priority    string
}

// TaskFilter narrows a task listing. Every field is optional; present
// fields are combined conjunctively. Date bounds are inclusive.
// The transport layer is responsible for rejecting unrecognized status and
// priority values before they reach the service.
type TaskFilter struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
	DateFrom *time.Time
	DateTo   *time.Time
}

// TaskSort orders a task listing. An empty or unrecognized column leaves
// the order unspecified but deterministic.
type TaskSort struct {
	SortColumn string
	IsDesc     bool
}

// TaskPagination selects a page of a task listing. Both fields must be
// present together or absent together.
type TaskPagination struct {
	PageNumber *int
	PageSize   *int
}
