package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Possible task status values, in ascending sort order.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Possible task priority values, in ascending sort order.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Common task enum errors
var (
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

var statusRanks = map[TaskStatus]int{
	TaskStatusTodo:       0,
	TaskStatusInProgress: 1,
	TaskStatusDone:       2,
}

var priorityRanks = map[TaskPriority]int{
	TaskPriorityLow:    0,
	TaskPriorityMedium: 1,
	TaskPriorityHigh:   2,
}

// IsValid reports whether the status is a recognized enumerated value.
func (s TaskStatus) IsValid() bool {
	_, ok := statusRanks[s]
	return ok
}

// Rank returns the position of the status in the enum's declared order.
// Unrecognized statuses sort before recognized ones.
func (s TaskStatus) Rank() int {
	if rank, ok := statusRanks[s]; ok {
		return rank
	}
	return -1
}

// IsValid reports whether the priority is a recognized enumerated value.
func (p TaskPriority) IsValid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Rank returns the position of the priority in the enum's declared order.
// Unrecognized priorities sort before recognized ones.
func (p TaskPriority) Rank() int {
	if rank, ok := priorityRanks[p]; ok {
		return rank
	}
	return -1
}

// ParseTaskStatus converts a string into a TaskStatus.
// Returns ErrInvalidTaskStatus if the value is not recognized.
func ParseTaskStatus(value string) (TaskStatus, error) {
	s := TaskStatus(value)
	if !s.IsValid() {
		return "", ErrInvalidTaskStatus
	}
	return s, nil
}

// ParseTaskPriority converts a string into a TaskPriority.
// Returns ErrInvalidTaskPriority if the value is not recognized.
func ParseTaskPriority(value string) (TaskPriority, error) {
	p := TaskPriority(value)
	if !p.IsValid() {
		return "", ErrInvalidTaskPriority
	}
	return p, nil
}

// Task represents a unit of work owned by exactly one user.
// The owner is fixed at creation time and never changes afterwards.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	UserID      uuid.UUID    `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID. Timestamps are stamped by the
// persistence layer on write, not here.
func NewTask(
	userID uuid.UUID,
	title, description string,
	dueDate *time.Time,
	status TaskStatus,
	priority TaskPriority,
) *Task {
	return &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		UserID:      userID,
	}
}
