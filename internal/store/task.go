package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations stamp CreatedAt/UpdatedAt on every write.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update replaces the mutable fields of an existing task.
	// The ID and owning user of the stored record are never changed.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser retrieves every task owned by the given user, in a stable
	// storage-defined order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
}
