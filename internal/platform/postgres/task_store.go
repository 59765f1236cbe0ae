package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
	"github.com/9novikoff/TaskManagementSystem/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	query := `
		INSERT INTO tasks (id, title, description, due_date, status, priority,
			user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate,
		string(task.Status), string(task.Priority),
		task.UserID, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return mapError("insert task", err)
	}
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, title, description, due_date, status, priority,
			user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var t domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Status, &t.Priority,
		&t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, mapError("scan task", err)
	}
	return &t, nil
}

// Update implements store.TaskStore.Update. The owning user column is
// deliberately absent from the SET list; ownership never changes.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, status = $5,
			priority = $6, updated_at = $7
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate,
		string(task.Status), string(task.Priority), task.UpdatedAt)
	if err != nil {
		return mapError("update task", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError("update task rows affected", err)
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return mapError("delete task", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return mapError("delete task rows affected", err)
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}
	return nil
}

// ListByUser implements store.TaskStore.ListByUser. Tasks come back oldest
// first so the in-memory query pipeline sees a stable order.
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT id, title, description, due_date, status, priority,
			user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError("query tasks by user", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.Priority, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, mapError("scan task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate tasks", err)
	}
	return tasks, nil
}
