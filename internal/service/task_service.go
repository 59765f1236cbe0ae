package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
	"github.com/9novikoff/TaskManagementSystem/internal/store"
)

// TaskService provides the task lifecycle operations. Every operation takes
// the id of the authenticated caller and enforces ownership: a caller can
// only ever see or touch their own tasks.
type TaskService interface {
	// Create validates the input and persists a new task owned by callerID.
	Create(ctx context.Context, callerID uuid.UUID, in TaskInput) Result[PublicTask]

	// GetByID retrieves a single task. The caller must own it.
	GetByID(ctx context.Context, callerID, taskID uuid.UUID) Result[PublicTask]

	// List returns the caller's tasks after filtering, sorting and paging.
	List(ctx context.Context, callerID uuid.UUID, filter TaskFilter, sort TaskSort, pagination TaskPagination) Result[[]PublicTask]

	// Update validates the input and replaces the mutable fields of an
	// existing task. The caller must own it; the owner never changes.
	Update(ctx context.Context, callerID, taskID uuid.UUID, in TaskInput) Result[PublicTask]

	// Delete removes a task. The caller must own it.
	Delete(ctx context.Context, callerID, taskID uuid.UUID) Result[bool]
}

// taskService implements TaskService.
type taskService struct {
	tasks  store.TaskStore
	users  store.UserStore
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore, users store.UserStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		users:  users,
		logger: logger.With("component", "task_service"),
		now:    time.Now,
	}
}

// Create implements TaskService.Create.
func (s *taskService) Create(ctx context.Context, callerID uuid.UUID, in TaskInput) Result[PublicTask] {
	if violations := ValidateTaskInput(in, s.now()); len(violations) > 0 {
		return Fail[PublicTask](ValidationFailed(JoinViolations(violations)))
	}

	if _, err := s.users.GetByID(ctx, callerID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Fail[PublicTask](NotFound("User doesn't exist"))
		}
		s.logger.Error("failed to resolve task owner", "error", err, "user_id", callerID)
		return Fail[PublicTask](Internal(err))
	}

	// Validation guarantees the enum values parse.
	task := domain.NewTask(
		callerID,
		in.Title,
		in.Description,
		in.DueDate,
		domain.TaskStatus(in.Status),
		domain.TaskPriority(in.Priority),
	)

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error("failed to save task", "error", err, "user_id", callerID)
		return Fail[PublicTask](Internal(err))
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", callerID)

	return Ok(projectTask(task))
}

// GetByID implements TaskService.GetByID.
func (s *taskService) GetByID(ctx context.Context, callerID, taskID uuid.UUID) Result[PublicTask] {
	task, svcErr := s.ownedTask(ctx, callerID, taskID)
	if svcErr != nil {
		return Fail[PublicTask](svcErr)
	}
	return Ok(projectTask(task))
}

// List implements TaskService.List.
func (s *taskService) List(
	ctx context.Context,
	callerID uuid.UUID,
	filter TaskFilter,
	sort TaskSort,
	pagination TaskPagination,
) Result[[]PublicTask] {
	// Filter rules first, then sort, then pagination.
	violations := JoinViolations(
		ValidateTaskFilter(filter),
		ValidateTaskSort(sort),
		ValidateTaskPagination(pagination),
	)
	if violations != "" {
		return Fail[[]PublicTask](ValidationFailed(violations))
	}

	tasks, err := s.tasks.ListByUser(ctx, callerID)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", callerID)
		return Fail[[]PublicTask](Internal(err))
	}

	page := ApplyQuery(tasks, callerID, filter, sort, pagination)

	projected := make([]PublicTask, 0, len(page))
	for i := range page {
		projected = append(projected, projectTask(&page[i]))
	}

	return Ok(projected)
}

// Update implements TaskService.Update.
func (s *taskService) Update(ctx context.Context, callerID, taskID uuid.UUID, in TaskInput) Result[PublicTask] {
	if violations := ValidateTaskInput(in, s.now()); len(violations) > 0 {
		return Fail[PublicTask](ValidationFailed(JoinViolations(violations)))
	}

	task, svcErr := s.ownedTask(ctx, callerID, taskID)
	if svcErr != nil {
		return Fail[PublicTask](svcErr)
	}

	// ID and UserID are kept; everything else is replaced.
	task.Title = in.Title
	task.Description = in.Description
	task.DueDate = in.DueDate
	task.Status = domain.TaskStatus(in.Status)
	task.Priority = domain.TaskPriority(in.Priority)

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return Fail[PublicTask](NotFoundf("There are no tasks with such id %s", taskID))
		}
		s.logger.Error("failed to update task", "error", err, "task_id", taskID)
		return Fail[PublicTask](Internal(err))
	}

	s.logger.Info("task updated", "task_id", taskID, "user_id", callerID)

	return Ok(projectTask(task))
}

// Delete implements TaskService.Delete.
func (s *taskService) Delete(ctx context.Context, callerID, taskID uuid.UUID) Result[bool] {
	if _, svcErr := s.ownedTask(ctx, callerID, taskID); svcErr != nil {
		return Fail[bool](svcErr)
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return Fail[bool](NotFoundf("There are no tasks with such id %s", taskID))
		}
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return Fail[bool](Internal(err))
	}

	s.logger.Info("task deleted", "task_id", taskID, "user_id", callerID)

	return Ok(true)
}

// ownedTask loads a task and enforces the ownership rule. Existence is
// checked before ownership, so a caller probing another user's task id
// learns the task exists but nothing more.
func (s *taskService) ownedTask(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, *Error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, NotFoundf("There are no tasks with such id %s", taskID)
		}
		s.logger.Error("failed to load task", "error", err, "task_id", taskID)
		return nil, Internal(err)
	}

	if task.UserID != callerID {
		s.logger.Warn("denied cross-user task access",
			"task_id", taskID,
			"owner_id", task.UserID,
			"caller_id", callerID)
		return nil, Forbidden("Denied access to another user's task")
	}

	return task, nil
}
