package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// ApplyQuery composes a task listing from the given collection: it restricts
// to tasks owned by ownerID, applies the filter predicates conjunctively,
// orders by the whitelisted sort column (stable, so unsorted input order is
// preserved for ties and when no column is given), and finally pages the
// result. Tasks of other users never appear in the output regardless of the
// filter values.
//
// A page is PageSize records long after skipping (PageNumber-1)*PageSize.
func ApplyQuery(
	tasks []domain.Task,
	ownerID uuid.UUID,
	filter TaskFilter,
	taskSort TaskSort,
	pagination TaskPagination,
) []domain.Task {
	selected := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.UserID != ownerID {
			continue
		}
		if !matchesFilter(t, filter) {
			continue
		}
		selected = append(selected, t)
	}

	applySort(selected, taskSort)

	return applyPagination(selected, pagination)
}

// matchesFilter applies every present filter field conjunctively. A task
// without a due date never matches a date-bounded filter.
func matchesFilter(t domain.Task, f TaskFilter) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.DateFrom != nil && (t.DueDate == nil || t.DueDate.Before(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && (t.DueDate == nil || t.DueDate.After(*f.DateTo)) {
		return false
	}
	return true
}

func applySort(tasks []domain.Task, s TaskSort) {
	var less func(a, b domain.Task) bool

	switch strings.ToLower(s.SortColumn) {
	case "duedate":
		less = func(a, b domain.Task) bool {
			return dueDateOrZero(a).Before(dueDateOrZero(b))
		}
	case "priority":
		less = func(a, b domain.Task) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case "status":
		less = func(a, b domain.Task) bool {
			return a.Status.Rank() < b.Status.Rank()
		}
	default:
		// Unrecognized or empty column: input order is kept.
		return
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if s.IsDesc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

// dueDateOrZero orders tasks without a due date first ascending.
func dueDateOrZero(t domain.Task) time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return *t.DueDate
}

func applyPagination(tasks []domain.Task, p TaskPagination) []domain.Task {
	if p.PageNumber == nil || p.PageSize == nil {
		return tasks
	}

	number, size := *p.PageNumber, *p.PageSize

	// Page values large enough to overflow the skip multiplication lie far
	// past any real collection; such a page is empty.
	skip := (number - 1) * size
	if skip < 0 || (number > 1 && skip/(number-1) != size) {
		return []domain.Task{}
	}
	if skip >= len(tasks) {
		return []domain.Task{}
	}

	end := skip + size
	if end > len(tasks) || end < skip {
		end = len(tasks)
	}

	return tasks[skip:end]
}
