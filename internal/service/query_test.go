package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

func dayOffset(days int) *time.Time {
	d := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return &d
}

func ownedTask(owner uuid.UUID, title string, status domain.TaskStatus, priority domain.TaskPriority, due *time.Time) domain.Task {
	return domain.Task{
		ID:       uuid.New(),
		Title:    title,
		Status:   status,
		Priority: priority,
		DueDate:  due,
		UserID:   owner,
	}
}

func TestApplyQuery_RestrictsToOwner(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	tasks := []domain.Task{
		ownedTask(owner, "mine", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(stranger, "theirs", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "also mine", domain.TaskStatusDone, domain.TaskPriorityHigh, nil),
	}

	got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{}, TaskPagination{})

	require.Len(t, got, 2)
	for _, task := range got {
		assert.Equal(t, owner, task.UserID)
	}
}

func TestApplyQuery_StatusFilter(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	status := domain.TaskStatusInProgress

	tasks := []domain.Task{
		ownedTask(owner, "a", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "b", domain.TaskStatusInProgress, domain.TaskPriorityLow, nil),
		ownedTask(uuid.New(), "c", domain.TaskStatusInProgress, domain.TaskPriorityLow, nil),
		ownedTask(owner, "d", domain.TaskStatusInProgress, domain.TaskPriorityHigh, nil),
	}

	got := ApplyQuery(tasks, owner, TaskFilter{Status: &status}, TaskSort{}, TaskPagination{})

	require.Len(t, got, 2)
	for _, task := range got {
		assert.Equal(t, status, task.Status)
		assert.Equal(t, owner, task.UserID)
	}
}

func TestApplyQuery_ConjunctiveFilters(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	priority := domain.TaskPriorityHigh

	tasks := []domain.Task{
		ownedTask(owner, "early high", domain.TaskStatusTodo, domain.TaskPriorityHigh, dayOffset(1)),
		ownedTask(owner, "late high", domain.TaskStatusTodo, domain.TaskPriorityHigh, dayOffset(10)),
		ownedTask(owner, "early low", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(1)),
		ownedTask(owner, "no due date", domain.TaskStatusTodo, domain.TaskPriorityHigh, nil),
	}

	got := ApplyQuery(tasks, owner,
		TaskFilter{Priority: &priority, DateFrom: dayOffset(0), DateTo: dayOffset(5)},
		TaskSort{}, TaskPagination{})

	require.Len(t, got, 1)
	assert.Equal(t, "early high", got[0].Title)
}

func TestApplyQuery_DateBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "on from", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(2)),
		ownedTask(owner, "on to", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(4)),
		ownedTask(owner, "before", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(1)),
		ownedTask(owner, "after", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(5)),
	}

	got := ApplyQuery(tasks, owner,
		TaskFilter{DateFrom: dayOffset(2), DateTo: dayOffset(4)},
		TaskSort{}, TaskPagination{})

	require.Len(t, got, 2)
	assert.Equal(t, "on from", got[0].Title)
	assert.Equal(t, "on to", got[1].Title)
}

func TestApplyQuery_SortByDueDateDescending(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "mid", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(5)),
		ownedTask(owner, "late", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(9)),
		ownedTask(owner, "none", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "early", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(1)),
	}

	got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{SortColumn: "duedate", IsDesc: true}, TaskPagination{})

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		prev, cur := dueDateOrZero(got[i-1]), dueDateOrZero(got[i])
		assert.False(t, prev.Before(cur), "sequence must be non-increasing by due date")
	}
	// Tasks without a due date sort as the earliest possible date.
	assert.Equal(t, "none", got[3].Title)
}

func TestApplyQuery_SortByPriorityUsesEnumOrder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "h", domain.TaskStatusTodo, domain.TaskPriorityHigh, nil),
		ownedTask(owner, "l", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "m", domain.TaskStatusTodo, domain.TaskPriorityMedium, nil),
	}

	got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{SortColumn: "Priority"}, TaskPagination{})

	require.Len(t, got, 3)
	assert.Equal(t, domain.TaskPriorityLow, got[0].Priority)
	assert.Equal(t, domain.TaskPriorityMedium, got[1].Priority)
	assert.Equal(t, domain.TaskPriorityHigh, got[2].Priority)
}

func TestApplyQuery_SortIsStableAndDeterministic(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "first", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(3)),
		ownedTask(owner, "second", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(3)),
		ownedTask(owner, "third", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(3)),
	}

	first := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{SortColumn: "duedate"}, TaskPagination{})
	second := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{SortColumn: "duedate"}, TaskPagination{})

	assert.Equal(t, first, second)
	// Equal keys keep their input order.
	assert.Equal(t, "first", first[0].Title)
	assert.Equal(t, "second", first[1].Title)
	assert.Equal(t, "third", first[2].Title)
}

func TestApplyQuery_UnrecognizedSortColumnKeepsInputOrder(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "z", domain.TaskStatusDone, domain.TaskPriorityHigh, dayOffset(9)),
		ownedTask(owner, "a", domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(1)),
	}

	got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{SortColumn: "title"}, TaskPagination{})

	require.Len(t, got, 2)
	assert.Equal(t, "z", got[0].Title)
	assert.Equal(t, "a", got[1].Title)
}

// The upstream implementation this engine replaces took PageNumber records
// per page instead of PageSize. That was judged a defect; a page here is
// PageSize records long, and this test pins the corrected behaviour.
func TestApplyQuery_PaginationUsesPageSize(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := make([]domain.Task, 0, 12)
	for i := 0; i < 12; i++ {
		tasks = append(tasks, ownedTask(owner, string(rune('a'+i)), domain.TaskStatusTodo, domain.TaskPriorityLow, dayOffset(i)))
	}

	pageNumber, pageSize := 2, 5
	got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
		TaskPagination{PageNumber: &pageNumber, PageSize: &pageSize})

	// Page 2 of size 5 over 12 tasks: skip the first 5, take 5.
	require.Len(t, got, 5)
	assert.Equal(t, "f", got[0].Title)
	assert.Equal(t, "j", got[4].Title)
}

func TestApplyQuery_PaginationEdges(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	tasks := []domain.Task{
		ownedTask(owner, "a", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "b", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
		ownedTask(owner, "c", domain.TaskStatusTodo, domain.TaskPriorityLow, nil),
	}

	intp := func(v int) *int { return &v }

	t.Run("partial last page", func(t *testing.T) {
		t.Parallel()
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
			TaskPagination{PageNumber: intp(2), PageSize: intp(2)})
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].Title)
	})

	t.Run("page beyond the collection is empty", func(t *testing.T) {
		t.Parallel()
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
			TaskPagination{PageNumber: intp(5), PageSize: intp(2)})
		assert.Empty(t, got)
	})

	t.Run("absent pagination returns everything", func(t *testing.T) {
		t.Parallel()
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{}, TaskPagination{})
		assert.Len(t, got, 3)
	})

	// Page values whose skip multiplication overflows int must yield an
	// empty page instead of a negative slice index.
	t.Run("overflowing page number is an empty page", func(t *testing.T) {
		t.Parallel()
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
			TaskPagination{PageNumber: intp(1<<61 + 1), PageSize: intp(4)})
		assert.Empty(t, got)
	})

	t.Run("overflowing page size is an empty page", func(t *testing.T) {
		t.Parallel()
		const maxInt = int(^uint(0) >> 1)
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
			TaskPagination{PageNumber: intp(3), PageSize: intp(maxInt)})
		assert.Empty(t, got)
	})

	t.Run("huge page size on the first page returns everything", func(t *testing.T) {
		t.Parallel()
		const maxInt = int(^uint(0) >> 1)
		got := ApplyQuery(tasks, owner, TaskFilter{}, TaskSort{},
			TaskPagination{PageNumber: intp(1), PageSize: intp(maxInt)})
		assert.Len(t, got, 3)
	})
}
