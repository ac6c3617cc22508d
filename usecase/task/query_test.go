package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
	"github.com/taskhive/backend/repository/memory"
)

func seedTask(t *testing.T, repo *memory.TaskRepository, owner string, n int, mutate func(*domain.Task)) domain.Task {
	t.Helper()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	task := domain.Task{
		ID:        fmt.Sprintf("%s-task-%03d", owner, n),
		OwnerID:   owner,
		Title:     fmt.Sprintf("task %d", n),
		Status:    domain.StatusPending,
		Priority:  domain.PriorityMedium,
		CreatedAt: base.Add(time.Duration(n) * time.Minute),
		UpdatedAt: base.Add(time.Duration(n) * time.Minute),
	}
	if mutate != nil {
		mutate(&task)
	}
	require.NoError(t, repo.Insert(context.Background(), &task))
	return task
}

func TestListNeverLeaksOtherOwners(t *testing.T) {
	repo := memory.NewTaskRepository()
	engine := NewQueryEngine(repo, nil)
	ctx := context.Background()

	due := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	status := domain.StatusInProgress
	priority := domain.PriorityHigh

	// Bob's records match every filter clause Alice could send.
	for i := 0; i < 5; i++ {
		seedTask(t, repo, "bob", i, func(task *domain.Task) {
			task.Status = status
			task.Priority = priority
			task.DueDate = &due
		})
	}
	for i := 0; i < 3; i++ {
		seedTask(t, repo, "alice", i, func(task *domain.Task) {
			task.Status = status
			task.Priority = priority
			task.DueDate = &due
		})
	}

	filters := []repository.TaskFilter{
		{},
		{Status: &status},
		{Priority: &priority},
		{DueDate: &due},
		{Status: &status, Priority: &priority, DueDate: &due},
	}

	for i, filter := range filters {
		tasks, err := engine.List(ctx, "alice", filter)
		require.NoError(t, err, "filter %d", i)
		assert.Len(t, tasks, 3, "filter %d", i)
		for _, task := range tasks {
			assert.Equal(t, "alice", task.OwnerID, "filter %d", i)
		}
	}
}

func TestListRequiresOwner(t *testing.T) {
	engine := NewQueryEngine(memory.NewTaskRepository(), nil)

	_, err := engine.List(context.Background(), "", repository.TaskFilter{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListFilterClausesAreConjoined(t *testing.T) {
	repo := memory.NewTaskRepository()
	engine := NewQueryEngine(repo, nil)
	ctx := context.Background()

	due := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	seedTask(t, repo, "alice", 0, func(task *domain.Task) {
		task.Status = domain.StatusCompleted
		task.Priority = domain.PriorityHigh
		task.DueDate = &due
	})
	seedTask(t, repo, "alice", 1, func(task *domain.Task) {
		task.Status = domain.StatusCompleted
		task.Priority = domain.PriorityLow
	})
	seedTask(t, repo, "alice", 2, func(task *domain.Task) {
		task.Status = domain.StatusPending
		task.Priority = domain.PriorityHigh
	})

	completed := domain.StatusCompleted
	high := domain.PriorityHigh

	tasks, err := engine.List(ctx, "alice", repository.TaskFilter{Status: &completed})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = engine.List(ctx, "alice", repository.TaskFilter{Status: &completed, Priority: &high})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice-task-000", tasks[0].ID)

	tasks, err = engine.List(ctx, "alice", repository.TaskFilter{DueDate: &due})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice-task-000", tasks[0].ID)
}

func TestListEmptyResultIsNotAnError(t *testing.T) {
	engine := NewQueryEngine(memory.NewTaskRepository(), nil)

	tasks, err := engine.List(context.Background(), "alice", repository.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestPaginationCoversAllRecordsExactlyOnce(t *testing.T) {
	repo := memory.NewTaskRepository()
	engine := NewQueryEngine(repo, nil)
	ctx := context.Background()

	expected := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		task := seedTask(t, repo, "alice", i, nil)
		expected = append(expected, task.ID)
	}
	// Noise from another owner must not shift page boundaries.
	for i := 0; i < 7; i++ {
		seedTask(t, repo, "bob", i, nil)
	}

	var seen []string
	pageSizes := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		tasks, err := engine.List(ctx, "alice", repository.TaskFilter{Page: page, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, tasks, pageSizes[page-1], "page %d", page)
		for _, task := range tasks {
			seen = append(seen, task.ID)
		}
	}

	// created_at ascending with id tiebreak: pages concatenate to the full
	// set in insertion order, no duplicates, no omissions.
	assert.Equal(t, expected, seen)

	tasks, err := engine.List(ctx, "alice", repository.TaskFilter{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListAppliesPaginationDefaults(t *testing.T) {
	repo := memory.NewTaskRepository()
	engine := NewQueryEngine(repo, nil)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedTask(t, repo, "alice", i, nil)
	}

	// Zero values normalize to page 1, size 10.
	tasks, err := engine.List(ctx, "alice", repository.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	tasks, err = engine.List(ctx, "alice", repository.TaskFilter{Page: -3, PageSize: -1})
	require.NoError(t, err)
	assert.Len(t, tasks, 10)
	assert.Equal(t, "alice-task-000", tasks[0].ID)
}
