package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository/memory"
)

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)

	created, err := uc.Create(context.Background(), "owner-1", CreateInput{Title: "write report"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateRequiresOwner(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)

	_, err := uc.Create(context.Background(), "", CreateInput{Title: "orphan"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetHidesOtherOwnersTasks(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "alice", CreateInput{Title: "private"})
	require.NoError(t, err)

	// Missing id and someone else's id must be the same outcome.
	_, missingErr := uc.Get(ctx, "bob", "no-such-task")
	_, notOwnedErr := uc.Get(ctx, "bob", created.ID)

	assert.ErrorIs(t, missingErr, domain.ErrTaskNotFound)
	assert.ErrorIs(t, notOwnedErr, domain.ErrTaskNotFound)
	assert.Equal(t, missingErr.Error(), notOwnedErr.Error())

	task, err := uc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", task.Title)
}

func TestUpdateAppliesPatchFields(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "alice", CreateInput{
		Title:       "draft",
		Description: "initial",
	})
	require.NoError(t, err)

	newTitle := "final"
	newStatus := domain.StatusCompleted
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	ok, err := uc.Update(ctx, "alice", created.ID, Patch{
		Title:   &newTitle,
		Status:  &newStatus,
		DueDate: &due,
	})
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := uc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "initial", updated.Description, "unset patch field must stay untouched")
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateReturnsFalseWhenMissingOrNotOwned(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "alice", CreateInput{Title: "mine"})
	require.NoError(t, err)

	title := "hijacked"

	ok, err := uc.Update(ctx, "bob", created.ID, Patch{Title: &title})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Update(ctx, "alice", "no-such-task", Patch{Title: &title})
	require.NoError(t, err)
	assert.False(t, ok)

	unchanged, err := uc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", unchanged.Title)
}

func TestDeleteReturnsFalseWhenMissingOrNotOwned(t *testing.T) {
	uc := New(memory.NewTaskRepository(), nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "alice", CreateInput{Title: "mine"})
	require.NoError(t, err)

	ok, err := uc.Delete(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Delete(ctx, "alice", "no-such-task")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Delete(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = uc.Get(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
