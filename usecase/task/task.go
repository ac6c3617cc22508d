package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// CreateInput carries the caller-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
}

// Patch describes a partial task update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// UseCase performs owner-scoped task mutations. Every operation re-derives
// ownership from storage before mutating; a record owned by someone else is
// indistinguishable from a missing one.
type UseCase struct {
	tasks  repository.TaskRepository
	query  *QueryEngine
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		query:  NewQueryEngine(tasks, logger),
		logger: logger,
	}
}

// Create persists a new task for the owner. The write is the final step.
func (uc *UseCase) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Task, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}

	if err := uc.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns the owner's task or ErrTaskNotFound when it is absent or owned
// by another identity.
func (uc *UseCase) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, ownerID, taskID)
}

// List delegates to the query engine.
func (uc *UseCase) List(ctx context.Context, ownerID string, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.query.List(ctx, ownerID, filter)
}

// Update applies the patch to the owner's task. It returns false, without an
// error, when the task is missing or not owned by the caller.
func (uc *UseCase) Update(ctx context.Context, ownerID, taskID string, patch Patch) (bool, error) {
	task, err := uc.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	task.UpdatedAt = time.Now()

	if err := uc.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the owner's task with the same missing/not-owned semantics
// as Update.
func (uc *UseCase) Delete(ctx context.Context, ownerID, taskID string) (bool, error) {
	if _, err := uc.tasks.GetByID(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := uc.tasks.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
