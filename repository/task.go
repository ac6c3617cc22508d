package repository

import (
	"context"
	"time"

	"github.com/taskhive/backend/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TaskFilter narrows a task listing. Nil fields impose no constraint; the
// owner scope is passed separately and is never optional.
type TaskFilter struct {
	Status   *domain.TaskStatus
	DueDate  *time.Time
	Priority *domain.TaskPriority
	Page     int
	PageSize int
}

// Normalize applies the pagination defaults and bounds.
func (f *TaskFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// Offset returns the number of records skipped before the current page.
func (f TaskFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// TaskRepository is the persistence port for tasks. All lookups are scoped by
// owner: a task that exists but belongs to someone else behaves exactly like
// a missing one.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	List(ctx context.Context, ownerID string, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, ownerID, taskID string) error
}
