package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// QueryEngine lists tasks for one owner. The owner predicate is mandatory and
// conjoined with whatever optional filter clauses are present; results are
// ordered by created_at then id so pages are stable across calls.
type QueryEngine struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func NewQueryEngine(tasks repository.TaskRepository, logger *zap.Logger) *QueryEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryEngine{
		tasks:  tasks,
		logger: logger,
	}
}

// List returns one page of the owner's tasks. A filter that matches nothing
// yields an empty slice, not an error.
func (e *QueryEngine) List(ctx context.Context, ownerID string, filter repository.TaskFilter) ([]domain.Task, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}

	filter.Normalize()
	tasks, err := e.tasks.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}
