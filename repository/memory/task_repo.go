package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

// TaskRepository is an in-memory implementation of the task port with the
// same owner scoping, filtering, ordering and pagination semantics as the
// Postgres one.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]domain.Task)}
}

func (r *TaskRepository) Insert(_ context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, ownerID, taskID string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[taskID]
	if !ok || !task.OwnedBy(ownerID) {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *TaskRepository) List(_ context.Context, ownerID string, filter repository.TaskFilter) ([]domain.Task, error) {
	filter.Normalize()

	r.mu.RLock()
	matched := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if !task.OwnedBy(ownerID) {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.DueDate != nil && (task.DueDate == nil || !task.DueDate.Equal(*filter.DueDate)) {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		matched = append(matched, task)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	offset := filter.Offset()
	if offset >= len(matched) {
		return []domain.Task{}, nil
	}
	end := offset + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *TaskRepository) Update(_ context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || !existing.OwnedBy(task.OwnerID) {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, ownerID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[taskID]
	if !ok || !existing.OwnedBy(ownerID) {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}
