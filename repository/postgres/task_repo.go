package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Insert(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO tasks (id, owner_id, title, description, due_date, status, priority)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		nullTime(task.DueDate),
		task.Status,
		task.Priority,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) GetByID(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	const query = `
	SELECT id, owner_id, title, description, due_date, status, priority, created_at, updated_at
	FROM tasks
	WHERE owner_id = $1 AND id = $2
	`
	return scanTask(r.pool.QueryRow(ctx, query, ownerID, taskID))
}

// List builds the filter query dynamically. The owner predicate is always the
// first clause; created_at/id ordering keeps pagination stable across calls.
func (r *taskRepository) List(ctx context.Context, ownerID string, filter repository.TaskFilter) ([]domain.Task, error) {
	filter.Normalize()

	query := `
	SELECT id, owner_id, title, description, due_date, status, priority, created_at, updated_at
	FROM tasks
	WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.DueDate != nil {
		args = append(args, *filter.DueDate)
		query += fmt.Sprintf(" AND due_date = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}

	args = append(args, filter.PageSize, filter.Offset())
	query += fmt.Sprintf(" ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		due_date = $5,
		status = $6,
		priority = $7,
		updated_at = NOW()
	WHERE owner_id = $1 AND id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.OwnerID,
		task.ID,
		task.Title,
		task.Description,
		nullTime(task.DueDate),
		task.Status,
		task.Priority,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	const query = `DELETE FROM tasks WHERE owner_id = $1 AND id = $2`
	tag, err := r.pool.Exec(ctx, query, ownerID, taskID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var due *time.Time

	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&due,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.DueDate = due
	return &task, nil
}
