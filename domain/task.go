package domain

import (
	"fmt"
	"time"
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority enumerates task urgency levels.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ParseTaskStatus validates a raw status value.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	switch TaskStatus(raw) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(raw), nil
	}
	return "", fmt.Errorf("unknown task status %q", raw)
}

// ParseTaskPriority validates a raw priority value.
func ParseTaskPriority(raw string) (TaskPriority, error) {
	switch TaskPriority(raw) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(raw), nil
	}
	return "", fmt.Errorf("unknown task priority %q", raw)
}

// Task represents an owner-scoped activity item. OwnerID is never empty for a
// persisted task; all reads and writes are scoped to it.
type Task struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// OwnedBy reports whether the task belongs to the given identity.
func (t *Task) OwnedBy(ownerID string) bool {
	return t != nil && ownerID != "" && t.OwnerID == ownerID
}
