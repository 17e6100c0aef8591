package ports

import (
	"context"

	"github.com/taskhub/backend/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	FilterTasks(ctx context.Context, filter domain.TaskFilter) (*domain.TaskPage, error)
	SearchTasks(ctx context.Context, term string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string, notifyEmail string) (*domain.Task, error)
	Summary(ctx context.Context) (*domain.TaskSummary, error)
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
}

// Broadcaster fans an event out to all connected subscribers.
// Delivery is best-effort; failures never reach the caller.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// Mailer sends the task-completion notification. One attempt, no retry.
type Mailer interface {
	SendTaskCompleted(to string, task *domain.Task) error
}
