package ports

import (
	"context"

	"github.com/taskhub/backend/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Find(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int64, error)
	Search(ctx context.Context, term string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.TaskStatus]int64, error)
}
