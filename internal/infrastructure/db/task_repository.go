package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/core/services"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.log.Errorw("task_repo_create_failed", "id", task.ID, "error", err)
		return fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}
	r.log.Infow("task_repo_create_ok", "id", task.ID)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		r.log.Errorw("task_repo_get_failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}
	return &task, nil
}

// Find returns one page of tasks matching the filter plus the total
// match count. The sort column comes from the domain whitelist and a
// secondary order on id keeps pagination stable across equal sort keys.
func (r *taskRepository) Find(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Task{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.log.Errorw("task_repo_count_failed", "error", err)
		return nil, 0, fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}

	var tasks []domain.Task
	err := query.
		Order(fmt.Sprintf("%s %s, id asc", filter.SortBy, filter.Order)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&tasks).Error
	if err != nil {
		r.log.Errorw("task_repo_find_failed", "error", err)
		return nil, 0, fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}

	r.log.Infow("task_repo_find_ok", "count", len(tasks), "total", total, "page", filter.Page)
	return tasks, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *taskRepository) Search(ctx context.Context, term string) ([]domain.Task, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(description) LIKE LOWER(?) ESCAPE '\'`, pattern, pattern).
		Find(&tasks).Error
	if err != nil {
		r.log.Errorw("task_repo_search_failed", "term", term, "error", err)
		return nil, fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}

	r.log.Infow("task_repo_search_ok", "term", term, "count", len(tasks))
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		r.log.Errorw("task_repo_update_failed", "id", task.ID, "error", err)
		return fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}
	r.log.Infow("task_repo_update_ok", "id", task.ID)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id)
	if result.Error != nil {
		r.log.Errorw("task_repo_delete_failed", "id", id, "error", result.Error)
		return fmt.Errorf("%w: %v", services.ErrPersistenceFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return services.ErrTaskNotFound
	}
	r.log.Infow("task_repo_delete_ok", "id", id)
	return nil
}

// CountByStatus aggregates in the store so the summary never loads the
// full collection into memory.
func (r *taskRepository) CountByStatus(ctx context.Context) (map[domain.TaskStatus]int64, error) {
	var rows []struct {
		Status domain.TaskStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		r.log.Errorw("task_repo_count_by_status_failed", "error", err)
		return nil, fmt.Errorf("%w: %v", services.ErrPersistenceFailed, err)
	}

	counts := make(map[domain.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
