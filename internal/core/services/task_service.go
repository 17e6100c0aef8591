package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
)

type taskService struct {
	repo        ports.TaskRepository
	broadcaster ports.Broadcaster
	mailer      ports.Mailer
	logger      *logger.Logger
}

type TaskServiceConfig struct {
	Repository  ports.TaskRepository
	Broadcaster ports.Broadcaster
	Mailer      ports.Mailer
	Logger      *logger.Logger
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	return &taskService{
		repo:        cfg.Repository,
		broadcaster: cfg.Broadcaster,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitleMissing
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("task_created", "id", task.ID, "title", task.Title)
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) FilterTasks(ctx context.Context, filter domain.TaskFilter) (*domain.TaskPage, error) {
	tasks, total, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &domain.TaskPage{
		Tasks:       tasks,
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalTasks:  total,
	}, nil
}

func (s *taskService) SearchTasks(ctx context.Context, term string) ([]domain.Task, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}

	tasks, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasksMatched
	}

	return tasks, nil
}

// UpdateTask is the single mutation path for field updates. Every
// successful update is broadcast to real-time subscribers.
func (s *taskService) UpdateTask(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTaskTitleMissing
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("task_updated", "id", task.ID)
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(domain.EventTaskUpdated, task)
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("task_deleted", "id", id)
	return nil
}

// CompleteTask marks the task Completed and dispatches the notification
// email without waiting for it. A mail failure is logged and never
// affects the returned result.
func (s *taskService) CompleteTask(ctx context.Context, id string, notifyEmail string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatusCompleted
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Infow("task_completed", "id", task.ID, "notify_email", notifyEmail)

	if s.mailer != nil && notifyEmail != "" {
		notified := *task
		go func() {
			if err := s.mailer.SendTaskCompleted(notifyEmail, &notified); err != nil {
				s.logger.Errorw("task_complete_email_failed", "id", notified.ID, "to", notifyEmail, "error", err)
				return
			}
			s.logger.Infow("task_complete_email_sent", "id", notified.ID, "to", notifyEmail)
		}()
	}

	return task, nil
}

func (s *taskService) Summary(ctx context.Context) (*domain.TaskSummary, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.TaskSummary{
		PendingCount:    counts[domain.TaskStatusPending],
		InProgressCount: counts[domain.TaskStatusInProgress],
		CompletedCount:  counts[domain.TaskStatusCompleted],
	}
	for _, n := range counts {
		summary.TotalCount += n
	}

	return summary, nil
}
