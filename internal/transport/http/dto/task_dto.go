package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/taskhub/backend/internal/domain"
)

var validate = validator.New()

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
}

func (r *CreateTaskRequest) Validate() []string {
	return validationMessages(validate.Struct(r))
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
}

func (r *UpdateTaskRequest) Validate() []string {
	return validationMessages(validate.Struct(r))
}

type CompleteTaskRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *CompleteTaskRequest) Validate() []string {
	return validationMessages(validate.Struct(r))
}

func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return messages
}

type TaskResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToResponse(&task)
	}
	return responses
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type TaskPageResponse struct {
	Tasks       []TaskResponse `json:"tasks"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
	TotalTasks  int64          `json:"total_tasks"`
}

func TaskPageToResponse(page *domain.TaskPage) TaskPageResponse {
	return TaskPageResponse{
		Tasks:       TasksToResponse(page.Tasks),
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalTasks:  page.TotalTasks,
	}
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
