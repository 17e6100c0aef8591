package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/core/services"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/transport/http/dto"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	input := ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
	}

	task, err := h.service.CreateTask(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskTitleMissing) || errors.Is(err, services.ErrTaskInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_create_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error creating task",
		})
	}

	h.logger.Infow("task_create_success", "id", task.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.TaskToResponse(task))
}

// FilterTasks handles GET /tasks with optional status/priority criteria,
// sorting and pagination. Out-of-range page and limit values are clamped
// rather than rejected; non-numeric ones fall back to the defaults.
func (h *TaskHandler) FilterTasks(c *fiber.Ctx) error {
	sortBy := c.Query("sort_by")
	if sortBy == "" {
		sortBy = c.Query("sortBy", "created_at")
	}

	filter := domain.NewTaskFilter(
		c.Query("status"),
		c.Query("priority"),
		sortBy,
		c.Query("order", domain.OrderAsc),
		c.QueryInt("page", 1),
		c.QueryInt("limit", domain.DefaultPageLimit),
	)

	page, err := h.service.FilterTasks(c.Context(), filter)
	if err != nil {
		h.logger.Errorw("task_filter_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error fetching tasks",
		})
	}

	return c.JSON(dto.TaskPageToResponse(page))
}

// SearchTasks handles GET /tasks/search. A missing term is a client
// error and zero matches is a not-found condition, never an empty 200.
func (h *TaskHandler) SearchTasks(c *fiber.Ctx) error {
	term := c.Query("search_term")
	if term == "" {
		term = c.Query("searchTerm")
	}

	tasks, err := h.service.SearchTasks(c.Context(), term)
	if err != nil {
		if errors.Is(err, services.ErrSearchTermRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "search term is required",
			})
		}
		if errors.Is(err, services.ErrNoTasksMatched) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "no tasks found matching the search term",
			})
		}
		h.logger.Errorw("task_search_failed", "term", term, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error searching tasks",
		})
	}

	return c.JSON(dto.TaskListResponse{Tasks: dto.TasksToResponse(tasks)})
}

func (h *TaskHandler) TaskSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context())
	if err != nil {
		h.logger.Errorw("task_summary_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error generating task summary",
		})
	}

	return c.JSON(summary)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.service.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		h.logger.Errorw("task_get_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error fetching task",
		})
	}

	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_update_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_update_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	input := ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      (*domain.TaskStatus)(req.Status),
		Priority:    (*domain.TaskPriority)(req.Priority),
	}

	task, err := h.service.UpdateTask(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		if errors.Is(err, services.ErrTaskTitleMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_update_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error updating task",
		})
	}

	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.service.DeleteTask(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		h.logger.Errorw("task_delete_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error deleting task",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	var req dto.CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_complete_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_complete_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	task, err := h.service.CompleteTask(c.Context(), c.Params("id"), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "task not found",
			})
		}
		h.logger.Errorw("task_complete_failed", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "error marking task as completed",
		})
	}

	return c.JSON(dto.TaskToResponse(task))
}
