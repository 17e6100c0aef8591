package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/taskhub/backend/internal/config"
	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/core/services"
	"github.com/taskhub/backend/internal/infrastructure/db"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/transport/http/handlers"
	"github.com/taskhub/backend/internal/transport/ws"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
	Hub    *ws.Hub
	Mailer ports.Mailer
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository:  taskRepo,
		Broadcaster: cfg.Hub,
		Mailer:      cfg.Mailer,
		Logger:      cfg.Logger,
	})

	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	wsHandler := handlers.NewWSHandler(cfg.Hub, cfg.Logger)

	// Static file server for the frontend build
	if cfg.Config.Server.StaticDir != "" {
		app.Static("/", cfg.Config.Server.StaticDir)
	}

	// Real-time task update channel
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/tasks", websocket.New(wsHandler.Handle))

	// API v1 routes
	api := app.Group("/api/v1")

	// Task routes (search and summary must precede /:id)
	tasks := api.Group("/tasks")
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.FilterTasks)
	tasks.Get("/search", taskHandler.SearchTasks)
	tasks.Get("/summary", taskHandler.TaskSummary)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Put("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)
	tasks.Put("/:id/complete", taskHandler.CompleteTask)
}
