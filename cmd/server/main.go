package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/taskhub/backend/internal/config"
	"github.com/taskhub/backend/internal/infrastructure/db"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"github.com/taskhub/backend/internal/infrastructure/mail"
	transporthttp "github.com/taskhub/backend/internal/transport/http"
	httpmw "github.com/taskhub/backend/internal/transport/http/middleware"
	"github.com/taskhub/backend/internal/transport/ws"
	"gorm.io/gorm"
)

func main() {
	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "../config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	database, err := db.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Info("database connection established")

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	log.Info("database migrations completed")

	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ErrorHandler:          globalErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	allowedOrigins := "http://localhost:3000"
	if len(cfg.Server.AllowedOrigins) > 0 {
		allowedOrigins = strings.Join(cfg.Server.AllowedOrigins, ",")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, HEAD, PUT, DELETE, PATCH",
	}))

	app.Use(httpmw.RequestID(cfg))
	if cfg.Features.EnableRequestLogging {
		app.Use(httpmw.AccessLog(log))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	hub := ws.NewHub(log)
	mailer := mail.NewSMTPMailer(cfg.Mail, log)

	transporthttp.SetupRoutes(app, transporthttp.RouterConfig{
		DB:     database,
		Logger: log,
		Config: cfg,
		Hub:    hub,
		Mailer: mailer,
	})

	go func() {
		if err := app.Listen(cfg.Server.Address()); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	log.Infof("server started on %s", cfg.Server.Address())

	gracefulShutdown(app, database, log)
}

func globalErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code == fiber.StatusNotFound || code == fiber.StatusRequestTimeout {
			log.Warnw("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
				"request_id", c.Context().Value("request_id"),
			)
		} else {
			log.Errorw("request error",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
				"request_id", c.Context().Value("request_id"),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, database *gorm.DB, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	if err := db.Close(database); err != nil {
		log.Errorf("failed to close database connection: %v", err)
	}

	log.Info("server exited gracefully")
}
