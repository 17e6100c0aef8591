package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/config"
)

// RequestID attaches a request ID to the user context, taking it from
// the configured inbound header when present.
func RequestID(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hdr := cfg.Features.RequestIDHeader
		var reqID string
		if hdr != "" {
			reqID = c.Get(hdr)
		}
		if reqID == "" {
			reqID = uuid.New().String()
		}
		ctx := context.WithValue(c.Context(), "request_id", reqID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}
