package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// requestLogger tags each request with an X-Request-ID, generating one when
// the client sent none, and logs the outcome.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)

		start := time.Now()
		err := c.Next()

		attrs := []any{
			"request_id", id,
			"method", c.Method(),
			"path", c.Path(),
			"latency", time.Since(start),
		}
		if err != nil {
			logger.Warn("Request failed.", append(attrs, "error", err)...)
		} else {
			logger.Info("Request handled.", append(attrs, "status", c.Response().StatusCode())...)
		}
		return err
	}
}
