package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/jo/hyperwood/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front of the codec.
type Server struct {
	app      *fiber.App
	logger   *slog.Logger
	settings *config.Settings
}

// New builds the fiber app and registers all routes.
func New(logger *slog.Logger, settings *config.Settings) *Server {
	s := &Server{
		logger:   logger,
		settings: settings,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "hef",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestLogger(logger))

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	s.app.Post("/bom", s.bom)
	s.app.Post("/requirements", s.requirements)
	s.app.Post("/eval", s.eval)
	s.app.Post("/fmt", s.format)

	return s
}

// Listen serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🪵 HEF service starting", "address", addr)
		errCh <- s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HEF service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		s.logger.Error("HEF service shutdown failed", "error", err)
		return err
	}

	// Listen returns once the listener is closed.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	s.logger.Debug("HEF service shut down gracefully.")
	return nil
}
