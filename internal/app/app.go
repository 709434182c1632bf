package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/config"
	"github.com/jo/hyperwood/internal/ctxlog"
	"github.com/jo/hyperwood/internal/document"
)

// Model is the model shape the tool works with: schema-less parameters and
// properties.
type Model = hef.Model[document.Document, document.Document]

// Streams are the process streams an App reads from and writes to. Command
// output goes to Out, logs go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams  Streams
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
}

// NewApp loads settings through loader and returns a ready App. Flags in
// cfg take precedence over values from the settings files.
func NewApp(ctx context.Context, streams Streams, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(firstNonEmpty(cfg.LogLevel, defaultLogLevel), firstNonEmpty(cfg.LogFormat, defaultLogFormat), streams.Err)
	ctx = ctxlog.WithLogger(ctx, logger)

	settings, err := loader.Load(ctx, cfg.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := validateLogging(settings.LogLevel, settings.LogFormat); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	level := firstNonEmpty(cfg.LogLevel, settings.LogLevel, defaultLogLevel)
	format := firstNonEmpty(cfg.LogFormat, settings.LogFormat, defaultLogFormat)
	logger = newLogger(level, format, streams.Err)
	logger.Debug("Logger configured.", "level", level, "format", format)

	if cfg.Stock != "" {
		if _, err := settings.Stock(cfg.Stock); err != nil {
			return nil, err
		}
	}

	return &App{
		streams:  streams,
		logger:   logger,
		config:   cfg,
		settings: settings,
	}, nil
}

// Settings returns the merged settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}
