package app

import (
	"errors"
	"fmt"
	"strings"
)

// Commands understood by App.Run.
const (
	CommandParameters   = "parameters"
	CommandVariant      = "variant"
	CommandProperties   = "properties"
	CommandBOM          = "bom"
	CommandRequirements = "requirements"
	CommandEval         = "eval"
	CommandFmt          = "fmt"
	CommandStocks       = "stocks"
	CommandServe        = "serve"
)

// commandArgs maps each command to the number of positional arguments it takes.
var commandArgs = map[string]int{
	CommandParameters:   0,
	CommandVariant:      0,
	CommandProperties:   0,
	CommandBOM:          0,
	CommandRequirements: 0,
	CommandEval:         1,
	CommandFmt:          0,
	CommandStocks:       0,
	CommandServe:        0,
}

// Output formats for documents.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultListen    = ":8080"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty log and listen fields fall back to the settings files, then to
// built-in defaults.
type Config struct {
	Command string
	Args    []string

	InputPath   string // HEF file; stdin when empty or "-"
	ConfigPaths []string
	Stock       string
	Format      string
	Listen      string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("a command is required")
	}
	want, ok := commandArgs[cfg.Command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if len(cfg.Args) != want {
		return nil, fmt.Errorf("command %q takes %d argument(s), got %d", cfg.Command, want, len(cfg.Args))
	}

	cfg.Format = strings.ToLower(cfg.Format)
	switch cfg.Format {
	case "":
		cfg.Format = FormatJSON
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'json' or 'yaml'", cfg.Format)
	}

	if err := validateLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateLogging accepts empty values as "not set".
func validateLogging(level, format string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	switch format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
