package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/jo/hyperwood/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
hef - read and write Hyperwood Exchange Format files.

Usage:
  hef [options] <command> [arguments]

Commands:
  parameters     Print the parameters document
  variant        Print the variant
  properties     Print the properties document
  bom            Print the bill of materials
  requirements   Print the total slat length required
  eval EXPR      Evaluate an HCL expression against the model
  fmt            Re-encode the input as canonical HEF
  stocks         List the stock presets from the settings files
  serve          Serve the commands over HTTP

Options:
`

// Parse processes command-line arguments. Options may appear before or after
// the command. It returns a populated app.Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hef", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	filenameFlag := flagSet.String("filename", "", "HEF filename. If omitted, read STDIN.")
	fFlag := flagSet.String("f", "", "HEF filename (shorthand).")
	configFlag := flagSet.String("config", "hef.hcl", "Settings file or directory of .hcl files.")
	stockFlag := flagSet.String("stock", "", "Name of a stock preset that replaces the model variant.")
	formatFlag := flagSet.String("format", "json", "Output format for documents. Options: 'json' or 'yaml'.")
	listenFlag := flagSet.String("listen", "", "Address for the serve command. Defaults to the settings file, then ':8080'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var positional []string
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if flagSet.NArg() == 0 {
			break
		}
		positional = append(positional, flagSet.Arg(0))
		rest = flagSet.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	if len(positional) == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing command"}
	}

	input := *filenameFlag
	if input == "" {
		input = *fFlag
	}

	var configPaths []string
	if *configFlag != "" {
		configPaths = []string{*configFlag}
	}

	config, err := app.NewConfig(app.Config{
		Command:     positional[0],
		Args:        positional[1:],
		InputPath:   input,
		ConfigPaths: configPaths,
		Stock:       *stockFlag,
		Format:      *formatFlag,
		Listen:      *listenFlag,
		LogFormat:   *logFormatFlag,
		LogLevel:    *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
