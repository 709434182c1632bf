package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/ctxlog"
	"github.com/jo/hyperwood/internal/document"
	"github.com/jo/hyperwood/internal/query"
	"github.com/jo/hyperwood/internal/server"
	"github.com/zclconf/go-cty/cty"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", a.config.Command)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	switch a.config.Command {
	case CommandServe:
		return a.serve(ctx)
	case CommandStocks:
		return a.printStocks()
	}

	m, err := a.readModel(ctx)
	if err != nil {
		return err
	}

	switch a.config.Command {
	case CommandParameters:
		return a.printDocument(m.Parameters)
	case CommandProperties:
		return a.printDocument(m.Properties)
	case CommandVariant:
		b, err := json.Marshal(m.Variant)
		if err != nil {
			return fmt.Errorf("failed to encode variant: %w", err)
		}
		d, err := document.Parse(b)
		if err != nil {
			return fmt.Errorf("failed to encode variant: %w", err)
		}
		return a.printDocument(d)
	case CommandBOM:
		return a.write(m.BOM())
	case CommandRequirements:
		return a.write(hef.FormatLength(m.LengthTotal()) + "\n")
	case CommandEval:
		v, err := query.Eval(m, a.config.Args[0])
		if err != nil {
			return err
		}
		return a.printValue(v)
	case CommandFmt:
		if err := m.Encode(a.streams.Out); err != nil {
			return fmt.Errorf("failed to write model: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}

// readModel decodes the whole input and applies the stock preset, if any.
func (a *App) readModel(ctx context.Context) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var r io.Reader = a.streams.In
	source := "stdin"
	if p := a.config.InputPath; p != "" && p != "-" {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		source = p
	}

	m, err := hef.Decode[document.Document, document.Document](r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	logger.Debug("Model decoded.", "source", source, "name", m.Name, "slats", len(m.Slats))

	if a.config.Stock != "" {
		stock, err := a.settings.Stock(a.config.Stock)
		if err != nil {
			return nil, err
		}
		m = m.WithVariant(stock.Variant)
		logger.Debug("Stock preset applied.", "stock", stock.Name, "variant", stock.Variant)
	}

	return m, nil
}

func (a *App) serve(ctx context.Context) error {
	addr := firstNonEmpty(a.config.Listen, a.settings.Listen, defaultListen)
	srv := server.New(a.logger, a.settings)
	return srv.Listen(ctx, addr)
}

func (a *App) printStocks() error {
	stocks := make(map[string]cty.Value, len(a.settings.Stocks))
	for _, name := range a.settings.StockNames() {
		s := a.settings.Stocks[name]
		stocks[name] = cty.ObjectVal(map[string]cty.Value{
			"description": cty.StringVal(s.Description),
			"x":           cty.NumberFloatVal(s.Variant.X),
			"y":           cty.NumberFloatVal(s.Variant.Y),
			"z":           cty.NumberFloatVal(s.Variant.Z),
		})
	}
	return a.printValue(cty.ObjectVal(stocks))
}

func (a *App) printValue(v cty.Value) error {
	return a.printDocument(document.FromValue(v))
}

func (a *App) printDocument(d document.Document) error {
	var (
		out string
		err error
	)
	if a.config.Format == FormatYAML {
		out, err = d.YAML()
	} else {
		out, err = d.JSON()
		out += "\n"
	}
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return a.write(out)
}

func (a *App) write(s string) error {
	if _, err := io.WriteString(a.streams.Out, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
