package server

import (
	"bytes"
	"errors"
	"math"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/hashicorp/hcl/v2"
	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/config"
	"github.com/jo/hyperwood/internal/document"
	"github.com/jo/hyperwood/internal/query"
)

type model = hef.Model[document.Document, document.Document]

// decode reads the request body as a HEF document and applies ?stock=.
func (s *Server) decode(c fiber.Ctx) (*model, error) {
	m, err := hef.Decode[document.Document, document.Document](bytes.NewReader(c.Body()))
	if err != nil {
		return nil, err
	}
	if name := c.Query("stock"); name != "" {
		stock, err := s.settings.Stock(name)
		if err != nil {
			return nil, err
		}
		m = m.WithVariant(stock.Variant)
	}
	return m, nil
}

func (s *Server) bom(c fiber.Ctx) error {
	m, err := s.decode(c)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(m.BOM())
}

func (s *Server) requirements(c fiber.Ctx) error {
	m, err := s.decode(c)
	if err != nil {
		return err
	}
	// A zero-length slat has no direction and makes the total NaN, which
	// JSON cannot carry.
	var total any = m.LengthTotal()
	if f := total.(float64); math.IsNaN(f) || math.IsInf(f, 0) {
		total = nil
	}
	return c.JSON(fiber.Map{"length_total": total})
}

func (s *Server) eval(c fiber.Ctx) error {
	expr := strings.TrimSpace(c.Query("expr"))
	if expr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter 'expr' is required")
	}
	m, err := s.decode(c)
	if err != nil {
		return err
	}
	v, err := query.Eval(m, expr)
	if err != nil {
		return err
	}
	out, err := query.Format(v)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(out)
}

func (s *Server) format(c fiber.Ctx) error {
	m, err := s.decode(c)
	if err != nil {
		return err
	}
	out, err := m.HEF()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(out)
}

// handleError maps codec, settings and expression failures to client errors.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}

	var (
		perr  *hef.ParseError
		ferr  *fiber.Error
		diags hcl.Diagnostics
	)
	switch {
	case errors.As(err, &perr):
		code = fiber.StatusUnprocessableEntity
		body["kind"] = perr.Kind.Error()
		if perr.Line > 0 {
			body["line"] = perr.Line
		}
	case errors.Is(err, config.ErrUnknownStock), errors.As(err, &diags):
		code = fiber.StatusBadRequest
	case errors.As(err, &ferr):
		code = ferr.Code
		body["error"] = ferr.Message
	}

	if code >= fiber.StatusInternalServerError {
		s.logger.Error("Unhandled request error.", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(body)
}
