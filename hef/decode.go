package hef

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Magic lines every document starts with.
const (
	MagicFormat  = "Hyperwood Exchange Format"
	MagicVersion = "Version 1"
	MagicSite    = "hyperwood.org"
)

var magicLines = [...]string{MagicFormat, MagicVersion, MagicSite}

// recordFields is the token count of a slat record.
const recordFields = 8

// maxLineSize bounds a single line, metadata lines included.
const maxLineSize = 16 << 20

// lineReader hands out lines and remembers the 1-based number of the last
// one returned.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &lineReader{sc: sc}
}

// next returns io.EOF at the end of input and a *ParseError of kind ErrIO
// when the underlying reader fails.
func (r *lineReader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", wrapError(r.line+1, ErrIO, err)
		}
		return "", io.EOF
	}
	r.line++
	return r.sc.Text(), nil
}

// header reads a line that must be present, reporting a missing one as a
// malformed header.
func (r *lineReader) header(what string) (string, error) {
	text, err := r.next()
	if errors.Is(err, io.EOF) {
		return "", newError(r.line+1, ErrMalformedHeader, "missing %s line", what)
	}
	return text, err
}

// Decode reads a complete HEF document. The magic lines are checked
// literally. Any failure aborts the whole decode and no model is returned.
func Decode[P, Q any](r io.Reader) (*Model[P, Q], error) {
	lr := newLineReader(r)

	for _, want := range magicLines {
		got, err := lr.header("magic")
		if err != nil {
			return nil, err
		}
		if got != want {
			return nil, newError(lr.line, ErrMalformedHeader, "expected %q, got %q", want, got)
		}
	}

	m := &Model[P, Q]{Variant: DefaultVariant()}

	name, err := lr.header("name")
	if err != nil {
		return nil, err
	}
	m.Name = name

	if err := decodeDocument(lr, "parameters", &m.Parameters); err != nil {
		return nil, err
	}
	if err := decodeDocument(lr, "variant", &m.Variant); err != nil {
		return nil, err
	}
	if err := decodeDocument(lr, "properties", &m.Properties); err != nil {
		return nil, err
	}

	parts, err := decodePartTable(lr)
	if err != nil {
		return nil, err
	}

	slats, err := decodeRecords(lr, parts)
	if err != nil {
		return nil, err
	}
	m.Slats = slats

	return m, nil
}

func decodeDocument(lr *lineReader, what string, into any) error {
	text, err := lr.header(what)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), into); err != nil {
		return newError(lr.line, ErrInvalidDocument, "%s: %w", what, err)
	}
	return nil
}

func decodePartTable(lr *lineReader) ([]string, error) {
	text, err := lr.header("part count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, wrapError(lr.line, ErrInvalidNumber, err)
	}
	if n < 0 {
		return nil, newError(lr.line, ErrInvalidNumber, "negative part count %d", n)
	}

	parts := make([]string, 0, n)
	for len(parts) < n {
		text, err := lr.next()
		if errors.Is(err, io.EOF) {
			return nil, newError(lr.line, ErrPartCountMismatch, "declared %d parts, found %d", n, len(parts))
		}
		if err != nil {
			return nil, err
		}
		if looksLikeRecord(strings.Fields(text)) {
			return nil, newError(lr.line, ErrPartCountMismatch, "declared %d parts, found %d before the first slat record", n, len(parts))
		}
		parts = append(parts, text)
	}
	return parts, nil
}

func decodeRecords(lr *lineReader, parts []string) ([]Slat, error) {
	var slats []Slat
	for {
		text, err := lr.next()
		if errors.Is(err, io.EOF) {
			return slats, nil
		}
		if err != nil {
			return nil, err
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != recordFields {
			// A line with a non-numeric token before the first record is a
			// part name: the table was longer than declared.
			if len(slats) == 0 && !allNumbers(fields) {
				return nil, newError(lr.line, ErrPartCountMismatch, "declared %d parts, found more", len(parts))
			}
			return nil, newError(lr.line, ErrMalformedRecord, "expected %d fields, got %d", recordFields, len(fields))
		}

		slat, err := parseRecord(fields, parts)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = lr.line
			}
			return nil, err
		}
		slats = append(slats, slat)
	}
}

// parseRecord maps fields positionally: 0-2 origin, 3-5 vector, 6 layer,
// 7 part index.
func parseRecord(fields []string, parts []string) (Slat, error) {
	var nums [6]float64
	for i := range nums {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Slat{}, wrapError(0, ErrInvalidNumber, err)
		}
		nums[i] = f
	}

	layer, err := strconv.Atoi(fields[6])
	if err != nil {
		return Slat{}, wrapError(0, ErrInvalidNumber, err)
	}
	index, err := strconv.Atoi(fields[7])
	if err != nil {
		return Slat{}, wrapError(0, ErrInvalidNumber, err)
	}
	if index < 0 || index >= len(parts) {
		return Slat{}, newError(0, ErrUnknownPartIndex, "index %d outside table of %d parts", index, len(parts))
	}

	return Slat{
		Name:   parts[index],
		Layer:  layer,
		Origin: Point{X: nums[0], Y: nums[1], Z: nums[2]},
		Vector: Vector{X: nums[3], Y: nums[4], Z: nums[5]},
	}, nil
}

func looksLikeRecord(fields []string) bool {
	if len(fields) != recordFields {
		return false
	}
	for _, f := range fields[:6] {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	for _, f := range fields[6:] {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}

func allNumbers(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}
