package hef

import (
	"errors"
	"fmt"
)

// Error kinds. Every decode or encode failure is a *ParseError whose Kind is
// one of these, so errors.Is(err, ErrUnknownPartIndex) and friends work on
// the returned error.
var (
	ErrMalformedHeader   = errors.New("malformed header")
	ErrInvalidDocument   = errors.New("invalid document")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrPartCountMismatch = errors.New("part count mismatch")
	ErrUnknownPartIndex  = errors.New("unknown part index")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrIO                = errors.New("i/o failure")
)

// ParseError reports where and why a document could not be read or written.
type ParseError struct {
	// Line is the 1-based line number, or 0 when the failure is not tied
	// to a single line.
	Line int
	Kind error
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "hef: " + msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(line int, kind error, format string, args ...any) *ParseError {
	var err error
	if format != "" {
		err = fmt.Errorf(format, args...)
	}
	return &ParseError{Line: line, Kind: kind, Err: err}
}

func wrapError(line int, kind error, err error) *ParseError {
	return &ParseError{Line: line, Kind: kind, Err: err}
}
