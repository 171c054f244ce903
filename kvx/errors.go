package kvx

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedHeader      = errors.New("kvx: truncated header")
	ErrTruncatedOffsetTable = errors.New("kvx: truncated offset table")
	ErrTruncatedSlabData    = errors.New("kvx: truncated slab data")
	ErrStructuralMismatch   = errors.New("kvx: structural mismatch")
	ErrNegativeRunLength    = errors.New("kvx: negative run length")
	ErrRunLengthMismatch    = errors.New("kvx: run length mismatch")
	ErrTruncatedPalette     = errors.New("kvx: truncated palette")
	ErrCoordinateRange      = errors.New("kvx: coordinate out of range")
)

// FormatError locates a decoding failure. Column and Row are -1 when the
// failure is not tied to a cell.
type FormatError struct {
	Err    error
	Offset int64
	Column int
	Row    int
	Detail string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	if e.Column >= 0 {
		msg += fmt.Sprintf(" (column %d, row %d)", e.Column, e.Row)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(err error, offset int64, format string, args ...any) *FormatError {
	return &FormatError{Err: err, Offset: offset, Column: -1, Row: -1, Detail: fmt.Sprintf(format, args...)}
}

func cellErr(err error, offset int64, x, y int, format string, args ...any) *FormatError {
	return &FormatError{Err: err, Offset: offset, Column: x, Row: y, Detail: fmt.Sprintf(format, args...)}
}
