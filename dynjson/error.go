package dynjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseError is returned when text cannot be parsed as a single JSON value.
type ParseError struct {
	// Offset is the byte offset in the input at which the error was detected.
	Offset int64

	Message string

	// Err is the wrapped error, typically a *json.SyntaxError or io.ErrUnexpectedEOF.
	Err error
}

var _ error = (*ParseError)(nil)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap supports Golang 1.13+ error wrapping. See https://go.dev/blog/go1.13-errors
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(offset int64, err error) *ParseError {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	return &ParseError{
		Offset:  offset,
		Message: fmt.Sprintf(`dynjson: parse error at offset %d: %v`, offset, err),
		Err:     err,
	}
}

func eofToUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
