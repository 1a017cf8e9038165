package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned (wrapped in a [*ParseError]) when a required
	// field is absent or null.
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidField is returned (wrapped in a [*ParseError]) when a value
	// has the wrong JSON shape, or the document is not valid JSON at all.
	ErrInvalidField = errors.New("field has invalid shape")
)

// ParseError reports where in the raw document parsing failed.
//
// Path is a JSONPath-like locator such as
// "$[0].Subchannel_list[1].Client_list[0].Client_nickname".
type ParseError struct {
	Path   string
	Reason error
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse channel tree at %s: %v", e.Path, e.Reason)
	}
	return fmt.Sprintf("parse channel tree at %s: %v: %v", e.Path, e.Reason, e.Err)
}

// Unwrap exposes both the sentinel reason and the underlying decoder error
// to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func newParseError(path string, reason, err error) *ParseError {
	return &ParseError{Path: path, Reason: reason, Err: err}
}
