package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a hotel or review lookup matches nothing, on
// the routes where existence is actually checked.
var ErrNotFound = errors.New("not found")

// InvalidIDError reports a path identifier that is not a well-formed 24-hex
// id. It always wins over ErrNotFound: a malformed id never reaches the store.
type InvalidIDError struct {
	Value string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Value)
}

// MalformedBodyError reports an unparsable JSON request body.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string { return "malformed request body" }
func (e *MalformedBodyError) Unwrap() error { return e.Err }

// MissingFieldError reports a required field absent from a create payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidFieldError reports a field that is present but fails its format or
// range rule.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}
