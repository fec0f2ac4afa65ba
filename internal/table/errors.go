package table

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the table package
var (
	// ErrMissingField indicates a property definition lacks a required field
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField indicates a property field has the wrong shape
	ErrInvalidField = errors.New("invalid field")

	// ErrUnknownStyle indicates an unsupported value style
	ErrUnknownStyle = errors.New("unknown value style")
)

// MissingFieldError names the property and the field(s) it lacks
type MissingFieldError struct {
	Property string
	Fields   []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("property %q: missing field %s", e.Property, strings.Join(e.Fields, " or "))
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
