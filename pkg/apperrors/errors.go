// Package apperrors defines the error taxonomy shared by the monetize
// packages.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnknownCurrency indicates that a currency registry lookup missed.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrUnknownAttribute indicates a runtime accessor call for an attribute
// that was never defined on the instance's type.
var ErrUnknownAttribute = errors.New("unknown monetized attribute")

// ErrInvalidInstance indicates that a value passed as a record instance is
// not a non-nil pointer to a struct embedding monetize.Record.
var ErrInvalidInstance = errors.New("invalid record instance")

// ConfigurationError reports an invalid monetized-attribute declaration
// (bad column name, colliding accessor, ...). It is fatal: returned at
// declaration time and never recovered from at runtime.
type ConfigurationError struct {
	Owner  string // owner type name
	Column string // offending column or accessor name
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("monetize: invalid declaration on %s (%s): %s", e.Owner, e.Column, e.Reason)
}

// FormatError reports a monetary string that could not be parsed. Setters
// never return it; the validation pass converts it into a violation on the
// public attribute name.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid decimal format: %q", e.Raw)
}
