package contrast

import (
	"errors"
	"fmt"
)

// Sentinel errors for contrast package.
var (
	// ErrInvalidColor is returned when a color channel, alpha or text
	// metric is outside its valid range, or a color string cannot be parsed.
	ErrInvalidColor = errors.New("contrast: invalid color input")
)

// RangeError reports a single input value outside its valid range.
// It unwraps to ErrInvalidColor.
type RangeError struct {
	// Field is the dotted path of the offending value, e.g. "foreground.alpha".
	Field string
	// Value is the rejected value.
	Value any
	// Rule is the violated constraint, e.g. "lte=1".
	Rule string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("contrast: %s = %v violates %s", e.Field, e.Value, e.Rule)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidColor
}
