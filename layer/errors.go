package layer

import (
	"errors"
	"fmt"

	"github.com/gogpu/contrast"
)

// Sentinel errors for layer package.
var (
	// ErrInvalidSelection is returned when the selection cannot be turned
	// into a background and a foreground: nothing selected, more than two
	// elements, or a single element with no artboard behind it.
	ErrInvalidSelection = errors.New("layer: select one or two layers")

	// ErrNoArtboard is returned for a single element outside any artboard.
	// It matches ErrInvalidSelection.
	ErrNoArtboard = fmt.Errorf("%w: a single layer must be on an artboard", ErrInvalidSelection)

	// ErrMissingColor is returned when an element has no usable fill.
	ErrMissingColor = errors.New("layer: element has no fill")
)

// MissingColorError is returned when an element has no fill to sample.
// It matches both ErrMissingColor and contrast.ErrInvalidColor.
type MissingColorError struct {
	Name string
	Kind Kind
}

func (e *MissingColorError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("layer: %s has no fill", e.Kind)
	}
	return fmt.Sprintf("layer: %s %q has no fill", e.Kind, e.Name)
}

func (e *MissingColorError) Unwrap() []error {
	return []error{ErrMissingColor, contrast.ErrInvalidColor}
}
