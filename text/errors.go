package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when WithParser names a parser that was
	// never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")
)

// ParseError is returned when a parser rejects font data.
type ParseError struct {
	// Parser is the registered name of the parser that failed.
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: %s parser: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
