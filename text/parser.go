package text

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/contrast"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and describes the face.
	Parse(data []byte) (FontInfo, error)
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu sync.RWMutex
	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

func lookupParser(name string) (FontParser, error) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}

// InspectOption configures Inspect.
type InspectOption func(*inspectOptions)

type inspectOptions struct {
	parser string
}

// WithParser selects a registered parser by name.
func WithParser(name string) InspectOption {
	return func(o *inspectOptions) {
		o.parser = name
	}
}

// Inspect parses font data and describes the face.
func Inspect(data []byte, opts ...InspectOption) (FontInfo, error) {
	o := inspectOptions{parser: defaultParserName}
	for _, opt := range opts {
		opt(&o)
	}

	if len(data) == 0 {
		return FontInfo{}, ErrEmptyFontData
	}
	p, err := lookupParser(o.parser)
	if err != nil {
		return FontInfo{}, err
	}

	info, err := p.Parse(data)
	if err != nil {
		contrast.Logger().Warn("text: font rejected",
			slog.String("parser", o.parser),
			slog.String("err", err.Error()))
		return FontInfo{}, err
	}
	contrast.Logger().Debug("text: font inspected",
		slog.String("parser", o.parser),
		slog.String("postscript", info.PostScriptName),
		slog.Float64("weight", info.Weight),
		slog.Bool("heavy", info.Heavy()))
	return info, nil
}
