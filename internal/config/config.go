// Package config loads batch files of contrast checks.
//
// A batch file lists color pairs to evaluate. YAML (.yaml, .yml) and TOML
// (.toml) are supported:
//
//	precise: false
//	checks:
//	  - name: body text
//	    background: {color: "#ffffff"}
//	    foreground: {color: "#767676", opacity: 0.9}
//	    text: {size: 16, font: Inter-Regular}
//	    expect: AA_Passed
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/contrast"
	"github.com/gogpu/contrast/layer"
	"github.com/gogpu/contrast/text"
)

// ErrUnsupportedFormat is returned for a batch file with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported batch file format")

// Format is the encoding of a batch file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File is a parsed batch file.
type File struct {
	// Precise disables 8-bit quantization of composited colors.
	Precise bool    `yaml:"precise" toml:"precise"`
	Checks  []Check `yaml:"checks" toml:"checks"`

	// dir is the directory font files are resolved against.
	dir string
}

// Layer is one side of a check.
type Layer struct {
	// Color is a hex color (alpha digits allowed) or an SVG color name.
	Color string `yaml:"color" toml:"color"`
	// Opacity is the layer opacity; nil means 1.
	Opacity *float64 `yaml:"opacity" toml:"opacity"`
}

// Text describes foreground text.
type Text struct {
	Size  float64 `yaml:"size" toml:"size"`
	Heavy bool    `yaml:"heavy" toml:"heavy"`
	// Font is a PostScript font name; names containing Bold or Medium
	// make the text heavy.
	Font string `yaml:"font" toml:"font"`
	// FontFile is a TTF/OTF file, relative to the batch file, whose weight
	// decides heaviness.
	FontFile string `yaml:"font_file" toml:"font_file"`
}

// Check is one color pair to evaluate.
type Check struct {
	Name       string `yaml:"name" toml:"name"`
	Background Layer  `yaml:"background" toml:"background"`
	Foreground Layer  `yaml:"foreground" toml:"foreground"`
	Text       *Text  `yaml:"text" toml:"text"`
	// Expect is an optional expected classification, e.g. "AA_Passed".
	Expect string `yaml:"expect" toml:"expect"`
}

// Load reads a batch file, choosing the decoder from its extension.
func Load(path string) (*File, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read batch file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a batch file held in memory. Font files are resolved
// against the working directory.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &f, nil
}

// Options returns the evaluation options the file asks for.
func (f *File) Options() []contrast.Option {
	if f.Precise {
		return []contrast.Option{contrast.WithFullPrecision()}
	}
	return nil
}

// Request resolves check i into an evaluation request.
func (f *File) Request(i int) (layer.Request, error) {
	c := f.Checks[i]

	bg, err := c.Background.sample()
	if err != nil {
		return layer.Request{}, fmt.Errorf("check %q: background: %w", c.Name, err)
	}
	fg, err := c.Foreground.sample()
	if err != nil {
		return layer.Request{}, fmt.Errorf("check %q: foreground: %w", c.Name, err)
	}
	tc, err := c.Text.context(f.dir)
	if err != nil {
		return layer.Request{}, fmt.Errorf("check %q: text: %w", c.Name, err)
	}
	return layer.Request{Background: bg, Foreground: fg, Text: tc}, nil
}

// Expected returns the expected classification of a check, if any.
func (c Check) Expected() (contrast.Classification, bool, error) {
	if c.Expect == "" {
		return 0, false, nil
	}
	var class contrast.Classification
	if err := class.UnmarshalText([]byte(c.Expect)); err != nil {
		return 0, false, fmt.Errorf("check %q: %w", c.Name, err)
	}
	return class, true, nil
}

func (l Layer) sample() (contrast.Sample, error) {
	c, alpha, err := contrast.ParseColor(l.Color)
	if err != nil {
		return contrast.Sample{}, err
	}
	opacity := 1.0
	if l.Opacity != nil {
		opacity = *l.Opacity
	}
	return contrast.NewSample(c, alpha, opacity), nil
}

func (t *Text) context(dir string) (*contrast.TextContext, error) {
	if t == nil {
		return nil, nil
	}
	heavy := t.Heavy || text.IsHeavyName(t.Font)
	if t.FontFile != "" {
		path := t.FontFile
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		info, err := text.Inspect(data, text.WithParser("gotext"))
		if err != nil {
			return nil, err
		}
		heavy = heavy || info.Heavy()
	}
	return &contrast.TextContext{FontSize: t.Size, Heavy: heavy}, nil
}
