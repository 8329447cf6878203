// Package layer resolves a selection of design elements into the samples
// and text context that contrast.Compute takes.
//
// Elements are a closed set: Shape and Text. The host application maps its
// own layer objects onto these once, before evaluation, so the contrast
// core never inspects host types.
package layer

import (
	"github.com/gogpu/contrast"
)

// Kind identifies the variant of an Element.
type Kind uint8

const (
	// KindShape is a filled shape layer.
	KindShape Kind = iota
	// KindText is a text layer.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Fill is one fill entry of an element's style.
type Fill struct {
	Color contrast.Color
	// Alpha is the alpha channel of the fill color itself.
	Alpha   float64
	Enabled bool
}

// Element is a selected layer. It is implemented by Shape and Text only.
type Element interface {
	Kind() Kind
	// paint returns the color the element is drawn with and that color's
	// own alpha, not yet multiplied by the layer opacity.
	paint() (contrast.Color, float64, error)
	opacity() float64
}

// Shape is a generic shape layer painted by its first fill.
type Shape struct {
	Name  string
	Fills []Fill
	// Opacity is the layer opacity in [0, 1], applied on top of the fill alpha.
	Opacity float64
}

// Kind implements Element.
func (s Shape) Kind() Kind { return KindShape }

func (s Shape) paint() (contrast.Color, float64, error) {
	if len(s.Fills) == 0 {
		return contrast.Color{}, 0, &MissingColorError{Name: s.Name, Kind: KindShape}
	}
	f := s.Fills[0]
	return f.Color, f.Alpha, nil
}

func (s Shape) opacity() float64 { return s.Opacity }

// Text is a text layer.
//
// Its color is TextColor unless the first fill is enabled, in which case the
// fill color is used instead.
type Text struct {
	Name       string
	TextColor  contrast.Color
	ColorAlpha float64
	Fills      []Fill
	Opacity    float64
	// FontSize is the font size in points.
	FontSize float64
	// PostScriptName is the PostScript name of the font, e.g. "Inter-Bold".
	PostScriptName string
	// Heavy marks the text as bold or medium when the font name does not.
	Heavy bool
}

// Kind implements Element.
func (t Text) Kind() Kind { return KindText }

func (t Text) paint() (contrast.Color, float64, error) {
	if len(t.Fills) > 0 && t.Fills[0].Enabled {
		return t.Fills[0].Color, t.Fills[0].Alpha, nil
	}
	return t.TextColor, t.ColorAlpha, nil
}

func (t Text) opacity() float64 { return t.Opacity }

// Artboard is the canvas a single selected element is checked against.
type Artboard struct {
	Background contrast.Color
	// Alpha is the alpha of the background color. Artboards have no
	// separate layer opacity.
	Alpha float64
}
