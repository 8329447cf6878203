package contrast

// Sample is a color as it appears on its layer: the color itself and the
// effective alpha it is drawn with.
type Sample struct {
	Color Color `json:"color" yaml:"color"`
	// Alpha is the color's own alpha multiplied by its layer opacity.
	Alpha float64 `json:"alpha" yaml:"alpha" validate:"gte=0,lte=1"`
}

// Opaque returns a fully opaque sample of c.
func Opaque(c Color) Sample {
	return Sample{Color: c, Alpha: 1}
}

// NewSample returns a sample whose effective alpha is the product of the
// color's own alpha and the opacity of the layer that contains it.
func NewSample(c Color, colorAlpha, layerOpacity float64) Sample {
	return Sample{Color: c, Alpha: colorAlpha * layerOpacity}
}

// Validate reports a *RangeError for every channel or alpha outside [0, 1].
func (s Sample) Validate() error {
	return validateAs("sample", s)
}

// Text sizes, in points, at which WCAG relaxes its contrast thresholds.
const (
	// LargeTextSize is exceeded by text that counts as large at any weight.
	LargeTextSize = 18.0
	// HeavyTextSize is the minimum size at which bold or medium text counts
	// as large.
	HeavyTextSize = 14.0
)

// TextContext describes the foreground text when the sampled element is a
// text layer. A nil *TextContext means the element is not text.
type TextContext struct {
	// FontSize is the font size in points.
	FontSize float64 `json:"font_size" yaml:"font_size" validate:"gte=0"`
	// Heavy is set for bold or medium weights.
	Heavy bool `json:"heavy" yaml:"heavy"`
}

// LargeOrHeavy reports whether t qualifies for the relaxed large-text
// thresholds: larger than 18pt, or at least 14pt and heavy.
// A nil receiver reports false.
func (t *TextContext) LargeOrHeavy() bool {
	if t == nil {
		return false
	}
	return t.FontSize > LargeTextSize || (t.FontSize >= HeavyTextSize && t.Heavy)
}
