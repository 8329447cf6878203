package contrast

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	icolor "github.com/gogpu/contrast/internal/color"
)

// Color is an opaque sRGB color. Each component is in the range [0, 1].
// Opacity is carried separately by Sample.
type Color struct {
	R float64 `json:"r" yaml:"r" validate:"gte=0,lte=1"`
	G float64 `json:"g" yaml:"g" validate:"gte=0,lte=1"`
	B float64 `json:"b" yaml:"b" validate:"gte=0,lte=1"`
}

// RGB creates a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color to a Color and its alpha.
// The color is unpremultiplied first, so a half-transparent red yields
// pure red with alpha 0.5.
func FromColor(c color.Color) (Color, float64) {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
	}, float64(n.A) / 65535
}

// Luminance returns the WCAG 2.0 relative luminance of c.
func (c Color) Luminance() float64 {
	return icolor.Luminance(c.R, c.G, c.B)
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", icolor.ToU8(c.R), icolor.ToU8(c.G), icolor.ToU8(c.B))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Hex parses a hex color string and returns the color and its alpha.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Colors without an alpha digit pair are opaque.
func Hex(hex string) (Color, float64, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Color{}, 0, fmt.Errorf("contrast: bad hex color %q: %w", hex, ErrInvalidColor)
	}

	return Color{
		R: icolor.Narrow(float64(r)),
		G: icolor.Narrow(float64(g)),
		B: icolor.Narrow(float64(b)),
	}, icolor.Narrow(float64(a)), nil
}

// parseHex accumulates the hex digits of s into val.
// It reports false on the first non-hex byte.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// ParseColor parses a hex color or an SVG 1.1 color keyword such as
// "navy" or "white". Keywords are matched case-insensitively and are opaque.
func ParseColor(s string) (Color, float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, 0, fmt.Errorf("contrast: empty color: %w", ErrInvalidColor)
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, a := FromColor(named)
		return c, a, nil
	}
	return Hex(s)
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)
