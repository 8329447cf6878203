package text

import (
	"strings"

	"github.com/gogpu/contrast"
)

// Weight classes on the OS/2 usWeightClass scale.
const (
	WeightRegular = 400
	WeightMedium  = 500
	WeightBold    = 700
)

// heavyMarkers are the style words that mark a face as heavy when they
// appear in its PostScript name. Matching is case-sensitive, as in
// "Inter-Bold" or "Roboto-MediumItalic".
var heavyMarkers = []string{"Bold", "Medium"}

// IsHeavyName reports whether a PostScript font name denotes a bold or
// medium face.
func IsHeavyName(postScriptName string) bool {
	for _, m := range heavyMarkers {
		if strings.Contains(postScriptName, m) {
			return true
		}
	}
	return false
}

// FontInfo describes the properties of a face that matter for contrast
// classification.
type FontInfo struct {
	Family         string `json:"family,omitempty" yaml:"family,omitempty"`
	FullName       string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	PostScriptName string `json:"postscript_name,omitempty" yaml:"postscript_name,omitempty"`
	// Weight is the OS/2 weight class, or 0 when the parser cannot read it.
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Heavy reports whether the face is bold or medium.
// A known weight class decides; otherwise the PostScript name does, falling
// back to the full name when the PostScript name is missing.
func (f FontInfo) Heavy() bool {
	if f.Weight > 0 {
		return f.Weight >= WeightMedium
	}
	name := f.PostScriptName
	if name == "" {
		name = f.FullName
	}
	return IsHeavyName(name)
}

// TextContext returns the text context of this face at sizePt points.
func (f FontInfo) TextContext(sizePt float64) *contrast.TextContext {
	return &contrast.TextContext{FontSize: sizePt, Heavy: f.Heavy()}
}

// ContextForName returns the text context of a face known only by its
// PostScript name.
func ContextForName(postScriptName string, sizePt float64) *contrast.TextContext {
	return FontInfo{PostScriptName: postScriptName}.TextContext(sizePt)
}
