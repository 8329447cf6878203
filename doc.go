// Package contrast computes the WCAG 2.0 contrast ratio between two colors
// that may each be partly transparent, and classifies the ratio against the
// AA and AAA conformance levels.
//
// # Quick Start
//
//	import "github.com/gogpu/contrast"
//
//	bg := contrast.Opaque(contrast.White)
//	fg := contrast.NewSample(contrast.RGB(0.46, 0.46, 0.46), 1, 1)
//
//	res, err := contrast.Compute(bg, fg, &contrast.TextContext{FontSize: 16})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res) // ✅ AA passed  4.6:1
//
// # Compositing
//
// A foreground drawn with opacity shows some of the background through it,
// and a translucent background shows some of the foreground. Both apparent
// colors are computed with the "over" operator, and the ratio is taken
// between them, lighter over darker. Composited channels are rounded to
// 8-bit values by default; pass WithFullPrecision to keep full precision.
//
// # Classification
//
// Ratios are rounded to one decimal place before classification. Large
// text (over 18pt, or at least 14pt when bold or medium) uses the relaxed
// thresholds 3.0 (AA) and 4.5 (AAA); see Classify for the exact rules.
//
// # Collaborators
//
// Package layer resolves a selection of shape and text elements into the
// samples and text context that Compute takes. Package text derives the
// heavy flag of a TextContext from a font file or font name.
package contrast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
