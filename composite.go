package contrast

import (
	"github.com/gogpu/contrast/internal/blend"
	icolor "github.com/gogpu/contrast/internal/color"
)

// Composite returns the apparent color of top drawn with topAlpha over bottom.
//
// Channels are blended on the 8-bit scale and, unless WithFullPrecision is
// given, rounded to the nearest integer before being mapped back to [0, 1].
func Composite(top Color, topAlpha float64, bottom Color, opts ...Option) Color {
	o := buildOptions(opts)
	return composite(top, topAlpha, bottom, o.quantize)
}

func composite(top Color, topAlpha float64, bottom Color, quantize bool) Color {
	r, g, b := blend.OverRGB(
		icolor.Expand(top.R), icolor.Expand(top.G), icolor.Expand(top.B),
		topAlpha,
		icolor.Expand(bottom.R), icolor.Expand(bottom.G), icolor.Expand(bottom.B),
	)
	if quantize {
		r, g, b = icolor.Quantize(r), icolor.Quantize(g), icolor.Quantize(b)
	}
	return Color{R: icolor.Narrow(r), G: icolor.Narrow(g), B: icolor.Narrow(b)}
}

// CompositePair returns both apparent colors of an evaluation: the
// foreground drawn over the background, and the background drawn over the
// foreground. Which of the two ends up lighter is not known in advance.
func CompositePair(bg, fg Sample, opts ...Option) (fgOverBg, bgOverFg Color) {
	o := buildOptions(opts)
	return composite(fg.Color, fg.Alpha, bg.Color, o.quantize),
		composite(bg.Color, bg.Alpha, fg.Color, o.quantize)
}
