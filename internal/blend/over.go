// Package blend implements the alpha compositing used to resolve the
// apparent color of a translucent layer.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Over composites a straight-alpha top channel onto a bottom channel that is
// treated as opaque: top*alpha + bottom*(1-alpha).
//
// Both channels must be on the same scale; the result stays on that scale.
// This is the Porter-Duff source-over operator with the destination alpha
// fixed at 1, so no unpremultiply step is needed.
func Over(top, topAlpha, bottom float64) float64 {
	return top*topAlpha + bottom*(1-topAlpha)
}

// OverRGB applies Over to each channel of an RGB triple.
func OverRGB(tr, tg, tb, topAlpha, br, bg, bb float64) (r, g, b float64) {
	return Over(tr, topAlpha, br), Over(tg, topAlpha, bg), Over(tb, topAlpha, bb)
}
