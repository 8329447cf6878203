package color

import "math"

// Linearize converts an sRGB component to linear light using the WCAG 2.0
// transfer function.
// Formula: if s <= 0.03928: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func Linearize(s float64) float64 {
	if s <= WCAGKnee {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of an sRGB triple.
func Luminance(r, g, b float64) float64 {
	return WeightR*Linearize(r) + WeightG*Linearize(g) + WeightB*Linearize(b)
}

// Expand maps a [0,1] component onto the 8-bit [0,255] scale without rounding.
func Expand(v float64) float64 {
	return v * Scale
}

// Narrow maps an 8-bit scale value back onto [0,1].
func Narrow(v float64) float64 {
	return v / Scale
}

// Quantize rounds an 8-bit scale value to the nearest integer.
// Ties round away from zero.
func Quantize(v float64) float64 {
	return math.Round(v)
}

// ToU8 clamps a [0,1] component and converts it to uint8 with rounding.
func ToU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * Scale))
}
