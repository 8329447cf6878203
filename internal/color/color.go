// Package color provides the sRGB transfer and quantization kernels used
// by contrast evaluation.
package color

// Channel weights of the WCAG 2.0 relative luminance (Rec. 709 primaries).
const (
	WeightR = 0.2126
	WeightG = 0.7152
	WeightB = 0.0722
)

// WCAGKnee is the sRGB linearization threshold used by WCAG 2.0.
// IEC 61966-2-1 places it at 0.04045; both give the same result for every
// 8-bit channel value.
const WCAGKnee = 0.03928

// Scale is the maximum value of an 8-bit channel.
const Scale = 255.0
