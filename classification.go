package contrast

import "fmt"

// Classification is the WCAG 2.0 conformance outcome of a contrast ratio.
type Classification uint8

const (
	// AAFailed means the ratio meets no level for the given text.
	AAFailed Classification = iota
	// AAPassedLarge means AA is met for large or bold/medium text only.
	AAPassedLarge
	// AAPassed means AA is met for text of any size.
	AAPassed
	// AAAPassedLarge means AAA is met for large or bold/medium text only.
	AAAPassedLarge
	// AAAPassed means AAA is met for text of any size.
	AAAPassed
)

// Contrast ratio thresholds from WCAG 2.0 success criteria 1.4.3 and 1.4.6.
const (
	MinRatioAALarge  = 3.0
	MinRatioAA       = 4.5
	MinRatioAAALarge = 4.5
	MinRatioAAA      = 7.0
)

// Classify maps a contrast ratio to its conformance outcome.
//
// The rules below are applied in order and the last one that matches wins,
// so a stronger outcome overrides a weaker one:
//
//	default                       AAFailed
//	large/heavy && ratio >= 3.0   AAPassedLarge
//	ratio >= 4.5                  AAPassed
//	large/heavy && ratio >= 4.5   AAAPassedLarge
//	ratio >= 7.0                  AAAPassed
//
// Note that large or heavy text at exactly 4.5 ends in AAAPassedLarge and
// not AAPassed. Downstream reports rely on this ordering.
func Classify(ratio float64, text *TextContext) Classification {
	large := text.LargeOrHeavy()

	result := AAFailed
	if large && ratio >= MinRatioAALarge {
		result = AAPassedLarge
	}
	if ratio >= MinRatioAA {
		result = AAPassed
	}
	if large && ratio >= MinRatioAAALarge {
		result = AAAPassedLarge
	}
	if ratio >= MinRatioAAA {
		result = AAAPassed
	}
	return result
}

var classificationNames = [...]string{
	AAFailed:       "AA_Failed",
	AAPassedLarge:  "AA_Passed_Large",
	AAPassed:       "AA_Passed",
	AAAPassedLarge: "AAA_Passed_Large",
	AAAPassed:      "AAA_Passed",
}

var classificationLabels = [...]string{
	AAFailed:       "AA Failed",
	AAPassedLarge:  "AA passed (large or bold/medium text)",
	AAPassed:       "AA passed",
	AAAPassedLarge: "AAA passed (large or bold/medium text)",
	AAAPassed:      "AAA passed",
}

// String returns the identifier of c, e.g. "AA_Passed_Large".
func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return fmt.Sprintf("Classification(%d)", c)
}

// Label returns the human-readable description of c.
func (c Classification) Label() string {
	if int(c) < len(classificationLabels) {
		return classificationLabels[c]
	}
	return c.String()
}

// Badge returns the status symbol shown in front of the label.
func (c Classification) Badge() string {
	switch c {
	case AAFailed:
		return "❌"
	case AAPassedLarge, AAAPassedLarge:
		return "⚠️"
	default:
		return "✅"
	}
}

// Passed reports whether c meets AA in any form.
func (c Classification) Passed() bool {
	return c != AAFailed && int(c) < len(classificationNames)
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	if int(c) >= len(classificationNames) {
		return nil, fmt.Errorf("contrast: unknown classification %d", c)
	}
	return []byte(classificationNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(b []byte) error {
	for i, name := range classificationNames {
		if name == string(b) {
			*c = Classification(i)
			return nil
		}
	}
	return fmt.Errorf("contrast: unknown classification %q", b)
}
