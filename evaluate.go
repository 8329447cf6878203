package contrast

import (
	"context"
	"errors"
	"log/slog"
	"math"
)

// Luminances holds the relative luminance of every color involved in an
// evaluation. Only ForegroundOver and BackgroundOver feed the ratio; the
// other two describe the nominal colors ignoring opacity.
type Luminances struct {
	Background     float64 `json:"background" yaml:"background"`
	Foreground     float64 `json:"foreground" yaml:"foreground"`
	ForegroundOver float64 `json:"foreground_over" yaml:"foreground_over"`
	BackgroundOver float64 `json:"background_over" yaml:"background_over"`
}

// Result is the outcome of a contrast evaluation.
type Result struct {
	// Ratio is the contrast ratio rounded to one decimal place.
	Ratio float64 `json:"ratio" yaml:"ratio"`
	// Exact is the unrounded contrast ratio.
	Exact float64 `json:"exact" yaml:"exact"`
	// Classification is derived from Ratio.
	Classification Classification `json:"classification" yaml:"classification"`
	// ForegroundOver is the foreground composited over the background.
	ForegroundOver Color `json:"foreground_over" yaml:"foreground_over"`
	// BackgroundOver is the background composited over the foreground.
	BackgroundOver Color `json:"background_over" yaml:"background_over"`
	// Luminance lists the luminance of all four colors.
	Luminance Luminances `json:"luminance" yaml:"luminance"`
}

// Evaluate computes the WCAG 2.0 contrast ratio between two samples and
// classifies it against text.
//
// Both samples are composited over each other and the ratio is taken
// between the two apparent colors, lighter over darker. text may be nil
// when the foreground is not a text element.
//
// Evaluate does not validate its input. Out-of-range values produce
// meaningless ratios; use Compute to reject them.
//
// Evaluate is a pure function and is safe for concurrent use.
func Evaluate(bg, fg Sample, text *TextContext, opts ...Option) Result {
	fgOver, bgOver := CompositePair(bg, fg, opts...)

	lum := Luminances{
		Background:     bg.Color.Luminance(),
		Foreground:     fg.Color.Luminance(),
		ForegroundOver: fgOver.Luminance(),
		BackgroundOver: bgOver.Luminance(),
	}

	exact := Ratio(lum.ForegroundOver, lum.BackgroundOver)
	ratio := roundTenth(exact)
	class := Classify(ratio, text)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("contrast: evaluated",
			slog.String("foreground_over", fgOver.Hex()),
			slog.String("background_over", bgOver.Hex()),
			slog.Float64("l_fg_over", lum.ForegroundOver),
			slog.Float64("l_bg_over", lum.BackgroundOver),
			slog.Float64("ratio", ratio),
			slog.String("class", class.String()),
		)
	}

	return Result{
		Ratio:          ratio,
		Exact:          exact,
		Classification: class,
		ForegroundOver: fgOver,
		BackgroundOver: bgOver,
		Luminance:      lum,
	}
}

// Compute validates its input and evaluates it.
//
// Every channel and alpha must lie in [0, 1] and the font size, if any,
// must not be negative. Violations are reported as *RangeError values
// (joined when there are several) that match ErrInvalidColor.
func Compute(bg, fg Sample, text *TextContext, opts ...Option) (Result, error) {
	if err := validateInput(bg, fg, text); err != nil {
		Logger().Warn("contrast: rejected input", slog.String("err", err.Error()))
		return Result{}, err
	}
	return Evaluate(bg, fg, text, opts...), nil
}

func validateInput(bg, fg Sample, text *TextContext) error {
	var errs []error
	if err := validateAs("background", bg); err != nil {
		errs = append(errs, err)
	}
	if err := validateAs("foreground", fg); err != nil {
		errs = append(errs, err)
	}
	if text != nil {
		if err := validateAs("text", *text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ratio returns the WCAG contrast ratio of two relative luminances.
// The arguments may be given in either order; the lighter one is always
// used as the numerator, so the result is at least 1.
func Ratio(l1, l2 float64) float64 {
	darker, lighter := l1, l2
	if lighter <= darker {
		darker, lighter = lighter, darker
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// roundTenth rounds x to one decimal place, ties away from zero.
func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
