package layer

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/contrast"
	"github.com/gogpu/contrast/text"
)

// Request is a resolved selection, ready for evaluation.
type Request struct {
	Background contrast.Sample
	Foreground contrast.Sample
	// Text is nil when no selected element is text.
	Text *contrast.TextContext
}

// Compute validates and evaluates the request.
func (r Request) Compute(opts ...contrast.Option) (contrast.Result, error) {
	return contrast.Compute(r.Background, r.Foreground, r.Text, opts...)
}

// Resolve turns a selection into a Request.
//
// With one element, the element is the foreground and the artboard
// background is the background; artboard must then be non-nil. With two
// elements, the first is the background and the second the foreground.
// Each element's effective alpha is its color alpha times its layer opacity.
//
// The text context comes from the last text element in selection order.
func Resolve(selection []Element, artboard *Artboard) (Request, error) {
	var (
		req  Request
		last *Text
		err  error
	)

	switch len(selection) {
	case 1:
		if artboard == nil {
			return Request{}, ErrNoArtboard
		}
		req.Background = contrast.Sample{Color: artboard.Background, Alpha: artboard.Alpha}
		if req.Foreground, err = sample(selection[0], &last); err != nil {
			return Request{}, fmt.Errorf("layer: foreground: %w", err)
		}
	case 2:
		if req.Background, err = sample(selection[0], &last); err != nil {
			return Request{}, fmt.Errorf("layer: background: %w", err)
		}
		if req.Foreground, err = sample(selection[1], &last); err != nil {
			return Request{}, fmt.Errorf("layer: foreground: %w", err)
		}
	default:
		contrast.Logger().Warn("layer: invalid selection", slog.Int("count", len(selection)))
		return Request{}, fmt.Errorf("%w (got %d)", ErrInvalidSelection, len(selection))
	}

	if last != nil {
		req.Text = text.ContextForName(last.PostScriptName, last.FontSize)
		req.Text.Heavy = req.Text.Heavy || last.Heavy
	}
	return req, nil
}

// sample reads the effective sample of e and records e in *last when it is
// a text element.
func sample(e Element, last **Text) (contrast.Sample, error) {
	c, alpha, err := e.paint()
	if err != nil {
		return contrast.Sample{}, err
	}
	switch t := e.(type) {
	case Text:
		*last = &t
	case *Text:
		*last = t
	}
	return contrast.NewSample(c, alpha, e.opacity()), nil
}
