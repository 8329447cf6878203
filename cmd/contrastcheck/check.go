package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/contrast"
	"github.com/gogpu/contrast/layer"
	"github.com/gogpu/contrast/text"
)

// errFontWithoutSize is returned when font flags are given for a foreground
// that is not text.
var errFontWithoutSize = errors.New("--font, --heavy and --font-file require --size")

type checkFlags struct {
	bg, fg               string
	artboard             string
	bgOpacity, fgOpacity float64
	size                 float64
	heavy                bool
	font                 string
	fontFile             string
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a single foreground against a background or artboard",
		Long: `Check a single foreground color against a background.

With --bg the two colors are treated as two selected layers, background
first. With --artboard instead, the foreground is checked against the
artboard color, whose alpha is used as-is.

Colors are hex (#rgb, #rgba, #rrggbb, #rrggbbaa) or SVG color names.
Setting --size marks the foreground as text. --font, --heavy and
--font-file describe that text and require --size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			req, err := f.request()
			if err != nil {
				return err
			}
			res, err := req.Compute(g.options()...)
			if err != nil {
				return err
			}
			return r.render([]report{newReport("", res, r.tag)})
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.bg, "bg", "", "background layer color")
	fl.StringVar(&f.artboard, "artboard", "", "artboard color, used when --bg is not set")
	fl.StringVar(&f.fg, "fg", "", "foreground layer color (required)")
	fl.Float64Var(&f.bgOpacity, "bg-opacity", 1, "background layer opacity")
	fl.Float64Var(&f.fgOpacity, "fg-opacity", 1, "foreground layer opacity")
	fl.Float64Var(&f.size, "size", 0, "font size in points; marks the foreground as text")
	fl.BoolVar(&f.heavy, "heavy", false, "foreground text is bold or medium")
	fl.StringVar(&f.font, "font", "", "PostScript font name of the foreground text")
	fl.StringVar(&f.fontFile, "font-file", "", "font file of the foreground text")
	_ = cmd.MarkFlagRequired("fg")
	cmd.MarkFlagsMutuallyExclusive("bg", "artboard")

	return cmd
}

// request maps the flags onto a layer selection and resolves it.
func (f *checkFlags) request() (layer.Request, error) {
	fg, err := f.foreground()
	if err != nil {
		return layer.Request{}, err
	}

	if f.bg == "" {
		var board *layer.Artboard
		if f.artboard != "" {
			c, alpha, err := contrast.ParseColor(f.artboard)
			if err != nil {
				return layer.Request{}, fmt.Errorf("--artboard: %w", err)
			}
			board = &layer.Artboard{Background: c, Alpha: alpha}
		}
		return layer.Resolve([]layer.Element{fg}, board)
	}

	c, alpha, err := contrast.ParseColor(f.bg)
	if err != nil {
		return layer.Request{}, fmt.Errorf("--bg: %w", err)
	}
	bg := layer.Shape{
		Name:    "background",
		Fills:   []layer.Fill{{Color: c, Alpha: alpha, Enabled: true}},
		Opacity: f.bgOpacity,
	}
	return layer.Resolve([]layer.Element{bg, fg}, nil)
}

func (f *checkFlags) foreground() (layer.Element, error) {
	c, alpha, err := contrast.ParseColor(f.fg)
	if err != nil {
		return nil, fmt.Errorf("--fg: %w", err)
	}
	if f.size <= 0 {
		if f.font != "" || f.fontFile != "" || f.heavy {
			return nil, errFontWithoutSize
		}
		return layer.Shape{
			Name:    "foreground",
			Fills:   []layer.Fill{{Color: c, Alpha: alpha, Enabled: true}},
			Opacity: f.fgOpacity,
		}, nil
	}

	heavy, err := f.fontFileHeavy()
	if err != nil {
		return nil, err
	}
	return layer.Text{
		Name:           "foreground",
		TextColor:      c,
		ColorAlpha:     alpha,
		Opacity:        f.fgOpacity,
		FontSize:       f.size,
		PostScriptName: f.font,
		Heavy:          f.heavy || heavy,
	}, nil
}

// fontFileHeavy reports whether --font-file names a bold or medium face.
func (f *checkFlags) fontFileHeavy() (bool, error) {
	if f.fontFile == "" {
		return false, nil
	}
	data, err := os.ReadFile(f.fontFile)
	if err != nil {
		return false, fmt.Errorf("--font-file: %w", err)
	}
	info, err := text.Inspect(data, text.WithParser("gotext"))
	if err != nil {
		return false, fmt.Errorf("--font-file: %w", err)
	}
	return info.Heavy(), nil
}
