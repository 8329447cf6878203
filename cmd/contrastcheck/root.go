package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/contrast"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	format  string
	lang    string
	precise bool
}

func (g *globalFlags) options() []contrast.Option {
	if g.precise {
		return []contrast.Option{contrast.WithFullPrecision()}
	}
	return nil
}

func (g *globalFlags) renderer(cmd *cobra.Command) (*renderer, error) {
	tag, err := language.Parse(g.lang)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", g.lang, err)
	}
	switch g.format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("invalid --format %q: want text, json or yaml", g.format)
	}
	return newRenderer(cmd.OutOrStdout(), g.format, tag), nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "contrastcheck",
		Short:         "Check WCAG 2.0 color contrast of translucent color pairs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				contrast.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log evaluation details to stderr")
	pf.StringVar(&g.format, "format", formatText, "output format: text, json or yaml")
	pf.StringVar(&g.lang, "lang", "en", "BCP 47 language tag for number formatting")
	pf.BoolVar(&g.precise, "precise", false, "do not round composited colors to 8-bit values")

	root.AddCommand(newCheckCmd(g), newBatchCmd(g))
	return root
}
