package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/contrast/internal/config"
)

// errChecksFailed is returned when --strict is set and a check fails AA,
// or when a check does not match its expected classification.
var errChecksFailed = errors.New("contrast checks failed")

func newBatchCmd(g *globalFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate every check in a YAML or TOML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}

			opts := append(g.options(), f.Options()...)
			reports := make([]report, 0, len(f.Checks))
			var failed []string

			for i, c := range f.Checks {
				req, err := f.Request(i)
				if err != nil {
					return err
				}
				res, err := req.Compute(opts...)
				if err != nil {
					return fmt.Errorf("check %q: %w", c.Name, err)
				}

				rep := newReport(c.Name, res, r.tag)
				want, ok, err := c.Expected()
				if err != nil {
					return err
				}
				if ok {
					rep.Expect = &want
				}
				// A check is counted once even when it misses both its
				// expectation and the --strict bar.
				switch {
				case ok && want != res.Classification:
					failed = append(failed, fmt.Sprintf("%s: got %s, want %s", c.Name, res.Classification, want))
				case strict && !res.Classification.Passed():
					failed = append(failed, fmt.Sprintf("%s: %s", c.Name, res.Classification))
				}
				reports = append(reports, rep)
			}

			if err := r.render(reports); err != nil {
				return err
			}
			if len(failed) > 0 {
				for _, msg := range failed {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return fmt.Errorf("%w: %d of %d", errChecksFailed, len(failed), len(f.Checks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any check does not pass AA")
	return cmd
}
