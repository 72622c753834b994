package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"Quanta/internal/calc"
	"Quanta/internal/catalog"
	"Quanta/internal/form"
	"Quanta/internal/sweep"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	valueStyle = lipgloss.NewStyle().Bold(true)
)

var (
	sweepField  string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	sweepOutput string
	plotWidth   int
	plotHeight  int
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list calculators and their fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCalculators(cmd.OutOrStdout())
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval [calculator] [field=value...]",
		Short:   "evaluate one calculator",
		Example: "  quanta eval higgs mass=125 vev=246",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			vals, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), c, vals)
		},
	}
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sweep [calculator] [field=value...]",
		Short:   "plot one output while varying one input",
		Example: "  quanta sweep lepton theta=0.785 E=2.5 --vary L --from 0 --to 1000",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookup(args[0])
			if err != nil {
				return err
			}
			base, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			r := sweep.Range{Field: sweepField, From: sweepFrom, To: sweepTo, Steps: sweepSteps}
			return plotSweep(cmd.OutOrStdout(), c, base, r, sweepOutput)
		},
	}
	cmd.Flags().StringVar(&sweepField, "vary", "", "input field to vary")
	cmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	cmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	cmd.Flags().IntVar(&sweepSteps, "steps", 50, "number of samples")
	cmd.Flags().StringVar(&sweepOutput, "output", "", "output quantity label (default first)")
	cmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	cmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	cmd.MarkFlagRequired("vary")
	return cmd
}

func lookup(slug string) (calc.Calculator, error) {
	c, ok := catalog.Lookup(slug)
	if !ok {
		return calc.Calculator{}, fmt.Errorf("unknown calculator %q (have %s)", slug, strings.Join(catalog.Slugs(), ", "))
	}
	return c, nil
}

// parseAssignments turns field=value arguments into form values.
func parseAssignments(args []string) (url.Values, error) {
	vals := url.Values{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected field=value, got %q", a)
		}
		vals.Set(k, v)
	}
	return vals, nil
}

func listCalculators(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tPATH\tFIELDS\tTITLE")
	for _, c := range catalog.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Slug, c.Path, strings.Join(c.FieldNames(), ","), c.Title)
	}
	return tw.Flush()
}

func evaluate(w io.Writer, c calc.Calculator, vals url.Values) error {
	out, err := c.Evaluate(vals)
	if err != nil {
		return errors.New(c.InvalidMessage())
	}
	fmt.Fprintln(w, titleStyle.Render(c.Title))
	if out.Display != "" {
		fmt.Fprintln(w, valueStyle.Render(out.Display))
		return nil
	}
	for _, q := range out.Quantities {
		label := q.Label
		if q.Unit != "" {
			label += " (" + q.Unit + ")"
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(q.Value.String()))
	}
	return nil
}

func plotSweep(w io.Writer, c calc.Calculator, base url.Values, r sweep.Range, output string) error {
	s, err := sweep.Run(c, base, r, output)
	if err != nil {
		if errors.Is(err, form.ErrInvalidInput) {
			return errors.New(c.InvalidMessage())
		}
		return err
	}
	plot, err := sweep.Plot(s, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, titleStyle.Render(c.Title))
	fmt.Fprintln(w, plot)
	return nil
}
