package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/analysis"
	"github.com/jmylchreest/divergent/internal/colour"
)

type analyzeOptions struct {
	spec    *specFlags
	json    bool
	samples bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:     "analyze [COLOUR...]",
		Aliases: []string{"analyse"},
		Short:   "Inspect the lightness, chroma and hue curves of a palette",
		Long: `Measure a palette in CAM02-UCS: where lightness peaks, whether each arm
is monotonic, how wide the light hat is, and how even the perceptual steps
between adjacent colours are.

With no arguments the palette is generated from the palette flags. Otherwise
the given colours are analysed in order.

Examples:
  # Analyse the default palette
  divergent analyze

  # Compare hat widths
  divergent analyze -n 11 --p2 0.5 --p4 0.5
  divergent analyze -n 11 --p2 2 --p4 2

  # Analyse an existing palette
  divergent analyze "#2166ac" "#f7f7f7" "#b2182b"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, opts, args)
		},
	}

	opts.spec = addSpecFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.json, "json", false, "output the analysis as JSON")
	cmd.Flags().BoolVar(&opts.samples, "samples", false, "list per-colour J', M' and hue")

	return cmd
}

// analysisReport is the JSON form of an analysis.
type analysisReport struct {
	Curves     *analysis.CurveMetrics     `json:"curves"`
	Uniformity *analysis.UniformityStats `json:"uniformity,omitempty"`
}

func runAnalyze(cmd *cobra.Command, a *app, opts *analyzeOptions, args []string) error {
	colours, err := analyzeInput(a, opts, args)
	if err != nil {
		return err
	}

	curves, err := analysis.Curves(colours)
	if err != nil {
		return err
	}
	report := analysisReport{Curves: curves}
	if len(colours) >= 2 {
		if report.Uniformity, err = analysis.Uniformity(colours); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, report)
	}

	if previewEnabled(a, false, false, false) {
		fmt.Fprintln(out, colour.Strip(colours, min(len(colours), 64)))
		fmt.Fprintln(out)
	}

	t := NewTable("METRIC", "VALUE").SetAlignment(1, AlignRight)
	t.AddRow("colours", strconv.Itoa(len(colours)))
	t.AddRow("midpoint index", strconv.Itoa(curves.MidpointIndex))
	t.AddRow("peak lightness index", strconv.Itoa(curves.PeakIndex))
	t.AddRow("peak lightness (J')", formatFloat(curves.PeakLightness))
	t.AddRow("min lightness index", strconv.Itoa(curves.MinIndex))
	t.AddRow("lightness range", formatFloat(curves.LightnessRange))
	t.AddRow("chroma range", formatFloat(curves.ChromaRange))
	t.AddRow("left arm monotonic", yesNo(curves.LeftMonotonic))
	t.AddRow("right arm monotonic", yesNo(curves.RightMonotonic))
	t.AddRow("peak offset ratio", formatFloat(curves.HatWidthRatio))
	t.AddRow("hat width", formatFloat(curves.HatWidth))
	if u := report.Uniformity; u != nil {
		t.AddRow("mean ΔE", formatFloat(u.Mean))
		t.AddRow("ΔE std dev", formatFloat(u.StdDev))
		t.AddRow("ΔE CV", formatFloat(u.CV))
	}
	if err := t.Write(out); err != nil {
		return err
	}

	if !opts.samples {
		return nil
	}

	fmt.Fprintln(out)
	s := NewTable("INDEX", "COLOUR", "J'", "M'", "HUE")
	for col := range 5 {
		if col != 1 {
			s.SetAlignment(col, AlignRight)
		}
	}
	for i, c := range colours {
		s.AddRow(strconv.Itoa(i), c.Hex(),
			formatFloat(curves.Lightness[i]), formatFloat(curves.Chroma[i]), formatFloat(curves.Hue[i]))
	}
	return s.Write(out)
}

// analyzeInput returns the colours to analyse: the arguments when given,
// otherwise a palette generated from the flags.
func analyzeInput(a *app, opts *analyzeOptions, args []string) ([]colour.RGB, error) {
	if len(args) > 0 {
		return parseColours(args)
	}

	spec, err := opts.spec.resolve(a, a.cfg.Format)
	if err != nil {
		return nil, err
	}
	palette, err := a.generator().Generate(spec)
	if err != nil {
		return nil, err
	}
	return palette.Colours, nil
}
