package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/analysis"
	"github.com/jmylchreest/divergent/internal/colour"
	"github.com/jmylchreest/divergent/internal/diverging"
)

type brandOptions struct {
	n         int
	threshold float64
	json      bool
	format    string
}

func newBrandCmd(a *app) *cobra.Command {
	opts := &brandOptions{}

	cmd := &cobra.Command{
		Use:   "brand LEFT RIGHT",
		Short: "Suggest palette parameters from two brand colours",
		Long: `Derive a classic diverging palette whose arms carry the hues of two brand
colours. Endpoints are darker than the brand colours so each brand colour
lands partway along its arm. The suggested parameters are printed together
with the generated palette and how close each brand colour comes to it.

Examples:
  divergent brand "#1E3A8A" "#DC2626"
  divergent brand navy crimson -n 11 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrand(cmd, a, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "count", "n", 21, "number of colours")
	cmd.Flags().Float64VarP(&opts.threshold, "threshold", "t", analysis.DefaultProximityThreshold, "ΔE below which a brand colour counts as reached")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (hex, rgb, rgb_strings)")

	return cmd
}

// brandReport is the JSON form of a brand suggestion.
type brandReport struct {
	Spec    diverging.Spec     `json:"spec"`
	Palette *diverging.Palette `json:"palette"`
	Matches []analysis.Match   `json:"matches"`
}

func runBrand(cmd *cobra.Command, a *app, opts *brandOptions, args []string) error {
	brand, err := parseColours(args)
	if err != nil {
		return err
	}

	spec := diverging.SuggestFromBrand(brand[0], brand[1], opts.n)
	spec.Format = a.cfg.Format
	if opts.format != "" {
		if spec.Format, err = diverging.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	palette, err := a.generator().Generate(spec)
	if err != nil {
		return err
	}

	threshold := opts.threshold
	if !cmd.Flags().Changed("threshold") {
		threshold = a.cfg.Threshold
	}
	matches, err := analysis.NearestColours(palette.Colours, brand, threshold)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return writeJSON(out, brandReport{Spec: spec, Palette: palette, Matches: matches})
	}

	fmt.Fprintf(out, "--h1 %.1f --h3 %.1f --c1 %.1f --c3 %.1f --cmax1 %.1f --cmax2 %.1f --l1 %g --l2 %g --l3 %g\n\n",
		spec.LeftHue, spec.RightHue, spec.LeftChroma, spec.RightChroma,
		spec.LeftMaxChroma, spec.RightMaxChroma,
		spec.LeftLightness, spec.MiddleLightness, spec.RightLightness)

	preview := previewEnabled(a, false, false, false)
	if preview {
		fmt.Fprintln(out, colour.Strip(palette.Colours, 0))
		fmt.Fprintln(out)
	}
	if err := writePalette(out, palette, false); err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, m := range matches {
		fmt.Fprintf(out, "%s: nearest %s at index %d (ΔE=%.2f)\n",
			m.Reference, palette.Format.Encode(m.PaletteColour), m.Index, m.Distance)
	}
	return nil
}
