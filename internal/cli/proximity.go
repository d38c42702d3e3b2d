package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/analysis"
	"github.com/jmylchreest/divergent/internal/colour"
)

type proximityOptions struct {
	spec      *specFlags
	refs      []string
	threshold float64
	json      bool
	strict    bool
}

func newProximityCmd(a *app) *cobra.Command {
	opts := &proximityOptions{}

	cmd := &cobra.Command{
		Use:   "proximity",
		Short: "Check reference colours against a generated palette",
		Long: `Generate a palette and report, for each reference colour, the closest
palette entry and its CAM02-UCS distance. References closer than the threshold
are flagged as visually indistinguishable.

References may be #rrggbb, #rgb, rrggbb, rgb(r, g, b) or a CSS colour name.
Malformed references are reported and skipped.

Examples:
  # Check brand colours against the default palette
  divergent proximity --ref "#1E3A8A" --ref "rgb(220, 38, 38)"

  # Stricter threshold, fail when any reference is too close
  divergent proximity --ref navy --ref crimson --threshold 15 --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProximity(cmd, a, opts)
		},
	}

	opts.spec = addSpecFlags(cmd.Flags())
	cmd.Flags().StringArrayVarP(&opts.refs, "ref", "r", nil, "reference colour (repeatable)")
	cmd.Flags().Float64VarP(&opts.threshold, "threshold", "t", analysis.DefaultProximityThreshold, "ΔE below which a reference is flagged")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output matches as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any reference is flagged")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

// proximityReport is the JSON form of a proximity check.
type proximityReport struct {
	Threshold float64          `json:"threshold"`
	Matches   []analysis.Match `json:"matches"`
	Skipped   []skippedRef     `json:"skipped,omitempty"`
}

type skippedRef struct {
	Reference string `json:"reference"`
	Error     string `json:"error"`
}

func runProximity(cmd *cobra.Command, a *app, opts *proximityOptions) error {
	threshold := opts.threshold
	if !cmd.Flags().Changed("threshold") {
		threshold = a.cfg.Threshold
	}

	spec, err := opts.spec.resolve(a, a.cfg.Format)
	if err != nil {
		return err
	}
	palette, err := a.generator().Generate(spec)
	if err != nil {
		return err
	}

	matches, err := analysis.Nearest(palette.Colours, opts.refs, threshold)
	if err != nil {
		return err
	}

	var flagged int
	report := proximityReport{Threshold: threshold}
	for _, m := range matches {
		if m.Err != nil {
			a.logger.Warn("skipping reference", "reference", m.Reference, "error", m.Err)
			fmt.Fprintln(cmd.ErrOrStderr(), m.Message())
			report.Skipped = append(report.Skipped, skippedRef{Reference: m.Reference, Error: m.Err.Error()})
			continue
		}
		if m.Warning {
			flagged++
		}
		report.Matches = append(report.Matches, m)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		preview := previewEnabled(a, false, false, false)
		t := NewTable("REFERENCE", "NEAREST", "INDEX", "ΔE", "STATUS").
			SetAlignment(2, AlignRight).
			SetAlignment(3, AlignRight)
		for _, m := range report.Matches {
			status := "ok"
			if m.Warning {
				status = "too close"
			}
			ref, nearest := m.Reference, palette.Format.Encode(m.PaletteColour)
			if preview {
				ref = colour.ColourPreview(m.Colour, 2) + " " + ref
				nearest = colour.ColourPreview(m.PaletteColour, 2) + " " + nearest
			}
			t.AddRow(ref, nearest, strconv.Itoa(m.Index), formatFloat(m.Distance), status)
		}
		if err := t.Write(out); err != nil {
			return err
		}
		for _, m := range report.Matches {
			if m.Warning {
				fmt.Fprintln(out, m.Message())
			}
		}
	}

	if opts.strict && flagged > 0 {
		return fmt.Errorf("%d reference colour(s) within ΔE %.2f of the palette", flagged, threshold)
	}
	return nil
}
