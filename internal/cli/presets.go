package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/colour"
	"github.com/jmylchreest/divergent/internal/preset"
)

// presetPreviewSize is the number of colours in a preset's preview strip.
const presetPreviewSize = 16

func newPresetsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in palette presets",
		Long: `List the built-in diverging presets. Any of them can be passed to
generate, proximity or analyze with --preset NAME (case-insensitive), or set
as the default with DIVERGENT_PRESET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := a.catalogue.All()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, presets)
			}
			return presetTable(a, presets).Write(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output presets as JSON")
	return cmd
}

func presetTable(a *app, presets []preset.Preset) *Table {
	preview := previewEnabled(a, false, false, false)

	headers := []string{"NAME", "H1", "H3", "CHROMA", "L ENDS", "L CENTRE", "P CHROMA", "P LIGHTNESS"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	t := NewTable(headers...)
	for col := 1; col <= 7; col++ {
		t.SetAlignment(col, AlignRight)
	}

	gen := a.generator()
	for _, p := range presets {
		row := []string{
			p.Name,
			formatFloat(p.LeftHue), formatFloat(p.RightHue),
			formatFloat(p.Chroma), formatFloat(p.Lightness), formatFloat(p.Centre),
			formatFloat(p.ChromaPower), formatFloat(p.LightnessPower),
		}
		if preview {
			strip := ""
			spec := p.Spec()
			spec.N = presetPreviewSize
			if palette, err := gen.Generate(spec); err == nil {
				strip = colour.Strip(palette.Colours, 0)
			} else {
				a.logger.Warn("failed to render preset", "name", p.Name, "error", err)
			}
			row = append(row, strip)
		}
		t.AddRow(row...)
	}
	return t
}
