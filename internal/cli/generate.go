package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/colour"
)

type generateOptions struct {
	spec    *specFlags
	json    bool
	preview bool
	output  string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a diverging colour palette",
		Long: `Generate a diverging palette of n colours.

Each arm runs from a dark endpoint colour (h1/c1/l1 on the left, h3/c3/l3 on
the right) to a light centre (l2, with optional h2/c2). The powers shape the
curves: p2 and p4 below 1 give a narrow light hat, above 1 a wide plateau.
cmax1 and cmax2 raise chroma to a peak partway along each arm.

Out-of-gamut colours have their chroma reduced until they fit (disable with
--no-fixup to clamp each RGB channel instead).

Examples:
  # Default blue/red palette
  divergent generate

  # Eleven colours as CSS rgb() strings
  divergent generate -n 11 -f rgb_strings

  # Purple to green with a wide plateau
  divergent generate -n 9 --h1 300 --h3 128 --p2 1.4 --p4 1.4

  # Start from a preset and override the size
  divergent generate --preset "Blue-Red 3" -n 7

  # Hue sweeps through the centre in flexible mode
  divergent generate --mode flexible --h1 260 --h2 60 --h3 10 --c2 30

  # JSON to a file
  divergent generate -n 21 --json -o palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	opts.spec = addSpecFlags(cmd.Flags())
	opts.spec.addFormatFlag()
	cmd.Flags().BoolVar(&opts.json, "json", false, "output the palette as JSON")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show truecolour swatches (default: on for terminals)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("json", "preview")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions) error {
	spec, err := opts.spec.resolve(a, a.cfg.Format)
	if err != nil {
		return err
	}

	palette, err := a.generator().Generate(spec)
	if err != nil {
		return err
	}
	a.logger.Info("generated palette", "n", palette.Len(), "format", palette.Format)

	w, closeOutput, err := openOutput(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return err
	}

	if opts.json {
		err = writeJSON(w, palette)
	} else {
		preview := previewEnabled(a, cmd.Flags().Changed("preview"), opts.preview, opts.output != "")
		if preview {
			fmt.Fprintln(w, colour.Strip(palette.Colours, min(palette.Len(), 64)))
		}
		err = writePalette(w, palette, preview)
	}

	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write palette: %w", err)
	}

	if opts.output != "" {
		a.logger.Info("wrote palette", "path", opts.output)
	}
	return nil
}
