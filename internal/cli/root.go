// Package cli provides the command-line interface for divergent.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/divergent/internal/config"
	"github.com/jmylchreest/divergent/internal/diverging"
	"github.com/jmylchreest/divergent/internal/preset"
	"github.com/jmylchreest/divergent/internal/version"
)

// app carries what every command needs once flags and the environment have
// been resolved.
type app struct {
	cfg       config.Config
	logger    hclog.Logger
	catalogue *preset.Catalogue

	verbose bool
	quiet   bool
}

// generator returns a palette generator wired to the app's logger, preset
// catalogue and parallelism setting.
func (a *app) generator() *diverging.Generator {
	return diverging.NewGenerator(
		diverging.WithLogger(a.logger),
		diverging.WithPresets(a.catalogue),
		diverging.WithParallelThreshold(a.cfg.ParallelThreshold),
	)
}

// setup resolves configuration and builds the logger. It runs before every
// subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewBuilder().WithDotEnv().Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level := cfg.LogLevel
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "divergent",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	return nil
}

// NewRootCmd creates the full command tree. Each call returns an
// independent tree, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:       config.Default(),
		logger:    hclog.NewNullLogger(),
		catalogue: preset.Default(),
	}

	rootCmd := &cobra.Command{
		Use:   "divergent",
		Short: "A diverging colour palette generator",
		Long: `divergent builds diverging colour palettes (dark-light-dark ramps for data
visualisation) with continuous control over how lightness and chroma change
along each arm, and checks the result against perceptual distance criteria.

Colours are constructed in the polar CIE Luv space (HCL), corrected into the
sRGB gamut, and analysed in CAM02-UCS where Euclidean distance approximates
perceived difference.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newProximityCmd(a))
	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newPresetsCmd(a))
	rootCmd.AddCommand(newBrandCmd(a))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output version information as JSON")
	return cmd
}
