package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/divergent/internal/colour"
	"github.com/jmylchreest/divergent/internal/diverging"
)

// swatchWidth is the minimum width in cells of a preview swatch.
const swatchWidth = 6

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writePalette prints one serialised colour per line. With preview set each
// colour is drawn as a truecolour block labelled with its serialised form.
func writePalette(w io.Writer, p *diverging.Palette, preview bool) error {
	width := swatchWidth
	if preview {
		for _, c := range p.Colours {
			width = max(width, len(p.Format.Encode(c))+2)
		}
	}

	var b strings.Builder
	for i, c := range p.All() {
		text := p.Format.Encode(c)
		if preview {
			fmt.Fprintf(&b, "%4d  %s\n", i, colour.ColourPreviewWithText(c, text, width))
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// openOutput returns stdout, or a created file when path is set. The
// returned close function must be called.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// previewEnabled resolves --preview: explicit flags win, otherwise swatches
// are shown when stdout is a colour-capable terminal.
func previewEnabled(a *app, flagSet bool, flagValue bool, toFile bool) bool {
	if flagSet {
		return flagValue
	}
	return !toFile && !a.cfg.NoColour && colour.SupportsANSIColours(os.Stdout)
}

// parseColours parses every argument, failing on the first malformed one.
func parseColours(args []string) ([]colour.RGB, error) {
	out := make([]colour.RGB, len(args))
	for i, s := range args {
		c, err := colour.ParseColour(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// formatFloat renders an analysis value for tables.
func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// yesNo renders a boolean for tables.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
