package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8

	// darkTextLightness is the HCL lightness above which text on a swatch
	// is drawn in black.
	darkTextLightness = 60
)

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// ColourPreview returns a solid truecolour block width cells wide.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with centred text drawn in
// black or white, whichever reads better on the block.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	ink := RGB{255, 255, 255}
	if c.HCL().L > darkTextLightness {
		ink = RGB{}
	}

	switch {
	case len(text) > width:
		text = text[:width]
	case len(text) < width:
		left := (width - len(text)) / 2
		text = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
	}

	return bg(c) + fg(ink) + text + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and a label.
func FormatColourWithPreview(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(rgb, width), label)
}

// Strip renders colours as a single row of width cells, sampling the
// nearest colour for each cell. A non-positive width uses one cell per
// colour.
func Strip(colours []RGB, width int) string {
	if len(colours) == 0 {
		return ""
	}
	if width <= 0 {
		width = len(colours)
	}

	var b strings.Builder
	for i := range width {
		idx := 0
		if width > 1 {
			idx = (i*(len(colours)-1) + (width-1)/2) / (width - 1)
		}
		b.WriteString(bg(colours[idx]))
		b.WriteByte(' ')
	}
	b.WriteString(ansiReset)
	return b.String()
}

// SupportsANSIColours reports whether f is a terminal and NO_COLOR is unset.
func SupportsANSIColours(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
