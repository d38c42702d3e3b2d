// Package analysis provides read-only diagnostics over generated palettes:
// nearest-colour search against reference colours and lightness/chroma/hue
// curve inspection, all measured in CAM02-UCS.
package analysis

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/divergent/internal/colour"
)

// ErrEmptyPalette is returned when an analysis needs at least one colour.
var ErrEmptyPalette = errors.New("palette is empty")

// DefaultProximityThreshold is the ΔE below which a reference colour is
// considered visually indistinguishable from a palette entry.
const DefaultProximityThreshold = 10.0

// Match is the nearest palette entry to one reference colour.
type Match struct {
	// Reference is the reference colour as supplied.
	Reference string `json:"reference"`

	// Colour is the parsed reference colour.
	Colour colour.RGB `json:"colour"`

	// Index is the position of the closest palette colour; -1 when Err is set.
	Index int `json:"index"`

	// PaletteColour is the closest palette colour.
	PaletteColour colour.RGB `json:"palette_colour"`

	// Distance is the CAM02-UCS ΔE between the two.
	Distance float64 `json:"distance"`

	// Warning is set when Distance is below the threshold.
	Warning bool `json:"warning"`

	// Err is set when the reference could not be parsed; the other fields
	// are then meaningless.
	Err error `json:"-"`
}

// Message returns a one-line description of a proximity warning or of a
// per-entry parse failure. It is empty for a clean match.
func (m Match) Message() string {
	switch {
	case m.Err != nil:
		return fmt.Sprintf("Skipped reference %q: %v", m.Reference, m.Err)
	case m.Warning:
		return fmt.Sprintf("Reference colour %s is very close (ΔE=%.2f) to palette colour %s at index %d",
			m.Reference, m.Distance, m.PaletteColour.Hex(), m.Index)
	default:
		return ""
	}
}

// Nearest finds, for each reference string, the closest palette colour.
// References that do not parse are reported in their Match's Err field
// and do not affect the others. An empty palette is an error.
func Nearest(palette []colour.RGB, references []string, threshold float64) ([]Match, error) {
	refs := make([]colour.RGB, len(references))
	parseErrs := make([]error, len(references))
	for i, r := range references {
		refs[i], parseErrs[i] = colour.ParseColour(r)
	}

	matches, err := nearest(palette, refs, threshold, parseErrs)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].Reference = references[i]
	}
	return matches, nil
}

// NearestColours is Nearest for already-parsed reference colours.
// Reference strings are rendered as hex.
func NearestColours(palette, references []colour.RGB, threshold float64) ([]Match, error) {
	matches, err := nearest(palette, references, threshold, nil)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].Reference = references[i].Hex()
	}
	return matches, nil
}

// nearest scans the whole palette for each reference. Palettes are small
// (hundreds of colours), so no spatial index is used. Ties go to the lowest
// index.
func nearest(palette, references []colour.RGB, threshold float64, skip []error) ([]Match, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	points := toUCS(palette)
	matches := make([]Match, len(references))
	for r, ref := range references {
		if skip != nil && skip[r] != nil {
			matches[r] = Match{Index: -1, Err: skip[r]}
			continue
		}

		target := ref.UCS()
		best, bestDist := 0, target.Distance(points[0])
		for i := 1; i < len(points); i++ {
			if d := target.Distance(points[i]); d < bestDist {
				best, bestDist = i, d
			}
		}

		matches[r] = Match{
			Colour:        ref,
			Index:         best,
			PaletteColour: palette[best],
			Distance:      bestDist,
			Warning:       bestDist < threshold,
		}
	}
	return matches, nil
}

// Warnings returns the matches that need attention: proximity warnings and
// unparsable references.
func Warnings(matches []Match) []Match {
	var out []Match
	for _, m := range matches {
		if m.Warning || m.Err != nil {
			out = append(out, m)
		}
	}
	return out
}

func toUCS(palette []colour.RGB) []colour.UCS {
	points := make([]colour.UCS, len(palette))
	for i, c := range palette {
		points[i] = c.UCS()
	}
	return points
}
