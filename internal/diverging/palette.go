package diverging

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/divergent/internal/colour"
)

// Palette is an ordered, left-to-right sequence of generated colours and the
// form they serialise to. The caller owns it.
type Palette struct {
	Colours []colour.RGB
	Format  Format
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Strings serialises every colour in the palette's format.
func (p *Palette) Strings() []string {
	out := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		out[i] = p.Format.Encode(c)
	}
	return out
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (colour.RGB, error) {
	if index < 0 || index >= len(p.Colours) {
		return colour.RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, colour.RGB) bool) {
	return func(yield func(int, colour.RGB) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// paletteJSON is the JSON form of a palette.
type paletteJSON struct {
	Format  Format `json:"format"`
	Count   int    `json:"count"`
	Colours []any  `json:"colours"`
}

// MarshalJSON renders each colour as its format's structured value:
// strings for hex and CSS, [r, g, b] arrays for normalised triples.
func (p *Palette) MarshalJSON() ([]byte, error) {
	s, err := p.Format.serialiser()
	if err != nil {
		return nil, err
	}
	colours := make([]any, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = s.Value(c)
	}
	return json.Marshal(paletteJSON{Format: p.Format, Count: len(p.Colours), Colours: colours})
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %3d: %s (%s)\n", i, c.Hex(), c.String())
	}
	return b.String()
}
