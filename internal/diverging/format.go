package diverging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/divergent/internal/colour"
)

// Format is the serialisation form of generated colours.
type Format int

const (
	// FormatHex renders "#rrggbb" in lowercase.
	FormatHex Format = iota

	// FormatTriple renders channels normalised to [0, 1].
	FormatTriple

	// FormatCSS renders "rgb(R, G, B)" with exactly one space after each comma.
	FormatCSS
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatTriple:
		return "rgb"
	case FormatCSS:
		return "rgb_strings"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MarshalText encodes the format by its canonical name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes any name ParseFormat accepts.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ValidFormats returns the canonical names of all supported formats.
func ValidFormats() []string {
	return []string{FormatHex.String(), FormatTriple.String(), FormatCSS.String()}
}

// ParseFormat resolves a format name. Besides the canonical names it accepts
// "triple" and "css".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hex":
		return FormatHex, nil
	case "rgb", "triple":
		return FormatTriple, nil
	case "rgb_strings", "css":
		return FormatCSS, nil
	default:
		return 0, invalid("format", name, "supported: "+strings.Join(ValidFormats(), ", "))
	}
}

// serialiser renders one colour in one format. Text is used for line
// output, Value for structured (JSON) output.
type serialiser interface {
	Text(c colour.RGB) string
	Value(c colour.RGB) any
}

type hexSerialiser struct{}

func (hexSerialiser) Text(c colour.RGB) string { return c.Hex() }
func (hexSerialiser) Value(c colour.RGB) any   { return c.Hex() }

type tripleSerialiser struct{}

func (tripleSerialiser) Text(c colour.RGB) string {
	n := c.Normalised()
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (tripleSerialiser) Value(c colour.RGB) any { return c.Normalised() }

type cssSerialiser struct{}

func (cssSerialiser) Text(c colour.RGB) string { return c.String() }
func (cssSerialiser) Value(c colour.RGB) any   { return c.String() }

var serialisers = map[Format]serialiser{
	FormatHex:    hexSerialiser{},
	FormatTriple: tripleSerialiser{},
	FormatCSS:    cssSerialiser{},
}

func (f Format) serialiser() (serialiser, error) {
	s, ok := serialisers[f]
	if !ok {
		return nil, invalid("format", f, "supported: "+strings.Join(ValidFormats(), ", "))
	}
	return s, nil
}

// Encode renders a single colour in the format. Unknown formats fall back
// to hex.
func (f Format) Encode(c colour.RGB) string {
	s, err := f.serialiser()
	if err != nil {
		return c.Hex()
	}
	return s.Text(c)
}
