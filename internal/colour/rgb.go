// Package colour provides device colour handling and the conversions between
// sRGB, the polar CIE LCh(uv) space ("HCL") and CAM02-UCS.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrMalformedColour is returned when a colour string is not a hex code, an
// rgb() function or a known colour name.
var ErrMalformedColour = errors.New("malformed colour")

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
// Downstream consumers parse this form with a fixed pattern, so it must not change.
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Normalised returns the channels scaled to [0, 1].
func (rgb RGB) Normalised() [3]float64 {
	return [3]float64{
		float64(rgb.R) / 255.0,
		float64(rgb.G) / 255.0,
		float64(rgb.B) / 255.0,
	}
}

// SRGB returns the colour as unquantised sRGB.
func (rgb RGB) SRGB() SRGB {
	n := rgb.Normalised()
	return SRGB{R: n[0], G: n[1], B: n[2]}
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#rrggbb", "rrggbb" or the "#rgb" shorthand.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: expected 6 hex digits, got %d", ErrMalformedColour, hex, len(s))
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrMalformedColour, hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

var rgbFunctionPattern = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

// ParseRGBString parses the CSS function form "rgb(r, g, b)" with decimal
// channels in [0, 255]. Whitespace around the channels is optional.
func ParseRGBString(s string) (RGB, error) {
	m := rgbFunctionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q: expected rgb(r, g, b)", ErrMalformedColour, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: channel %d out of range", ErrMalformedColour, s, i)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseColour accepts any of the forms a user may supply for a reference
// colour: hex (with or without '#', 3 or 6 digits), "rgb(r, g, b)" or a
// CSS/SVG colour name such as "navy".
func ParseColour(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	switch {
	case trimmed == "":
		return RGB{}, fmt.Errorf("%w: empty string", ErrMalformedColour)
	case strings.HasPrefix(lower, "rgb("):
		return ParseRGBString(lower)
	case strings.HasPrefix(trimmed, "#"):
		return ParseHex(trimmed)
	}

	if c, ok := colornames.Map[lower]; ok {
		return ToRGB(c), nil
	}

	if isHexDigits(trimmed) {
		return ParseHex(trimmed)
	}

	return RGB{}, fmt.Errorf("%w: %q is not a hex code, rgb() value or colour name", ErrMalformedColour, s)
}

func isHexDigits(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// quantise maps a [0, 1] channel to 8 bits, clamping anything outside.
// NaN maps to 0.
func quantise(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
