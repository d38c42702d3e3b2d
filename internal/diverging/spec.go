// Package diverging builds diverging colour palettes: two arms running from
// dark endpoint colours to a light centre, with power-curve control over how
// lightness and chroma change along each arm.
package diverging

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/divergent/internal/colour"
)

// Optional is a value that may be left unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value, or def when unset.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// MarshalJSON encodes an unset Optional as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Mode selects the palette construction.
type Mode int

const (
	// ModeClassic holds each arm at a constant hue; the hue switches at the
	// centre without interpolation.
	ModeClassic Mode = iota

	// ModeFlexible interpolates hue through three control points (left,
	// middle, right) along the shorter arc.
	ModeFlexible
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeFlexible:
		return "flexible"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMode resolves "classic" or "flexible".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return ModeClassic, nil
	case "flexible":
		return ModeFlexible, nil
	default:
		return 0, invalid("mode", name, "supported: classic, flexible")
	}
}

// Spec is the full parameter set for one palette. Hues are degrees and are
// interpreted modulo 360. Chroma and lightness must be non-negative.
//
// An unset MiddleChroma resolves to 0 (neutral centre). An unset MiddleHue
// resolves to the midpoint of the arc between LeftHue and RightHue (the
// longer one when LongHueArc is set); with a neutral centre the value has no
// visible effect.
type Spec struct {
	N int `json:"n"`

	LeftHue   float64           `json:"h1"`
	MiddleHue Optional[float64] `json:"h2"`
	RightHue  float64           `json:"h3"`

	LeftChroma   float64           `json:"c1"`
	MiddleChroma Optional[float64] `json:"c2"`
	RightChroma  float64           `json:"c3"`

	LeftLightness   float64 `json:"l1"`
	MiddleLightness float64 `json:"l2"`
	RightLightness  float64 `json:"l3"`

	LeftChromaPower     float64 `json:"p1"`
	LeftLightnessPower  float64 `json:"p2"`
	RightChromaPower    float64 `json:"p3"`
	RightLightnessPower float64 `json:"p4"`

	LeftMaxChroma  float64 `json:"cmax1"`
	RightMaxChroma float64 `json:"cmax2"`

	Fixup  bool   `json:"fixup"`
	Mode   Mode   `json:"mode"`
	Format Format `json:"format"`

	// LongHueArc places an unset MiddleHue on the longer arc between the
	// endpoint hues, so flexible mode sweeps hue the long way round.
	LongHueArc bool `json:"long_arc,omitempty"`
}

// DefaultSpec returns a blue/red palette of 199 colours: dark endpoints at
// lightness 20, a near-white neutral centre at 97, chroma peaking at 60
// partway along each arm, and a slightly narrow lightness hat (power 0.8).
func DefaultSpec() Spec {
	return Spec{
		N:                   199,
		LeftHue:             255,
		RightHue:            10,
		LeftChroma:          50,
		RightChroma:         50,
		LeftLightness:       20,
		MiddleLightness:     97,
		RightLightness:      20,
		LeftChromaPower:     1.0,
		LeftLightnessPower:  0.8,
		RightChromaPower:    1.0,
		RightLightnessPower: 0.8,
		LeftMaxChroma:       60,
		RightMaxChroma:      60,
		Fixup:               true,
		Mode:                ModeClassic,
		Format:              FormatHex,
	}
}

// Validate checks every field and returns the first violation as a
// *ParameterError.
func (s Spec) Validate() error {
	if s.N < 2 {
		return invalid("n", s.N, "at least 2 colours are required")
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"p1", s.LeftChromaPower},
		{"p2", s.LeftLightnessPower},
		{"p3", s.RightChromaPower},
		{"p4", s.RightLightnessPower},
	} {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return invalid(p.name, p.value, "power must be a positive finite number")
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"c1", s.LeftChroma},
		{"c3", s.RightChroma},
		{"l1", s.LeftLightness},
		{"l2", s.MiddleLightness},
		{"l3", s.RightLightness},
		{"cmax1", s.LeftMaxChroma},
		{"cmax2", s.RightMaxChroma},
	}
	if c2, ok := s.MiddleChroma.Get(); ok {
		nonNegative = append(nonNegative, struct {
			name  string
			value float64
		}{"c2", c2})
	}
	for _, v := range nonNegative {
		if !(v.value >= 0) || math.IsInf(v.value, 0) {
			return invalid(v.name, v.value, "must be a non-negative finite number")
		}
	}

	hues := []float64{s.LeftHue, s.RightHue}
	if h2, ok := s.MiddleHue.Get(); ok {
		hues = append(hues, h2)
	}
	for _, h := range hues {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return invalid("hue", h, "must be finite")
		}
	}

	if s.Mode != ModeClassic && s.Mode != ModeFlexible {
		return invalid("mode", s.Mode, "supported: classic, flexible")
	}
	if _, err := s.Format.serialiser(); err != nil {
		return err
	}

	return nil
}

// GamutPolicy maps the Fixup flag to a colour.GamutPolicy.
func (s Spec) GamutPolicy() colour.GamutPolicy {
	if s.Fixup {
		return colour.GamutFixup
	}
	return colour.GamutClamp
}

// Mirrored reports whether the left and right arm parameters are pairwise
// equal, in which case the palette is symmetric about its centre.
func (s Spec) Mirrored() bool {
	return colour.HueDistance(s.LeftHue, s.RightHue) == 0 &&
		s.LeftChroma == s.RightChroma &&
		s.LeftLightness == s.RightLightness &&
		s.LeftChromaPower == s.RightChromaPower &&
		s.LeftLightnessPower == s.RightLightnessPower &&
		s.LeftMaxChroma == s.RightMaxChroma
}

// centre returns the resolved centre point of the palette.
func (s Spec) centre() colour.HCL {
	mid := colour.HueMidpoint(s.LeftHue, s.RightHue)
	if s.LongHueArc {
		mid = colour.LerpHue(s.LeftHue, s.RightHue, 0.5, true)
	}
	return colour.HCL{
		H: colour.NormaliseHue(s.MiddleHue.Or(mid)),
		C: s.MiddleChroma.Or(0),
		L: s.MiddleLightness,
	}
}

func (s Spec) leftArm() arm {
	return arm{
		hue:            colour.NormaliseHue(s.LeftHue),
		chroma:         s.LeftChroma,
		maxChroma:      s.LeftMaxChroma,
		lightness:      s.LeftLightness,
		chromaPower:    s.LeftChromaPower,
		lightnessPower: s.LeftLightnessPower,
	}
}

func (s Spec) rightArm() arm {
	return arm{
		hue:            colour.NormaliseHue(s.RightHue),
		chroma:         s.RightChroma,
		maxChroma:      s.RightMaxChroma,
		lightness:      s.RightLightness,
		chromaPower:    s.RightChromaPower,
		lightnessPower: s.RightLightnessPower,
	}
}
