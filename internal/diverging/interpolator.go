package diverging

import (
	"math"

	"github.com/jmylchreest/divergent/internal/colour"
)

// Interpolator computes the requested (possibly out-of-gamut) colour at each
// palette position.
type Interpolator interface {
	// At returns the colour for index i of n.
	At(i, n int) colour.HCL
}

// Interpolator returns the construction selected by the spec's mode.
func (s Spec) Interpolator() (Interpolator, error) {
	base := curves{left: s.leftArm(), right: s.rightArm(), centre: s.centre()}
	switch s.Mode {
	case ModeClassic:
		return classic{base}, nil
	case ModeFlexible:
		return flexible{base}, nil
	default:
		return nil, invalid("mode", s.Mode, "supported: classic, flexible")
	}
}

// Interpolate validates spec and returns the colour for index i of n.
func Interpolate(spec Spec, i, n int) (colour.HCL, error) {
	spec.N = n
	if err := spec.Validate(); err != nil {
		return colour.HCL{}, err
	}
	if i < 0 || i >= n {
		return colour.HCL{}, invalid("index", i, "must be in [0, n)")
	}
	ip, err := spec.Interpolator()
	if err != nil {
		return colour.HCL{}, err
	}
	return ip.At(i, n), nil
}

// curves holds what both constructions share: lightness and chroma per arm.
type curves struct {
	left, right arm
	centre      colour.HCL
}

// side returns the arm for position t and the arm position |t|.
// ok is false exactly at the centre.
func (c curves) side(t float64) (a arm, u float64, ok bool) {
	switch {
	case t < 0:
		return c.left, -t, true
	case t > 0:
		return c.right, t, true
	default:
		return arm{}, 0, false
	}
}

// classic keeps each arm at its endpoint hue.
type classic struct {
	curves
}

func (c classic) At(i, n int) colour.HCL {
	a, u, ok := c.side(Position(i, n))
	if !ok {
		return c.centre
	}
	ch, l := a.at(u, c.centre)
	return colour.HCL{H: a.hue, C: ch, L: l}
}

// flexible runs hue from the centre hue to each endpoint hue along the
// shorter arc, shaped by the arm's lightness power so hue and lightness
// change together. With the centre on the longer arc between the endpoints
// (LongHueArc), each arm stays under 180 degrees and so follows that arc.
type flexible struct {
	curves
}

func (f flexible) At(i, n int) colour.HCL {
	a, u, ok := f.side(Position(i, n))
	if !ok {
		return f.centre
	}
	ch, l := a.at(u, f.centre)
	h := colour.LerpHue(f.centre.H, a.hue, math.Pow(u, a.lightnessPower), false)
	return colour.HCL{H: h, C: ch, L: l}
}
