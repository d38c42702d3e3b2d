package colour

import (
	"fmt"
	"math"
)

// GamutPolicy selects how colours that fall outside the sRGB cube are made
// representable.
type GamutPolicy int

const (
	// GamutFixup reduces chroma at fixed hue and lightness until the colour
	// fits.
	GamutFixup GamutPolicy = iota

	// GamutClamp clamps each channel independently. Cheaper, but shifts hue
	// and lightness. Requests with no sRGB image at all (NaN channels, see
	// HCL.SRGB) fall back to GamutFixup, as clamping NaN would give black.
	GamutClamp
)

// String returns the policy name.
func (p GamutPolicy) String() string {
	switch p {
	case GamutFixup:
		return "fixup"
	case GamutClamp:
		return "clamp"
	default:
		return fmt.Sprintf("GamutPolicy(%d)", int(p))
	}
}

// fixupIterations bounds the chroma bisection. 40 halvings of a chroma
// range below 200 leaves an interval far under one 8-bit step.
const fixupIterations = 40

// Apply returns a device colour for c under the policy. The second result
// reports whether c had to be corrected.
func (p GamutPolicy) Apply(c HCL) (RGB, bool) {
	s := c.SRGB()
	if s.InGamut() {
		return s.Clamped(), false
	}
	if p == GamutClamp && s.finite() {
		return s.Clamped(), true
	}
	return Fixup(c), true
}

func (s SRGB) finite() bool {
	for _, v := range [3]float64{s.R, s.G, s.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Fixup returns the in-gamut colour with the largest chroma not exceeding
// c.C at the same hue and lightness. Feasibility is monotone in chroma, so a
// bisection on [0, c.C] converges. Lightness outside [0, 100] is clamped
// first, as no chroma makes such a colour representable.
func Fixup(c HCL) RGB {
	c.H = NormaliseHue(c.H)
	c.C = math.Max(0, c.C)
	if math.IsNaN(c.L) {
		c.L = 0
	}
	c.L = math.Max(0, math.Min(100, c.L))

	if s := c.SRGB(); s.InGamut() {
		return s.Clamped()
	}

	lo, hi := 0.0, c.C
	for i := 0; i < fixupIterations; i++ {
		mid := (lo + hi) / 2
		if (HCL{H: c.H, C: mid, L: c.L}).SRGB().InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}

	return HCL{H: c.H, C: lo, L: c.L}.SRGB().Clamped()
}
