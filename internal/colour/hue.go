package colour

import "math"

// NormaliseHue maps any angle to [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
// Inputs need not be normalised.
func HueDistance(h1, h2 float64) float64 {
	return math.Abs(HueDelta(h1, h2))
}

// HueDelta returns the signed shortest-arc rotation from one hue to another,
// in (-180, 180]. from + HueDelta(from, to) is congruent to to mod 360.
func HueDelta(from, to float64) float64 {
	d := NormaliseHue(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// HueDeltaLong returns the signed rotation from one hue to another along the
// longer arc. Identical hues give 0.
func HueDeltaLong(from, to float64) float64 {
	d := HueDelta(from, to)
	switch {
	case d > 0:
		return d - 360
	case d < 0:
		return d + 360
	default:
		return 0
	}
}

// LerpHue interpolates from one hue towards another. frac=0 gives from,
// frac=1 gives to. The shorter arc is used unless longArc is set, so 350°
// to 10° passes through 0°, not 180°.
func LerpHue(from, to, frac float64, longArc bool) float64 {
	d := HueDelta(from, to)
	if longArc {
		d = HueDeltaLong(from, to)
	}
	return NormaliseHue(from + d*frac)
}

// HueMidpoint returns the hue halfway along the shorter arc between two hues.
func HueMidpoint(h1, h2 float64) float64 {
	return LerpHue(h1, h2, 0.5, false)
}
