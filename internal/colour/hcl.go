package colour

import "math"

// inGamutTolerance absorbs floating point noise at the edges of the cube,
// e.g. white evaluating to 1.0000000000000002.
const inGamutTolerance = 1e-9

// neutralChroma is the chroma below which a colour is treated as grey and
// its hue reported as 0.
const neutralChroma = 1e-6

// sRGB primaries to CIE XYZ (D65), IEC 61966-2-1.
var srgbToXYZ = matrix3{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var (
	xyzToSRGB = srgbToXYZ.inverse()

	// The reference white is the image of linear (1, 1, 1), so greys map to
	// zero chroma without a tolerance fudge.
	whiteXYZ = srgbToXYZ.apply([3]float64{1, 1, 1})

	whiteU, whiteV = uvPrime(whiteXYZ)
)

// CIE L* constants.
const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0  // (29/3)^3
)

// SRGB is a gamma-encoded sRGB colour with unbounded float channels. Values
// outside [0, 1] mean the colour is not representable on the device.
type SRGB struct {
	R, G, B float64
}

// InGamut reports whether every channel lies within the device range.
func (s SRGB) InGamut() bool {
	for _, v := range [3]float64{s.R, s.G, s.B} {
		if !(v >= -inGamutTolerance && v <= 1+inGamutTolerance) {
			return false
		}
	}
	return true
}

// Clamped quantises to 8 bits, clamping each channel independently.
func (s SRGB) Clamped() RGB {
	return RGB{R: quantise(s.R), G: quantise(s.G), B: quantise(s.B)}
}

// HCL is a colour in polar CIE Luv: hue in degrees [0, 360), chroma >= 0 and
// lightness in [0, 100].
type HCL struct {
	H float64 `json:"h"`
	C float64 `json:"c"`
	L float64 `json:"l"`
}

// HCL converts the colour to polar CIE Luv.
func (rgb RGB) HCL() HCL {
	return rgb.SRGB().HCL()
}

// HCL converts the colour to polar CIE Luv. Neutral colours get hue 0.
func (s SRGB) HCL() HCL {
	xyz := srgbToXYZ.apply([3]float64{linearise(s.R), linearise(s.G), linearise(s.B)})

	y := xyz[1] / whiteXYZ[1]
	var l float64
	if y > labEpsilon {
		l = 116*math.Cbrt(y) - 16
	} else {
		l = labKappa * y
	}

	up, vp := uvPrime(xyz)
	u := 13 * l * (up - whiteU)
	v := 13 * l * (vp - whiteV)

	c := math.Hypot(u, v)
	if c < neutralChroma {
		return HCL{H: 0, C: 0, L: l}
	}
	return HCL{H: NormaliseHue(math.Atan2(v, u) * 180 / math.Pi), C: c, L: l}
}

// SRGB converts back to gamma-encoded sRGB. The result may be out of gamut;
// check with InGamut. Chroma so large that the Luv point has no XYZ
// preimage yields NaN channels, which InGamut rejects.
func (c HCL) SRGB() SRGB {
	if c.L <= 0 {
		return SRGB{}
	}

	h := c.H * math.Pi / 180
	u := c.C * math.Cos(h)
	v := c.C * math.Sin(h)

	up := u/(13*c.L) + whiteU
	vp := v/(13*c.L) + whiteV
	if vp <= 0 {
		nan := math.NaN()
		return SRGB{R: nan, G: nan, B: nan}
	}

	var y float64
	if c.L > labKappa*labEpsilon {
		f := (c.L + 16) / 116
		y = f * f * f
	} else {
		y = c.L / labKappa
	}
	y *= whiteXYZ[1]

	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)

	lin := xyzToSRGB.apply([3]float64{x, y, z})
	return SRGB{R: delinearise(lin[0]), G: delinearise(lin[1]), B: delinearise(lin[2])}
}

func uvPrime(xyz [3]float64) (float64, float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

// linearise removes the sRGB transfer curve.
func linearise(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// delinearise applies the sRGB transfer curve. Negative input stays
// negative so out-of-gamut results remain detectable.
func delinearise(v float64) float64 {
	switch {
	case v < 0:
		return -delinearise(-v)
	case v <= 0.0031308:
		return 12.92 * v
	default:
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
}

type matrix3 [3][3]float64

func (m matrix3) apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m matrix3) mul(o matrix3) matrix3 {
	var r matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// inverse uses the adjugate; all matrices here are well conditioned.
func (m matrix3) inverse() matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	inv := 1 / det

	return matrix3{
		{(e*i - f*h) * inv, (c*h - b*i) * inv, (b*f - c*e) * inv},
		{(f*g - d*i) * inv, (a*i - c*g) * inv, (c*d - a*f) * inv},
		{(d*h - e*g) * inv, (b*g - a*h) * inv, (a*e - b*d) * inv},
	}
}
