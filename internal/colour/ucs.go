package colour

import "math"

// UCS is a colour in CAM02-UCS. Euclidean distance between two UCS points
// approximates perceived colour difference (ΔE).
type UCS struct {
	J float64 `json:"j"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Chroma returns the radial distance from the neutral axis.
func (u UCS) Chroma() float64 {
	return math.Hypot(u.A, u.B)
}

// Hue returns the angle of (a', b') in degrees, in [0, 360).
func (u UCS) Hue() float64 {
	return NormaliseHue(math.Atan2(u.B, u.A) * 180 / math.Pi)
}

// Distance returns the Euclidean distance between two UCS points.
func (u UCS) Distance(o UCS) float64 {
	dj, da, db := u.J-o.J, u.A-o.A, u.B-o.B
	return math.Sqrt(dj*dj + da*da + db*db)
}

// UCS converts the colour to CAM02-UCS.
func (rgb RGB) UCS() UCS {
	return rgb.SRGB().UCS()
}

// UCS converts the colour to CAM02-UCS under sRGB viewing conditions.
func (s SRGB) UCS() UCS {
	xyz := srgbToXYZ.apply([3]float64{linearise(s.R), linearise(s.G), linearise(s.B)})
	for i := range xyz {
		xyz[i] *= 100
	}
	j, m, h := defaultViewing.appearance(xyz)

	jp := (1 + 100*ucsC1) * j / (1 + ucsC1*j)
	mp := math.Log(1+ucsC2*m) / ucsC2
	hr := h * math.Pi / 180
	return UCS{J: jp, A: mp * math.Cos(hr), B: mp * math.Sin(hr)}
}

// DeltaE returns the CAM02-UCS distance between two device colours.
func DeltaE(a, b RGB) float64 {
	return a.UCS().Distance(b.UCS())
}

// CAM02-UCS coefficients (Luo, Cui & Li 2006).
const (
	ucsC1 = 0.007
	ucsC2 = 0.0228
)

var (
	mCAT02 = matrix3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
	mHPE = matrix3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}
	// CAT02 space to Hunt-Pointer-Estevez cone space.
	mCAT02ToHPE = mHPE.mul(mCAT02.inverse())
)

// surround describes the viewing surround of CIECAM02.
type surround struct {
	F, C, Nc float64
}

var surroundAverage = surround{F: 1.0, C: 0.69, Nc: 1.0}

// viewing holds the CIECAM02 quantities that depend only on the viewing
// conditions.
type viewing struct {
	dRGB    [3]float64
	fl      float64
	n       float64
	z       float64
	nbb     float64
	ncb     float64
	aw      float64
	c       float64
	nc      float64
	chromaK float64
}

// defaultViewing matches sRGB display assumptions: D65 white at Y=100,
// adapting luminance 64/π/5 cd/m², background Y_b=20, average surround.
var defaultViewing = newViewing(
	[3]float64{whiteXYZ[0] * 100, whiteXYZ[1] * 100, whiteXYZ[2] * 100},
	64/math.Pi/5,
	20,
	surroundAverage,
)

func newViewing(white [3]float64, la, yb float64, sr surround) viewing {
	yw := white[1]
	rgbW := mCAT02.apply(white)

	d := sr.F * (1 - (1/3.6)*math.Exp((-la-42)/92))
	d = math.Max(0, math.Min(1, d))

	var v viewing
	for i := range rgbW {
		v.dRGB[i] = d*yw/rgbW[i] + 1 - d
	}

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	v.fl = 0.2*k4*(5*la) + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)

	v.n = yb / yw
	v.z = 1.48 + math.Sqrt(v.n)
	v.nbb = 0.725 * math.Pow(1/v.n, 0.2)
	v.ncb = v.nbb
	v.c = sr.C
	v.nc = sr.Nc
	v.chromaK = math.Pow(1.64-math.Pow(0.29, v.n), 0.73)

	var rgbCW [3]float64
	for i := range rgbW {
		rgbCW[i] = v.dRGB[i] * rgbW[i]
	}
	aW := v.adapt(mCAT02ToHPE.apply(rgbCW))
	v.aw = (2*aW[0] + aW[1] + aW[2]/20 - 0.305) * v.nbb

	return v
}

// adapt applies the post-adaptation non-linear compression.
func (v viewing) adapt(rgb [3]float64) [3]float64 {
	var out [3]float64
	for i, x := range rgb {
		p := math.Pow(v.fl*math.Abs(x)/100, 0.42)
		out[i] = math.Copysign(400*p/(p+27.13), x) + 0.1
	}
	return out
}

// appearance returns CIECAM02 lightness J, colourfulness M and hue angle h
// in degrees for an XYZ triple scaled so the white has Y=100.
func (v viewing) appearance(xyz [3]float64) (j, m, h float64) {
	rgb := mCAT02.apply(xyz)
	for i := range rgb {
		rgb[i] *= v.dRGB[i]
	}
	ra := v.adapt(mCAT02ToHPE.apply(rgb))

	a := ra[0] - 12*ra[1]/11 + ra[2]/11
	b := (ra[0] + ra[1] - 2*ra[2]) / 9

	h = NormaliseHue(math.Atan2(b, a) * 180 / math.Pi)

	achromatic := (2*ra[0] + ra[1] + ra[2]/20 - 0.305) * v.nbb
	if achromatic <= 0 {
		return 0, 0, h
	}
	j = 100 * math.Pow(achromatic/v.aw, v.c*v.z)

	et := 0.25 * (math.Cos(h*math.Pi/180+2) + 3.8)
	t := (50000.0 / 13.0 * v.nc * v.ncb * et * math.Hypot(a, b)) / (ra[0] + ra[1] + 21*ra[2]/20)
	c := math.Pow(t, 0.9) * math.Sqrt(j/100) * v.chromaK
	m = c * math.Pow(v.fl, 0.25)

	return j, m, h
}
