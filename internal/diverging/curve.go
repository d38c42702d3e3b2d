package diverging

import (
	"math"

	"github.com/jmylchreest/divergent/internal/colour"
)

// arm holds the endpoint parameters of one half of the palette.
type arm struct {
	hue            float64
	chroma         float64
	maxChroma      float64
	lightness      float64
	chromaPower    float64
	lightnessPower float64
}

// Position returns the normalised position of index i in a palette of n
// colours: -1 for the leftmost, +1 for the rightmost. Positions of i and
// n-1-i are exact negatives of each other, and an odd n puts index (n-1)/2
// exactly at 0.
func Position(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(2*i-(n-1)) / float64(n-1)
}

// powerCurve moves from the centre value towards the endpoint value as the
// arm position u goes from 0 (centre) to 1 (endpoint). A power below 1
// leaves the centre quickly, giving a narrow peak; above 1 holds a wide
// plateau near the centre.
func powerCurve(u, centre, endpoint, power float64) float64 {
	return centre - (centre-endpoint)*math.Pow(u, power)
}

// chromaAt evaluates chroma along an arm. Without a usable peak it is a
// plain power curve between the endpoint and centre chroma. With
// maxChroma above both, chroma rises from the centre to maxChroma at the
// breakpoint j and falls back to the endpoint chroma, j being placed so
// both segments change at the same rate.
func chromaAt(u, endpoint, centre, maxChroma, power float64) float64 {
	if maxChroma <= math.Max(endpoint, centre) {
		return powerCurve(u, centre, endpoint, power)
	}

	j := 1 / (1 + math.Abs(maxChroma-endpoint)/math.Abs(maxChroma-centre))
	if u <= j {
		return centre - (centre-maxChroma)*math.Pow(u/j, power)
	}
	return maxChroma - (maxChroma-endpoint)*math.Pow((u-j)/(1-j), power)
}

// at evaluates lightness and chroma at arm position u.
func (a arm) at(u float64, centre colour.HCL) (c, l float64) {
	l = powerCurve(u, centre.L, a.lightness, a.lightnessPower)
	c = chromaAt(u, a.chroma, centre.C, a.maxChroma, a.chromaPower)
	return math.Max(0, c), l
}
