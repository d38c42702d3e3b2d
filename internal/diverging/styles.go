package diverging

import (
	"math"

	"github.com/jmylchreest/divergent/internal/colour"
)

// ColorBrewerStyle returns a spec with ColorBrewer-like curves. A narrow hat
// (lightness power 0.7, chroma peaks 55) leaves the light centre quickly; a
// wide hat (power 1.2, peaks 65) holds a broad light plateau.
func ColorBrewerStyle(n int, leftHue, rightHue float64, narrowHat bool) Spec {
	s := DefaultSpec()
	s.N = n
	s.LeftHue = leftHue
	s.RightHue = rightHue

	if narrowHat {
		s.LeftLightnessPower, s.RightLightnessPower = 0.7, 0.7
		s.LeftMaxChroma, s.RightMaxChroma = 55, 55
	} else {
		s.LeftLightnessPower, s.RightLightnessPower = 1.2, 1.2
		s.LeftMaxChroma, s.RightMaxChroma = 65, 65
	}
	return s
}

// Brand palette targets. Brand colours are usually mid-lightness, so the
// endpoints are set darker than the brand and the brand lands mid-arm.
const (
	brandEndpointLightness = 20
	brandCentreLightness   = 95
	brandChromaHeadroom    = 1.2
)

// SuggestFromBrand derives a classic spec whose arms carry the hues of two
// brand colours. Endpoint chroma and the chroma peaks sit above the larger
// brand chroma so both brand colours are reachable along their arm.
func SuggestFromBrand(left, right colour.RGB, n int) Spec {
	lh := left.HCL()
	rh := right.HCL()
	chroma := math.Max(lh.C, rh.C) * brandChromaHeadroom

	s := DefaultSpec()
	s.N = n
	s.LeftHue = lh.H
	s.RightHue = rh.H
	s.LeftChroma, s.RightChroma = chroma, chroma
	s.LeftMaxChroma, s.RightMaxChroma = chroma, chroma
	s.LeftLightness, s.RightLightness = brandEndpointLightness, brandEndpointLightness
	s.MiddleLightness = brandCentreLightness
	s.LeftChromaPower, s.RightChromaPower = 1, 1
	s.LeftLightnessPower, s.RightLightnessPower = 1, 1
	s.Mode = ModeClassic
	return s
}
