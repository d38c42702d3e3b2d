package analysis

import (
	"math"

	"github.com/jmylchreest/divergent/internal/colour"
)

// CurveMetrics describes the lightness, chroma and hue sequences of a
// palette as measured in CAM02-UCS.
type CurveMetrics struct {
	Lightness []float64 `json:"lightness"`
	Chroma    []float64 `json:"chroma"`
	Hue       []float64 `json:"hue"`

	// MidpointIndex is n/2 (integer division).
	MidpointIndex int `json:"midpoint_index"`

	// PeakIndex is the first index of maximum lightness.
	PeakIndex     int     `json:"peak_lightness_index"`
	PeakLightness float64 `json:"peak_lightness_value"`

	// MinIndex is the first index of minimum lightness.
	MinIndex int `json:"min_lightness_index"`

	LightnessRange float64 `json:"lightness_range"`
	ChromaRange    float64 `json:"chroma_range"`

	// LeftMonotonic is set when lightness never decreases from the start
	// to the peak; RightMonotonic when it never increases from the peak to
	// the end.
	LeftMonotonic  bool `json:"left_arm_monotonic"`
	RightMonotonic bool `json:"right_arm_monotonic"`

	// HatWidthRatio is |PeakIndex - MidpointIndex| / (n/2): 0 for a
	// centred peak, growing as the peak drifts towards an end.
	HatWidthRatio float64 `json:"hat_width_ratio"`

	// HatWidth is the mean lightness normalised to [0, 1] between the
	// darkest and lightest entry. Narrow hats (power < 1) score lower than
	// wide, plateaued hats (power > 1). 0 when lightness is constant.
	HatWidth float64 `json:"hat_width"`
}

// Curves computes the curve metrics of a palette.
func Curves(palette []colour.RGB) (*CurveMetrics, error) {
	n := len(palette)
	if n == 0 {
		return nil, ErrEmptyPalette
	}

	m := &CurveMetrics{
		Lightness:     make([]float64, n),
		Chroma:        make([]float64, n),
		Hue:           make([]float64, n),
		MidpointIndex: n / 2,
	}
	for i, p := range toUCS(palette) {
		m.Lightness[i] = p.J
		m.Chroma[i] = p.Chroma()
		m.Hue[i] = p.Hue()
	}

	m.PeakIndex = argmax(m.Lightness)
	m.MinIndex = argmin(m.Lightness)
	m.PeakLightness = m.Lightness[m.PeakIndex]
	minL := m.Lightness[m.MinIndex]
	m.LightnessRange = m.PeakLightness - minL
	m.ChromaRange = m.Chroma[argmax(m.Chroma)] - m.Chroma[argmin(m.Chroma)]

	m.LeftMonotonic = true
	for i := 0; i < m.PeakIndex; i++ {
		if m.Lightness[i] > m.Lightness[i+1] {
			m.LeftMonotonic = false
			break
		}
	}
	m.RightMonotonic = true
	for i := m.PeakIndex; i < n-1; i++ {
		if m.Lightness[i] < m.Lightness[i+1] {
			m.RightMonotonic = false
			break
		}
	}

	m.HatWidthRatio = math.Abs(float64(m.PeakIndex-m.MidpointIndex)) / (float64(n) / 2)

	if m.LightnessRange > 0 {
		var sum float64
		for _, l := range m.Lightness {
			sum += (l - minL) / m.LightnessRange
		}
		m.HatWidth = sum / float64(n)
	}

	return m, nil
}

func argmax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func argmin(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}
