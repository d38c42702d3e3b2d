package analysis

import (
	"fmt"
	"math"

	"github.com/jmylchreest/divergent/internal/colour"
)

// UniformityStats summarises the perceptual step sizes between adjacent
// palette colours.
type UniformityStats struct {
	// Deltas holds the ΔE between entries i and i+1.
	Deltas []float64 `json:"deltas"`
	Mean   float64   `json:"mean_de"`
	StdDev float64   `json:"std_de"`

	// CV is StdDev/Mean; 0 when Mean is 0. Lower is more uniform.
	CV float64 `json:"cv"`
}

// Uniformity computes adjacent ΔE statistics. At least two colours are
// required.
func Uniformity(palette []colour.RGB) (*UniformityStats, error) {
	if len(palette) < 2 {
		return nil, fmt.Errorf("uniformity needs at least 2 colours, got %d", len(palette))
	}

	points := toUCS(palette)
	s := &UniformityStats{Deltas: make([]float64, len(points)-1)}

	var sum float64
	for i := range s.Deltas {
		s.Deltas[i] = points[i].Distance(points[i+1])
		sum += s.Deltas[i]
	}
	s.Mean = sum / float64(len(s.Deltas))

	var sq float64
	for _, d := range s.Deltas {
		sq += (d - s.Mean) * (d - s.Mean)
	}
	s.StdDev = math.Sqrt(sq / float64(len(s.Deltas)))

	if s.Mean > 0 {
		s.CV = s.StdDev / s.Mean
	}
	return s, nil
}
