package diverging

import (
	"math"
	"testing"

	"github.com/jmylchreest/divergent/internal/colour"
)

func TestColorBrewerStyle(t *testing.T) {
	tests := []struct {
		name      string
		narrow    bool
		wantPower float64
		wantPeak  float64
	}{
		{name: "narrow", narrow: true, wantPower: 0.7, wantPeak: 55},
		{name: "wide", narrow: false, wantPower: 1.2, wantPeak: 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ColorBrewerStyle(11, 260, 20, tt.narrow)
			if s.N != 11 || s.LeftHue != 260 || s.RightHue != 20 {
				t.Errorf("size/hues not applied: %+v", s)
			}
			if s.LeftLightnessPower != tt.wantPower || s.RightLightnessPower != tt.wantPower {
				t.Errorf("lightness powers = %v/%v, want %v", s.LeftLightnessPower, s.RightLightnessPower, tt.wantPower)
			}
			if s.LeftMaxChroma != tt.wantPeak || s.RightMaxChroma != tt.wantPeak {
				t.Errorf("chroma peaks = %v/%v, want %v", s.LeftMaxChroma, s.RightMaxChroma, tt.wantPeak)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestSuggestFromBrand(t *testing.T) {
	left := colour.RGB{R: 30, G: 58, B: 138}
	right := colour.RGB{R: 220, G: 38, B: 38}
	lh, rh := left.HCL(), right.HCL()

	s := SuggestFromBrand(left, right, 21)
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	if s.N != 21 || s.Mode != ModeClassic {
		t.Errorf("n/mode = %d/%s", s.N, s.Mode)
	}
	if s.LeftHue != lh.H || s.RightHue != rh.H {
		t.Errorf("hues = %v/%v, want brand hues %v/%v", s.LeftHue, s.RightHue, lh.H, rh.H)
	}

	wantChroma := math.Max(lh.C, rh.C) * 1.2
	for _, c := range []float64{s.LeftChroma, s.RightChroma, s.LeftMaxChroma, s.RightMaxChroma} {
		if c != wantChroma {
			t.Errorf("chroma = %v, want %v", c, wantChroma)
		}
	}
	if s.LeftLightness != 20 || s.MiddleLightness != 95 || s.RightLightness != 20 {
		t.Errorf("lightness = %v/%v/%v, want 20/95/20", s.LeftLightness, s.MiddleLightness, s.RightLightness)
	}
}
