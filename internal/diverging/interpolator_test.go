package diverging

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/divergent/internal/colour"
)

func TestInterpolatorEndpointsAndCentre(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeFlexible} {
		t.Run(mode.String(), func(t *testing.T) {
			s := DefaultSpec()
			s.Mode = mode
			s.MiddleHue = Some(300.0)
			ip, err := s.Interpolator()
			if err != nil {
				t.Fatal(err)
			}

			const n = 9
			left, mid, right := ip.At(0, n), ip.At(n/2, n), ip.At(n-1, n)

			if left.H != 255 || left.C != s.LeftChroma || left.L != s.LeftLightness {
				t.Errorf("left endpoint = %+v", left)
			}
			if right.H != 10 || right.C != s.RightChroma || right.L != s.RightLightness {
				t.Errorf("right endpoint = %+v", right)
			}
			if mid != (colour.HCL{H: 300, C: 0, L: 97}) {
				t.Errorf("centre = %+v", mid)
			}
		})
	}
}

func TestClassicHoldsArmHue(t *testing.T) {
	s := DefaultSpec()
	ip, _ := s.Interpolator()
	const n = 10
	for i := 0; i < n; i++ {
		c := ip.At(i, n)
		want := 255.0
		if i >= n/2 {
			want = 10
		}
		if c.H != want {
			t.Errorf("index %d hue = %v, want %v", i, c.H, want)
		}
	}
}

func TestFlexibleHueFollowsShorterArc(t *testing.T) {
	s := DefaultSpec()
	s.Mode = ModeFlexible
	s.LeftHue, s.RightHue = 350, 40
	s.MiddleHue = Some(10.0)
	ip, _ := s.Interpolator()

	const n = 21
	for i := 0; i < n; i++ {
		h := ip.At(i, n).H
		// Every hue lies on the 50 degree arc through 0, never near 180.
		if colour.HueDistance(h, 15) > 25+1e-9 {
			t.Errorf("index %d hue = %v strays off the 350..40 arc", i, h)
		}
	}
}

func TestFlexibleLongArc(t *testing.T) {
	s := DefaultSpec()
	s.Mode = ModeFlexible
	s.LeftHue, s.RightHue = 350, 10
	s.LongHueArc = true
	ip, _ := s.Interpolator()

	if h := ip.At(2, 5).H; math.Abs(h-180) > 1e-9 {
		t.Errorf("centre hue = %v, want 180", h)
	}
	if h := ip.At(1, 5).H; h < 180 || h > 350 {
		t.Errorf("left arm hue = %v, want between 180 and 350", h)
	}
	if h := ip.At(3, 5).H; h < 10 || h > 180 {
		t.Errorf("right arm hue = %v, want between 10 and 180", h)
	}
}

func TestLightnessMonotonicPerArm(t *testing.T) {
	for _, p := range []float64{0.5, 0.8, 1, 1.2, 2} {
		for _, mode := range []Mode{ModeClassic, ModeFlexible} {
			s := DefaultSpec()
			s.Mode = mode
			s.LeftLightnessPower, s.RightLightnessPower = p, p*1.1
			ip, _ := s.Interpolator()

			const n = 31
			for i := 0; i < n/2; i++ {
				if a, b := ip.At(i, n).L, ip.At(i+1, n).L; !(b > a) {
					t.Errorf("p=%v %s: left arm L[%d]=%v, L[%d]=%v not increasing", p, mode, i, a, i+1, b)
				}
			}
			for i := n / 2; i < n-1; i++ {
				if a, b := ip.At(i, n).L, ip.At(i+1, n).L; !(b < a) {
					t.Errorf("p=%v %s: right arm L[%d]=%v, L[%d]=%v not decreasing", p, mode, i, a, i+1, b)
				}
			}
		}
	}
}

func TestInterpolate(t *testing.T) {
	s := DefaultSpec()
	got, err := Interpolate(s, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.L != s.LeftLightness {
		t.Errorf("Interpolate(0, 5).L = %v, want %v", got.L, s.LeftLightness)
	}

	for _, i := range []int{-1, 5} {
		if _, err := Interpolate(s, i, 5); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Interpolate(%d, 5) = %v, want ErrInvalidParameter", i, err)
		}
	}
	if _, err := Interpolate(s, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Interpolate(n=1) = %v, want ErrInvalidParameter", err)
	}
}
