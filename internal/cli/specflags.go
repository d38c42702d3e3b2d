package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/divergent/internal/diverging"
)

// specFlags binds the palette parameters shared by generate, proximity and
// analyze.
type specFlags struct {
	fs *pflag.FlagSet

	spec    diverging.Spec
	h2, c2  float64
	noFixup bool
	mode    string
	format  string
	preset  string
}

// addSpecFlags registers the palette flags on fs, defaulting to
// diverging.DefaultSpec().
func addSpecFlags(fs *pflag.FlagSet) *specFlags {
	f := &specFlags{fs: fs, spec: diverging.DefaultSpec()}
	s := &f.spec

	fs.IntVarP(&s.N, "count", "n", s.N, "number of colours")

	fs.Float64Var(&s.LeftHue, "h1", s.LeftHue, "left endpoint hue (degrees)")
	fs.Float64Var(&f.h2, "h2", 0, "centre hue (default: midpoint of h1 and h3)")
	fs.Float64Var(&s.RightHue, "h3", s.RightHue, "right endpoint hue (degrees)")

	fs.Float64Var(&s.LeftChroma, "c1", s.LeftChroma, "left endpoint chroma")
	fs.Float64Var(&f.c2, "c2", 0, "centre chroma (default: 0, neutral)")
	fs.Float64Var(&s.RightChroma, "c3", s.RightChroma, "right endpoint chroma")

	fs.Float64Var(&s.LeftLightness, "l1", s.LeftLightness, "left endpoint lightness")
	fs.Float64Var(&s.MiddleLightness, "l2", s.MiddleLightness, "centre lightness")
	fs.Float64Var(&s.RightLightness, "l3", s.RightLightness, "right endpoint lightness")

	fs.Float64Var(&s.LeftChromaPower, "p1", s.LeftChromaPower, "left arm chroma power")
	fs.Float64Var(&s.LeftLightnessPower, "p2", s.LeftLightnessPower, "left arm lightness power (<1 narrow hat, >1 wide)")
	fs.Float64Var(&s.RightChromaPower, "p3", s.RightChromaPower, "right arm chroma power")
	fs.Float64Var(&s.RightLightnessPower, "p4", s.RightLightnessPower, "right arm lightness power (<1 narrow hat, >1 wide)")

	fs.Float64Var(&s.LeftMaxChroma, "cmax1", s.LeftMaxChroma, "left arm chroma peak (ignored unless above c1 and c2)")
	fs.Float64Var(&s.RightMaxChroma, "cmax2", s.RightMaxChroma, "right arm chroma peak (ignored unless above c3 and c2)")

	fs.BoolVar(&f.noFixup, "no-fixup", false, "clamp RGB channels instead of reducing chroma")
	fs.StringVar(&f.mode, "mode", s.Mode.String(), "construction mode (classic, flexible)")
	fs.BoolVar(&s.LongHueArc, "long-arc", false, "resolve the centre hue on the longer arc between h1 and h3")
	fs.StringVar(&f.preset, "preset", "", "start from a named preset (see 'divergent presets')")

	return f
}

// addFormatFlag registers -f/--format. Commands that print colours call it.
func (f *specFlags) addFormatFlag() {
	f.fs.StringVarP(&f.format, "format", "f", "", "output format (hex, rgb, rgb_strings)")
}

// resolve builds the spec from the flags. A preset supplies the arm
// parameters; explicitly set flags override it. The format falls back to
// def when -f is not given.
func (f *specFlags) resolve(a *app, def diverging.Format) (diverging.Spec, error) {
	spec := f.spec

	name := f.preset
	if name == "" {
		name = a.cfg.Preset
	}
	if name != "" {
		base, err := a.catalogue.Resolve(name)
		if err != nil {
			return spec, err
		}
		spec = f.overlay(base)
	}

	if f.fs.Changed("h2") {
		spec.MiddleHue = diverging.Some(f.h2)
	}
	if f.fs.Changed("c2") {
		spec.MiddleChroma = diverging.Some(f.c2)
	}
	spec.Fixup = !f.noFixup

	mode, err := diverging.ParseMode(f.mode)
	if err != nil {
		return spec, err
	}
	if name == "" || f.fs.Changed("mode") {
		spec.Mode = mode
	}

	spec.Format = def
	if f.format != "" {
		format, err := diverging.ParseFormat(f.format)
		if err != nil {
			return spec, err
		}
		spec.Format = format
	}

	return spec, nil
}

// overlay copies every explicitly set flag onto base.
func (f *specFlags) overlay(base diverging.Spec) diverging.Spec {
	s := f.spec
	for name, dst := range map[string]any{
		"count": &base.N,
		"h1":    &base.LeftHue, "h3": &base.RightHue,
		"c1": &base.LeftChroma, "c3": &base.RightChroma,
		"l1": &base.LeftLightness, "l2": &base.MiddleLightness, "l3": &base.RightLightness,
		"p1": &base.LeftChromaPower, "p2": &base.LeftLightnessPower,
		"p3": &base.RightChromaPower, "p4": &base.RightLightnessPower,
		"cmax1": &base.LeftMaxChroma, "cmax2": &base.RightMaxChroma,
		"long-arc": &base.LongHueArc,
	} {
		if !f.fs.Changed(name) {
			continue
		}
		switch p := dst.(type) {
		case *int:
			*p = s.N
		case *bool:
			*p = s.LongHueArc
		case *float64:
			*p = f.value(name)
		}
	}
	return base
}

// value returns the parsed value of a float flag.
func (f *specFlags) value(name string) float64 {
	v, _ := f.fs.GetFloat64(name)
	return v
}
