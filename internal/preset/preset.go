// Package preset provides a catalogue of named diverging palettes modelled on
// the HCL wizard presets.
package preset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/divergent/internal/diverging"
)

// Preset holds the parameters of a two-hue diverging palette: one hue per
// arm, a shared endpoint chroma, endpoint and centre lightness, and the
// chroma and lightness powers.
type Preset struct {
	Name           string  `json:"name"`
	LeftHue        float64 `json:"left_hue"`
	RightHue       float64 `json:"right_hue"`
	Chroma         float64 `json:"chroma"`
	Lightness      float64 `json:"lightness"`
	Centre         float64 `json:"centre_lightness"`
	ChromaPower    float64 `json:"chroma_power"`
	LightnessPower float64 `json:"lightness_power"`
}

// Spec expands the preset into a classic diverging spec. Size, format and
// gamut handling are left at their defaults for the caller to override.
func (p Preset) Spec() diverging.Spec {
	s := diverging.DefaultSpec()
	s.LeftHue, s.RightHue = p.LeftHue, p.RightHue
	s.LeftChroma, s.RightChroma = p.Chroma, p.Chroma
	s.LeftMaxChroma, s.RightMaxChroma = 0, 0
	s.LeftLightness, s.RightLightness = p.Lightness, p.Lightness
	s.MiddleLightness = p.Centre
	s.LeftChromaPower, s.RightChromaPower = p.ChromaPower, p.ChromaPower
	s.LeftLightnessPower, s.RightLightnessPower = p.LightnessPower, p.LightnessPower
	s.Mode = diverging.ModeClassic
	return s
}

var builtin = []Preset{
	{Name: "Blue-Red", LeftHue: 260, RightHue: 0, Chroma: 80, Lightness: 30, Centre: 90, ChromaPower: 1.5, LightnessPower: 1.5},
	{Name: "Blue-Red 2", LeftHue: 260, RightHue: 0, Chroma: 100, Lightness: 50, Centre: 90, ChromaPower: 1, LightnessPower: 1},
	{Name: "Blue-Red 3", LeftHue: 265, RightHue: 12, Chroma: 80, Lightness: 25, Centre: 95, ChromaPower: 0.7, LightnessPower: 1.3},
	{Name: "Red-Green", LeftHue: 340, RightHue: 128, Chroma: 60, Lightness: 30, Centre: 90, ChromaPower: 1.5, LightnessPower: 1.5},
	{Name: "Purple-Green", LeftHue: 300, RightHue: 128, Chroma: 60, Lightness: 30, Centre: 95, ChromaPower: 1, LightnessPower: 1.4},
	{Name: "Purple-Brown", LeftHue: 270, RightHue: 40, Chroma: 60, Lightness: 30, Centre: 95, ChromaPower: 1, LightnessPower: 1.2},
	{Name: "Green-Brown", LeftHue: 180, RightHue: 55, Chroma: 40, Lightness: 35, Centre: 95, ChromaPower: 0.8, LightnessPower: 1.4},
	{Name: "Blue-Yellow 2", LeftHue: 265, RightHue: 80, Chroma: 80, Lightness: 40, Centre: 95, ChromaPower: 1.2, LightnessPower: 1.2},
	{Name: "Blue-Yellow 3", LeftHue: 265, RightHue: 80, Chroma: 80, Lightness: 70, Centre: 95, ChromaPower: 0.5, LightnessPower: 2},
	{Name: "Green-Orange", LeftHue: 130, RightHue: 43, Chroma: 100, Lightness: 70, Centre: 90, ChromaPower: 1, LightnessPower: 1},
	{Name: "Cyan-Magenta", LeftHue: 180, RightHue: 330, Chroma: 59, Lightness: 75, Centre: 95, ChromaPower: 1.5, LightnessPower: 1.5},
	{Name: "Tropic", LeftHue: 195, RightHue: 325, Chroma: 70, Lightness: 55, Centre: 95, ChromaPower: 1, LightnessPower: 1},
}

// Catalogue resolves preset names case-insensitively. It implements
// diverging.PresetResolver.
type Catalogue struct {
	presets map[string]Preset
	order   []string
}

// NewCatalogue creates a catalogue from the given presets. Later entries
// replace earlier ones with the same name.
func NewCatalogue(presets ...Preset) *Catalogue {
	c := &Catalogue{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		key := normalise(p.Name)
		if _, exists := c.presets[key]; !exists {
			c.order = append(c.order, p.Name)
		}
		c.presets[key] = p
	}
	return c
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	return NewCatalogue(builtin...)
}

// Lookup returns the preset with the given name.
func (c *Catalogue) Lookup(name string) (Preset, bool) {
	p, ok := c.presets[normalise(name)]
	return p, ok
}

// Resolve implements diverging.PresetResolver.
func (c *Catalogue) Resolve(name string) (diverging.Spec, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return diverging.Spec{}, fmt.Errorf("%w: %q (available: %s)",
			diverging.ErrUnresolvedPreset, name, strings.Join(c.Names(), ", "))
	}
	return p.Spec(), nil
}

// Names returns preset names in insertion order.
func (c *Catalogue) Names() []string {
	return slices.Clone(c.order)
}

// All returns the presets in insertion order.
func (c *Catalogue) All() []Preset {
	out := make([]Preset, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.presets[normalise(name)])
	}
	return out
}

func normalise(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
