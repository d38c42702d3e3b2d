package diverging

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/divergent/internal/colour"
)

// DefaultParallelThreshold is the palette size from which the per-index
// pipeline is spread across goroutines.
const DefaultParallelThreshold = 1024

// PresetResolver looks up the arm parameters of a named palette. The
// returned spec's N, Format and Fixup are overwritten by the request.
type PresetResolver interface {
	Resolve(name string) (Spec, error)
}

// Generator builds palettes from specs. It holds no per-request state and
// is safe for concurrent use.
type Generator struct {
	logger            hclog.Logger
	presets           PresetResolver
	parallelThreshold int
	workers           int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPresets sets the resolver used by GeneratePreset.
func WithPresets(r PresetResolver) Option {
	return func(g *Generator) {
		g.presets = r
	}
}

// WithParallelThreshold sets the palette size from which generation runs in
// parallel. Zero or negative disables parallel generation.
func WithParallelThreshold(n int) Option {
	return func(g *Generator) {
		g.parallelThreshold = n
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:            hclog.NewNullLogger(),
		parallelThreshold: DefaultParallelThreshold,
		workers:           runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds spec.N colours. Each index is interpolated, brought into
// gamut under the spec's policy and quantised to 8 bits. Invalid specs fail
// with an error wrapping ErrInvalidParameter and no partial result.
func (g *Generator) Generate(spec Spec) (*Palette, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	ip, err := spec.Interpolator()
	if err != nil {
		return nil, err
	}
	policy := spec.GamutPolicy()
	n := spec.N

	g.logger.Debug("generating palette", "n", n, "mode", spec.Mode, "gamut", policy, "format", spec.Format)

	colours := make([]colour.RGB, n)
	var corrected atomic.Int64

	render := func(i int) {
		requested := ip.At(i, n)
		rgb, fixed := policy.Apply(requested)
		if fixed {
			corrected.Add(1)
			g.logger.Trace("out of gamut", "index", i, "h", requested.H, "c", requested.C, "l", requested.L, "result", rgb.Hex())
		}
		colours[i] = rgb
	}

	if g.parallelThreshold > 0 && n >= g.parallelThreshold && g.workers > 1 {
		g.renderParallel(n, render)
	} else {
		for i := 0; i < n; i++ {
			render(i)
		}
	}

	if c := corrected.Load(); c > 0 {
		g.logger.Debug("corrected out-of-gamut colours", "count", c, "policy", policy)
	}

	return &Palette{Colours: colours, Format: spec.Format}, nil
}

// renderParallel splits [0, n) into contiguous chunks, one per worker.
// Every index is written by exactly one goroutine, so output order and
// values match the sequential path.
func (g *Generator) renderParallel(n int, render func(int)) {
	chunk := (n + g.workers - 1) / g.workers

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		eg.Go(func() error {
			for i := start; i < end; i++ {
				render(i)
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// GeneratePreset builds a palette from a named preset. Unknown names fail
// with an error wrapping ErrUnresolvedPreset.
func (g *Generator) GeneratePreset(name string, n int, format Format, fixup bool) (*Palette, error) {
	if g.presets == nil {
		return nil, fmt.Errorf("%w: %q (no preset catalogue configured)", ErrUnresolvedPreset, name)
	}

	spec, err := g.presets.Resolve(name)
	if err != nil {
		if errors.Is(err, ErrUnresolvedPreset) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrUnresolvedPreset, name, err)
	}

	spec.N = n
	spec.Format = format
	spec.Fixup = fixup

	g.logger.Debug("resolved preset", "name", name)
	return g.Generate(spec)
}
