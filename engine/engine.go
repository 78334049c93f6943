// Package engine runs the two-map iterated function system one generation
// at a time.
//
// An Engine starts from the seed {1} and doubles its point set on every
// Advance, applying both maps to every point, until the configured
// generation cap. Any parameter change resets it to the seed, so points of
// different parameters never mix.
//
// Engine is not safe for concurrent use. Point sets are replaced, never
// modified, so slices taken from State stay valid after further calls.
package engine

import (
	"fmt"
	"math"

	revolving "github.com/marben/revolving_ifs"
)

// State is a snapshot of an Engine, handed to renderers.
type State struct {
	Params revolving.Params
	// Points is the current generation in map order: each point z of the
	// previous generation contributes f1(z) followed by f2(z).
	Points         []revolving.Complex
	Iteration      int
	WindowBoundary float64
	PointSize      float64
	Deltas         []revolving.Complex
	Done           bool
}

type Engine struct {
	cfg    Config
	params revolving.Params
	f1, f2 Map

	points         []revolving.Complex
	iteration      int
	windowBoundary float64
	deltas         []revolving.Complex
}

// New returns an engine reset to revolving.DefaultParams.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if cfg.System == nil {
		cfg.System = Revolving
	}
	e := &Engine{cfg: cfg}
	e.Reset(revolving.DefaultParams)
	return e, nil
}

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Params() revolving.Params { return e.params }

// Reset returns to the seed {1} under p. The denominator is normalized
// with revolving.ClampDenominator.
func (e *Engine) Reset(p revolving.Params) {
	p = p.Normalized()
	e.params = p
	e.f1, e.f2 = e.cfg.System(p)
	e.points = []revolving.Complex{revolving.One}
	e.iteration = 0
	e.windowBoundary = 1
	e.deltas = DeltaFamily(p.N)
}

// SetParams resets the engine if p differs from the current parameters
// and reports whether it did.
func (e *Engine) SetParams(p revolving.Params) bool {
	if p.Normalized() == e.params {
		return false
	}
	e.Reset(p)
	return true
}

// Done reports whether the generation cap has been reached.
func (e *Engine) Done() bool {
	return e.iteration >= e.cfg.MaxGenerations
}

// Advance computes the next generation. It reports false, changing
// nothing, once the cap is reached.
func (e *Engine) Advance() bool {
	if e.Done() {
		return false
	}

	next := make([]revolving.Complex, 0, 2*len(e.points))
	boundary := 0.0
	for _, z := range e.points {
		a, b := e.f1(z), e.f2(z)
		next = append(next, a, b)
		boundary = math.Max(boundary, extent(a))
		boundary = math.Max(boundary, extent(b))
	}

	e.points = next
	e.windowBoundary = boundary
	e.iteration++
	return true
}

// extent is the larger absolute component of z.
func extent(z revolving.Complex) float64 {
	return math.Max(math.Abs(z.Re), math.Abs(z.Im))
}

func (e *Engine) Iteration() int { return e.iteration }

// Points returns the current generation. Callers must not modify it.
func (e *Engine) Points() []revolving.Complex { return e.points }

// WindowBoundary is the largest absolute real or imaginary component of
// the current generation. It is 0 only when every point is 0.
func (e *Engine) WindowBoundary() float64 { return e.windowBoundary }

func (e *Engine) Deltas() []revolving.Complex { return e.deltas }

// PointSize is the marker radius for the current generation:
// max(MinPointSize, InitialPointSize·Decay^iteration).
func (e *Engine) PointSize() float64 {
	size := e.cfg.InitialPointSize * math.Pow(e.cfg.Decay, float64(e.iteration))
	return math.Max(e.cfg.MinPointSize, size)
}

func (e *Engine) State() State {
	return State{
		Params:         e.params,
		Points:         e.points,
		Iteration:      e.iteration,
		WindowBoundary: e.windowBoundary,
		PointSize:      e.PointSize(),
		Deltas:         e.deltas,
		Done:           e.Done(),
	}
}

// Construct runs a fresh engine under p to its cap and returns the state
// of every generation, from the seed to the last.
func Construct(p revolving.Params, cfg Config) ([]State, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	e.Reset(p)

	states := make([]State, 0, cfg.MaxGenerations+1)
	states = append(states, e.State())
	for e.Advance() {
		states = append(states, e.State())
	}
	return states, nil
}
