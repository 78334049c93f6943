// Package revolving holds the values shared by every part of the
// visualizer: complex numbers, the (α, n) parameters of the revolving
// iterated function system and the drawing surface abstraction.
package revolving

import (
	"fmt"
	"math"
)

const (
	MinDenominator = -20
	MaxDenominator = 20
)

// Params selects one system f1(z) = αz, f2(z) = α·e^{iπ/n}·z + α.
type Params struct {
	Alpha Complex `json:"alpha"`
	N     int     `json:"n"`
}

// Theta returns the rotation angle π/n.
func (p Params) Theta() float64 {
	return math.Pi / float64(p.N)
}

// Validate reports whether N is a usable denominator.
func (p Params) Validate() error {
	if p.N == 0 {
		return ErrZeroDenominator
	}
	if p.N < MinDenominator || p.N > MaxDenominator {
		return fmt.Errorf("%w: %d", ErrDenominatorRange, p.N)
	}
	return nil
}

// Normalized returns p with N passed through ClampDenominator.
func (p Params) Normalized() Params {
	p.N = ClampDenominator(p.N)
	return p
}

// ClampDenominator clamps n to [MinDenominator, MaxDenominator] and coerces
// the degenerate 0 to 1, so a zero divisor is never exposed.
func ClampDenominator(n int) int {
	n = max(MinDenominator, min(MaxDenominator, n))
	if n == 0 {
		return 1
	}
	return n
}

// Parameter landmarks taken from the defaults of the visualizer variants.
var (
	// DefaultParams is the initial state of the web visualizer.
	DefaultParams = Params{Alpha: Complex{Re: 0.5, Im: -0.5}, N: 2}

	// Gamma is the second base of the binary expansion curve generator.
	Gamma = Params{Alpha: Complex{Re: 0.5, Im: 0.5}, N: 2}

	// Expanding uses |α| > 1, so every generation grows the point cloud.
	Expanding = Params{Alpha: Complex{Re: 1, Im: 1}, N: 2}
)

// Presets indexes the landmarks by name.
var Presets = map[string]Params{
	"default":   DefaultParams,
	"gamma":     Gamma,
	"expanding": Expanding,
}
