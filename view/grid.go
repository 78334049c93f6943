package view

import (
	"math"
	"strconv"
)

// Spacing is the grid derived from a window: major lines every
// 10^Exponent, minor lines every tenth of that.
type Spacing struct {
	Major, Minor float64
	Exponent     int
}

// SpacingFor picks the grid for the window's horizontal extent.
func SpacingFor(b Bounds) Spacing {
	exp := int(math.Floor(math.Log10(b.XRange())))
	major := math.Pow(10, float64(exp))
	return Spacing{
		Major:    major,
		Minor:    major / 10,
		Exponent: exp,
	}
}

// Snap rounds v to the nearest multiple of the minor spacing. Up to a
// major spacing of 10 it divides by the integer 1/Minor, so 0.3 snaps to
// exactly 0.3.
func (s Spacing) Snap(v float64) float64 {
	if s.Exponent <= 1 {
		k := math.Pow(10, float64(1-s.Exponent))
		return math.Round(v*k) / k
	}
	return math.Round(v/s.Minor) * s.Minor
}

// Precision is the number of decimals that shows a minor step: one more
// than the major spacing needs, never negative.
func (s Spacing) Precision() int {
	return max(0, -s.Exponent+1)
}

// FormatDecimal formats v with Precision decimals.
func (s Spacing) FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', s.Precision(), 64)
}

// Lines returns the multiples of step covering [lo, hi], extended outward
// to whole steps.
func Lines(lo, hi, step float64) []float64 {
	first := math.Floor(lo / step)
	last := math.Ceil(hi / step)

	lines := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		lines = append(lines, i*step)
	}
	return lines
}
