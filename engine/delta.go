package engine

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	revolving "github.com/marben/revolving_ifs"
)

// deltaPlaces is the rounding applied to each rotation, so that values
// such as cos(π/2) read as exact zeros.
const deltaPlaces = 5

// DeltaFamily returns the 2|n| rotations e^{ikπ/n}, k = 0..2|n|-1, which
// walk the unit circle once in steps of θ = π/n. Negative n walks it
// clockwise. The result is deterministic for a given n.
func DeltaFamily(n int) []revolving.Complex {
	count := 2 * max(n, -n)
	deltas := make([]revolving.Complex, count)
	for k := range deltas {
		u := revolving.Unit(float64(k) * math.Pi / float64(n))
		deltas[k] = revolving.Complex{
			Re: scalar.Round(u.Re, deltaPlaces),
			Im: scalar.Round(u.Im, deltaPlaces),
		}
	}
	return deltas
}
