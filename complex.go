package revolving

import (
	"fmt"
	"math"
)

// Complex is an immutable complex number. It is a struct rather than a
// complex128 so that it travels as {"re":..,"im":..} on the wire.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// One is the seed of every IFS construction.
var One = Complex{Re: 1}

func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromComplex128 converts a builtin complex value.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Unit returns the unit complex multiplier (cos θ, sin θ).
func Unit(theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{Re: c, Im: s}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

func (z Complex) Scale(k float64) Complex {
	return Complex{Re: z.Re * k, Im: z.Im * k}
}

func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

func (z Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", z.Re, z.Im)
}
