package engine

import (
	revolving "github.com/marben/revolving_ifs"
)

// Map is one affine map of the system.
type Map func(z revolving.Complex) revolving.Complex

// System derives the pair of maps applied each generation from the
// parameters.
type System func(p revolving.Params) (f1, f2 Map)

// Revolving is the default system f1(z) = αz, f2(z) = α·e^{iπ/n}·z + α.
func Revolving(p revolving.Params) (Map, Map) {
	alpha := p.Alpha
	rot := revolving.Unit(p.Theta())

	f1 := func(z revolving.Complex) revolving.Complex {
		return alpha.Mul(z)
	}
	f2 := func(z revolving.Complex) revolving.Complex {
		return alpha.Mul(rot.Mul(z)).Add(alpha)
	}
	return f1, f2
}
