package formula

import (
	"fmt"
	"math"
	"slices"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
)

// The formulas of the built-in revolving system.
const (
	DefaultF1 = `\alpha z`
	DefaultF2 = `\alpha e^{i\pi/n}z+\alpha`
)

// Parameters are the variables a map formula may use besides z.
var Parameters = []string{"alpha", "n", "theta"}

// Bind returns the bindings of p at the point z: alpha, the denominator
// n and the angle theta = π/n.
func Bind(p revolving.Params, z revolving.Complex) Bindings {
	return Bindings{
		"z":     z,
		"alpha": p.Alpha,
		"n":     revolving.C(float64(p.N), 0),
		"theta": revolving.C(p.Theta(), 0),
	}
}

// System builds an engine.System from the two map formulas.
func System(f1, f2 string) (engine.System, error) {
	n1, err := Parse(f1)
	if err != nil {
		return nil, fmt.Errorf("f1: %w", err)
	}
	n2, err := Parse(f2)
	if err != nil {
		return nil, fmt.Errorf("f2: %w", err)
	}
	for _, name := range append(Variables(n1), Variables(n2)...) {
		if !slices.Contains(Parameters, name) {
			return nil, fmt.Errorf("%w: %s", ErrUnbound, name)
		}
	}

	return func(p revolving.Params) (engine.Map, engine.Map) {
		return mapOf(n1, p), mapOf(n2, p)
	}, nil
}

// mapOf evaluates n at each point. The bindings are reused between calls,
// so the map must stay with a single engine.
func mapOf(n Node, p revolving.Params) engine.Map {
	b := Bind(p, revolving.Complex{})
	return func(z revolving.Complex) revolving.Complex {
		b["z"] = z
		v, err := Evaluate(n, b)
		if err != nil {
			// unreachable: System checked the variables
			return revolving.C(math.NaN(), math.NaN())
		}
		return v
	}
}
