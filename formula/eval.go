package formula

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	revolving "github.com/marben/revolving_ifs"
)

// Bindings assigns values to the variables of a formula.
type Bindings map[string]revolving.Complex

// Evaluate computes n under b. Every variable of n must be bound.
func Evaluate(n Node, b Bindings) (revolving.Complex, error) {
	v, err := eval(n, b)
	if err != nil {
		return revolving.Complex{}, err
	}
	return revolving.FromComplex128(v), nil
}

func eval(n Node, b Bindings) (complex128, error) {
	switch n := n.(type) {
	case Number:
		return complex(n.Value, 0), nil

	case Const:
		switch n.Name {
		case "e":
			return complex(math.E, 0), nil
		case "i":
			return 1i, nil
		case "pi":
			return complex(math.Pi, 0), nil
		}
		return 0, fmt.Errorf("formula: unknown constant %q", n.Name)

	case Var:
		v, ok := b[n.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnbound, n.Name)
		}
		return v.Complex128(), nil

	case Neg:
		x, err := eval(n.X, b)
		return -x, err

	case Binary:
		x, err := eval(n.X, b)
		if err != nil {
			return 0, err
		}
		y, err := eval(n.Y, b)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return x + y, nil
		case '-':
			return x - y, nil
		case '*':
			return x * y, nil
		case '/':
			return x / y, nil
		case '^':
			return pow(x, y), nil
		}
		return 0, fmt.Errorf("formula: unknown operator %q", n.Op)

	case Call:
		x, err := eval(n.Arg, b)
		if err != nil {
			return 0, err
		}
		switch n.Fn {
		case "exp":
			return cmplx.Exp(x), nil
		case "sin":
			return cmplx.Sin(x), nil
		case "cos":
			return cmplx.Cos(x), nil
		case "tan":
			return cmplx.Tan(x), nil
		case "sqrt":
			return cmplx.Sqrt(x), nil
		case "ln":
			return cmplx.Log(x), nil
		}
		return 0, fmt.Errorf("formula: unknown function %q", n.Fn)
	}
	return 0, fmt.Errorf("formula: unknown node %T", n)
}

// pow multiplies out small integer exponents, which cmplx.Pow would
// only approximate.
func pow(x, y complex128) complex128 {
	k := real(y)
	if imag(y) != 0 || k != math.Trunc(k) || math.Abs(k) > 64 {
		return cmplx.Pow(x, y)
	}
	r := complex(1, 0)
	for i := 0; i < int(math.Abs(k)); i++ {
		r *= x
	}
	if k < 0 {
		return 1 / r
	}
	return r
}

// Variables lists the free variables of n other than z, sorted.
func Variables(n Node) []string {
	var names []string
	walk(n, func(n Node) {
		if v, ok := n.(Var); ok && v.Name != "z" && !slices.Contains(names, v.Name) {
			names = append(names, v.Name)
		}
	})
	slices.Sort(names)
	return names
}

func walk(n Node, fn func(Node)) {
	fn(n)
	switch n := n.(type) {
	case Neg:
		walk(n.X, fn)
	case Binary:
		walk(n.X, fn)
		walk(n.Y, fn)
	case Call:
		walk(n.Arg, fn)
	}
}
