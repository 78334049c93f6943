package render

import (
	"fmt"

	revolving "github.com/marben/revolving_ifs"
)

// Equations are the two governing maps, as plain text for canvases and as
// TeX for hosts that typeset math.
type Equations struct {
	F1   string `json:"f1"`
	F2   string `json:"f2"`
	TeX1 string `json:"tex1"`
	TeX2 string `json:"tex2"`
}

// EquationSink receives the equations whenever the parameters change.
type EquationSink interface {
	SetEquations(Equations)
}

// EquationSinkFunc adapts a function to an EquationSink.
type EquationSinkFunc func(Equations)

func (f EquationSinkFunc) SetEquations(eq Equations) { f(eq) }

// FormatAlpha writes α with two decimals and a signed imaginary part.
func FormatAlpha(a revolving.Complex) string {
	re, im := a.Re, a.Im
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	return fmt.Sprintf("%.2f%+.2fi", re, im)
}

// FormatEquations renders f1(z) = αz and f2(z) = α·e^{iπ/n}·z + α for p.
func FormatEquations(p revolving.Params) Equations {
	a := "(" + FormatAlpha(p.Alpha) + ")"
	sign := ""
	if p.N < 0 {
		sign = "-"
	}
	n := max(p.N, -p.N)

	return Equations{
		F1:   fmt.Sprintf("f1(z) = %sz", a),
		F2:   fmt.Sprintf("f2(z) = %se^(%si pi/%d)z + %s", a, sign, n, a),
		TeX1: fmt.Sprintf("f_1(z) = %sz", a),
		TeX2: fmt.Sprintf(`f_2(z) = %se^{%si\pi/%d}z + %s`, a, sign, n, a),
	}
}

// FormulaEquations shows two map formulas as typed, for systems built from
// formulas rather than from the parameters.
func FormulaEquations(f1, f2 string) Equations {
	return Equations{
		F1:   "f1(z) = " + f1,
		F2:   "f2(z) = " + f2,
		TeX1: "f_1(z) = " + f1,
		TeX2: "f_2(z) = " + f2,
	}
}
