package formula

import (
	"fmt"
	"strconv"
)

// Node is a parsed formula. The concrete types are Number, Const, Var,
// Neg, Binary and Call.
type Node interface {
	fmt.Stringer
	node()
}

type Number struct{ Value float64 }

// Const is one of the named constants "e", "i" and "pi".
type Const struct{ Name string }

type Var struct{ Name string }

type Neg struct{ X Node }

// Binary is an arithmetic operation; Op is one of + - * / ^.
type Binary struct {
	Op   byte
	X, Y Node
}

// Call applies a named function: exp, sin, cos, tan, sqrt, ln.
type Call struct {
	Fn  string
	Arg Node
}

func (Number) node() {}
func (Const) node()  {}
func (Var) node()    {}
func (Neg) node()    {}
func (Binary) node() {}
func (Call) node()   {}

func (n Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (c Const) String() string  { return c.Name }
func (v Var) String() string    { return v.Name }
func (n Neg) String() string    { return "(-" + n.X.String() + ")" }
func (b Binary) String() string {
	return "(" + b.X.String() + " " + string(b.Op) + " " + b.Y.String() + ")"
}
func (c Call) String() string { return c.Fn + "(" + c.Arg.String() + ")" }
