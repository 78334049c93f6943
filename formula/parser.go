// Package formula parses and evaluates the LaTeX-flavored map formulas a
// user may type in place of the built-in system, such as
//
//	\alpha z
//	\alpha e^{i\pi/n}z+\alpha
//
// Parsing is a recursive descent over tokens. Multiplication may be
// implicit ("2z", "\alpha z"), e^{x} is the complex exponential, and
// \frac{a}{b}, \cdot and \times are understood. Formulas are evaluated by
// walking the tree; nothing is ever compiled from text.
package formula

import (
	"fmt"
	"slices"
	"strconv"
)

var (
	functions = []string{"exp", "sin", "cos", "tan", "sqrt", "ln", "log"}
	greek     = []string{"alpha", "beta", "gamma", "delta", "theta", "lambda", "mu", "omega", "phi"}
)

type parser struct {
	toks []token
	pos  int
}

// Parse parses src into a tree.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty formula", ErrSyntax)
	}

	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s", ErrSyntax, t)
	}
	return n, nil
}

// MustParse is Parse for formulas known to be valid. It panics on error.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(ops string) bool {
	t := p.peek()
	if t.kind == tokOp && len(t.text) == 1 && slices.Contains([]byte(ops), t.text[0]) {
		return true
	}
	return t.kind == tokCommand && ops == "*/" && (t.text == "cdot" || t.text == "times")
}

// expr := term { (+|-) term }
func (p *parser) expr() (Node, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+-") {
		op := p.next().text[0]
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = Binary{Op: op, X: x, Y: y}
	}
	return x, nil
}

// term := unary { (*|/) unary | power }
// The second alternative is implicit multiplication.
func (p *parser) term() (Node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("*/"):
			op := byte('*')
			if t := p.next(); t.text == "/" {
				op = '/'
			}
			y, err := p.unary()
			if err != nil {
				return nil, err
			}
			x = Binary{Op: op, X: x, Y: y}

		case p.startsPrimary():
			y, err := p.power()
			if err != nil {
				return nil, err
			}
			x = Binary{Op: '*', X: x, Y: y}

		default:
			return x, nil
		}
	}
}

// unary := (+|-) unary | power
func (p *parser) unary() (Node, error) {
	if p.isOp("+-") {
		op := p.next().text
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			return Neg{X: x}, nil
		}
		return x, nil
	}
	return p.power()
}

// power := primary [ ^ unary ]
func (p *parser) power() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return x, nil
	}
	p.next()
	y, err := p.unary()
	if err != nil {
		return nil, err
	}
	if c, ok := x.(Const); ok && c.Name == "e" {
		return Call{Fn: "exp", Arg: y}, nil
	}
	return Binary{Op: '^', X: x, Y: y}, nil
}

func (p *parser) startsPrimary() bool {
	t := p.peek()
	switch t.kind {
	case tokNumber, tokLetter:
		return true
	case tokOpen:
		return true
	case tokCommand:
		return t.text != "cdot" && t.text != "times"
	}
	return false
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrSyntax, t, err)
		}
		return Number{Value: v}, nil

	case tokLetter:
		if t.text == "e" || t.text == "i" {
			return Const{Name: t.text}, nil
		}
		return Var{Name: t.text}, nil

	case tokOpen:
		return p.group(t)

	case tokCommand:
		return p.command(t)
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrSyntax, t)
}

// group parses the rest of a bracketed expression opened by open.
func (p *parser) group(open token) (Node, error) {
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	want := ")"
	if open.text == "{" {
		want = "}"
	}
	if t := p.next(); t.kind != tokClose || t.text != want {
		return nil, fmt.Errorf("%w: %s not closed, found %s", ErrSyntax, open, t)
	}
	return x, nil
}

// braced parses a mandatory {…} argument.
func (p *parser) braced(cmd token) (Node, error) {
	t := p.next()
	if t.kind != tokOpen || t.text != "{" {
		return nil, fmt.Errorf("%w: \\%s expects {, found %s", ErrSyntax, cmd.text, t)
	}
	return p.group(t)
}

func (p *parser) command(t token) (Node, error) {
	switch name := t.text; {
	case name == "pi":
		return Const{Name: "pi"}, nil

	case slices.Contains(greek, name):
		return Var{Name: name}, nil

	case name == "frac":
		num, err := p.braced(t)
		if err != nil {
			return nil, err
		}
		den, err := p.braced(t)
		if err != nil {
			return nil, err
		}
		return Binary{Op: '/', X: num, Y: den}, nil

	case slices.Contains(functions, name):
		if name == "log" {
			name = "ln"
		}
		arg, err := p.power()
		if err != nil {
			return nil, err
		}
		return Call{Fn: name, Arg: arg}, nil
	}
	return nil, fmt.Errorf("%w: unknown command \\%s at %d", ErrSyntax, t.text, t.pos)
}
