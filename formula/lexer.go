package formula

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokLetter  // single letter: variable or the constants e, i
	tokCommand // backslash command without the backslash
	tokOp      // + - * / ^
	tokOpen    // ( {
	tokClose   // ) }
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q at %d", t.text, t.pos)
}

// lex splits src into tokens. Whitespace and the LaTeX sizing commands
// \left and \right are dropped.
func lex(src string) ([]token, error) {
	rs := []rune(src)
	var toks []token

	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			dot := false
			for i < len(rs) && (unicode.IsDigit(rs[i]) || rs[i] == '.' && !dot) {
				if rs[i] == '.' {
					dot = true
				}
				i++
			}
			if i-start == 1 && dot || i < len(rs) && rs[i] == '.' {
				return nil, fmt.Errorf("%w: malformed number at %d", ErrSyntax, start)
			}
			toks = append(toks, token{tokNumber, string(rs[start:i]), start})

		case r == '\\':
			start := i
			i++
			for i < len(rs) && unicode.IsLetter(rs[i]) {
				i++
			}
			name := string(rs[start+1 : i])
			if name == "" {
				// \, \; \! and friends are spacing
				if i < len(rs) && unicode.IsPunct(rs[i]) {
					i++
					continue
				}
				return nil, fmt.Errorf("%w: dangling '\\' at %d", ErrSyntax, start)
			}
			if name == "left" || name == "right" {
				continue
			}
			toks = append(toks, token{tokCommand, name, start})

		case unicode.IsLetter(r):
			toks = append(toks, token{tokLetter, string(r), i})
			i++

		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			toks = append(toks, token{tokOp, string(r), i})
			i++

		case r == '(' || r == '{':
			toks = append(toks, token{tokOpen, string(r), i})
			i++

		case r == ')' || r == '}':
			toks = append(toks, token{tokClose, string(r), i})
			i++

		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(rs)}), nil
}
