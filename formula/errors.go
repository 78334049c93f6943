package formula

import "errors"

var (
	ErrSyntax  = errors.New("formula: syntax error")
	ErrUnbound = errors.New("formula: unbound variable")
)
