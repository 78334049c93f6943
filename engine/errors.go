package engine

import "errors"

var (
	ErrGenerations = errors.New("engine: generation cap out of range")
	ErrDecay       = errors.New("engine: decay must be in (0, 1]")
	ErrPointSize   = errors.New("engine: point sizes must satisfy 0 < min <= initial")
)
