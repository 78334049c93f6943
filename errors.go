package revolving

import "errors"

var (
	// ErrZeroDenominator indicates n = 0, which has no angle π/n.
	ErrZeroDenominator = errors.New("revolving: denominator must not be zero")
	// ErrDenominatorRange indicates n outside [-20, 20].
	ErrDenominatorRange = errors.New("revolving: denominator out of range")
)
