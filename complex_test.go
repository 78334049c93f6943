package revolving_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revolving "github.com/marben/revolving_ifs"
)

func TestComplexArithmetic(t *testing.T) {
	a := revolving.C(0.5, -0.5)
	b := revolving.C(0, 1)

	assert.Equal(t, revolving.C(0.5, 0.5), a.Add(b))
	assert.Equal(t, revolving.C(0.5, 0.5), a.Mul(b))
	assert.Equal(t, revolving.C(1, -1), a.Scale(2))
	assert.InDelta(t, math.Sqrt(0.5), a.Abs(), 1e-12)

	// multiplication agrees with the builtin complex type
	z := revolving.C(1.25, -3).Mul(revolving.C(-0.75, 2))
	want := complex(1.25, -3) * complex(-0.75, 2)
	assert.InDelta(t, real(want), z.Re, 1e-12)
	assert.InDelta(t, imag(want), z.Im, 1e-12)
}

func TestUnit(t *testing.T) {
	u := revolving.Unit(math.Pi / 2)
	assert.InDelta(t, 0, u.Re, 1e-15)
	assert.InDelta(t, 1, u.Im, 1e-15)
	assert.InDelta(t, 1, revolving.Unit(0.3).Abs(), 1e-15)
}

func TestClampDenominator(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{-1, -1},
		{20, 20},
		{21, 20},
		{-100, -20},
		{7, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, revolving.ClampDenominator(tc.in), "ClampDenominator(%d)", tc.in)
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, revolving.DefaultParams.Validate())

	err := revolving.Params{N: 0}.Validate()
	assert.True(t, errors.Is(err, revolving.ErrZeroDenominator))

	err = revolving.Params{N: 21}.Validate()
	assert.True(t, errors.Is(err, revolving.ErrDenominatorRange))

	p := revolving.Params{Alpha: revolving.One, N: -40}.Normalized()
	assert.Equal(t, -20, p.N)
	assert.InDelta(t, -math.Pi/20, p.Theta(), 1e-15)
}

func TestPresets(t *testing.T) {
	for name, p := range revolving.Presets {
		assert.NoError(t, p.Validate(), name)
	}
	assert.Equal(t, revolving.DefaultParams, revolving.Presets["default"])
}
