package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestNewStartsAtSeed(t *testing.T) {
	e := newEngine(t)

	assert.Equal(t, revolving.DefaultParams, e.Params())
	assert.Equal(t, []revolving.Complex{revolving.One}, e.Points())
	assert.Equal(t, 0, e.Iteration())
	assert.Equal(t, 1.0, e.WindowBoundary())
	assert.Len(t, e.Deltas(), 4)
	assert.False(t, e.Done())
}

func TestAdvanceDoublesUntilCap(t *testing.T) {
	e := newEngine(t)

	for gen := 1; gen <= 15; gen++ {
		require.True(t, e.Advance())
		assert.Equal(t, gen, e.Iteration())
		assert.Len(t, e.Points(), 1<<gen)
	}
	assert.True(t, e.Done())

	assert.False(t, e.Advance())
	assert.Equal(t, 15, e.Iteration())
	assert.Len(t, e.Points(), 1<<15)
}

func TestFirstGeneration(t *testing.T) {
	e := newEngine(t)
	e.Reset(revolving.Params{Alpha: revolving.C(0.5, -0.5), N: 2})
	require.True(t, e.Advance())

	pts := e.Points()
	require.Len(t, pts, 2)
	assert.InDelta(t, 0.5, pts[0].Re, 1e-12)
	assert.InDelta(t, -0.5, pts[0].Im, 1e-12)
	assert.InDelta(t, 1.0, pts[1].Re, 1e-12)
	assert.InDelta(t, 0.0, pts[1].Im, 1e-12)
	assert.InDelta(t, 1.0, e.WindowBoundary(), 1e-12)
}

func TestMapOrderIsInterleaved(t *testing.T) {
	e := newEngine(t)
	e.Reset(revolving.Params{Alpha: revolving.C(0.5, 0), N: 1})
	e.Advance()
	e.Advance()

	// f1(z) = z/2, f2(z) = -z/2 + 1/2 for α = 0.5 and n = 1
	want := []float64{0.25, 0.25, 0, 0.5}
	pts := e.Points()
	require.Len(t, pts, 4)
	for i, w := range want {
		assert.InDelta(t, w, pts[i].Re, 1e-12, "point %d", i)
		assert.InDelta(t, 0, pts[i].Im, 1e-12, "point %d", i)
	}
}

func TestResetFromAnyState(t *testing.T) {
	e := newEngine(t)
	for i := 0; i < 6; i++ {
		e.Advance()
	}
	e.Reset(revolving.Gamma)

	assert.Equal(t, []revolving.Complex{revolving.One}, e.Points())
	assert.Equal(t, 0, e.Iteration())
	assert.Equal(t, revolving.Gamma, e.Params())
}

func TestSetParams(t *testing.T) {
	e := newEngine(t)
	e.Advance()
	e.Advance()

	assert.False(t, e.SetParams(revolving.DefaultParams))
	assert.Equal(t, 2, e.Iteration(), "unchanged parameters keep the generation")

	assert.True(t, e.SetParams(revolving.Params{Alpha: revolving.DefaultParams.Alpha, N: 3}))
	assert.Equal(t, 0, e.Iteration())
	assert.Len(t, e.Deltas(), 6)

	assert.True(t, e.SetParams(revolving.Params{Alpha: revolving.C(0.4, 0.1), N: 0}))
	assert.Equal(t, 1, e.Params().N, "zero denominator is coerced")
	assert.False(t, e.SetParams(revolving.Params{Alpha: revolving.C(0.4, 0.1), N: 1}))
}

func TestPointSize(t *testing.T) {
	e := newEngine(t)
	assert.InDelta(t, 3.0, e.PointSize(), 1e-12)

	e.Advance()
	assert.InDelta(t, 2.55, e.PointSize(), 1e-12)

	prev := e.PointSize()
	for e.Advance() {
		assert.LessOrEqual(t, e.PointSize(), prev)
		prev = e.PointSize()
	}
	assert.Equal(t, 0.5, e.PointSize())
}

func TestZeroAlphaBoundary(t *testing.T) {
	e := newEngine(t)
	e.Reset(revolving.Params{N: 2})
	e.Advance()
	assert.Equal(t, 0.0, e.WindowBoundary())
}

func TestStateIsStable(t *testing.T) {
	e := newEngine(t)
	e.Advance()
	st := e.State()
	first := append([]revolving.Complex(nil), st.Points...)

	e.Advance()
	e.Reset(revolving.Expanding)
	assert.Equal(t, first, st.Points)
	assert.Equal(t, 1, st.Iteration)
	assert.False(t, st.Done)
}

func TestCustomSystem(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxGenerations = 8
	cfg.System = func(revolving.Params) (engine.Map, engine.Map) {
		half := revolving.C(0.5, 0)
		return func(z revolving.Complex) revolving.Complex { return z.Mul(half) },
			func(z revolving.Complex) revolving.Complex { return z.Mul(half).Add(half) }
	}
	e, err := engine.New(cfg)
	require.NoError(t, err)

	for e.Advance() {
	}
	assert.Len(t, e.Points(), 256)
	for _, z := range e.Points() {
		assert.GreaterOrEqual(t, z.Re, 0.0)
		assert.LessOrEqual(t, z.Re, 1.0)
		assert.Equal(t, 0.0, z.Im)
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, engine.DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*engine.Config)
		want   error
	}{
		{"NegativeCap", func(c *engine.Config) { c.MaxGenerations = -1 }, engine.ErrGenerations},
		{"HugeCap", func(c *engine.Config) { c.MaxGenerations = 40 }, engine.ErrGenerations},
		{"ZeroDecay", func(c *engine.Config) { c.Decay = 0 }, engine.ErrDecay},
		{"GrowingDecay", func(c *engine.Config) { c.Decay = 1.2 }, engine.ErrDecay},
		{"NaNDecay", func(c *engine.Config) { c.Decay = math.NaN() }, engine.ErrDecay},
		{"ZeroMin", func(c *engine.Config) { c.MinPointSize = 0 }, engine.ErrPointSize},
		{"MinAboveInitial", func(c *engine.Config) { c.MinPointSize = 4 }, engine.ErrPointSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			_, err = engine.New(cfg)
			assert.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestNewDefaultsNilSystem(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.System = nil
	e, err := engine.New(cfg)
	require.NoError(t, err)
	assert.True(t, e.Advance())
	assert.NotNil(t, e.Config().System)
}

func TestConstruct(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.MaxGenerations = 6

	states, err := engine.Construct(revolving.Gamma, cfg)
	require.NoError(t, err)
	require.Len(t, states, 7)
	for i, st := range states {
		assert.Equal(t, i, st.Iteration)
		assert.Len(t, st.Points, 1<<i)
		assert.Equal(t, revolving.Gamma, st.Params)
	}
	assert.True(t, states[6].Done)
	assert.False(t, states[5].Done)

	_, err = engine.Construct(revolving.Gamma, engine.Config{})
	assert.Error(t, err)
}
