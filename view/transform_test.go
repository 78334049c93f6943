package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/view"
)

func TestTransformRoundTrip(t *testing.T) {
	windows := []view.Bounds{
		view.DefaultBounds,
		view.Square(3.5),
		{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},
		{XMin: 10, XMax: 1000, YMin: -5, YMax: 2},
	}
	points := []revolving.Complex{
		revolving.C(0, 0),
		revolving.C(0.5, -0.5),
		revolving.C(-0.75, 0.1),
		revolving.C(123.4, -4.2),
	}
	for _, b := range windows {
		tr := view.NewTransform(b, 300, 200)
		for _, p := range points {
			got := tr.ToMath(tr.ToScreen(p))
			assert.InDelta(t, p.Re, got.Re, 1e-9*b.XRange()+1e-12)
			assert.InDelta(t, p.Im, got.Im, 1e-9*b.YRange()+1e-12)
		}
	}
}

func TestTransformCorners(t *testing.T) {
	tr := view.NewTransform(view.DefaultBounds, 200, 200)

	assert.Equal(t, revolving.Point{X: 0, Y: 0}, tr.ToScreen(revolving.C(-1, 1)))
	assert.Equal(t, revolving.Point{X: 200, Y: 200}, tr.ToScreen(revolving.C(1, -1)))
	assert.Equal(t, revolving.Point{X: 100, Y: 100}, tr.ToScreen(revolving.C(0, 0)))

	// screen y grows down, math y grows up
	assert.Less(t, tr.ToScreen(revolving.C(0, 0.5)).Y, 100.0)
}

func TestPan(t *testing.T) {
	tr := view.NewTransform(view.DefaultBounds, 200, 100)

	// dragging right by 20px moves the window left by 20 * (2/200)
	tr.Pan(20, 0)
	assert.InDelta(t, -1.2, tr.Bounds.XMin, 1e-12)
	assert.InDelta(t, 0.8, tr.Bounds.XMax, 1e-12)

	// dragging down by 10px moves the window up by 10 * (2/100)
	tr.Pan(0, 10)
	assert.InDelta(t, -0.8, tr.Bounds.YMin, 1e-12)
	assert.InDelta(t, 1.2, tr.Bounds.YMax, 1e-12)

	assert.InDelta(t, 2, tr.Bounds.XRange(), 1e-12)
	assert.InDelta(t, 2, tr.Bounds.YRange(), 1e-12)
}

func TestZoomAtOrigin(t *testing.T) {
	tr := view.NewTransform(view.DefaultBounds, 200, 200)
	origin := revolving.Point{X: 100, Y: 100}

	c := tr.ZoomCenter(origin)
	assert.InDelta(t, 0, c.Re, 1e-15)
	assert.InDelta(t, 0, c.Im, 1e-15)

	tr.Zoom(origin, 1.1)
	assert.InDelta(t, -1.1, tr.Bounds.XMin, 1e-12)
	assert.InDelta(t, 1.1, tr.Bounds.XMax, 1e-12)
	assert.InDelta(t, -1.1, tr.Bounds.YMin, 1e-12)
	assert.InDelta(t, 1.1, tr.Bounds.YMax, 1e-12)

	tr.Zoom(origin, 0.9)
	assert.InDelta(t, 0.99, tr.Bounds.XMax, 1e-12)
	assert.InDelta(t, -0.99, tr.Bounds.XMin, 1e-12)
}

func TestZoomCenterWeighting(t *testing.T) {
	tr := view.NewTransform(view.DefaultBounds, 200, 200)

	// cursor at math (1, 0): distance 1, origin weight 1/2
	c := tr.ZoomCenter(revolving.Point{X: 200, Y: 100})
	assert.InDelta(t, 0.5, c.Re, 1e-12)
	assert.InDelta(t, 0, c.Im, 1e-12)

	// the zoom center stays fixed while zooming
	before := tr.ToScreen(c)
	tr.Zoom(revolving.Point{X: 200, Y: 100}, 0.5)
	after := tr.ToScreen(c)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.InDelta(t, 1, tr.Bounds.XRange(), 1e-12)
}

func TestZoomStaysWithinLimits(t *testing.T) {
	tr := view.NewTransform(view.DefaultBounds, 300, 300)
	cursor := revolving.Point{X: 250, Y: 60}

	for i := 0; i < 10000; i++ {
		tr.Zoom(cursor, 0.9)
	}
	c := tr.ZoomCenter(cursor)
	floor := view.MinRange * math.Max(1, c.Abs())
	assert.GreaterOrEqual(t, tr.Bounds.XRange(), floor*(1-1e-6))
	assert.Greater(t, tr.Bounds.YRange(), 0.0)
	assert.Less(t, tr.Bounds.XRange(), 1e-8)

	// zooming out again works from the floor
	tr.Zoom(cursor, 1.1)
	assert.Greater(t, tr.Bounds.XRange(), floor)

	for i := 0; i < 10000; i++ {
		tr.Zoom(cursor, 1.1)
	}
	assert.LessOrEqual(t, tr.Bounds.XRange(), view.MaxRange*(1+1e-6))
	assert.False(t, math.IsInf(tr.Bounds.XMax, 0))
}
