// Package view maps between a rectangular window of the complex plane and
// a fixed-size pixel canvas, and derives the power-of-ten grid drawn over
// that window.
package view

import (
	"math"

	revolving "github.com/marben/revolving_ifs"
)

// Bounds is the visible window of the complex plane.
// XMin < XMax and YMin < YMax hold for every Bounds built by this package.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultBounds is the [-1,1]×[-1,1] window pickers start with.
var DefaultBounds = Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

// Square returns the window [-r,r]×[-r,r].
func Square(r float64) Bounds {
	return Bounds{XMin: -r, XMax: r, YMin: -r, YMax: r}
}

func (b Bounds) XRange() float64 { return b.XMax - b.XMin }
func (b Bounds) YRange() float64 { return b.YMax - b.YMin }

// Transform pairs a window with the pixel size of the canvas showing it.
// Screen y grows downward while math y grows upward.
type Transform struct {
	Bounds        Bounds
	Width, Height int
}

func NewTransform(b Bounds, width, height int) *Transform {
	return &Transform{Bounds: b, Width: width, Height: height}
}

// ToScreen converts a math point to canvas pixels.
func (t *Transform) ToScreen(z revolving.Complex) revolving.Point {
	b := t.Bounds
	return revolving.Point{
		X: (z.Re - b.XMin) / b.XRange() * float64(t.Width),
		Y: (b.YMax - z.Im) / b.YRange() * float64(t.Height),
	}
}

// ToMath converts canvas pixels to a math point.
func (t *Transform) ToMath(p revolving.Point) revolving.Complex {
	b := t.Bounds
	return revolving.Complex{
		Re: b.XMin + p.X/float64(t.Width)*b.XRange(),
		Im: b.YMax - p.Y/float64(t.Height)*b.YRange(),
	}
}

// Pan moves the window so that the content follows a pointer drag of
// (dx, dy) pixels.
func (t *Transform) Pan(dx, dy float64) {
	sx := t.Bounds.XRange() / float64(t.Width)
	sy := t.Bounds.YRange() / float64(t.Height)

	t.Bounds.XMin -= dx * sx
	t.Bounds.XMax -= dx * sx
	t.Bounds.YMin += dy * sy
	t.Bounds.YMax += dy * sy
}

// ZoomCenter returns the math point the window scales about when zooming
// at the pixel cursor: the cursor blended with the origin, with the origin
// weighted 1/(1+d) where d is the cursor's distance from it.
func (t *Transform) ZoomCenter(cursor revolving.Point) revolving.Complex {
	m := t.ToMath(cursor)
	originWeight := 1 / (1 + m.Abs())
	return m.Scale(1 - originWeight)
}

// Limits of the window extent under Zoom. The lower one scales with the
// magnitude of the zoom center.
const (
	MinRange = 1e-9
	MaxRange = 1e9
)

// Zoom scales every bound about ZoomCenter(cursor). A factor above 1 zooms
// out, below 1 zooms in; it must be positive. The factor is limited so the
// shorter side stays at least MinRange·max(1, |center|) and the longer side
// at most MaxRange; a zoom past a limit stops at it.
func (t *Transform) Zoom(cursor revolving.Point, factor float64) {
	c := t.ZoomCenter(cursor)
	b := t.Bounds

	short := math.Min(b.XRange(), b.YRange())
	long := math.Max(b.XRange(), b.YRange())
	if floor := MinRange * math.Max(1, c.Abs()); factor < 1 && short*factor < floor {
		factor = math.Min(1, floor/short)
	}
	if factor > 1 && long*factor > MaxRange {
		factor = math.Max(1, MaxRange/long)
	}

	t.Bounds = Bounds{
		XMin: c.Re - (c.Re-b.XMin)*factor,
		XMax: c.Re + (b.XMax-c.Re)*factor,
		YMin: c.Im - (c.Im-b.YMin)*factor,
		YMax: c.Im + (b.YMax-c.Im)*factor,
	}
}

// Distance is the pixel distance between two canvas points.
func Distance(a, b revolving.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
