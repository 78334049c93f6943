package widget

import (
	"fmt"
	"image/color"
	"math"

	revolving "github.com/marben/revolving_ifs"
)

var (
	armColor    = color.Black
	markerColor = color.RGBA{0xff, 0, 0, 0xff}
	labelColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

type AnglePickerOptions struct {
	Initial  int
	OnChange func(n int)
}

func DefaultAnglePickerOptions() AnglePickerOptions {
	return AnglePickerOptions{Initial: revolving.DefaultParams.N}
}

// AnglePicker selects the denominator n of θ = π/n by pointing at an angle.
// Its value is always a non-zero integer in [-20, 20].
type AnglePicker struct {
	canvas revolving.Canvas
	opts   AnglePickerOptions
	n      int
}

// NewAnglePicker draws the initial state onto c. It does not call OnChange.
func NewAnglePicker(c revolving.Canvas, opts AnglePickerOptions) *AnglePicker {
	ap := &AnglePicker{
		canvas: c,
		opts:   opts,
		n:      revolving.ClampDenominator(opts.Initial),
	}
	ap.Draw()
	return ap
}

func (ap *AnglePicker) Value() int { return ap.n }

// SetValue replaces the value without notifying OnChange.
func (ap *AnglePicker) SetValue(n int) {
	ap.n = revolving.ClampDenominator(n)
	ap.Draw()
}

func (ap *AnglePicker) PointerDown(p revolving.Point) {
	ap.UpdateFromPointer(p)
}

// PointerMove updates the value only while the primary button is held.
func (ap *AnglePicker) PointerMove(p revolving.Point, pressed bool) {
	if pressed {
		ap.UpdateFromPointer(p)
	}
}

// UpdateFromPointer sets the value from the angle of p around the canvas
// center, redraws and notifies OnChange.
func (ap *AnglePicker) UpdateFromPointer(p revolving.Point) int {
	w, h := ap.canvas.Size()
	x := p.X - float64(w)/2
	y := float64(h)/2 - p.Y

	ap.n = Quantize(math.Atan2(y, x))
	ap.Draw()
	if ap.opts.OnChange != nil {
		ap.opts.OnChange(ap.n)
	}
	return ap.n
}

// Quantize maps an angle in (-π, π] to the denominator n nearest to π/angle,
// clamped to [-20, 20] with 0 coerced to 1. A zero angle gives 20.
func Quantize(angle float64) int {
	d := math.Round(math.Pi / angle)
	d = math.Max(revolving.MinDenominator, math.Min(revolving.MaxDenominator, d))
	if math.IsNaN(d) {
		return 1
	}
	return revolving.ClampDenominator(int(d))
}

// Draw paints both rays, the arc between them, the marker and the label.
func (ap *AnglePicker) Draw() {
	c := ap.canvas
	w, h := c.Size()
	center := revolving.Point{X: float64(w) / 2, Y: float64(h) / 2}
	arm := math.Min(float64(w), float64(h)) * 0.4

	angle := math.Pi / math.Abs(float64(ap.n))
	dir := 1.0
	if ap.n < 0 {
		dir = -1
	}
	sin, cos := math.Sincos(angle * dir)

	c.Clear(background)

	c.Line(center, revolving.Point{X: center.X + arm, Y: center.Y}, 1, armColor)
	c.Line(center, revolving.Point{X: center.X + arm*cos, Y: center.Y - arm*sin}, 1, armColor)

	r := arm * 0.3
	if dir > 0 {
		c.Arc(center, r, 0, -angle, true, 1, armColor)
	} else {
		c.Arc(center, r, 0, angle, false, 1, armColor)
	}

	marker := revolving.Point{X: center.X + r*cos, Y: center.Y - r*sin}
	c.FillCircles([]revolving.Point{marker}, 4, markerColor)

	c.Text(revolving.Point{X: 8, Y: 16}, Label(ap.n), revolving.AlignLeft, labelColor)
}

// Label is the ASCII rendering of θ = π/n.
func Label(n int) string {
	return fmt.Sprintf("pi/%d", n)
}
