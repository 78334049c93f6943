// Package widget implements the two input controls of the visualizer: a
// pannable, zoomable complex-plane PointPicker choosing α and an
// AnglePicker choosing the denominator n of θ = π/n.
//
// Widgets own no event source. Hosts translate their native pointer,
// wheel and keyboard events into method calls, and every state change
// redraws synchronously onto the widget's revolving.Canvas.
package widget

import (
	"image/color"
	"math"
	"time"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/view"
)

const (
	// ClickDuration and ClickDistance bound a pointer press that counts as
	// a click rather than a drag.
	ClickDuration = 200 * time.Millisecond
	ClickDistance = 5.0

	zoomOutFactor = 1.1
	zoomInFactor  = 0.9

	nudgeStep     = 0.1
	fineNudgeStep = 0.01
)

var (
	background  = color.White
	minorColor  = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	majorColor  = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	axisColor   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	shadowColor = color.NRGBA{45, 112, 179, 77}
)

// PointPickerOptions configures a PointPicker.
type PointPickerOptions struct {
	PointRadius float64
	PointColor  color.Color
	Initial     revolving.Complex
	// OnChange receives the snapped point after every user-driven change.
	OnChange func(revolving.Complex)
}

func DefaultPointPickerOptions() PointPickerOptions {
	return PointPickerOptions{
		PointRadius: 6,
		PointColor:  color.RGBA{0x2d, 0x70, 0xb3, 0xff},
		Initial:     revolving.DefaultParams.Alpha,
	}
}

// PointPicker selects a complex number on a grid-snapped plane.
type PointPicker struct {
	canvas revolving.Canvas
	opts   PointPickerOptions
	view   *view.Transform

	point       revolving.Complex
	text        string
	textFocused bool

	pointDragging bool
	panning       bool
	downAt        time.Time
	downPos       revolving.Point
	lastPan       revolving.Point
}

// NewPointPicker draws the initial state onto c. It does not call OnChange.
func NewPointPicker(c revolving.Canvas, opts PointPickerOptions) *PointPicker {
	def := DefaultPointPickerOptions()
	if opts.PointRadius <= 0 {
		opts.PointRadius = def.PointRadius
	}
	if opts.PointColor == nil {
		opts.PointColor = def.PointColor
	}

	w, h := c.Size()
	pp := &PointPicker{
		canvas: c,
		opts:   opts,
		view:   view.NewTransform(view.DefaultBounds, w, h),
	}
	pp.point = pp.snap(opts.Initial)
	pp.refresh()
	return pp
}

func (pp *PointPicker) Point() revolving.Complex { return pp.point }

func (pp *PointPicker) Bounds() view.Bounds { return pp.view.Bounds }

// Text is the companion text field content.
func (pp *PointPicker) Text() string { return pp.text }

// SetTextFocus records whether the companion text field has focus. Arrow
// keys are ignored while it does.
func (pp *PointPicker) SetTextFocus(focused bool) { pp.textFocused = focused }

// Panning reports whether a pan gesture is in progress.
func (pp *PointPicker) Panning() bool { return pp.panning }

// SetPoint snaps z to the current grid, redraws and notifies OnChange.
func (pp *PointPicker) SetPoint(z revolving.Complex) {
	pp.point = pp.snap(z)
	pp.refresh()
	if pp.opts.OnChange != nil {
		pp.opts.OnChange(pp.point)
	}
}

// SubmitText commits the text field. Unparseable text restores the
// formatted current point and reports false.
func (pp *PointPicker) SubmitText(s string) bool {
	z, err := ParseComplex(s)
	if err != nil {
		pp.text = pp.format()
		return false
	}
	pp.SetPoint(z)
	return true
}

// PointerDown starts dragging the point when p is within twice the point
// radius of it, and panning otherwise.
func (pp *PointPicker) PointerDown(p revolving.Point, at time.Time) {
	pp.downAt = at
	pp.downPos = p

	if view.Distance(p, pp.view.ToScreen(pp.point)) <= 2*pp.opts.PointRadius {
		pp.pointDragging = true
		return
	}
	pp.panning = true
	pp.lastPan = p
}

func (pp *PointPicker) PointerMove(p revolving.Point, _ time.Time) {
	switch {
	case pp.pointDragging:
		pp.SetPoint(pp.view.ToMath(p))
	case pp.panning:
		pp.view.Pan(p.X-pp.lastPan.X, p.Y-pp.lastPan.Y)
		pp.lastPan = p
		pp.refresh()
	}
}

// PointerUp ends any gesture. A short press that barely moved and did not
// grab the point selects the grid point under p.
func (pp *PointPicker) PointerUp(p revolving.Point, at time.Time) {
	click := at.Sub(pp.downAt) < ClickDuration &&
		view.Distance(p, pp.downPos) < ClickDistance &&
		!pp.pointDragging

	pp.panning = false
	pp.pointDragging = false

	if click {
		pp.SetPoint(pp.view.ToMath(p))
	}
}

// Wheel zooms out for positive deltaY and in for negative deltaY.
func (pp *PointPicker) Wheel(p revolving.Point, deltaY float64) {
	if deltaY == 0 {
		return
	}
	factor := zoomInFactor
	if deltaY > 0 {
		factor = zoomOutFactor
	}
	pp.view.Zoom(p, factor)
	pp.refresh()
}

// KeyDown nudges the point by 0.1, or by 0.01 when fine is set. It reports
// whether the key was handled.
func (pp *PointPicker) KeyDown(k Key, fine bool) bool {
	if pp.textFocused {
		return false
	}
	step := nudgeStep
	if fine {
		step = fineNudgeStep
	}

	z := pp.point
	switch k {
	case KeyLeft:
		z.Re -= step
	case KeyRight:
		z.Re += step
	case KeyUp:
		z.Im += step
	case KeyDown:
		z.Im -= step
	default:
		return false
	}
	pp.SetPoint(z)
	return true
}

// Frame is one tick of the pan redraw loop. It redraws while a pan is in
// progress and reports whether the loop should keep running.
func (pp *PointPicker) Frame() bool {
	if !pp.panning {
		return false
	}
	pp.Draw()
	return true
}

func (pp *PointPicker) snap(z revolving.Complex) revolving.Complex {
	s := view.SpacingFor(pp.view.Bounds)
	return revolving.Complex{Re: s.Snap(z.Re), Im: s.Snap(z.Im)}
}

func (pp *PointPicker) format() string {
	return FormatComplex(pp.point, view.SpacingFor(pp.view.Bounds).Precision())
}

func (pp *PointPicker) refresh() {
	pp.Draw()
	pp.text = pp.format()
}

// Draw paints grid, labels, axes and the point.
func (pp *PointPicker) Draw() {
	c := pp.canvas
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	b := pp.view.Bounds
	s := view.SpacingFor(b)

	c.Clear(background)

	for _, x := range view.Lines(b.XMin, b.XMax, s.Minor) {
		sx := pp.view.ToScreen(revolving.C(x, 0)).X
		c.Line(revolving.Point{X: sx}, revolving.Point{X: sx, Y: fh}, 1, minorColor)
	}
	for _, y := range view.Lines(b.YMin, b.YMax, s.Minor) {
		sy := pp.view.ToScreen(revolving.C(0, y)).Y
		c.Line(revolving.Point{Y: sy}, revolving.Point{X: fw, Y: sy}, 1, minorColor)
	}

	origin := pp.view.ToScreen(revolving.Complex{})

	for _, x := range view.Lines(b.XMin, b.XMax, s.Major) {
		sx := pp.view.ToScreen(revolving.C(x, 0)).X
		c.Line(revolving.Point{X: sx}, revolving.Point{X: sx, Y: fh}, 1, majorColor)

		if math.Abs(x) > s.Minor {
			at := revolving.Point{
				X: clamp(sx, 20, fw-20),
				Y: clamp(origin.Y+20, 20, fh-5),
			}
			c.Text(at, s.FormatDecimal(x), revolving.AlignCenter, axisColor)
		}
	}
	for _, y := range view.Lines(b.YMin, b.YMax, s.Major) {
		sy := pp.view.ToScreen(revolving.C(0, y)).Y
		c.Line(revolving.Point{Y: sy}, revolving.Point{X: fw, Y: sy}, 1, majorColor)

		if math.Abs(y) > s.Minor {
			lx := clamp(origin.X-10, 35, fw-5)
			align := revolving.AlignRight
			if lx <= 40 {
				align = revolving.AlignLeft
			}
			at := revolving.Point{X: lx, Y: clamp(sy, 15, fh-5) + 4}
			c.Text(at, s.FormatDecimal(y), align, axisColor)
		}
	}

	c.Line(revolving.Point{Y: origin.Y}, revolving.Point{X: fw, Y: origin.Y}, 2, axisColor)
	c.Line(revolving.Point{X: origin.X}, revolving.Point{X: origin.X, Y: fh}, 2, axisColor)

	at := []revolving.Point{pp.view.ToScreen(pp.point)}
	c.FillCircles(at, pp.opts.PointRadius+2, shadowColor)
	c.FillCircles(at, pp.opts.PointRadius, pp.opts.PointColor)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(lo, v), hi)
}
