package revolving

import (
	"image/color"
)

// Point is a position on a Canvas in pixels. X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Align selects how Canvas.Text positions a string relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is a fixed-size drawing surface with a pixel coordinate frame.
// Widgets and renderers only ever draw through it; the browser canvas,
// raster images, SVG documents and the desktop window all implement it.
type Canvas interface {
	Size() (width, height int)
	Clear(c color.Color)
	Line(from, to Point, width float64, c color.Color)
	// Arc strokes a circular arc using the HTML canvas convention: angles in
	// radians measured clockwise on screen, traversed from start to end in
	// the direction given by anticlockwise.
	Arc(center Point, radius, start, end float64, anticlockwise bool, width float64, c color.Color)
	// FillCircles fills all circles as one path. It must not retain centers.
	FillCircles(centers []Point, radius float64, c color.Color)
	// Text draws s with its baseline at at.Y.
	Text(at Point, s string, align Align, c color.Color)
}
