// Package desk holds the window layout and text entry of the desktop
// client, kept free of any graphics backend.
package desk

import (
	"image"

	revolving "github.com/marben/revolving_ifs"
)

// Region is a part of the window owned by one canvas.
type Region int

const (
	RegionNone Region = iota
	RegionPlot
	RegionAlpha
	RegionTheta
)

// Layout places the plot on the left and the two pickers stacked on its
// right, with the alpha text field between them.
type Layout struct {
	Plot, Alpha, Text, Theta image.Rectangle
}

const (
	gap        = 10
	textHeight = 20
)

func NewLayout(plotSize, pickerSize, angleSize int) Layout {
	x := plotSize + gap
	alpha := image.Rect(x, 0, x+pickerSize, pickerSize)
	text := image.Rect(x, alpha.Max.Y+gap, x+pickerSize, alpha.Max.Y+gap+textHeight)
	return Layout{
		Plot:  image.Rect(0, 0, plotSize, plotSize),
		Alpha: alpha,
		Text:  text,
		Theta: image.Rect(x, text.Max.Y+gap, x+angleSize, text.Max.Y+gap+angleSize),
	}
}

// Size is the window size that fits every region.
func (l Layout) Size() (int, int) {
	b := l.Plot.Union(l.Alpha).Union(l.Text).Union(l.Theta)
	return b.Max.X, b.Max.Y
}

func (l Layout) rect(r Region) image.Rectangle {
	switch r {
	case RegionPlot:
		return l.Plot
	case RegionAlpha:
		return l.Alpha
	case RegionTheta:
		return l.Theta
	}
	return image.Rectangle{}
}

// Hit returns the canvas region under the window position x, y.
func (l Layout) Hit(x, y int) Region {
	pt := image.Pt(x, y)
	for _, r := range []Region{RegionPlot, RegionAlpha, RegionTheta} {
		if pt.In(l.rect(r)) {
			return r
		}
	}
	return RegionNone
}

// Local converts a window position into the coordinates of region r. It
// is not clamped, so drags may leave the region.
func (l Layout) Local(r Region, x, y int) revolving.Point {
	min := l.rect(r).Min
	return revolving.Point{X: float64(x - min.X), Y: float64(y - min.Y)}
}
