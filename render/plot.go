// Package render draws the attractor and its companions onto any
// revolving.Canvas, and provides raster, SVG and animated GIF outputs.
package render

import (
	"fmt"
	"image/color"
	"math"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/view"
)

var (
	plotGrid = color.RGBA{0xee, 0xee, 0xee, 0xff}
	plotAxis = color.Black
	plotText = color.Black
)

// PlotView returns the window a plot of st shows on a w×h canvas: the
// horizontal half-extent is the window boundary and the scale is equal
// on both axes. A boundary that is zero or not finite counts as 1.
func PlotView(st engine.State, w, h int) *view.Transform {
	wb := st.WindowBoundary
	if !(wb > 0) || math.IsInf(wb, 0) {
		wb = 1
	}
	scale := float64(w) / 2 / wb
	ymax := float64(h) / 2 / scale
	return view.NewTransform(view.Bounds{XMin: -wb, XMax: wb, YMin: -ymax, YMax: ymax}, w, h)
}

// Plot draws st: background, grid and axes, every point multiplied by
// every delta with one fill per delta, the equations and a caption.
func Plot(c revolving.Canvas, st engine.State, eq Equations) {
	w, h := c.Size()
	t := PlotView(st, w, h)
	b := t.Bounds
	fw, fh := float64(w), float64(h)

	c.Clear(color.White)

	s := view.SpacingFor(b)
	for _, x := range view.Lines(b.XMin, b.XMax, s.Major) {
		sx := t.ToScreen(revolving.C(x, 0)).X
		c.Line(revolving.Point{X: sx}, revolving.Point{X: sx, Y: fh}, 1, plotGrid)
	}
	for _, y := range view.Lines(b.YMin, b.YMax, s.Major) {
		sy := t.ToScreen(revolving.C(0, y)).Y
		c.Line(revolving.Point{Y: sy}, revolving.Point{X: fw, Y: sy}, 1, plotGrid)
	}

	origin := t.ToScreen(revolving.Complex{})
	c.Line(revolving.Point{Y: origin.Y}, revolving.Point{X: fw, Y: origin.Y}, 2, plotAxis)
	c.Line(revolving.Point{X: origin.X}, revolving.Point{X: origin.X, Y: fh}, 2, plotAxis)

	deltas := st.Deltas
	if len(deltas) == 0 {
		deltas = []revolving.Complex{revolving.One}
	}
	centers := make([]revolving.Point, len(st.Points))
	for k, d := range deltas {
		for i, z := range st.Points {
			centers[i] = t.ToScreen(d.Mul(z))
		}
		c.FillCircles(centers, st.PointSize, DeltaColor(k))
	}

	c.Text(revolving.Point{X: 20, Y: 30}, eq.F1, revolving.AlignLeft, plotText)
	c.Text(revolving.Point{X: 20, Y: 60}, eq.F2, revolving.AlignLeft, plotText)
	c.Text(revolving.Point{X: 20, Y: fh - 20}, Caption(st), revolving.AlignLeft, plotText)
}

// Caption summarizes how much of the construction st shows.
func Caption(st engine.State) string {
	n := len(st.Points) * max(1, len(st.Deltas))
	return fmt.Sprintf("%d numbers plotted to %d terms", n, st.Iteration)
}
