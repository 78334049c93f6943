package render

import (
	"fmt"
	"image/color"
	"math"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/view"
)

// deltaWindow is the half-extent of the rotation family plot.
const deltaWindow = 1.5

// DeltaFamilyPlot draws the rotations e^{ikπ/n} on the unit circle, each
// in its palette color and labeled "k pi/n".
func DeltaFamilyPlot(c revolving.Canvas, n int) {
	n = revolving.ClampDenominator(n)
	w, h := c.Size()
	t := view.NewTransform(view.Square(deltaWindow), w, h)
	fw, fh := float64(w), float64(h)

	c.Clear(color.White)

	origin := t.ToScreen(revolving.Complex{})
	c.Line(revolving.Point{Y: origin.Y}, revolving.Point{X: fw, Y: origin.Y}, 1, plotGrid)
	c.Line(revolving.Point{X: origin.X}, revolving.Point{X: origin.X, Y: fh}, 1, plotGrid)

	unit := t.ToScreen(revolving.One).X - origin.X
	c.Arc(origin, unit, 0, 2*math.Pi, false, 1, color.Gray{0xb0})

	for k, d := range engine.DeltaFamily(n) {
		p := t.ToScreen(d)
		c.FillCircles([]revolving.Point{p}, 5, DeltaColor(k))

		label := t.ToScreen(d.Scale(1.2))
		c.Text(revolving.Point{X: label.X, Y: label.Y + 4}, fmt.Sprintf("%d pi/%d", k, n), revolving.AlignCenter, plotText)
	}

	c.Text(revolving.Point{X: fw / 2, Y: 20}, fmt.Sprintf("rotations by theta = pi/%d", n), revolving.AlignCenter, plotText)
}
