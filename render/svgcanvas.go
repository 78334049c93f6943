package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	revolving "github.com/marben/revolving_ifs"
)

// SVGCanvas is a revolving.Canvas writing an SVG document. Drawing is
// append-only, so Clear paints over everything drawn before it.
type SVGCanvas struct {
	canvas        *svg.SVG
	width, height int
}

var _ revolving.Canvas = (*SVGCanvas)(nil)

// NewSVGCanvas starts a document on w. Call End to finish it.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	sc := &SVGCanvas{canvas: svg.New(w), width: width, height: height}
	sc.canvas.Start(width, height)
	return sc
}

// Title sets the document title.
func (sc *SVGCanvas) Title(t string) { sc.canvas.Title(t) }

func (sc *SVGCanvas) End() { sc.canvas.End() }

func (sc *SVGCanvas) Size() (int, int) { return sc.width, sc.height }

func (sc *SVGCanvas) Clear(c color.Color) {
	sc.canvas.Rect(0, 0, sc.width, sc.height, fillStyle(c))
}

func (sc *SVGCanvas) Line(from, to revolving.Point, width float64, c color.Color) {
	d := fmt.Sprintf("M%s L%s", coord(from), coord(to))
	sc.canvas.Path(d, strokeStyle(c, width))
}

func (sc *SVGCanvas) Arc(center revolving.Point, radius, start, end float64, anticlockwise bool, width float64, c color.Color) {
	sweep := Sweep(start, end, anticlockwise)
	if sweep == 0 {
		return
	}
	at := func(a float64) revolving.Point {
		return revolving.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}

	// an SVG arc cannot close on itself, so full turns are two halves
	var b strings.Builder
	fmt.Fprintf(&b, "M%s", coord(at(start)))
	steps := 1
	if math.Abs(sweep) >= 2*math.Pi {
		steps = 2
	}
	flag := 0
	if sweep > 0 {
		flag = 1
	}
	large := 0
	if math.Abs(sweep)/float64(steps) > math.Pi {
		large = 1
	}
	for i := 1; i <= steps; i++ {
		p := at(start + sweep*float64(i)/float64(steps))
		fmt.Fprintf(&b, " A%s,%s 0 %d,%d %s", num(radius), num(radius), large, flag, coord(p))
	}
	sc.canvas.Path(b.String(), strokeStyle(c, width))
}

func (sc *SVGCanvas) FillCircles(centers []revolving.Point, radius float64, c color.Color) {
	if len(centers) == 0 {
		return
	}
	r := num(radius)
	d2 := num(2 * radius)

	var b strings.Builder
	for _, p := range centers {
		fmt.Fprintf(&b, "M%s,%s a%s,%s 0 1,0 %s,0 a%s,%s 0 1,0 -%s,0 ",
			num(p.X-radius), num(p.Y), r, r, d2, r, r, d2)
	}
	sc.canvas.Path(strings.TrimSpace(b.String()), fillStyle(c))
}

func (sc *SVGCanvas) Text(at revolving.Point, s string, align revolving.Align, c color.Color) {
	anchor := "start"
	switch align {
	case revolving.AlignCenter:
		anchor = "middle"
	case revolving.AlignRight:
		anchor = "end"
	}
	style := fillStyle(c) + ";font-family:monospace;font-size:13px;text-anchor:" + anchor
	sc.canvas.Text(int(math.Round(at.X)), int(math.Round(at.Y)), s, style)
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func coord(p revolving.Point) string {
	return num(p.X) + "," + num(p.Y)
}

func fillStyle(c color.Color) string {
	hex, a := HexColor(c)
	if a == 1 {
		return "fill:" + hex
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3g", hex, a)
}

func strokeStyle(c color.Color, width float64) string {
	hex, a := HexColor(c)
	s := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round", hex, num(width))
	if a < 1 {
		s += fmt.Sprintf(";stroke-opacity:%.3g", a)
	}
	return s
}
