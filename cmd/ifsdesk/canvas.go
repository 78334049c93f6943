package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/render"
)

// arcSegment is the longest chord, in pixels, of a stroked arc.
const arcSegment = 3

var face = text.NewGoXFace(basicfont.Face7x13)

// imageCanvas is a revolving.Canvas on an offscreen ebiten image.
type imageCanvas struct {
	img *ebiten.Image
}

var _ revolving.Canvas = (*imageCanvas)(nil)

func newImageCanvas(width, height int) *imageCanvas {
	return &imageCanvas{img: ebiten.NewImage(width, height)}
}

func (c *imageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *imageCanvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *imageCanvas) Line(from, to revolving.Point, width float64, col color.Color) {
	vector.StrokeLine(c.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), col, true)
}

func (c *imageCanvas) Arc(center revolving.Point, radius, start, end float64, anticlockwise bool, width float64, col color.Color) {
	pts := render.ArcPoints(center, radius, start, end, anticlockwise, arcSegment)
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], width, col)
	}
}

func (c *imageCanvas) FillCircles(centers []revolving.Point, radius float64, col color.Color) {
	r := float32(radius)
	for _, p := range centers {
		vector.DrawFilledCircle(c.img, float32(p.X), float32(p.Y), r, col, true)
	}
}

func (c *imageCanvas) Text(at revolving.Point, s string, align revolving.Align, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	switch align {
	case revolving.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case revolving.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(c.img, s, face, op)
}
