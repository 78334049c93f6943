package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	revolving "github.com/marben/revolving_ifs"
)

// ImageCanvas is a revolving.Canvas backed by an RGBA image. Paths are
// rasterized with draw2d, text with the fixed 7×13 basic font.
type ImageCanvas struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

var _ revolving.Canvas = (*ImageCanvas)(nil)

func NewImageCanvas(width, height int) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.RoundCap)
	return &ImageCanvas{img: img, gc: gc}
}

func (ic *ImageCanvas) Image() *image.RGBA { return ic.img }

func (ic *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, ic.img)
}

func (ic *ImageCanvas) Size() (int, int) {
	b := ic.img.Bounds()
	return b.Dx(), b.Dy()
}

func (ic *ImageCanvas) Clear(c color.Color) {
	draw.Draw(ic.img, ic.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (ic *ImageCanvas) Line(from, to revolving.Point, width float64, c color.Color) {
	gc := ic.gc
	gc.SetStrokeColor(c)
	gc.SetLineWidth(width)
	gc.BeginPath()
	gc.MoveTo(from.X, from.Y)
	gc.LineTo(to.X, to.Y)
	gc.Stroke()
}

func (ic *ImageCanvas) Arc(center revolving.Point, radius, start, end float64, anticlockwise bool, width float64, c color.Color) {
	gc := ic.gc
	gc.SetStrokeColor(c)
	gc.SetLineWidth(width)
	gc.BeginPath()
	gc.ArcTo(center.X, center.Y, radius, radius, start, Sweep(start, end, anticlockwise))
	gc.Stroke()
}

func (ic *ImageCanvas) FillCircles(centers []revolving.Point, radius float64, c color.Color) {
	if len(centers) == 0 {
		return
	}
	gc := ic.gc
	gc.SetFillColor(c)
	gc.BeginPath()
	for _, p := range centers {
		gc.MoveTo(p.X+radius, p.Y)
		gc.ArcTo(p.X, p.Y, radius, radius, 0, 2*math.Pi)
		gc.Close()
	}
	gc.Fill()
}

func (ic *ImageCanvas) Text(at revolving.Point, s string, align revolving.Align, c color.Color) {
	d := &font.Drawer{
		Dst:  ic.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	x := at.X
	switch align {
	case revolving.AlignCenter:
		x -= float64(d.MeasureString(s).Round()) / 2
	case revolving.AlignRight:
		x -= float64(d.MeasureString(s).Round())
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(at.Y)))
	d.DrawString(s)
}
