//go:build js && wasm

package main

import (
	"image/color"
	"math"
	"syscall/js"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/render"
)

const font = "14px sans-serif"

// jsCanvas is a revolving.Canvas drawing on an HTML canvas element through
// its 2d context.
type jsCanvas struct {
	el     js.Value
	ctx    js.Value
	width  int
	height int
}

var _ revolving.Canvas = (*jsCanvas)(nil)

// initCanvas sizes the canvas element id, fills it with bg and wraps it.
func initCanvas(id string, width, height int, bg color.Color) *jsCanvas {
	el := js.Global().Get("document").Call("getElementById", id)
	el.Set("width", width)
	el.Set("height", height)

	c := &jsCanvas{
		el:     el,
		ctx:    el.Call("getContext", "2d"),
		width:  width,
		height: height,
	}
	c.Clear(bg)
	return c
}

func (c *jsCanvas) Size() (int, int) { return c.width, c.height }

func (c *jsCanvas) Clear(col color.Color) {
	c.ctx.Set("fillStyle", render.CSSColor(col))
	c.ctx.Call("fillRect", 0, 0, c.width, c.height)
}

func (c *jsCanvas) Line(from, to revolving.Point, width float64, col color.Color) {
	ctx := c.ctx
	ctx.Call("beginPath")
	ctx.Call("moveTo", from.X, from.Y)
	ctx.Call("lineTo", to.X, to.Y)
	c.stroke(width, col)
}

func (c *jsCanvas) Arc(center revolving.Point, radius, start, end float64, anticlockwise bool, width float64, col color.Color) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", center.X, center.Y, radius, start, end, anticlockwise)
	c.stroke(width, col)
}

func (c *jsCanvas) FillCircles(centers []revolving.Point, radius float64, col color.Color) {
	ctx := c.ctx
	ctx.Call("beginPath")
	for _, p := range centers {
		ctx.Call("moveTo", p.X+radius, p.Y)
		ctx.Call("arc", p.X, p.Y, radius, 0, 2*math.Pi)
	}
	ctx.Set("fillStyle", render.CSSColor(col))
	ctx.Call("fill")
}

func (c *jsCanvas) Text(at revolving.Point, s string, align revolving.Align, col color.Color) {
	ctx := c.ctx
	ctx.Set("font", font)
	ctx.Set("textAlign", textAlign(align))
	ctx.Set("fillStyle", render.CSSColor(col))
	ctx.Call("fillText", s, at.X, at.Y)
}

func (c *jsCanvas) stroke(width float64, col color.Color) {
	c.ctx.Set("lineWidth", width)
	c.ctx.Set("strokeStyle", render.CSSColor(col))
	c.ctx.Call("stroke")
}

func textAlign(a revolving.Align) string {
	switch a {
	case revolving.AlignCenter:
		return "center"
	case revolving.AlignRight:
		return "right"
	default:
		return "left"
	}
}

// pointerPos is the position of a pointer or wheel event relative to the
// element it fired on.
func pointerPos(ev js.Value) revolving.Point {
	return revolving.Point{X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float()}
}
