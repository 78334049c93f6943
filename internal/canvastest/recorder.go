// Package canvastest provides a Canvas that records drawing calls.
package canvastest

import (
	"image/color"

	revolving "github.com/marben/revolving_ifs"
)

type LineCall struct {
	From, To revolving.Point
	Width    float64
	Color    color.Color
}

type ArcCall struct {
	Center        revolving.Point
	Radius        float64
	Start, End    float64
	Anticlockwise bool
	Color         color.Color
}

type CirclesCall struct {
	Centers []revolving.Point
	Radius  float64
	Color   color.Color
}

type TextCall struct {
	At    revolving.Point
	Text  string
	Align revolving.Align
}

// Recorder is a revolving.Canvas keeping every call since the last Clear.
type Recorder struct {
	W, H    int
	Clears  int
	Lines   []LineCall
	Arcs    []ArcCall
	Circles []CirclesCall
	Texts   []TextCall
}

var _ revolving.Canvas = (*Recorder)(nil)

func New(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear(color.Color) {
	r.Clears++
	r.Lines = nil
	r.Arcs = nil
	r.Circles = nil
	r.Texts = nil
}

func (r *Recorder) Line(from, to revolving.Point, width float64, c color.Color) {
	r.Lines = append(r.Lines, LineCall{From: from, To: to, Width: width, Color: c})
}

func (r *Recorder) Arc(center revolving.Point, radius, start, end float64, anticlockwise bool, _ float64, c color.Color) {
	r.Arcs = append(r.Arcs, ArcCall{Center: center, Radius: radius, Start: start, End: end, Anticlockwise: anticlockwise, Color: c})
}

func (r *Recorder) FillCircles(centers []revolving.Point, radius float64, c color.Color) {
	cp := append([]revolving.Point(nil), centers...)
	r.Circles = append(r.Circles, CirclesCall{Centers: cp, Radius: radius, Color: c})
}

func (r *Recorder) Text(at revolving.Point, s string, align revolving.Align, _ color.Color) {
	r.Texts = append(r.Texts, TextCall{At: at, Text: s, Align: align})
}

// HasText reports whether any recorded text equals s.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}
