package render

import (
	"math"

	revolving "github.com/marben/revolving_ifs"
)

// Sweep converts an arc given HTML canvas style, from start to end in the
// direction set by anticlockwise, into a signed sweep angle. Positive
// sweeps turn clockwise on screen. A full turn or more is clamped to ±2π.
func Sweep(start, end float64, anticlockwise bool) float64 {
	const full = 2 * math.Pi

	d := end - start
	if anticlockwise {
		d = start - end
	}
	switch {
	case d >= full:
		d = full
	default:
		d = math.Mod(d, full)
		if d < 0 {
			d += full
		}
	}
	if anticlockwise {
		return -d
	}
	return d
}

// ArcPoints approximates an arc, with the same arguments as Sweep, by a
// polyline whose segments span at most maxSegment pixels. It returns at
// least two points.
func ArcPoints(center revolving.Point, radius, start, end float64, anticlockwise bool, maxSegment float64) []revolving.Point {
	sweep := Sweep(start, end, anticlockwise)
	n := 1
	if maxSegment > 0 {
		n = max(1, int(math.Ceil(math.Abs(sweep)*radius/maxSegment)))
	}

	pts := make([]revolving.Point, n+1)
	for i := range pts {
		a := start + sweep*float64(i)/float64(n)
		pts[i] = revolving.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return pts
}
