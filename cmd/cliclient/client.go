package main

import (
	"context"
	"fmt"
	"log"
	"math"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/live"
)

// snapTolerance covers the session snapping α to its default grid.
const snapTolerance = 0.05

// awaitPlot reads session events until the engine, running with p, reaches
// its cap. It returns the last plot frame and the final status.
func awaitPlot(ctx context.Context, c *live.Client, p revolving.Params) ([]byte, live.Status, error) {
	var plot []byte
	for {
		ev, err := c.Next(ctx)
		if err != nil {
			return nil, live.Status{}, fmt.Errorf("next: %w", err)
		}

		switch {
		case ev.Status == nil:
			if ev.Canvas == live.CanvasPlot {
				plot = ev.PNG
			}
		case !matches(*ev.Status, p):
			// still the session's initial parameters
		case ev.Status.Done && plot != nil:
			return plot, *ev.Status, nil
		default:
			log.Printf("generation %d: %d points", ev.Status.Iteration, ev.Status.Points)
		}
	}
}

func matches(st live.Status, p revolving.Params) bool {
	return st.N == p.N &&
		math.Abs(st.Alpha.Re-p.Alpha.Re) <= snapTolerance &&
		math.Abs(st.Alpha.Im-p.Alpha.Im) <= snapTolerance
}
