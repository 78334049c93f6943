package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log"
	"time"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
)

// FrameDelay is the time each construction frame is shown, in 100ths of
// a second.
const FrameDelay = 50

// frameJob is one generation to render.
type frameJob struct {
	index int
	state engine.State
}

// frame is a rendered generation.
type frame struct {
	index int
	img   *image.Paletted
}

// ConstructionGIF writes an animated GIF with one size×size frame per
// generation of p, from the seed to the cap of cfg, captioned with eq.
// Frames are rendered concurrently by workers goroutines.
func ConstructionGIF(w io.Writer, p revolving.Params, cfg engine.Config, eq Equations, size, workers int) error {
	start := time.Now()

	states, err := engine.Construct(p, cfg)
	if err != nil {
		return fmt.Errorf("construct: %w", err)
	}
	workers = max(1, workers)

	jobs := make(chan frameJob, len(states))
	results := make(chan frame, len(states))
	for i, st := range states {
		jobs <- frameJob{index: i, state: st}
	}
	close(jobs)

	for i := 0; i < workers; i++ {
		go frameWorker(jobs, results, eq, size)
	}

	frames := make([]*image.Paletted, len(states))
	for range states {
		f := <-results
		frames[f.index] = f.img
	}

	anim := gif.GIF{LoopCount: 0}
	for _, img := range frames {
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, FrameDelay)
	}
	log.Printf("construction of %d frames took %s", len(frames), time.Since(start))

	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// frameWorker plots every job it receives and dithers it to the Plan 9
// palette.
func frameWorker(jobs <-chan frameJob, results chan<- frame, eq Equations, size int) {
	for job := range jobs {
		ic := NewImageCanvas(size, size)
		Plot(ic, job.state, eq)

		src := ic.Image()
		pimg := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, src.Bounds(), src, image.Point{})
		results <- frame{index: job.index, img: pimg}
	}
}
