// Command ifsrender renders a revolving IFS locally, without a server.
//
// Usage:
//
//	ifsrender -re 0.5 -im 0.5 -n 3 -out ifs.png
//	ifsrender -preset gamma -gen 10 -out construction.gif
//	ifsrender -f2 '\alpha z + 1' -out custom.svg -stats
//
// The output format follows the extension of -out: .png, .svg or .gif.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/formula"
	"github.com/marben/revolving_ifs/render"
)

type options struct {
	params  revolving.Params
	cfg     engine.Config
	f1, f2  string
	out     string
	size    int
	workers int
	deltas  bool
	stats   bool
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := renderOutput(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, out, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	log.Printf("%s written, took %s", opts.out, time.Since(start))

	if opts.stats {
		states, err := engine.Construct(opts.params, opts.cfg)
		if err != nil {
			return err
		}
		fmt.Println(stats(states, equations(opts)))
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: engine.DefaultConfig()}

	fs := flag.NewFlagSet("ifsrender", flag.ContinueOnError)
	preset := fs.String("preset", "default", "starting parameters: default, gamma or expanding")
	re := fs.Float64("re", 0, "real part of alpha, overrides the preset")
	im := fs.Float64("im", 0, "imaginary part of alpha, overrides the preset")
	n := fs.Int("n", 0, "denominator of theta = pi/n, overrides the preset")
	fs.StringVar(&opts.f1, "f1", "", "formula of the first map, e.g. '\\alpha z'")
	fs.StringVar(&opts.f2, "f2", "", "formula of the second map")
	fs.IntVar(&opts.cfg.MaxGenerations, "gen", opts.cfg.MaxGenerations, "generations")
	fs.Float64Var(&opts.cfg.Decay, "decay", opts.cfg.Decay, "point size decay per generation")
	fs.StringVar(&opts.out, "out", "ifs.png", "output file (.png, .svg or .gif)")
	fs.IntVar(&opts.size, "size", 800, "image size in pixels (square)")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "goroutines rendering gif frames")
	fs.BoolVar(&opts.deltas, "deltas", false, "draw the rotation family of n instead")
	fs.BoolVar(&opts.stats, "stats", false, "print per-generation statistics")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	p, ok := revolving.Presets[*preset]
	if !ok {
		return options{}, fmt.Errorf("unknown preset %q", *preset)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "re":
			p.Alpha.Re = *re
		case "im":
			p.Alpha.Im = *im
		case "n":
			p.N = *n
		}
	})
	if err := p.Validate(); err != nil {
		return options{}, err
	}
	opts.params = p

	if opts.f1 != "" || opts.f2 != "" {
		if opts.f1 == "" {
			opts.f1 = formula.DefaultF1
		}
		if opts.f2 == "" {
			opts.f2 = formula.DefaultF2
		}
		sys, err := formula.System(opts.f1, opts.f2)
		if err != nil {
			return options{}, err
		}
		opts.cfg.System = sys
	}
	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	if opts.size < 16 {
		return options{}, fmt.Errorf("size %d too small", opts.size)
	}
	return opts, nil
}

func equations(opts options) render.Equations {
	if opts.f1 == "" {
		return render.FormatEquations(opts.params)
	}
	return render.FormulaEquations(opts.f1, opts.f2)
}

// renderOutput produces the single output file selected by opts.
func renderOutput(opts options) ([]byte, error) {
	var buf bytes.Buffer
	ext := strings.ToLower(filepath.Ext(opts.out))

	if ext == ".gif" {
		if err := render.ConstructionGIF(&buf, opts.params, opts.cfg, equations(opts), opts.size, opts.workers); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	draw := func(c revolving.Canvas) error {
		if opts.deltas {
			render.DeltaFamilyPlot(c, opts.params.N)
			return nil
		}
		states, err := engine.Construct(opts.params, opts.cfg)
		if err != nil {
			return err
		}
		render.Plot(c, states[len(states)-1], equations(opts))
		return nil
	}

	switch ext {
	case ".png":
		ic := render.NewImageCanvas(opts.size, opts.size)
		if err := draw(ic); err != nil {
			return nil, err
		}
		if err := ic.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	case ".svg":
		sc := render.NewSVGCanvas(&buf, opts.size, opts.size)
		if err := draw(sc); err != nil {
			return nil, err
		}
		sc.End()
	default:
		return nil, fmt.Errorf("unsupported output %q", opts.out)
	}
	return buf.Bytes(), nil
}
