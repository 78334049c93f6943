package main

import (
	"log"
	"net/url"
	"runtime"
	"strconv"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/formula"
	"github.com/marben/revolving_ifs/render"
)

const (
	minImageSize     = 16
	maxImageSize     = 4096
	defaultImageSize = 600
	defaultGIFSize   = 400
	maxWorkers       = 64
)

// imageQuery is the parsed query of an image endpoint. Invalid values
// fall back to defaults, each with a log line.
type imageQuery struct {
	params      revolving.Params
	generations int
	size        int
	workers     int
	engine      engine.Config
	// formulas captions a system built from f1 and f2; nil means the
	// built-in one.
	formulas *render.Equations
}

func parseImageQuery(q url.Values, cfg config, defaultSize int) imageQuery {
	iq := imageQuery{
		params:      parseParams(q),
		generations: cfg.engine.MaxGenerations,
		size:        defaultSize,
		workers:     runtime.NumCPU(),
	}
	iq.engine, iq.formulas = parseSystem(q, cfg.engine)

	// the server's generation cap bounds every request
	if v := q.Get("gen"); v != "" {
		gen, err := strconv.Atoi(v)
		switch {
		case err != nil || gen < 0:
			log.Println("gen invalid - setting to default")
		case gen > cfg.engine.MaxGenerations:
			log.Printf("gen %d above cap - setting to %d", gen, cfg.engine.MaxGenerations)
		default:
			iq.generations = gen
		}
	}
	iq.engine.MaxGenerations = iq.generations

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			log.Println("size invalid - setting to default")
		} else {
			iq.size = max(minImageSize, min(maxImageSize, size))
		}
	}

	if v := q.Get("workers"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			log.Println("workers invalid - setting to default")
		} else {
			iq.workers = min(maxWorkers, workers)
		}
	}
	return iq
}

// parseParams reads preset, re, im and n. Explicit values override the
// preset, which defaults to revolving.DefaultParams.
func parseParams(q url.Values) revolving.Params {
	p := revolving.DefaultParams
	if name := q.Get("preset"); name != "" {
		preset, ok := revolving.Presets[name]
		if !ok {
			log.Printf("unknown preset %q - setting to default", name)
		} else {
			p = preset
		}
	}

	if v := q.Get("re"); v != "" {
		re, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Println("re invalid - setting to default")
		} else {
			p.Alpha.Re = re
		}
	}
	if v := q.Get("im"); v != "" {
		im, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Println("im invalid - setting to default")
		} else {
			p.Alpha.Im = im
		}
	}
	if v := q.Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Println("n invalid - setting to default")
		} else {
			p.N = n
		}
	}
	return p.Normalized()
}

// parseSystem replaces the maps of cfg when f1 or f2 is given and both
// parse, returning the equations of the replacement.
func parseSystem(q url.Values, cfg engine.Config) (engine.Config, *render.Equations) {
	f1, f2 := q.Get("f1"), q.Get("f2")
	if f1 == "" && f2 == "" {
		return cfg, nil
	}
	if f1 == "" {
		f1 = formula.DefaultF1
	}
	if f2 == "" {
		f2 = formula.DefaultF2
	}

	sys, err := formula.System(f1, f2)
	if err != nil {
		log.Printf("formulas invalid - setting to default: %v", err)
		return cfg, nil
	}
	cfg.System = sys
	eq := render.FormulaEquations(f1, f2)
	return cfg, &eq
}

// equations captions the queried system.
func (iq imageQuery) equations() render.Equations {
	if iq.formulas != nil {
		return *iq.formulas
	}
	return render.FormatEquations(iq.params)
}

// state runs a fresh engine to the generation cap of iq.
func (iq imageQuery) state() (engine.State, error) {
	e, err := engine.New(iq.engine)
	if err != nil {
		return engine.State{}, err
	}
	e.Reset(iq.params)
	for e.Advance() {
	}
	return e.State(), nil
}
