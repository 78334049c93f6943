//go:build js && wasm

// Command webclient is the browser front end of the visualizer. It runs
// the pickers and the engine in wasm and draws on three HTML canvases.
package main

import (
	"image/color"
	"log"
	"syscall/js"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/formula"
	"github.com/marben/revolving_ifs/render"
	"github.com/marben/revolving_ifs/widget"
)

const (
	plotSize   = 600
	pickerSize = 300
	angleSize  = 200
)

// app holds the page state. Browser callbacks run one at a time, so it
// needs no locking.
type app struct {
	cfg   engine.Config
	eng   *engine.Engine
	alpha *widget.PointPicker
	theta *widget.AnglePicker

	plot *jsCanvas
	eqs  render.EquationSink
	// custom holds the map formulas when they replace the built-in system.
	custom *render.Equations
}

func main() {
	logScreenf("starting")
	if err := run(); err != nil {
		logScreenf("FATAL: %v", err)
		log.Fatalf("run: %+v", err)
	}

	// keep the callbacks alive
	select {}
}

func run() error {
	a := &app{cfg: engine.DefaultConfig(), eqs: domEquations()}
	eng, err := engine.New(a.cfg)
	if err != nil {
		return err
	}
	a.eng = eng

	a.plot = initCanvas("plot", plotSize, plotSize, color.White)

	alphaOpts := widget.DefaultPointPickerOptions()
	alphaOpts.OnChange = func(revolving.Complex) {
		a.syncParams()
		a.syncText()
	}
	a.alpha = widget.NewPointPicker(initCanvas("alpha", pickerSize, pickerSize, color.White), alphaOpts)

	a.theta = widget.NewAnglePicker(initCanvas("theta", angleSize, angleSize, color.White), widget.AnglePickerOptions{
		Initial:  revolving.DefaultParams.N,
		OnChange: func(int) { a.syncParams() },
	})

	a.syncParams()
	a.syncText()
	a.draw()
	a.bindEvents()
	a.startLoop()
	logScreenf("ready")
	return nil
}

// syncParams resets the engine when the pickers moved to new parameters.
func (a *app) syncParams() {
	p := revolving.Params{Alpha: a.alpha.Point(), N: a.theta.Value()}
	if a.eng.SetParams(p) {
		a.draw()
	}
}

// setFormulas rebuilds the engine around the two map formulas. Empty
// formulas restore the built-in system.
func (a *app) setFormulas(f1, f2 string) {
	cfg := engine.DefaultConfig()
	a.custom = nil
	if f1 != "" || f2 != "" {
		if f1 == "" {
			f1 = formula.DefaultF1
		}
		if f2 == "" {
			f2 = formula.DefaultF2
		}
		sys, err := formula.System(f1, f2)
		if err != nil {
			hudSetText("formulaError", err.Error())
			return
		}
		cfg.System = sys
		eq := render.FormulaEquations(f1, f2)
		a.custom = &eq
	}
	hudSetText("formulaError", "")

	eng, err := engine.New(cfg)
	if err != nil {
		hudSetText("formulaError", err.Error())
		return
	}
	eng.Reset(a.eng.Params())
	a.cfg, a.eng = cfg, eng
	a.draw()
}

func (a *app) equations() render.Equations {
	if a.custom != nil {
		return *a.custom
	}
	return render.FormatEquations(a.eng.Params())
}

// draw renders the current generation and refreshes the text around it.
func (a *app) draw() {
	st := a.eng.State()
	eq := a.equations()
	render.Plot(a.plot, st, eq)
	a.eqs.SetEquations(eq)
	hudSetText("caption", render.Caption(st))
}

// syncText shows the formatted point unless the user is editing it.
func (a *app) syncText() {
	input := element("alphaText")
	if js.Global().Get("document").Get("activeElement").Equal(input) {
		return
	}
	input.Set("value", a.alpha.Text())
}

// startLoop advances the engine and steps the pan loop once per animation
// frame.
func (a *app) startLoop() {
	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		a.alpha.Frame()
		if a.eng.Advance() {
			a.draw()
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)
}
