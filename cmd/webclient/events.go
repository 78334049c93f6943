//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	"github.com/marben/revolving_ifs/widget"
)

// on registers fn for DOM event name on el. Callbacks live for the page.
func on(el js.Value, name string, fn func(ev js.Value)) {
	el.Call("addEventListener", name, js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	}))
}

// bindEvents feeds DOM events into the pickers and formula inputs.
func (a *app) bindEvents() {
	alpha := element("alpha")
	on(alpha, "pointerdown", func(ev js.Value) {
		alpha.Call("setPointerCapture", ev.Get("pointerId"))
		a.alpha.PointerDown(pointerPos(ev), time.Now())
	})
	on(alpha, "pointermove", func(ev js.Value) {
		a.alpha.PointerMove(pointerPos(ev), time.Now())
	})
	on(alpha, "pointerup", func(ev js.Value) {
		a.alpha.PointerUp(pointerPos(ev), time.Now())
		a.syncText()
	})
	on(alpha, "wheel", func(ev js.Value) {
		ev.Call("preventDefault")
		a.alpha.Wheel(pointerPos(ev), ev.Get("deltaY").Float())
		a.syncText()
	})

	theta := element("theta")
	on(theta, "pointerdown", func(ev js.Value) {
		theta.Call("setPointerCapture", ev.Get("pointerId"))
		a.theta.PointerDown(pointerPos(ev))
	})
	on(theta, "pointermove", func(ev js.Value) {
		a.theta.PointerMove(pointerPos(ev), ev.Get("buttons").Int()&1 != 0)
	})

	on(js.Global().Get("document"), "keydown", func(ev js.Value) {
		k := widget.KeyFromName(ev.Get("key").String())
		if a.alpha.KeyDown(k, ev.Get("shiftKey").Bool()) {
			ev.Call("preventDefault")
			a.syncText()
		}
	})

	text := element("alphaText")
	on(text, "focus", func(js.Value) { a.alpha.SetTextFocus(true) })
	on(text, "blur", func(js.Value) {
		a.alpha.SetTextFocus(false)
		a.syncText()
	})
	on(text, "change", func(js.Value) {
		if !a.alpha.SubmitText(text.Get("value").String()) {
			logScreenf("cannot parse %q", text.Get("value").String())
		}
		text.Set("value", a.alpha.Text())
	})

	f1, f2 := element("f1"), element("f2")
	onFormula := func(js.Value) {
		a.setFormulas(f1.Get("value").String(), f2.Get("value").String())
	}
	on(f1, "change", onFormula)
	on(f2, "change", onFormula)
}
