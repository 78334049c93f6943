//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/marben/revolving_ifs/render"
)

func element(id string) js.Value {
	return js.Global().Get("document").Call("getElementById", id)
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	logElem := element("log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

func hudSetText(id, s string) {
	element(id).Set("textContent", s)
}

// domEquations shows equations in the eq1 and eq2 elements, keeping the
// TeX form in a data attribute for typesetting.
func domEquations() render.EquationSink {
	return render.EquationSinkFunc(func(eq render.Equations) {
		for id, pair := range map[string][2]string{
			"eq1": {eq.F1, eq.TeX1},
			"eq2": {eq.F2, eq.TeX2},
		} {
			el := element(id)
			el.Set("textContent", pair[0])
			el.Call("setAttribute", "data-tex", pair[1])
		}
	})
}
