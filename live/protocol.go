// Package live defines the websocket protocol of a live session, in which
// the server owns the widgets and the engine and a thin client forwards
// input events and shows the frames it receives.
//
// Client to server: JSON Message values. Server to client: binary frames
// of one canvas id byte followed by a PNG image, and JSON Status values.
package live

import (
	"errors"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/render"
)

// Canvas ids prefixing binary frames.
const (
	CanvasPlot  byte = 0
	CanvasAlpha byte = 1
	CanvasTheta byte = 2
)

// Message types.
const (
	TypeParams      = "params"
	TypePointerDown = "pointerdown"
	TypePointerMove = "pointermove"
	TypePointerUp   = "pointerup"
	TypeWheel       = "wheel"
	TypeKey         = "key"
	TypeText        = "text"
	TypeFocus       = "focus"
	TypeStatus      = "status"
)

// Message targets.
const (
	TargetAlpha = "alpha"
	TargetTheta = "theta"
)

var ErrShortFrame = errors.New("live: frame without canvas id")

// Message is a client input event.
type Message struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`

	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Pressed bool    `json:"pressed,omitempty"`
	DeltaY  float64 `json:"deltaY,omitempty"`

	Key   string `json:"key,omitempty"`
	Shift bool   `json:"shift,omitempty"`

	Text    string `json:"text,omitempty"`
	Focused bool   `json:"focused,omitempty"`

	Params *revolving.Params `json:"params,omitempty"`

	// T is the event time in Unix milliseconds. Zero means now.
	T int64 `json:"t,omitempty"`
}

// Status describes the session after a change.
type Status struct {
	Type           string            `json:"type"`
	Alpha          revolving.Complex `json:"alpha"`
	N              int               `json:"n"`
	Text           string            `json:"text"`
	Iteration      int               `json:"iteration"`
	Points         int               `json:"points"`
	WindowBoundary float64           `json:"windowBoundary"`
	Equations      render.Equations  `json:"equations"`
	Done           bool              `json:"done"`
}

// EncodeFrame prefixes a PNG image with its canvas id.
func EncodeFrame(id byte, img []byte) []byte {
	return append([]byte{id}, img...)
}

// DecodeFrame splits a binary message into canvas id and PNG image.
func DecodeFrame(b []byte) (byte, []byte, error) {
	if len(b) == 0 {
		return 0, nil, ErrShortFrame
	}
	return b[0], b[1:], nil
}
