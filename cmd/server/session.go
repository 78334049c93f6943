package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/live"
	"github.com/marben/revolving_ifs/render"
	"github.com/marben/revolving_ifs/widget"
)

// session is one live connection. It owns an engine, both pickers and
// their canvases; only its run loop touches them.
type session struct {
	conn *websocket.Conn
	cfg  config
	hub  *hub

	eng   *engine.Engine
	alpha *widget.PointPicker
	theta *widget.AnglePicker

	plotCanvas  *render.ImageCanvas
	alphaCanvas *render.ImageCanvas
	thetaCanvas *render.ImageCanvas

	// dirty is indexed by canvas id.
	dirty       [3]bool
	statusDirty bool
}

func newSession(conn *websocket.Conn, cfg config, h *hub, p revolving.Params) (*session, error) {
	eng, err := engine.New(cfg.engine)
	if err != nil {
		return nil, err
	}
	eng.Reset(p)

	s := &session{
		conn:        conn,
		cfg:         cfg,
		hub:         h,
		eng:         eng,
		plotCanvas:  render.NewImageCanvas(cfg.plotSize, cfg.plotSize),
		alphaCanvas: render.NewImageCanvas(cfg.pickerSize, cfg.pickerSize),
		thetaCanvas: render.NewImageCanvas(cfg.angleSize, cfg.angleSize),
	}

	alphaOpts := widget.DefaultPointPickerOptions()
	alphaOpts.Initial = eng.Params().Alpha
	alphaOpts.OnChange = func(revolving.Complex) { s.syncParams() }
	s.alpha = widget.NewPointPicker(s.alphaCanvas, alphaOpts)

	s.theta = widget.NewAnglePicker(s.thetaCanvas, widget.AnglePickerOptions{
		Initial:  eng.Params().N,
		OnChange: func(int) { s.syncParams() },
	})

	// the picker snaps α to its grid
	s.syncParams()
	s.markAll()
	return s, nil
}

// run serves the session until the connection or ctx ends.
func (s *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan live.Message)
	readErr := make(chan error, 1)
	go func() { readErr <- s.read(ctx, msgs) }()

	ticker := time.NewTicker(s.cfg.tick)
	defer ticker.Stop()

	for {
		if err := s.flush(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case err := <-readErr:
			return err
		case m := <-msgs:
			s.handle(m)
		case <-ticker.C:
			s.tick()
		}
	}
}

// read decodes client messages onto msgs.
func (s *session) read(ctx context.Context, msgs chan<- live.Message) error {
	for {
		var m live.Message
		if err := wsjson.Read(ctx, s.conn, &m); err != nil {
			return err
		}
		select {
		case msgs <- m:
		case <-ctx.Done():
			return context.Cause(ctx)
		}
	}
}

func (s *session) handle(m live.Message) {
	at := time.Now()
	if m.T != 0 {
		at = time.UnixMilli(m.T)
	}
	p := revolving.Point{X: m.X, Y: m.Y}

	switch m.Type {
	case live.TypeParams:
		if m.Params == nil {
			log.Println("params message without params")
			return
		}
		s.theta.SetValue(m.Params.N)
		s.alpha.SetPoint(m.Params.Alpha)
		s.dirty[live.CanvasTheta] = true
	case live.TypePointerDown:
		if m.Target == live.TargetTheta {
			s.theta.PointerDown(p)
			s.dirty[live.CanvasTheta] = true
			return
		}
		s.alpha.PointerDown(p, at)
	case live.TypePointerMove:
		if m.Target == live.TargetTheta {
			s.theta.PointerMove(p, m.Pressed)
			s.dirty[live.CanvasTheta] = m.Pressed || s.dirty[live.CanvasTheta]
			return
		}
		s.alpha.PointerMove(p, at)
	case live.TypePointerUp:
		if m.Target == live.TargetTheta {
			return
		}
		s.alpha.PointerUp(p, at)
	case live.TypeWheel:
		s.alpha.Wheel(p, m.DeltaY)
	case live.TypeKey:
		s.alpha.KeyDown(widget.KeyFromName(m.Key), m.Shift)
	case live.TypeText:
		s.alpha.SubmitText(m.Text)
	case live.TypeFocus:
		s.alpha.SetTextFocus(m.Focused)
	default:
		log.Printf("unknown message type: %q", m.Type)
		return
	}
	s.dirty[live.CanvasAlpha] = true
	s.statusDirty = true
}

// tick steps the pan loop and the engine.
func (s *session) tick() {
	if s.alpha.Frame() {
		s.dirty[live.CanvasAlpha] = true
	}
	if s.eng.Advance() {
		s.dirty[live.CanvasPlot] = true
		s.statusDirty = true
	}
}

// syncParams resets the engine when either picker moved to new parameters.
func (s *session) syncParams() {
	p := revolving.Params{Alpha: s.alpha.Point(), N: s.theta.Value()}
	if s.eng.SetParams(p) {
		s.dirty[live.CanvasPlot] = true
		s.statusDirty = true
	}
}

func (s *session) markAll() {
	for i := range s.dirty {
		s.dirty[i] = true
	}
	s.statusDirty = true
}

// flush sends every dirty canvas and, if needed, the status.
func (s *session) flush(ctx context.Context) error {
	if s.dirty[live.CanvasPlot] {
		if err := s.renderPlot(ctx); err != nil {
			return err
		}
	}

	canvases := [3]*render.ImageCanvas{
		live.CanvasPlot:  s.plotCanvas,
		live.CanvasAlpha: s.alphaCanvas,
		live.CanvasTheta: s.thetaCanvas,
	}
	for id, c := range canvases {
		if !s.dirty[id] {
			continue
		}
		if err := s.sendFrame(ctx, byte(id), c); err != nil {
			return err
		}
		s.dirty[id] = false
	}

	if s.statusDirty {
		if err := wsjson.Write(ctx, s.conn, s.status()); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
		s.statusDirty = false
	}
	return nil
}

// renderPlot draws the current generation, sharing the render slots of
// the image endpoints.
func (s *session) renderPlot(ctx context.Context) error {
	if err := s.hub.acquire(ctx); err != nil {
		return err
	}
	defer s.hub.release()

	render.Plot(s.plotCanvas, s.eng.State(), render.FormatEquations(s.eng.Params()))
	return nil
}

func (s *session) sendFrame(ctx context.Context, id byte, c *render.ImageCanvas) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode canvas %d: %w", id, err)
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, live.EncodeFrame(id, buf.Bytes())); err != nil {
		return fmt.Errorf("write canvas %d: %w", id, err)
	}
	return nil
}

func (s *session) status() live.Status {
	return live.Status{
		Type:           live.TypeStatus,
		Alpha:          s.alpha.Point(),
		N:              s.theta.Value(),
		Text:           s.alpha.Text(),
		Iteration:      s.eng.Iteration(),
		Points:         len(s.eng.Points()),
		WindowBoundary: s.eng.WindowBoundary(),
		Equations:      render.FormatEquations(s.eng.Params()),
		Done:           s.eng.Done(),
	}
}
