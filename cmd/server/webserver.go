package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/marben/revolving_ifs/render"
)

// webServer serves files in the static folder, the image endpoints and
// the live session websocket endpoint. Request contexts derive from ctx.
func webServer(ctx context.Context, cfg config) *http.Server {
	return &http.Server{
		Addr:              cfg.addr,
		Handler:           newMux(cfg, newHub(cfg.maxRenders)),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func newMux(cfg config, h *hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg, h))
	mux.HandleFunc("/frame.png", frameHandler(cfg, h, writePNG))
	mux.HandleFunc("/frame.svg", frameHandler(cfg, h, writeSVG))
	mux.HandleFunc("/construction.gif", constructionHandler(cfg, h))
	mux.HandleFunc("/deltas.png", deltasHandler(h))
	mux.Handle("/", http.FileServer(http.Dir(cfg.static)))
	return mux
}

// websocketHandler runs a live session for the lifetime of the connection.
func websocketHandler(cfg config, h *hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := parseParams(r.URL.Query())

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten once the client is served from a fixed host
		})
		if err != nil {
			log.Println(err)
			return
		}
		log.Printf("got connection from: %s", r.RemoteAddr)

		h.join()
		defer h.leave()

		s, err := newSession(c, cfg, h, p)
		if err != nil {
			log.Printf("session: %v", err)
			c.Close(websocket.StatusInternalError, "session setup failed")
			return
		}
		err = s.run(r.Context())
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			c.Close(websocket.StatusNormalClosure, "")
		default:
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "")
		}
	}
}

type frameWriter func(w http.ResponseWriter, iq imageQuery) error

// frameHandler renders the last generation of the queried system.
func frameHandler(cfg config, h *hub, write frameWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iq := parseImageQuery(r.URL.Query(), cfg, defaultImageSize)
		if err := h.acquire(r.Context()); err != nil {
			return
		}
		defer h.release()

		start := time.Now()
		if err := write(w, iq); err != nil {
			log.Printf("%s: %v", r.URL.Path, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Printf("%s %v: took %s", r.URL.Path, iq.params, time.Since(start))
	}
}

func writePNG(w http.ResponseWriter, iq imageQuery) error {
	st, err := iq.state()
	if err != nil {
		return err
	}
	ic := render.NewImageCanvas(iq.size, iq.size)
	render.Plot(ic, st, iq.equations())

	var buf bytes.Buffer
	if err := ic.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	w.Header().Set("Content-Type", "image/png")
	_, err = w.Write(buf.Bytes())
	return err
}

func writeSVG(w http.ResponseWriter, iq imageQuery) error {
	st, err := iq.state()
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	sc := render.NewSVGCanvas(w, iq.size, iq.size)
	sc.Title(render.Caption(st))
	render.Plot(sc, st, iq.equations())
	sc.End()
	return nil
}

// constructionHandler animates every generation of the queried system.
func constructionHandler(cfg config, h *hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		iq := parseImageQuery(r.URL.Query(), cfg, defaultGIFSize)
		if err := h.acquire(r.Context()); err != nil {
			return
		}
		defer h.release()

		var buf bytes.Buffer
		if err := render.ConstructionGIF(&buf, iq.params, iq.engine, iq.equations(), iq.size, iq.workers); err != nil {
			log.Printf("construction: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/gif")
		w.Write(buf.Bytes())
	}
}

// deltasHandler draws the rotation family of n on the unit circle.
func deltasHandler(h *hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := parseParams(r.URL.Query())
		if err := h.acquire(r.Context()); err != nil {
			return
		}
		defer h.release()

		ic := render.NewImageCanvas(defaultGIFSize, defaultGIFSize)
		render.DeltaFamilyPlot(ic, p.N)

		var buf bytes.Buffer
		if err := ic.EncodePNG(&buf); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}
}
