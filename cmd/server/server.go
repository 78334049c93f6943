package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/revolving_ifs/engine"
)

// config is the server configuration, filled from flags.
type config struct {
	addr       string
	static     string
	tick       time.Duration
	plotSize   int
	pickerSize int
	angleSize  int
	maxRenders int
	engine     engine.Config
}

func defaultConfig() config {
	return config{
		addr:       ":8080",
		static:     "./static",
		tick:       50 * time.Millisecond,
		plotSize:   600,
		pickerSize: 300,
		angleSize:  200,
		maxRenders: 4,
		engine:     engine.DefaultConfig(),
	}
}

// main is the entry point of the visualizer server. It serves the wasm
// client, rendered images and live websocket sessions.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := defaultConfig()
	flag.StringVar(&cfg.addr, "addr", cfg.addr, "listen address")
	flag.StringVar(&cfg.static, "static", cfg.static, "directory with index.html and main.wasm")
	flag.DurationVar(&cfg.tick, "tick", cfg.tick, "live session animation tick")
	flag.IntVar(&cfg.plotSize, "size", cfg.plotSize, "live session plot size in pixels")
	flag.IntVar(&cfg.maxRenders, "renders", cfg.maxRenders, "concurrent image renders")
	flag.IntVar(&cfg.engine.MaxGenerations, "generations", cfg.engine.MaxGenerations, "generation cap")
	flag.Float64Var(&cfg.engine.Decay, "decay", cfg.engine.Decay, "point size decay per generation")
	flag.Parse()

	if err := cfg.engine.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := webServer(ctx, cfg)

	errc := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s", cfg.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
