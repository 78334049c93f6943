package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/live"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	url := flag.String("url", "ws://localhost:8080/ws", "live session endpoint")
	re := flag.Float64("re", revolving.DefaultParams.Alpha.Re, "real part of alpha")
	im := flag.Float64("im", revolving.DefaultParams.Alpha.Im, "imaginary part of alpha")
	n := flag.Int("n", revolving.DefaultParams.N, "denominator of theta = pi/n")
	out := flag.String("out", "ifs.png", "output file")
	timeout := flag.Duration("timeout", time.Minute, "give up after")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	log.Printf("connecting to %s", *url)
	c, err := live.Dial(ctx, *url)
	if err != nil {
		return err
	}
	defer c.Close()

	p := revolving.Params{Alpha: revolving.C(*re, *im), N: *n}
	log.Printf("asking server for %v", p)
	if err := c.SetParams(ctx, p); err != nil {
		return fmt.Errorf("send params: %w", err)
	}

	img, st, err := awaitPlot(ctx, c, p.Normalized())
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, img, 0o644); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	log.Printf("%d points of %s saved to %q", st.Points, st.Equations.F2, *out)
	return nil
}
