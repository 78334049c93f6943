package engine

import "fmt"

// MaxGenerationsLimit bounds Config.MaxGenerations. The point set doubles
// every generation, so 2^24 points is already hundreds of megabytes.
const MaxGenerationsLimit = 24

// Config holds the tuning constants of an Engine.
type Config struct {
	// MaxGenerations is the terminal cap; Advance is a no-op beyond it.
	MaxGenerations int
	// InitialPointSize is the marker radius, in pixels, of generation 0.
	InitialPointSize float64
	// Decay shrinks the marker radius once per generation.
	Decay float64
	// MinPointSize is the floor of the marker radius.
	MinPointSize float64
	// System builds the two maps from the parameters. Nil selects Revolving.
	System System
}

func DefaultConfig() Config {
	return Config{
		MaxGenerations:   15,
		InitialPointSize: 3,
		Decay:            0.85,
		MinPointSize:     0.5,
		System:           Revolving,
	}
}

func (c Config) Validate() error {
	if c.MaxGenerations < 0 || c.MaxGenerations > MaxGenerationsLimit {
		return fmt.Errorf("%w: %d", ErrGenerations, c.MaxGenerations)
	}
	if !(c.Decay > 0 && c.Decay <= 1) {
		return fmt.Errorf("%w: %v", ErrDecay, c.Decay)
	}
	if !(c.MinPointSize > 0 && c.MinPointSize <= c.InitialPointSize) {
		return fmt.Errorf("%w: min %v, initial %v", ErrPointSize, c.MinPointSize, c.InitialPointSize)
	}
	return nil
}
