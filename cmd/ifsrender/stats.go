package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/marben/revolving_ifs/engine"
	"github.com/marben/revolving_ifs/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// stats summarizes a construction: the window boundary of every generation
// as a chart, then totals.
func stats(states []engine.State, eq render.Equations) string {
	boundaries := make([]float64, len(states))
	for i, st := range states {
		boundaries[i] = st.WindowBoundary
	}
	last := states[len(states)-1]

	var s strings.Builder
	s.WriteString(headerStyle.Render(eq.F1+"\n"+eq.F2) + "\n")

	if len(boundaries) > 1 {
		chart := asciigraph.Plot(boundaries,
			asciigraph.Height(8),
			asciigraph.Width(min(60, 4*len(boundaries))),
			asciigraph.Precision(3),
			asciigraph.Caption("window boundary per generation"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("generations", fmt.Sprint(last.Iteration))
	row("points", fmt.Sprint(len(last.Points)))
	row("plotted", render.Caption(last))
	row("max boundary", fmt.Sprintf("%.4g", floats.Max(boundaries)))
	row("min boundary", fmt.Sprintf("%.4g", floats.Min(boundaries)))
	row("growth", growth(boundaries))

	return boxStyle.Render(strings.TrimRight(s.String(), "\n"))
}

// growth describes the mean ratio between consecutive window boundaries.
func growth(boundaries []float64) string {
	if len(boundaries) < 2 {
		return "-"
	}
	ratios := make([]float64, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i-1] == 0 {
			continue
		}
		ratios = append(ratios, boundaries[i]/boundaries[i-1])
	}
	if len(ratios) == 0 {
		return "-"
	}
	mean := floats.Sum(ratios) / float64(len(ratios))
	switch {
	case math.Abs(mean-1) < 1e-3:
		return fmt.Sprintf("%.3f (bounded)", mean)
	case mean > 1:
		return fmt.Sprintf("%.3f (expanding)", mean)
	default:
		return fmt.Sprintf("%.3f (contracting)", mean)
	}
}
