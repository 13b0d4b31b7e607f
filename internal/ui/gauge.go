package ui

import "github.com/charmbracelet/harmonica"

// Gauge is a spring-smoothed needle that follows a target value.
type Gauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewGauge creates a gauge updated fps times per second.
func NewGauge(fps int, frequency, damping float64) *Gauge {
	return &Gauge{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Update moves the needle one frame toward target and returns its position.
func (g *Gauge) Update(target float64) float64 {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, target)
	return g.pos
}

// Value returns the current needle position.
func (g *Gauge) Value() float64 {
	return g.pos
}
