package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_EvaluateRectifies(t *testing.T) {
	t.Parallel()

	m := NewModel(40)
	assert.InDelta(t, Radians(40), m.Phase, tol)

	alpha := Radians(90)
	for _, tm := range []float64{0, 0.25, 0.8, 1.7, 3.3} {
		s := m.Evaluate(alpha, tm)
		assert.GreaterOrEqual(t, s.Pressure, 0.0)
		assert.InDelta(t, math.Abs(s.Raw), s.Pressure, tol)
		assert.InDelta(t, Pressure(alpha, s.Omega, tm, m.Phase), s.Raw, tol)
		assert.InDelta(t, 0.5, s.Frequency, tol)
		assert.InDelta(t, math.Pi, s.Omega, tol)
		assert.InDelta(t, 5, s.Amplitude, tol)
		assert.Equal(t, tm, s.Time)
	}
}

func TestModel_EvaluateSigned(t *testing.T) {
	t.Parallel()

	m := Model{Directivity: Lobe, Rectify: false}
	s := m.Evaluate(Radians(90), 1.5) // ω = π, sin(1.5π) = -1
	assert.InDelta(t, -5, s.Raw, tol)
	assert.InDelta(t, -5, s.Pressure, tol)
}

func TestModel_LegacyHasNoCutoff(t *testing.T) {
	t.Parallel()

	lobe := Model{Directivity: Lobe}
	legacy := Model{Directivity: Legacy, Phase: math.Pi / 2}

	alpha := Radians(270)
	assert.Equal(t, 0.0, lobe.Amplitude(alpha))
	assert.Equal(t, 0.0, lobe.Evaluate(alpha, 0).Raw)

	s := legacy.Evaluate(alpha, 0)
	assert.InDelta(t, LegacyAmplitude(270), s.Amplitude, tol)
	assert.InDelta(t, s.Amplitude, s.Raw, tol)
}
