package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonar-sim.klederson.com/internal/signal"
	"sonar-sim.klederson.com/internal/sonar"
)

func centreFrame() sonar.Frame {
	g := sonar.ComputeGeometry(sonar.Point{X: 0, Z: -50}, sonar.Point{X: 0, Z: -5000}, signal.Radians(6))
	m := signal.NewModel(40)
	return sonar.Frame{
		Step:      100,
		Steps:     200,
		Direction: sonar.Forward,
		Geometry:  g,
		Signal:    m.Evaluate(signal.Radians(g.BearingDeg), 0),
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	// out-of-range t is clamped
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 3))
	assert.Equal(t, "#ffffff", Blend("bogus", "#ffffff", 0.5))

	assert.Equal(t, PressureColor(2), PressureColor(-2))
	assert.Equal(t, Blend(BeamColorQuiet, BeamColorLoud, 1), PressureColor(100))
}

func TestGauge_Converges(t *testing.T) {
	t.Parallel()

	g := NewGauge(30, 6.0, 0.6)
	assert.Zero(t, g.Value())
	for i := 0; i < 300; i++ {
		g.Update(5)
	}
	assert.InDelta(t, 5.0, g.Value(), 1e-3)
}

func TestMenuButtons(t *testing.T) {
	t.Parallel()

	running := MenuButtons(false)
	require.Len(t, running, 3)
	assert.Equal(t, "[ Restart ]", running[0].Label)
	assert.Equal(t, "[ Pause ]", running[1].Label)
	assert.Equal(t, "[ Save ]", running[2].Label)
	for i := 1; i < len(running); i++ {
		assert.Greater(t, running[i].Start, running[i-1].End-1)
	}

	paused := MenuButtons(true)
	assert.Equal(t, "[ Play ]", paused[1].Label)
}

func TestButtonAt(t *testing.T) {
	t.Parallel()

	for _, b := range MenuButtons(false) {
		id, ok := ButtonAt(b.Start, 0, false)
		require.True(t, ok)
		assert.Equal(t, b.ID, id)

		id, ok = ButtonAt(b.End-1, 0, false)
		require.True(t, ok)
		assert.Equal(t, b.ID, id)
	}

	_, ok := ButtonAt(0, 0, false)
	assert.False(t, ok)
	first := MenuButtons(false)[0]
	_, ok = ButtonAt(first.Start, 1, false)
	assert.False(t, ok)
}

func TestRenderScene_Size(t *testing.T) {
	t.Parallel()

	out := RenderScene(80, 30, centreFrame(), 100)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	for _, l := range lines {
		assert.Equal(t, 80, lipgloss.Width(l))
	}
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "O")

	assert.Empty(t, RenderScene(5, 30, centreFrame(), 100))
}

func TestRenderScene_BoatOnTransponder(t *testing.T) {
	t.Parallel()

	// zero range must not panic or flood the panel with the cone
	g := sonar.ComputeGeometry(sonar.Point{X: 0, Z: -5000}, sonar.Point{X: 0, Z: -5000}, signal.Radians(6))
	out := RenderScene(40, 20, sonar.Frame{Steps: 1, Geometry: g}, 100)
	assert.NotContains(t, out, ":")
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderSparkline(nil, 10))
	assert.Equal(t, "_^", renderSparkline([]float64{0, 1}, 10))
	assert.Equal(t, "___", renderSparkline([]float64{2, 2, 2}, 10))
	// only the newest width values are shown
	assert.Equal(t, "^_", renderSparkline([]float64{0, 0, 0, 5, 1}, 2))
}

func TestRenderBearingDial(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderBearingDial(4, 4, 0, 0))
	out := RenderBearingDial(21, 9, signal.Radians(90), 5)
	assert.Len(t, strings.Split(out, "\n"), 9)
}

func TestRenderReadout(t *testing.T) {
	t.Parallel()

	out := RenderReadout(centreFrame(), 40, 40, 5, []float64{0, 1, 5})
	assert.Contains(t, out, "READOUT")
	assert.Contains(t, out, "[101/200]")
	assert.Contains(t, out, "90.0°")
	assert.Contains(t, out, "4950.0 m")
}

func TestRenderStatusBar(t *testing.T) {
	t.Parallel()

	out := RenderStatusBar(120, Status{
		Paused: true, Step: 0, Steps: 200, Direction: "forward",
		Logged: 12345, LogEnabled: true, Message: "Save failed", IsError: true,
	})
	assert.Contains(t, out, "[PAUSED]")
	assert.Contains(t, out, "Step: 1/200")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "Save failed")

	off := RenderStatusBar(120, Status{Steps: 1})
	assert.Contains(t, off, "Samples: off")
}
