package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonar-sim.klederson.com/internal/sonar"
)

// RenderReadout renders the numeric readout panel next to the scene: the
// text overlays, a smoothed pressure gauge, the pressure history and a
// bearing dial.
func RenderReadout(f sonar.Frame, width, height int, gauge float64, history []float64) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("READOUT")
	step := StyleHelp.Render(fmt.Sprintf("[%d/%d]", f.Step+1, f.Steps))
	titleLine := title + strings.Repeat(" ", max(0, innerW-lipgloss.Width(title)-lipgloss.Width(step))) + step

	sep := StyleRadarRing.Render(strings.Repeat("-", innerW))
	lines := []string{titleLine, sep, ""}

	g, s := f.Geometry, f.Signal
	fields := []struct {
		label, value string
		style        lipgloss.Style
	}{
		{"Pressure Δp", fmt.Sprintf("%.4f", s.Pressure), StylePressure},
		{"Beam angle", fmt.Sprintf("%.1f°", g.BearingDeg), StyleBearing},
		{"Boat X", fmt.Sprintf("%.1f m", math.Abs(g.Boat.X)), StyleFieldValue},
		{"Frequency", fmt.Sprintf("%.2f Hz", s.Frequency), StyleFieldValue},
		{"Range", fmt.Sprintf("%.1f m", g.Range), StyleRange},
		{"Amplitude", fmt.Sprintf("%.4f", s.Amplitude), StyleFieldValue},
		{"Time", fmt.Sprintf("%.2f s", s.Time), StyleFieldValue},
		{"Heading", f.Direction.String(), StyleHeading},
	}
	for _, fl := range fields {
		lines = append(lines, StyleFieldLabel.Render(fmt.Sprintf("  %-12s", fl.label))+fl.style.Render(fl.value))
	}

	lines = append(lines, "")

	barWidth := innerW - 12
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines, StyleFieldLabel.Render("  Δp ")+renderPressureBar(gauge, barWidth))

	if len(history) > 0 {
		sparkW := innerW - 4
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, "", StyleFieldLabel.Render("  Pressure History:"))
		lines = append(lines, "  "+StylePressure.Render(renderSparkline(history, sparkW)))
	}

	lines = append(lines, "")

	dialH := height - len(lines) - 4
	if dialH < 5 {
		dialH = 5
	}
	dialW := innerW
	if dialW > dialH*3 {
		dialW = dialH * 3
	}
	if dial := RenderBearingDial(dialW, dialH, g.BearingRad, s.Pressure); dial != "" {
		pad := strings.Repeat(" ", max(0, (innerW-dialW)/2))
		for _, dl := range strings.Split(dial, "\n") {
			lines = append(lines, pad+dl)
		}
	}

	if len(lines) > height-2 {
		lines = lines[:max(0, height-2)]
	}
	for len(lines) < height-2 {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

func renderPressureBar(p float64, width int) string {
	ratio := math.Abs(p) / MaxPressure
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	filledPart := lipgloss.NewStyle().Foreground(lipgloss.Color(PressureColor(p))).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	visible := values[start:]

	minV, maxV := visible[0], visible[0]
	for _, v := range visible {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	rng := maxV - minV
	if rng <= 0 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range visible {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
