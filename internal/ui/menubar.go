package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonar-sim.klederson.com/internal/config"
)

// ButtonID identifies a menu bar button.
type ButtonID int

const (
	ButtonRestart ButtonID = iota
	ButtonPausePlay
	ButtonSave
)

// Button is a clickable label in the menu bar. Start and End are screen
// columns, End exclusive.
type Button struct {
	ID    ButtonID
	Label string
	Start int
	End   int
}

func menuTitle() string {
	return fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)
}

// MenuButtons lays out the three buttons. The Pause/Play label reflects
// the paused state.
func MenuButtons(paused bool) []Button {
	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Play"
	}
	labels := []struct {
		id    ButtonID
		label string
	}{
		{ButtonRestart, "Restart"},
		{ButtonPausePlay, pauseLabel},
		{ButtonSave, "Save"},
	}

	// menu bar left padding + title + gap
	x := 1 + lipgloss.Width(menuTitle()) + 2
	buttons := make([]Button, 0, len(labels))
	for _, l := range labels {
		text := "[ " + l.label + " ]"
		buttons = append(buttons, Button{ID: l.id, Label: text, Start: x, End: x + len(text)})
		x += len(text) + 1
	}
	return buttons
}

// ButtonAt returns the button under screen cell (x, y), if any.
func ButtonAt(x, y int, paused bool) (ButtonID, bool) {
	if y != 0 {
		return 0, false
	}
	for _, b := range MenuButtons(paused) {
		if x >= b.Start && x < b.End {
			return b.ID, true
		}
	}
	return 0, false
}

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, paused bool, directivity string) string {
	var left strings.Builder
	left.WriteString(StyleMenuKey.Render(menuTitle()))
	left.WriteString("  ")
	for i, b := range MenuButtons(paused) {
		if i > 0 {
			left.WriteString(" ")
		}
		sty := StyleButton
		if b.ID == ButtonPausePlay && paused {
			sty = StyleButtonActive
		}
		left.WriteString(sty.Render(b.Label))
	}

	keys := []struct{ key, label string }{
		{"Enter", " pause"},
		{"R", "estart"},
		{"S", "ave"},
		{"Q", "uit"},
	}
	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusRunning.Render("RUNNING")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}
	model := StyleMenuLabel.Render(fmt.Sprintf("Model: %s", directivity))

	l := left.String() + menu
	right := status + "  " + model + " "

	gap := width - 2 - lipgloss.Width(l) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(l + strings.Repeat(" ", gap) + right)
}
