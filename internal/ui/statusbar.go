package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Status is the data shown in the bottom status bar.
type Status struct {
	Paused     bool
	Step       int
	Steps      int
	Direction  string
	Logged     int
	Dropped    uint64
	LogEnabled bool
	Message    string
	IsError    bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st Status) string {
	state := StyleStatusRunning.Render("[RUNNING]")
	if st.Paused {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	samples := "off"
	if st.LogEnabled {
		samples = humanize.Comma(int64(st.Logged))
		if st.Dropped > 0 {
			samples += fmt.Sprintf(" (%s dropped)", humanize.Comma(int64(st.Dropped)))
		}
	}

	info := fmt.Sprintf(" Step: %d/%d  Sweep: %s  Samples: %s",
		st.Step+1, st.Steps, st.Direction, samples)

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)
	if st.Message != "" {
		msgSty := StyleMenuLabel
		if st.IsError {
			msgSty = StyleStatusError
		}
		content += "  " + msgSty.Render(st.Message)
	}

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
