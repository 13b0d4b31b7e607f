package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the scene panel and readout horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, scenePanel, readout, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, scenePanel, readout)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
