package ui

// RenderScenePanel wraps scene content with a styled border.
func RenderScenePanel(width, height int, sceneContent, legend string) string {
	content := sceneContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
