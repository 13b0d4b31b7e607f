package ui

import "github.com/charmbracelet/lipgloss"

// Sonar color palette
var (
	ColorMatrixGreen = lipgloss.Color("#00FF41")
	ColorGreen       = lipgloss.Color("#00CC33")
	ColorMidGreen    = lipgloss.Color("#008F11")
	ColorDimGreen    = lipgloss.Color("#004A0A")
	ColorBlack       = lipgloss.Color("#000000")
	ColorSurface     = lipgloss.Color("#3399FF")
	ColorWater       = lipgloss.Color("#1E4D6B")
	ColorBoat        = lipgloss.Color("#E0E0E0")
	ColorHeading     = lipgloss.Color("#FF9900")
	ColorTransponder = lipgloss.Color("#FF3300")
	ColorBearing     = lipgloss.Color("#FFAA00")
	ColorBeamArc     = lipgloss.Color("#00AA22")
	ColorPressure    = lipgloss.Color("#CC66FF")
	ColorBorderNorm  = lipgloss.Color("#00AA22")
	ColorError       = lipgloss.Color("#FF3300")
	ColorWarning     = lipgloss.Color("#FFAA00")
)

// Beam tint endpoints, blended by pressure.
const (
	BeamColorQuiet = "#0B3D1A"
	BeamColorLoud  = "#A8FF60"
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleButton = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorGreen).
			Bold(true)

	StyleButtonActive = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorWarning).
				Bold(true)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StylePressure = lipgloss.NewStyle().
			Foreground(ColorPressure).
			Bold(true)

	StyleBearing = lipgloss.NewStyle().
			Foreground(ColorBearing)

	StyleRange = lipgloss.NewStyle().
			Foreground(ColorTransponder).
			Bold(true)

	StyleSurface = lipgloss.NewStyle().
			Foreground(ColorSurface)

	StyleWater = lipgloss.NewStyle().
			Foreground(ColorWater)

	StyleBoat = lipgloss.NewStyle().
			Foreground(ColorBoat).
			Bold(true)

	StyleHeading = lipgloss.NewStyle().
			Foreground(ColorHeading).
			Bold(true)

	StyleTransponder = lipgloss.NewStyle().
				Foreground(ColorTransponder).
				Bold(true)

	StyleBeamArc = lipgloss.NewStyle().
			Foreground(ColorBeamArc).
			Bold(true)

	StyleRadarRing = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
