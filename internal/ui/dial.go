package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBearingDial renders a dial with an arrow along the bearing.
// bearing: radians, 0 = +X (east), counter-clockwise; the arrow length grows
// with pressure.
func RenderBearingDial(width, height int, bearing, pressure float64) string {
	if width < 9 || height < 5 {
		return ""
	}

	grid := make([][]byte, height)
	isArrow := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		isArrow[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 2.0 // horizontal radius in columns
	ry := fcy - 2.0 // vertical radius in rows
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	// Ring
	steps := 80
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		if col >= 0 && col < width && row >= 0 && row < height && grid[row][col] == ' ' {
			grid[row][col] = ringChar(a)
		}
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))

	// Degree markers, counter-clockwise from +X
	topRow := cy - int(math.Round(ry)) - 1
	botRow := cy + int(math.Round(ry)) + 1
	rightCol := cx + int(math.Round(rx)) + 1
	leftCol := cx - int(math.Round(rx)) - 1
	setText(grid, width, height, cx-1, topRow, "90")
	setText(grid, width, height, cx-1, botRow, "270")
	setText(grid, width, height, rightCol, cy, "0")
	setText(grid, width, height, leftCol-2, cy, "180")

	// Cross hairs
	for r := cy - int(ry) + 1; r < cy+int(ry); r++ {
		if r != cy && r >= 0 && r < height && grid[r][cx] == ' ' {
			grid[r][cx] = ':'
		}
	}
	for c := cx - int(rx) + 1; c < cx+int(rx); c++ {
		if c != cx && c >= 0 && c < width && grid[cy][c] == ' ' {
			grid[cy][c] = '.'
		}
	}

	setGrid(grid, width, height, cx, cy, '+')

	// 0=north clockwise, as the ring is drawn
	angle := math.Pi/2 - bearing

	maxFrac := 0.85
	minFrac := 0.3
	pFrac := math.Min(math.Abs(pressure)/MaxPressure, 1.0)
	arrowFrac := minFrac + (maxFrac-minFrac)*pFrac

	sinA := math.Sin(angle)
	cosA := math.Cos(angle)

	shaftSteps := int(math.Max(rx, ry) * arrowFrac)
	if shaftSteps < 2 {
		shaftSteps = 2
	}

	tipCol, tipRow := cx, cy
	for s := 1; s <= shaftSteps; s++ {
		t := float64(s) / float64(shaftSteps) * arrowFrac
		col := int(math.Round(fcx + t*rx*sinA))
		row := int(math.Round(fcy - t*ry*cosA))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = shaftChar(angle)
			isArrow[row][col] = true
			tipCol = col
			tipRow = row
		}
	}

	grid[tipRow][tipCol] = arrowTip(angle)
	isArrow[tipRow][tipCol] = true

	arrowSty := lipgloss.NewStyle().Foreground(lipgloss.Color(PressureColor(pressure))).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorDimGreen)
	axisSty := lipgloss.NewStyle().Foreground(lipgloss.Color("#003300"))
	markSty := lipgloss.NewStyle().Foreground(ColorMatrixGreen).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case isArrow[row][col]:
				sb.WriteString(arrowSty.Render(string(ch)))
			case ch >= '0' && ch <= '9', ch == '+':
				sb.WriteString(markSty.Render(string(ch)))
			case ch == ':' || ch == '.':
				sb.WriteString(axisSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func setGrid(grid [][]byte, w, h, col, row int, ch byte) {
	if col >= 0 && col < w && row >= 0 && row < h {
		grid[row][col] = ch
	}
}

func setText(grid [][]byte, w, h, col, row int, s string) {
	for i := 0; i < len(s); i++ {
		setGrid(grid, w, h, col+i, row, s[i])
	}
}

func sector8(a float64) int {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return int(math.Round(a/(math.Pi/4))) % 8
}

func ringChar(a float64) byte {
	switch sector8(a) {
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	case 3, 7:
		return '/'
	}
	return '-'
}

// shaftChar returns the line character for a given angle direction.
func shaftChar(a float64) byte {
	switch sector8(a) {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	case 3, 7: // SE, NW
		return '\\'
	}
	return '|'
}

// arrowTip returns the arrowhead character for a given angle.
func arrowTip(a float64) byte {
	switch sector8(a) {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	case 7:
		return '\\'
	}
	return '*'
}
