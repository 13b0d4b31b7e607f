package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonar-sim.klederson.com/internal/config"
	"sonar-sim.klederson.com/internal/signal"
	"sonar-sim.klederson.com/internal/sonar"
)

// viewport maps world metres onto a width x height cell grid.
type viewport struct {
	width, height int
	minX, maxX    float64
	minZ, maxZ    float64
}

func newViewport(width, height int) viewport {
	return viewport{
		width:  width,
		height: height,
		minX:   config.ViewMinX,
		maxX:   config.ViewMaxX,
		minZ:   config.ViewMinZ,
		maxZ:   config.ViewMaxZ,
	}
}

// cellW and cellH are the world size of one cell.
func (v viewport) cellW() float64 { return (v.maxX - v.minX) / float64(v.width) }
func (v viewport) cellH() float64 { return (v.maxZ - v.minZ) / float64(v.height) }

// world returns the world coordinate at the centre of a cell.
func (v viewport) world(col, row int) sonar.Point {
	return sonar.Point{
		X: v.minX + (float64(col)+0.5)*v.cellW(),
		Z: v.maxZ - (float64(row)+0.5)*v.cellH(),
	}
}

// cell returns the fractional cell coordinates of a world point.
func (v viewport) cell(p sonar.Point) (float64, float64) {
	return (p.X - v.minX) / v.cellW(), (v.maxZ - p.Z) / v.cellH()
}

func (v viewport) cellIndex(p sonar.Point) (int, int) {
	c, r := v.cell(p)
	return int(math.Floor(c)), int(math.Floor(r))
}

func (v viewport) inside(col, row int) bool {
	return col >= 0 && col < v.width && row >= 0 && row < v.height
}

type overlay struct {
	ch    rune
	style lipgloss.Style
}

// sceneLayers collects the sparse layers drawn above the background.
type sceneLayers struct {
	v      viewport
	labels map[int]overlay
	marks  map[int]overlay
}

func (l *sceneLayers) key(col, row int) int { return row*l.v.width + col }

func (l *sceneLayers) mark(col, row int, ch rune, st lipgloss.Style) {
	if l.v.inside(col, row) {
		l.marks[l.key(col, row)] = overlay{ch, st}
	}
}

// label writes s starting at (col, row), shifting left to stay in view.
// Cells already holding a label are not overwritten.
func (l *sceneLayers) label(col, row int, s string, st lipgloss.Style) {
	runes := []rune(s)
	if col+len(runes) > l.v.width {
		col = l.v.width - len(runes)
	}
	if col < 0 {
		col = 0
	}
	if row < 0 || row >= l.v.height {
		return
	}
	for i, r := range runes {
		c := col + i
		if c >= l.v.width {
			return
		}
		k := l.key(c, row)
		if _, taken := l.labels[k]; taken {
			continue
		}
		l.labels[k] = overlay{r, st}
	}
}

// RenderScene produces the side-view scene as a styled string.
func RenderScene(width, height int, f sonar.Frame, transponderRadius float64) string {
	if width < 10 || height < 5 {
		return ""
	}

	v := newViewport(width, height)
	g := f.Geometry
	layers := &sceneLayers{
		v:      v,
		labels: make(map[int]overlay),
		marks:  make(map[int]overlay),
	}

	beamStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(PressureColor(f.Signal.Pressure)))

	drawBearingArrow(layers, g)
	drawArcs(layers, g)
	drawHeading(layers, g, f.Direction)
	drawLabels(layers, g)

	surfaceRow := int(math.Floor((v.maxZ - 0) / v.cellH()))
	tc, tr := v.cell(g.Transponder)
	// at least one cell so the transponder is always visible
	trCols := math.Max(transponderRadius/v.cellW(), 0.5)
	trRows := math.Max(transponderRadius/v.cellH(), 0.5)

	halfLen := config.BoatLength / 2

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			k := layers.key(col, row)
			if o, ok := layers.labels[k]; ok {
				sb.WriteString(o.style.Render(string(o.ch)))
				continue
			}

			// transponder disc
			dc := (float64(col) + 0.5 - tc) / trCols
			dr := (float64(row) + 0.5 - tr) / trRows
			if dc*dc+dr*dr <= 1.0 {
				sb.WriteString(StyleTransponder.Render("O"))
				continue
			}

			p := v.world(col, row)

			// hull ellipse
			hx := (p.X - g.Boat.X) / math.Max(halfLen, v.cellW()/2)
			hz := (p.Z - g.Boat.Z) / math.Max(config.BoatHullRadius, v.cellH()/2)
			if hx*hx+hz*hz <= 1.0 {
				sb.WriteString(StyleBoat.Render("#"))
				continue
			}

			if o, ok := layers.marks[k]; ok {
				sb.WriteString(o.style.Render(string(o.ch)))
				continue
			}

			if g.BeamHalfWidth > 0 && inTriangle(p, g.Cone) {
				sb.WriteString(beamStyle.Render(":"))
				continue
			}

			switch {
			case row == surfaceRow:
				sb.WriteString(StyleSurface.Render("~"))
			case row > surfaceRow && (col*3+row*7)%11 == 0:
				sb.WriteString(StyleWater.Render("."))
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

// drawBearingArrow draws the transponder-to-boat arrow at 90% of the range.
func drawBearingArrow(l *sceneLayers, g sonar.Geometry) {
	tip := sonar.Point{X: g.Transponder.X + 0.9*g.DX, Z: g.Transponder.Z + 0.9*g.DZ}
	c0, r0 := l.v.cell(g.Transponder)
	c1, r1 := l.v.cell(tip)

	// screen-space heading, 0=north clockwise
	screen := math.Atan2(c1-c0, -(r1-r0)/config.AspectRatio)
	shaft := rune(shaftChar(screen))

	steps := int(math.Max(math.Abs(c1-c0), math.Abs(r1-r0)))
	if steps < 1 {
		steps = 1
	}
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		col := int(math.Floor(c0 + t*(c1-c0)))
		row := int(math.Floor(r0 + t*(r1-r0)))
		l.mark(col, row, shaft, StyleRange)
	}
	l.mark(int(math.Floor(c1)), int(math.Floor(r1)), rune(arrowTip(screen)), StyleRange)
}

// drawArcs marks the θ beam arc and the α bearing arc around the transponder.
// Both are scaled up to stay visible at terminal resolution.
func drawArcs(l *sceneLayers, g sonar.Geometry) {
	minR := 3 * math.Max(l.v.cellW(), l.v.cellH())
	beamR := math.Max(400, minR*1.6)
	bearingR := math.Max(300, minR)

	for _, p := range g.BeamArc(beamR, 24) {
		c, r := l.v.cellIndex(p)
		l.mark(c, r, '*', StyleBeamArc)
	}
	for _, p := range g.BearingArc(bearingR, 24) {
		c, r := l.v.cellIndex(p)
		l.mark(c, r, '.', StyleBearing)
	}
}

// drawHeading draws the direction-of-travel arrow above the hull.
func drawHeading(l *sceneLayers, g sonar.Geometry, dir sonar.Direction) {
	top := sonar.Point{X: g.Boat.X, Z: g.Boat.Z + config.BoatHullRadius + 90}
	c, r := l.v.cellIndex(top)
	_, hullTop := l.v.cellIndex(sonar.Point{X: g.Boat.X, Z: g.Boat.Z + config.BoatHullRadius})
	if r >= hullTop {
		r = hullTop - 1
	}

	length := int(math.Max(2, math.Round(700/l.v.cellW())))
	sign := dir.Sign()
	for i := 0; i < length; i++ {
		l.mark(c+sign*i, r, '=', StyleHeading)
	}
	tip := '>'
	if dir == sonar.Backward {
		tip = '<'
	}
	l.mark(c+sign*length, r, tip, StyleHeading)
}

func drawLabels(l *sceneLayers, g sonar.Geometry) {
	mc, mr := l.v.cellIndex(g.Midpoint())
	l.label(mc+2, mr, fmt.Sprintf("R = %.1f m", g.Range), StyleRange)

	tc, tr := l.v.cellIndex(g.Transponder)
	l.label(tc+3, tr, "Transponder", StyleTransponder)

	minR := 3 * math.Max(l.v.cellW(), l.v.cellH())
	arc := g.BearingArc(math.Max(300, minR), 24)
	ac, ar := l.v.cellIndex(arc[len(arc)/2])
	l.label(ac+2, ar-1, fmt.Sprintf("α = %.1f°", g.BearingDeg), StyleBearing)

	beam := g.BeamArc(math.Max(400, minR*1.6), 24)
	bc, br := l.v.cellIndex(beam[len(beam)/2])
	l.label(bc+2, br-1, fmt.Sprintf("θ = %.0f°", signal.Degrees(g.BeamHalfAngle)), StyleBeamArc)
}

// inTriangle reports whether p lies inside (or on) triangle t.
func inTriangle(p sonar.Point, t [3]sonar.Point) bool {
	d1 := cross(p, t[0], t[1])
	d2 := cross(p, t[1], t[2])
	d3 := cross(p, t[2], t[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b sonar.Point) float64 {
	return (p.X-b.X)*(a.Z-b.Z) - (a.X-b.X)*(p.Z-b.Z)
}

// RenderSceneLegend produces the legend line under the scene.
func RenderSceneLegend(width int) string {
	legend := "   " +
		StyleBoat.Render("# boat") + "  " +
		StyleTransponder.Render("O transponder") + "  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(BeamColorLoud)).Render(": beam") + "  " +
		StyleRange.Render("> range") + "  " +
		StyleBearing.Render(". α")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
