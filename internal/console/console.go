// Package console prints the human-readable per-tick status block.
package console

import (
	"fmt"
	"io"
	"math"
	"strings"

	"sonar-sim.klederson.com/internal/sonar"
)

const separator = "--------------------------------------------------"

// Block formats the status block for a frame.
func Block(f sonar.Frame) string {
	g, s := f.Geometry, f.Signal

	var sb strings.Builder
	fmt.Fprintf(&sb, "Step %d/%d:\n", f.Step+1, f.Steps)
	fmt.Fprintf(&sb, "    Boat X Position       : %.2f\n", math.Abs(g.Boat.X))
	fmt.Fprintf(&sb, "    Beam Angle α (deg)    : %.2f\n", g.BearingDeg)
	fmt.Fprintf(&sb, "    Frequency f (Hz)      : %.2f\n", s.Frequency)
	fmt.Fprintf(&sb, "    Amplitude A_m(α)      : %.4f\n", s.Amplitude)
	fmt.Fprintf(&sb, "    Range (Distance)      : %.2f m\n", g.Range)
	fmt.Fprintf(&sb, "    Acoustic Pressure (Δp): %.4f\n", s.Pressure)
	sb.WriteString(separator)
	sb.WriteByte('\n')
	return sb.String()
}

// Printer writes one block per frame.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the block for f.
func (p *Printer) Print(f sonar.Frame) error {
	_, err := io.WriteString(p.w, Block(f))
	return err
}
