// Package signal converts a bearing angle and elapsed time into a synthetic
// acoustic pressure sample. The amplitude and frequency laws are illustrative
// curve shapes, not derived from acoustic theory.
package signal

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownDirectivity is returned by ParseDirectivity for unsupported names.
var ErrUnknownDirectivity = errors.New("unknown directivity")

// Directivity selects the amplitude envelope A(α).
type Directivity int

const (
	// Lobe is A(α) = 2.5·(1 + cos(2·(α−90°))) with no signal past 180°.
	Lobe Directivity = iota
	// Legacy is A(α) = 5 − 2.5·cos(2·(α−90°)), applied at every bearing.
	Legacy
)

func (d Directivity) String() string {
	switch d {
	case Lobe:
		return "lobe"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseDirectivity maps a config name to a Directivity.
func ParseDirectivity(name string) (Directivity, error) {
	switch name {
	case "lobe", "":
		return Lobe, nil
	case "legacy":
		return Legacy, nil
	}
	return Lobe, fmt.Errorf("%w: %q", ErrUnknownDirectivity, name)
}

// Pressure returns Δp = A(α)·sin(ω·t + θ) for a bearing in radians.
// The sign of the carrier is preserved. Bearings whose magnitude exceeds
// 180° produce exactly 0.
func Pressure(alphaRad, omega, t, theta float64) float64 {
	alphaDeg := math.Abs(Degrees(alphaRad))
	if alphaDeg > 180 {
		return 0
	}
	return LobeAmplitude(alphaDeg) * math.Sin(omega*t+theta)
}

// LobeAmplitude is the two-lobe envelope for a bearing in degrees. The
// absolute value is taken first so A(α) == A(−α).
func LobeAmplitude(alphaDeg float64) float64 {
	alphaDeg = math.Abs(alphaDeg)
	return 2.5 * (1 + math.Cos(Radians(2*(alphaDeg-90))))
}

// LegacyAmplitude is the envelope of the legacy directivity.
// (α−90)·180/90 doubles the offset, so both envelopes share the 2·(α−90°)
// harmonic and LegacyAmplitude == 7.5 − LobeAmplitude.
func LegacyAmplitude(alphaDeg float64) float64 {
	return 5 - 2.5*math.Cos(Radians((alphaDeg-90)*180/90))
}

// Frequency returns f = 1 − 0.5·sin(α) in Hz.
func Frequency(alphaRad float64) float64 {
	return 1.0 - 0.5*math.Sin(alphaRad)
}

// AngularFrequency converts Hz to rad/s.
func AngularFrequency(freq float64) float64 {
	return 2 * math.Pi * freq
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
