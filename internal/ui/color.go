package ui

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxPressure is the largest amplitude either directivity pattern produces.
const MaxPressure = 7.5

// Blend mixes two hex colors in Lab space; t is clamped to [0, 1].
func Blend(fromHex, toHex string, t float64) string {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return toHex
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return fromHex
	}
	t = math.Max(0, math.Min(1, t))
	return from.BlendLab(to, t).Clamped().Hex()
}

// PressureColor maps a pressure magnitude to the beam tint.
func PressureColor(p float64) string {
	return Blend(BeamColorQuiet, BeamColorLoud, math.Abs(p)/MaxPressure)
}
