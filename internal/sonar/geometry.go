package sonar

import (
	"math"

	"sonar-sim.klederson.com/internal/signal"
)

// Point is a position in the X (along track) / Z (depth) plane, metres.
type Point struct {
	X, Z float64
}

// Transponder is the fixed seabed fixture.
type Transponder struct {
	Position Point
	Radius   float64 // display only
}

// Geometry is the derived boat/transponder relationship for one tick.
type Geometry struct {
	Boat        Point
	Transponder Point
	DX, DZ      float64
	Range       float64
	BearingRad  float64 // atan2(dz, dx), in (−π, π]
	BearingDeg  float64 // normalized to [0, 360)

	BeamHalfAngle float64 // radians
	BeamHalfWidth float64 // cone half-width at the boat's depth, metres
	Cone          [3]Point
}

// ComputeGeometry derives range, bearing and the beam cone from the boat and
// transponder positions.
func ComputeGeometry(boat, transponder Point, beamHalfAngle float64) Geometry {
	dx := boat.X - transponder.X
	dz := boat.Z - transponder.Z
	rng := math.Hypot(dx, dz)
	halfWidth := rng * math.Tan(beamHalfAngle)
	alpha := math.Atan2(dz, dx)

	return Geometry{
		Boat:          boat,
		Transponder:   transponder,
		DX:            dx,
		DZ:            dz,
		Range:         rng,
		BearingRad:    alpha,
		BearingDeg:    NormalizeDegrees(signal.Degrees(alpha)),
		BeamHalfAngle: beamHalfAngle,
		BeamHalfWidth: halfWidth,
		Cone: [3]Point{
			transponder,
			{X: boat.X - halfWidth, Z: boat.Z},
			{X: boat.X + halfWidth, Z: boat.Z},
		},
	}
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// −1e-14 + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// BeamArc returns n points on a circle of the given radius around the
// transponder spanning ±BeamHalfAngle about the bearing.
func (g Geometry) BeamArc(radius float64, n int) []Point {
	return g.arc(radius, n, g.BearingRad-g.BeamHalfAngle, g.BearingRad+g.BeamHalfAngle)
}

// BearingArc returns n points sweeping from the +X axis to the bearing.
func (g Geometry) BearingArc(radius float64, n int) []Point {
	return g.arc(radius, n, 0, g.BearingRad)
}

// Midpoint is the centre of the boat-transponder segment, where the range
// label sits.
func (g Geometry) Midpoint() Point {
	return Point{
		X: (g.Boat.X + g.Transponder.X) / 2,
		Z: (g.Boat.Z + g.Transponder.Z) / 2,
	}
}

func (g Geometry) arc(radius float64, n int, from, to float64) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := range pts {
		a := from + (to-from)*float64(i)/float64(n-1)
		pts[i] = Point{
			X: g.Transponder.X + radius*math.Cos(a),
			Z: g.Transponder.Z + radius*math.Sin(a),
		}
	}
	return pts
}
