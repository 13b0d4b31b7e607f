package sonar

import (
	"fmt"

	"sonar-sim.klederson.com/internal/config"
	"sonar-sim.klederson.com/internal/signal"
)

// Frame is everything needed to render, log and print one tick.
type Frame struct {
	Step      int // track index the frame was computed at
	Steps     int // track length
	Direction Direction
	Geometry  Geometry
	Signal    signal.Sample
}

// Scene holds the immutable parts of the simulation.
type Scene struct {
	Track          Track
	Transponder    Transponder
	BoatDepth      float64
	BeamHalfAngle  float64 // radians
	TicksPerSecond float64
	Model          signal.Model
}

// NewScene builds a Scene from settings.
func NewScene(s config.Settings) (Scene, error) {
	var (
		track Track
		err   error
	)
	if len(s.Track.Points) > 0 {
		track, err = TrackFromPoints(s.Track.Points)
	} else {
		track, err = NewTrack(s.Track.MinX, s.Track.MaxX, s.Track.Count)
	}
	if err != nil {
		return Scene{}, fmt.Errorf("building track: %w", err)
	}

	dir, err := signal.ParseDirectivity(s.Signal.Directivity)
	if err != nil {
		return Scene{}, err
	}

	model := signal.NewModel(*s.Signal.PhaseDeg)
	model.Directivity = dir
	model.Rectify = *s.Signal.Rectify

	return Scene{
		Track: track,
		Transponder: Transponder{
			Position: Point{X: *s.Transponder.X, Z: *s.Transponder.Z},
			Radius:   s.Transponder.Radius,
		},
		BoatDepth:      *s.Boat.Depth,
		BeamHalfAngle:  signal.Radians(s.Signal.BeamAngleDeg),
		TicksPerSecond: config.TicksPerSecond,
		Model:          model,
	}, nil
}

// Frame computes the frame for the given state without advancing it.
func (sc Scene) Frame(st State) Frame {
	boat := Point{X: sc.Track.At(st.Index), Z: sc.BoatDepth}
	geo := ComputeGeometry(boat, sc.Transponder.Position, sc.BeamHalfAngle)

	tps := sc.TicksPerSecond
	if tps <= 0 {
		tps = config.TicksPerSecond
	}
	t := float64(st.Index) / tps

	// The normalized bearing is used so positions below the transponder
	// (180° < α < 360°) fall outside the lobe model's azimuth range.
	return Frame{
		Step:      st.Index,
		Steps:     sc.Track.Len(),
		Direction: st.Direction,
		Geometry:  geo,
		Signal:    sc.Model.Evaluate(signal.Radians(geo.BearingDeg), t),
	}
}

// Tick evaluates the frame at st and returns the state advanced by one step.
// The paused flag is not consulted; drivers decide whether to tick.
func (sc Scene) Tick(st State) (State, Frame) {
	f := sc.Frame(st)
	return st.Advance(sc.Track.Last()), f
}
