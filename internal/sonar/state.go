package sonar

// Direction is the sweep direction along the track.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Sign returns +1 for Forward and -1 for Backward.
func (d Direction) Sign() int {
	if d == Backward {
		return -1
	}
	return 1
}

// State is the discrete simulation state advanced by Scene.Tick.
type State struct {
	Index     int
	Direction Direction
	Paused    bool
}

// NewState returns the startup state: index 0, forward, running.
func NewState() State {
	return State{Index: 0, Direction: Forward}
}

// Pause stops advancement.
func (s State) Pause() State {
	s.Paused = true
	return s
}

// Play resumes advancement.
func (s State) Play() State {
	s.Paused = false
	return s
}

// TogglePause flips between running and paused.
func (s State) TogglePause() State {
	s.Paused = !s.Paused
	return s
}

// Restart rewinds to the start of the track, keeping the paused flag.
func (s State) Restart() State {
	s.Index = 0
	s.Direction = Forward
	return s
}

// Advance moves the index one step along a track whose last index is last,
// reversing at either end.
func (s State) Advance(last int) State {
	if last <= 0 {
		s.Index = 0
		s.Direction = Forward
		return s
	}

	if s.Direction == Forward {
		s.Index++
		if s.Index >= last {
			s.Index = last
			s.Direction = Backward
		}
	} else {
		s.Index--
		if s.Index <= 0 {
			s.Index = 0
			s.Direction = Forward
		}
	}
	return s
}
