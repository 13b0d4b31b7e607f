package sonar

import "context"

// Intent is a user request applied at the start of the next Step.
type Intent int

const (
	IntentTogglePause Intent = iota
	IntentPause
	IntentPlay
	IntentRestart
)

func (i Intent) String() string {
	switch i {
	case IntentTogglePause:
		return "toggle-pause"
	case IntentPause:
		return "pause"
	case IntentPlay:
		return "play"
	case IntentRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Recorder receives every frame produced while running.
type Recorder interface {
	Record(Frame)
}

// Stepper owns the simulation state and drives a Scene one tick at a time.
// It is meant to be used from a single goroutine: UI callbacks enqueue
// intents, the driver loop calls Step.
type Stepper struct {
	scene    Scene
	state    State
	pending  []Intent
	recorder Recorder
	last     Frame
	hasLast  bool
	ticks    uint64
}

// NewStepper creates a stepper at the startup state. rec may be nil.
func NewStepper(scene Scene, rec Recorder) *Stepper {
	return &Stepper{
		scene:    scene,
		state:    NewState(),
		recorder: rec,
	}
}

// Enqueue queues an intent for the next Step.
func (s *Stepper) Enqueue(in Intent) {
	s.pending = append(s.pending, in)
}

// Step applies pending intents in order, then advances one tick unless
// paused. It returns the newly computed frame and true, or the last frame
// and false when paused.
func (s *Stepper) Step() (Frame, bool) {
	s.applyIntents()

	if s.state.Paused {
		if !s.hasLast {
			s.last = s.scene.Frame(s.state)
			s.hasLast = true
		}
		return s.last, false
	}

	next, f := s.scene.Tick(s.state)
	s.state = next
	s.last = f
	s.hasLast = true
	s.ticks++

	if s.recorder != nil {
		s.recorder.Record(f)
	}
	return f, true
}

// Run steps until n frames have been produced (n <= 0 means no limit) or
// ctx is done, calling fn for each produced frame. A paused stepper makes no
// progress, so Run returns once the queue leaves it paused.
func (s *Stepper) Run(ctx context.Context, n int, fn func(Frame)) error {
	for produced := 0; n <= 0 || produced < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, ok := s.Step()
		if !ok {
			return nil
		}
		produced++
		if fn != nil {
			fn(f)
		}
	}
	return nil
}

func (s *Stepper) applyIntents() {
	for _, in := range s.pending {
		switch in {
		case IntentTogglePause:
			s.state = s.state.TogglePause()
		case IntentPause:
			s.state = s.state.Pause()
		case IntentPlay:
			s.state = s.state.Play()
		case IntentRestart:
			s.state = s.state.Restart()
			s.hasLast = false
		}
	}
	s.pending = s.pending[:0]
}

// State returns the current state.
func (s *Stepper) State() State {
	return s.state
}

// Paused reports whether the stepper is paused, including intents not yet
// applied.
func (s *Stepper) Paused() bool {
	p := s.state.Paused
	for _, in := range s.pending {
		switch in {
		case IntentTogglePause:
			p = !p
		case IntentPause:
			p = true
		case IntentPlay:
			p = false
		}
	}
	return p
}

// Last returns the most recent frame, computing the current one if nothing
// has been stepped yet.
func (s *Stepper) Last() Frame {
	if !s.hasLast {
		return s.scene.Frame(s.state)
	}
	return s.last
}

// Ticks returns the number of frames produced.
func (s *Stepper) Ticks() uint64 {
	return s.ticks
}

// Scene returns the stepper's scene.
func (s *Stepper) Scene() Scene {
	return s.scene
}
