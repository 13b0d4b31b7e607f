package sonar

import "errors"

// ErrEmptyTrack is returned when a track would have no positions.
var ErrEmptyTrack = errors.New("track needs at least one position")

// Track is the fixed, ordered list of boat X positions (m).
type Track struct {
	xs []float64
}

// NewTrack returns n evenly spaced positions from minX to maxX inclusive.
// A single-point track holds minX.
func NewTrack(minX, maxX float64, n int) (Track, error) {
	if n < 1 {
		return Track{}, ErrEmptyTrack
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = minX
		return Track{xs: xs}, nil
	}
	step := (maxX - minX) / float64(n-1)
	for i := range xs {
		xs[i] = minX + float64(i)*step
	}
	xs[n-1] = maxX
	return Track{xs: xs}, nil
}

// TrackFromPoints builds a track from explicit positions. The slice is copied.
func TrackFromPoints(xs []float64) (Track, error) {
	if len(xs) == 0 {
		return Track{}, ErrEmptyTrack
	}
	cp := make([]float64, len(xs))
	copy(cp, xs)
	return Track{xs: cp}, nil
}

// Len returns the number of positions.
func (t Track) Len() int {
	return len(t.xs)
}

// At returns the position at index i, clamped to the track bounds.
func (t Track) At(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(t.xs) {
		i = len(t.xs) - 1
	}
	return t.xs[i]
}

// Last returns the final valid index.
func (t Track) Last() int {
	return len(t.xs) - 1
}
