package samplelog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sonar-sim.klederson.com/internal/signal"
	"sonar-sim.klederson.com/internal/sonar"
)

func TestRing_KeepsNewestInOrder(t *testing.T) {
	t.Parallel()

	r := NewRing[int](3)
	_, ok := r.Last()
	assert.False(t, ok)
	assert.Nil(t, r.Values())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []int{1, 2}, r.Values())

	r.Push(3)
	r.Push(4)
	r.Push(5)
	assert.Equal(t, []int{3, 4, 5}, r.Values())
	assert.Equal(t, 3, r.Len())
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, last)

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 3, r.Cap())
}

func TestRing_MinimumCapacity(t *testing.T) {
	t.Parallel()

	r := NewRing[string](0)
	r.Push("a")
	r.Push("b")
	assert.Equal(t, []string{"b"}, r.Values())
}

func TestLog_Bounded(t *testing.T) {
	t.Parallel()

	l := New(Options{Enabled: true, MaxEntries: 4})
	for i := 0; i < 10; i++ {
		l.Append(Entry{Time: float64(i)})
	}
	entries := l.Entries()
	assert.Len(t, entries, 4)
	assert.Equal(t, 6.0, entries[0].Time)
	assert.Equal(t, 9.0, entries[3].Time)
	assert.Equal(t, uint64(6), l.Dropped())
	assert.Equal(t, uint64(10), l.Total())
}

func TestLog_Disabled(t *testing.T) {
	t.Parallel()

	l := New(Options{Enabled: false, MaxEntries: 4})
	l.Append(Entry{Time: 1})
	assert.False(t, l.Enabled())
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Entries())
}

func TestLog_RecordsStepperFrames(t *testing.T) {
	t.Parallel()

	track, err := sonar.TrackFromPoints([]float64{-100, -50, 0, 50, 100})
	assert.NoError(t, err)
	scene := sonar.Scene{
		Track:          track,
		Transponder:    sonar.Transponder{Position: sonar.Point{X: 0, Z: -1000}},
		BoatDepth:      -10,
		BeamHalfAngle:  signal.Radians(6),
		TicksPerSecond: 30,
		Model:          signal.NewModel(40),
	}

	l := New(Options{Enabled: true, MaxEntries: 100})
	st := sonar.NewStepper(scene, l)
	for i := 0; i < 3; i++ {
		st.Step()
	}

	entries := l.Entries()
	assert.Len(t, entries, 3)
	e := entries[2]
	assert.Equal(t, 0.0, e.BoatX)
	assert.InDelta(t, 990.0, e.Range, 1e-9)
	assert.InDelta(t, 90.0, e.BearingDeg, 1e-9)
	assert.InDelta(t, 0.5, e.Frequency, 1e-9)
	assert.InDelta(t, 2.0/30, e.Time, 1e-12)
	assert.Equal(t, -100.0, entries[0].BoatX)
}
