// Package samplelog keeps the per-tick samples collected for export.
package samplelog

import "sonar-sim.klederson.com/internal/sonar"

// Entry is one logged tick.
type Entry struct {
	Time       float64 // s
	Pressure   float64 // Pa
	BearingDeg float64
	Frequency  float64 // Hz
	Range      float64 // m
	BoatX      float64 // m, signed
}

// FromFrame flattens a frame into a log entry.
func FromFrame(f sonar.Frame) Entry {
	return Entry{
		Time:       f.Signal.Time,
		Pressure:   f.Signal.Pressure,
		BearingDeg: f.Geometry.BearingDeg,
		Frequency:  f.Signal.Frequency,
		Range:      f.Geometry.Range,
		BoatX:      f.Geometry.Boat.X,
	}
}

// Options controls collection.
type Options struct {
	Enabled    bool
	MaxEntries int
}

// Log is an append-only sample log bounded to MaxEntries; once full the
// oldest entries are dropped. Not safe for concurrent use.
type Log struct {
	enabled bool
	ring    *Ring[Entry]
	dropped uint64
	total   uint64
}

// New creates a log. A disabled log ignores appends.
func New(opts Options) *Log {
	l := &Log{enabled: opts.Enabled}
	if opts.Enabled {
		l.ring = NewRing[Entry](opts.MaxEntries)
	}
	return l
}

// Append records an entry.
func (l *Log) Append(e Entry) {
	if !l.enabled {
		return
	}
	if l.ring.Len() == l.ring.Cap() {
		l.dropped++
	}
	l.ring.Push(e)
	l.total++
}

// Record appends the entry for a frame.
func (l *Log) Record(f sonar.Frame) {
	l.Append(FromFrame(f))
}

// Entries returns a chronological copy of the retained entries.
func (l *Log) Entries() []Entry {
	if !l.enabled {
		return nil
	}
	return l.ring.Values()
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	if !l.enabled {
		return 0
	}
	return l.ring.Len()
}

// Enabled reports whether entries are collected.
func (l *Log) Enabled() bool {
	return l.enabled
}

// Dropped returns how many entries were evicted by the size cap.
func (l *Log) Dropped() uint64 {
	return l.dropped
}

// Total returns how many entries were ever appended.
func (l *Log) Total() uint64 {
	return l.total
}
