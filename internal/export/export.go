// Package export writes the sample log to disk.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"sonar-sim.klederson.com/internal/samplelog"
)

var (
	// ErrUnknownFormat is returned for unsupported export formats.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrEmptyLog is returned by exporters that need at least one sample.
	ErrEmptyLog = errors.New("sample log is empty")
)

// Columns is the export column order. It is the single source of truth for
// the CSV header and the PNG legend.
var Columns = []string{
	"Time (s)",
	"Acoustic Pressure (Δp)",
	"Beam Angle (°)",
	"Frequency (Hz)",
	"Range (m)",
	"Boat X Position (m)",
}

// Format identifies an output format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
	FormatPNG    Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatCSV, FormatSQLite, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Exporter writes a full set of entries to path, replacing any existing file.
type Exporter interface {
	Export(ctx context.Context, path string, entries []samplelog.Entry) error
}

// Result describes a completed export.
type Result struct {
	Path   string
	Format Format
	Rows   int
	Bytes  int64
}

// New returns the exporter for a format.
func New(f Format) (Exporter, error) {
	switch f {
	case FormatCSV:
		return CSVExporter{}, nil
	case FormatSQLite:
		return SQLiteExporter{}, nil
	case FormatPNG:
		return NewPNGExporter(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save exports entries in the given format and stats the written file.
func Save(ctx context.Context, f Format, path string, entries []samplelog.Entry) (Result, error) {
	exp, err := New(f)
	if err != nil {
		return Result{}, err
	}
	if err := exp.Export(ctx, path, entries); err != nil {
		return Result{}, fmt.Errorf("exporting %s to %s: %w", f, path, err)
	}

	res := Result{Path: path, Format: f, Rows: len(entries)}
	if fi, err := os.Stat(path); err == nil {
		res.Bytes = fi.Size()
	}
	return res, nil
}

// Row returns the values of one entry in column order.
func Row(e samplelog.Entry) []float64 {
	return []float64{e.Time, e.Pressure, e.BearingDeg, e.Frequency, e.Range, e.BoatX}
}
