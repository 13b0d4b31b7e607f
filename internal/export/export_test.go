package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonar-sim.klederson.com/internal/samplelog"
	"sonar-sim.klederson.com/internal/signal"
	"sonar-sim.klederson.com/internal/sonar"
)

// fiveStepLog runs the five point track once across and returns the log.
func fiveStepLog(t *testing.T) []samplelog.Entry {
	t.Helper()
	track, err := sonar.TrackFromPoints([]float64{-100, -50, 0, 50, 100})
	require.NoError(t, err)
	scene := sonar.Scene{
		Track:          track,
		Transponder:    sonar.Transponder{Position: sonar.Point{X: 0, Z: -1000}},
		BoatDepth:      -10,
		BeamHalfAngle:  signal.Radians(6),
		TicksPerSecond: 30,
		Model:          signal.NewModel(40),
	}
	l := samplelog.New(samplelog.Options{Enabled: true, MaxEntries: 100})
	st := sonar.NewStepper(scene, l)
	for i := 0; i < 5; i++ {
		st.Step()
	}
	return l.Entries()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("SQLite")
	require.NoError(t, err)
	assert.Equal(t, FormatSQLite, f)

	_, err = ParseFormat("xlsx")
	require.ErrorIs(t, err, ErrUnknownFormat)
	_, err = New(Format("xlsx"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCSV_EndToEndRow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that must be replaced\n"), 0o644))

	entries := fiveStepLog(t)
	res, err := Save(context.Background(), FormatCSV, path, entries)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rows)
	assert.Positive(t, res.Bytes)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, Columns, records[0])

	row := records[3] // tick at index 2
	rng, err := strconv.ParseFloat(row[4], 64)
	require.NoError(t, err)
	assert.Equal(t, 990.0, rng)
	assert.Equal(t, "0", row[5])

	angle, err := strconv.ParseFloat(row[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, angle, 1e-9)

	assert.Equal(t, "-100", records[1][5])
	assert.Equal(t, "0", records[1][0])
}

func TestCSV_EmptyLogWritesHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, CSVExporter{}.Export(context.Background(), path, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Columns, ",")+"\n", string(b))
}

func TestCSV_CreateFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	_, err := Save(context.Background(), FormatCSV, path, fiveStepLog(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSQLite_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.db")
	entries := fiveStepLog(t)

	err := SQLiteExporter{SessionID: "session-1"}.Export(context.Background(), path, entries)
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)

	// exporting again replaces the database
	require.NoError(t, SQLiteExporter{SessionID: "session-2"}.Export(context.Background(), path, entries))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var sessions, rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&sessions))
	require.NoError(t, db.QueryRow(`SELECT row_count FROM sessions WHERE id = 'session-2'`).Scan(&rows))
	assert.Equal(t, 1, sessions)
	assert.Equal(t, 5, rows)

	var rng, boatX float64
	require.NoError(t, db.QueryRow(`SELECT range_m, boat_x_m FROM samples WHERE seq = 2`).Scan(&rng, &boatX))
	assert.InDelta(t, 990.0, rng, 1e-9)
	assert.Equal(t, 0.0, boatX)
}

func TestPNG_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plot.png")
	res, err := Save(context.Background(), FormatPNG, path, fiveStepLog(t))
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, res.Format)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, plotWidth, cfg.Width)
	assert.Equal(t, plotHeight, cfg.Height)

	err = NewPNGExporter().Export(context.Background(), path, nil)
	require.ErrorIs(t, err, ErrEmptyLog)
}
