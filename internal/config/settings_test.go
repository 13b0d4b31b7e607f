package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sonar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	s, err := Load(writeTempConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, TrackMinX, s.Track.MinX)
	assert.Equal(t, TrackMaxX, s.Track.MaxX)
	assert.Equal(t, TrackPoints, s.Track.Count)
	assert.Equal(t, BoatDepth, *s.Boat.Depth)
	assert.Equal(t, TransponderZ, *s.Transponder.Z)
	assert.Equal(t, "lobe", s.Signal.Directivity)
	assert.True(t, *s.Signal.Rectify)
	assert.Equal(t, VirtualBeamAngleDeg, *s.Signal.PhaseDeg)
	assert.Equal(t, BeamHalfAngleDeg, s.Signal.BeamAngleDeg)
	assert.True(t, s.LogEnabled())
	assert.Equal(t, LogMaxEntries, s.Log.MaxEntries)
	assert.Equal(t, ExportFile, s.Export.Path)
	assert.Equal(t, "csv", s.Export.Format)
	assert.Equal(t, "info", s.Settings.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeTempConfig(t, `
track:
  points: [-100, -50, 0, 50, 100]
boat:
  depth: -10
transponder:
  x: 0
  z: -1000
signal:
  directivity: legacy
  rectify: false
  phase_deg: 0
log:
  enabled: false
export:
  path: out.db
  format: sqlite
settings:
  logLevel: debug
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{-100, -50, 0, 50, 100}, s.Track.Points)
	assert.Equal(t, -10.0, *s.Boat.Depth)
	assert.Equal(t, -1000.0, *s.Transponder.Z)
	assert.Equal(t, "legacy", s.Signal.Directivity)
	assert.False(t, *s.Signal.Rectify)
	assert.Equal(t, 0.0, *s.Signal.PhaseDeg)
	assert.False(t, s.LogEnabled())
	assert.Equal(t, "sqlite", s.Export.Format)
	assert.Equal(t, "debug", s.Settings.LogLevel)
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"NegativeCount", "track:\n  count: -3\n", "track.count must be >= 1"},
		{"ReversedTrack", "track:\n  min_x: 10\n  max_x: -10\n", "track.max_x must be >= track.min_x"},
		{"WideBeam", "signal:\n  beam_angle_deg: 95\n", "signal.beam_angle_deg must be < 90"},
		{"Directivity", "signal:\n  directivity: cardioid\n", "signal.directivity must be one of lobe, legacy"},
		{"MaxEntries", "log:\n  max_entries: -1\n", "log.max_entries must be > 0"},
		{"Format", "export:\n  format: xlsx\n", "export.format must be one of csv, sqlite, png"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, c.yaml))
			require.EqualError(t, err, c.want)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")

	_, err = Load(writeTempConfig(t, "track: [\n"))
	require.ErrorContains(t, err, "parse config")
}

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
