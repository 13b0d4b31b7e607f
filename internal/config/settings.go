package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the runtime configuration. Zero values are replaced by the
// compiled-in defaults when loaded.
type Settings struct {
	Track       TrackSettings       `yaml:"track"`
	Boat        BoatSettings        `yaml:"boat"`
	Transponder TransponderSettings `yaml:"transponder"`
	Signal      SignalSettings      `yaml:"signal"`
	Log         LogSettings         `yaml:"log"`
	Export      ExportSettings      `yaml:"export"`
	Settings    AppSettings         `yaml:"settings"`
}

type TrackSettings struct {
	MinX   float64   `yaml:"min_x"`
	MaxX   float64   `yaml:"max_x"`
	Count  int       `yaml:"count"`
	Points []float64 `yaml:"points"` // explicit positions, overrides min/max/count
}

type BoatSettings struct {
	Depth *float64 `yaml:"depth"`
}

type TransponderSettings struct {
	X      *float64 `yaml:"x"`
	Z      *float64 `yaml:"z"`
	Radius float64  `yaml:"radius"`
}

type SignalSettings struct {
	Directivity  string   `yaml:"directivity"` // lobe or legacy
	Rectify      *bool    `yaml:"rectify"`
	PhaseDeg     *float64 `yaml:"phase_deg"`
	BeamAngleDeg float64  `yaml:"beam_angle_deg"`
}

type LogSettings struct {
	Enabled    *bool `yaml:"enabled"`
	MaxEntries int   `yaml:"max_entries"`
}

type ExportSettings struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // csv, sqlite or png
}

type AppSettings struct {
	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	var s Settings
	s.applyDefaults()
	return s
}

// Load reads a YAML settings file, applies defaults and validates the result.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Track.MinX == 0 && s.Track.MaxX == 0 {
		s.Track.MinX = TrackMinX
		s.Track.MaxX = TrackMaxX
	}
	if s.Track.Count == 0 {
		s.Track.Count = TrackPoints
	}
	if s.Boat.Depth == nil {
		s.Boat.Depth = ptr(BoatDepth)
	}
	if s.Transponder.X == nil {
		s.Transponder.X = ptr(TransponderX)
	}
	if s.Transponder.Z == nil {
		s.Transponder.Z = ptr(TransponderZ)
	}
	if s.Transponder.Radius <= 0 {
		s.Transponder.Radius = TransponderRadius
	}
	if s.Signal.Directivity == "" {
		s.Signal.Directivity = "lobe"
	}
	if s.Signal.Rectify == nil {
		s.Signal.Rectify = ptr(true)
	}
	if s.Signal.PhaseDeg == nil {
		s.Signal.PhaseDeg = ptr(VirtualBeamAngleDeg)
	}
	if s.Signal.BeamAngleDeg <= 0 {
		s.Signal.BeamAngleDeg = BeamHalfAngleDeg
	}
	if s.Log.Enabled == nil {
		s.Log.Enabled = ptr(true)
	}
	if s.Log.MaxEntries == 0 {
		s.Log.MaxEntries = LogMaxEntries
	}
	if s.Export.Path == "" {
		s.Export.Path = ExportFile
	}
	if s.Export.Format == "" {
		s.Export.Format = ExportFormat
	}
	if s.Settings.LogLevel == "" {
		s.Settings.LogLevel = "info"
	}
	if s.Settings.LogFile == "" {
		s.Settings.LogFile = LogFile
	}
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if len(s.Track.Points) == 0 {
		if s.Track.Count < 1 {
			return fmt.Errorf("track.count must be >= 1")
		}
		if s.Track.MaxX < s.Track.MinX {
			return fmt.Errorf("track.max_x must be >= track.min_x")
		}
	}
	if s.Signal.BeamAngleDeg >= 90 {
		return fmt.Errorf("signal.beam_angle_deg must be < 90")
	}
	switch s.Signal.Directivity {
	case "lobe", "legacy":
	default:
		return fmt.Errorf("signal.directivity must be one of lobe, legacy")
	}
	if s.Log.MaxEntries < 0 {
		return fmt.Errorf("log.max_entries must be > 0")
	}
	switch s.Export.Format {
	case "csv", "sqlite", "png":
	default:
		return fmt.Errorf("export.format must be one of csv, sqlite, png")
	}
	return nil
}

// LogEnabled reports whether samples are collected.
func (s Settings) LogEnabled() bool {
	return s.Log.Enabled == nil || *s.Log.Enabled
}

func ptr[T any](v T) *T {
	return &v
}
