package config

import "time"

const (
	// Track
	TrackMinX   = -6000.0 // Left end of the boat track (m)
	TrackMaxX   = 6000.0  // Right end of the boat track (m)
	TrackPoints = 200     // Number of samples along the track

	// Boat
	BoatDepth      = -50.0  // Boat Z (m, negative is below the surface)
	BoatLength     = 2000.0 // Hull length, display only
	BoatHullRadius = 250.0  // Hull half-height, display only

	// Transponder
	TransponderX      = 0.0
	TransponderZ      = -5000.0
	TransponderRadius = 100.0

	// Beam
	BeamHalfAngleDeg    = 6.0  // Half-width of the detection cone
	VirtualBeamAngleDeg = 40.0 // Carrier phase offset

	// Timing
	TicksPerSecond = 30 // Nominal step rate used for t = step / TicksPerSecond
	TargetFPS      = 30 // Display refresh rate

	// Scene view (world coordinates shown in the scene panel)
	ViewMinX = -6000.0
	ViewMaxX = 6000.0
	ViewMinZ = -6000.0
	ViewMaxZ = 500.0
	// Terminal char aspect correction (chars are ~2:1 tall)
	AspectRatio = 0.5

	// Sample log
	LogMaxEntries = 36000 // 20 minutes at TicksPerSecond

	// Export
	ExportFile   = "sonar_simulation_data.csv"
	ExportFormat = "csv"

	// Readout
	HistoryLen   = 120 // Pressure samples kept for the sparkline
	GaugeFreq    = 6.0 // Gauge spring angular frequency
	GaugeDamping = 0.6
	StatusTTL    = 4 * time.Second // How long a save message stays in the status bar

	// App
	AppName    = "SONAR-SIM"
	AppVersion = "1.0"
	LogFile    = "sonar-sim.log"
)
