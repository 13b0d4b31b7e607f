package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"sonar-sim.klederson.com/internal/app"
	"sonar-sim.klederson.com/internal/config"
	"sonar-sim.klederson.com/internal/console"
	"sonar-sim.klederson.com/internal/export"
	"sonar-sim.klederson.com/internal/samplelog"
	"sonar-sim.klederson.com/internal/sonar"
)

var (
	flagConfig      string
	flagPoints      int
	flagTrackMin    float64
	flagTrackMax    float64
	flagDirectivity string
	flagSigned      bool
	flagMaxEntries  int
	flagNoLog       bool
	flagExport      string
	flagFormat      string
	flagLogFile     string
	flagLogLevel    string

	flagTicks int
	flagSave  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sonar-sim",
		Short: "SONAR-SIM - Terminal sonar boat and transponder simulation",
		Long: `SONAR-SIM moves a boat back and forth along a straight track above a
submerged transponder and shows the bearing, range and received acoustic
pressure in a terminal UI.

Press Enter or Space to pause, R to restart, S to save the sample log and Q to quit.
Use the headless subcommand to print the per-step readout without a UI.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML configuration file")
	pf.IntVar(&flagPoints, "points", config.TrackPoints, "Number of positions along the track")
	pf.Float64Var(&flagTrackMin, "track-min", config.TrackMinX, "Left end of the track (m)")
	pf.Float64Var(&flagTrackMax, "track-max", config.TrackMaxX, "Right end of the track (m)")
	pf.StringVar(&flagDirectivity, "directivity", "lobe", "Directivity pattern: lobe or legacy")
	pf.BoolVar(&flagSigned, "signed", false, "Keep the signed carrier instead of rectifying it")
	pf.IntVar(&flagMaxEntries, "max-entries", config.LogMaxEntries, "Maximum number of logged samples")
	pf.BoolVar(&flagNoLog, "no-log", false, "Disable sample logging")
	pf.StringVar(&flagExport, "export", config.ExportFile, "Export file path")
	pf.StringVar(&flagFormat, "format", config.ExportFormat, "Export format: csv, sqlite or png")
	pf.StringVar(&flagLogFile, "log-file", config.LogFile, "Debug log file used by the terminal UI")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the simulation without a UI and print one block per step",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Steps to run (0 runs one full sweep)")
	headlessCmd.Flags().BoolVar(&flagSave, "save", false, "Export the sample log when done")
	rootCmd.AddCommand(headlessCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the config file, if any, and applies flags that were
// set explicitly on the command line.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Default()
	if flagConfig != "" {
		var err error
		if s, err = config.Load(flagConfig); err != nil {
			return config.Settings{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("points") {
		s.Track.Count = flagPoints
		s.Track.Points = nil
	}
	if changed("track-min") {
		s.Track.MinX = flagTrackMin
		s.Track.Points = nil
	}
	if changed("track-max") {
		s.Track.MaxX = flagTrackMax
		s.Track.Points = nil
	}
	if changed("directivity") {
		s.Signal.Directivity = flagDirectivity
	}
	if changed("signed") {
		rectify := !flagSigned
		s.Signal.Rectify = &rectify
	}
	if changed("max-entries") {
		s.Log.MaxEntries = flagMaxEntries
	}
	if changed("no-log") {
		enabled := !flagNoLog
		s.Log.Enabled = &enabled
	}
	if changed("export") {
		s.Export.Path = flagExport
	}
	if changed("format") {
		s.Export.Format = flagFormat
	}
	if changed("log-file") {
		s.Settings.LogFile = flagLogFile
	}
	if changed("log-level") {
		s.Settings.LogLevel = flagLogLevel
	}

	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func newLogger(s config.Settings, w *os.File) (*slog.Logger, error) {
	var level slog.LevelVar
	if err := level.UnmarshalText([]byte(s.Settings.LogLevel)); err != nil {
		return nil, fmt.Errorf("settings.logLevel: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level})), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(s.Export.Format)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(s.Settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(s, logFile)
	if err != nil {
		return err
	}

	model, err := app.New(app.Options{
		Settings:   s,
		ExportPath: s.Export.Path,
		Format:     format,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "steps", model.Stepper().Scene().Track.Len(),
		"directivity", s.Signal.Directivity, "log", s.LogEnabled())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(s.Export.Format)
	if err != nil {
		return err
	}

	logger, err := newLogger(s, os.Stderr)
	if err != nil {
		return err
	}

	scene, err := sonar.NewScene(s)
	if err != nil {
		return err
	}
	sl := samplelog.New(samplelog.Options{Enabled: s.LogEnabled(), MaxEntries: s.Log.MaxEntries})
	stepper := sonar.NewStepper(scene, sl)

	ticks := flagTicks
	if ticks <= 0 {
		ticks = scene.Track.Len()
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	printer := console.NewPrinter(cmd.OutOrStdout())
	var printErr error
	runErr := stepper.Run(ctx, ticks, func(f sonar.Frame) {
		if printErr == nil {
			printErr = printer.Print(f)
		}
	})
	if printErr != nil {
		return fmt.Errorf("writing console output: %w", printErr)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	logger.Info("run finished", "ticks", stepper.Ticks(), "logged", sl.Len(), "dropped", sl.Dropped())

	if !flagSave {
		return nil
	}
	if !sl.Enabled() {
		return errors.New("cannot save: sample logging is disabled")
	}

	res, err := export.Save(context.Background(), format, s.Export.Path, sl.Entries())
	if err != nil {
		logger.Error("export failed", "path", s.Export.Path, "err", err)
		return err
	}
	logger.Info(fmt.Sprintf("saved %s rows (%s)", humanize.Comma(int64(res.Rows)), humanize.Bytes(uint64(res.Bytes))),
		"path", res.Path, "format", res.Format)
	return nil
}
