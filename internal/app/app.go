package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"sonar-sim.klederson.com/internal/config"
	"sonar-sim.klederson.com/internal/console"
	"sonar-sim.klederson.com/internal/export"
	"sonar-sim.klederson.com/internal/samplelog"
	"sonar-sim.klederson.com/internal/sonar"
	"sonar-sim.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	stepper *sonar.Stepper
	log     *samplelog.Log
	history *samplelog.Ring[float64]
	gauge   *ui.Gauge
	logger  *slog.Logger
}

// Options configures the interactive model.
type Options struct {
	Settings   config.Settings
	ExportPath string
	Format     export.Format
	Logger     *slog.Logger
}

// AppModel is the root Bubble Tea model for the sonar simulation.
type AppModel struct {
	width  int
	height int

	exportPath  string
	format      export.Format
	directivity string
	txRadius    float64

	saving    bool
	status    string
	statusErr bool
	statusSeq int

	shared *shared

	// Cached for View
	frame sonar.Frame
}

// New creates a new AppModel from validated settings.
func New(opts Options) (AppModel, error) {
	scene, err := sonar.NewScene(opts.Settings)
	if err != nil {
		return AppModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sl := samplelog.New(samplelog.Options{
		Enabled:    opts.Settings.LogEnabled(),
		MaxEntries: opts.Settings.Log.MaxEntries,
	})
	stepper := sonar.NewStepper(scene, sl)

	return AppModel{
		exportPath:  opts.ExportPath,
		format:      opts.Format,
		directivity: scene.Model.Directivity.String(),
		txRadius:    scene.Transponder.Radius,
		shared: &shared{
			stepper: stepper,
			log:     sl,
			history: samplelog.NewRing[float64](config.HistoryLen),
			gauge:   ui.NewGauge(config.TargetFPS, config.GaugeFreq, config.GaugeDamping),
			logger:  logger,
		},
		frame: stepper.Last(),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.step()
		return m, tickCmd()

	case SavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.shared.logger.Error("export failed", "path", m.exportPath, "format", m.format, "err", msg.Err)
			return m.setStatus(fmt.Sprintf("Save failed: %v", msg.Err), true)
		}
		m.shared.logger.Info("export written",
			"path", msg.Result.Path, "format", msg.Result.Format,
			"rows", msg.Result.Rows, "bytes", msg.Result.Bytes)
		return m.setStatus(fmt.Sprintf("Saved %s rows to %s (%s)",
			humanize.Comma(int64(msg.Result.Rows)), msg.Result.Path,
			humanize.Bytes(uint64(msg.Result.Bytes))), false)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// step advances the simulation one tick and refreshes the cached frame.
func (m *AppModel) step() {
	f, advanced := m.shared.stepper.Step()
	m.frame = f
	if advanced {
		m.shared.history.Push(f.Signal.Pressure)
		m.shared.logger.Debug("tick\n" + console.Block(f))
	}
	m.shared.gauge.Update(f.Signal.Pressure)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "enter", " ":
		m.shared.stepper.Enqueue(sonar.IntentTogglePause)

	case "r", "R":
		m.shared.stepper.Enqueue(sonar.IntentRestart)

	case "s", "S":
		return m.save()
	}

	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	id, ok := ui.ButtonAt(msg.X, msg.Y, m.shared.stepper.Paused())
	if !ok {
		return m, nil
	}
	switch id {
	case ui.ButtonRestart:
		m.shared.stepper.Enqueue(sonar.IntentRestart)
	case ui.ButtonPausePlay:
		m.shared.stepper.Enqueue(sonar.IntentTogglePause)
	case ui.ButtonSave:
		return m.save()
	}
	return m, nil
}

// save snapshots the log on the update goroutine and writes it in a command.
func (m AppModel) save() (tea.Model, tea.Cmd) {
	if !m.shared.log.Enabled() {
		return m.setStatus("Sample logging is disabled", true)
	}
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.status = fmt.Sprintf("Saving %s...", m.exportPath)
	m.statusErr = false

	entries := m.shared.log.Entries()
	path, format := m.exportPath, m.format
	return m, func() tea.Msg {
		res, err := export.Save(context.Background(), format, path, entries)
		return SavedMsg{Result: res, Err: err}
	}
}

func (m AppModel) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return m, tea.Tick(config.StatusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing sonar simulation..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	sceneW := m.width * 2 / 3
	if sceneW < 30 {
		sceneW = 30
	}
	readoutW := m.width - sceneW
	if readoutW < 24 {
		readoutW = 24
		sceneW = m.width - readoutW
	}

	paused := m.shared.stepper.Paused()
	menuBar := ui.RenderMenuBar(m.width, paused, m.directivity)

	innerW := sceneW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	sceneContent := ui.RenderScene(innerW, innerH, m.frame, m.txRadius)
	legend := ui.RenderSceneLegend(innerW)
	scenePanel := ui.RenderScenePanel(sceneW, bodyH, sceneContent, legend)

	readout := ui.RenderReadout(m.frame, readoutW, bodyH,
		m.shared.gauge.Value(), m.shared.history.Values())

	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Paused:     paused,
		Step:       m.frame.Step,
		Steps:      m.frame.Steps,
		Direction:  m.frame.Direction.String(),
		Logged:     m.shared.log.Len(),
		Dropped:    m.shared.log.Dropped(),
		LogEnabled: m.shared.log.Enabled(),
		Message:    m.status,
		IsError:    m.statusErr,
	})

	return ui.ComposeLayout(menuBar, scenePanel, readout, statusBar)
}

// Stepper exposes the simulation driver, mainly for tests.
func (m AppModel) Stepper() *sonar.Stepper {
	return m.shared.stepper
}

// Log exposes the sample log.
func (m AppModel) Log() *samplelog.Log {
	return m.shared.log
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
