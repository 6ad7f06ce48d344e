package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const (
	// cellPx is the logical width of one terminal column. A terminal narrower
	// than the play field shrinks the field the way a narrow window does.
	cellPx = 8

	resizeDebounce = 250 * time.Millisecond

	// Rows below the play field: status line and help.
	chromeRows = 2
)

// fieldSizer is implemented by games that report their play field size.
type fieldSizer interface {
	Width() int
	Height() int
}

// debugDrawer is implemented by games that can outline their hit boxes.
type debugDrawer interface {
	SetDebugBoxes(on bool)
}

// resizeMsg is the debounced half of a window resize.
type resizeMsg struct {
	seq  int
	cols int
}

// Options are the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // run log, nil to keep nothing
	Audio  audio.Player   // cue playback, nil for silence
	Logger *log.Logger    // event log, nil to discard
	Player string         // name stored with each run
}

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	game      registry.Game
	canvas    *TermCanvas
	store     *storage.Store
	audio     audio.Player
	logger    *log.Logger
	player    string
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	frame     *core.InputFrame
	state     core.GameState
	lastTick  time.Time
	runTime   time.Duration
	resizeSeq int
	debug     bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		canvas: NewTermCanvas(cfg.ScreenW, cfg.ScreenH-chromeRows, defaultFieldW, defaultFieldH),
		store:  opts.Store,
		audio:  opts.Audio,
		logger: opts.Logger,
		player: opts.Player,
		config: cfg,
		keys:   NewKeyMapper(),
		help:   h,
		frame:  &core.InputFrame{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.syncField()
	m.logger.Debug("session ready", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case releaseMsg:
		m.keys.Release(msg, m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case resizeMsg:
		if msg.seq == m.resizeSeq {
			m.game.Resize(msg.cols * cellPx)
			m.syncField()
		}
		return m, nil

	case tea.FocusMsg:
		m.frame.Push(core.ActionFocusGained)
		return m, nil

	case tea.BlurMsg:
		m.frame.Push(core.ActionFocusLost)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Keys.Debug):
		m.debug = !m.debug
		if d, ok := m.game.(debugDrawer); ok {
			d.SetDebugBoxes(m.debug)
		}
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	return m, m.keys.Press(msg, m.frame)
}

// handleResize resizes the canvas at once and the play field after the
// window has settled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height-chromeRows)
	m.help.Width = msg.Width

	m.resizeSeq++
	rm := resizeMsg{seq: m.resizeSeq, cols: msg.Width}
	return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg { return rm })
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m = m.step(dt)
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation tick with the queued input.
func (m Model) step(dt time.Duration) Model {
	result := m.game.Step(dt, *m.frame)
	m.frame.Clear()
	m.state = result.State

	if result.State.Running {
		m.runTime += dt
	}
	m.handleEvents(result.Events, result.State)
	return m
}

// handleEvents plays cues, logs state changes and records finished runs.
func (m *Model) handleEvents(events []core.Event, state core.GameState) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventSound:
			m.audio.Play(ev.Cue)
		case core.EventCrashed:
			m.logger.Debug("crashed", "score", ev.Value, "distance", state.Distance, "speed", state.Speed)
			m.saveRun(ev.Value, state)
		case core.EventRestarted:
			m.runTime = 0
			m.logger.Debug("restarted", "play_count", state.PlayCount)
		case core.EventMilestone:
			m.logger.Debug("milestone", "score", ev.Value)
		case core.EventInvert:
			m.logger.Debug("night mode", "on", ev.Value == 1)
		default:
			m.logger.Debug(ev.Kind.String(), "phase", state.Phase)
		}
	}
}

func (m *Model) saveRun(score int, state core.GameState) {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.player,
		Score:      score,
		DistancePx: state.Distance,
		Duration:   m.runTime,
		PlayCount:  state.PlayCount,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", score)
}

// syncField points the canvas at the game's current play field.
func (m Model) syncField() {
	if s, ok := m.game.(fieldSizer); ok {
		m.canvas.SetField(s.Width(), s.Height())
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	phaseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// statusLine describes the phase in words.
func (m Model) statusLine() string {
	var hint string
	switch {
	case m.state.Running && m.state.Phase == core.PhaseWaiting:
		hint = "get ready"
	case m.state.Phase == core.PhaseWaiting:
		hint = "press space to start"
	case m.state.Phase == core.PhasePaused:
		hint = "paused, press p or space to resume"
	case m.state.Phase == core.PhaseCrashed:
		hint = "press r to run again"
	case m.state.Phase == core.PhaseIntro, m.state.Phase == core.PhasePlaying:
		hint = fmt.Sprintf("speed %.1f", m.state.Speed)
	}
	return phaseStyle.Render(m.state.Phase.String()) + "  " +
		statusStyle.Render(fmt.Sprintf("%s  runs %d", hint, m.state.PlayCount))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.canvas.Screen(), m.canvas.Inverted()) + "\n" +
		m.statusLine() + "\n" +
		m.help.View(m.keys.Keys)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Auto pause on focus loss
	)

	_, err := p.Run()
	return err
}
