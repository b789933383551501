package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// causeQuit marks a run that ended because the player left.
const causeQuit = "quit"

// RunRecorder persists finished runs.
type RunRecorder interface {
	SaveRun(storage.RunRecord) (int64, error)
}

// Options configures a game model.
type Options struct {
	Game      config.SnakeConfig
	Runtime   core.RuntimeConfig
	Store     RunRecorder // May be nil
	Logger    *log.Logger // May be nil
	SessionID string      // Generated when empty
}

// Model is the Bubble Tea model that drives one snake session.
type Model struct {
	engine    *snake.Engine
	screen    *core.Screen
	store     RunRecorder
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	sessionID string
	width     int
	height    int
	paused    bool
	quitting  bool
	err       error
}

// NewModel creates the engine and wraps it in a Bubble Tea model.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	logger = logger.With("session", sessionID)

	engine, err := snake.New(opts.Game, cfg.Seed, snake.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	logger.Info("session started", "seed", cfg.Seed)

	m := Model{
		engine:    engine,
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		sessionID: sessionID,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.boardHeight())
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.recordQuit()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.boardHeight())
		return m, nil
	}

	if dir, ok := actionDirection(action); ok && !m.paused {
		if err := m.engine.OnDirectionInput(dir); err != nil {
			m.logger.Warn("direction rejected", "error", err)
		}
	}
	return m, nil
}

// handleTick advances the engine and schedules the next tick. The tick
// chain keeps running while paused so resuming needs no restart.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.engine.TickInterval())
	}

	frame, err := m.engine.Tick()
	if err != nil {
		m.logger.Error("simulation stopped", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if g := frame.GameOver; g != nil {
		m.recordRun(storage.RunRecord{
			Run:    g.Run,
			Score:  g.Score,
			Level:  g.Level,
			Length: g.Length,
			Cause:  string(g.Cause),
		})
		// Hold the banner before the next run moves.
		return m, tickCmd(g.Hold)
	}

	return m, tickCmd(m.engine.TickInterval())
}

// recordQuit stores the unfinished run when the player leaves.
func (m Model) recordQuit() {
	frame := m.engine.Frame()
	m.recordRun(storage.RunRecord{
		Run:    frame.Runs + 1,
		Score:  frame.Score,
		Level:  frame.Level,
		Length: len(frame.Snake),
		Cause:  causeQuit,
	})
}

func (m Model) recordRun(r storage.RunRecord) {
	if m.store == nil || r.Score == 0 {
		return
	}
	r.SessionID = m.sessionID
	if _, err := m.store.SaveRun(r); err != nil {
		m.logger.Warn("could not save run", "run", r.Run, "error", err)
	}
}

// boardHeight is the terminal height minus the help bar.
func (m Model) boardHeight() int {
	return max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	if m.paused {
		snake.DrawOverlay(m.screen, core.ColorYellow, "PAUSED", "Press P to resume")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(centerText(m.help.View(m.keys), m.width))
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// SessionID returns the identifier runs are recorded under.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
