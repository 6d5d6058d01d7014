package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rikkajump/internal/core"
	"github.com/vovakirdan/rikkajump/internal/registry"
	"github.com/vovakirdan/rikkajump/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *HeldInput
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  NewHeldInput(HoldTicksFor(cfg.TickRate)),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.IsCancel(msg) {
		m.input.Cancel()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)

	return m, nil
}

// handleMouse maps the left and right halves of the terminal to directions.
// A left click also confirms so the game can be started without a keyboard.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	dir := core.ActionRight
	if msg.X < m.screen.Width()/2 {
		dir = core.ActionLeft
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.Press(core.ActionConfirm)
		}
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonRight {
			m.input.MouseHold(dir)
		}
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonNone {
			m.input.MouseHold(dir)
		}
	case tea.MouseActionRelease:
		m.input.MouseRelease()
	}

	return m, nil
}

// handleResize only resizes the canvas. The world is in logical pixels, so
// the run continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Next())
	m.gameState = result.State

	if result.Started {
		m.logger.Debug("run started", "game", m.game.ID())
	}
	if result.Ended {
		m.finishRun(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRun persists a finished run. Empty runs are not recorded.
func (m Model) finishRun(st core.GameState) {
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "height", st.Height)

	if m.store == nil || (st.Score <= 0 && st.Height <= 0) {
		return
	}
	runID, err := m.store.SaveRun(m.game.ID(), st.Score, st.Height)
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", runID)
}

// saveScreenshot writes the current frame as plain text under
// ~/.rikkajump/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".rikkajump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
