package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rikkajump/internal/core"
	"github.com/vovakirdan/rikkajump/internal/storage"
)

// fakeGame records the inputs it receives and ends a run on demand.
type fakeGame struct {
	inputs  []core.InputFrame
	state   core.GameState
	endNext bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) last() core.InputFrame { return g.inputs[len(g.inputs)-1] }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	res := core.StepResult{}
	if in.Has(core.ActionConfirm) && !g.state.Playing {
		g.state = core.GameState{Playing: true}
		res.Started = true
	}
	if g.endNext {
		g.endNext = false
		g.state.Playing = false
		g.state.GameOver = true
		res.Ended = true
	}
	res.State = g.state
	return res
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *fakeGame) {
	t.Helper()
	game := &fakeGame{}
	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeyHoldsDirection(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	if !game.last().Has(core.ActionLeft) {
		t.Fatal("left should reach the game")
	}

	// Still held on later ticks without another key event.
	m = update(t, m, TickMsg{})
	if !game.last().Has(core.ActionLeft) {
		t.Error("left should stay held within the hold window")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, TickMsg{})
	if game.last().Has(core.ActionLeft) {
		t.Error("down should release the hold")
	}
}

func TestModelMouseHalves(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 70, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if !game.last().Has(core.ActionRight) || !game.last().Has(core.ActionConfirm) {
		t.Fatalf("left click on the right half should confirm and hold right, got %v", game.last().Actions)
	}

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if !game.last().Has(core.ActionLeft) || game.last().Has(core.ActionRight) {
		t.Errorf("drag to the left half should hold left, got %v", game.last().Actions)
	}

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if game.last().Has(core.ActionLeft) || game.last().Has(core.ActionRight) {
		t.Error("release should end the hold")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !game.state.Playing {
		t.Error("resize should not interrupt the run")
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("view should render the game")
	}
}

func TestModelSavesEachRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	game.state.Score = 7
	game.state.Height = 42
	game.endNext = true
	m = update(t, m, TickMsg{})
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Score != 7 || runs[0].Height != 42 {
		t.Errorf("saved run = %d/%d, want 7/42", runs[0].Score, runs[0].Height)
	}
	if !m.State().GameOver {
		t.Error("model should track the game over state")
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	game.endNext = true
	update(t, m, TickMsg{})

	if runs, _ := store.TopScores("fake", 10); len(runs) != 0 {
		t.Errorf("empty run should not be saved, got %d", len(runs))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrown)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
		t.Errorf("rendered text missing: %q", out)
	}
}

func TestRenderScreenKeepsSpanOrder(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorBrown)
	s.DrawTextColored(2, 0, "cd", core.ColorPink)
	s.DrawTextColored(4, 0, "ef", core.Color(250))

	out := RenderScreen(s)
	a, c, e := strings.Index(out, "ab"), strings.Index(out, "cd"), strings.Index(out, "ef")
	if a < 0 || c < a || e < c {
		t.Errorf("spans out of order or missing: %q", out)
	}
}
