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
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

// Options holds the optional collaborators of a game Model.
type Options struct {
	Store   *storage.Store  // Finished runs are recorded here when set
	Logger  *log.Logger     // Defaults to a discarding logger
	Watcher *config.Watcher // Config reloads are applied when set
}

// configurable is implemented by games that accept a reloaded config.
type configurable interface {
	ApplyConfig(cfg config.BreakoutConfig)
}

// tinted is implemented by games with a level background color.
type tinted interface {
	Background() (colorful.Color, bool)
}

// ConfigChangedMsg reports that the watched config file changed.
type ConfigChangedMsg struct {
	Path string
}

// configErrMsg reports a watcher failure.
type configErrMsg struct {
	err error
}

// Model is the Bubble Tea model for running a game in a terminal.
// The last row shows key help; the rest is the playfield.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
	}
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(screenH int) int {
	return max(screenH-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, watchConfig(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

// watchConfig waits for the next watcher event.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, watchConfig(m.opts.Watcher)

	case configErrMsg:
		m.opts.Logger.Warn("config watcher error", "err", msg.err)
		return m, watchConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore(m.gameState.Score, m.gameState.Level)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// Only the terminal grid changes; the game canvas keeps its size and is
// rescaled onto the new grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvents records finished runs and logs progress.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventGameReset:
			m.opts.Logger.Info("run ended", "score", e.Score, "level", e.Level)
			m.saveScore(e.Score, e.Level)
		case core.EventLevelUp:
			m.opts.Logger.Debug("level up", "level", e.Level, "score", e.Score)
		case core.EventBallsSpawned:
			m.opts.Logger.Debug("balls released", "balls", m.gameState.Balls)
		}
	}
}

// saveScore records a run with a positive score. Storage failures are
// logged and play continues.
func (m *Model) saveScore(score, level int) {
	if score <= 0 || m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), score, level); err != nil {
		m.opts.Logger.Warn("could not save score", "err", err)
	}
}

// reloadConfig loads the changed file and hands it to the game.
// An invalid file keeps the current configuration.
func (m *Model) reloadConfig(path string) {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		m.opts.Logger.Warn("config reload failed", "path", path, "err", err)
		return
	}
	g, ok := m.game.(configurable)
	if !ok {
		return
	}
	g.ApplyConfig(cfg)
	m.opts.Logger.Info("config reloaded", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".brickfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// background returns the hex level color, or "" before the first level-up.
func (m Model) background() string {
	g, ok := m.game.(tinted)
	if !ok {
		return ""
	}
	c, ok := g.Background()
	if !ok {
		return ""
	}
	return c.Hex()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.background()) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
