package breakout

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/registry"
)

// ID is the registry and score-store identifier of the game.
const ID = "breakout"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration from the CLI path and applies the
// difficulty preset.
func LoadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts a Session to the host-facing registry.Game interface:
// abstract input actions in, events and a character screen out.
type Game struct {
	runtime core.RuntimeConfig
	session *Session
	rules   Overlay

	// idle counts frames without directional input while the paddle moves
	idle int

	events []core.Event
}

// New creates a new game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brickfall"
}

// Reset starts a new session. A config that fails to load falls back to
// the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a new session with an explicit configuration.
// The canvas is sized once from the runtime window width.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.runtime = runtime
	w, h := ViewportSize(float64(runtime.WindowW), cfg.Canvas)
	g.session = NewSession(cfg, w, h, uint64(runtime.Seed)) //#nosec G115 -- seed bits only
	g.rules.Close()
	g.idle = 0
	g.events = g.events[:0]
}

// ApplyConfig schedules a reloaded configuration. The difficulty preset is
// applied on top. It takes effect at the next level-up or full reset.
func (g *Game) ApplyConfig(cfg config.BreakoutConfig) {
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	g.session.ApplyConfig(cfg)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRulesOpen) {
		g.rules.Open()
	}
	if in.Has(core.ActionRulesClose) {
		g.rules.Close()
	}

	input := Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Stop:  in.Has(core.ActionStop),
	}
	if !g.runtime.KeyRelease && g.releaseExpired(input) {
		input.Stop = true
	}

	g.events = append(g.events[:0], g.session.Advance(input)...)
	return core.StepResult{State: g.State(), Events: g.events}
}

// releaseExpired emulates key release for hosts that never report it: the
// paddle stops once no directional key has been seen for release_frames.
func (g *Game) releaseExpired(in Input) bool {
	frames := g.session.Config().Input.ReleaseFrames
	if frames <= 0 {
		return false
	}
	if in.Left || in.Right || in.Stop || g.session.Paddle().DX == 0 {
		g.idle = 0
		return false
	}
	g.idle++
	if g.idle < frames {
		return false
	}
	g.idle = 0
	return true
}

// Render draws the playfield scaled to dst, with the rules panel on top
// when it is open.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	Draw(g.session, NewScreenCanvas(dst, g.session.Width(), g.session.Height()))
	if g.rules.Visible() {
		DrawRules(dst, "esc: close")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.session.Score(),
		Level: g.session.Level(),
		Balls: len(g.session.Balls()),
	}
}

// Background returns the level background color, if a level has been cleared.
func (g *Game) Background() (colorful.Color, bool) {
	return g.session.Background()
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Rules returns the rules panel state.
func (g *Game) Rules() *Overlay {
	return &g.rules
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
