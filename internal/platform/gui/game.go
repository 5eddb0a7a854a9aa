package gui

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/breakout"
	"github.com/vovakirdan/brickfall/internal/storage"
)

// border is the margin around the canvas, painted with the level color.
const border = 10

// pageBackground fills the window outside the canvas before the first level-up.
var pageBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Options holds the optional collaborators of a window host.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Watcher *config.Watcher
}

// Game drives a breakout game from the ebiten loop.
type Game struct {
	game   *breakout.Game
	opts   Options
	canvas *ebiten.Image

	toolbar *ebitenui.UI
	rules   *ebitenui.UI

	// pending collects actions from UI callbacks for the next Step
	pending core.InputFrame
}

// New resets game for a window of runtime.WindowW pixels and builds the UI.
// Key release is reported by ebiten, so runtime.KeyRelease is forced on.
func New(game *breakout.Game, opts Options, runtime core.RuntimeConfig) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	runtime.KeyRelease = true
	game.Reset(runtime)

	g := &Game{
		game:    game,
		opts:    opts,
		pending: core.NewInputFrame(),
	}
	g.toolbar = newToolbarUI(func() { g.pending.Set(core.ActionRulesOpen) })
	g.rules = newRulesUI(func() { g.pending.Set(core.ActionRulesClose) })

	s := game.Session()
	g.canvas = ebiten.NewImage(int(s.Width()), int(s.Height()))
	return g
}

// WindowSize returns the outer window size for the current canvas.
func (g *Game) WindowSize() (int, int) {
	s := g.game.Session()
	return windowSize(s.Width(), s.Height())
}

func windowSize(canvasW, canvasH float64) (int, int) {
	return int(canvasW) + 2*border, int(canvasH) + 2*border + toolbarHeight
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.saveScore(g.game.State().Score, g.game.State().Level)
		return ebiten.Termination
	}
	g.pollConfig()

	frame := g.pending.Clone()
	g.pending.Clear()
	readKeys(&frame)

	g.toolbar.Update()
	if g.game.Rules().Visible() {
		g.rules.Update()
	}

	result := g.game.Step(frame)
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventGameReset:
			g.opts.Logger.Info("run ended", "score", e.Score, "level", e.Level)
			g.saveScore(e.Score, e.Level)
		case core.EventLevelUp:
			g.opts.Logger.Debug("level up", "level", e.Level, "score", e.Score)
		}
	}
	return nil
}

// readKeys maps arrow presses to movement and any arrow release to a stop.
func readKeys(frame *core.InputFrame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	for _, k := range []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyA, ebiten.KeyD} {
		if inpututil.IsKeyJustReleased(k) {
			frame.Set(core.ActionStop)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionRulesClose)
	}
}

// pollConfig applies a pending config reload without blocking the frame.
func (g *Game) pollConfig() {
	w := g.opts.Watcher
	if w == nil {
		return
	}
	select {
	case path, ok := <-w.Events:
		if !ok {
			g.opts.Watcher = nil
			return
		}
		cfg, err := config.LoadBreakout(path)
		if err != nil {
			g.opts.Logger.Warn("config reload failed", "path", path, "err", err)
			return
		}
		g.game.ApplyConfig(cfg)
		g.opts.Logger.Info("config reloaded", "path", path)
	case err, ok := <-w.Errors:
		if ok {
			g.opts.Logger.Warn("config watcher error", "err", err)
		}
	default:
	}
}

func (g *Game) saveScore(score, level int) {
	if score <= 0 || g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.game.ID(), score, level); err != nil {
		g.opts.Logger.Warn("could not save score", "err", err)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var bg color.Color = pageBackground
	var canvasBg color.Color
	if c, ok := g.game.Background(); ok {
		bg, canvasBg = c, c
	}
	screen.Fill(bg)

	breakout.Draw(g.game.Session(), NewCanvas(g.canvas, canvasBg))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(border, border+toolbarHeight)
	screen.DrawImage(g.canvas, op)

	g.toolbar.Draw(screen)
	if g.game.Rules().Visible() {
		g.rules.Draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is fixed to the canvas
// plus its frame; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.WindowSize()
}

// Run opens the window and blocks until it is closed.
func Run(game *breakout.Game, opts Options, runtime core.RuntimeConfig) error {
	if runtime.WindowW <= 0 {
		w, _ := ebiten.Monitor().Size()
		runtime.WindowW = w
	}

	g := New(game, opts, runtime)
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowTitle(game.Title())
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	return ebiten.RunGame(g)
}
