package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// Input is the player input applied at the start of a frame.
// Stop is applied before the directions, so a fresh press wins over a release
// reported in the same frame.
type Input struct {
	Left  bool
	Right bool
	Stop  bool
}

// Session is the complete state of one play session: paddle, balls, bricks,
// score and level. It is owned by a single goroutine; hosts call Advance once
// per frame and the input methods from the same loop.
type Session struct {
	cfg     config.BreakoutConfig
	pending *config.BreakoutConfig // Applied at the next regeneration
	rng     *rand.Rand

	width  float64
	height float64

	paddle Paddle
	balls  []Ball
	bricks Grid

	score int
	level int
	frame uint64

	// generation changes whenever the ball and brick collections are replaced
	generation int

	background    colorful.Color
	hasBackground bool

	events []core.Event
}

// ViewportSize returns the canvas size for a host window width:
// width = min(window - margin, max_width), height = width * height_ratio.
// A window too small to fit the margin gets the max width.
func ViewportSize(windowW float64, c config.CanvasConfig) (w, h float64) {
	w = math.Min(windowW-c.WindowMargin, c.MaxWidth)
	if w <= 0 {
		w = c.MaxWidth
	}
	return w, w * c.HeightRatio
}

// NewSession creates a session on a w×h canvas at level 1.
func NewSession(cfg config.BreakoutConfig, w, h float64, seed uint64) *Session {
	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:  w,
		height: h,
		level:  1,
	}
	s.paddle = Paddle{
		X:     w/2 - cfg.Paddle.Width/2,
		Y:     h - cfg.Paddle.BottomOffset,
		W:     cfg.Paddle.Width,
		H:     cfg.Paddle.Height,
		Speed: cfg.Paddle.Speed,
	}
	s.balls = []Ball{s.newBall()}
	s.bricks = NewBrickGrid(s.level, cfg.Bricks, s.rng)
	return s
}

// Width returns the canvas width.
func (s *Session) Width() float64 { return s.width }

// Height returns the canvas height.
func (s *Session) Height() float64 { return s.height }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Frame returns the number of frames advanced so far.
func (s *Session) Frame() uint64 { return s.frame }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Balls returns the balls in play. The slice must not be modified.
func (s *Session) Balls() []Ball { return s.balls }

// Bricks returns the brick grid. The grid must not be modified.
func (s *Session) Bricks() Grid { return s.bricks }

// Config returns the configuration currently in effect.
func (s *Session) Config() config.BreakoutConfig { return s.cfg }

// Background returns the level background color, if a level has been cleared.
func (s *Session) Background() (colorful.Color, bool) {
	return s.background, s.hasBackground
}

// ApplyConfig schedules a new configuration. It takes effect at the next
// level-up or full reset; the canvas size is never re-derived.
func (s *Session) ApplyConfig(cfg config.BreakoutConfig) {
	s.pending = &cfg
}

// PaddleAccelerate starts moving the paddle at full speed.
func (s *Session) PaddleAccelerate(d Direction) {
	if d == DirLeft {
		s.paddle.DX = -s.paddle.Speed
	} else {
		s.paddle.DX = s.paddle.Speed
	}
}

// PaddleStop halts the paddle.
func (s *Session) PaddleStop() {
	s.paddle.DX = 0
}

// Advance runs one frame: input, paddle motion, then every ball in order.
// The returned events are only valid until the next call.
func (s *Session) Advance(in Input) []core.Event {
	s.events = s.events[:0]
	s.frame++

	if in.Stop {
		s.PaddleStop()
	}
	if in.Left {
		s.PaddleAccelerate(DirLeft)
	}
	if in.Right {
		s.PaddleAccelerate(DirRight)
	}

	MovePaddle(&s.paddle, s.width)
	s.moveBalls()

	return s.events
}

// moveBalls advances the balls present at the start of the frame. Balls
// released during the frame start moving on the next one. Once the
// collections are replaced (level-up or reset) the rest of the frame's balls
// belong to a discarded state and are skipped.
func (s *Session) moveBalls() {
	gen := s.generation
	n := len(s.balls)
	removed := make([]bool, n)

	for i := range n {
		b := s.balls[i]
		b.Move()
		ReflectWalls(&b, s.width)

		if HitsPaddle(&b, &s.paddle) {
			BouncePaddle(&b)
		}

		if !s.collideBricks(&b) {
			return
		}
		s.balls[i] = b

		if FellOff(&b, s.height) {
			removed[i] = true
			s.emit(core.EventBallLost)
			if len(s.balls)-countTrue(removed) == 0 {
				s.Reset()
				return
			}
		}
	}

	if s.generation != gen {
		return
	}
	kept := s.balls[:0]
	for i, b := range s.balls {
		if i < n && removed[i] {
			continue
		}
		kept = append(kept, b)
	}
	s.balls = kept
}

// collideBricks resolves the ball against every visible brick it touches.
// Each hit toggles DY, so two bricks hit in the same frame cancel out.
// Returns false if a level-up replaced the collections.
func (s *Session) collideBricks(b *Ball) bool {
	for r := range s.bricks {
		for c := range s.bricks[r] {
			brick := &s.bricks[r][c]
			if !HitsBrick(b, brick) {
				continue
			}

			b.BounceY()
			brick.HitCount++
			s.emit(core.EventBrickHit)

			destroyed := brick.HitCount >= s.cfg.Bricks.HitsToBreak
			if destroyed {
				brick.Visible = false
				s.emit(core.EventBrickDestroyed)
			}

			if s.IncreaseScore() {
				return false
			}

			if brick.Special && (destroyed || s.cfg.Gift.Trigger == config.GiftOnHit) {
				s.releaseGift(brick)
			}
		}
	}
	return true
}

// releaseGift adds two balls at the brick's top-center moving up and outward.
func (s *Session) releaseGift(brick *Brick) {
	at := At(brick.X+brick.W/2, brick.Y)
	v := s.cfg.Gift.Speed
	s.balls = append(s.balls,
		s.newBall(at, WithVelocity(v, -v)),
		s.newBall(at, WithVelocity(-v, -v)),
	)
	s.emit(core.EventBallsSpawned)
}

// IncreaseScore awards one point and advances the level when every brick is
// gone. Returns true if the level advanced.
func (s *Session) IncreaseScore() bool {
	s.score++
	if !s.bricks.Cleared() {
		return false
	}

	s.level++
	// The outgoing balls are replaced right below; the bump only matters to
	// anything still holding them.
	for i := range s.balls {
		s.balls[i].Speed++
	}

	s.applyPending()
	s.balls = []Ball{s.newBall()}
	s.bricks = NewBrickGrid(s.level, s.cfg.Bricks, s.rng)
	s.generation++

	bg := s.cfg.Background
	hue := math.Mod(float64(s.level)*bg.HueStep, 360)
	s.background = colorful.Hsl(hue, bg.Saturation, bg.Lightness)
	s.hasBackground = true

	s.emit(core.EventLevelUp)
	return true
}

// Reset starts over at level 1 with score 0, one fresh ball and a new grid.
// The emitted EventGameReset carries the final score and level.
func (s *Session) Reset() {
	s.emit(core.EventGameReset)

	s.score = 0
	s.level = 1
	s.applyPending()
	s.balls = []Ball{s.newBall()}
	s.bricks = NewBrickGrid(s.level, s.cfg.Bricks, s.rng)
	s.generation++
}

func (s *Session) applyPending() {
	if s.pending == nil {
		return
	}
	s.cfg = *s.pending
	s.pending = nil

	s.paddle.W = s.cfg.Paddle.Width
	s.paddle.H = s.cfg.Paddle.Height
	s.paddle.Speed = s.cfg.Paddle.Speed
	s.paddle.Y = s.height - s.cfg.Paddle.BottomOffset
	if s.paddle.DX != 0 {
		s.paddle.DX = math.Copysign(s.paddle.Speed, s.paddle.DX)
	}
	s.paddle.X = core.ClampF(s.paddle.X, 0, s.width-s.paddle.W)
}

func (s *Session) newBall(opts ...BallOption) Ball {
	center := core.Point{X: s.width / 2, Y: s.height / 2}
	return MakeBall(s.cfg.Ball, center, opts...)
}

func (s *Session) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{Kind: kind, Score: s.score, Level: s.level})
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
