package breakout

import (
	"testing"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
)

// newTestSession returns a default 800x600 session.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(config.DefaultBreakoutConfig(), 800, 600, 1)
}

// target is a brick well away from the paddle and the spawn point.
func target() Brick {
	return Brick{X: 100, Y: 100, W: 70, H: 20, Visible: true}
}

// spare is a brick no test ball reaches, so the level never clears.
func spare() Brick {
	return Brick{X: 600, Y: 60, W: 70, H: 20, Visible: true}
}

// aimAt places a single ball just below b, moving straight up into it.
func aimAt(s *Session, b Brick) {
	s.balls = []Ball{{X: b.X + b.W/2, Y: b.Y + b.H + 10, Size: 10, Speed: 6, DY: -4}}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestViewportSize(t *testing.T) {
	canvas := config.DefaultBreakoutConfig().Canvas

	tests := []struct {
		window float64
		w, h   float64
	}{
		{820, 800, 600},
		{1920, 800, 600},
		{500, 480, 360},
		{10, 800, 600},
	}

	for _, tt := range tests {
		w, h := ViewportSize(tt.window, canvas)
		if w != tt.w || h != tt.h {
			t.Errorf("ViewportSize(%v) = %vx%v, want %vx%v", tt.window, w, h, tt.w, tt.h)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	if s.Score() != 0 || s.Level() != 1 {
		t.Errorf("score/level = %d/%d, want 0/1", s.Score(), s.Level())
	}
	if len(s.Balls()) != 1 {
		t.Fatalf("balls = %d, want 1", len(s.Balls()))
	}
	b := s.Balls()[0]
	if b.X != 400 || b.Y != 300 || b.DX != 4 || b.DY != -4 || b.Size != 10 || b.Speed != 6 {
		t.Errorf("ball = %+v, want prototype at canvas center", b)
	}
	p := s.Paddle()
	if p.X != 360 || p.Y != 580 || p.W != 80 || p.DX != 0 {
		t.Errorf("paddle = %+v, want centered at y=580", p)
	}
	if s.Bricks().Rows() != 10 || s.Bricks().Cols() != 5 {
		t.Errorf("grid = %dx%d, want 10x5", s.Bricks().Rows(), s.Bricks().Cols())
	}
	if _, ok := s.Background(); ok {
		t.Error("background set before any level-up")
	}
}

func TestBrickBreaksAfterThreeHits(t *testing.T) {
	s := newTestSession(t)
	s.bricks = Grid{{target(), spare()}}

	for hit := 1; hit <= 3; hit++ {
		aimAt(s, s.bricks[0][0])
		events := s.Advance(Input{})

		brick := s.bricks[0][0]
		if brick.HitCount != hit {
			t.Fatalf("hit %d: HitCount = %d", hit, brick.HitCount)
		}
		if brick.Visible != (hit < 3) {
			t.Fatalf("hit %d: Visible = %v", hit, brick.Visible)
		}
		if !hasEvent(events, core.EventBrickHit) {
			t.Fatalf("hit %d: no brick_hit event", hit)
		}
		if s.Balls()[0].DY != 4 {
			t.Fatalf("hit %d: DY = %v, want 4", hit, s.Balls()[0].DY)
		}
	}

	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}
	if len(s.Balls()) != 1 {
		t.Errorf("balls = %d, want 1", len(s.Balls()))
	}
	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
}

func TestSpecialBrickReleasesTwoBalls(t *testing.T) {
	s := newTestSession(t)
	b := target()
	b.Special = true
	b.HitCount = 2
	s.bricks = Grid{{b, spare()}}
	aimAt(s, b)

	events := s.Advance(Input{})

	if s.bricks[0][0].Visible {
		t.Fatal("special brick should be destroyed")
	}
	if !hasEvent(events, core.EventBallsSpawned) {
		t.Error("no balls_spawned event")
	}
	balls := s.Balls()
	if len(balls) != 3 {
		t.Fatalf("balls = %d, want 3", len(balls))
	}

	want := []struct{ dx, dy float64 }{{3, -3}, {-3, -3}}
	for i, w := range want {
		g := balls[i+1]
		if g.X != 135 || g.Y != 100 {
			t.Errorf("gift %d at (%v, %v), want (135, 100)", i, g.X, g.Y)
		}
		if g.DX != w.dx || g.DY != w.dy {
			t.Errorf("gift %d velocity (%v, %v), want (%v, %v)", i, g.DX, g.DY, w.dx, w.dy)
		}
		if g.Size != 10 || g.Speed != 6 {
			t.Errorf("gift %d size/speed %v/%v, want prototype 10/6", i, g.Size, g.Speed)
		}
	}
}

func TestSpecialBrickGiftTrigger(t *testing.T) {
	tests := []struct {
		trigger   string
		wantBalls int
	}{
		{config.GiftOnDestroy, 1},
		{config.GiftOnHit, 3},
	}

	for _, tt := range tests {
		t.Run(tt.trigger, func(t *testing.T) {
			cfg := config.DefaultBreakoutConfig()
			cfg.Gift.Trigger = tt.trigger
			s := NewSession(cfg, 800, 600, 1)

			b := target()
			b.Special = true
			s.bricks = Grid{{b, spare()}}
			aimAt(s, b)
			s.Advance(Input{})

			if got := len(s.Balls()); got != tt.wantBalls {
				t.Errorf("balls after first hit = %d, want %d", got, tt.wantBalls)
			}
			if !s.bricks[0][0].Visible {
				t.Error("brick destroyed after one hit")
			}
		})
	}
}

func TestSpecialBrickReleasesOnEveryHit(t *testing.T) {
	s := newTestSession(t)
	b := target()
	b.Special = true
	s.bricks = Grid{{b, spare()}}

	for hit := 1; hit <= 3; hit++ {
		// Released balls wait in open space so only the lead ball hits.
		for i := range s.balls {
			s.balls[i] = Ball{X: 400, Y: 400, Size: 10, Speed: 6}
		}
		s.balls[0] = Ball{X: b.X + b.W/2, Y: b.Y + b.H + 10, Size: 10, Speed: 6, DY: -4}

		events := s.Advance(Input{})

		if !hasEvent(events, core.EventBallsSpawned) {
			t.Fatalf("hit %d: no balls_spawned event", hit)
		}
		if got, want := len(s.Balls()), 1+2*hit; got != want {
			t.Fatalf("hit %d: balls = %d, want %d", hit, got, want)
		}
	}

	if s.bricks[0][0].Visible {
		t.Error("special brick should be destroyed after three hits")
	}
	if len(s.Balls()) != 7 {
		t.Errorf("balls = %d, want 7", len(s.Balls()))
	}
}

func TestTwoBricksInOneFrameCancelBounce(t *testing.T) {
	s := newTestSession(t)
	upper := target()
	lower := target()
	lower.Y = 120
	s.bricks = Grid{{upper, lower, spare()}}
	s.balls = []Ball{{X: 135, Y: 128, Size: 10, Speed: 6, DY: -4}}

	s.Advance(Input{})

	if s.bricks[0][0].HitCount != 1 || s.bricks[0][1].HitCount != 1 {
		t.Fatalf("hit counts = %d/%d, want 1/1", s.bricks[0][0].HitCount, s.bricks[0][1].HitCount)
	}
	if s.Score() != 2 {
		t.Errorf("score = %d, want 2", s.Score())
	}
	if s.Balls()[0].DY != -4 {
		t.Errorf("DY = %v, want -4 after two toggles", s.Balls()[0].DY)
	}
}

func TestLevelUp(t *testing.T) {
	s := newTestSession(t)
	b := target()
	b.HitCount = 2
	b.Special = true
	s.bricks = Grid{{b}}
	aimAt(s, b)
	// A second ball that would fall off this frame belongs to the old level.
	s.balls = append(s.balls, Ball{X: 50, Y: 595, Size: 10, Speed: 6, DY: 4})
	s.score = 7

	events := s.Advance(Input{})

	if s.Level() != 2 {
		t.Fatalf("level = %d, want 2", s.Level())
	}
	if s.Score() != 8 {
		t.Errorf("score = %d, want 8", s.Score())
	}
	if !hasEvent(events, core.EventLevelUp) {
		t.Error("no level_up event")
	}
	if hasEvent(events, core.EventBallLost) || hasEvent(events, core.EventGameReset) {
		t.Error("balls of the cleared level were still processed")
	}

	balls := s.Balls()
	if len(balls) != 1 {
		t.Fatalf("balls = %d, want 1", len(balls))
	}
	if balls[0].X != 400 || balls[0].Y != 300 || balls[0].DX != 4 || balls[0].DY != -4 {
		t.Errorf("ball = %+v, want prototype at canvas center", balls[0])
	}
	if s.Bricks().Rows() != 11 || s.Bricks().Cols() != 6 {
		t.Errorf("grid = %dx%d, want 11x6", s.Bricks().Rows(), s.Bricks().Cols())
	}
	if s.Bricks().CountVisible() != 66 {
		t.Errorf("visible bricks = %d, want 66", s.Bricks().CountVisible())
	}

	bg, ok := s.Background()
	if !ok {
		t.Fatal("background not set after level-up")
	}
	h, sat, l := bg.Hsl()
	if diff := h - 20; diff > 0.5 || diff < -0.5 {
		t.Errorf("hue = %v, want 20", h)
	}
	if diff := sat - 0.7; diff > 0.01 || diff < -0.01 {
		t.Errorf("saturation = %v, want 0.7", sat)
	}
	if diff := l - 0.5; diff > 0.01 || diff < -0.01 {
		t.Errorf("lightness = %v, want 0.5", l)
	}
}

func TestLastBallLostResets(t *testing.T) {
	s := newTestSession(t)
	s.score = 5
	s.level = 3
	s.bricks = Grid{{target(), spare()}}
	s.bricks[0][0].HitCount = 2
	s.balls = []Ball{{X: 50, Y: 595, Size: 10, Speed: 6, DY: 4}}

	events := s.Advance(Input{})

	if s.Score() != 0 || s.Level() != 1 {
		t.Errorf("score/level = %d/%d, want 0/1", s.Score(), s.Level())
	}
	if len(s.Balls()) != 1 {
		t.Fatalf("balls = %d, want 1", len(s.Balls()))
	}
	if b := s.Balls()[0]; b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), want canvas center", b.X, b.Y)
	}
	if s.Bricks().Rows() != 10 || s.Bricks().Cols() != 5 {
		t.Errorf("grid = %dx%d, want fresh 10x5", s.Bricks().Rows(), s.Bricks().Cols())
	}
	for _, row := range s.Bricks() {
		for _, b := range row {
			if !b.Visible || b.HitCount != 0 {
				t.Fatalf("grid not fresh: %+v", b)
			}
		}
	}

	var reset *core.Event
	for i := range events {
		if events[i].Kind == core.EventGameReset {
			reset = &events[i]
		}
	}
	if reset == nil {
		t.Fatal("no game_reset event")
	}
	if reset.Score != 5 || reset.Level != 3 {
		t.Errorf("game_reset carries %d/%d, want final 5/3", reset.Score, reset.Level)
	}
}

func TestBallLostWithOthersInPlay(t *testing.T) {
	s := newTestSession(t)
	s.score = 4
	s.balls = []Ball{
		{X: 50, Y: 595, Size: 10, Speed: 6, DY: 4},
		{X: 60, Y: 595, Size: 10, Speed: 6, DY: 4},
		{X: 400, Y: 300, Size: 10, Speed: 6, DX: 4, DY: -4},
	}

	events := s.Advance(Input{})

	if len(s.Balls()) != 1 {
		t.Fatalf("balls = %d, want 1", len(s.Balls()))
	}
	if b := s.Balls()[0]; b.X != 404 || b.Y != 296 {
		t.Errorf("surviving ball at (%v, %v), want (404, 296)", b.X, b.Y)
	}
	if s.Score() != 4 {
		t.Errorf("score = %d, want 4", s.Score())
	}
	if hasEvent(events, core.EventGameReset) {
		t.Error("game reset with a ball still in play")
	}
}

func TestPaddleBounce(t *testing.T) {
	s := newTestSession(t)
	s.balls = []Ball{{X: 400, Y: 572, Size: 10, Speed: 6, DY: 4}}

	s.Advance(Input{})

	if b := s.Balls()[0]; b.DY != -6 {
		t.Errorf("DY = %v, want -6", b.DY)
	}
}

func TestPaddleStaysOnCanvas(t *testing.T) {
	s := newTestSession(t)
	s.balls = []Ball{{X: 400, Y: 300, Size: 10, Speed: 6}}

	s.PaddleAccelerate(DirLeft)
	for range 100 {
		s.Advance(Input{})
		if x := s.Paddle().X; x < 0 || x > 720 {
			t.Fatalf("paddle x = %v outside [0, 720]", x)
		}
	}
	if s.Paddle().X != 0 {
		t.Errorf("paddle x = %v, want 0", s.Paddle().X)
	}

	s.Advance(Input{Right: true})
	if s.Paddle().DX != 10 {
		t.Errorf("DX = %v, want 10", s.Paddle().DX)
	}
	for range 100 {
		s.Advance(Input{})
	}
	if s.Paddle().X != 720 {
		t.Errorf("paddle x = %v, want 720", s.Paddle().X)
	}

	s.Advance(Input{Stop: true})
	if s.Paddle().DX != 0 {
		t.Errorf("DX = %v after stop, want 0", s.Paddle().DX)
	}
}

func TestStopThenPressInSameFrame(t *testing.T) {
	s := newTestSession(t)
	s.Advance(Input{Stop: true, Left: true})
	if s.Paddle().DX != -10 {
		t.Errorf("DX = %v, want -10", s.Paddle().DX)
	}
}

func TestHitCountNeverDecreasesWithinLevel(t *testing.T) {
	s := newTestSession(t)
	level := s.Level()
	prev := make(map[[2]int]int)

	for range 5000 {
		events := s.Advance(Input{})
		if s.Level() != level {
			return
		}
		if hasEvent(events, core.EventGameReset) {
			// Reset regenerates the grid.
			clear(prev)
		}
		for i, row := range s.Bricks() {
			for j, b := range row {
				key := [2]int{i, j}
				if b.HitCount < prev[key] {
					t.Fatalf("brick[%d][%d] HitCount dropped from %d to %d", i, j, prev[key], b.HitCount)
				}
				if b.Visible != (b.HitCount < 3) {
					t.Fatalf("brick[%d][%d] visible=%v with %d hits", i, j, b.Visible, b.HitCount)
				}
				prev[key] = b.HitCount
			}
		}
	}
}

func TestApplyConfigWaitsForRegeneration(t *testing.T) {
	s := newTestSession(t)
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.Width = 120
	cfg.Ball.Size = 5

	s.ApplyConfig(cfg)
	if s.Paddle().W != 80 {
		t.Fatalf("paddle width = %v before regeneration, want 80", s.Paddle().W)
	}

	s.Reset()
	if s.Paddle().W != 120 {
		t.Errorf("paddle width = %v after reset, want 120", s.Paddle().W)
	}
	if s.Balls()[0].Size != 5 {
		t.Errorf("ball size = %v after reset, want 5", s.Balls()[0].Size)
	}
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("canvas = %vx%v, want unchanged 800x600", s.Width(), s.Height())
	}
}
