package breakout

import "testing"

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name           string
		ball           Ball
		wantDX, wantDY float64
	}{
		{"free", Ball{X: 400, Y: 300, Size: 10, DX: 4, DY: -4}, 4, -4},
		{"right wall", Ball{X: 795, Y: 300, Size: 10, DX: 4, DY: -4}, -4, -4},
		{"left wall", Ball{X: 5, Y: 300, Size: 10, DX: -4, DY: -4}, 4, -4},
		{"top wall", Ball{X: 400, Y: 5, Size: 10, DX: 4, DY: -4}, 4, 4},
		{"corner", Ball{X: 5, Y: 5, Size: 10, DX: -4, DY: -4}, 4, 4},
		{"touching right is not past it", Ball{X: 790, Y: 300, Size: 10, DX: 4, DY: -4}, 4, -4},
		{"bottom does not reflect", Ball{X: 400, Y: 605, Size: 10, DX: 4, DY: 4}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			ReflectWalls(&b, 800)
			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
			if b.X != tt.ball.X || b.Y != tt.ball.Y {
				t.Error("position must not be corrected")
			}
		})
	}
}

func TestHitsPaddle(t *testing.T) {
	paddle := Paddle{X: 360, Y: 580, W: 80, H: 10}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centered and below top", 400, 575, true},
		{"above paddle", 400, 565, false},
		{"left edge touching", 370, 575, false},
		{"right edge touching", 430, 575, false},
		{"just inside left", 370.5, 575, true},
		{"beside paddle", 300, 575, false},
		{"below paddle still counts", 400, 595, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{X: tt.x, Y: tt.y, Size: 10}
			if got := HitsPaddle(&b, &paddle); got != tt.want {
				t.Errorf("HitsPaddle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBouncePaddleUsesBallSpeed(t *testing.T) {
	b := Ball{Speed: 7, DX: 4, DY: 4}
	BouncePaddle(&b)
	if b.DY != -7 || b.DX != 4 {
		t.Errorf("velocity = (%v, %v), want (4, -7)", b.DX, b.DY)
	}

	// Moving up already: still set, no direction check.
	BouncePaddle(&b)
	if b.DY != -7 {
		t.Errorf("DY = %v, want -7", b.DY)
	}
}

func TestHitsBrick(t *testing.T) {
	brick := Brick{X: 100, Y: 100, W: 70, H: 20, Visible: true}

	tests := []struct {
		name    string
		x, y    float64
		visible bool
		want    bool
	}{
		{"inside", 135, 110, true, true},
		{"overlapping from below", 135, 125, true, true},
		{"touching bottom edge", 135, 130, true, false},
		{"touching top edge", 135, 90, true, false},
		{"wider than the brick edge", 105, 110, true, false},
		{"invisible", 135, 110, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := brick
			br.Visible = tt.visible
			b := Ball{X: tt.x, Y: tt.y, Size: 10}
			if got := HitsBrick(&b, &br); got != tt.want {
				t.Errorf("HitsBrick() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFellOff(t *testing.T) {
	if FellOff(&Ball{Y: 590, Size: 10}, 600) {
		t.Error("ball touching the bottom should stay in play")
	}
	if !FellOff(&Ball{Y: 591, Size: 10}, 600) {
		t.Error("ball past the bottom should fall off")
	}
}

func TestMovePaddleClamps(t *testing.T) {
	tests := []struct {
		name  string
		x, dx float64
		want  float64
	}{
		{"still", 100, 0, 100},
		{"moving right", 100, 10, 110},
		{"moving left", 100, -10, 90},
		{"left edge", 5, -10, 0},
		{"right edge", 715, 10, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paddle{X: tt.x, W: 80, DX: tt.dx}
			MovePaddle(&p, 800)
			if p.X != tt.want {
				t.Errorf("X = %v, want %v", p.X, tt.want)
			}
		})
	}
}
