package breakout

import "math"

// Snapshot contains the observable session state for determinism checks
// and debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame uint64
	Score int
	Level int

	PaddleX  float64
	PaddleDX float64

	// Each ball is 6 values: X, Y, Size, Speed, DX, DY
	BallCount int
	BallData  []float64

	// Bricks flattened row-major; each brick is 4 ints: Visible, HitCount, Special, Type
	Rows      int
	Cols      int
	BrickData []int
}

// Snapshot returns the current state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(s.balls)*6)
	for _, b := range s.balls {
		ballData = append(ballData, b.X, b.Y, b.Size, b.Speed, b.DX, b.DY)
	}

	brickData := make([]int, 0, s.bricks.Rows()*s.bricks.Cols()*4)
	for _, row := range s.bricks {
		for _, b := range row {
			brickData = append(brickData, boolInt(b.Visible), b.HitCount, boolInt(b.Special), int(b.Type))
		}
	}

	return Snapshot{
		Frame:     s.frame,
		Score:     s.score,
		Level:     s.level,
		PaddleX:   s.paddle.X,
		PaddleDX:  s.paddle.DX,
		BallCount: len(s.balls),
		BallData:  ballData,
		Rows:      s.bricks.Rows(),
		Cols:      s.bricks.Cols(),
		BrickData: brickData,
	}
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleDX)
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rows)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cols)      //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
