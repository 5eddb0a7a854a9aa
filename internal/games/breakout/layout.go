package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/brickfall/internal/config"
)

// Grid holds the bricks of one level, indexed [row][col].
type Grid [][]Brick

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cleared reports whether every brick is invisible.
func (g Grid) Cleared() bool {
	for _, row := range g {
		for _, b := range row {
			if b.Visible {
				return false
			}
		}
	}
	return true
}

// CountVisible returns the number of bricks still standing.
func (g Grid) CountVisible() int {
	count := 0
	for _, row := range g {
		for _, b := range row {
			if b.Visible {
				count++
			}
		}
	}
	return count
}

// GridSize returns the brick grid dimensions for a level:
// rows = min(max_rows, base_rows + level), cols = min(max_cols, base_cols + level/2).
func GridSize(level int, cfg config.BricksConfig) (rows, cols int) {
	rows = min(cfg.MaxRows, cfg.BaseRows+level)
	cols = min(cfg.MaxCols, cfg.BaseCols+level/2)
	return rows, cols
}

// NewBrickGrid builds the brick layout for a level.
//
// The row index drives the x position and the column index drives the y
// position, so "rows" are laid out left to right on screen.
// Special and type are rolled independently per brick.
func NewBrickGrid(level int, cfg config.BricksConfig, rng *rand.Rand) Grid {
	rows, cols := GridSize(level, cfg)
	types := brickTypes(cfg.Types)

	grid := make(Grid, rows)
	for i := range rows {
		grid[i] = make([]Brick, cols)
		for j := range cols {
			special := rng.Float64() < cfg.SpecialChance
			kind := types[rng.IntN(len(types))]

			grid[i][j] = Brick{
				X:       float64(i)*(cfg.Width+cfg.Padding) + cfg.OffsetX,
				Y:       float64(j)*(cfg.Height+cfg.Padding) + cfg.OffsetY,
				W:       cfg.Width,
				H:       cfg.Height,
				Visible: true,
				Special: special,
				Type:    kind,
			}
		}
	}
	return grid
}

// brickTypes converts config names; unknown names were rejected by
// config validation and fall back to normal here.
func brickTypes(names []string) []BrickType {
	types := make([]BrickType, 0, len(names))
	for _, name := range names {
		t, err := ParseBrickType(name)
		if err != nil {
			t = BrickNormal
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		types = append(types, BrickNormal)
	}
	return types
}
