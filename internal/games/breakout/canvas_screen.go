package breakout

import (
	"math"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Glyphs used when shapes are rasterized onto terminal cells.
const (
	RectGlyph = '█'
	ArcGlyph  = '●'
	PathGlyph = '▲'
)

// ScreenCanvas draws canvas pixel coordinates onto a character Screen.
// Each cell covers a (canvasW/cols)×(canvasH/rows) pixel area and is filled
// when its center lies inside the shape. Shapes smaller than a cell still
// paint the cell under their center.
type ScreenCanvas struct {
	dst    *core.Screen
	scaleX float64 // Cells per pixel
	scaleY float64
}

// NewScreenCanvas maps a canvasW×canvasH pixel canvas onto dst.
func NewScreenCanvas(dst *core.Screen, canvasW, canvasH float64) *ScreenCanvas {
	return &ScreenCanvas{
		dst:    dst,
		scaleX: float64(dst.Width()) / canvasW,
		scaleY: float64(dst.Height()) / canvasH,
	}
}

// CellAt returns the cell containing the pixel (x, y).
func (c *ScreenCanvas) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

// pixelAt returns the pixel at the center of a cell.
func (c *ScreenCanvas) pixelAt(col, row int) core.Point {
	return core.Point{
		X: (float64(col) + 0.5) / c.scaleX,
		Y: (float64(row) + 0.5) / c.scaleY,
	}
}

// ClearRect implements Canvas.
func (c *ScreenCanvas) ClearRect(x, y, w, h float64) {
	c.fill(x, y, w, h, ' ', core.ColorDefault, func(core.Point) bool { return true })
}

// FillRect implements Canvas.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col core.Color) {
	r := core.NewRect(x, y, w, h)
	c.fill(x, y, w, h, RectGlyph, col, func(p core.Point) bool {
		return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
	})
}

// FillArc implements Canvas.
func (c *ScreenCanvas) FillArc(cx, cy, radius, start, end float64, col core.Color) {
	full := end-start >= 2*math.Pi
	c.fill(cx-radius, cy-radius, 2*radius, 2*radius, ArcGlyph, col, func(p core.Point) bool {
		dx, dy := p.X-cx, p.Y-cy
		if dx*dx+dy*dy > radius*radius {
			return false
		}
		if full {
			return true
		}
		a := math.Atan2(dy, dx)
		if a < 0 {
			a += 2 * math.Pi
		}
		return angleBetween(a, start, end)
	})
}

// FillPath implements Canvas.
func (c *ScreenCanvas) FillPath(points []core.Point, col core.Color) {
	if len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	c.fill(minX, minY, maxX-minX, maxY-minY, PathGlyph, col, func(p core.Point) bool {
		return insidePolygon(p, points)
	})
}

// FillText implements Canvas. The baseline row is the row holding y.
func (c *ScreenCanvas) FillText(text string, x, y float64, col core.Color) {
	cx, cy := c.CellAt(x, y)
	c.dst.DrawTextColored(cx, cy, text, col)
}

// fill paints every cell of the pixel bounding box whose center passes
// inside. If no cell passes, the cell under the box center is painted.
func (c *ScreenCanvas) fill(x, y, w, h float64, glyph rune, col core.Color, inside func(core.Point) bool) {
	c0, r0 := c.CellAt(x, y)
	c1, r1 := c.CellAt(x+w, y+h)

	painted := false
	for row := r0; row <= r1; row++ {
		for cell := c0; cell <= c1; cell++ {
			if inside(c.pixelAt(cell, row)) {
				c.dst.SetColored(cell, row, glyph, col)
				painted = true
			}
		}
	}
	if !painted {
		cell, row := c.CellAt(x+w/2, y+h/2)
		c.dst.SetColored(cell, row, glyph, col)
	}
}

// angleBetween reports whether a lies on the clockwise sweep from start to
// end. All angles are in [0, 2π) after normalization.
func angleBetween(a, start, end float64) bool {
	start = math.Mod(start, 2*math.Pi)
	end = math.Mod(end, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	if end < 0 {
		end += 2 * math.Pi
	}
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(p core.Point, poly []core.Point) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
