// Package gui hosts brickfall in a desktop window with ebiten. It paints the
// game's canvas commands with vector paths and runs the rules panel with
// ebitenui.
package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Canvas background before the first level-up.
var canvasBackground = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// palette maps semantic colors to screen colors.
var palette = map[core.Color]color.Color{
	core.ColorDefault:   colornames.Black,
	core.ColorPrimary:   colorful.MustParseHex("#0095dd"),
	core.ColorSecondary: colorful.MustParseHex("#2a7ab0"),
	core.ColorGold:      colornames.Gold,
	core.ColorRed:       colornames.Red,
	core.ColorBlue:      colornames.Blue,
	core.ColorGray:      colornames.Gray,
	core.ColorText:      colorful.MustParseHex("#0095dd"),
	core.ColorMuted:     colornames.Darkgray,
}

// colorOf returns the screen color for c, black when unmapped.
func colorOf(c core.Color) color.Color {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.Black
}

// face is the HUD font.
var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// Canvas paints canvas commands onto an ebiten image.
type Canvas struct {
	dst        *ebiten.Image
	background color.Color
}

// NewCanvas wraps dst. ClearRect paints background; nil means the default
// light gray.
func NewCanvas(dst *ebiten.Image, background color.Color) *Canvas {
	if background == nil {
		background = canvasBackground
	}
	return &Canvas{dst: dst, background: background}
}

// ClearRect paints the area with the canvas background.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.background, false)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), colorOf(clr), false)
}

// FillArc fills the circular segment from start to end, clockwise.
func (c *Canvas) FillArc(cx, cy, r, start, end float64, clr core.Color) {
	if end-start >= 2*math.Pi {
		vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), colorOf(clr), true)
		return
	}

	var p vector.Path
	p.MoveTo(float32(cx+r*math.Cos(start)), float32(cy+r*math.Sin(start)))
	p.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)
	p.Close()
	c.fill(&p, clr)
}

// FillPath fills a closed polygon.
func (c *Canvas) FillPath(points []core.Point, clr core.Color) {
	if len(points) < 3 {
		return
	}

	var p vector.Path
	p.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, pt := range points[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.Close()
	c.fill(&p, clr)
}

func (c *Canvas) fill(p *vector.Path, clr core.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(colorOf(clr))
	vector.FillPath(c.dst, p, &vector.FillOptions{}, op)
}

// FillText draws text with y as the baseline.
func (c *Canvas) FillText(text string, x, y float64, clr core.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(colorOf(clr))
	ebtext.Draw(c.dst, text, face, op)
}
