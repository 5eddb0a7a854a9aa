package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// RulesLines is the text of the rules panel.
var RulesLines = []string{
	"How to play",
	"",
	"Move the paddle left and right to keep the balls in play.",
	"A brick breaks after three hits; every hit scores a point.",
	"Special bricks release two extra balls every time they are hit.",
	"Clear every brick to reach the next level.",
	"Each level adds a row or column of bricks.",
	"Lose every ball and the game starts over.",
}

// Overlay is the rules panel state. It lives outside the simulation; the
// game keeps running while the panel is shown.
type Overlay struct {
	visible bool
}

// Visible reports whether the panel is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Open shows the panel.
func (o *Overlay) Open() { o.visible = true }

// Close hides the panel.
func (o *Overlay) Close() { o.visible = false }

// DrawRules draws the rules panel centered on a character screen, with a
// hint for the key that closes it.
func DrawRules(dst *core.Screen, closeHint string) {
	lines := append([]string{}, RulesLines...)
	if closeHint != "" {
		lines = append(lines, "", closeHint)
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, core.ColorMuted)
	for i, l := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorPrimary
		}
		dst.DrawTextColored(x+2, y+1+i, l, c)
	}
}
