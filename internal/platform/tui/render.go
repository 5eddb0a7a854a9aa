package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickfall/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Primary and secondary follow the classic #0095dd blue.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorPrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("32")),
	core.ColorSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("32")).Bold(true),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// A non-empty background is a hex color applied behind every cell.
func RenderScreen(s *core.Screen, background string) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, background).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color, background string) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if background != "" {
		style = style.Background(lipgloss.Color(background))
	}
	return style
}
