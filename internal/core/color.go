package core

// Color is a semantic paint for a drawn element.
// Each host maps it to what it can display: ANSI 256 codes in the terminal,
// RGBA on the desktop canvas.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault   Color = iota
	ColorPrimary         // Paddle and plain bricks
	ColorSecondary       // Balls
	ColorGold            // Special bricks
	ColorRed             // Heart bricks
	ColorBlue            // Car bricks
	ColorGray            // Airplane bricks
	ColorText            // HUD text
	ColorMuted           // Overlay chrome
)

// String returns the lower-case name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPrimary:
		return "primary"
	case ColorSecondary:
		return "secondary"
	case ColorGold:
		return "gold"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGray:
		return "gray"
	case ColorText:
		return "text"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
