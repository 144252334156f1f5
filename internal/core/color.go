package core

// Color is a foreground color for a screen cell, written as a hex string
// ("#rrggbb") so the renderer can hand it straight to Lip Gloss.
// The zero value means "terminal default".
type Color string

// Palette used by the arcade. Brick colors follow the neon row palette.
const (
	ColorDefault Color = ""
	ColorPink    Color = "#ff0066"
	ColorOrange  Color = "#ff6600"
	ColorYellow  Color = "#ffcc00"
	ColorGreen   Color = "#00ff66"
	ColorBlue    Color = "#0066ff"
	ColorViolet  Color = "#6600ff"
	ColorCyan    Color = "#00f0f0"
	ColorPurple  Color = "#a000f0"
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#8a8a8a"
)

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
