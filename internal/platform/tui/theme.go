package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Theme controls how the cell buffer and status bar are colored.
type Theme struct {
	Name       string
	Background lipgloss.Color // Empty uses the terminal background
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Dim        lipgloss.Color

	// remap swaps game colors that would vanish on this background
	remap map[core.Color]core.Color
}

// Theme names persisted in settings.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DarkTheme is the default neon-on-black look.
func DarkTheme() Theme {
	return Theme{
		Name:       ThemeDark,
		Background: lipgloss.Color("#0b0b16"),
		Foreground: lipgloss.Color("#e6e6ff"),
		Accent:     lipgloss.Color(core.ColorCyan),
		Dim:        lipgloss.Color("#5c5c7a"),
	}
}

// LightTheme darkens colors that have too little contrast on white.
func LightTheme() Theme {
	return Theme{
		Name:       ThemeLight,
		Background: lipgloss.Color("#f4f4f8"),
		Foreground: lipgloss.Color("#1a1a2e"),
		Accent:     lipgloss.Color(core.ColorPurple),
		Dim:        lipgloss.Color("#8a8aa0"),
		remap: map[core.Color]core.Color{
			core.ColorWhite:  "#1a1a2e",
			core.ColorYellow: "#b38600",
			core.ColorCyan:   "#008b99",
			core.ColorGreen:  "#00994d",
		},
	}
}

// ThemeByName returns the named theme, falling back to dark.
func ThemeByName(name string) Theme {
	if name == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Next returns the other theme.
func (t Theme) Next() Theme {
	if t.Name == ThemeLight {
		return DarkTheme()
	}
	return LightTheme()
}

// Color resolves a game color for this theme.
func (t Theme) Color(c core.Color) lipgloss.Color {
	if c.IsDefault() {
		return t.Foreground
	}
	if mapped, ok := t.remap[c]; ok {
		c = mapped
	}
	return lipgloss.Color(c)
}

// base returns a style with the theme background applied.
func (t Theme) base() lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.Background != "" {
		s = s.Background(t.Background)
	}
	return s
}

// CellStyle returns the style for a cell of color c.
func (t Theme) CellStyle(c core.Color) lipgloss.Style {
	return t.base().Foreground(t.Color(c))
}
