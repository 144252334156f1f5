package tui

import (
	"fmt"
	"strings"
)

// statusBar renders the row below the game: high score, sound and theme,
// or the key help when toggled with '?'.
func (m *Model) statusBar() string {
	width := m.config.ScreenW
	bar := m.theme.base().Foreground(m.theme.Dim).Width(width).MaxWidth(width)

	if m.showHelp {
		return bar.Render(m.help.ShortHelpView(m.keys.Keys.ShortHelp()))
	}

	accent := m.theme.base().Foreground(m.theme.Accent).Bold(true)
	label := m.theme.base().Foreground(m.theme.Dim)
	sep := label.Render(" │ ")

	parts := []string{
		label.Render("High ") + accent.Render(fmt.Sprintf("%d", m.highScore)),
	}
	if m.hasSound {
		sound := "on"
		if m.mute.IsMuted() {
			sound = "muted"
		}
		parts = append(parts, label.Render("Sound ")+accent.Render(sound))
	}
	parts = append(parts,
		label.Render("Theme ")+accent.Render(m.theme.Name),
		label.Render("? help"),
	)

	return bar.Render(strings.Join(parts, sep))
}
