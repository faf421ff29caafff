package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"termpad/internal/config"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Text      lipgloss.Color
	Caret     lipgloss.Color
	CaretChar lipgloss.Color
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Text:      lipgloss.Color("#D0D0D0"),
		Caret:     lipgloss.Color("#F0AD4E"),
		CaretChar: lipgloss.Color("#111111"),
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
	}
}

// PaletteFromTheme overrides the editor colours of the default palette with
// the configured theme. Empty theme entries keep the defaults.
func PaletteFromTheme(t config.Theme) Palette {
	p := DefaultPalette()
	if t.Text != "" {
		p.Text = lipgloss.Color(t.Text)
	}
	if t.Caret != "" {
		p.Caret = lipgloss.Color(t.Caret)
	}
	if t.CaretChar != "" {
		p.CaretChar = lipgloss.Color(t.CaretChar)
	}
	return p
}
