package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termpad/internal/editor"
	"termpad/internal/tui/state"
	"termpad/internal/tui/util"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

var (
	normalStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(util.DefaultPalette().Success).Foreground(lipgloss.Color("#FFFFFF"))
	insertStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(util.DefaultPalette().Primary).Foreground(lipgloss.Color("#FFFFFF"))
	noticeStyle = lipgloss.NewStyle().Faint(true)
)

// View composes the status line: the upper-cased mode, the 1-based caret
// position, the session chips and any pending notice.
func (StatusBar) View(ui state.UIState, s editor.State, chips string) string {
	mode, pos := editor.Status(s)
	if ui.NoColor {
		mode = "[" + mode + "]"
	} else if s.Mode == editor.Insert {
		mode = insertStyle.Render(mode)
	} else {
		mode = normalStyle.Render(mode)
	}
	parts := []string{mode, pos}
	if chips != "" {
		parts = append(parts, chips)
	}
	if ui.Notice != "" {
		notice := ui.Notice
		if !ui.NoColor {
			notice = noticeStyle.Render(notice)
		}
		parts = append(parts, notice)
	}
	return strings.Join(parts, "  ")
}
