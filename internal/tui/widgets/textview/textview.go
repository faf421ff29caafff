package textview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"termpad/internal/editor"
	"termpad/internal/tui/util"
)

// Options controls how rows and the caret are drawn.
type Options struct {
	Palette  util.Palette
	NoColor  bool
	RowStart int // blank cells left of every row
}

type TextView struct {
	opts  Options
	text  lipgloss.Style
	block lipgloss.Style
	bar   lipgloss.Style
}

func NewTextView(opts Options) TextView {
	return TextView{
		opts:  opts,
		text:  lipgloss.NewStyle().Foreground(opts.Palette.Text),
		block: lipgloss.NewStyle().Background(opts.Palette.Caret).Foreground(opts.Palette.CaretChar),
		bar:   lipgloss.NewStyle().Foreground(opts.Palette.Caret),
	}
}

// View draws every row, one per line, and the caret on its row. Normal mode
// draws a block over the rune under the caret; Insert mode draws a thin bar
// in front of it.
func (v TextView) View(s editor.State) string {
	indent := strings.Repeat(" ", v.opts.RowStart)
	var b strings.Builder
	for i, row := range s.Content {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		if i == s.Caret.Row {
			b.WriteString(v.caretRow(row, s.Caret.Col, s.Mode))
			continue
		}
		b.WriteString(v.paint(v.text, row))
	}
	return b.String()
}

func (v TextView) caretRow(row string, col int, mode editor.Mode) string {
	runes := []rune(row)
	if col > len(runes) {
		col = len(runes)
	}
	if col < 0 {
		col = 0
	}
	before := string(runes[:col])
	under := " "
	after := ""
	if col < len(runes) {
		under = string(runes[col])
		after = string(runes[col+1:])
	}
	if runewidth.StringWidth(under) == 0 {
		under = " "
	}

	if mode == editor.Insert {
		bar := "│"
		if v.opts.NoColor {
			bar = "|"
		}
		return v.paint(v.text, before) + v.paint(v.bar, bar) + v.paint(v.text, string(runes[col:]))
	}

	caret := v.block.Render(under)
	if v.opts.NoColor {
		caret = "[" + under + "]"
	}
	return v.paint(v.text, before) + caret + v.paint(v.text, after)
}

func (v TextView) paint(st lipgloss.Style, s string) string {
	if v.opts.NoColor || s == "" {
		return s
	}
	return st.Render(s)
}

// CaretCell returns the terminal cell occupied by the caret: the column x,
// the line y and the width in cells of the rune it covers. Wide runes count
// as two cells; the slot past the end of a row is one cell wide.
func CaretCell(s editor.State, rowStart int) (x, y, w int) {
	if s.Caret.Row < 0 || s.Caret.Row >= len(s.Content) {
		return rowStart, 0, 1
	}
	runes := []rune(s.Content[s.Caret.Row])
	col := s.Caret.Col
	if col > len(runes) {
		col = len(runes)
	}
	if col < 0 {
		col = 0
	}
	x = rowStart + runewidth.StringWidth(string(runes[:col]))
	w = 1
	if col < len(runes) {
		if rw := runewidth.RuneWidth(runes[col]); rw > 0 {
			w = rw
		}
	}
	return x, s.Caret.Row, w
}
