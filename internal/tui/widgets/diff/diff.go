package diff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"termpad/internal/tui/state"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the seed rows against the current rows. Rows are aligned with
// a line-level diff; changed row pairs get char-level highlights.
func (DiffView) View(s state.UIState, seed, current []string) string {
	ops := alignRows(seed, current)
	if s.View == state.SideBySide {
		return sideBySide(ops, s)
	}
	return unified(ops, s.NoColor)
}

type opKind int

const (
	opEqual opKind = iota
	opDelete
	opInsert
	opChange
)

// rowOp is one aligned row pair. Before is empty for inserts, After for
// deletes.
type rowOp struct {
	Kind   opKind
	Before string
	After  string
}

// alignRows diffs rows as lines and pairs adjacent delete/insert runs into
// changes so they can be highlighted per character.
func alignRows(before, after []string) []rowOp {
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(joinRows(before), joinRows(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var ops []rowOp
	var dels []string
	flush := func() {
		for _, r := range dels {
			ops = append(ops, rowOp{Kind: opDelete, Before: r})
		}
		dels = nil
	}
	for _, df := range diffs {
		rows := splitRows(df.Text)
		switch df.Type {
		case dmp.DiffEqual:
			flush()
			for _, r := range rows {
				ops = append(ops, rowOp{Kind: opEqual, Before: r, After: r})
			}
		case dmp.DiffDelete:
			dels = append(dels, rows...)
		case dmp.DiffInsert:
			for _, r := range rows {
				if len(dels) > 0 {
					ops = append(ops, rowOp{Kind: opChange, Before: dels[0], After: r})
					dels = dels[1:]
					continue
				}
				ops = append(ops, rowOp{Kind: opInsert, After: r})
			}
		}
	}
	flush()
	return ops
}

// joinRows terminates every row so that the last row diffs like the others.
func joinRows(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

func splitRows(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func unified(ops []rowOp, noColor bool) string {
	var b strings.Builder
	b.WriteString("SEED vs CURRENT (Unified)\n")
	changed := false
	for _, op := range ops {
		switch op.Kind {
		case opEqual:
			fmt.Fprintf(&b, "  %s\n", paint(faint, op.Before, noColor))
		case opDelete:
			changed = true
			fmt.Fprintf(&b, "%s%s\n", paint(delLine, "- ", noColor), paint(delLine, op.Before, noColor))
		case opInsert:
			changed = true
			fmt.Fprintf(&b, "%s%s\n", paint(addLine, "+ ", noColor), paint(addLine, op.After, noColor))
		case opChange:
			changed = true
			left, right := charSpans(op.Before, op.After, noColor)
			fmt.Fprintf(&b, "%s%s\n", paint(delLine, "- ", noColor), left)
			fmt.Fprintf(&b, "%s%s\n", paint(addLine, "+ ", noColor), right)
		}
	}
	if !changed {
		b.WriteString("No changes\n")
	}
	return b.String()
}

func sideBySide(ops []rowOp, s state.UIState) string {
	const sep = " │ "
	var b strings.Builder
	b.WriteString("SEED │ CURRENT\n")
	colWidth := 40
	if s.Width > 0 {
		colWidth = (s.Width - runewidth.StringWidth(sep)) / 2
		if colWidth < 10 {
			colWidth = 10
		}
	}
	for _, op := range ops {
		l := pad(clip(op.Before, colWidth), colWidth)
		r := clip(op.After, colWidth)
		if !s.NoColor {
			switch op.Kind {
			case opEqual:
				l, r = faint.Render(l), faint.Render(r)
			case opDelete:
				l = delLine.Render(l)
			case opInsert:
				r = addLine.Render(r)
			case opChange:
				l, r = delLine.Render(l), addLine.Render(r)
			}
		}
		fmt.Fprintf(&b, "%s%s%s\n", l, sep, r)
	}
	return b.String()
}

// charSpans renders a changed row pair with deleted and inserted runs
// underlined. In no-color mode the runs are bracketed instead.
func charSpans(before, after string, noColor bool) (string, string) {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)
	var lbuf, rbuf strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			if noColor {
				lbuf.WriteString("[-" + df.Text + "-]")
			} else {
				lbuf.WriteString(delChar.Render(df.Text))
			}
		case dmp.DiffInsert:
			if noColor {
				rbuf.WriteString("{+" + df.Text + "+}")
			} else {
				rbuf.WriteString(addChar.Render(df.Text))
			}
		case dmp.DiffEqual:
			lbuf.WriteString(paint(delLine, df.Text, noColor))
			rbuf.WriteString(paint(addLine, df.Text, noColor))
		}
	}
	return lbuf.String(), rbuf.String()
}

func paint(st lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

// clip and pad measure terminal cells, so wide runes count twice.
func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
