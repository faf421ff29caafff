package textview

import (
	"testing"

	"termpad/internal/editor"
	"termpad/internal/tui/util"
)

func plain() TextView {
	return NewTextView(Options{Palette: util.DefaultPalette(), NoColor: true})
}

func TestNormalModeBlockCaret(t *testing.T) {
	s := editor.NewState(editor.Normal, editor.Position{Row: 1, Col: 1}, []string{"ab", "cd"})
	if out := plain().View(s); out != "ab\nc[d]" {
		t.Fatalf("unexpected view %q", out)
	}
}

func TestNormalModeEmptyRow(t *testing.T) {
	s := editor.NewState(editor.Normal, editor.Position{}, []string{""})
	if out := plain().View(s); out != "[ ]" {
		t.Fatalf("unexpected view %q", out)
	}
}

func TestInsertModeBarCaret(t *testing.T) {
	s := editor.NewState(editor.Insert, editor.Position{Col: 1}, []string{"ab"})
	if out := plain().View(s); out != "a|b" {
		t.Fatalf("unexpected view %q", out)
	}
	s = editor.NewState(editor.Insert, editor.Position{Col: 2}, []string{"ab"})
	if out := plain().View(s); out != "ab|" {
		t.Fatalf("unexpected view at row end %q", out)
	}
}

func TestRowStartIndents(t *testing.T) {
	v := NewTextView(Options{Palette: util.DefaultPalette(), NoColor: true, RowStart: 2})
	s := editor.NewState(editor.Normal, editor.Position{}, []string{"a", "b"})
	if out := v.View(s); out != "  [a]\n  b" {
		t.Fatalf("unexpected view %q", out)
	}
}

func TestCaretCellMeasuresWideRunes(t *testing.T) {
	s := editor.NewState(editor.Normal, editor.Position{Row: 0, Col: 2}, []string{"日本x"})
	x, y, w := CaretCell(s, 1)
	if x != 5 || y != 0 || w != 1 {
		t.Fatalf("got x=%d y=%d w=%d", x, y, w)
	}
	s = editor.NewState(editor.Normal, editor.Position{Row: 0, Col: 1}, []string{"日本x"})
	if x, _, w := CaretCell(s, 0); x != 2 || w != 2 {
		t.Fatalf("got x=%d w=%d", x, w)
	}
	s = editor.NewState(editor.Insert, editor.Position{Row: 0, Col: 3}, []string{"日本x"})
	if x, _, w := CaretCell(s, 0); x != 5 || w != 1 {
		t.Fatalf("got x=%d w=%d for trailing slot", x, w)
	}
}
