package util

import (
	"testing"

	"termpad/internal/editor"
	"termpad/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func TestEditedOnlyWhenRowsChange(t *testing.T) {
	seed := editor.NewState(editor.Normal, editor.Position{}, []string{"ab", "cd"})

	moved := editor.Reduce(seed, editor.Seq(
		editor.SwitchMode{Mode: editor.Insert},
		editor.Navigate{Kind: editor.RowDown, Amount: 1},
	))
	if _, ok := findKind(ComputeTags(seed, moved, false), state.EDITED); ok {
		t.Fatalf("did not expect EDITED for caret/mode changes")
	}

	typed := editor.Reduce(seed, editor.AddChar{Char: 'z', Pos: editor.Position{}})
	if _, ok := findKind(ComputeTags(seed, typed, false), state.EDITED); !ok {
		t.Fatalf("expected EDITED after typing")
	}

	grown := editor.Reduce(seed, editor.AddRow{Index: 2})
	if _, ok := findKind(ComputeTags(seed, grown, false), state.EDITED); !ok {
		t.Fatalf("expected EDITED after adding a row")
	}
}

func TestCounters(t *testing.T) {
	cur := editor.NewState(editor.Normal, editor.Position{}, []string{"héllo", "", "ab"})
	tags := ComputeTags(cur, cur, false)
	if idx, ok := findKind(tags, state.ROWS); !ok || tags[idx].Value != 3 {
		t.Fatalf("expected ROWS=3")
	}
	if idx, ok := findKind(tags, state.CHARS); !ok || tags[idx].Value != 7 {
		t.Fatalf("expected CHARS=7 counted in runes")
	}
}

func TestStableOrder(t *testing.T) {
	seed := editor.NewState(editor.Normal, editor.Position{}, []string{"a"})
	cur := editor.Reduce(seed, editor.AddRow{Index: 0})
	tags := ComputeTags(seed, cur, true)
	order := []state.TagKind{state.EDITED, state.EXTENDED, state.ROWS, state.CHARS}
	if len(tags) != len(order) {
		t.Fatalf("expected %d tags, got %d", len(order), len(tags))
	}
	for i, k := range order {
		if tags[i].Kind != k {
			t.Fatalf("tag %d: got %v want %v", i, tags[i].Kind, k)
		}
	}
}
