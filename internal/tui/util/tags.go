package util

import (
	"unicode/utf8"

	"termpad/internal/editor"
	"termpad/internal/tui/state"
)

// ComputeTags calculates the session chips for the current editor state
// relative to the seed the session started from.
//
// The returned slice preserves a stable order:
//   Edited, Extended, Rows, Chars
//
// Rules:
// - Edited is present when the rows differ from the seed rows. Caret and
//   mode changes alone do not count as edits.
// - Extended is present when the deletion keymap is enabled.
// - Rows and Chars are always included (counters).
func ComputeTags(seed, cur editor.State, extended bool) []state.Tag {
	tags := make([]state.Tag, 0, 4)

	// 1) Edited
	if !sameRows(seed.Content, cur.Content) {
		tags = append(tags, state.Tag{Kind: state.EDITED})
	}

	// 2) Extended keymap
	if extended {
		tags = append(tags, state.Tag{Kind: state.EXTENDED})
	}

	// 3) Rows (N)
	tags = append(tags, state.Tag{Kind: state.ROWS, Value: len(cur.Content)})

	// 4) Chars (M), counted in runes across all rows
	tags = append(tags, state.Tag{Kind: state.CHARS, Value: runeCount(cur.Content)})

	return tags
}

func sameRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// runeCount returns the total length of rows in runes (Unicode code points).
func runeCount(rows []string) int {
	n := 0
	for _, r := range rows {
		n += utf8.RuneCountInString(r)
	}
	return n
}
