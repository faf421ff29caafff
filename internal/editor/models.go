package editor

import "strings"

// Mode represents the editor's current input mode.
type Mode int

const (
	Normal Mode = iota
	Insert
)

func (m Mode) String() string {
	if m == Insert {
		return "insert"
	}
	return "normal"
}

// LookupMode maps "normal" or "insert", in any letter case, to a Mode.
func LookupMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "normal":
		return Normal, true
	case "insert":
		return Insert, true
	}
	return Normal, false
}

// ParseMode is LookupMode with unknown values mapped to Normal.
func ParseMode(s string) Mode {
	m, _ := LookupMode(s)
	return m
}

// Position is a zero-based caret location. Col counts runes, not bytes.
type Position struct {
	Row int
	Col int
}

// State is the complete editor value. A State is never modified after it is
// returned by Reduce or NewState; Content in particular is read-only and a
// reduction that edits text always builds a fresh slice.
type State struct {
	Mode    Mode
	Caret   Position
	Content []string
}

// NewState builds a valid state from arbitrary input. Empty content becomes a
// single empty row and the caret is clamped into bounds for mode.
func NewState(mode Mode, caret Position, rows []string) State {
	content := make([]string, len(rows))
	copy(content, rows)
	if len(content) == 0 {
		content = []string{""}
	}
	s := State{Mode: mode, Content: content}
	s.Caret = clampCaret(s, caret)
	return s
}

// Rows returns a copy of the content rows.
func (s State) Rows() []string {
	out := make([]string, len(s.Content))
	copy(out, s.Content)
	return out
}

// RowCount returns the number of content rows.
func (s State) RowCount() int { return len(s.Content) }

// RowLen returns the rune length of row r, or 0 when r is out of range.
func (s State) RowLen(r int) int {
	if r < 0 || r >= len(s.Content) {
		return 0
	}
	return len([]rune(s.Content[r]))
}

// Equal reports whether two states have the same mode, caret and rows.
func (s State) Equal(o State) bool {
	if s.Mode != o.Mode || s.Caret != o.Caret || len(s.Content) != len(o.Content) {
		return false
	}
	for i := range s.Content {
		if s.Content[i] != o.Content[i] {
			return false
		}
	}
	return true
}
