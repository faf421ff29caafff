package editor

// maxCol returns the rightmost valid caret column on row r. Normal mode rests
// on an existing rune; Insert mode may rest one past the last rune. The
// result is never negative, so an empty row in Normal mode yields 0.
func maxCol(s State, r int, mode Mode) int {
	l := s.RowLen(r)
	if mode == Normal {
		l--
	}
	if l < 0 {
		return 0
	}
	return l
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// moveCaret computes the caret after a navigation. Requests beyond an edge
// saturate instead of wrapping.
func moveCaret(s State, nav Navigate) Position {
	r, c := s.Caret.Row, s.Caret.Col
	n := nav.Amount
	if n < 0 {
		n = 0
	}
	switch nav.Kind {
	case StepLeft:
		c -= n
		if c < 0 {
			c = 0
		}
		return Position{Row: r, Col: c}
	case StepRight:
		hi := maxCol(s, r, s.Mode)
		// Compare against the remaining distance; c+n may overflow.
		if n >= hi-c {
			return Position{Row: r, Col: hi}
		}
		return Position{Row: r, Col: c + n}
	case RowDown:
		if n <= len(s.Content)-1-r {
			return Position{Row: r + n, Col: clampInt(c, 0, maxCol(s, r+n, s.Mode))}
		}
		return s.Caret
	case RowUp:
		if n <= r {
			return Position{Row: r - n, Col: clampInt(c, 0, maxCol(s, r-n, s.Mode))}
		}
		return s.Caret
	}
	return s.Caret
}

// clampCaret pulls p inside the content of s for s.Mode.
func clampCaret(s State, p Position) Position {
	row := clampInt(p.Row, 0, len(s.Content)-1)
	return Position{Row: row, Col: clampInt(p.Col, 0, maxCol(s, row, s.Mode))}
}
