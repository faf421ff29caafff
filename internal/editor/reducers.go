package editor

// Reduce applies a to s and returns the resulting state. It never modifies s
// and never fails: requests that cannot be honoured leave the state as is.
//
// Batches are folded with an explicit work list, so nesting depth and batch
// length do not grow the call stack.
func Reduce(s State, a Action) State {
	pending := []Action{a}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		if b, ok := next.(Batch); ok {
			if len(b.Actions) == 0 {
				continue
			}
			spliced := make([]Action, 0, len(b.Actions)+len(pending))
			spliced = append(spliced, b.Actions...)
			pending = append(spliced, pending...)
			continue
		}
		s = apply(s, next)
	}
	return s
}

// apply reduces a single non-batch action.
func apply(s State, a Action) State {
	switch a := a.(type) {
	case SwitchMode:
		s.Mode = a.Mode
		return s
	case Navigate:
		s.Caret = moveCaret(s, a)
		return s
	case AddChar:
		return addChar(s, a)
	case AddRow:
		return addRow(s, a.Index)
	case RemoveChar:
		return removeChar(s, a.Pos)
	case RemoveRow:
		return removeRow(s, a.Index)
	case NoAction, nil:
		return s
	}
	return s
}

// replaceRow returns a copy of content with row i set to row.
func replaceRow(content []string, i int, row string) []string {
	out := make([]string, len(content))
	copy(out, content)
	out[i] = row
	return out
}

// addChar splices the rune before a.Pos.Col. Columns past the row end append.
func addChar(s State, a AddChar) State {
	if a.Pos.Row < 0 || a.Pos.Row >= len(s.Content) {
		return s
	}
	row := []rune(s.Content[a.Pos.Row])
	at := clampInt(a.Pos.Col, 0, len(row))
	spliced := make([]rune, 0, len(row)+1)
	spliced = append(spliced, row[:at]...)
	spliced = append(spliced, a.Char)
	spliced = append(spliced, row[at:]...)
	s.Content = replaceRow(s.Content, a.Pos.Row, string(spliced))
	return s
}

func addRow(s State, index int) State {
	at := clampInt(index, 0, len(s.Content))
	out := make([]string, 0, len(s.Content)+1)
	out = append(out, s.Content[:at]...)
	out = append(out, "")
	out = append(out, s.Content[at:]...)
	s.Content = out
	return s
}

func removeChar(s State, p Position) State {
	if p.Row < 0 || p.Row >= len(s.Content) {
		return s
	}
	row := []rune(s.Content[p.Row])
	if p.Col < 0 || p.Col >= len(row) {
		return s
	}
	cut := make([]rune, 0, len(row)-1)
	cut = append(cut, row[:p.Col]...)
	cut = append(cut, row[p.Col+1:]...)
	s.Content = replaceRow(s.Content, p.Row, string(cut))
	s.Caret = clampCaret(s, s.Caret)
	return s
}

// removeRow refuses to drop the last remaining row so the caret always has
// a row to address.
func removeRow(s State, index int) State {
	if len(s.Content) <= 1 || index < 0 || index >= len(s.Content) {
		return s
	}
	out := make([]string, 0, len(s.Content)-1)
	out = append(out, s.Content[:index]...)
	out = append(out, s.Content[index+1:]...)
	s.Content = out
	s.Caret = clampCaret(s, s.Caret)
	return s
}
