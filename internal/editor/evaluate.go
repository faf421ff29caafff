package editor

// Named keys understood by the evaluator. Printable keys are passed as the
// single character they produce.
const (
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
)

// Evaluator maps keys to actions. The zero value uses the base keymap only.
type Evaluator struct {
	// Extended enables the deletion bindings (x, d, Backspace). They are
	// consulted only when the base keymap yields NoAction.
	Extended bool
}

// Evaluate maps a key to an action using the base keymap. It never fails;
// unrecognised keys yield NoAction.
func Evaluate(mode Mode, caret Position, key string) Action {
	switch {
	case mode == Normal && key == "i":
		return SwitchMode{Mode: Insert}
	case mode == Insert && key == KeyEscape:
		return Seq(SwitchMode{Mode: Normal}, Navigate{Kind: StepLeft, Amount: 1})
	case mode == Insert && isInputChar(key):
		return Seq(
			AddChar{Char: rune(key[0]), Pos: caret},
			Navigate{Kind: StepRight, Amount: 1},
		)
	case mode == Normal && key == "O":
		return Seq(
			AddRow{Index: caret.Row},
			Navigate{Kind: StepLeft, Amount: caret.Col},
			SwitchMode{Mode: Insert},
		)
	case mode == Normal && key == "o":
		return Seq(
			AddRow{Index: caret.Row + 1},
			Navigate{Kind: StepLeft, Amount: caret.Col},
			Navigate{Kind: RowDown, Amount: 1},
			SwitchMode{Mode: Insert},
		)
	case mode == Normal && isNavigationKey(key):
		return Navigate{Kind: navigation(key), Amount: 1}
	case mode == Normal && key == "a":
		return Seq(SwitchMode{Mode: Insert}, Navigate{Kind: StepRight, Amount: 1})
	}
	return NoAction{}
}

// Evaluate maps a key to an action, falling back to the extended bindings
// when enabled.
func (e Evaluator) Evaluate(mode Mode, caret Position, key string) Action {
	a := Evaluate(mode, caret, key)
	if _, none := a.(NoAction); !none || !e.Extended {
		return a
	}
	switch {
	case mode == Normal && key == "x":
		return RemoveChar{Pos: caret}
	case mode == Normal && key == "d":
		return RemoveRow{Index: caret.Row}
	case mode == Insert && key == KeyBackspace && caret.Col > 0:
		// Step first so the caret is already inside the shortened row.
		return Seq(
			Navigate{Kind: StepLeft, Amount: 1},
			RemoveChar{Pos: Position{Row: caret.Row, Col: caret.Col - 1}},
		)
	}
	return a
}

// isInputChar reports whether key is a single ASCII letter or digit.
func isInputChar(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isNavigationKey(key string) bool {
	switch key {
	case "h", "j", "k", "l":
		return true
	}
	return false
}

func navigation(key string) NavigationKind {
	switch key {
	case "j":
		return RowDown
	case "k":
		return RowUp
	case "l":
		return StepRight
	default:
		return StepLeft
	}
}
