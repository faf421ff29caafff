package editor

import (
	"fmt"
	"strings"
)

// Step evaluates key against s and reduces the result. It returns the new
// state together with the action that produced it.
func (e Evaluator) Step(s State, key string) (State, Action) {
	a := e.Evaluate(s.Mode, s.Caret, key)
	return Reduce(s, a), a
}

// Replay folds keys over s one at a time, in order. onStep, if non-nil, is
// called after every reduction.
func (e Evaluator) Replay(s State, keys []string, onStep func(key string, a Action, s State)) State {
	for _, k := range keys {
		var a Action
		s, a = e.Step(s, k)
		if onStep != nil {
			onStep(k, a, s)
		}
	}
	return s
}

// Status returns the upper-cased mode and the 1-based "row:col" caret label
// shown by status sinks.
func Status(s State) (mode string, pos string) {
	return strings.ToUpper(s.Mode.String()), fmt.Sprintf("%d:%d", s.Caret.Row+1, s.Caret.Col+1)
}

// ParseKeys splits a whitespace separated key script. Named keys are written
// as words ("Escape", "Esc", "Backspace", "BS"); any other token is split
// into its individual characters.
func ParseKeys(script string) []string {
	var out []string
	for _, tok := range strings.Fields(script) {
		switch strings.ToLower(tok) {
		case "escape", "esc", "<esc>":
			out = append(out, KeyEscape)
			continue
		case "backspace", "bs", "<bs>":
			out = append(out, KeyBackspace)
			continue
		}
		for _, r := range tok {
			out = append(out, string(r))
		}
	}
	return out
}
