package editor

import (
	"fmt"
	"strings"
)

// NavigationKind enumerates the caret movements understood by the reducer.
type NavigationKind int

const (
	StepLeft NavigationKind = iota
	StepRight
	RowUp
	RowDown
)

func (k NavigationKind) String() string {
	switch k {
	case StepLeft:
		return "step-left"
	case StepRight:
		return "step-right"
	case RowUp:
		return "row-up"
	case RowDown:
		return "row-down"
	default:
		return "unknown"
	}
}

// Action is a declarative editor command. The set of implementations is
// closed: only the types in this file satisfy it.
type Action interface {
	isAction()
	String() string
}

// SwitchMode replaces the mode; caret and content are unchanged.
type SwitchMode struct {
	Mode Mode
}

// Navigate moves the caret by Amount in the given direction, saturating at
// content edges.
type Navigate struct {
	Kind   NavigationKind
	Amount int
}

// AddChar inserts Char into row Pos.Row immediately before Pos.Col.
type AddChar struct {
	Char rune
	Pos  Position
}

// AddRow inserts an empty row at Index. The caret does not move.
type AddRow struct {
	Index int
}

// RemoveChar deletes the rune at Pos.
type RemoveChar struct {
	Pos Position
}

// RemoveRow deletes row Index unless it is the only row left.
type RemoveRow struct {
	Index int
}

// Batch applies Actions in order, each seeing the previous result.
type Batch struct {
	Actions []Action
}

// NoAction leaves the state untouched.
type NoAction struct{}

func (SwitchMode) isAction() {}
func (Navigate) isAction()   {}
func (AddChar) isAction()    {}
func (AddRow) isAction()     {}
func (RemoveChar) isAction() {}
func (RemoveRow) isAction()  {}
func (Batch) isAction()      {}
func (NoAction) isAction()   {}

func (a SwitchMode) String() string { return "switch-mode(" + a.Mode.String() + ")" }
func (a Navigate) String() string   { return fmt.Sprintf("navigate(%s,%d)", a.Kind, a.Amount) }
func (a AddChar) String() string {
	return fmt.Sprintf("add-char(%q,%d:%d)", a.Char, a.Pos.Row, a.Pos.Col)
}
func (a AddRow) String() string { return fmt.Sprintf("add-row(%d)", a.Index) }
func (a RemoveChar) String() string {
	return fmt.Sprintf("remove-char(%d:%d)", a.Pos.Row, a.Pos.Col)
}
func (a RemoveRow) String() string { return fmt.Sprintf("remove-row(%d)", a.Index) }
func (NoAction) String() string     { return "no-action" }

func (a Batch) String() string {
	parts := make([]string, 0, len(a.Actions))
	for _, sub := range a.Actions {
		if sub == nil {
			parts = append(parts, "no-action")
			continue
		}
		parts = append(parts, sub.String())
	}
	return "batch[" + strings.Join(parts, ", ") + "]"
}

// Seq is shorthand for a Batch literal.
func Seq(actions ...Action) Batch { return Batch{Actions: actions} }
