package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"termpad/internal/editor"
)

// KeyMap holds the host bindings. These keys are consumed by the host and
// never reach the editor's evaluator.
type KeyMap struct {
	Quit       key.Binding
	Yank       key.Binding
	Diff       key.Binding
	DiffView   key.Binding
	Journal    key.Binding
	Save       key.Binding
	Help       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the standard host bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Yank:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "yank all")),
		Diff:       key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "diff")),
		DiffView:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "unified/side-by-side")),
		Journal:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "journal")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save journal")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "pgup"), key.WithHelp("↑/pgup", "scroll journal")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "pgdown"), key.WithHelp("↓/pgdn", "scroll journal")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Diff, k.Journal, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Diff, k.DiffView, k.Yank},
		{k.Journal, k.ScrollUp, k.ScrollDown, k.Save},
		{k.Help, k.Quit},
	}
}

type HelpOverlay struct {
	keys KeyMap
	help help.Model
}

func NewHelpOverlay(keys KeyMap) HelpOverlay {
	h := help.New()
	h.ShowAll = true
	return HelpOverlay{keys: keys, help: h}
}

// Short renders the one-line host key hint.
func (o HelpOverlay) Short() string {
	h := o.help
	h.ShowAll = false
	return h.View(o.keys)
}

// View returns grouped keys help with the current mode indicated.
func (o HelpOverlay) View(mode editor.Mode, extended bool, width int) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Normal", []string{"h/j/k/l: move", "i: insert", "a: append", "o/O: open row below/above"}},
		{"Insert", []string{"a-z A-Z 0-9: type", "Esc: back to normal"}},
	}
	if extended {
		sections = append(sections, struct {
			title string
			keys  []string
		}{"Extended", []string{"x: delete char", "d: delete row", "Backspace: delete before caret"}})
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", strings.ToUpper(mode.String()))
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	h := o.help
	h.Width = width
	b.WriteString("\nHost:\n")
	b.WriteString(h.View(o.keys))
	b.WriteString("\n")
	return b.String()
}
