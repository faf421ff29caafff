package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termpad/internal/config"
	"termpad/internal/editor"
	"termpad/internal/tui/state"
	"termpad/internal/tui/util"
	"termpad/internal/tui/widgets/diff"
	help "termpad/internal/tui/widgets/helpoverlay"
	"termpad/internal/tui/widgets/statusbar"
	chips "termpad/internal/tui/widgets/tagchips"
	"termpad/internal/tui/widgets/textview"
)

// JournalDir is where ctrl+s writes the key journal.
var JournalDir = filepath.Join(".termpad", "logs")

// Options configures an editing session.
type Options struct {
	Config  *config.Config
	NoColor bool
	// Logf receives one line per processed key. May be nil.
	Logf func(format string, args ...any)
}

// Run starts the editor on the terminal and blocks until the user quits.
// It returns the final editor state.
func Run(opts Options) (editor.State, error) {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return m.cur, err
	}
	if fm, ok := final.(model); ok {
		return fm.cur, nil
	}
	return m.cur, nil
}

// ===== Model =====

type model struct {
	// editor
	seed editor.State
	cur  editor.State
	eval editor.Evaluator

	// ui state
	ui      state.UIState
	journal *Journal

	// widgets
	keys   help.KeyMap
	help   help.HelpOverlay
	text   textview.TextView
	status statusbar.StatusBar
	diff   diff.DiffView

	// collaborators
	logf func(string, ...any)
	yank func(string) error
}

func newModel(opts Options) model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	noColor := util.NoColor(opts.NoColor)
	seed := cfg.State()
	keys := help.DefaultKeyMap()
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return model{
		seed:    seed,
		cur:     seed,
		eval:    editor.Evaluator{Extended: cfg.ExtendedKeys},
		ui:      state.UIState{MinCol: 20, NoColor: noColor},
		journal: NewJournal(time.Now),
		keys:    keys,
		help:    help.NewHelpOverlay(keys),
		text: textview.NewTextView(textview.Options{
			Palette:  util.PaletteFromTheme(cfg.Theme),
			NoColor:  noColor,
			RowStart: cfg.Theme.RowStart,
		}),
		status: statusbar.NewStatusBar(),
		diff:   diff.NewDiffView(),
		logf:   logf,
		yank:   clipboard.WriteAll,
	}
}

func (m model) Init() tea.Cmd { return nil }

// Update handles host keys first; every other key is handed to the editor
// core, one key per reduction, in arrival order.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ui = state.ClearNotice(m.ui)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Yank):
			m.yankContent()
			return m, nil
		case key.Matches(msg, m.keys.Diff):
			m.ui = state.TogglePanel(m.ui, state.DiffPanel)
			return m, nil
		case key.Matches(msg, m.keys.DiffView):
			m.ui = state.ToggleView(m.ui)
			m.ui = state.Resize(m.ui, m.ui.Width, m.ui.Height)
			return m, nil
		case key.Matches(msg, m.keys.Journal):
			m.ui = state.TogglePanel(m.ui, state.JournalPanel)
			return m, nil
		case key.Matches(msg, m.keys.Save):
			if path, err := m.journal.Save(JournalDir); err == nil {
				m.ui = state.SetNotice(m.ui, "Saved journal to "+path)
			} else {
				m.ui = state.SetNotice(m.ui, "Save failed: "+err.Error())
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.ui = state.TogglePanel(m.ui, state.HelpPanel)
			return m, nil
		case m.ui.Panel == state.JournalPanel && key.Matches(msg, m.keys.ScrollUp):
			m.ui = state.ScrollUp(m.ui, msg.Type == tea.KeyPgUp, m.journal.Len())
			return m, nil
		case m.ui.Panel == state.JournalPanel && key.Matches(msg, m.keys.ScrollDown):
			m.ui = state.ScrollDown(m.ui, msg.Type == tea.KeyPgDown)
			return m, nil
		}
		for _, k := range editorKeys(msg) {
			m.step(k)
		}
		return m, nil
	}
	return m, nil
}

// step runs one key through the evaluator and reducer and records it.
func (m *model) step(k string) {
	next, a := m.eval.Step(m.cur, k)
	m.cur = next
	e := m.journal.Record(k, a, next)
	m.logf("key=%q action=%s mode=%s pos=%s", k, e.Action, e.Mode, e.Pos)
}

func (m *model) yankContent() {
	text := strings.Join(m.cur.Content, "\n")
	if err := m.yank(text); err != nil {
		m.ui = state.SetNotice(m.ui, fmt.Sprintf("Yank failed: %v", err))
		return
	}
	m.ui = state.SetNotice(m.ui, fmt.Sprintf("Yanked %d chars to clipboard", utf8.RuneCountInString(text)))
}

// editorKeys translates a bubbletea key message into evaluator key names.
// A message carrying several runes (fast typing, paste) yields one key per
// rune so each is reduced separately.
func editorKeys(msg tea.KeyMsg) []string {
	switch msg.Type {
	case tea.KeyEsc:
		return []string{editor.KeyEscape}
	case tea.KeyBackspace:
		return []string{editor.KeyBackspace}
	case tea.KeySpace:
		return []string{" "}
	case tea.KeyRunes:
		if msg.Alt {
			return []string{msg.String()}
		}
		keys := make([]string, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, string(r))
		}
		return keys
	}
	return []string{msg.String()}
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1)
)

const journalLines = 12

func (m model) View() string {
	var b strings.Builder
	title := "termpad"
	if !m.ui.NoColor {
		title = titleStyle.Render(title)
	}
	b.WriteString(title + "\n\n")
	b.WriteString(m.text.View(m.cur) + "\n\n")
	tags := chips.View(util.ComputeTags(m.seed, m.cur, m.eval.Extended), m.ui.NoColor)
	b.WriteString(m.status.View(m.ui, m.cur, tags) + "\n")
	hint := m.help.Short()
	if !m.ui.NoColor {
		hint = faintStyle.Render(hint)
	}
	b.WriteString(hint + "\n")

	var panel string
	switch m.ui.Panel {
	case state.DiffPanel:
		panel = m.diff.View(m.ui, m.seed.Content, m.cur.Content)
	case state.JournalPanel:
		lines := m.journal.Window(journalLines, m.ui.ScrollV)
		if len(lines) == 0 {
			lines = []string{"(no keys yet)"}
		}
		panel = "Journal\n" + strings.Join(lines, "\n")
	case state.HelpPanel:
		panel = m.help.View(m.cur.Mode, m.eval.Extended, m.ui.Width)
	}
	if panel != "" {
		if m.ui.NoColor {
			b.WriteString("\n" + panel)
		} else {
			b.WriteString(panelStyle.Render(strings.TrimRight(panel, "\n")))
		}
	}
	return b.String()
}
