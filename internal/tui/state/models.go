package state

// Panel selects which auxiliary panel is shown beneath the editor.
type Panel int

const (
	NoPanel Panel = iota
	DiffPanel
	JournalPanel
	HelpPanel
)

// DiffMode controls how the session diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// UIState holds host-side view state shared by the status bar, the panels
// and the editor widget. The edited text lives in editor.State, not here.
type UIState struct {
	// Panels & view
	Panel Panel
	View  DiffMode

	// Layout & scrolling
	Width   int
	Height  int
	MinCol  int
	ScrollV int // journal lines scrolled up from the bottom

	// Rendering
	NoColor bool

	// Notices and ephemeral messages
	Notice string
}
