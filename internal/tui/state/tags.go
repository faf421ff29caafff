package state

// TagKind enumerates the session chips shown next to the status line.
type TagKind int

const (
	// Stable ordering for display: Edited, Extended, Rows, Chars
	EDITED TagKind = iota
	EXTENDED
	ROWS
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters
// (row and rune counts). Non-numeric tags use Value = 0.
type Tag struct {
	Kind  TagKind
	Value int
}
