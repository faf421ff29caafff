package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"termpad/internal/editor"
)

// JournalEntry records one processed key.
type JournalEntry struct {
	At     time.Time
	Key    string
	Action string
	Mode   string
	Pos    string
}

func (e JournalEntry) String() string {
	return fmt.Sprintf("%s %-9s %-6s %-5s %s", e.At.Format("15:04:05"), fmt.Sprintf("%q", e.Key), e.Mode, e.Pos, e.Action)
}

// Journal is the in-memory key log shown in the journal panel.
type Journal struct {
	entries []JournalEntry
	now     func() time.Time
}

func NewJournal(now func() time.Time) *Journal {
	if now == nil {
		now = time.Now
	}
	return &Journal{now: now}
}

// Record appends an entry for key, the action it produced and the state
// that resulted.
func (j *Journal) Record(key string, a editor.Action, s editor.State) JournalEntry {
	mode, pos := editor.Status(s)
	e := JournalEntry{At: j.now(), Key: key, Action: a.String(), Mode: mode, Pos: pos}
	j.entries = append(j.entries, e)
	return e
}

func (j *Journal) Len() int { return len(j.entries) }

// Window returns up to max lines ending offset lines before the newest.
func (j *Journal) Window(max, offset int) []string {
	start := len(j.entries) - max - offset
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > len(j.entries) {
		end = len(j.entries)
	}
	lines := make([]string, 0, end-start)
	for _, e := range j.entries[start:end] {
		lines = append(lines, e.String())
	}
	return lines
}

// Save writes the whole journal to dir/<timestamp>.log and returns the path.
func (j *Journal) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	name := j.now().Format("20060102_150405") + ".log"
	path := filepath.Join(dir, name)
	lines := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		lines = append(lines, e.String())
	}
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("write journal: %w", err)
	}
	return path, nil
}
