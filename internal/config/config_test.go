package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"termpad/internal/editor"
)

func TestDefaultState(t *testing.T) {
	s := Default().State()
	if s.Mode != editor.Normal || s.Caret != (editor.Position{Row: 2, Col: 1}) || s.RowCount() != 4 {
		t.Fatalf("unexpected default state %+v", s)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termpad.json")
	c := Default()
	c.Seed.Content = []string{"ab", "cd"}
	c.Seed.Caret = [2]int{1, 1}
	c.ExtendedKeys = true
	if err := Save(path, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.ExtendedKeys || len(got.Seed.Content) != 2 || got.Seed.Caret != [2]int{1, 1} {
		t.Fatalf("unexpected config %+v", got)
	}
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(`{"seed": {"content": ["hello"]}}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Theme.Caret == "" {
		t.Fatalf("expected default theme to survive a partial file")
	}
	// Caret [2,1] from the defaults is clamped into the single row.
	if s := c.State(); s.Caret != (editor.Position{Row: 0, Col: 1}) {
		t.Fatalf("unexpected caret %+v", s.Caret)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad.json":   `{`,
		"empty.json": `{"seed": {"content": []}}`,
		"mode.json":  `{"seed": {"mode": "visual", "content": ["a"]}}`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	wd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	c, err := LoadOrDefault("")
	if err != nil || c.Seed.Content[0] != "xxxxx" {
		t.Fatalf("expected built-in defaults, got %+v %v", c, err)
	}
	if _, err := LoadOrDefault("nope.json"); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
}

func TestCloneCopiesContent(t *testing.T) {
	c := Default()
	cp := Clone(c)
	cp.Seed.Content[0] = "changed"
	if c.Seed.Content[0] != "xxxxx" {
		t.Fatalf("clone shares content with original")
	}
}

func TestSaveWrapsWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "termpad.json")
	err := Save(path, Default())
	if err == nil || !strings.HasPrefix(err.Error(), "write config: ") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected underlying not-exist error, got %v", err)
	}
}

func TestLoadAcceptsModeInAnyCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(`{"seed": {"mode": "INSERT", "content": ["ab"]}}`), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.State().Mode != editor.Insert {
		t.Fatalf("expected insert mode, got %s", c.State().Mode)
	}
}
