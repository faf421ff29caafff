package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"termpad/internal/editor"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "termpad.json"

// Config is the on-disk termpad configuration:
//
//	{"seed": {"mode": "normal", "caret": [2, 1], "content": ["..."]},
//	 "theme": {"text": "#...", "caret": "#...", "caret_char": "#...", "row_start": 1},
//	 "extended_keys": false}
type Config struct {
	Seed         Seed  `json:"seed"`
	Theme        Theme `json:"theme"`
	ExtendedKeys bool  `json:"extended_keys,omitempty"`
}

// Seed is the state the editor starts from.
type Seed struct {
	Mode    string   `json:"mode,omitempty"`  // "normal" (default) | "insert"
	Caret   [2]int   `json:"caret"`           // [row, col], zero-based
	Content []string `json:"content"`
}

// Theme holds the colours and margin used by the render sink. Empty colours
// keep the built-in palette.
type Theme struct {
	Text      string `json:"text,omitempty"`
	Caret     string `json:"caret,omitempty"`
	CaretChar string `json:"caret_char,omitempty"`
	RowStart  int    `json:"row_start,omitempty"` // blank cells left of each row
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Seed: Seed{
			Mode:    "normal",
			Caret:   [2]int{2, 1},
			Content: []string{"xxxxx", "aaaaaaaaaa", "bbbbbbb", "cccc"},
		},
		Theme: Theme{
			Text:      "#D0D0D0",
			Caret:     "#F0AD4E",
			CaretChar: "#111111",
			RowStart:  1,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if len(c.Seed.Content) == 0 {
		return nil, fmt.Errorf("config seed has no content rows")
	}
	if _, ok := editor.LookupMode(c.Seed.Mode); !ok && c.Seed.Mode != "" {
		return nil, fmt.Errorf("config seed mode %q: want normal or insert", c.Seed.Mode)
	}
	return c, nil
}

// LoadOrDefault loads path, falling back to Default when path is the default
// file and it does not exist. An explicitly named missing file is an error.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	c, err := Load(path)
	if err != nil && path == DefaultPath && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// State builds the initial editor state from the seed.
func (c *Config) State() editor.State {
	pos := editor.Position{Row: c.Seed.Caret[0], Col: c.Seed.Caret[1]}
	return editor.NewState(editor.ParseMode(c.Seed.Mode), pos, c.Seed.Content)
}

// Clone returns a deep copy of c.
func Clone(c *Config) *Config {
	out := *c
	if c.Seed.Content != nil {
		out.Seed.Content = append([]string(nil), c.Seed.Content...)
	}
	return &out
}

func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
