// Copyright
// SPDX-License-Identifier: MIT
// termpad: a small modal text editor for the terminal
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"termpad/internal/config"
	"termpad/internal/editor"
	appTUI "termpad/internal/tui"
	"termpad/internal/tui/util"
	"termpad/internal/tui/widgets/textview"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "-v", "--version":
		fmt.Println("termpad", Version)
		return
	case "init":
		cmdInit()
	case "edit":
		cmdEdit()
	case "replay":
		cmdReplay()
	default:
		usage()
	}
}

func usage() {
	fmt.Println(`termpad ` + Version + `
A small modal (normal/insert) text editor for the terminal.
USAGE
  termpad <command> [options]
COMMANDS
  init         Write a default termpad.json (never overwrites)
  edit         Open the editor on the configured seed content
  replay       Run a key script without a terminal and print the result
  help         Show help (try: termpad help replay)
  version      Print version
NOTES
  • Keys: h/j/k/l move, i insert, a append, o/O open row, Esc back to normal.
  • Host keys: ctrl+d diff, ctrl+t diff view, ctrl+l journal, ctrl+s save journal, ctrl+y yank, f1 help, ctrl+c quit.
`)
}

func helpTopic(name string) {
	switch name {
	case "edit":
		fmt.Println(`USAGE
  termpad edit [--config PATH] [--no-color] [--extended] [--log-file PATH]
OPTIONS
  --config PATH    Config file (default: termpad.json, built-in seed if missing)
  --no-color       Plain rendering; NO_COLOR in the environment has the same effect
  --extended       Enable x (delete char), d (delete row), Backspace in insert mode
  --log-file PATH  Append one line per processed key to PATH`)
	case "replay":
		fmt.Println(`USAGE
  termpad replay [--config PATH] [--extended] [-v] [--log-file PATH] KEYS...
DESCRIPTION
  KEYS is a whitespace separated script. Words are split into single keys;
  Escape/Esc and Backspace/BS name the control keys. Use "-" to read the
  script from stdin.
EXAMPLE
  termpad replay 'll j i x Esc'`)
	case "init":
		fmt.Println(`USAGE
  termpad init [--config PATH]`)
	default:
		usage()
	}
}

func cmdInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() { helpTopic("init") }
	path := fs.String("config", config.DefaultPath, "Config file to write")
	_ = fs.Parse(os.Args[2:])

	if _, err := os.Stat(*path); !errors.Is(err, os.ErrNotExist) {
		fmt.Println(*path, "already exists; not overwriting")
		return
	}
	if err := config.Save(*path, config.Default()); err != nil {
		fmt.Println("Could not write config:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", *path)
}

func cmdEdit() {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	fs.Usage = func() { helpTopic("edit") }
	cfgPath := fs.String("config", "", "Config file (default: termpad.json)")
	noColor := fs.Bool("no-color", false, "Disable colors")
	extended := fs.Bool("extended", false, "Enable deletion keys")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*cfgPath, *extended)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	lf, err := openLogFile(*logPath)
	if err != nil {
		fmt.Println("Could not open log file:", err)
	}
	defer func() {
		if lf != nil {
			_ = lf.Close()
		}
	}()

	final, err := appTUI.Run(appTUI.Options{
		Config:  cfg,
		NoColor: *noColor,
		Logf:    newLogger(lf, nil),
	})
	if err != nil {
		fmt.Println("TUI error:", err)
		os.Exit(1)
	}
	mode, pos := editor.Status(final)
	fmt.Printf("Closed in %s at %s (%d rows)\n", mode, pos, final.RowCount())
}

func cmdReplay() {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Usage = func() { helpTopic("replay") }
	cfgPath := fs.String("config", "", "Config file (default: termpad.json)")
	extended := fs.Bool("extended", false, "Enable deletion keys")
	verbose := fs.Bool("v", false, "Echo each step to stderr")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*cfgPath, *extended)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	script := strings.Join(fs.Args(), " ")
	if script == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			fmt.Println("read keys from stdin:", err)
			os.Exit(1)
		}
		script = string(data)
	}
	lf, err := openLogFile(*logPath)
	if err != nil {
		fmt.Println("Could not open log file:", err)
	}
	defer func() {
		if lf != nil {
			_ = lf.Close()
		}
	}()
	var echo io.Writer
	if *verbose {
		echo = os.Stderr
	}
	fmt.Print(replay(cfg, editor.ParseKeys(script), newLogger(lf, echo)))
}

// replay runs keys against the configured seed and renders the final rows
// followed by the status line.
func replay(cfg *config.Config, keys []string, logf func(string, ...any)) string {
	ev := editor.Evaluator{Extended: cfg.ExtendedKeys}
	final := ev.Replay(cfg.State(), keys, func(k string, a editor.Action, s editor.State) {
		mode, pos := editor.Status(s)
		logf("key=%q action=%s mode=%s pos=%s", k, a, mode, pos)
	})
	view := textview.NewTextView(textview.Options{Palette: util.DefaultPalette(), NoColor: true})
	mode, pos := editor.Status(final)
	return fmt.Sprintf("%s\n-- %s %s --\n", view.View(final), mode, pos)
}

// loadConfig reads the config and applies command line overrides.
func loadConfig(path string, extended bool) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	cfg = config.Clone(cfg)
	if extended {
		cfg.ExtendedKeys = true
	}
	return cfg, nil
}

/* ---------- logging ---------- */

var logFileMu sync.Mutex

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== termpad %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}

// newLogger returns a printf-style logger writing timestamped lines to the
// log file and, when echo is set, to echo as well. Both may be nil.
func newLogger(logFile *os.File, echo io.Writer) func(string, ...any) {
	return func(format string, args ...any) {
		line := fmt.Sprintf(format, args...)
		if echo != nil {
			_, _ = fmt.Fprintf(echo, "[termpad] %s\n", line)
		}
		if logFile != nil {
			logFileMu.Lock()
			_, _ = fmt.Fprintf(logFile, "%s %s\n", time.Now().Format(time.RFC3339), line)
			logFileMu.Unlock()
		}
	}
}
