package editor

import (
	"reflect"
	"testing"
)

func TestRoundTripScript(t *testing.T) {
	var e Evaluator
	s := sample()
	steps := []struct {
		key   string
		caret Position
		mode  Mode
		row1  string
	}{
		{"l", Position{0, 1}, Normal, "cd"},
		{"l", Position{0, 1}, Normal, "cd"},
		{"j", Position{1, 1}, Normal, "cd"},
		{"i", Position{1, 1}, Insert, "cd"},
		{"x", Position{1, 2}, Insert, "cxd"},
		{KeyEscape, Position{1, 1}, Normal, "cxd"},
	}
	for i, st := range steps {
		s, _ = e.Step(s, st.key)
		if s.Caret != st.caret || s.Mode != st.mode || s.Content[1] != st.row1 {
			t.Fatalf("step %d (%q): got mode=%s caret=%+v row1=%q", i, st.key, s.Mode, s.Caret, s.Content[1])
		}
	}
}

func TestOpenBelowCompound(t *testing.T) {
	s := NewState(Normal, Position{}, []string{"ab"})
	s, _ = Evaluator{}.Step(s, "o")
	if !reflect.DeepEqual(s.Content, []string{"ab", ""}) {
		t.Fatalf("unexpected content %q", s.Content)
	}
	if s.Mode != Insert || s.Caret != (Position{Row: 1, Col: 0}) {
		t.Fatalf("unexpected mode/caret %s %+v", s.Mode, s.Caret)
	}
}

func TestOpenAboveCompound(t *testing.T) {
	s := NewState(Normal, Position{Row: 1, Col: 1}, []string{"ab", "cd"})
	s, _ = Evaluator{}.Step(s, "O")
	if !reflect.DeepEqual(s.Content, []string{"ab", "", "cd"}) {
		t.Fatalf("unexpected content %q", s.Content)
	}
	if s.Mode != Insert || s.Caret != (Position{Row: 1, Col: 0}) {
		t.Fatalf("unexpected mode/caret %s %+v", s.Mode, s.Caret)
	}
}

func TestAppendEntersInsertPastCaret(t *testing.T) {
	s := NewState(Normal, Position{Col: 1}, []string{"ab"})
	s, _ = Evaluator{}.Step(s, "a")
	if s.Mode != Insert || s.Caret.Col != 2 {
		t.Fatalf("expected insert at col 2, got %s %+v", s.Mode, s.Caret)
	}
}

func TestReplayReportsEachStep(t *testing.T) {
	var seen []string
	s := Evaluator{}.Replay(sample(), ParseKeys("i Z Esc"), func(key string, a Action, s State) {
		seen = append(seen, key)
	})
	if !reflect.DeepEqual(seen, []string{"i", "Z", KeyEscape}) {
		t.Fatalf("unexpected keys seen: %q", seen)
	}
	if s.Content[0] != "Zab" || s.Mode != Normal || s.Caret.Col != 0 {
		t.Fatalf("unexpected final state %+v", s)
	}
}

func TestParseKeys(t *testing.T) {
	got := ParseKeys("ll j  iab Escape <BS> esc")
	want := []string{"l", "l", "j", "i", "a", "b", KeyEscape, KeyBackspace, KeyEscape}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := ParseKeys("   "); len(got) != 0 {
		t.Fatalf("expected no keys, got %q", got)
	}
}

func TestStatusLabels(t *testing.T) {
	mode, pos := Status(NewState(Insert, Position{Row: 1, Col: 4}, []string{"a", "bcde"}))
	if mode != "INSERT" || pos != "2:5" {
		t.Fatalf("got %s %s", mode, pos)
	}
}

func TestLookupMode(t *testing.T) {
	for in, want := range map[string]Mode{"normal": Normal, "Insert": Insert, "INSERT": Insert, "NORMAL": Normal} {
		if got, ok := LookupMode(in); !ok || got != want {
			t.Fatalf("%q: got %s ok=%v", in, got, ok)
		}
	}
	if _, ok := LookupMode("visual"); ok {
		t.Fatalf("expected unknown mode to be rejected")
	}
	if ParseMode("visual") != Normal {
		t.Fatalf("expected unknown mode to parse as normal")
	}
}
