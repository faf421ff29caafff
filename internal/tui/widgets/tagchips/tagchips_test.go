package tagchips

import (
	"strings"
	"testing"

	"termpad/internal/editor"
	"termpad/internal/tui/state"
	"termpad/internal/tui/util"
)

func TestRenderTagsNoColor(t *testing.T) {
	seed := editor.NewState(editor.Normal, editor.Position{}, []string{"ab"})
	cur := editor.Reduce(seed, editor.AddChar{Char: 'c', Pos: editor.Position{Col: 2}})
	out := View(util.ComputeTags(seed, cur, true), true)

	wants := []string{"[Edited]", "[Extended]", "[Rows 1]", "[Chars 3]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}

func TestEmptyTags(t *testing.T) {
	if out := View(nil, false); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	if out := View([]state.Tag{{Kind: state.ROWS, Value: 2}}, true); out != "[Rows 2]" {
		t.Fatalf("unexpected output %q", out)
	}
}
