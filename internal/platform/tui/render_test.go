package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.SetColored(1, 0, '█', core.ColorGray)
	s.SetColored(2, 1, '●', core.ColorMagenta)
	s.SetColored(3, 2, '?', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for i, want := range []string{"█", "●", "?"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", out)
	}
}
