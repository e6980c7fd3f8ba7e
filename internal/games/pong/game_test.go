package pong

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

func newTestGame(t *testing.T, logger *log.Logger) *Game {
	t.Helper()
	cfg := config.DefaultPongConfig()
	g := New(cfg, sim.Reactive{Speed: cfg.Opponent.Speed}, logger)
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestHoldLatch(t *testing.T) {
	l := holdLatch{ticks: 3}

	if held := l.update(frame(core.ActionUp)); !held.Up || held.Down {
		t.Fatalf("press up: %+v, expected up held", held)
	}
	// Two more ticks without input keep the direction held
	for i := 0; i < 2; i++ {
		if held := l.update(frame()); !held.Up {
			t.Fatalf("tick %d after press: up released early", i+1)
		}
	}
	if held := l.update(frame()); held.Up {
		t.Fatal("up should release after the hold window")
	}

	l.update(frame(core.ActionUp))
	if held := l.update(frame(core.ActionDown)); held.Up || !held.Down {
		t.Errorf("pressing down should release up: %+v", held)
	}

	if held := l.update(frame(core.ActionUp, core.ActionDown)); !held.Up || !held.Down {
		t.Errorf("both pressed: %+v, expected both held", held)
	}
}

func TestStepMovesPlayerPaddle(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(frame(core.ActionUp))
	if y := g.Sim().World.Player.Pos.Y; y != 2 {
		t.Errorf("player y = %g after one up tick, expected 2", y)
	}

	for i := 0; i < DefaultHoldTicks; i++ {
		g.Step(frame())
	}
	// Held for DefaultHoldTicks ticks in total, then released
	if y := g.Sim().World.Player.Pos.Y; y != 2*DefaultHoldTicks {
		t.Errorf("player y = %g, expected %d", y, 2*DefaultHoldTicks)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame())

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	tick := g.State().Tick
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionUp))
	}
	if g.State().Tick != tick {
		t.Errorf("tick advanced while paused: %d -> %d", tick, g.State().Tick)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestRoundResetIsCountedAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	g := newTestGame(t, logger)

	// With a stationary player the opening serve passes above the paddle
	for i := 0; i < 160; i++ {
		g.Step(frame())
	}

	if g.State().Rounds != 1 {
		t.Fatalf("Rounds = %d, expected 1", g.State().Rounds)
	}
	out := buf.String()
	if !strings.Contains(out, "round reset") || !strings.Contains(out, "exit=player") {
		t.Errorf("log output missing round reset: %q", out)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 200; i++ {
		g.Step(frame(core.ActionDown))
	}

	g.Step(frame(core.ActionRestart))

	st := g.State()
	if st.Tick != 0 || st.Rounds != 0 || st.Paused {
		t.Errorf("state after restart = %+v, expected fresh", st)
	}
	if y := g.Sim().World.Player.Pos.Y; y != 0 {
		t.Errorf("player y = %g after restart, expected 0", y)
	}
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t, nil)
	s := core.NewScreen(80, 24)

	g.Render(s)

	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"player paddle", 77, 12, PaddleChar},
		{"opponent paddle", 2, 12, PaddleChar},
		{"ball", 40, 12, BallChar},
		{"top wall", 10, 0, WallChar},
		{"bottom wall", 10, 23, WallChar},
		{"net", 40, 5, NetChar},
		{"empty field", 20, 12, ' '},
	}
	for _, c := range checks {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d, %d) = %q, expected %q", c.name, c.x, c.y, got, c.want)
		}
	}
	if s.GetCell(40, 12).Color != core.ColorMagenta {
		t.Error("ball should be magenta")
	}
}

func TestRenderPausedAndMissingBall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Sim().World.Ball = nil
	g.Step(frame(core.ActionPause))

	s := core.NewScreen(80, 24)
	g.Render(s)

	if strings.ContainsRune(s.String(), BallChar) {
		t.Error("ball drawn although missing")
	}
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause message not drawn")
	}

	// Degenerate screens must not panic
	g.Render(core.NewScreen(0, 0))
	g.Render(core.NewScreen(1, 1))
}
