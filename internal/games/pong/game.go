// Package pong adapts the simulation to the terminal platform: it turns key
// presses into held directions, handles pause and restart, counts round
// resets and draws the world into a screen buffer.
package pong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// DefaultHoldTicks is how long a single key press keeps a direction held.
// Terminals report presses and auto-repeats, never releases.
const DefaultHoldTicks = 12

// Game runs one match for a single local player.
type Game struct {
	sim     *sim.Sim
	title   string
	runtime core.RuntimeConfig
	logger  *log.Logger

	latch  holdLatch
	paused bool
	rounds int
}

// New creates a game from a validated configuration and opponent controller.
// A nil logger discards output.
func New(cfg config.PongConfig, opponent registry.Controller, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		sim:    sim.New(cfg, opponent),
		title:  cfg.Title,
		logger: logger,
		latch:  holdLatch{ticks: DefaultHoldTicks},
	}
}

// ID returns the identifier used in logs.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name from the configuration.
func (g *Game) Title() string {
	return g.title
}

// Sim exposes the underlying simulation for inspection.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Reset starts a new match sized for the given screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim.Reset()
	g.latch.clear()
	g.paused = false
	g.rounds = 0
	g.logger.Debug("match reset", "screen_w", runtime.ScreenW, "screen_h", runtime.ScreenH)
}

// Resize adapts rendering to a new screen size without restarting the match.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.latch.clear()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advance(g.latch.update(in))

	return core.StepResult{State: g.State()}
}

// advance runs one simulation tick and records its events.
func (g *Game) advance(held sim.Held) sim.Result {
	res := g.sim.Step(held)

	if res.Events.Has(sim.EventPlayerHit) {
		if b := g.sim.World.Ball; b != nil {
			g.logger.Debug("player hit", "tick", g.sim.Tick(), "face", res.Face, "speed", b.Vel.Len())
		}
	}
	if res.Events.Has(sim.EventRoundReset) {
		g.rounds++
		g.logger.Info("round reset", "exit", res.Exit, "tick", g.sim.Tick(), "rounds", g.rounds)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.sim.Tick(),
		Rounds: g.rounds,
		Paused: g.paused,
	}
}

// holdLatch turns discrete key presses into held directions that last for
// a fixed number of ticks. Pressing one direction releases the other.
type holdLatch struct {
	ticks    int
	up, down int
}

func (l *holdLatch) update(in core.InputFrame) sim.Held {
	up, down := in.Has(core.ActionUp), in.Has(core.ActionDown)
	if up {
		l.up = l.ticks
		if !down {
			l.down = 0
		}
	}
	if down {
		l.down = l.ticks
		if !up {
			l.up = 0
		}
	}

	held := sim.Held{Up: l.up > 0, Down: l.down > 0}
	if l.up > 0 {
		l.up--
	}
	if l.down > 0 {
		l.down--
	}
	return held
}

func (l *holdLatch) clear() {
	l.up, l.down = 0, 0
}
