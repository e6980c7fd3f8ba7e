package sim

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Sim owns a match: the world, its derived geometry and the opponent.
// It is not safe for concurrent use; one goroutine drives Step.
type Sim struct {
	World    World
	Geometry config.Geometry
	Tuning   Tuning
	Opponent registry.Controller

	serve core.Vec2
	tick  uint64
}

// New creates a simulation from a validated configuration.
func New(cfg config.PongConfig, opponent registry.Controller) *Sim {
	s := &Sim{
		Geometry: cfg.Geometry(),
		Tuning:   TuningFrom(cfg),
		Opponent: opponent,
		serve:    core.V(cfg.Ball.InitialVX, cfg.Ball.InitialVY),
	}
	s.Reset()
	return s
}

// Reset restores the starting positions and velocities.
func (s *Sim) Reset() {
	s.World = NewWorld(s.Geometry, s.serve)
	s.tick = 0
}

// Tick returns the number of steps taken since the last reset.
func (s *Sim) Tick() uint64 {
	return s.tick
}

// Step advances the match by exactly one fixed tick.
//
// Stages run strictly in order: velocities are final before integration,
// and paddles are clamped before the ball reads their positions.
func (s *Sim) Step(in Held) Result {
	w := &s.World

	ApplyInput(w.Player, in, s.Tuning.PlayerSpeed)
	DriveOpponent(w.Opponent, w.Ball, s.Opponent)
	Integrate(w)
	EnforceBounds(w.Player, w.Top, w.Bottom, s.Geometry.PaddleMaxY)
	EnforceBounds(w.Opponent, w.Top, w.Bottom, s.Geometry.PaddleMaxY)
	res := ResolveBall(w.Ball, w.Player, w.Opponent, s.Geometry, s.Tuning)

	s.tick++
	return res
}
