// Package sim implements the fixed-step Pong simulation: input mapping,
// opponent control, motion integration, paddle boundary enforcement and
// ball interaction, run in that order once per tick.
//
// The package has no rendering, timing or I/O. Hosts sample input, call
// Sim.Step at a fixed rate and read entity positions afterwards.
package sim

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Wall is a static collision target.
type Wall struct {
	Box core.Box
}

// Paddle is a vertically moving rectangle. Its x never changes.
type Paddle struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2
}

// Box returns the paddle's current bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.Pos, p.Size)
}

// Ball is the single moving ball.
type Ball struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2
}

// Box returns the ball's current bounding box.
func (b *Ball) Box() core.Box {
	return core.NewBox(b.Pos, b.Size)
}

// World holds the fixed entity population of a match.
// A nil field is a missing entity; every stage skips work that needs it.
type World struct {
	Top      *Wall
	Bottom   *Wall
	Player   *Paddle
	Opponent *Paddle
	Ball     *Ball
}

// NewWorld places the five entities for the start of a match.
// The player defends +X, the opponent -X.
func NewWorld(g config.Geometry, ballVel core.Vec2) World {
	return World{
		Top:    &Wall{Box: core.NewBox(core.V(0, g.WallY), g.WallSize)},
		Bottom: &Wall{Box: core.NewBox(core.V(0, -g.WallY), g.WallSize)},
		Player: &Paddle{
			Pos:  core.V(g.PaddleX, 0),
			Size: g.PaddleSize,
		},
		Opponent: &Paddle{
			Pos:  core.V(-g.PaddleX, 0),
			Size: g.PaddleSize,
		},
		Ball: &Ball{
			Size: g.BallSize,
			Vel:  ballVel,
		},
	}
}
