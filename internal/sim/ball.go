package sim

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Tuning holds the per-hit response and input speed.
type Tuning struct {
	PlayerSpeed float64 // Paddle speed while a direction is held
	SpinNudge   float64 // Added to ball vy in the hitting paddle's direction of travel
	SpeedUp     float64 // Multiplier applied to both ball axes on player hits
}

// TuningFrom extracts the tuning values from a configuration.
func TuningFrom(cfg config.PongConfig) Tuning {
	return Tuning{
		PlayerSpeed: cfg.Paddle.Speed,
		SpinNudge:   cfg.Physics.SpinNudge,
		SpeedUp:     cfg.Physics.SpeedUp,
	}
}

// Events is a set of things that happened during one tick.
type Events uint8

const (
	EventPlayerHit Events = 1 << iota
	EventOpponentHit
	EventRoundReset
	EventWallBounce
)

// Has reports whether every event in f is set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Side identifies an end of the playfield.
type Side int

const (
	SideNone     Side = iota
	SidePlayer        // +X, behind the player paddle
	SideOpponent      // -X, behind the opponent paddle
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Result reports what the ball did during a tick.
type Result struct {
	Events Events
	Exit   Side           // Where the ball left play; set only with EventRoundReset
	Face   core.Collision // Side of the last paddle struck this tick
}

// defaultServe is used when the ball velocity has degenerated to zero and
// cannot be renormalized.
var defaultServe = core.V(1, 0)

// ResolveBall applies paddle reflections, the round reset and the wall
// bounce to the ball, in that order. Every check runs each tick; several may
// fire together. Missing paddles are skipped; a missing ball does nothing.
func ResolveBall(b *Ball, player, opponent *Paddle, g config.Geometry, t Tuning) Result {
	var res Result
	if b == nil {
		return res
	}

	if player != nil && core.Overlaps(player.Box(), b.Box()) {
		res.Face = core.Collide(player.Box(), b.Box())
		deflect(b, player, t.SpinNudge)
		b.Vel = b.Vel.Scale(t.SpeedUp)
		b.Pos.X = player.Pos.X - player.Size.X
		res.Events |= EventPlayerHit
	}

	if opponent != nil && core.Overlaps(opponent.Box(), b.Box()) {
		res.Face = core.Collide(opponent.Box(), b.Box())
		deflect(b, opponent, t.SpinNudge)
		b.Pos.X = opponent.Pos.X + opponent.Size.X
		res.Events |= EventOpponentHit
	}

	if math.Abs(b.Pos.X) > g.BoundaryX {
		res.Exit = SideOpponent
		if b.Pos.X > 0 {
			res.Exit = SidePlayer
		}
		b.Pos = core.Vec2{}
		if v, ok := b.Vel.Normalize(); ok {
			b.Vel = v
		} else {
			b.Vel = defaultServe
		}
		res.Events |= EventRoundReset
	}

	if math.Abs(b.Pos.Y) > g.BoundaryY {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = math.Copysign(g.BoundaryY, b.Pos.Y)
		res.Events |= EventWallBounce
	}

	return res
}

// deflect reverses the ball horizontally and nudges it vertically in the
// paddle's direction of travel. A stationary paddle adds no nudge.
func deflect(b *Ball, p *Paddle, nudge float64) {
	b.Vel.X = -b.Vel.X
	switch {
	case p.Vel.Y > 0:
		b.Vel.Y += nudge
	case p.Vel.Y < 0:
		b.Vel.Y -= nudge
	}
}
