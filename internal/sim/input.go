package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// Held is the directional input state sampled once per tick.
// Both flags may be set at the same time.
type Held struct {
	Up   bool
	Down bool
}

// ApplyInput sets the player paddle's velocity from the held directions.
// Velocity is zeroed first so nothing carries over between ticks.
// When both directions are held, up wins.
func ApplyInput(p *Paddle, in Held, speed float64) {
	if p == nil {
		return
	}

	p.Vel = core.Vec2{}
	if in.Down {
		p.Vel.Y = -speed
	}
	if in.Up {
		p.Vel.Y = speed
	}
}
