package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// EnforceBounds clamps a paddle that touches a wall back to ±maxY.
// It runs every tick regardless of the paddle's velocity and is idempotent:
// a paddle at exactly ±maxY no longer overlaps the wall.
//
// A paddle that has passed completely through a wall (possible only with a
// paddle speed larger than the wall overlap window) is clamped as well.
func EnforceBounds(p *Paddle, top, bottom *Wall, maxY float64) {
	if p == nil {
		return
	}

	if bottom != nil && (core.Overlaps(p.Box(), bottom.Box) || p.Pos.Y < -maxY) {
		p.Pos.Y = -maxY
	}
	if top != nil && (core.Overlaps(p.Box(), top.Box) || p.Pos.Y > maxY) {
		p.Pos.Y = maxY
	}
}
