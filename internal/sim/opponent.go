package sim

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Reactive moves toward the ball at a constant speed with no prediction
// and no dead band, so it jitters when level with the ball.
type Reactive struct {
	Speed float64
}

func (Reactive) ID() string    { return "reactive" }
func (Reactive) Title() string { return "Reactive (always full speed toward the ball)" }

// Velocity returns -Speed when the ball is at or below the paddle, else +Speed.
func (r Reactive) Velocity(ballY, paddleY float64) float64 {
	if ballY <= paddleY {
		return -r.Speed
	}
	return r.Speed
}

// Tracking closes the vertical gap to the ball without overshooting it.
type Tracking struct {
	Speed float64
}

func (Tracking) ID() string    { return "tracking" }
func (Tracking) Title() string { return "Tracking (proportional, capped at speed)" }

// Velocity returns the gap to the ball, capped to ±Speed.
func (t Tracking) Velocity(ballY, paddleY float64) float64 {
	return core.ClampF(ballY-paddleY, -t.Speed, t.Speed)
}

// DriveOpponent sets the opponent paddle's velocity from the ball position.
// Nothing changes when the paddle, the ball or the controller is missing.
func DriveOpponent(p *Paddle, b *Ball, c registry.Controller) {
	if p == nil || b == nil || c == nil {
		return
	}
	p.Vel = core.V(0, c.Velocity(b.Pos.Y, p.Pos.Y))
}

func init() {
	registry.Register("reactive", func(speed float64) registry.Controller {
		return Reactive{Speed: speed}
	})
	registry.Register("tracking", func(speed float64) registry.Controller {
		return Tracking{Speed: speed}
	})
}
