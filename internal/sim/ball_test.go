package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func defaultSetup() (config.Geometry, Tuning) {
	cfg := config.DefaultPongConfig()
	return cfg.Geometry(), TuningFrom(cfg)
}

func paddleAt(x, y, vy float64) *Paddle {
	return &Paddle{Pos: core.V(x, y), Size: core.V(10, 50), Vel: core.V(0, vy)}
}

func TestPlayerHitReflectsAndSpeedsUp(t *testing.T) {
	g, tun := defaultSetup()

	tests := []struct {
		name     string
		paddleVY float64
		vyPre    float64
		vyPost   float64
	}{
		{"paddle moving up", 2, 0.5, (0.5 + 0.05) * 1.05},
		{"paddle moving down", -2, 0.5, (0.5 - 0.05) * 1.05},
		{"paddle stationary", 0, 0.5, 0.5 * 1.05},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			player := paddleAt(150, 0, tc.paddleVY)
			b := &Ball{Pos: core.V(145, 3), Size: core.V(10, 10), Vel: core.V(1.2, tc.vyPre)}

			res := ResolveBall(b, player, nil, g, tun)

			if !res.Events.Has(EventPlayerHit) {
				t.Fatalf("expected a player hit, got %b", res.Events)
			}
			if b.Vel.X >= 0 {
				t.Errorf("vx = %g, expected sign flipped to negative", b.Vel.X)
			}
			if !near(math.Abs(b.Vel.X), 1.2*1.05) {
				t.Errorf("|vx| = %g, expected %g", math.Abs(b.Vel.X), 1.2*1.05)
			}
			// Nudge is added before the multiplicative speed-up
			if !near(b.Vel.Y, tc.vyPost) {
				t.Errorf("vy = %.12f, expected %.12f", b.Vel.Y, tc.vyPost)
			}
			if res.Face != core.CollisionLeft {
				t.Errorf("face = %s, expected left", res.Face)
			}
			if b.Pos.X != 140 {
				t.Errorf("x = %g, expected 140", b.Pos.X)
			}
			if b.Pos.Y != 3 {
				t.Errorf("y = %g, expected unchanged 3", b.Pos.Y)
			}
		})
	}
}

func TestOpponentHitHasNoSpeedUp(t *testing.T) {
	g, tun := defaultSetup()
	opponent := paddleAt(-150, 10, 1)
	b := &Ball{Pos: core.V(-143, 0), Size: core.V(10, 10), Vel: core.V(-1.5, -0.2)}

	res := ResolveBall(b, nil, opponent, g, tun)

	if !res.Events.Has(EventOpponentHit) {
		t.Fatalf("expected an opponent hit, got %b", res.Events)
	}
	if b.Vel.X != 1.5 {
		t.Errorf("vx = %g, expected 1.5", b.Vel.X)
	}
	if !near(b.Vel.Y, -0.2+0.05) {
		t.Errorf("vy = %g, expected %g", b.Vel.Y, -0.2+0.05)
	}
	if b.Pos.X != -140 {
		t.Errorf("x = %g, expected -140", b.Pos.X)
	}
	if res.Face != core.CollisionRight {
		t.Errorf("face = %s, expected right", res.Face)
	}
}

func TestMissedPaddleDoesNothing(t *testing.T) {
	g, tun := defaultSetup()
	player := paddleAt(150, 60, 2)
	b := &Ball{Pos: core.V(145, 0), Size: core.V(10, 10), Vel: core.V(1, 1)}

	res := ResolveBall(b, player, nil, g, tun)

	if res.Events != 0 || res.Face != core.CollisionNone {
		t.Errorf("events = %b face = %s, expected none", res.Events, res.Face)
	}
	if b.Vel != core.V(1, 1) || b.Pos != core.V(145, 0) {
		t.Errorf("ball changed without a hit: %+v", *b)
	}
}

func TestRoundResetRenormalizes(t *testing.T) {
	g, tun := defaultSetup()
	// Player paddle far from the ball so only the boundary check fires
	player := paddleAt(150, -85, 0)
	b := &Ball{Pos: core.V(g.BoundaryX+1, 50), Size: core.V(10, 10), Vel: core.V(3, 4)}

	res := ResolveBall(b, player, nil, g, tun)

	if !res.Events.Has(EventRoundReset) {
		t.Fatalf("expected a round reset, got %b", res.Events)
	}
	if res.Exit != SidePlayer {
		t.Errorf("exit = %s, expected player", res.Exit)
	}
	if b.Pos != core.V(0, 0) {
		t.Errorf("position = %+v, expected origin", b.Pos)
	}
	if !near(b.Vel.X, 0.6) || !near(b.Vel.Y, 0.8) {
		t.Errorf("velocity = %+v, expected (0.6, 0.8)", b.Vel)
	}
	if !near(b.Vel.Len(), 1) {
		t.Errorf("|v| = %g, expected 1", b.Vel.Len())
	}
}

func TestRoundResetOpponentSide(t *testing.T) {
	g, tun := defaultSetup()
	b := &Ball{Pos: core.V(-g.BoundaryX-0.5, 0), Size: core.V(10, 10), Vel: core.V(-2.2, 0)}

	res := ResolveBall(b, nil, nil, g, tun)

	if res.Exit != SideOpponent {
		t.Errorf("exit = %s, expected opponent", res.Exit)
	}
	if b.Vel != core.V(-1, 0) {
		t.Errorf("velocity = %+v, expected (-1, 0)", b.Vel)
	}
}

func TestRoundResetZeroVelocityFallsBack(t *testing.T) {
	g, tun := defaultSetup()
	b := &Ball{Pos: core.V(g.BoundaryX+3, 0), Size: core.V(10, 10)}

	ResolveBall(b, nil, nil, g, tun)

	if b.Vel != core.V(1, 0) {
		t.Errorf("velocity = %+v, expected fallback (1, 0)", b.Vel)
	}
}

func TestBallAtBoundaryIsStillInPlay(t *testing.T) {
	g, tun := defaultSetup()
	b := &Ball{Pos: core.V(g.BoundaryX, g.BoundaryY), Size: core.V(10, 10), Vel: core.V(1, 1)}

	res := ResolveBall(b, nil, nil, g, tun)

	if res.Events != 0 {
		t.Errorf("events = %b, expected none at exactly the boundary", res.Events)
	}
}

func TestVerticalBoundaryClamp(t *testing.T) {
	g, tun := defaultSetup()

	tests := []struct {
		name   string
		y, vy  float64
		wantY  float64
		wantVY float64
	}{
		{"above", g.BoundaryY + 5, 2, g.BoundaryY, -2},
		{"below", -g.BoundaryY - 5, -2, -g.BoundaryY, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: core.V(0, tc.y), Size: core.V(10, 10), Vel: core.V(1, tc.vy)}

			res := ResolveBall(b, nil, nil, g, tun)

			if !res.Events.Has(EventWallBounce) {
				t.Fatalf("expected a wall bounce, got %b", res.Events)
			}
			if b.Pos.Y != tc.wantY {
				t.Errorf("y = %g, expected %g", b.Pos.Y, tc.wantY)
			}
			if b.Vel.Y != tc.wantVY {
				t.Errorf("vy = %g, expected %g", b.Vel.Y, tc.wantVY)
			}
		})
	}
}

func TestHitAndBounceInSameTick(t *testing.T) {
	g, tun := defaultSetup()
	player := paddleAt(150, g.PaddleMaxY, 2)
	b := &Ball{Pos: core.V(146, g.BoundaryY+1), Size: core.V(10, 10), Vel: core.V(1, 1)}

	res := ResolveBall(b, player, nil, g, tun)

	if !res.Events.Has(EventPlayerHit | EventWallBounce) {
		t.Fatalf("expected player hit and wall bounce, got %b", res.Events)
	}
	if b.Pos.Y != g.BoundaryY {
		t.Errorf("y = %g, expected clamped to %g", b.Pos.Y, g.BoundaryY)
	}
	if !near(b.Vel.Y, -(1+0.05)*1.05) {
		t.Errorf("vy = %g, expected %g", b.Vel.Y, -(1+0.05)*1.05)
	}
}

func TestResolveBallMissingBall(t *testing.T) {
	g, tun := defaultSetup()
	res := ResolveBall(nil, paddleAt(150, 0, 0), paddleAt(-150, 0, 0), g, tun)
	if res.Events != 0 || res.Exit != SideNone {
		t.Errorf("result = %+v, expected empty", res)
	}
}

func TestSideString(t *testing.T) {
	if SidePlayer.String() != "player" || SideOpponent.String() != "opponent" || SideNone.String() != "none" {
		t.Error("unexpected Side names")
	}
}
