package config

import "github.com/vovakirdan/tui-pong/internal/core"

// boundaryMargin is how far past the playfield edge the ball may travel
// before it is considered out of play.
const boundaryMargin = 5

// Geometry holds the playfield constants derived from a LevelConfig and
// PaddleConfig. None of these values is configured directly.
type Geometry struct {
	BoundaryX  float64 // Ball x magnitude beyond which a round resets
	BoundaryY  float64 // Ball y magnitude beyond which it bounces
	PaddleMaxY float64 // Largest paddle y magnitude after boundary enforcement

	PaddleX    float64 // Player paddle x; the opponent sits at -PaddleX
	PaddleSize core.Vec2
	BallSize   core.Vec2
	WallY      float64 // Top wall center y; the bottom wall sits at -WallY
	WallSize   core.Vec2
}

// Geometry derives the playfield constants from the configuration.
func (c PongConfig) Geometry() Geometry {
	boundaryX := c.Level.Width/2 + boundaryMargin
	boundaryY := c.Level.Height + boundaryMargin

	return Geometry{
		BoundaryX:  boundaryX,
		BoundaryY:  boundaryY,
		PaddleMaxY: c.Level.Height - c.Paddle.Height/2 + c.Level.WallHeight,
		PaddleX:    boundaryX - c.Paddle.Width/2,
		PaddleSize: core.V(c.Paddle.Width, c.Paddle.Height),
		BallSize:   core.V(c.Ball.Size, c.Ball.Size),
		WallY:      boundaryY + c.Level.WallHeight,
		WallSize:   core.V(c.Level.Width, c.Level.WallHeight),
	}
}

// Extent returns the half-size of the area a renderer must show to include
// every entity: both walls and the full horizontal boundary.
func (g Geometry) Extent() core.Vec2 {
	return core.V(
		max(g.BoundaryX+g.BallSize.X/2, g.WallSize.X/2),
		g.WallY+g.WallSize.Y/2,
	)
}
