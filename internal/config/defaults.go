package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default match configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Title: "My Pong!",
		Level: LevelConfig{
			Width:      300,
			Height:     100,
			WallHeight: 10,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 50,
			Speed:  2.0,
		},
		Ball: BallConfig{
			Size:      10,
			InitialVX: 1.0,
			InitialVY: 1.0,
		},
		Physics: PhysicsConfig{
			SpinNudge: 0.05,
			SpeedUp:   1.05,
		},
		Opponent: OpponentConfig{
			Controller: "reactive",
			Speed:      1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
