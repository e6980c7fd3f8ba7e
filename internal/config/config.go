// Package config provides YAML-based match configuration loading, derived
// playfield geometry and difficulty presets.
package config

// PongConfig contains all tunable parameters of a match.
type PongConfig struct {
	Title    string         `yaml:"title"`
	Level    LevelConfig    `yaml:"level"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Opponent OpponentConfig `yaml:"opponent"`
}

// LevelConfig defines the playfield dimensions in world units.
type LevelConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WallHeight float64 `yaml:"wall_height"`
}

// PaddleConfig defines paddle size and the player's input speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per tick while a direction is held
}

// BallConfig defines ball size and its velocity at match start.
type BallConfig struct {
	Size      float64 `yaml:"size"`
	InitialVX float64 `yaml:"initial_vx"`
	InitialVY float64 `yaml:"initial_vy"`
}

// PhysicsConfig defines the paddle-hit response.
type PhysicsConfig struct {
	SpinNudge float64 `yaml:"spin_nudge"` // Added to ball vy in the paddle's direction of travel
	SpeedUp   float64 `yaml:"speed_up"`   // Multiplier applied on player hits only
}

// OpponentConfig selects the opponent controller and its speed.
type OpponentConfig struct {
	Controller string  `yaml:"controller"`
	Speed      float64 `yaml:"speed"`
}
