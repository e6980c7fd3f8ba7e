package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Interactive play only uses the screen size and tick rate; Seed is set by
// the headless runner for its scripted input.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for scripted input
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the headless runner uses the current time
	}
}

// GameState represents the current state of a match.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick   uint64 // Simulation ticks since the match started
	Rounds int    // Number of round resets so far
	Paused bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
