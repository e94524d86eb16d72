package core

// RuntimeConfig contains configuration passed to the simulation at startup.
// The harness uses it to size the view and for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a run for the HUD and the harness.
type GameState struct {
	Distance int  // Distance traveled in the current run
	Best     int  // Longest distance this process has seen
	Deaths   int  // Number of world resets caused by hazards
	Slowed   bool // Whether slow-motion is active
	Occluded bool // Whether the pursuing wall covers the screen
}
