package core

// RuntimeConfig contains the settings a frontend hands to the controller.
type RuntimeConfig struct {
	ScreenW  int   // Initial surface width in pixels
	ScreenH  int   // Initial surface height in pixels
	TickRate int   // Frames per second (default 30)
	Seed     int64 // RNG seed; 0 means seed from the clock and reseed every frame
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  600,
		ScreenH:  600,
		TickRate: 30,
		Seed:     0, // 0 means use current time
	}
}

// Fixed reports whether a deterministic seed was requested.
func (c RuntimeConfig) Fixed() bool {
	return c.Seed != 0
}
