package core

// InputFrame is the input snapshot for a single simulation tick.
// Movement is a joystick-style intent vector; the platform builds it from
// keyboard or touch input, the simulation consumes it without knowing the
// source.
type InputFrame struct {
	// MoveX, MoveY form the movement intent vector. Each component is in
	// [-1, 1]; the vector as a whole may exceed unit length on diagonals and
	// is normalized by the consumer.
	MoveX, MoveY float64

	// Firing is true while the fire control is held.
	Firing bool

	// Undock requests leaving the station while docked.
	Undock bool
}

// Moving reports whether the frame carries any movement intent.
func (f InputFrame) Moving() bool {
	return f.MoveX != 0 || f.MoveY != 0
}

// MoveVec returns the movement intent clamped to unit length.
func (f InputFrame) MoveVec() Vec2 {
	v := Vec2{f.MoveX, f.MoveY}
	if v.Len2() > 1 {
		return v.Normalized()
	}
	return v
}

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The seed drives all procedural generation; identical seeds
// reproduce identical worlds.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters
	ScreenH  int   // Viewport height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // World seed (0 = use current time in platform layer)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
