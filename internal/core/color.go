package core

// Color is the foreground color of a screen cell. The palette carries only
// the hues the game draws with; values map to ANSI codes in the platform
// layer.
type Color uint8

const (
	ColorDefault Color = iota

	// Scenery.
	ColorWhite        // dim stars
	ColorBrightWhite  // bright stars, player ship
	ColorBrightYellow // yellow stars, projectiles
	ColorBrightCyan   // blue-white stars, station hulls
	ColorGray         // dust stars, asteroids, inactive beacons

	// Actors and effects.
	ColorBrightGreen // station entrances, active beacons
	ColorBrightRed   // enemies, player destruction burst
	ColorOrange      // enemy destruction burst
)
