package world

import (
	"fmt"

	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
)

// Station name word lists. Names are composed from these via a style roll so
// the same cell seed always yields the same name.

var namePrefixes = []string{
	"Port", "Outpost", "Haven", "Fort", "Relay",
	"Anchorage", "Depot", "Gate", "Spire", "Bastion",
}

var nameCores = []string{
	"Orion", "Cygnus", "Vega", "Altair", "Rigel",
	"Draco", "Lyra", "Procyon", "Sirius", "Castor",
	"Pollux", "Arcturus", "Meridian", "Umbra", "Zenith",
	"Caldera", "Nyx", "Erebus", "Helios", "Tempest",
}

var nameDesignators = []string{
	"Prime", "Minor", "Major", "Station", "Terminal",
	"Reach", "Rest", "Deep", "Verge", "Cross",
}

var nameNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
}

// stationName composes a station name from the word lists. The style roll
// selects one of four composition patterns.
func stationName(g *rng.Gen) string {
	style := g.NextInt(0, 4)
	core := rng.Pick(g, nameCores)
	switch style {
	case 0:
		return fmt.Sprintf("%s %s", rng.Pick(g, namePrefixes), core)
	case 1:
		return fmt.Sprintf("%s %s", core, rng.Pick(g, nameDesignators))
	case 2:
		return fmt.Sprintf("%s %s", core, rng.Pick(g, nameNumerals))
	default:
		return fmt.Sprintf("%s %s %s", rng.Pick(g, namePrefixes), core, rng.Pick(g, nameNumerals))
	}
}
