package world

import (
	"fmt"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
)

var economyTypes = []EconomyType{
	EconomyAgricultural,
	EconomyIndustrial,
	EconomyHighTech,
	EconomyExtraction,
	EconomyRefinery,
}

var starColors = []core.Color{
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorGray,
}

// StationID formats the procedural station ID for a cell. The cell
// coordinates are embedded so the station can be regenerated from the ID
// alone.
func StationID(cx, cy int64) string {
	return fmt.Sprintf("st_%d_%d", cx, cy)
}

// generateCell populates one cell. The draw order against the cell's PRNG
// stream is fixed: station trial, stars, asteroid clusters. Reordering the
// draws changes every generated world.
//
// A cell occupied by a fixed station skips the procedural station trial
// entirely but still generates stars and asteroids.
func generateCell(cx, cy int64, worldSeed int64, cfg config.WorldConfig, fixed *FixedRegistry) []Object {
	g := rng.New(CellSeed(cx, cy, worldSeed))
	objects := make([]Object, 0, 16)

	origin := core.Vec2{X: float64(cx) * cfg.CellSize, Y: float64(cy) * cfg.CellSize}
	center := origin.Add(core.Vec2{X: cfg.CellSize / 2, Y: cfg.CellSize / 2})

	// Station: a fixed station overrides the Bernoulli trial.
	if st := fixed.InCell(cx, cy, cfg.CellSize); st != nil {
		objects = append(objects, *st)
	} else if g.NextFloat() < cfg.StationProbability {
		objects = append(objects, genStation(g, cx, cy, origin, cfg))
	}

	// Stars.
	count := g.NextInt(cfg.StarsMin, cfg.StarsMax+1)
	for i := 0; i < count; i++ {
		objects = append(objects, Object{
			ID:   fmt.Sprintf("star_%d_%d_%d", cx, cy, i),
			Kind: KindStar,
			Pos: core.Vec2{
				X: origin.X + g.NextFloat()*cfg.CellSize,
				Y: origin.Y + g.NextFloat()*cfg.CellSize,
			},
			Size: g.NextFloatRange(cfg.StarSizeMin, cfg.StarSizeMax),
			Col:  rng.Pick(g, starColors),
		})
	}

	// Asteroid clusters: one regime roll selects dense, sparse or none.
	regime := g.NextFloat()
	var asteroids int
	switch {
	case regime < cfg.AsteroidDenseProb:
		asteroids = g.NextInt(8, 17)
	case regime < cfg.AsteroidDenseProb+cfg.AsteroidSparseProb:
		asteroids = g.NextInt(1, 8)
	}
	if asteroids > 0 {
		// The whole cluster shares one orbital speed.
		speed := g.NextFloatRange(0.00002, 0.00020)
		if g.NextFloat() < 0.5 {
			speed = -speed
		}
		for i := 0; i < asteroids; i++ {
			objects = append(objects, Object{
				ID:          fmt.Sprintf("ast_%d_%d_%d", cx, cy, i),
				Kind:        KindAsteroid,
				Size:        g.NextFloatRange(cfg.AsteroidSizeMin, cfg.AsteroidSizeMax),
				Col:         core.ColorGray,
				OrbitCenter: center,
				OrbitRadius: g.NextFloatRange(cfg.AsteroidOrbitMin, cfg.AsteroidOrbitMax),
				OrbitPhase:  g.NextFloatRange(0, core.TwoPi),
				OrbitSpeed:  speed,
			})
		}
	}

	return objects
}

// genStation draws one procedural station. The position is jittered into the
// middle half of the cell so stations never sit on a cell boundary.
func genStation(g *rng.Gen, cx, cy int64, origin core.Vec2, cfg config.WorldConfig) Object {
	pos := core.Vec2{
		X: origin.X + cfg.CellSize*(0.25+0.5*g.NextFloat()),
		Y: origin.Y + cfg.CellSize*(0.25+0.5*g.NextFloat()),
	}
	rotSpeed := g.NextFloatRange(0.00005, 0.00040)
	if g.NextFloat() < 0.5 {
		rotSpeed = -rotSpeed
	}
	return Object{
		ID:            StationID(cx, cy),
		Kind:          KindStation,
		Pos:           pos,
		Size:          g.NextFloatRange(cfg.StationRadiusMin, cfg.StationRadiusMax),
		Col:           core.ColorBrightCyan,
		Name:          stationName(g),
		Station:       StationType(g.NextInt(0, 4)),
		Economy:       rng.Pick(g, economyTypes),
		TechLevel:     g.NextInt(1, 11),
		InitialAngle:  g.NextFloatRange(0, core.TwoPi),
		RotationSpeed: rotSpeed,
	}
}
