package game

import (
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
)

// BurstKind sizes a destruction burst.
type BurstKind uint8

const (
	BurstSmall BurstKind = iota // enemy-scale
	BurstLarge                  // player-scale
)

// Particle is one fragment of a destruction burst. The renderer interpolates
// from the burst origin to the final angle/distance over the particle's
// delay and lifetime; the simulation only generates and ages the data.
type Particle struct {
	DelayMs    float64
	DurationMs float64
	Angle      float64 // final heading, radians
	Distance   float64 // final travel distance
	Rotation   float64 // total spin over the lifetime, radians
}

// Burst is a data-driven particle explosion spawned at the instant of a
// destruction. DurationMs is the max over all particles of delay+lifetime,
// so downstream lifetime management needs no per-particle bookkeeping.
type Burst struct {
	Kind       BurstKind
	Pos        core.Vec2
	Col        core.Color
	Particles  []Particle
	StartMs    float64
	DurationMs float64
}

// newBurst generates a randomized burst at pos.
func newBurst(g *rng.Gen, kind BurstKind, pos core.Vec2, nowMs float64) Burst {
	count := 10
	distLo, distHi := 20.0, 60.0
	lifeLo, lifeHi := 300.0, 700.0
	col := core.ColorOrange
	if kind == BurstLarge {
		count = 24
		distLo, distHi = 40.0, 140.0
		lifeLo, lifeHi = 500.0, 1100.0
		col = core.ColorBrightRed
	}

	b := Burst{
		Kind:      kind,
		Pos:       pos,
		Col:       col,
		Particles: make([]Particle, count),
		StartMs:   nowMs,
	}
	for i := range b.Particles {
		p := Particle{
			DelayMs:    g.NextFloatRange(0, 150),
			DurationMs: g.NextFloatRange(lifeLo, lifeHi),
			Angle:      g.NextFloatRange(0, core.TwoPi),
			Distance:   g.NextFloatRange(distLo, distHi),
			Rotation:   g.NextFloatRange(-core.TwoPi, core.TwoPi),
		}
		b.Particles[i] = p
		if total := p.DelayMs + p.DurationMs; total > b.DurationMs {
			b.DurationMs = total
		}
	}
	return b
}

// pruneBursts drops bursts whose lifetime plus grace has elapsed.
func pruneBursts(bursts []Burst, nowMs, graceMs float64) []Burst {
	out := bursts[:0]
	for _, b := range bursts {
		if nowMs-b.StartMs <= b.DurationMs+graceMs {
			out = append(out, b)
		}
	}
	return out
}
