// Package world implements the infinite procedural world: deterministic cell
// generation, the fixed station and beacon registries, and the manager facade
// the simulation queries each frame.
//
// Determinism is load-bearing. A cell's contents are a pure function of its
// integer coordinates, the world seed and the generation config; nothing is
// ever persisted. The client re-derives "station at this ID" from the ID
// alone, so the generation order and mixing constants in this package must
// not change once saves exist.
package world

import (
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// Kind tags a background object variant.
type Kind uint8

const (
	KindStar Kind = iota
	KindStation
	KindAsteroid
	KindBeacon
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindStation:
		return "station"
	case KindAsteroid:
		return "asteroid"
	case KindBeacon:
		return "beacon"
	default:
		return "unknown"
	}
}

// StationType is the visual family of a station.
type StationType uint8

const (
	StationRing StationType = iota
	StationCross
	StationHub
	StationSpire
)

// EconomyType drives the market table a station offers.
type EconomyType string

const (
	EconomyAgricultural EconomyType = "agricultural"
	EconomyIndustrial   EconomyType = "industrial"
	EconomyHighTech     EconomyType = "hightech"
	EconomyExtraction   EconomyType = "extraction"
	EconomyRefinery     EconomyType = "refinery"
)

// Object is a background world object: a tagged union over the star,
// station, asteroid and beacon variants. The Kind field selects which
// variant fields are meaningful; unused fields are zero.
//
// Stations and beacons carry stable IDs; stars and asteroids carry IDs
// scoped to their generation cell.
type Object struct {
	ID   string
	Kind Kind
	Pos  core.Vec2
	Size float64 // collision radius, or point size for stars
	Col  core.Color

	// Station variant.
	Name          string
	Station       StationType
	Economy       EconomyType
	TechLevel     int
	InitialAngle  float64 // radians at t=0
	RotationSpeed float64 // radians per millisecond, may be negative
	Angle         float64 // recomputed on read, never advanced incrementally
	IsFixed       bool

	// Asteroid variant. Pos is recomputed from the orbit on read.
	OrbitCenter core.Vec2
	OrbitRadius float64
	OrbitPhase  float64 // radians at t=0
	OrbitSpeed  float64 // radians per millisecond, shared by the cluster

	// Beacon variant.
	Active bool
}

// RotationAt returns the station's rotation angle at the given wall-clock
// time. The angle is a function of elapsed time, not of query frequency.
func (o *Object) RotationAt(nowMs float64) float64 {
	return core.NormalizeAngle(o.InitialAngle + nowMs*o.RotationSpeed)
}

// OrbitPosAt returns the asteroid's position on its orbit at the given time.
func (o *Object) OrbitPosAt(nowMs float64) core.Vec2 {
	a := o.OrbitPhase + nowMs*o.OrbitSpeed
	return o.OrbitCenter.Add(core.FromAngle(a).Scale(o.OrbitRadius))
}

// Obstacle reports whether the object blocks projectiles and ships.
// Stars are background only.
func (o *Object) Obstacle() bool {
	return o.Kind == KindStation || o.Kind == KindAsteroid || o.Kind == KindBeacon
}
