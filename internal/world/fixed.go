package world

import (
	"math"

	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// FixedRegistry holds the hand-placed stations that override procedural
// generation in their cells. The set is authored, never generated, and must
// stay stable across versions for the same reason the cell hash must.
type FixedRegistry struct {
	stations []Object
	byID     map[string]*Object
}

// NewFixedRegistry builds a registry from the given stations.
func NewFixedRegistry(stations []Object) *FixedRegistry {
	r := &FixedRegistry{
		stations: stations,
		byID:     make(map[string]*Object, len(stations)),
	}
	for i := range r.stations {
		r.byID[r.stations[i].ID] = &r.stations[i]
	}
	return r
}

// DefaultFixedStations returns the authored station set: a handful of
// landmark stations near the origin that every new world shares.
func DefaultFixedStations() []Object {
	return []Object{
		{
			ID:            "st_fixed_omega",
			Kind:          KindStation,
			Pos:           core.Vec2{X: 350, Y: -250},
			Size:          80,
			Col:           core.ColorBrightCyan,
			Name:          "Omega Anchorage",
			Station:       StationRing,
			Economy:       EconomyHighTech,
			TechLevel:     9,
			InitialAngle:  0,
			RotationSpeed: 0.00012,
			IsFixed:       true,
		},
		{
			ID:            "st_fixed_forge",
			Kind:          KindStation,
			Pos:           core.Vec2{X: -5200, Y: 3100},
			Size:          95,
			Col:           core.ColorBrightCyan,
			Name:          "Forge of Helix",
			Station:       StationCross,
			Economy:       EconomyIndustrial,
			TechLevel:     6,
			InitialAngle:  math.Pi / 3,
			RotationSpeed: -0.00009,
			IsFixed:       true,
		},
		{
			ID:            "st_fixed_verdant",
			Kind:          KindStation,
			Pos:           core.Vec2{X: 7800, Y: 6400},
			Size:          70,
			Col:           core.ColorBrightCyan,
			Name:          "Verdant Rest",
			Station:       StationHub,
			Economy:       EconomyAgricultural,
			TechLevel:     3,
			InitialAngle:  math.Pi,
			RotationSpeed: 0.00020,
			IsFixed:       true,
		},
	}
}

// ByID returns the fixed station with the given ID, or nil.
func (r *FixedRegistry) ByID(id string) *Object {
	return r.byID[id]
}

// InCell returns the fixed station whose position falls in the given cell,
// or nil. At most one fixed station may occupy a cell.
func (r *FixedRegistry) InCell(cx, cy int64, cellSize float64) *Object {
	for i := range r.stations {
		s := &r.stations[i]
		if int64(math.Floor(s.Pos.X/cellSize)) == cx && int64(math.Floor(s.Pos.Y/cellSize)) == cy {
			return s
		}
	}
	return nil
}
