package world

import (
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// BeaconRegistry holds the fixed set of world-anchored interactive waypoints.
// Beacons live outside the cell grid: they are not generated, not cached per
// cell, and carry mutable activation state.
type BeaconRegistry struct {
	beacons []Object
	byID    map[string]*Object
}

// NewBeaconRegistry builds a registry from the given beacons.
func NewBeaconRegistry(beacons []Object) *BeaconRegistry {
	r := &BeaconRegistry{
		beacons: beacons,
		byID:    make(map[string]*Object, len(beacons)),
	}
	for i := range r.beacons {
		r.byID[r.beacons[i].ID] = &r.beacons[i]
	}
	return r
}

// DefaultBeacons returns the authored beacon set.
func DefaultBeacons() []Object {
	mk := func(id string, x, y float64) Object {
		return Object{
			ID:   id,
			Kind: KindBeacon,
			Pos:  core.Vec2{X: x, Y: y},
			Size: 14,
			Col:  core.ColorGray,
		}
	}
	return []Object{
		mk("bcn_alpha", 1200, 900),
		mk("bcn_beta", -4400, -2600),
		mk("bcn_gamma", 6100, -7300),
		mk("bcn_delta", -9000, 8800),
	}
}

// ByID returns the beacon with the given ID, or nil.
func (r *BeaconRegistry) ByID(id string) *Object {
	return r.byID[id]
}

// SetActive flips a beacon's activation state and updates its display color
// in the same call so readers never observe the two out of sync.
// Returns false for unknown IDs.
func (r *BeaconRegistry) SetActive(id string, active bool) bool {
	b := r.byID[id]
	if b == nil {
		return false
	}
	b.Active = active
	if active {
		b.Col = core.ColorBrightGreen
	} else {
		b.Col = core.ColorGray
	}
	return true
}

// All returns the beacon set. Callers must treat the slice as read-only.
func (r *BeaconRegistry) All() []Object {
	return r.beacons
}
