package game

import (
	"math"
	"sort"
)

// Snapshot is a flattened copy of the determinism-relevant simulation state.
// Map-backed fields are flattened in sorted key order so two equivalent
// states always produce the same snapshot.
type Snapshot struct {
	Tick       uint64
	View       View
	PlayerX    float64
	PlayerY    float64
	PlayerVX   float64
	PlayerVY   float64
	Angle      float64
	Shield     float64
	Cash       int64
	EnemyCount int
	ProjCount  int
	EnemyData  []float64 // x, y per enemy
	ProjData   []float64 // x, y, life per projectile
	CargoKeys  []string
	CargoQty   []int
	RNGState   uint64
}

// Snapshot captures the current state for determinism verification.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.Tick,
		View:       s.View,
		PlayerX:    s.Player.Pos.X,
		PlayerY:    s.Player.Pos.Y,
		PlayerVX:   s.Player.Vel.X,
		PlayerVY:   s.Player.Vel.Y,
		Angle:      s.Player.Angle,
		Shield:     s.Player.Shield,
		Cash:       s.Cash,
		EnemyCount: len(s.Enemies),
		ProjCount:  len(s.Projectiles),
		RNGState:   s.rand.State(),
	}
	for _, e := range s.Enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y)
	}
	for _, pr := range s.Projectiles {
		snap.ProjData = append(snap.ProjData, pr.Pos.X, pr.Pos.Y, float64(pr.Life))
	}
	keys := make([]string, 0, len(s.Cargo))
	for k := range s.Cargo {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		snap.CargoKeys = append(snap.CargoKeys, k)
		snap.CargoQty = append(snap.CargoQty, s.Cargo[k])
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.View)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVX)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + math.Float64bits(snap.Angle)
	h = h*31 + math.Float64bits(snap.Shield)
	h = h*31 + uint64(snap.Cash)
	h = h*31 + uint64(snap.EnemyCount)
	h = h*31 + uint64(snap.ProjCount)

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjData {
		h = h*31 + math.Float64bits(v)
	}
	for i, k := range snap.CargoKeys {
		for _, c := range k {
			h = h*31 + uint64(c)
		}
		h = h*31 + uint64(snap.CargoQty[i])
	}

	h = h*31 + snap.RNGState
	return h
}
