package game

import (
	"math"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/entity"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// enemyCap computes the dynamic spawn ceiling. Pirates scale with the log of
// the cargo value carried and thin out near high-tech destinations:
//
//	cap = floor(log10(cargoValue+10) * capScale) - floor(destTech * techReduction)
//
// clamped to [0, MaxEnemies]. destTech is 0 when no nav target is set.
func enemyCap(cfg config.SpawnConfig, cargoValue int64, destTech int) int {
	raw := int(math.Log10(float64(cargoValue)+10) * cfg.CapScale)
	raw -= int(float64(destTech) * cfg.TechLevelReduction)
	if raw < 0 {
		return 0
	}
	if raw > cfg.MaxEnemies {
		return cfg.MaxEnemies
	}
	return raw
}

// maybeSpawnEnemy advances the spawn ticker and spawns one enemy at a random
// bearing on the spawn circle when the interval elapses and the cap allows.
func (s *State) maybeSpawnEnemy(cfg config.Config, destTech int) {
	s.SpawnTicker++
	if s.SpawnTicker < cfg.Spawn.SpawnIntervalTicks {
		return
	}
	s.SpawnTicker = 0

	if len(s.Enemies) >= enemyCap(cfg.Spawn, s.CargoValue(), destTech) {
		return
	}

	bearing := s.rand.NextFloatRange(0, core.TwoPi)
	pos := s.Player.Pos.Add(core.FromAngle(bearing).Scale(cfg.Spawn.SpawnRadius))
	s.Enemies = append(s.Enemies, entity.NewEnemy(s.nextEntityID(), pos, cfg.Physics.EnemyRadius))
}

// steerEnemies points every enemy's velocity at the player and integrates
// the move.
func steerEnemies(enemies []entity.Enemy, target core.Vec2, speed, dt float64) {
	for i := range enemies {
		e := &enemies[i]
		dir := target.Sub(e.Pos).Normalized()
		e.Vel = dir.Scale(speed)
		e.Update(dt)
	}
}

// despawnFar drops enemies outside the despawn radius using the world
// manager's distance filter.
func (s *State) despawnFar(w *world.Manager, radius float64) {
	if len(s.Enemies) == 0 {
		return
	}
	refs := make([]world.EntityRef, len(s.Enemies))
	for i, e := range s.Enemies {
		refs[i] = world.EntityRef{ID: e.ID, Pos: e.Pos}
	}
	doomed := w.EnemiesToDespawn(refs, s.Player.Pos, radius)
	if len(doomed) == 0 {
		return
	}
	gone := make(map[int64]bool, len(doomed))
	for _, id := range doomed {
		gone[id] = true
	}
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if !gone[e.ID] {
			kept = append(kept, e)
		}
	}
	s.Enemies = kept
}
