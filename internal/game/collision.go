package game

import (
	"math"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/entity"
	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// collisionResult carries everything one resolver pass decided. The caller
// applies it to the frame's state; the resolver itself mutates only the
// player (shield, position, velocity).
type collisionResult struct {
	enemies      []entity.Enemy
	projectiles  []entity.Projectile
	bursts       []Burst
	playerKilled bool
	dockStation  string // station whose docking arc was satisfied, or ""
	beaconHit    string // beacon to activate, or ""
}

// beaconActivationReach is the extra proximity margin for beacon triggers
// beyond the radius sum.
const beaconActivationReach = 10.0

// resolveCollisions runs the per-frame interaction pass while flying.
// The order of the checks is fixed and load-bearing: projectiles hit enemies
// before obstacles absorb them, all enemy rams apply before the death check,
// and a destroyed player skips docking, beacon and pushback handling
// entirely.
func resolveCollisions(cfg config.Config, player *entity.Player, enemies []entity.Enemy,
	projectiles []entity.Projectile, obstacles []world.Object, nowMs float64, g *rng.Gen) collisionResult {

	var res collisionResult

	enemyAlive := make([]bool, len(enemies))
	for i := range enemyAlive {
		enemyAlive[i] = true
	}
	projAlive := make([]bool, len(projectiles))
	for i := range projAlive {
		projAlive[i] = true
	}

	// 1. Projectile vs enemy: at most one hit per projectile per frame.
	for pi := range projectiles {
		for ei := range enemies {
			if !enemyAlive[ei] {
				continue
			}
			if core.CirclesOverlap(projectiles[pi].Pos, projectiles[pi].Radius, enemies[ei].Pos, enemies[ei].Radius) {
				projAlive[pi] = false
				enemyAlive[ei] = false
				res.bursts = append(res.bursts, newBurst(g, BurstSmall, enemies[ei].Pos, nowMs))
				break
			}
		}
	}

	// 2. Surviving projectiles vs obstacles. Obstacles absorb the shot
	// undamaged.
	for pi := range projectiles {
		if !projAlive[pi] {
			continue
		}
		for oi := range obstacles {
			o := &obstacles[oi]
			if !o.Obstacle() {
				continue
			}
			if core.CirclesOverlap(projectiles[pi].Pos, projectiles[pi].Radius, o.Pos, o.Size) {
				projAlive[pi] = false
				break
			}
		}
	}

	// 3. Enemy vs station/asteroid: environmental hazards cull enemies.
	for ei := range enemies {
		if !enemyAlive[ei] {
			continue
		}
		for oi := range obstacles {
			o := &obstacles[oi]
			if o.Kind != world.KindStation && o.Kind != world.KindAsteroid {
				continue
			}
			if core.CirclesOverlap(enemies[ei].Pos, enemies[ei].Radius, o.Pos, o.Size) {
				enemyAlive[ei] = false
				res.bursts = append(res.bursts, newBurst(g, BurstSmall, enemies[ei].Pos, nowMs))
				break
			}
		}
	}

	// 4. Player vs enemy: every overlapping enemy applies its hit before the
	// death check, so simultaneous rams stack.
	rams := 0
	for ei := range enemies {
		if !enemyAlive[ei] {
			continue
		}
		if core.CirclesOverlap(player.Pos, player.Radius, enemies[ei].Pos, enemies[ei].Radius) {
			enemyAlive[ei] = false
			rams++
			res.bursts = append(res.bursts, newBurst(g, BurstSmall, enemies[ei].Pos, nowMs))
			player.Shield = math.Max(0, player.Shield-cfg.Combat.ShieldDamagePerHit)
		}
	}

	// 5. Player death check. Asteroid contact is lethal only to an already
	// depleted shield; with any shield left it bumps in step 8 instead.
	dead := player.Shield <= 0 && rams > 0
	if !dead && player.Shield <= 0 {
		for oi := range obstacles {
			o := &obstacles[oi]
			if o.Kind == world.KindAsteroid && core.CirclesOverlap(player.Pos, player.Radius, o.Pos, o.Size) {
				dead = true
				break
			}
		}
	}
	if dead {
		player.Shield = 0
		res.playerKilled = true
		res.bursts = append(res.bursts, newBurst(g, BurstLarge, player.Pos, nowMs))
	}

	if !res.playerKilled {
		// 6. Player vs station: dock if the approach satisfies the entrance
		// arc within commit distance, otherwise elastic pushback.
		halfArc := cfg.Docking.EntranceHalfAngleDeg * math.Pi / 180
		for oi := range obstacles {
			o := &obstacles[oi]
			if o.Kind != world.KindStation {
				continue
			}
			delta := player.Pos.Sub(o.Pos)
			dist := delta.Len()
			commit := o.Size + player.Radius + cfg.Docking.CommitDistance
			if dist <= commit {
				rel := core.AngleDiff(delta.Angle(), o.Angle)
				if math.Abs(rel) <= halfArc {
					res.dockStation = o.ID
					player.Vel = core.Vec2{}
					break
				}
			}
			if dist < o.Size+player.Radius {
				pushOut(player, o, cfg.Docking.PushEpsilon)
				player.Vel = core.Vec2{}
			}
		}

		// 7. Player vs beacon: proximity only, first inactive beacon wins,
		// at most one activation per frame.
		if res.dockStation == "" {
			for oi := range obstacles {
				o := &obstacles[oi]
				if o.Kind != world.KindBeacon || o.Active {
					continue
				}
				if core.CirclesOverlap(player.Pos, player.Radius+beaconActivationReach, o.Pos, o.Size) {
					res.beaconHit = o.ID
					player.Vel = core.Vec2{}
					break
				}
			}
		}

		// 8. Player vs asteroid: bump, keep velocity.
		for oi := range obstacles {
			o := &obstacles[oi]
			if o.Kind != world.KindAsteroid {
				continue
			}
			if core.CirclesOverlap(player.Pos, player.Radius, o.Pos, o.Size) {
				pushOut(player, o, cfg.Docking.PushEpsilon)
			}
		}
	}

	res.enemies = compactEnemies(enemies, enemyAlive)
	res.projectiles = compactProjectiles(projectiles, projAlive)
	return res
}

// pushOut displaces the player radially to just outside the obstacle.
func pushOut(player *entity.Player, o *world.Object, eps float64) {
	delta := player.Pos.Sub(o.Pos)
	dist := delta.Len()
	if dist == 0 {
		// Dead center: push along +X, any direction is as good as another.
		delta = core.Vec2{X: 1}
		dist = 1
	}
	target := o.Size + player.Radius + eps
	player.Pos = o.Pos.Add(delta.Scale(target / dist))
}

func compactEnemies(enemies []entity.Enemy, alive []bool) []entity.Enemy {
	out := make([]entity.Enemy, 0, len(enemies))
	for i, e := range enemies {
		if alive[i] {
			out = append(out, e)
		}
	}
	return out
}

func compactProjectiles(projectiles []entity.Projectile, alive []bool) []entity.Projectile {
	out := make([]entity.Projectile, 0, len(projectiles))
	for i, p := range projectiles {
		if alive[i] {
			out = append(out, p)
		}
	}
	return out
}
