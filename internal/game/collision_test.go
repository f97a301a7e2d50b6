package game

import (
	"math"
	"testing"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/entity"
	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

func testPlayer(cfg config.Config, pos core.Vec2) entity.Player {
	return newPlayer(cfg, pos)
}

func station(id string, pos core.Vec2, size, angle float64) world.Object {
	return world.Object{ID: id, Kind: world.KindStation, Pos: pos, Size: size, Angle: angle}
}

func asteroid(pos core.Vec2, size float64) world.Object {
	return world.Object{ID: "ast", Kind: world.KindAsteroid, Pos: pos, Size: size}
}

func TestProjectileKillsEnemy(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{X: -500, Y: -500})
	enemies := []entity.Enemy{entity.NewEnemy(1, core.Vec2{X: 100}, cfg.Physics.EnemyRadius)}
	projectiles := []entity.Projectile{
		entity.NewProjectile(2, core.Vec2{X: 100}, 0, cfg.Combat.ProjectileSpeed, cfg.Combat.ProjectileRadius, 10),
	}

	res := resolveCollisions(cfg, &p, enemies, projectiles, nil, 0, rng.New(1))

	if len(res.enemies) != 0 {
		t.Errorf("enemy survived projectile hit, %d left", len(res.enemies))
	}
	if len(res.projectiles) != 0 {
		t.Errorf("projectile survived its hit, %d left", len(res.projectiles))
	}
	if len(res.bursts) != 1 || res.bursts[0].Kind != BurstSmall {
		t.Errorf("expected one small burst, got %v", res.bursts)
	}
	if res.playerKilled {
		t.Error("player was not involved and must not die")
	}
}

func TestOnePlayerProjectileHitsOneEnemy(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{X: -500, Y: -500})
	// Two enemies stacked on the projectile: only one dies per projectile.
	enemies := []entity.Enemy{
		entity.NewEnemy(1, core.Vec2{X: 100}, cfg.Physics.EnemyRadius),
		entity.NewEnemy(2, core.Vec2{X: 100}, cfg.Physics.EnemyRadius),
	}
	projectiles := []entity.Projectile{
		entity.NewProjectile(3, core.Vec2{X: 100}, 0, cfg.Combat.ProjectileSpeed, cfg.Combat.ProjectileRadius, 10),
	}

	res := resolveCollisions(cfg, &p, enemies, projectiles, nil, 0, rng.New(1))

	if len(res.enemies) != 1 {
		t.Errorf("one projectile must kill exactly one enemy, %d left", len(res.enemies))
	}
}

func TestObstacleAbsorbsProjectile(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{X: -500, Y: -500})
	obstacles := []world.Object{asteroid(core.Vec2{X: 200}, 20)}
	projectiles := []entity.Projectile{
		entity.NewProjectile(1, core.Vec2{X: 195}, 0, cfg.Combat.ProjectileSpeed, cfg.Combat.ProjectileRadius, 10),
	}

	res := resolveCollisions(cfg, &p, nil, projectiles, obstacles, 0, rng.New(1))

	if len(res.projectiles) != 0 {
		t.Error("asteroid must absorb the projectile")
	}
	if len(res.bursts) != 0 {
		t.Error("absorbed projectile must not burst")
	}
}

func TestEnemyDiesOnAsteroid(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{X: -500, Y: -500})
	obstacles := []world.Object{asteroid(core.Vec2{X: 200}, 20)}
	enemies := []entity.Enemy{entity.NewEnemy(1, core.Vec2{X: 210}, cfg.Physics.EnemyRadius)}

	res := resolveCollisions(cfg, &p, enemies, nil, obstacles, 0, rng.New(1))

	if len(res.enemies) != 0 {
		t.Error("enemy overlapping an asteroid must be culled")
	}
	if len(res.bursts) != 1 {
		t.Errorf("expected one burst, got %d", len(res.bursts))
	}
}

func TestSimultaneousRamsStack(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{})
	p.Shield = 60
	enemies := make([]entity.Enemy, 4)
	for i := range enemies {
		enemies[i] = entity.NewEnemy(int64(i+1), core.Vec2{X: 2}, cfg.Physics.EnemyRadius)
	}

	res := resolveCollisions(cfg, &p, enemies, nil, nil, 0, rng.New(1))

	if want := 60 - 4*cfg.Combat.ShieldDamagePerHit; p.Shield != want {
		t.Errorf("shield after 4 rams = %v, want %v", p.Shield, want)
	}
	if res.playerKilled {
		t.Error("shield absorbed all rams, player must survive")
	}
	if len(res.enemies) != 0 {
		t.Error("ramming enemies must be destroyed")
	}
}

func TestRamKillsDepletedShield(t *testing.T) {
	cfg := config.Default()
	p := testPlayer(cfg, core.Vec2{})
	p.Shield = cfg.Combat.ShieldDamagePerHit // exactly one hit left
	enemies := []entity.Enemy{entity.NewEnemy(1, core.Vec2{X: 2}, cfg.Physics.EnemyRadius)}

	res := resolveCollisions(cfg, &p, enemies, nil, nil, 0, rng.New(1))

	if !res.playerKilled {
		t.Fatal("ram on the last shield point must kill")
	}
	if p.Shield != 0 {
		t.Errorf("shield = %v, want 0", p.Shield)
	}
	large := 0
	for _, b := range res.bursts {
		if b.Kind == BurstLarge {
			large++
		}
	}
	if large != 1 {
		t.Errorf("expected one large burst, got %d", large)
	}
}

func TestAsteroidLethalOnlyWhenShieldDepleted(t *testing.T) {
	cfg := config.Default()
	obstacles := []world.Object{asteroid(core.Vec2{X: 10}, 20)}

	p := testPlayer(cfg, core.Vec2{})
	p.Shield = 0
	res := resolveCollisions(cfg, &p, nil, nil, obstacles, 0, rng.New(1))
	if !res.playerKilled {
		t.Error("asteroid contact with depleted shield must kill")
	}

	p2 := testPlayer(cfg, core.Vec2{})
	vel := core.Vec2{X: 1.5, Y: -0.5}
	p2.Vel = vel
	res2 := resolveCollisions(cfg, &p2, nil, nil, obstacles, 0, rng.New(1))
	if res2.playerKilled {
		t.Error("asteroid contact with shield remaining must only bump")
	}
	if p2.Vel != vel {
		t.Errorf("asteroid bump must keep velocity, got %v", p2.Vel)
	}
	dist := p2.Pos.Sub(obstacles[0].Pos).Len()
	want := obstacles[0].Size + p2.Radius + cfg.Docking.PushEpsilon
	if math.Abs(dist-want) > 1e-9 {
		t.Errorf("pushed to distance %v, want %v", dist, want)
	}
}

func TestDockWithinEntranceArc(t *testing.T) {
	cfg := config.Default()
	st := station("st_1_1", core.Vec2{}, 50, 0)
	p := testPlayer(cfg, core.Vec2{X: 60}) // on the front axis, inside commit reach
	p.Vel = core.Vec2{X: -1}

	res := resolveCollisions(cfg, &p, nil, nil, []world.Object{st}, 0, rng.New(1))

	if res.dockStation != "st_1_1" {
		t.Fatalf("dockStation = %q, want st_1_1", res.dockStation)
	}
	if p.Vel != (core.Vec2{}) {
		t.Error("velocity must be zeroed on dock commit")
	}
}

func TestDockArcFollowsStationRotation(t *testing.T) {
	cfg := config.Default()
	// Front rotated to +Y: the approach from +X is now outside the arc.
	st := station("st_1_1", core.Vec2{}, 50, math.Pi/2)
	p := testPlayer(cfg, core.Vec2{X: 60})

	res := resolveCollisions(cfg, &p, nil, nil, []world.Object{st}, 0, rng.New(1))
	if res.dockStation != "" {
		t.Error("approach 90 degrees off the rotated front must not dock")
	}

	p2 := testPlayer(cfg, core.Vec2{Y: 60})
	res2 := resolveCollisions(cfg, &p2, nil, nil, []world.Object{st}, 0, rng.New(1))
	if res2.dockStation != "st_1_1" {
		t.Error("approach along the rotated front must dock")
	}
}

func TestStationPushbackOutsideArc(t *testing.T) {
	cfg := config.Default()
	st := station("st_1_1", core.Vec2{}, 50, 0)
	p := testPlayer(cfg, core.Vec2{X: -55}) // overlapping, opposite the entrance
	p.Vel = core.Vec2{X: 2}

	res := resolveCollisions(cfg, &p, nil, nil, []world.Object{st}, 0, rng.New(1))

	if res.dockStation != "" {
		t.Fatal("entering from the back must not dock")
	}
	dist := p.Pos.Sub(st.Pos).Len()
	want := st.Size + p.Radius + cfg.Docking.PushEpsilon
	if math.Abs(dist-want) > 1e-9 {
		t.Errorf("pushed to distance %v, want %v", dist, want)
	}
	if p.Vel != (core.Vec2{}) {
		t.Error("station pushback must zero velocity")
	}
}

func TestBeaconActivationFirstInactive(t *testing.T) {
	cfg := config.Default()
	obstacles := []world.Object{
		{ID: "bcn_a", Kind: world.KindBeacon, Pos: core.Vec2{X: 5}, Size: 6, Active: true},
		{ID: "bcn_b", Kind: world.KindBeacon, Pos: core.Vec2{X: 5}, Size: 6},
		{ID: "bcn_c", Kind: world.KindBeacon, Pos: core.Vec2{X: 5}, Size: 6},
	}
	p := testPlayer(cfg, core.Vec2{})

	res := resolveCollisions(cfg, &p, nil, nil, obstacles, 0, rng.New(1))

	if res.beaconHit != "bcn_b" {
		t.Errorf("beaconHit = %q, want the first inactive beacon bcn_b", res.beaconHit)
	}
}

func TestDockingSuppressesBeacon(t *testing.T) {
	cfg := config.Default()
	obstacles := []world.Object{
		station("st_1_1", core.Vec2{}, 50, 0),
		{ID: "bcn_a", Kind: world.KindBeacon, Pos: core.Vec2{X: 62}, Size: 6},
	}
	p := testPlayer(cfg, core.Vec2{X: 60})

	res := resolveCollisions(cfg, &p, nil, nil, obstacles, 0, rng.New(1))

	if res.dockStation == "" {
		t.Fatal("expected dock commit")
	}
	if res.beaconHit != "" {
		t.Error("a docking frame must not also activate a beacon")
	}
}

func TestDeadPlayerSkipsDockingAndPushback(t *testing.T) {
	cfg := config.Default()
	st := station("st_1_1", core.Vec2{X: 55}, 50, math.Pi)
	p := testPlayer(cfg, core.Vec2{})
	p.Shield = cfg.Combat.ShieldDamagePerHit
	enemies := []entity.Enemy{entity.NewEnemy(1, core.Vec2{X: 2}, cfg.Physics.EnemyRadius)}
	before := p.Pos

	res := resolveCollisions(cfg, &p, enemies, nil, []world.Object{st}, 0, rng.New(1))

	if !res.playerKilled {
		t.Fatal("expected death")
	}
	if res.dockStation != "" {
		t.Error("a dead player must not dock")
	}
	if p.Pos != before {
		t.Error("a dead player must not be pushed")
	}
}
