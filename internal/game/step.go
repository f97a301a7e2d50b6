package game

import (
	"math"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/entity"
	"github.com/alexkorep-games/omega-void-sub000/internal/quest"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// nominalFrameMs converts wall-clock milliseconds to tick units.
const nominalFrameMs = 1000.0 / 60.0

// Step advances the simulation by one frame and returns the next state.
// The prior state is never mutated: hot fields are rebuilt, cold fields are
// shared until a discrete event copies them. dtMs is wall-clock elapsed time,
// nowMs the wall-clock timestamp used for station rotation and orbits.
// completionScore is the externally tracked progress value checked against
// the win threshold.
func Step(cfg config.Config, prior *State, dtMs, nowMs float64, in core.InputFrame,
	w *world.Manager, sink quest.Sink, completionScore int) *State {

	// Won is terminal: the simulation halts entirely.
	if prior.View == ViewWon {
		return prior
	}
	if !prior.playerUsable() && !prior.playerRecoverable() {
		return prior
	}

	s := prior.clone()
	if !s.playerUsable() {
		if s.logger != nil {
			s.logger.Warn("rebuilding degraded player state",
				"x", s.Player.Pos.X, "y", s.Player.Pos.Y)
		}
		s.Player = newPlayer(cfg, s.Player.Pos)
		s.Player.ShieldMax = s.ShieldMaxFor(cfg)
		s.Player.Shield = s.Player.ShieldMax
	}
	s.Tick++
	dt := dtMs / nominalFrameMs

	switch s.View {
	case ViewFlying:
		s.stepFlying(cfg, w, in, dt, nowMs, sink)
	case ViewDocked:
		if in.Undock {
			s.startUndocking(cfg)
		}
		s.refreshVisible(w, nowMs)
	default:
		// Docking, undocking and destroyed: the ship is not under player
		// control, only the transition timers and the scenery advance.
		s.refreshVisible(w, nowMs)
	}

	transitioned := s.advanceTransitions(cfg, w, dtMs, nowMs, sink)

	// The win fires from any view once the threshold is reached. It is
	// suppressed on a frame that fired a transition so the transition's
	// final state is observable for at least one frame.
	if !transitioned && completionScore >= cfg.Progression.WinScore {
		s.View = ViewWon
		s.Anim = AnimationState{}
	}

	s.Bursts = pruneBursts(s.Bursts, nowMs, cfg.Combat.BurstGraceMs)
	s.Camera = core.Vec2{
		X: s.Player.Pos.X - s.ViewW/2,
		Y: s.Player.Pos.Y - s.ViewH/2,
	}
	s.updateNavBearing(w)
	return s
}

// stepFlying runs the free-flight frame: input integration, weapons, entity
// updates, spawning, the viewport query and the collision pass.
func (s *State) stepFlying(cfg config.Config, w *world.Manager, in core.InputFrame,
	dt, nowMs float64, sink quest.Sink) {

	p := &s.Player

	if in.Moving() {
		mv := in.MoveVec()
		p.Angle = mv.Angle()
		p.Vel = p.Vel.Add(mv.Scale(cfg.Physics.PlayerAccel * dt))
		if sp := p.Vel.Len(); sp > cfg.Physics.PlayerMaxSpeed {
			p.Vel = p.Vel.Scale(cfg.Physics.PlayerMaxSpeed / sp)
		}
	} else {
		p.Vel = p.Vel.Scale(math.Pow(cfg.Physics.PlayerDrag, dt))
	}
	p.Update(dt)

	if s.FireCooldown > 0 {
		s.FireCooldown--
	}
	if in.Firing && s.FireCooldown <= 0 {
		muzzle := p.Pos.Add(core.FromAngle(p.Angle).Scale(p.Radius + 1))
		s.Projectiles = append(s.Projectiles, entity.NewProjectile(
			s.nextEntityID(), muzzle, p.Angle,
			cfg.Combat.ProjectileSpeed, cfg.Combat.ProjectileRadius, cfg.Combat.ProjectileLife))
		s.FireCooldown = cfg.Combat.FireCooldownTicks
	}

	kept := s.Projectiles[:0]
	for i := range s.Projectiles {
		pr := &s.Projectiles[i]
		pr.Update(dt)
		if !pr.Expired() {
			kept = append(kept, *pr)
		}
	}
	s.Projectiles = kept

	steerEnemies(s.Enemies, p.Pos, cfg.Physics.EnemySpeed, dt)
	s.maybeSpawnEnemy(cfg, s.navDestTech(w))
	s.despawnFar(w, cfg.Spawn.DespawnRadius)

	s.refreshVisible(w, nowMs)
	obstacles := make([]world.Object, 0, len(s.Visible))
	for _, o := range s.Visible {
		if o.Obstacle() {
			obstacles = append(obstacles, o)
		}
	}

	res := resolveCollisions(cfg, p, s.Enemies, s.Projectiles, obstacles, nowMs, s.rand)
	s.Enemies = res.enemies
	s.Projectiles = res.projectiles
	s.Bursts = append(s.Bursts, res.bursts...)

	switch {
	case res.playerKilled:
		s.enterDestroyed(cfg)
	case res.dockStation != "":
		s.startDocking(cfg, res.dockStation)
	case res.beaconHit != "":
		w.SetBeaconActive(res.beaconHit, true)
		sink.Emit(quest.Event{Type: quest.EventWaypointReached, BeaconID: res.beaconHit})
	}
}

// refreshVisible rebuilds the frame's viewport object cache.
func (s *State) refreshVisible(w *world.Manager, nowMs float64) {
	s.Visible = w.ObjectsInViewport(
		s.Player.Pos.X-s.ViewW/2, s.Player.Pos.Y-s.ViewH/2,
		s.ViewW, s.ViewH, nowMs)
}

// SetNavTarget points the nav indicator at a station or beacon by ID.
// An empty ID clears the target.
func (s *State) SetNavTarget(id string, w *world.Manager) bool {
	if id == "" {
		s.NavTargetID = ""
		s.NavSet = false
		return true
	}
	if w.StationByID(id) == nil && w.BeaconByID(id) == nil {
		return false
	}
	s.NavTargetID = id
	s.NavSet = true
	return true
}

// updateNavBearing recomputes the bearing toward the nav target. A target
// that no longer resolves clears silently.
func (s *State) updateNavBearing(w *world.Manager) {
	if !s.NavSet {
		return
	}
	var pos core.Vec2
	if o := w.StationByID(s.NavTargetID); o != nil {
		pos = o.Pos
	} else if o := w.BeaconByID(s.NavTargetID); o != nil {
		pos = o.Pos
	} else {
		s.NavTargetID = ""
		s.NavSet = false
		return
	}
	s.NavBearing = pos.Sub(s.Player.Pos).Angle()
}

// navDestTech returns the nav target station's tech level, 0 when the target
// is unset or is a beacon.
func (s *State) navDestTech(w *world.Manager) int {
	if !s.NavSet {
		return 0
	}
	if o := w.StationByID(s.NavTargetID); o != nil {
		return o.TechLevel
	}
	return 0
}
