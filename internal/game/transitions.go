package game

import (
	"math"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/market"
	"github.com/alexkorep-games/omega-void-sub000/internal/quest"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// startDocking begins the docking transition toward a station. Flight stops
// immediately; the docked view is entered when the animation completes.
func (s *State) startDocking(cfg config.Config, stationID string) {
	s.View = ViewDocking
	s.DockingStationID = stationID
	s.Player.Vel = core.Vec2{}
	s.Anim = AnimationState{Kind: AnimDocking, Progress: 0, Duration: cfg.Docking.DockingDurationMs}
}

// enterDocked completes docking: the station is marked discovered and its
// freshly generated market is merged into the known tables fill-if-absent.
// A price learned on a previous visit is never overwritten: price discovery
// is a one-time, persistent fact per item per station.
func (s *State) enterDocked(w *world.Manager, sink quest.Sink) {
	s.Anim = AnimationState{}
	s.View = ViewDocked

	st := w.StationByID(s.DockingStationID)
	if st == nil {
		// The docking target vanished mid-animation (malformed ID). Recover
		// by aborting back to flight.
		s.DockingStationID = ""
		s.View = ViewFlying
		return
	}

	s.LastDockedID = st.ID
	if !s.Discovered[st.ID] {
		s.Discovered = copyBoolMap(s.Discovered)
		s.Discovered[st.ID] = true
	}

	fresh := market.Generate(st.ID, st.Economy, st.TechLevel)
	s.KnownPrices = mergeKnown(s.KnownPrices, st.ID, fresh.Prices)
	s.KnownQuantities = mergeKnown(s.KnownQuantities, st.ID, fresh.Quantities)
	s.DockedMarket = &fresh

	sink.Emit(quest.Event{Type: quest.EventDocked, StationID: st.ID})
}

// startUndocking leaves the docked view on explicit user action.
func (s *State) startUndocking(cfg config.Config) {
	s.View = ViewUndocking
	s.DockedMarket = nil
	s.Anim = AnimationState{Kind: AnimUndocking, Progress: 0, Duration: cfg.Docking.UndockingDurationMs}
}

// finishUndocking places the player just outside the station, opposite its
// current rotation-adjusted front, with velocity zeroed and shield restored.
func (s *State) finishUndocking(cfg config.Config, w *world.Manager, nowMs float64) {
	s.Anim = AnimationState{}
	s.View = ViewFlying

	if st := w.StationByID(s.DockingStationID); st != nil {
		exit := st.RotationAt(nowMs) + math.Pi
		dist := st.Size + s.Player.Radius + cfg.Docking.ExitOffset
		s.Player.Pos = st.Pos.Add(core.FromAngle(exit).Scale(dist))
	}
	s.Player.Vel = core.Vec2{}
	s.Player.ShieldMax = s.ShieldMaxFor(cfg)
	s.Player.Shield = s.Player.ShieldMax
	s.DockingStationID = ""
}

// enterDestroyed handles player death: combatants are cleared at once and
// the respawn countdown starts. The large destruction burst was already
// spawned by the resolver.
func (s *State) enterDestroyed(cfg config.Config) {
	s.View = ViewDestroyed
	s.Enemies = nil
	s.Projectiles = nil
	s.RespawnTimerMs = cfg.Combat.RespawnDelayMs
}

// respawn returns the player to flight near the last docked station, or the
// world origin when that station no longer resolves. Cargo is lost;
// combatants and burst data are cleared; shield is restored.
func (s *State) respawn(cfg config.Config, w *world.Manager, nowMs float64) {
	s.View = ViewFlying
	s.RespawnTimerMs = 0

	pos := core.Vec2{}
	if st := w.StationByID(s.LastDockedID); st != nil {
		exit := st.RotationAt(nowMs) + math.Pi
		dist := st.Size + cfg.Physics.PlayerRadius + cfg.Docking.ExitOffset
		pos = st.Pos.Add(core.FromAngle(exit).Scale(dist))
	}
	s.Player = newPlayer(cfg, pos)
	s.Player.ShieldMax = s.ShieldMaxFor(cfg)
	s.Player.Shield = s.Player.ShieldMax

	s.Cargo = make(map[string]int)
	s.Enemies = nil
	s.Projectiles = nil
	s.Bursts = nil
}

// advanceTransitions drives the animated and timed transitions by one frame.
// Returns true when a view transition fired, which suppresses the won check
// for this frame to avoid ambiguous double-transitions.
func (s *State) advanceTransitions(cfg config.Config, w *world.Manager, dtMs, nowMs float64, sink quest.Sink) bool {
	switch s.View {
	case ViewDocking:
		s.Anim.Progress += dtMs
		if s.Anim.Done() {
			s.enterDocked(w, sink)
			return true
		}
	case ViewUndocking:
		s.Anim.Progress += dtMs
		if s.Anim.Done() {
			s.finishUndocking(cfg, w, nowMs)
			return true
		}
	case ViewDestroyed:
		s.RespawnTimerMs -= dtMs
		if s.RespawnTimerMs <= 0 {
			s.respawn(cfg, w, nowMs)
			return true
		}
	}
	return false
}

// mergeKnown merges a freshly generated table branch into the known tables
// with fill-if-absent semantics, copying only the touched branch.
func mergeKnown(known map[string]map[string]int, stationID string, fresh map[string]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(known)+1)
	for k, v := range known {
		out[k] = v
	}
	branch := copyStringIntMap(out[stationID])
	for k, v := range fresh {
		if _, ok := branch[k]; !ok {
			branch[k] = v
		}
	}
	out[stationID] = branch
	return out
}
