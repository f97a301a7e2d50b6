package game

import (
	"sort"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/storage"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// ToSaveSlot flattens the persistent portion of the state into a save slot.
// Hot combat state (enemies, projectiles, bursts) is deliberately not saved;
// a load always resumes in open space.
func (s *State) ToSaveSlot(slot int, seed int64, w *world.Manager, questBlob []byte) storage.SaveSlot {
	discovered := make([]string, 0, len(s.Discovered))
	for id := range s.Discovered {
		discovered = append(discovered, id)
	}
	sort.Strings(discovered)

	var active []string
	for _, b := range w.Beacons() {
		if b.Active {
			active = append(active, b.ID)
		}
	}

	return storage.SaveSlot{
		Slot:            slot,
		Seed:            seed,
		PlayerX:         s.Player.Pos.X,
		PlayerY:         s.Player.Pos.Y,
		Cash:            s.Cash,
		LastDockedID:    s.LastDockedID,
		Cargo:           s.Cargo,
		Upgrades:        s.Upgrades,
		Discovered:      discovered,
		KnownPrices:     s.KnownPrices,
		KnownQuantities: s.KnownQuantities,
		ActiveBeacons:   active,
		QuestBlob:       questBlob,
	}
}

// RestoreState rebuilds a playable state from a save slot and re-activates
// the saved beacons on the manager. The restored game resumes flying with a
// full shield.
func RestoreState(cfg config.Config, slot *storage.SaveSlot, w *world.Manager, viewW, viewH float64) *State {
	s := NewState(cfg, slot.Seed, viewW, viewH)
	s.Player.Pos = core.Vec2{X: slot.PlayerX, Y: slot.PlayerY}
	s.Cash = slot.Cash
	s.LastDockedID = slot.LastDockedID

	if slot.Cargo != nil {
		s.Cargo = slot.Cargo
	}
	if slot.Upgrades != nil {
		s.Upgrades = slot.Upgrades
	}
	if slot.KnownPrices != nil {
		s.KnownPrices = slot.KnownPrices
	}
	if slot.KnownQuantities != nil {
		s.KnownQuantities = slot.KnownQuantities
	}
	for _, id := range slot.Discovered {
		s.Discovered[id] = true
	}
	for _, id := range slot.ActiveBeacons {
		w.SetBeaconActive(id, true)
	}

	s.Player.ShieldMax = s.ShieldMaxFor(cfg)
	s.Player.Shield = s.Player.ShieldMax
	return s
}
