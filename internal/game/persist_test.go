package game

import (
	"testing"

	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

func TestSaveSlotRoundTrip(t *testing.T) {
	w, cfg := emptyWorld(7)
	s := NewState(cfg, 7, 240, 160)
	s.Player.Pos = core.Vec2{X: 4200, Y: -900}
	s.Cash = 777
	s.LastDockedID = "st_fixed_omega"
	s.Cargo = map[string]int{"food": 3}
	s.Upgrades = map[string]int{UpgradeShield: 2}
	s.Discovered = map[string]bool{"st_fixed_omega": true}
	s.KnownPrices = map[string]map[string]int{"st_fixed_omega": {"food": 18}}
	w.SetBeaconActive("bcn_alpha", true)

	slot := s.ToSaveSlot(1, 7, w, []byte("blob"))

	w2, _ := emptyWorld(7)
	restored := RestoreState(cfg, &slot, w2, 240, 160)

	if restored.Player.Pos != s.Player.Pos {
		t.Errorf("pos = %v, want %v", restored.Player.Pos, s.Player.Pos)
	}
	if restored.Cash != 777 || restored.LastDockedID != "st_fixed_omega" {
		t.Errorf("cash/dock lost: %+v", restored)
	}
	if restored.Cargo["food"] != 3 || restored.Upgrades[UpgradeShield] != 2 {
		t.Error("cargo or upgrades lost")
	}
	if !restored.Discovered["st_fixed_omega"] {
		t.Error("discovery record lost")
	}
	if restored.KnownPrices["st_fixed_omega"]["food"] != 18 {
		t.Error("known prices lost")
	}
	if b := w2.BeaconByID("bcn_alpha"); b == nil || !b.Active {
		t.Error("beacon activation not restored")
	}
	if restored.Player.Shield != restored.ShieldMaxFor(cfg) {
		t.Errorf("restored shield = %v, want upgraded max %v", restored.Player.Shield, restored.ShieldMaxFor(cfg))
	}
	if restored.View != ViewFlying {
		t.Errorf("restored view = %v, want flying", restored.View)
	}
}
