package game

import (
	"errors"
	"testing"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/market"
	"github.com/alexkorep-games/omega-void-sub000/internal/quest"
)

func dockedState(t *testing.T) *State {
	t.Helper()
	cfg := config.Default()
	s := NewState(cfg, 1, 240, 160)
	s.View = ViewDocked
	s.DockedMarket = &market.Table{
		Prices:     map[string]int{"food": 20, "minerals": 50},
		Quantities: map[string]int{"food": 30, "minerals": 0},
	}
	return s
}

func TestBuy(t *testing.T) {
	s := dockedState(t)
	rec := quest.NewRecorder()

	if err := s.Buy("food", 5, rec); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if s.Cash != 150-5*20 {
		t.Errorf("cash = %d, want %d", s.Cash, 150-5*20)
	}
	if s.Cargo["food"] != 5 {
		t.Errorf("cargo food = %d, want 5", s.Cargo["food"])
	}
	if s.DockedMarket.Quantities["food"] != 25 {
		t.Errorf("stock = %d, want 25", s.DockedMarket.Quantities["food"])
	}

	var gotAcquired, gotCredits bool
	for _, e := range rec.Events {
		switch e.Type {
		case quest.EventItemAcquired:
			gotAcquired = e.ItemKey == "food" && e.Quantity == 5
		case quest.EventCreditsChanged:
			gotCredits = e.Credits == s.Cash
		}
	}
	if !gotAcquired || !gotCredits {
		t.Errorf("missing trade events: %+v", rec.Events)
	}
}

func TestBuyErrors(t *testing.T) {
	s := dockedState(t)

	if err := s.Buy("plutonium", 1, quest.NopSink{}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("unknown item: %v", err)
	}
	if err := s.Buy("minerals", 1, quest.NopSink{}); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("zero stock: %v", err)
	}
	if err := s.Buy("food", 30, quest.NopSink{}); !errors.Is(err, ErrInsufficient) {
		// 20 units fit the hold, at 20cr each that is 400 against 150 cash.
		t.Errorf("insufficient funds: %v", err)
	}

	s.View = ViewFlying
	if err := s.Buy("food", 1, quest.NopSink{}); !errors.Is(err, ErrNotDocked) {
		t.Errorf("not docked: %v", err)
	}
}

func TestBuyClampsToCapacity(t *testing.T) {
	s := dockedState(t)
	s.Cash = 100000
	s.Cargo = map[string]int{"food": 15}

	if err := s.Buy("food", 30, quest.NopSink{}); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if s.Cargo["food"] != s.CargoCapacity() {
		t.Errorf("cargo = %d, want clamped to capacity %d", s.Cargo["food"], s.CargoCapacity())
	}

	if err := s.Buy("food", 1, quest.NopSink{}); !errors.Is(err, ErrCargoFull) {
		t.Errorf("full hold: %v", err)
	}
}

func TestSell(t *testing.T) {
	s := dockedState(t)
	s.Cargo = map[string]int{"food": 8}

	if err := s.Sell("food", 20, quest.NopSink{}); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if s.Cash != 150+8*20 {
		t.Errorf("cash = %d, want %d after selling the clamped 8 units", s.Cash, 150+8*20)
	}
	if _, ok := s.Cargo["food"]; ok {
		t.Error("sold-out item must leave the hold")
	}
	if s.DockedMarket.Quantities["food"] != 38 {
		t.Errorf("stock = %d, want 38", s.DockedMarket.Quantities["food"])
	}

	if err := s.Sell("food", 1, quest.NopSink{}); !errors.Is(err, ErrNothingToSell) {
		t.Errorf("empty hold: %v", err)
	}
}

func TestBuyUpgrade(t *testing.T) {
	cfg := config.Default()
	s := dockedState(t)
	s.Cash = 2000
	rec := quest.NewRecorder()

	if err := s.BuyUpgrade(UpgradeCargoHold, rec); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	if s.Cash != 1500 {
		t.Errorf("cash = %d, want 1500", s.Cash)
	}
	if s.CargoCapacity() != baseCargoCapacity+10 {
		t.Errorf("capacity = %d, want %d", s.CargoCapacity(), baseCargoCapacity+10)
	}
	if s.UpgradeCost(UpgradeCargoHold) != 1000 {
		t.Errorf("next level cost = %d, want 1000", s.UpgradeCost(UpgradeCargoHold))
	}

	if err := s.BuyUpgrade(UpgradeShield, rec); err != nil {
		t.Fatalf("BuyUpgrade: %v", err)
	}
	if want := cfg.Combat.ShieldMax * 1.25; s.ShieldMaxFor(cfg) != want {
		t.Errorf("shield max = %v, want %v", s.ShieldMaxFor(cfg), want)
	}

	if err := s.BuyUpgrade("warp_drive", rec); err == nil {
		t.Error("unknown upgrade must be rejected")
	}

	s.Cash = 0
	if err := s.BuyUpgrade(UpgradeShield, rec); !errors.Is(err, ErrInsufficient) {
		t.Errorf("insufficient funds: %v", err)
	}

	s.View = ViewFlying
	if err := s.BuyUpgrade(UpgradeShield, rec); !errors.Is(err, ErrNotDocked) {
		t.Errorf("not docked: %v", err)
	}

	if rec.Score() < 30 {
		t.Errorf("two upgrades must contribute score, got %d", rec.Score())
	}
}

func TestTradeDoesNotAliasKnownTables(t *testing.T) {
	s := dockedState(t)
	s.KnownQuantities = map[string]map[string]int{"st_x": {"food": 30}}

	if err := s.Buy("food", 2, quest.NopSink{}); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if s.KnownQuantities["st_x"]["food"] != 30 {
		t.Error("live market trade must not write through to the known tables")
	}
}
