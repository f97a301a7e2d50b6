package game

import (
	"errors"
	"fmt"

	"github.com/alexkorep-games/omega-void-sub000/internal/market"
	"github.com/alexkorep-games/omega-void-sub000/internal/quest"
)

// Trading errors. These surface to the docked UI, never to the frame loop.
var (
	ErrNotDocked     = errors.New("game: not docked at a station")
	ErrUnknownItem   = errors.New("game: commodity not listed here")
	ErrInsufficient  = errors.New("game: not enough credits")
	ErrCargoFull     = errors.New("game: cargo hold full")
	ErrOutOfStock    = errors.New("game: station out of stock")
	ErrNothingToSell = errors.New("game: nothing of that item to sell")
)

// Buy purchases qty units of a commodity from the docked station's market.
// The request is clamped to stock; payment is at the station's listed price.
func (s *State) Buy(key string, qty int, sink quest.Sink) error {
	if s.View != ViewDocked || s.DockedMarket == nil {
		return ErrNotDocked
	}
	price, ok := s.DockedMarket.Prices[key]
	if !ok {
		return ErrUnknownItem
	}
	stock := s.DockedMarket.Quantities[key]
	if stock <= 0 {
		return ErrOutOfStock
	}
	if qty > stock {
		qty = stock
	}
	space := s.CargoCapacity() - s.CargoUsed()
	if space <= 0 {
		return ErrCargoFull
	}
	if qty > space {
		qty = space
	}
	cost := int64(price) * int64(qty)
	if cost > s.Cash {
		return ErrInsufficient
	}

	s.Cash -= cost
	s.Cargo = copyStringIntMap(s.Cargo)
	s.Cargo[key] += qty
	s.DockedMarket.Quantities[key] -= qty

	sink.Emit(quest.Event{Type: quest.EventItemAcquired, ItemKey: key, Quantity: qty})
	sink.Emit(quest.Event{Type: quest.EventCreditsChanged, Credits: s.Cash})
	return nil
}

// Sell sells qty units from the cargo hold at the docked station's listed
// price. The request is clamped to holdings.
func (s *State) Sell(key string, qty int, sink quest.Sink) error {
	if s.View != ViewDocked || s.DockedMarket == nil {
		return ErrNotDocked
	}
	price, ok := s.DockedMarket.Prices[key]
	if !ok {
		return ErrUnknownItem
	}
	held := s.Cargo[key]
	if held <= 0 {
		return ErrNothingToSell
	}
	if qty > held {
		qty = held
	}

	s.Cash += int64(price) * int64(qty)
	s.Cargo = copyStringIntMap(s.Cargo)
	s.Cargo[key] -= qty
	if s.Cargo[key] == 0 {
		delete(s.Cargo, key)
	}
	s.DockedMarket.Quantities[key] += qty

	sink.Emit(quest.Event{Type: quest.EventCreditsChanged, Credits: s.Cash})
	return nil
}

// UpgradeCost returns the price of the next level of an upgrade.
func (s *State) UpgradeCost(key string) int64 {
	return int64(500 * (s.Upgrades[key] + 1))
}

// BuyUpgrade purchases the next level of a ship upgrade while docked.
func (s *State) BuyUpgrade(key string, sink quest.Sink) error {
	if s.View != ViewDocked {
		return ErrNotDocked
	}
	if key != UpgradeCargoHold && key != UpgradeShield {
		return fmt.Errorf("game: unknown upgrade %q", key)
	}
	cost := s.UpgradeCost(key)
	if cost > s.Cash {
		return ErrInsufficient
	}

	s.Cash -= cost
	s.Upgrades = copyStringIntMap(s.Upgrades)
	s.Upgrades[key]++

	sink.Emit(quest.Event{Type: quest.EventShipUpgraded, Upgrade: key, Level: s.Upgrades[key]})
	sink.Emit(quest.Event{Type: quest.EventCreditsChanged, Credits: s.Cash})
	return nil
}

// KnownPricesAt returns the persistently known price table for a station,
// nil when never docked there. The caller must not mutate the result.
func (s *State) KnownPricesAt(stationID string) map[string]int {
	return s.KnownPrices[stationID]
}

// CommodityName resolves a commodity key to its display name.
func CommodityName(key string) string {
	if c := market.CommodityByKey(key); c != nil {
		return c.Name
	}
	return key
}
