// Package market generates station commodity tables. Tables are derived
// deterministically from the station ID, its economy type and tech level, so
// a station's market can be rebuilt from the station alone. The simulation
// consumes the data shape; price persistence (fill-if-absent) is the
// simulation's concern, not this package's.
package market

import (
	"hash/fnv"

	"github.com/alexkorep-games/omega-void-sub000/internal/rng"
	"github.com/alexkorep-games/omega-void-sub000/internal/world"
)

// Commodity describes one tradeable item.
type Commodity struct {
	Key       string
	Name      string
	BasePrice int
	MinTech   int               // stations below this tech level do not list it
	Producer  world.EconomyType // economy that produces it cheaply and in bulk
}

// Commodities is the fixed commodity catalog, in listing order.
var Commodities = []Commodity{
	{Key: "food", Name: "Food Cartridges", BasePrice: 18, MinTech: 1, Producer: world.EconomyAgricultural},
	{Key: "textiles", Name: "Textiles", BasePrice: 26, MinTech: 1, Producer: world.EconomyAgricultural},
	{Key: "minerals", Name: "Raw Minerals", BasePrice: 34, MinTech: 1, Producer: world.EconomyExtraction},
	{Key: "fuel", Name: "Reactor Fuel", BasePrice: 52, MinTech: 2, Producer: world.EconomyRefinery},
	{Key: "alloys", Name: "Hull Alloys", BasePrice: 78, MinTech: 3, Producer: world.EconomyRefinery},
	{Key: "machinery", Name: "Machinery", BasePrice: 120, MinTech: 4, Producer: world.EconomyIndustrial},
	{Key: "medicine", Name: "Medicine", BasePrice: 165, MinTech: 5, Producer: world.EconomyHighTech},
	{Key: "computers", Name: "Computers", BasePrice: 240, MinTech: 6, Producer: world.EconomyHighTech},
	{Key: "luxuries", Name: "Luxury Goods", BasePrice: 390, MinTech: 7, Producer: world.EconomyIndustrial},
}

// CommodityByKey returns the catalog entry, or nil for unknown keys.
func CommodityByKey(key string) *Commodity {
	for i := range Commodities {
		if Commodities[i].Key == key {
			return &Commodities[i]
		}
	}
	return nil
}

// Table is one station's market snapshot: unit prices and stocked
// quantities keyed by commodity key. Items a station does not list are
// absent from both maps.
type Table struct {
	Prices     map[string]int
	Quantities map[string]int
}

// Generate builds the market table for a station. The same station always
// yields the same table.
func Generate(stationID string, economy world.EconomyType, techLevel int) Table {
	g := rng.New(seedFromID(stationID))
	t := Table{
		Prices:     make(map[string]int),
		Quantities: make(map[string]int),
	}

	for _, c := range Commodities {
		if techLevel < c.MinTech {
			continue
		}

		price := float64(c.BasePrice) * g.NextFloatRange(0.85, 1.20)
		qty := g.NextInt(2, 30)

		// Producing economies sell cheap and stock deep.
		if c.Producer == economy {
			price *= 0.65
			qty += g.NextInt(20, 60)
		}

		if price < 1 {
			price = 1
		}
		t.Prices[c.Key] = int(price)
		t.Quantities[c.Key] = qty
	}
	return t
}

// seedFromID hashes a station ID into a PRNG seed. FNV-1a keeps the mapping
// stable across processes.
func seedFromID(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() & 0x7FFFFFFFFFFFFFFF)
}
