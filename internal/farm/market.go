package farm

import (
	"math"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Sale describes units removed from the inventory and what they paid
type Sale struct {
	Crop   string           `json:"crop"`
	Sold   []domain.Variant `json:"sold"`
	Payout int64            `json:"payout"`
}

// Quantity returns the number of units sold
func (s Sale) Quantity() int {
	return len(s.Sold)
}

// MarketEntry is one row of the market listing
type MarketEntry struct {
	Crop       string                   `json:"crop"`
	Name       string                   `json:"name"`
	BasePrice  int64                    `json:"base_price"`
	SeedCost   int64                    `json:"seed_cost"`
	Held       int                      `json:"held"`
	HeldByTier map[domain.Variant]int   `json:"held_by_tier"`
	UnitPrices map[domain.Variant]int64 `json:"unit_prices"`
	SellAll    int64                    `json:"sell_all_value"`
}

// UnitPrice is what a single unit of the variant pays when sold alone
func UnitPrice(basePrice int64, v domain.Variant) int64 {
	return int64(math.Round(float64(basePrice) * v.Multiplier()))
}

// BulkPrice sums price*multiplier over units and rounds once at the end
func BulkPrice(basePrice int64, units []domain.Variant) int64 {
	total := 0.0
	for _, v := range units {
		total += float64(basePrice) * v.Multiplier()
	}
	return int64(math.Round(total))
}

// SellOne sells the most valuable unit held for crop.
// Among equal variants the earliest harvested goes first.
func (e *Engine) SellOne(cropID string) (Sale, error) {
	crop, ok := e.catalog.Lookup(cropID)
	if !ok {
		return Sale{}, domain.ErrUnknownCrop
	}
	units := e.state.Inventory[cropID]
	if len(units) == 0 {
		return Sale{}, domain.ErrInventoryEmpty
	}

	best := 0
	for i, v := range units {
		if v.Multiplier() > units[best].Multiplier() {
			best = i
		}
	}

	sold := units[best]
	remaining := make([]domain.Variant, 0, len(units)-1)
	remaining = append(remaining, units[:best]...)
	remaining = append(remaining, units[best+1:]...)

	payout := UnitPrice(crop.Price, sold)
	e.setUnits(cropID, remaining)
	e.state.Money += payout

	return Sale{Crop: cropID, Sold: []domain.Variant{sold}, Payout: payout}, nil
}

// SellAll sells every unit held for crop
func (e *Engine) SellAll(cropID string) (Sale, error) {
	crop, ok := e.catalog.Lookup(cropID)
	if !ok {
		return Sale{}, domain.ErrUnknownCrop
	}
	units := e.state.Inventory[cropID]
	if len(units) == 0 {
		return Sale{}, domain.ErrInventoryEmpty
	}

	payout := BulkPrice(crop.Price, units)
	sold := append([]domain.Variant(nil), units...)
	e.setUnits(cropID, nil)
	e.state.Money += payout

	return Sale{Crop: cropID, Sold: sold, Payout: payout}, nil
}

// SellAllOfVariant sells every unit of one variant held for crop
func (e *Engine) SellAllOfVariant(cropID string, v domain.Variant) (Sale, error) {
	crop, ok := e.catalog.Lookup(cropID)
	if !ok {
		return Sale{}, domain.ErrUnknownCrop
	}
	if !v.IsValid() {
		return Sale{}, domain.ErrUnknownVariant
	}

	units := e.state.Inventory[cropID]
	var sold, kept []domain.Variant
	for _, u := range units {
		if u == v {
			sold = append(sold, u)
		} else {
			kept = append(kept, u)
		}
	}
	if len(sold) == 0 {
		return Sale{}, domain.ErrInventoryEmpty
	}

	payout := BulkPrice(crop.Price, sold)
	e.setUnits(cropID, kept)
	e.state.Money += payout

	return Sale{Crop: cropID, Sold: sold, Payout: payout}, nil
}

func (e *Engine) setUnits(cropID string, units []domain.Variant) {
	if len(units) == 0 {
		delete(e.state.Inventory, cropID)
		return
	}
	e.state.Inventory[cropID] = units
}

// Market lists every catalog crop with its prices and current holdings
func (e *Engine) Market() []MarketEntry {
	crops := e.catalog.List()
	out := make([]MarketEntry, 0, len(crops))
	for _, crop := range crops {
		units := e.state.Inventory[crop.ID]
		entry := MarketEntry{
			Crop:       crop.ID,
			Name:       crop.Name,
			BasePrice:  crop.Price,
			SeedCost:   crop.SeedCost,
			Held:       len(units),
			HeldByTier: make(map[domain.Variant]int, len(domain.Variants)),
			UnitPrices: make(map[domain.Variant]int64, len(domain.Variants)),
			SellAll:    BulkPrice(crop.Price, units),
		}
		for _, v := range domain.Variants {
			entry.UnitPrices[v] = UnitPrice(crop.Price, v)
		}
		for _, u := range units {
			entry.HeldByTier[u]++
		}
		out = append(out, entry)
	}
	return out
}
