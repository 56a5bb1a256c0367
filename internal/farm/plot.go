package farm

import (
	"math"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Plant sows crop on an empty plot and pays its seed cost
func (e *Engine) Plant(plot int, cropID string) error {
	if !e.state.ValidPlot(plot) {
		return domain.ErrInvalidPlot
	}
	if !e.state.Plots[plot].IsEmpty() {
		return domain.ErrPlotOccupied
	}
	crop, ok := e.catalog.Lookup(cropID)
	if !ok {
		return domain.ErrUnknownCrop
	}
	if e.state.Money < crop.SeedCost {
		return domain.ErrInsufficientFunds
	}

	e.state.Money -= crop.SeedCost
	e.state.Plots[plot] = domain.Plot{Crop: crop.ID, PlantedAt: e.nowMillis()}
	return nil
}

// ElapsedSeconds returns whole seconds since the plot was planted.
// Empty or invalid plots report 0, and a planting time in the future counts as 0.
func (e *Engine) ElapsedSeconds(plot int) int64 {
	if !e.state.ValidPlot(plot) {
		return 0
	}
	return e.elapsed(e.state.Plots[plot])
}

func (e *Engine) elapsed(p domain.Plot) int64 {
	if p.IsEmpty() {
		return 0
	}
	delta := e.nowMillis() - p.PlantedAt
	if delta < 0 {
		return 0
	}
	return delta / domain.MillisPerSecond
}

// IsReady reports whether the plot holds a crop that has finished growing
func (e *Engine) IsReady(plot int) bool {
	if !e.state.ValidPlot(plot) {
		return false
	}
	return e.ready(e.state.Plots[plot])
}

func (e *Engine) ready(p domain.Plot) bool {
	if p.IsEmpty() {
		return false
	}
	crop, ok := e.catalog.Lookup(p.Crop)
	if !ok {
		return false
	}
	return e.elapsed(p) >= crop.GrowSeconds
}

// GrowthPercent returns growth progress in [0,100]. Empty plots report 0.
func (e *Engine) GrowthPercent(plot int) int {
	if !e.state.ValidPlot(plot) {
		return 0
	}
	return e.growth(e.state.Plots[plot])
}

func (e *Engine) growth(p domain.Plot) int {
	if p.IsEmpty() {
		return 0
	}
	crop, ok := e.catalog.Lookup(p.Crop)
	if !ok {
		return 0
	}
	if crop.GrowSeconds <= 0 {
		return domain.MaxGrowthPercent
	}
	pct := int(math.Round(float64(e.elapsed(p)) / float64(crop.GrowSeconds) * 100))
	if pct > domain.MaxGrowthPercent {
		return domain.MaxGrowthPercent
	}
	return pct
}

// Harvest collects a ready crop, rolls its variant, adds it to the inventory
// and empties the plot
func (e *Engine) Harvest(plot int) (domain.Variant, error) {
	if !e.state.ValidPlot(plot) {
		return "", domain.ErrInvalidPlot
	}
	p := e.state.Plots[plot]
	if p.IsEmpty() {
		return "", domain.ErrPlotEmpty
	}
	if !e.ready(p) {
		return "", domain.ErrNotReady
	}

	crop, _ := e.catalog.Lookup(p.Crop)
	v := e.sampler.Sample(crop.Odds)

	if e.state.Inventory == nil {
		e.state.Inventory = domain.Inventory{}
	}
	e.state.Inventory[crop.ID] = append(e.state.Inventory[crop.ID], v)
	e.state.Plots[plot] = domain.Plot{}
	return v, nil
}
