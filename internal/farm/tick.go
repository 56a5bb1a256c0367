package farm

import (
	"github.com/Owennied/HimmyGames/internal/domain"
)

// TickHarvest is one automatic harvest
type TickHarvest struct {
	FarmerID int            `json:"farmer_id"`
	Plot     int            `json:"plot"`
	Crop     string         `json:"crop"`
	Variant  domain.Variant `json:"variant"`
}

// TickReplant is one automatic replant
type TickReplant struct {
	FarmerID int    `json:"farmer_id"`
	Plot     int    `json:"plot"`
	Crop     string `json:"crop"`
	SeedCost int64  `json:"seed_cost"`
}

// TickReport lists what the farmers did during one tick
type TickReport struct {
	Harvests []TickHarvest `json:"harvests"`
	Replants []TickReplant `json:"replants"`
}

// Changed reports whether the tick altered the farm
func (r TickReport) Changed() bool {
	return len(r.Harvests) > 0 || len(r.Replants) > 0
}

// Tick lets every assigned farmer work its plot, in hiring order: harvest a
// ready crop, then replant the configured crop if the plot is empty and the
// seed is affordable. Growth comes from wall-clock time, so a late tick
// catches up in one pass.
func (e *Engine) Tick() TickReport {
	var report TickReport

	for _, f := range e.state.Farmers {
		if f.AssignedPlot == nil {
			continue
		}
		plot := *f.AssignedPlot
		if !e.state.ValidPlot(plot) {
			continue
		}

		if crop := e.state.Plots[plot].Crop; e.IsReady(plot) {
			if v, err := e.Harvest(plot); err == nil {
				report.Harvests = append(report.Harvests, TickHarvest{
					FarmerID: f.ID,
					Plot:     plot,
					Crop:     crop,
					Variant:  v,
				})
			}
		}

		if f.AutoReplant == "" || !e.state.Plots[plot].IsEmpty() {
			continue
		}
		crop, ok := e.catalog.Lookup(f.AutoReplant)
		if !ok {
			continue
		}
		if err := e.Plant(plot, crop.ID); err == nil {
			report.Replants = append(report.Replants, TickReplant{
				FarmerID: f.ID,
				Plot:     plot,
				Crop:     crop.ID,
				SeedCost: crop.SeedCost,
			})
		}
	}

	return report
}
