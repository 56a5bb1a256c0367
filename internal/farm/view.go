package farm

import (
	"fmt"
	"sort"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// View is the rendered farm returned by the API and pushed to SSE clients
type View struct {
	FarmName     string          `json:"farm_name"`
	Money        int64           `json:"money"`
	Plots        []PlotView      `json:"plots"`
	Inventory    []InventoryView `json:"inventory"`
	Farmers      []FarmerView    `json:"farmers"`
	NextPlotCost int64           `json:"next_plot_cost"`
	FarmerCost   int64           `json:"farmer_cost"`
	CanBuyPlot   bool            `json:"can_buy_plot"`
	CanHire      bool            `json:"can_hire"`
	RenderedAt   int64           `json:"rendered_at"`
}

// PlotView is one plot with its growth progress
type PlotView struct {
	Index          int    `json:"index"`
	Empty          bool   `json:"empty"`
	Crop           string `json:"crop,omitempty"`
	CropName       string `json:"crop_name,omitempty"`
	PlantedAt      int64  `json:"planted_at,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	GrowSeconds    int64  `json:"grow_seconds,omitempty"`
	GrowthPercent  int    `json:"growth_percent"`
	Ready          bool   `json:"ready"`
	Label          string `json:"label"`
	FarmerID       *int   `json:"farmer_id,omitempty"`
}

// InventoryView is the holding for one crop
type InventoryView struct {
	Crop     string                 `json:"crop"`
	Name     string                 `json:"name"`
	Count    int                    `json:"count"`
	ByTier   map[domain.Variant]int `json:"by_tier"`
	Variants []domain.Variant       `json:"variants"`
}

// FarmerView is one hired farmer
type FarmerView struct {
	ID           int    `json:"id"`
	AssignedPlot *int   `json:"assigned_plot"`
	AutoReplant  string `json:"auto_replant,omitempty"`
}

// View renders the current farm
func (e *Engine) View() *View {
	s := e.state
	v := &View{
		FarmName:     s.FarmName,
		Money:        s.Money,
		Plots:        make([]PlotView, 0, len(s.Plots)),
		Inventory:    make([]InventoryView, 0, len(s.Inventory)),
		Farmers:      make([]FarmerView, 0, len(s.Farmers)),
		NextPlotCost: e.NextPlotCost(),
		FarmerCost:   domain.FarmerCost,
		RenderedAt:   e.nowMillis(),
	}
	v.CanBuyPlot = e.CanAfford(v.NextPlotCost)
	v.CanHire = e.CanAfford(v.FarmerCost)

	for i, p := range s.Plots {
		v.Plots = append(v.Plots, e.plotView(i, p))
	}

	for _, id := range e.inventoryOrder() {
		units := s.Inventory[id]
		iv := InventoryView{
			Crop:     id,
			Name:     id,
			Count:    len(units),
			ByTier:   make(map[domain.Variant]int, len(domain.Variants)),
			Variants: append([]domain.Variant(nil), units...),
		}
		if crop, ok := e.catalog.Lookup(id); ok {
			iv.Name = crop.Name
		}
		for _, u := range units {
			iv.ByTier[u]++
		}
		v.Inventory = append(v.Inventory, iv)
	}

	for _, f := range s.Farmers {
		fv := FarmerView{ID: f.ID, AutoReplant: f.AutoReplant}
		if f.AssignedPlot != nil {
			idx := *f.AssignedPlot
			fv.AssignedPlot = &idx
		}
		v.Farmers = append(v.Farmers, fv)
	}

	return v
}

func (e *Engine) plotView(idx int, p domain.Plot) PlotView {
	pv := PlotView{Index: idx, Empty: p.IsEmpty(), Label: domain.PlotLabelEmpty}
	if f, ok := e.state.FarmerOnPlot(idx); ok {
		id := f.ID
		pv.FarmerID = &id
	}
	if p.IsEmpty() {
		return pv
	}

	pv.Crop = p.Crop
	pv.CropName = p.Crop
	pv.PlantedAt = p.PlantedAt
	pv.ElapsedSeconds = e.elapsed(p)
	pv.GrowthPercent = e.growth(p)
	pv.Ready = e.ready(p)

	if crop, ok := e.catalog.Lookup(p.Crop); ok {
		pv.CropName = crop.Name
		pv.GrowSeconds = crop.GrowSeconds
	}

	if pv.Ready {
		pv.Label = fmt.Sprintf(domain.PlotLabelReadyFmt, pv.CropName)
	} else {
		shown := pv.ElapsedSeconds
		if shown > pv.GrowSeconds {
			shown = pv.GrowSeconds
		}
		pv.Label = fmt.Sprintf(domain.PlotLabelGrowingFmt, pv.CropName, shown, pv.GrowSeconds)
	}
	return pv
}

// inventoryOrder lists held crops in catalog order, then any others by id
func (e *Engine) inventoryOrder() []string {
	seen := make(map[string]bool, len(e.state.Inventory))
	var out []string
	for _, id := range e.catalog.IDs() {
		if len(e.state.Inventory[id]) > 0 {
			out = append(out, id)
			seen[id] = true
		}
	}
	var rest []string
	for id, units := range e.state.Inventory {
		if !seen[id] && len(units) > 0 {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
