package domain

// Crop is a static catalog entry describing a plantable species
type Crop struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	GrowSeconds int64               `json:"grow_seconds"`
	Price       int64               `json:"price"`
	SeedCost    int64               `json:"seed_cost"`
	Odds        map[Variant]float64 `json:"odds"`
}

// Plot is a single growing slot. An empty Crop means the plot holds nothing.
type Plot struct {
	Crop      string `json:"crop,omitempty"`
	PlantedAt int64  `json:"planted_at,omitempty"` // epoch milliseconds
}

// IsEmpty reports whether nothing is planted on the plot
func (p Plot) IsEmpty() bool {
	return p.Crop == ""
}

// Inventory maps a crop id to its harvested units in harvest order
type Inventory map[string][]Variant

// Count returns the number of units held for a crop
func (inv Inventory) Count(cropID string) int {
	return len(inv[cropID])
}

// Clone returns a deep copy of the inventory
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for id, units := range inv {
		if len(units) == 0 {
			continue
		}
		out[id] = append([]Variant(nil), units...)
	}
	return out
}

// Farmer is an automation unit that works at most one plot
type Farmer struct {
	ID           int    `json:"id"`
	AssignedPlot *int   `json:"assigned_plot"`
	AutoReplant  string `json:"auto_replant,omitempty"`
}

// IsAssigned reports whether the farmer currently works a plot
func (f Farmer) IsAssigned() bool {
	return f.AssignedPlot != nil
}

// State is the complete mutable farm. It is owned by a single engine.
type State struct {
	Money         int64     `json:"money"`
	Plots         []Plot    `json:"plots"`
	Inventory     Inventory `json:"inventory"`
	FarmName      string    `json:"farm_name"`
	Farmers       []Farmer  `json:"farmers"`
	FarmerCounter int       `json:"farmer_counter"`
}

// NewState returns the starter farm: one empty plot, no money, no farmers
func NewState() *State {
	return &State{
		Money:     0,
		Plots:     []Plot{{}},
		Inventory: Inventory{},
		FarmName:  DefaultFarmName,
		Farmers:   []Farmer{},
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	out := &State{
		Money:         s.Money,
		Plots:         append([]Plot(nil), s.Plots...),
		Inventory:     s.Inventory.Clone(),
		FarmName:      s.FarmName,
		Farmers:       make([]Farmer, len(s.Farmers)),
		FarmerCounter: s.FarmerCounter,
	}
	for i, f := range s.Farmers {
		out.Farmers[i] = f
		if f.AssignedPlot != nil {
			idx := *f.AssignedPlot
			out.Farmers[i].AssignedPlot = &idx
		}
	}
	return out
}

// FarmerOnPlot returns the farmer assigned to a plot, if any
func (s *State) FarmerOnPlot(plot int) (*Farmer, bool) {
	for i := range s.Farmers {
		if a := s.Farmers[i].AssignedPlot; a != nil && *a == plot {
			return &s.Farmers[i], true
		}
	}
	return nil, false
}

// FindFarmer returns the farmer with the given id
func (s *State) FindFarmer(id int) (*Farmer, bool) {
	for i := range s.Farmers {
		if s.Farmers[i].ID == id {
			return &s.Farmers[i], true
		}
	}
	return nil, false
}

// ValidPlot reports whether idx addresses an existing plot
func (s *State) ValidPlot(idx int) bool {
	return idx >= 0 && idx < len(s.Plots)
}
