package domain

// Farm event types published on the event bus
const (
	EventTypeCropPlanted    = "crop.planted"
	EventTypeCropHarvested  = "crop.harvested"
	EventTypeCropSold       = "crop.sold"
	EventTypePlotPurchased  = "plot.purchased"
	EventTypeFarmerHired    = "farmer.hired"
	EventTypeFarmerFired    = "farmer.fired"
	EventTypeFarmerAssigned = "farmer.assigned"
	EventTypeFarmerUpdated  = "farmer.updated"
	EventTypeFarmRenamed    = "farm.renamed"
	EventTypeFarmReset      = "farm.reset"
	EventTypeFarmTicked     = "farm.ticked"
	EventTypeFarmUpdated    = "farm.updated"
	EventTypeCropReady      = "crop.ready"
)

// Harvest sources
const (
	SourcePlayer = "player"
	SourceFarmer = "farmer"
)

// CropPlantedPayload is published after a successful plant
type CropPlantedPayload struct {
	Plot      int    `json:"plot"`
	Crop      string `json:"crop"`
	SeedCost  int64  `json:"seed_cost"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// CropHarvestedPayload is published for every harvested unit
type CropHarvestedPayload struct {
	Plot      int     `json:"plot"`
	Crop      string  `json:"crop"`
	Variant   Variant `json:"variant"`
	Source    string  `json:"source"`
	FarmerID  int     `json:"farmer_id,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// CropSoldPayload is published after a sale
type CropSoldPayload struct {
	Crop      string `json:"crop"`
	Quantity  int    `json:"quantity"`
	Payout    int64  `json:"payout"`
	Timestamp int64  `json:"timestamp"`
}

// PlotPurchasedPayload is published after a plot purchase
type PlotPurchasedPayload struct {
	Cost      int64 `json:"cost"`
	PlotCount int   `json:"plot_count"`
	Timestamp int64 `json:"timestamp"`
}

// FarmerPayload is published for hire, fire, assign and replant changes
type FarmerPayload struct {
	FarmerID     int    `json:"farmer_id"`
	AssignedPlot *int   `json:"assigned_plot,omitempty"`
	AutoReplant  string `json:"auto_replant,omitempty"`
	FarmerCount  int    `json:"farmer_count"`
	Timestamp    int64  `json:"timestamp"`
}

// FarmTickedPayload is published when a tick changed the farm
type FarmTickedPayload struct {
	Harvested int   `json:"harvested"`
	Replanted int   `json:"replanted"`
	Timestamp int64 `json:"timestamp"`
}

// FarmRenamedPayload is published after a rename
type FarmRenamedPayload struct {
	OldName   string `json:"old_name"`
	NewName   string `json:"new_name"`
	Timestamp int64  `json:"timestamp"`
}

// FarmResetPayload is published after a reset
type FarmResetPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// CropReadyPayload is published when a planted crop finishes growing
type CropReadyPayload struct {
	Plot      int    `json:"plot"`
	Crop      string `json:"crop"`
	Timestamp int64  `json:"timestamp"`
}
