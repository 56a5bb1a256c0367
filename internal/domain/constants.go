package domain

// Farm defaults
const (
	DefaultFarmName   = "Tiny Farm"
	MaxFarmNameLength = 64
)

// Economy constants
const (
	FarmerCost       int64 = 150
	StarterPlotCost  int64 = 75
	PlotCostStep     int64 = 100
	MillisPerSecond        = 1000
	MaxGrowthPercent       = 100
)

// Crop ids shipped in the default catalog
const (
	CropCarrot = "carrot"
	CropTurnip = "turnip"
)

// Plot state labels used by the render surface
const (
	PlotLabelEmpty      = "Empty"
	PlotLabelGrowingFmt = "%s — Growing (%ds / %ds)"
	PlotLabelReadyFmt   = "%s — Ready"
)
