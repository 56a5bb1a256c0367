package handler

import (
	"context"
	"net/http"

	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// Operation names used in logs
const (
	OpPlant          = "Plant"
	OpHarvest        = "Harvest"
	OpBuyPlot        = "Buy plot"
	OpSell           = "Sell"
	OpHireFarmer     = "Hire farmer"
	OpFireFarmer     = "Fire farmer"
	OpAssignFarmer   = "Assign farmer"
	OpUnassignFarmer = "Unassign farmer"
	OpSetReplant     = "Set auto-replant"
	OpRename         = "Rename farm"
	OpReset          = "Reset farm"
)

// PlantRequest plants a crop on a 0-based plot index
type PlantRequest struct {
	Plot *int   `json:"plot" validate:"required,min=0"`
	Crop string `json:"crop" validate:"required,max=64"`
}

// HarvestRequest harvests a 0-based plot index
type HarvestRequest struct {
	Plot *int `json:"plot" validate:"required,min=0"`
}

// SellRequest sells one unit, every unit, or every unit of one variant
type SellRequest struct {
	Crop    string `json:"crop" validate:"required,max=64"`
	Variant string `json:"variant,omitempty" validate:"omitempty,variant"`
	All     bool   `json:"all,omitempty"`
}

// FarmerRequest targets one farmer by display number
type FarmerRequest struct {
	FarmerID int `json:"farmer_id" validate:"required,min=1"`
}

// AssignRequest puts a farmer on a 0-based plot index
type AssignRequest struct {
	FarmerID int  `json:"farmer_id" validate:"required,min=1"`
	Plot     *int `json:"plot" validate:"required,min=0"`
}

// ReplantRequest sets the crop a farmer replants. An empty crop clears it.
type ReplantRequest struct {
	FarmerID int    `json:"farmer_id" validate:"required,min=1"`
	Crop     string `json:"crop" validate:"max=64"`
}

// RenameRequest renames the farm
type RenameRequest struct {
	Name string `json:"name" validate:"required,farmname,max=64,excludesall=\x00\n\r\t"`
}

// FarmHandler serves the farm API
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{
		farmSvc: farmSvc,
	}
}

// GetFarm returns the full farm view
// @Summary Get the farm
// @Description Money, plots with growth progress, inventory, farmers and costs
// @Tags farm
// @Produce json
// @Success 200 {object} farm.View
// @Router /farm [get]
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.View(r.Context()))
}

// GetMarket returns the market listing
// @Summary Get the market
// @Description Held units and prices for every crop
// @Tags market
// @Produce json
// @Success 200 {array} farm.MarketEntry
// @Router /market [get]
func (h *FarmHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.Market(r.Context()))
}

// GetCrops returns the crop catalog
// @Summary List crops
// @Tags farm
// @Produce json
// @Success 200 {array} domain.Crop
// @Router /crops [get]
func (h *FarmHandler) GetCrops(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.farmSvc.Crops(r.Context()))
}

// Plant handles the plant endpoint
// @Summary Plant a crop
// @Description Pays the seed cost and starts growing a crop on an empty plot
// @Tags plots
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} farm.ActionResult
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 404 {object} ErrorResponse "Unknown crop"
// @Failure 409 {object} ErrorResponse "Plot occupied or not enough money"
// @Router /plots/plant [post]
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpPlant, func(ctx context.Context, req PlantRequest) (*farm.ActionResult, error) {
		logger.FromContext(ctx).Debug("Plant request received", "plot", *req.Plot, "crop", req.Crop)
		return h.farmSvc.Plant(ctx, *req.Plot, req.Crop)
	})
}

// Harvest handles the harvest endpoint
// @Summary Harvest a plot
// @Description Harvests a ready crop and rolls its variant
// @Tags plots
// @Accept json
// @Produce json
// @Param request body HarvestRequest true "Harvest request"
// @Success 200 {object} farm.ActionResult
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 409 {object} ErrorResponse "Plot empty or crop still growing"
// @Router /plots/harvest [post]
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpHarvest, func(ctx context.Context, req HarvestRequest) (*farm.ActionResult, error) {
		return h.farmSvc.Harvest(ctx, *req.Plot)
	})
}

// BuyPlot handles the buy plot endpoint
// @Summary Buy a plot
// @Tags plots
// @Produce json
// @Success 200 {object} farm.ActionResult
// @Failure 409 {object} ErrorResponse "Not enough money"
// @Router /plots/buy [post]
func (h *FarmHandler) BuyPlot(w http.ResponseWriter, r *http.Request) {
	respondAction(w, r, OpBuyPlot, h.farmSvc.BuyPlot)
}

// Sell handles the sell endpoint
// @Summary Sell crops
// @Description Sells the most valuable unit, every unit, or every unit of one variant
// @Tags market
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sell request"
// @Success 200 {object} farm.ActionResult
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 404 {object} ErrorResponse "Unknown crop"
// @Failure 409 {object} ErrorResponse "Nothing to sell"
// @Router /market/sell [post]
func (h *FarmHandler) Sell(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpSell, func(ctx context.Context, req SellRequest) (*farm.ActionResult, error) {
		return h.farmSvc.Sell(ctx, farm.SellOrder{Crop: req.Crop, Variant: req.Variant, All: req.All})
	})
}

// HireFarmer handles the hire endpoint
// @Summary Hire a farmer
// @Tags farmers
// @Produce json
// @Success 200 {object} farm.ActionResult
// @Failure 409 {object} ErrorResponse "Not enough money"
// @Router /farmers/hire [post]
func (h *FarmHandler) HireFarmer(w http.ResponseWriter, r *http.Request) {
	respondAction(w, r, OpHireFarmer, h.farmSvc.HireFarmer)
}

// FireFarmer handles the fire endpoint
// @Summary Fire a farmer
// @Description Remaining farmers are renumbered 1..N
// @Tags farmers
// @Accept json
// @Produce json
// @Param request body FarmerRequest true "Farmer"
// @Success 200 {object} farm.ActionResult
// @Failure 404 {object} ErrorResponse "Farmer not found"
// @Router /farmers/fire [post]
func (h *FarmHandler) FireFarmer(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpFireFarmer, func(ctx context.Context, req FarmerRequest) (*farm.ActionResult, error) {
		return h.farmSvc.FireFarmer(ctx, req.FarmerID)
	})
}

// AssignFarmer handles the assign endpoint
// @Summary Assign a farmer to a plot
// @Tags farmers
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Assignment"
// @Success 200 {object} farm.ActionResult
// @Failure 404 {object} ErrorResponse "Farmer not found"
// @Failure 409 {object} ErrorResponse "Plot taken or out of range"
// @Router /farmers/assign [post]
func (h *FarmHandler) AssignFarmer(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpAssignFarmer, func(ctx context.Context, req AssignRequest) (*farm.ActionResult, error) {
		return h.farmSvc.AssignFarmer(ctx, req.FarmerID, *req.Plot)
	})
}

// UnassignFarmer handles the unassign endpoint
// @Summary Take a farmer off their plot
// @Tags farmers
// @Accept json
// @Produce json
// @Param request body FarmerRequest true "Farmer"
// @Success 200 {object} farm.ActionResult
// @Failure 404 {object} ErrorResponse "Farmer not found"
// @Router /farmers/unassign [post]
func (h *FarmHandler) UnassignFarmer(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpUnassignFarmer, func(ctx context.Context, req FarmerRequest) (*farm.ActionResult, error) {
		return h.farmSvc.UnassignFarmer(ctx, req.FarmerID)
	})
}

// SetAutoReplant handles the replant endpoint
// @Summary Set a farmer's auto-replant crop
// @Tags farmers
// @Accept json
// @Produce json
// @Param request body ReplantRequest true "Replant"
// @Success 200 {object} farm.ActionResult
// @Failure 404 {object} ErrorResponse "Farmer or crop not found"
// @Router /farmers/replant [post]
func (h *FarmHandler) SetAutoReplant(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpSetReplant, func(ctx context.Context, req ReplantRequest) (*farm.ActionResult, error) {
		return h.farmSvc.SetAutoReplant(ctx, req.FarmerID, req.Crop)
	})
}

// Rename handles the rename endpoint
// @Summary Rename the farm
// @Tags farm
// @Accept json
// @Produce json
// @Param request body RenameRequest true "New name"
// @Success 200 {object} farm.ActionResult
// @Failure 400 {object} ErrorResponse "Invalid name"
// @Router /farm/rename [post]
func (h *FarmHandler) Rename(w http.ResponseWriter, r *http.Request) {
	handleAction(w, r, OpRename, func(ctx context.Context, req RenameRequest) (*farm.ActionResult, error) {
		return h.farmSvc.Rename(ctx, req.Name)
	})
}

// Reset handles the reset endpoint
// @Summary Reset the farm
// @Description Wipes the farm back to the starter state
// @Tags farm
// @Produce json
// @Success 200 {object} farm.ActionResult
// @Router /farm/reset [post]
func (h *FarmHandler) Reset(w http.ResponseWriter, r *http.Request) {
	respondAction(w, r, OpReset, h.farmSvc.Reset)
}
