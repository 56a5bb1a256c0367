package farm

import (
	"github.com/Owennied/HimmyGames/internal/domain"
)

// HireFarmer pays the farmer cost and adds an unassigned farmer with the next id
func (e *Engine) HireFarmer() (domain.Farmer, error) {
	if e.state.Money < domain.FarmerCost {
		return domain.Farmer{}, domain.ErrInsufficientFunds
	}

	e.state.Money -= domain.FarmerCost
	e.state.FarmerCounter++
	f := domain.Farmer{ID: e.state.FarmerCounter}
	e.state.Farmers = append(e.state.Farmers, f)
	return f, nil
}

// FireFarmer removes a farmer and its assignment. Remaining farmers are
// renumbered 1..N in order and the counter follows, so ids stay dense.
func (e *Engine) FireFarmer(id int) error {
	idx := -1
	for i, f := range e.state.Farmers {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrFarmerNotFound
	}

	remaining := make([]domain.Farmer, 0, len(e.state.Farmers)-1)
	remaining = append(remaining, e.state.Farmers[:idx]...)
	remaining = append(remaining, e.state.Farmers[idx+1:]...)
	for i := range remaining {
		remaining[i].ID = i + 1
	}

	e.state.Farmers = remaining
	e.state.FarmerCounter = len(remaining)
	return nil
}

// AssignFarmer moves a farmer onto plot, replacing its previous assignment.
// A plot holds at most one farmer.
func (e *Engine) AssignFarmer(id, plot int) error {
	f, ok := e.state.FindFarmer(id)
	if !ok {
		return domain.ErrFarmerNotFound
	}
	if !e.state.ValidPlot(plot) {
		return domain.ErrInvalidPlot
	}
	if holder, taken := e.state.FarmerOnPlot(plot); taken && holder.ID != id {
		return domain.ErrPlotTaken
	}

	idx := plot
	f.AssignedPlot = &idx
	return nil
}

// UnassignFarmer takes a farmer off its plot. Unassigned farmers are left as is.
func (e *Engine) UnassignFarmer(id int) error {
	f, ok := e.state.FindFarmer(id)
	if !ok {
		return domain.ErrFarmerNotFound
	}
	f.AssignedPlot = nil
	return nil
}

// SetAutoReplant sets the crop a farmer replants after harvesting.
// An empty crop turns replanting off.
func (e *Engine) SetAutoReplant(id int, cropID string) error {
	f, ok := e.state.FindFarmer(id)
	if !ok {
		return domain.ErrFarmerNotFound
	}
	if cropID != "" && !e.catalog.Has(cropID) {
		return domain.ErrUnknownCrop
	}
	f.AutoReplant = cropID
	return nil
}
