package farm

import (
	"github.com/Owennied/HimmyGames/internal/domain"
)

// PlotCost returns the price of the next plot for a farm with plotCount plots
func PlotCost(plotCount int) int64 {
	if plotCount == 1 {
		return domain.StarterPlotCost
	}
	return domain.PlotCostStep * int64(plotCount+1)
}

// NextPlotCost returns the price of the next plot
func (e *Engine) NextPlotCost() int64 {
	return PlotCost(len(e.state.Plots))
}

// BuyPlot pays for and appends one empty plot. It returns the price paid.
func (e *Engine) BuyPlot() (int64, error) {
	cost := e.NextPlotCost()
	if e.state.Money < cost {
		return 0, domain.ErrInsufficientFunds
	}

	e.state.Money -= cost
	e.state.Plots = append(e.state.Plots, domain.Plot{})
	return cost, nil
}

// CanAfford reports whether the farm holds at least amount
func (e *Engine) CanAfford(amount int64) bool {
	return e.state.Money >= amount
}
