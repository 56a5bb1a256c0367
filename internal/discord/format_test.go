package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
)

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Carrot", titleCase("carrot"))
	assert.Equal(t, "Golden Wheat", titleCase("golden_wheat"))
	assert.Equal(t, "Diamond", titleCase(string(domain.VariantDiamond)))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "▱▱▱▱▱▱▱▱▱▱", progressBar(0))
	assert.Equal(t, "▰▰▰▰▰▱▱▱▱▱", progressBar(50))
	assert.Equal(t, "▰▰▰▰▰▰▰▰▰▰", progressBar(100))
	assert.Equal(t, progressBar(100), progressBar(250))
	assert.Equal(t, progressBar(0), progressBar(-5))
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Normal", variantLabel(domain.VariantNormal))
	assert.Equal(t, "Normal", variantLabel(""))
	assert.Equal(t, "💎 Diamond", variantLabel(domain.VariantDiamond))
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"not enough money", "API error: " + apiNoticeNotEnoughMoney, MsgNotEnoughMoney},
		{"nothing to sell", "API error: " + apiNoticeNothingToSell, MsgNothingToSell},
		{"still growing", "API error: " + apiNoticeNotReady, MsgStillGrowing},
		{"unknown crop", "API error: " + apiNoticeUnknownCrop, MsgUnknownCrop},
		{"unknown crop with suggestion", "API error: Unknown crop. Did you mean Turnip?", "❓ **Unknown Crop**\nDid you mean **Turnip**?"},
		{"bad plot", "API error: " + apiNoticeInvalidPlot, MsgNoSuchPlot},
		{"bad farmer", "API error: " + apiNoticeFarmerNotFound, MsgNoSuchFarmer},
		{"api down", "max retries exceeded: server error: 503", MsgAPIUnavailable},
		{"anything else", "API error: That plot is already planted", "❌ That plot is already planted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}

func TestFormatActionResult(t *testing.T) {
	res := &farm.ActionResult{
		Message: "Harvested Carrot",
		Variant: domain.VariantGold,
		Farm:    &farm.View{Money: 7},
	}
	out := formatActionResult(res)
	assert.Contains(t, out, "Harvested Carrot 🥇")
	assert.Contains(t, out, "💰 7")

	plain := formatActionResult(&farm.ActionResult{Message: "Hired farmer #1", Variant: domain.VariantNormal})
	assert.Equal(t, "Hired farmer #1", plain)
}

func TestFormatFarmers(t *testing.T) {
	plot := 2
	out := formatFarmers([]farm.FarmerView{
		{ID: 1, AssignedPlot: &plot, AutoReplant: domain.CropCarrot},
		{ID: 2},
	})
	assert.Contains(t, out, "#1 · plot 3 · replant: Carrot")
	assert.Contains(t, out, "#2 · idle · replant: off")
	assert.Equal(t, "No farmers hired", formatFarmers(nil))
}

func TestFormatInventory(t *testing.T) {
	out := formatInventory([]farm.InventoryView{{
		Crop:   domain.CropCarrot,
		Name:   "Carrot",
		Count:  3,
		ByTier: map[domain.Variant]int{domain.VariantNormal: 2, domain.VariantDiamond: 1},
	}})
	assert.Equal(t, "**Carrot** x3 (💎×1)", out)
	assert.Equal(t, "Nothing harvested yet", formatInventory(nil))
}

func TestFarmEmbed_CapsFields(t *testing.T) {
	view := &farm.View{FarmName: "Big"}
	for i := 0; i < 40; i++ {
		view.Plots = append(view.Plots, farm.PlotView{Index: i, Empty: true})
	}
	embed := farmEmbed(view)
	assert.Len(t, embed.Fields, maxEmbedFields)
	assert.Equal(t, "Farmers", embed.Fields[len(embed.Fields)-1].Name)
}

func TestMarketEmbed(t *testing.T) {
	embed := marketEmbed([]farm.MarketEntry{{
		Crop:       domain.CropCarrot,
		Name:       "Carrot",
		SeedCost:   5,
		Held:       2,
		SellAll:    30,
		UnitPrices: map[domain.Variant]int64{domain.VariantNormal: 15, domain.VariantDiamond: 150},
	}})
	assert.Len(t, embed.Fields, 1)
	assert.Equal(t, "Carrot", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "Sell all 30")
	assert.Contains(t, embed.Fields[0].Value, "💎 Diamond 150")
}
