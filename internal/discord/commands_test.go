package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
)

func actionResult(msg string, money int64) farm.ActionResult {
	return farm.ActionResult{
		Message: msg,
		Farm:    &farm.View{FarmName: "My Farm", Money: money},
	}
}

func TestPlantCommand_ConvertsPlotToZeroBased(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PlantCommand()

	var body map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/plots/plant", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		WriteJSON(w, actionResult("Planted Carrot on plot 3", 95))
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name,
		IntOption("plot", 3),
		StringOption("crop", domain.CropCarrot),
	), ctx.APIClient)

	assert.Equal(t, float64(2), body["plot"])
	assert.Equal(t, domain.CropCarrot, body["crop"])

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Planted")
	assert.Contains(t, embed.Description, "Planted Carrot on plot 3")
	assert.Contains(t, embed.Description, "95")
	assert.Equal(t, FooterTinyFarm, embed.Footer.Text)
}

func TestHarvestCommand_FriendlyError(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := HarvestCommand()

	ctx.Mux.HandleFunc("/api/v1/plots/harvest", func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusConflict, apiNoticeNotReady)
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name, IntOption("plot", 1)), ctx.APIClient)

	assert.Nil(t, ctx.LastEmbed())
	assert.Equal(t, MsgStillGrowing, ctx.LastContent())
}

func TestSellCommand_VariantImpliesAll(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := SellCommand()

	var body map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/market/sell", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		WriteJSON(w, actionResult("Sold 2 Carrot for 30", 130))
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name,
		StringOption("crop", domain.CropCarrot),
		StringOption("variant", string(domain.VariantGold)),
	), ctx.APIClient)

	assert.Equal(t, true, body["all"])
	assert.Equal(t, "gold", body["variant"])
	require.NotNil(t, ctx.LastEmbed())
}

func TestSellCommand_DefaultsToOne(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := SellCommand()

	var body map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/market/sell", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		WriteJSON(w, actionResult("Sold 1 Carrot for 15", 115))
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name, StringOption("crop", domain.CropCarrot)), ctx.APIClient)

	assert.Equal(t, false, body["all"])
	assert.Equal(t, "", body["variant"])
}

func TestAssignCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := AssignCommand()

	var body map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/farmers/assign", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		WriteJSON(w, actionResult("Farmer #1 now works plot 1", 50))
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name,
		IntOption("farmer", 1),
		IntOption("plot", 1),
	), ctx.APIClient)

	assert.Equal(t, float64(1), body["farmer_id"])
	assert.Equal(t, float64(0), body["plot"])
}

func TestReplantCommand_NoCropClears(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := ReplantCommand()

	var body map[string]interface{}
	ctx.Mux.HandleFunc("/api/v1/farmers/replant", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		WriteJSON(w, actionResult("Farmer #2 stopped replanting", 50))
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name, IntOption("farmer", 2)), ctx.APIClient)

	assert.Equal(t, float64(2), body["farmer_id"])
	assert.Equal(t, "", body["crop"])
}

func TestFarmCommand_RendersPlots(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := FarmCommand()

	ctx.Mux.HandleFunc("/api/v1/farm", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		WriteJSON(w, farm.View{
			FarmName: "Sunny Acres",
			Money:    42,
			Plots: []farm.PlotView{
				{Index: 0, Empty: true},
				{Index: 1, Crop: domain.CropCarrot, CropName: "Carrot", GrowthPercent: 50},
				{Index: 2, Crop: domain.CropTurnip, CropName: "Turnip", GrowthPercent: 100, Ready: true},
			},
		})
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Sunny Acres")
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "Plot 1", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[1].Value, "50%")
	assert.Contains(t, embed.Fields[2].Value, "ready")
	assert.Equal(t, "Inventory", embed.Fields[3].Name)
}

func TestFarmCommand_APIDown(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := FarmCommand()

	ctx.Mux.HandleFunc("/api/v1/farm", func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusNotFound, "gone")
	})

	handler(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)
	assert.Equal(t, MsgAPIUnavailable, ctx.LastContent())
}

func TestRegistry_RoutesCommands(t *testing.T) {
	ctx := SetupTestContext(t)
	registry := NewCommandRegistry()

	called := false
	registry.Register(&discordgo.ApplicationCommand{Name: "probe"},
		func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
			called = true
		})

	before := commandCounter.Load()
	registry.Handle(ctx.Session, NewCommandInteraction("probe"), ctx.APIClient)
	assert.True(t, called)
	assert.Equal(t, before+1, commandCounter.Load())

	called = false
	registry.Handle(ctx.Session, NewCommandInteraction("unknown"), ctx.APIClient)
	assert.False(t, called)
}

func TestCommandsEqual(t *testing.T) {
	plant, _ := PlantCommand()
	harvest, _ := HarvestCommand()
	otherPlant, _ := PlantCommand()

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{plant, harvest},
		[]*discordgo.ApplicationCommand{harvest, otherPlant},
	))

	otherPlant.Description = "changed"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{plant},
		[]*discordgo.ApplicationCommand{otherPlant},
	))
	assert.False(t, commandsEqual(nil, []*discordgo.ApplicationCommand{plant}))
}
