package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
)

var minOne = 1.0

func plotArg(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "plot",
		Description: description,
		Required:    true,
		MinValue:    &minOne,
	}
}

func cropArg(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "crop",
		Description:  description,
		Required:     required,
		Autocomplete: true,
	}
}

// FarmCommand returns the farm view command definition and handler
func FarmCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "farm",
		Description: "Show your plots, inventory and farmers",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		view, err := client.GetFarm()
		if err != nil {
			slog.Error("Failed to get farm", "error", err)
			respondError(s, i, MsgAPIUnavailable)
			return
		}

		sendEmbed(s, i, farmEmbed(view))
	}

	return cmd, handler
}

// MarketCommand returns the market listing command definition and handler
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Show crop prices and what you hold",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		entries, err := client.GetMarket()
		if err != nil {
			slog.Error("Failed to get market", "error", err)
			respondError(s, i, MsgAPIUnavailable)
			return
		}

		sendEmbed(s, i, marketEmbed(entries))
	}

	return cmd, handler
}

// PlantCommand returns the plant command definition and handler
func PlantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plant",
		Description: "Plant a crop on an empty plot",
		Options: []*discordgo.ApplicationCommandOption{
			plotArg("Plot number"),
			cropArg("Crop to plant", true),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			opts := getOptions(i)
			plot, ok := plotOption(opts, "plot")
			crop, hasCrop := opts["crop"]
			if !ok || !hasCrop {
				return nil, errMissingArguments
			}
			return client.Plant(plot, crop.StringValue())
		}, ResponseConfig{Title: "🌱 Planted", Color: ColorPlant})
	}

	return cmd, handler
}

// HarvestCommand returns the harvest command definition and handler
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "harvest",
		Description: "Harvest a ready crop",
		Options: []*discordgo.ApplicationCommandOption{
			plotArg("Plot number"),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			plot, ok := plotOption(getOptions(i), "plot")
			if !ok {
				return nil, errMissingArguments
			}
			return client.Harvest(plot)
		}, ResponseConfig{Title: "🌾 Harvested", Color: ColorHarvest})
	}

	return cmd, handler
}

// SellCommand returns the sell command definition and handler
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	variantChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Variants))
	for _, v := range domain.Variants {
		variantChoices = append(variantChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  titleCase(string(v)),
			Value: string(v),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell harvested crops",
		Options: []*discordgo.ApplicationCommandOption{
			cropArg("Crop to sell", true),
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "all",
				Description: "Sell every unit instead of the best one",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "variant",
				Description: "Only sell this tier (implies all)",
				Required:    false,
				Choices:     variantChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			opts := getOptions(i)
			crop, ok := opts["crop"]
			if !ok {
				return nil, errMissingArguments
			}
			var all bool
			if opt, ok := opts["all"]; ok {
				all = opt.BoolValue()
			}
			var variant string
			if opt, ok := opts["variant"]; ok {
				variant = opt.StringValue()
				all = true
			}
			return client.Sell(crop.StringValue(), variant, all)
		}, ResponseConfig{Title: "💰 Sold", Color: ColorMarket})
	}

	return cmd, handler
}

// BuyPlotCommand returns the buy plot command definition and handler
func BuyPlotCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buyplot",
		Description: "Buy another plot",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, client.BuyPlot, ResponseConfig{Title: "🟫 New Plot", Color: ColorFarm})
	}

	return cmd, handler
}

// RenameCommand returns the rename command definition and handler
func RenameCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rename",
		Description: "Rename your farm",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "New farm name",
				Required:    true,
				MaxLength:   domain.MaxFarmNameLength,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			name, ok := getOptions(i)["name"]
			if !ok {
				return nil, errMissingArguments
			}
			return client.Rename(name.StringValue())
		}, ResponseConfig{Title: "🪧 Renamed", Color: ColorFarm})
	}

	return cmd, handler
}
