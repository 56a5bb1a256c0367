package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxAutocompleteChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "plant", "replant":
		handleCropAutocomplete(s, i, client, false)
	case "sell":
		handleCropAutocomplete(s, i, client, true)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleCropAutocomplete suggests crops from the catalog. With onlyHeld set
// it lists crops from the inventory with their counts.
func handleCropAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, onlyHeld bool) {
	focusedValue := getFocusedOptionValue(i.ApplicationCommandData().Options)

	var choices []*discordgo.ApplicationCommandOptionChoice
	var err error
	if onlyHeld {
		choices, err = heldCropChoices(client, focusedValue)
	} else {
		choices, err = catalogCropChoices(client, focusedValue)
	}
	if err != nil {
		slog.Error("Failed to load crops for autocomplete", "error", err)
	}

	if len(choices) == 0 {
		choices = []*discordgo.ApplicationCommandOptionChoice{
			{Name: "No matching crops", Value: "none"},
		}
	}

	respondAutocomplete(s, i, choices)
}

func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}

func matches(focusedValue string, candidates ...string) bool {
	if focusedValue == "" {
		return true
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), focusedValue) {
			return true
		}
	}
	return false
}

func catalogCropChoices(client *APIClient, focusedValue string) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	crops, err := client.GetCrops()
	if err != nil {
		return nil, err
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, crop := range crops {
		if !matches(focusedValue, crop.ID, crop.Name) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (seed %d, %ds)", crop.Name, crop.SeedCost, crop.GrowSeconds),
			Value: crop.ID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	return choices, nil
}

func heldCropChoices(client *APIClient, focusedValue string) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	view, err := client.GetFarm()
	if err != nil {
		return nil, err
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, item := range view.Inventory {
		if item.Count == 0 || !matches(focusedValue, item.Crop, item.Name) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (x%d)", item.Name, item.Count),
			Value: item.Crop,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}
	return choices, nil
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
