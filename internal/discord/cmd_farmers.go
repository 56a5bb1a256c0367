package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Owennied/HimmyGames/internal/farm"
)

func farmerArg() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "farmer",
		Description: "Farmer number",
		Required:    true,
		MinValue:    &minOne,
	}
}

func farmerOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (int, bool) {
	opt, ok := opts["farmer"]
	if !ok {
		return 0, false
	}
	return int(opt.IntValue()), true
}

// HireCommand returns the hire command definition and handler
func HireCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "hire",
		Description: "Hire a farmer",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, client.HireFarmer, ResponseConfig{Title: "👩‍🌾 Hired", Color: ColorFarmer})
	}

	return cmd, handler
}

// FireCommand returns the fire command definition and handler
func FireCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "fire",
		Description: "Fire a farmer",
		Options:     []*discordgo.ApplicationCommandOption{farmerArg()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			id, ok := farmerOption(getOptions(i))
			if !ok {
				return nil, errMissingArguments
			}
			return client.FireFarmer(id)
		}, ResponseConfig{Title: "👋 Fired", Color: ColorFarmer})
	}

	return cmd, handler
}

// AssignCommand returns the assign command definition and handler
func AssignCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "assign",
		Description: "Put a farmer to work on a plot",
		Options: []*discordgo.ApplicationCommandOption{
			farmerArg(),
			plotArg("Plot number"),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			opts := getOptions(i)
			id, hasFarmer := farmerOption(opts)
			plot, hasPlot := plotOption(opts, "plot")
			if !hasFarmer || !hasPlot {
				return nil, errMissingArguments
			}
			return client.AssignFarmer(id, plot)
		}, ResponseConfig{Title: "📍 Assigned", Color: ColorFarmer})
	}

	return cmd, handler
}

// UnassignCommand returns the unassign command definition and handler
func UnassignCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "unassign",
		Description: "Take a farmer off its plot",
		Options:     []*discordgo.ApplicationCommandOption{farmerArg()},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			id, ok := farmerOption(getOptions(i))
			if !ok {
				return nil, errMissingArguments
			}
			return client.UnassignFarmer(id)
		}, ResponseConfig{Title: "💤 Unassigned", Color: ColorFarmer})
	}

	return cmd, handler
}

// ReplantCommand returns the auto-replant command definition and handler.
// Leaving out the crop turns auto-replant off.
func ReplantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "replant",
		Description: "Choose what a farmer replants",
		Options: []*discordgo.ApplicationCommandOption{
			farmerArg(),
			cropArg("Crop to replant (leave empty to turn off)", false),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleFarmAction(s, i, func() (*farm.ActionResult, error) {
			opts := getOptions(i)
			id, ok := farmerOption(opts)
			if !ok {
				return nil, errMissingArguments
			}
			var crop string
			if opt, ok := opts["crop"]; ok {
				crop = opt.StringValue()
			}
			return client.SetAutoReplant(id, crop)
		}, ResponseConfig{Title: "🔁 Auto-replant", Color: ColorFarmer})
	}

	return cmd, handler
}
