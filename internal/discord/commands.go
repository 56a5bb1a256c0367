package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Owennied/HimmyGames/internal/farm"
)

var errMissingArguments = errors.New(MsgMissingArguments)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(s, i, client)
	case discordgo.InteractionApplicationCommand:
		if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
			RecordCommand() // Track command usage
			h(s, i, client)
		}
	}
}

// RegisterCommands intelligently registers/updates commands with Discord
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	// Get currently registered commands from Discord
	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	// Build desired commands list
	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	// If force update, use bulk overwrite
	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		_, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds)
		if err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	// Check if commands have changed
	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	// Commands have changed - update them
	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	_, err = b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds)
	if err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	// Build map of existing commands by name
	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	// Check each desired command exists and matches
	for _, desired := range desired {
		existing, ok := existingMap[desired.Name]
		if !ok {
			return false
		}
		if !commandEqual(existing, desired) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	// Compare permissions
	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && b.DefaultMemberPermissions != nil {
		if *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
			return false
		}
	}

	// Compare options length
	if len(a.Options) != len(b.Options) {
		return false
	}

	// Compare each option
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	// Compare choices if present
	if len(a.Choices) != len(b.Choices) {
		return false
	}

	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}

	return true
}

// respondError sends a generic error message.
// Use for system-level errors or when detailed error message would confuse users.
//
// Usage:
//
//	respondError(s, i, MsgAPIUnavailable)
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse encapsulates the common logic of:
// 1. Deferring the response (optional)
// 2. Executing an action (API call)
// 3. Handling errors
// 4. Sending a success embed response
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (string, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	msg, err := action()
	if err != nil {
		slog.Error("Action failed", "title", config.Title, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       config.Title,
		Description: msg,
		Color:       config.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterTinyFarm,
		},
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// handleFarmAction runs a farm action and renders its message with the
// resulting balance
func handleFarmAction(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (*farm.ActionResult, error),
	config ResponseConfig,
) {
	handleEmbedResponse(s, i, func() (string, error) {
		res, err := action()
		if err != nil {
			return "", err
		}
		if user := getInteractionUser(i); user != nil {
			slog.Info("Farm action", "title", config.Title, "user", user.Username)
		}
		return formatActionResult(res), nil
	}, config)
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any async operations that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
//
// Usage:
//
//	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
//	    if !deferResponse(s, i) {
//	        return
//	    }
//	    // Perform slow operations...
//	}
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction, keyed by name.
//
// Usage:
//
//	opts := getOptions(i)
//	crop := opts["crop"].StringValue()
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

// plotOption reads a 1-based plot option and returns the 0-based index
func plotOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	opt, ok := opts[name]
	if !ok {
		return 0, false
	}
	return int(opt.IntValue()) - 1, true
}

// respondFriendlyError formats the error message to be more user-friendly before responding.
// Rewrites known API notices into readable messages. Use for API/business logic errors users can understand and act on.
//
// Usage:
//
//	res, err := client.Plant(plot, crop)
//	if err != nil {
//	    slog.Error("Failed to plant", "error", err)
//	    respondFriendlyError(s, i, err.Error())
//	    return
//	}
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	friendlyMsg := formatFriendlyError(message)
	respondError(s, i, friendlyMsg)
}

// formatFriendlyError cleans up API error messages
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, "API error: ")

	switch {
	case strings.Contains(msg, apiNoticeNotEnoughMoney):
		return MsgNotEnoughMoney
	case strings.Contains(msg, apiNoticeNothingToSell):
		return MsgNothingToSell
	case strings.Contains(msg, apiNoticeNotReady):
		return MsgStillGrowing
	case strings.Contains(msg, apiNoticeUnknownCrop):
		if _, suggestion, ok := strings.Cut(msg, apiNoticeDidYouMean); ok {
			return fmt.Sprintf(MsgUnknownCropSuggestFmt, strings.TrimSuffix(suggestion, "?"))
		}
		return MsgUnknownCrop
	case strings.Contains(msg, apiNoticeInvalidPlot):
		return MsgNoSuchPlot
	case strings.Contains(msg, apiNoticeFarmerNotFound):
		return MsgNoSuchFarmer
	case strings.Contains(msg, "max retries exceeded"):
		return MsgAPIUnavailable
	default:
		return "❌ " + msg
	}
}

// sendEmbed sends an embed message with standardized error handling.
// Encapsulates the common pattern of sending InteractionResponseEdit with embeds.
// Logs errors internally - no need for callers to handle send errors.
//
// Usage:
//
//	embed := createEmbed("Title", "Description", ColorFarm, "")
//	sendEmbed(s, i, embed)
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// Footer constants for standardized embed footers.
// Use these instead of magic strings to maintain consistency across all embeds.
// This allows updating footer text globally by changing one constant.
const (
	FooterTinyFarm      = "Tiny Farm"        // Standard footer for command responses
	FooterNotifications = "Tiny Farm Events" // Footer for pushed event notices
)

// createEmbed creates a standard embed with optional footer customization.
// Handles default footer assignment and enforces consistent embed structure.
//
// Parameters:
//
//	title: Embed title (e.g., "🌾 Harvested")
//	description: Main embed content/description
//	color: Hex color code (e.g., 0x2ecc71 for green)
//	footerText: Custom footer text; empty string defaults to FooterTinyFarm
//
// Usage:
//
//	embed := createEmbed("Sold", msg, ColorMarket, "")
//	embed := createEmbed("Crop Ready", msg, ColorHarvest, FooterNotifications)
//	sendEmbed(s, i, embed)
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterTinyFarm
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
