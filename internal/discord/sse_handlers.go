package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Notifier posts embeds somewhere visible
type Notifier interface {
	SendNotification(embed *discordgo.MessageEmbed) error
}

// SSENotifier turns farm events into Discord notices
type SSENotifier struct {
	out Notifier
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(out Notifier) *SSENotifier {
	return &SSENotifier{out: out}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(domain.EventTypeCropReady, n.handleCropReady)
	client.OnEvent(domain.EventTypeCropHarvested, n.handleCropHarvested)
	client.OnEvent(domain.EventTypePlotPurchased, n.handlePlotPurchased)
	client.OnEvent(domain.EventTypeFarmerHired, n.handleFarmerHired)
	client.OnEvent(domain.EventTypeFarmReset, n.handleFarmReset)
}

func decodePayload[T any](event SSEEvent) (T, bool) {
	var payload T
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return payload, false
	}
	return payload, true
}

func (n *SSENotifier) handleCropReady(event SSEEvent) error {
	payload, ok := decodePayload[domain.CropReadyPayload](event)
	if !ok {
		return nil
	}

	return n.send(event, notificationEmbed(
		"🌾 Crop Ready",
		fmt.Sprintf("**%s** on plot %d is ready to /harvest", titleCase(payload.Crop), payload.Plot+1),
		ColorHarvest,
		payload.Timestamp,
	))
}

// handleCropHarvested only announces the rare tiers
func (n *SSENotifier) handleCropHarvested(event SSEEvent) error {
	payload, ok := decodePayload[domain.CropHarvestedPayload](event)
	if !ok {
		return nil
	}
	if payload.Variant != domain.VariantGold && payload.Variant != domain.VariantDiamond {
		return nil
	}

	who := "You"
	if payload.Source == domain.SourceFarmer {
		who = fmt.Sprintf("Farmer #%d", payload.FarmerID)
	}
	return n.send(event, notificationEmbed(
		fmt.Sprintf("%s Rare Harvest!", variantEmoji(payload.Variant)),
		fmt.Sprintf("%s harvested a **%s %s** from plot %d",
			who, titleCase(string(payload.Variant)), titleCase(payload.Crop), payload.Plot+1),
		ColorHarvest,
		payload.Timestamp,
	))
}

func (n *SSENotifier) handlePlotPurchased(event SSEEvent) error {
	payload, ok := decodePayload[domain.PlotPurchasedPayload](event)
	if !ok {
		return nil
	}

	return n.send(event, notificationEmbed(
		"🟫 Farm Expanded",
		fmt.Sprintf("The farm now has **%d** plots", payload.PlotCount),
		ColorFarm,
		payload.Timestamp,
	))
}

func (n *SSENotifier) handleFarmerHired(event SSEEvent) error {
	payload, ok := decodePayload[domain.FarmerPayload](event)
	if !ok {
		return nil
	}

	return n.send(event, notificationEmbed(
		"👩‍🌾 New Farmer",
		fmt.Sprintf("Farmer #%d joined. Put them to work with /assign", payload.FarmerID),
		ColorFarmer,
		payload.Timestamp,
	))
}

func (n *SSENotifier) handleFarmReset(event SSEEvent) error {
	payload, ok := decodePayload[domain.FarmResetPayload](event)
	if !ok {
		return nil
	}

	return n.send(event, notificationEmbed(
		"🔄 Farm Reset",
		"The farm was wiped back to its starting state",
		ColorNotice,
		payload.Timestamp,
	))
}

func (n *SSENotifier) send(event SSEEvent, embed *discordgo.MessageEmbed) error {
	if err := n.out.SendNotification(embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", event.Type, "error", err)
		return err
	}
	slog.Debug(sseLogMsgNotificationSent, "event_type", event.Type)
	return nil
}

func notificationEmbed(title, description string, color int, timestampMillis int64) *discordgo.MessageEmbed {
	embed := createEmbed(title, description, color, FooterNotifications)
	if timestampMillis > 0 {
		embed.Timestamp = time.UnixMilli(timestampMillis).UTC().Format(time.RFC3339)
	}
	return embed
}
