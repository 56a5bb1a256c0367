package discord

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/domain"
)

type recordingNotifier struct {
	embeds []*discordgo.MessageEmbed
	err    error
}

func (r *recordingNotifier) SendNotification(embed *discordgo.MessageEmbed) error {
	if r.err != nil {
		return r.err
	}
	r.embeds = append(r.embeds, embed)
	return nil
}

func sseFrame(t *testing.T, id, eventType string, payload interface{}) string {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	data, err := json.Marshal(SSEEvent{ID: id, Type: eventType, Payload: raw})
	require.NoError(t, err)
	return "id: " + id + "\nevent: " + eventType + "\ndata: " + string(data) + "\n\n"
}

func TestSSEClient_DispatchesFrames(t *testing.T) {
	client := NewSSEClient("http://unused", "", NotifiedEventTypes)
	out := &recordingNotifier{}
	NewSSENotifier(out).RegisterHandlers(client)

	stream := ": comment\n" +
		"event: connected\ndata: {}\n\n" +
		sseFrame(t, "1", domain.EventTypeCropReady, domain.CropReadyPayload{Plot: 2, Crop: domain.CropCarrot, Timestamp: 1000}) +
		"event: keepalive\ndata: {}\n\n" +
		sseFrame(t, "2", domain.EventTypeCropHarvested, domain.CropHarvestedPayload{Plot: 0, Crop: domain.CropCarrot, Variant: domain.VariantNormal}) +
		sseFrame(t, "3", domain.EventTypeCropHarvested, domain.CropHarvestedPayload{
			Plot: 0, Crop: domain.CropTurnip, Variant: domain.VariantDiamond, Source: domain.SourceFarmer, FarmerID: 4,
		})

	err := client.readEvents(context.Background(), strings.NewReader(stream))
	assert.ErrorIs(t, err, errStreamClosed)

	require.Len(t, out.embeds, 2, "normal harvests are not announced")
	assert.Contains(t, out.embeds[0].Description, "**Carrot** on plot 3")
	assert.Equal(t, "1970-01-01T00:00:01Z", out.embeds[0].Timestamp)
	assert.Equal(t, FooterNotifications, out.embeds[0].Footer.Text)
	assert.Contains(t, out.embeds[1].Description, "Farmer #4 harvested a **Diamond Turnip**")
}

func TestSSEClient_BadPayloadIsSkipped(t *testing.T) {
	client := NewSSEClient("http://unused", "", nil)
	out := &recordingNotifier{}
	NewSSENotifier(out).RegisterHandlers(client)

	stream := "event: crop.ready\ndata: not json\n\n"
	_ = client.readEvents(context.Background(), strings.NewReader(stream))
	assert.Empty(t, out.embeds)
}

func TestSSEClient_MultiLineData(t *testing.T) {
	client := NewSSEClient("http://unused", "", nil)
	var got []SSEEvent
	client.OnEvent(domain.EventTypeFarmReset, func(e SSEEvent) error {
		got = append(got, e)
		return nil
	})

	stream := "id:7\nevent:farm.reset\ndata: {\"timestamp\": 5,\ndata: \"payload\": {}}\n\n"
	_ = client.readEvents(context.Background(), strings.NewReader(stream))

	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "7", client.lastID, "resume point follows the stream")
	assert.Equal(t, int64(5), got[0].Timestamp)
}

func TestNewSSEClient_StreamURL(t *testing.T) {
	client := NewSSEClient("http://api:8080", "", []string{domain.EventTypeCropReady, domain.EventTypeFarmReset})
	assert.Equal(t, "http://api:8080/api/v1/events?types=crop.ready%2Cfarm.reset", client.streamURL)

	client = NewSSEClient("http://api:8080", "", nil)
	assert.Equal(t, "http://api:8080/api/v1/events", client.streamURL)
}

func TestReconnectBackoff(t *testing.T) {
	var b reconnectBackoff
	assert.Equal(t, sseInitialBackoff, b.next())
	assert.Equal(t, 2*sseInitialBackoff, b.next())
	for i := 0; i < 10; i++ {
		b.next()
	}
	assert.Equal(t, sseMaxBackoff, b.next())
	assert.Equal(t, 13, b.failures)
}

func TestSSENotifier_SendFailure(t *testing.T) {
	out := &recordingNotifier{err: errors.New("discord down")}
	n := NewSSENotifier(out)

	raw, _ := json.Marshal(domain.PlotPurchasedPayload{PlotCount: 4})
	err := n.handlePlotPurchased(SSEEvent{Type: domain.EventTypePlotPurchased, Payload: raw})
	assert.Error(t, err)
}

func TestSSEClient_StopIsIdempotent(t *testing.T) {
	client := NewSSEClient("http://127.0.0.1:1", "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.Start(ctx)
	client.Stop()
	client.Stop()
	assert.False(t, client.IsConnected())
}

func TestBot_SendNotificationNeedsChannel(t *testing.T) {
	bot, err := New(Config{Token: "t", AppID: "a", APIURL: "http://localhost"})
	require.NoError(t, err)
	assert.ErrorIs(t, bot.SendNotification(createEmbed("x", "y", ColorNotice, "")), ErrNoNotificationChannel)
}

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()
	RecordCommand()
	RecordCommand()
	assert.Equal(t, before+2, commandCounter.Load())
	assert.NotZero(t, lastCommandNano.Load())
}
