package discord

import (
	"time"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// SSE client configuration
const (
	// sseInitialBackoff is the initial backoff duration for reconnection
	sseInitialBackoff = 1 * time.Second

	// sseMaxBackoff is the maximum backoff duration for reconnection
	sseMaxBackoff = 30 * time.Second

	// sseBackoffMultiplier is the multiplier for exponential backoff
	sseBackoffMultiplier = 2.0

	// sseBufferSize is the buffer size for reading SSE events
	sseBufferSize = 256 * 1024 // farm.updated carries the whole view
)

// NotifiedEventTypes are the farm events the bot subscribes to
var NotifiedEventTypes = []string{
	domain.EventTypeCropReady,
	domain.EventTypeCropHarvested,
	domain.EventTypePlotPurchased,
	domain.EventTypeFarmerHired,
	domain.EventTypeFarmReset,
}

// SSE log messages
const (
	sseLogMsgClientConnected   = "SSE client connected"
	sseLogMsgClientStopped     = "SSE client stopped"
	sseLogMsgConnectionFailed  = "SSE connection failed"
	sseLogMsgParseError        = "Failed to parse SSE event"
	sseLogMsgHandlerError      = "SSE event handler error"
	sseLogMsgNotificationSent  = "Discord notification sent"
	sseLogMsgNotificationError = "Failed to send Discord notification"
)
