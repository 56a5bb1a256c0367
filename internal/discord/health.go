package discord

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
	EventsConnected  bool       `json:"events_connected"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

func currentHealth(b *Bot) HealthStatus {
	connected := b.Session != nil && b.Session.DataReady
	apiReachable := b.Client != nil && b.Client.Ping()

	status := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
		EventsConnected:  b.sse != nil && b.sse.IsConnected(),
	}
	if nanos := lastCommandNano.Load(); nanos > 0 {
		t := time.Unix(0, nanos)
		status.LastCommandTime = &t
	}
	if !connected || !apiReachable {
		status.Status = "degraded"
	}
	return status
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := currentHealth(h.bot)

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Warn("Failed to write health response", "error", err)
	}
}
