package sse

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Owennied/HimmyGames/internal/logger"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one open stream
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil receives every type
}

// Wants reports whether the client subscribed to eventType
func (c *Client) Wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans farm events out to connected clients. Events are numbered in
// delivery order and the most recent ones are kept so a reconnecting client
// can resume from its Last-Event-ID.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	history []Event
	seq     uint64
	closed  bool

	incoming chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub. Call Start before broadcasting.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		history:  make([]Event, 0, ReplayBufferSize),
		incoming: make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start runs the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case e := <-h.incoming:
				h.deliver(e)
			case <-h.shutdown:
				return
			}
		}
	}()
}

// Stop ends delivery and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.closed = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
	})
}

// deliver numbers e, records it and hands it to every interested client.
// A client whose buffer is full misses the event.
func (h *Hub) deliver(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	e.ID = strconv.FormatUint(h.seq, 10)

	if len(h.history) == ReplayBufferSize {
		copy(h.history, h.history[1:])
		h.history = h.history[:ReplayBufferSize-1]
	}
	h.history = append(h.history, e)

	for _, c := range h.clients {
		if !c.Wants(e.Type) {
			continue
		}
		select {
		case c.EventChannel <- e:
		default:
			logger.FromContext(context.Background()).Debug(LogMsgClientBehind, "client_id", c.ID, "event_type", e.Type)
		}
	}
}

// Register opens a stream for the given types. Empty means every type.
func (h *Hub) Register(eventTypes []string) *Client {
	c, _ := h.Resume(eventTypes, "")
	return c
}

// Resume opens a stream and returns the retained events after lastEventID
// that the client would have received. An unknown or empty id replays nothing.
func (h *Hub) Resume(eventTypes []string, lastEventID string) (*Client, []Event) {
	c := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			c.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(c.EventChannel)
		return c, nil
	}
	h.clients[c.ID] = c
	return c, h.missedLocked(c, lastEventID)
}

func (h *Hub) missedLocked(c *Client, lastEventID string) []Event {
	last, err := strconv.ParseUint(lastEventID, 10, 64)
	if err != nil || last >= h.seq {
		return nil
	}

	var missed []Event
	for _, e := range h.history {
		n, _ := strconv.ParseUint(e.ID, 10, 64)
		if n > last && c.Wants(e.Type) {
			missed = append(missed, e)
		}
	}
	return missed
}

// Unregister closes a client's stream
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for delivery. It never blocks; a full queue
// drops the event.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	e := Event{
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}

	select {
	case h.incoming <- e:
	default:
		logger.FromContext(context.Background()).Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event as an id/event/data frame
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(data)+len(event.ID)+len(event.Type)+24)
	if event.ID != "" {
		buf = append(buf, "id: "+event.ID+"\n"...)
	}
	buf = append(buf, "event: "+event.Type+"\n"...)
	buf = append(buf, "data: "...)
	buf = append(buf, data...)
	buf = append(buf, "\n\n"...)
	return buf, nil
}
