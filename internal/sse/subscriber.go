package sse

import (
	"context"

	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every farm event to SSE clients under its bus type name
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleEvent)

	types := make([]string, 0, len(event.FarmTypes))
	for _, t := range event.FarmTypes {
		types = append(types, string(t))
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handleEvent(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
