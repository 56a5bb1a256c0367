package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/Owennied/HimmyGames/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Farm event types
const (
	CropPlanted    = Type(domain.EventTypeCropPlanted)
	CropHarvested  = Type(domain.EventTypeCropHarvested)
	CropSold       = Type(domain.EventTypeCropSold)
	PlotPurchased  = Type(domain.EventTypePlotPurchased)
	FarmerHired    = Type(domain.EventTypeFarmerHired)
	FarmerFired    = Type(domain.EventTypeFarmerFired)
	FarmerAssigned = Type(domain.EventTypeFarmerAssigned)
	FarmerUpdated  = Type(domain.EventTypeFarmerUpdated)
	FarmRenamed    = Type(domain.EventTypeFarmRenamed)
	FarmReset      = Type(domain.EventTypeFarmReset)
	FarmTicked     = Type(domain.EventTypeFarmTicked)
	FarmUpdated    = Type(domain.EventTypeFarmUpdated)
	CropReady      = Type(domain.EventTypeCropReady)
)

// FarmTypes lists every farm event type, in a stable order
var FarmTypes = []Type{
	CropPlanted, CropHarvested, CropSold, PlotPurchased,
	FarmerHired, FarmerFired, FarmerAssigned, FarmerUpdated,
	FarmRenamed, FarmReset, FarmTicked, FarmUpdated,
	CropReady,
}

// Type-safe event constructors

// NewCropPlantedEvent creates a crop planted event
func NewCropPlantedEvent(p domain.CropPlantedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CropPlanted,
		Payload:  p,
		Metadata: Metadata{MetadataKeySource: p.Source},
	}
}

// NewCropHarvestedEvent creates a crop harvested event
func NewCropHarvestedEvent(p domain.CropHarvestedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CropHarvested,
		Payload:  p,
		Metadata: Metadata{MetadataKeySource: p.Source},
	}
}

// NewCropSoldEvent creates a crop sold event
func NewCropSoldEvent(p domain.CropSoldPayload) Event {
	return Event{Version: EventSchemaVersion, Type: CropSold, Payload: p}
}

// NewPlotPurchasedEvent creates a plot purchased event
func NewPlotPurchasedEvent(p domain.PlotPurchasedPayload) Event {
	return Event{Version: EventSchemaVersion, Type: PlotPurchased, Payload: p}
}

// NewFarmerEvent creates one of the farmer events (hired, fired, assigned, updated)
func NewFarmerEvent(t Type, p domain.FarmerPayload) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: p}
}

// NewFarmRenamedEvent creates a farm renamed event
func NewFarmRenamedEvent(p domain.FarmRenamedPayload) Event {
	return Event{Version: EventSchemaVersion, Type: FarmRenamed, Payload: p}
}

// NewFarmResetEvent creates a farm reset event
func NewFarmResetEvent(timestamp int64) Event {
	return Event{Version: EventSchemaVersion, Type: FarmReset, Payload: domain.FarmResetPayload{Timestamp: timestamp}}
}

// NewFarmTickedEvent creates a farm ticked event
func NewFarmTickedEvent(p domain.FarmTickedPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     FarmTicked,
		Payload:  p,
		Metadata: Metadata{MetadataKeySource: domain.SourceFarmer},
	}
}

// NewFarmUpdatedEvent carries the full rendered farm after a change
func NewFarmUpdatedEvent(view interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: FarmUpdated, Payload: view}
}

// NewCropReadyEvent creates a crop ready event
func NewCropReadyEvent(p domain.CropReadyPayload) Event {
	return Event{Version: EventSchemaVersion, Type: CropReady, Payload: p}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every farm event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range FarmTypes {
		bus.Subscribe(t, handler)
	}
}
