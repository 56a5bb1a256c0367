package event

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Owennied/HimmyGames/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), Event{Type: CropSold}); err != nil {
		t.Errorf("Expected nil error without subscribers, got %v", err)
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := make(map[Type]int)

	SubscribeAll(bus, func(ctx context.Context, event Event) error {
		seen[event.Type]++
		return nil
	})

	for _, typ := range FarmTypes {
		if err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: typ}); err != nil {
			t.Fatalf("Publish returned error: %v", err)
		}
	}

	for _, typ := range FarmTypes {
		if seen[typ] != 1 {
			t.Errorf("Expected %s to be handled once, got %d", typ, seen[typ])
		}
	}
}

func TestNewCropHarvestedEvent(t *testing.T) {
	evt := NewCropHarvestedEvent(domain.CropHarvestedPayload{
		Plot:     2,
		Crop:     domain.CropCarrot,
		Variant:  domain.VariantGold,
		Source:   domain.SourceFarmer,
		FarmerID: 1,
	})

	if evt.Type != CropHarvested {
		t.Errorf("Expected type %s, got %s", CropHarvested, evt.Type)
	}
	if evt.Version != EventSchemaVersion {
		t.Errorf("Expected version %s, got %s", EventSchemaVersion, evt.Version)
	}
	if evt.GetMetadataValue(MetadataKeySource) != domain.SourceFarmer {
		t.Errorf("Expected farmer source metadata, got %v", evt.GetMetadataValue(MetadataKeySource))
	}
}

func TestDecodePayload(t *testing.T) {
	sold := domain.CropSoldPayload{Crop: "turnip", Quantity: 2, Payout: 10}

	tests := []struct {
		name    string
		input   interface{}
		want    domain.CropSoldPayload
		wantErr error
	}{
		{"value", sold, sold, nil},
		{"pointer", &sold, sold, nil},
		{"generic map", map[string]interface{}{"crop": "carrot", "quantity": 3, "payout": 6},
			domain.CropSoldPayload{Crop: "carrot", Quantity: 3, Payout: 6}, nil},
		{"raw JSON", json.RawMessage(`{"crop":"carrot","quantity":1,"payout":2}`),
			domain.CropSoldPayload{Crop: "carrot", Quantity: 1, Payout: 2}, nil},
		{"nil", nil, domain.CropSoldPayload{}, ErrNilPayload},
		{"nil pointer", (*domain.CropSoldPayload)(nil), domain.CropSoldPayload{}, ErrNilPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[domain.CropSoldPayload](tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodePayload returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodePayload_BadJSON(t *testing.T) {
	_, err := DecodePayload[domain.CropSoldPayload](json.RawMessage(`{"payout":"lots"}`))
	if err == nil || !strings.Contains(err.Error(), ErrMsgDecodePayload) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
