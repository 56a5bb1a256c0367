package metrics

import (
	"context"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every farm event
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadMismatch, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.CropPlanted:
		p, err := event.DecodePayload[domain.CropPlantedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsPlanted.WithLabelValues(p.Crop, p.Source).Inc()
		if p.SeedCost > 0 {
			MoneySpent.WithLabelValues(SpendSeed).Add(float64(p.SeedCost))
		}

	case event.CropHarvested:
		p, err := event.DecodePayload[domain.CropHarvestedPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsHarvested.WithLabelValues(p.Crop, string(p.Variant), p.Source).Inc()

	case event.CropSold:
		p, err := event.DecodePayload[domain.CropSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsSold.WithLabelValues(p.Crop).Add(float64(p.Quantity))
		MoneyEarned.Add(float64(p.Payout))

	case event.CropReady:
		p, err := event.DecodePayload[domain.CropReadyPayload](evt.Payload)
		if err != nil {
			return err
		}
		CropsReady.WithLabelValues(p.Crop).Inc()

	case event.PlotPurchased:
		p, err := event.DecodePayload[domain.PlotPurchasedPayload](evt.Payload)
		if err != nil {
			return err
		}
		PlotsPurchased.Inc()
		MoneySpent.WithLabelValues(SpendPlot).Add(float64(p.Cost))

	case event.FarmerHired:
		FarmerChanges.WithLabelValues(string(evt.Type)).Inc()
		MoneySpent.WithLabelValues(SpendFarmer).Add(float64(domain.FarmerCost))

	case event.FarmerFired, event.FarmerAssigned, event.FarmerUpdated:
		FarmerChanges.WithLabelValues(string(evt.Type)).Inc()

	case event.FarmTicked:
		FarmTicks.Inc()

	case event.FarmUpdated:
		v, err := event.DecodePayload[*farm.View](evt.Payload)
		if err != nil {
			return err
		}
		if v != nil {
			FarmMoney.Set(float64(v.Money))
			FarmPlots.Set(float64(len(v.Plots)))
			FarmFarmers.Set(float64(len(v.Farmers)))
		}
	}
	return nil
}
