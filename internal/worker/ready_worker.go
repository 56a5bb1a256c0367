package worker

import (
	"context"
	"time"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// ReadyWorker publishes a crop.ready event when a planted crop finishes
// growing. It keeps one timer per plot.
type ReadyWorker struct {
	BaseWorker
	bus     event.Bus
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewReadyWorker creates a worker that reads grow times from cat
func NewReadyWorker(bus event.Bus, cat *catalog.Catalog) *ReadyWorker {
	w := &ReadyWorker{bus: bus, catalog: cat, now: time.Now}
	w.init()
	return w
}

// Subscribe registers the worker's handlers on bus
func (w *ReadyWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.CropPlanted, w.handlePlanted)
	bus.Subscribe(event.CropHarvested, w.handleHarvested)
	bus.Subscribe(event.FarmReset, w.handleReset)
}

// Start arms a timer for every plot still growing in view, so crops loaded
// from a save report ready like freshly planted ones. Plots that were
// already ready at load are not announced again.
func (w *ReadyWorker) Start(ctx context.Context, view *farm.View) {
	armed := 0
	for _, p := range view.Plots {
		if p.Empty || p.Ready {
			continue
		}
		if w.arm(ctx, p.Index, p.Crop, p.PlantedAt) {
			armed++
		}
	}
	logger.FromContext(ctx).Info(LogMsgReadyRestored, "armed", armed)
}

func (w *ReadyWorker) handlePlanted(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.CropPlantedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgReadyBadPayload, "type", e.Type, "error", err)
		return nil
	}
	w.arm(ctx, p.Plot, p.Crop, p.Timestamp)
	return nil
}

// arm schedules the crop.ready event for a crop planted at plantedAt (unix ms)
func (w *ReadyWorker) arm(ctx context.Context, plot int, cropID string, plantedAt int64) bool {
	crop, ok := w.catalog.Lookup(cropID)
	if !ok {
		return false
	}

	readyAt := time.UnixMilli(plantedAt).Add(time.Duration(crop.GrowSeconds) * time.Second)
	delay := readyAt.Sub(w.now())
	if delay < 0 {
		delay = 0
	}

	logger.FromContext(ctx).Debug(LogMsgReadyScheduled, "plot", plot, "crop", cropID, "delay", delay)
	w.schedule(plot, delay, func() {
		w.publishReady(plot, cropID)
	})
	return true
}

func (w *ReadyWorker) handleHarvested(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.CropHarvestedPayload](e.Payload)
	if err != nil {
		return nil
	}
	w.stopTimer(p.Plot)
	return nil
}

func (w *ReadyWorker) handleReset(_ context.Context, _ event.Event) error {
	w.stopAll()
	return nil
}

func (w *ReadyWorker) publishReady(plot int, cropID string) {
	ctx := context.Background()
	evt := event.NewCropReadyEvent(domain.CropReadyPayload{
		Plot:      plot,
		Crop:      cropID,
		Timestamp: w.now().UnixMilli(),
	})
	if err := w.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgReadyPublishFail, "plot", plot, "error", err)
	}
}

// Pending returns the number of scheduled notifications
func (w *ReadyWorker) Pending() int {
	return w.pending()
}

// Shutdown cancels pending notifications and waits for in-flight publishes
func (w *ReadyWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, ReadyWorkerName)
}
