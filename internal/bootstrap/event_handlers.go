package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/metrics"
	"github.com/Owennied/HimmyGames/internal/sse"
	"github.com/Owennied/HimmyGames/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
	Catalog  *catalog.Catalog
}

// RegisterEventHandlers sets up every bus subscriber:
// the metrics collector, the SSE bridge and the crop ready worker.
// It returns the ready worker so it can be shut down with the app.
func RegisterEventHandlers(deps EventHandlerDependencies) (*worker.ReadyWorker, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	readyWorker := worker.NewReadyWorker(deps.EventBus, deps.Catalog)
	readyWorker.Subscribe(deps.EventBus)
	slog.Info(LogMsgReadyWorkerRegistered)

	return readyWorker, nil
}
