package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
)

func newTestReadyWorker(t *testing.T, now time.Time) (*ReadyWorker, *event.MemoryBus, chan domain.CropReadyPayload) {
	t.Helper()
	bus := event.NewMemoryBus()
	w := NewReadyWorker(bus, catalog.MustDefault())
	w.now = func() time.Time { return now }
	w.Subscribe(bus)

	ready := make(chan domain.CropReadyPayload, 4)
	bus.Subscribe(event.CropReady, func(_ context.Context, e event.Event) error {
		p, err := event.DecodePayload[domain.CropReadyPayload](e.Payload)
		if err != nil {
			return err
		}
		ready <- p
		return nil
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = w.Shutdown(ctx)
	})
	return w, bus, ready
}

func TestReadyWorker_PublishesWhenGrown(t *testing.T) {
	now := time.Now()
	_, bus, ready := newTestReadyWorker(t, now)

	// Planted long enough ago that the carrot is already grown
	planted := now.Add(-time.Minute).UnixMilli()
	require.NoError(t, bus.Publish(context.Background(), event.NewCropPlantedEvent(domain.CropPlantedPayload{
		Plot: 2, Crop: domain.CropCarrot, Source: domain.SourcePlayer, Timestamp: planted,
	})))

	select {
	case p := <-ready:
		assert.Equal(t, 2, p.Plot)
		assert.Equal(t, domain.CropCarrot, p.Crop)
	case <-time.After(time.Second):
		t.Fatal("expected crop ready event")
	}
}

func TestReadyWorker_HarvestCancelsTimer(t *testing.T) {
	now := time.Now()
	w, bus, ready := newTestReadyWorker(t, now)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent(domain.CropPlantedPayload{
		Plot: 0, Crop: domain.CropCarrot, Timestamp: now.UnixMilli(),
	})))
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, bus.Publish(ctx, event.NewCropHarvestedEvent(domain.CropHarvestedPayload{
		Plot: 0, Crop: domain.CropCarrot, Variant: domain.VariantNormal,
	})))
	assert.Equal(t, 0, w.Pending())

	select {
	case <-ready:
		t.Fatal("harvested plot should not report ready")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestReadyWorker_ReplantReplacesTimer(t *testing.T) {
	now := time.Now()
	w, bus, _ := newTestReadyWorker(t, now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent(domain.CropPlantedPayload{
			Plot: 1, Crop: domain.CropTurnip, Timestamp: now.UnixMilli(),
		})))
	}
	assert.Equal(t, 1, w.Pending())
}

func TestReadyWorker_ResetClearsTimers(t *testing.T) {
	now := time.Now()
	w, bus, _ := newTestReadyWorker(t, now)
	ctx := context.Background()

	for plot := 0; plot < 3; plot++ {
		require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent(domain.CropPlantedPayload{
			Plot: plot, Crop: domain.CropCarrot, Timestamp: now.UnixMilli(),
		})))
	}
	assert.Equal(t, 3, w.Pending())

	require.NoError(t, bus.Publish(ctx, event.NewFarmResetEvent(now.UnixMilli())))
	assert.Equal(t, 0, w.Pending())
}

func TestReadyWorker_UnknownCropIgnored(t *testing.T) {
	now := time.Now()
	w, bus, _ := newTestReadyWorker(t, now)

	require.NoError(t, bus.Publish(context.Background(), event.NewCropPlantedEvent(domain.CropPlantedPayload{
		Plot: 0, Crop: "potato", Timestamp: now.UnixMilli(),
	})))
	assert.Equal(t, 0, w.Pending())
}

func TestReadyWorker_StartArmsGrowingPlots(t *testing.T) {
	now := time.Now()
	w, _, ready := newTestReadyWorker(t, now)

	view := &farm.View{Plots: []farm.PlotView{
		{Index: 0, Empty: true},
		// grown while the app was down and seen at load
		{Index: 1, Crop: domain.CropCarrot, PlantedAt: now.Add(-time.Minute).UnixMilli(), Ready: true},
		// one second short of ready
		{Index: 2, Crop: domain.CropTurnip, PlantedAt: now.Add(-7 * time.Second).UnixMilli()},
		// still growing for a while
		{Index: 3, Crop: domain.CropCarrot, PlantedAt: now.UnixMilli()},
		{Index: 4, Crop: "potato", PlantedAt: now.UnixMilli()},
	}}

	w.Start(context.Background(), view)
	assert.Equal(t, 2, w.Pending())

	select {
	case p := <-ready:
		assert.Equal(t, 2, p.Plot)
		assert.Equal(t, domain.CropTurnip, p.Crop)
	case <-time.After(3 * time.Second):
		t.Fatal("expected the restored turnip to report ready")
	}

	select {
	case p := <-ready:
		t.Fatalf("unexpected ready event for plot %d", p.Plot)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, w.Pending())
}
