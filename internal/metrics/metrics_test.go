package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
)

func TestEventMetricsCollector_FarmEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	planted := testutil.ToFloat64(CropsPlanted.WithLabelValues(domain.CropTurnip, domain.SourceFarmer))
	harvested := testutil.ToFloat64(CropsHarvested.WithLabelValues(domain.CropCarrot, "gold", domain.SourcePlayer))
	sold := testutil.ToFloat64(CropsSold.WithLabelValues(domain.CropCarrot))
	earned := testutil.ToFloat64(MoneyEarned)
	seedSpend := testutil.ToFloat64(MoneySpent.WithLabelValues(SpendSeed))

	require.NoError(t, bus.Publish(ctx, event.NewCropPlantedEvent(domain.CropPlantedPayload{
		Plot: 0, Crop: domain.CropTurnip, SeedCost: 2, Source: domain.SourceFarmer,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewCropHarvestedEvent(domain.CropHarvestedPayload{
		Plot: 0, Crop: domain.CropCarrot, Variant: domain.VariantGold, Source: domain.SourcePlayer,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewCropSoldEvent(domain.CropSoldPayload{
		Crop: domain.CropCarrot, Quantity: 3, Payout: 12,
	})))

	assert.Equal(t, planted+1, testutil.ToFloat64(CropsPlanted.WithLabelValues(domain.CropTurnip, domain.SourceFarmer)))
	assert.Equal(t, harvested+1, testutil.ToFloat64(CropsHarvested.WithLabelValues(domain.CropCarrot, "gold", domain.SourcePlayer)))
	assert.Equal(t, sold+3, testutil.ToFloat64(CropsSold.WithLabelValues(domain.CropCarrot)))
	assert.Equal(t, earned+12, testutil.ToFloat64(MoneyEarned))
	assert.Equal(t, seedSpend+2, testutil.ToFloat64(MoneySpent.WithLabelValues(SpendSeed)))
}

func TestEventMetricsCollector_FarmUpdatedSetsGauges(t *testing.T) {
	c := NewEventMetricsCollector()
	view := &farm.View{Money: 321, Plots: make([]farm.PlotView, 4), Farmers: make([]farm.FarmerView, 2)}

	require.NoError(t, c.HandleEvent(context.Background(), event.NewFarmUpdatedEvent(view)))

	assert.Equal(t, 321.0, testutil.ToFloat64(FarmMoney))
	assert.Equal(t, 4.0, testutil.ToFloat64(FarmPlots))
	assert.Equal(t, 2.0, testutil.ToFloat64(FarmFarmers))
}

func TestEventMetricsCollector_BadPayloadCounted(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CropSold)))

	evt := event.Event{Type: event.CropSold, Payload: make(chan int)}
	require.NoError(t, c.HandleEvent(context.Background(), evt))

	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CropSold))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/farmers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/farmers/{id}", "418"))

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/farmers/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/farmers/{id}", "418")))
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.Flush()
	assert.True(t, rec.Flushed)
}
