package farm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/logger"
	"github.com/Owennied/HimmyGames/internal/savegame"
	"github.com/Owennied/HimmyGames/internal/storage"
	"github.com/Owennied/HimmyGames/internal/variant"
)

// ActionResult is returned by every successful farm action
type ActionResult struct {
	Farm    *View          `json:"farm"`
	Message string         `json:"message"`
	Sale    *Sale          `json:"sale,omitempty"`
	Variant domain.Variant `json:"variant,omitempty"`
	Farmer  *FarmerView    `json:"farmer,omitempty"`
	Cost    int64          `json:"cost,omitempty"`
}

// SellOrder selects what to sell. Variant limits an "all" sale to one tier.
type SellOrder struct {
	Crop    string
	Variant string
	All     bool
}

// Service owns one farm. All methods are safe for concurrent use. Events are
// published synchronously in mutation order, so bus subscribers must not call
// back into the service.
type Service interface {
	View(ctx context.Context) *View
	Market(ctx context.Context) []MarketEntry
	Crops(ctx context.Context) []domain.Crop

	Plant(ctx context.Context, plot int, crop string) (*ActionResult, error)
	Harvest(ctx context.Context, plot int) (*ActionResult, error)
	BuyPlot(ctx context.Context) (*ActionResult, error)
	Sell(ctx context.Context, order SellOrder) (*ActionResult, error)

	HireFarmer(ctx context.Context) (*ActionResult, error)
	FireFarmer(ctx context.Context, id int) (*ActionResult, error)
	AssignFarmer(ctx context.Context, id, plot int) (*ActionResult, error)
	UnassignFarmer(ctx context.Context, id int) (*ActionResult, error)
	SetAutoReplant(ctx context.Context, id int, crop string) (*ActionResult, error)

	Rename(ctx context.Context, name string) (*ActionResult, error)
	Reset(ctx context.Context) (*ActionResult, error)

	// Tick runs one farmer pass
	Tick(ctx context.Context) (TickReport, error)
	// Save writes the full farm to the store
	Save(ctx context.Context) error
	// Shutdown saves the farm one last time
	Shutdown(ctx context.Context) error
}

// ServiceOption customizes a service
type ServiceOption func(*service)

// WithClock replaces time.Now
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) { s.now = now }
}

type service struct {
	mu sync.Mutex
	// publishMu is taken before mu is released and held while publishing
	publishMu sync.Mutex

	engine   *Engine
	store    storage.Store
	bus      event.Bus
	catalog  *catalog.Catalog
	resolver *catalog.Resolver
	now      func() time.Time
}

// NewService loads the farm from store and returns a service that owns it
func NewService(
	ctx context.Context,
	store storage.Store,
	bus event.Bus,
	cat *catalog.Catalog,
	sampler *variant.Sampler,
	opts ...ServiceOption,
) (Service, error) {
	s := &service{
		store:    store,
		bus:      bus,
		catalog:  cat,
		resolver: catalog.NewResolver(cat),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, report, err := savegame.Load(ctx, store, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgStateLoaded,
		"money", state.Money,
		"plots", len(state.Plots),
		"farmers", len(state.Farmers),
		"migrations", report.Applied,
		"fallbacks", report.Fallbacks)

	s.engine = NewEngine(state, cat, sampler, s.now)
	return s, nil
}

func (s *service) View(_ context.Context) *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.View()
}

func (s *service) Market(_ context.Context) []MarketEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Market()
}

func (s *service) Crops(_ context.Context) []domain.Crop {
	return s.catalog.List()
}

// resolveCrop maps player input onto a catalog id. Anything but an exact id
// or display name is rejected, with the closest crop as a suggestion.
func (s *service) resolveCrop(input string) (string, error) {
	if id, ok := s.resolver.Resolve(input); ok {
		return id, nil
	}
	rejection := &domain.UnknownCropError{Input: input}
	if id, ok := s.resolver.Suggest(input); ok {
		if c, found := s.catalog.Lookup(id); found {
			rejection.Suggestion = c.Name
		}
	}
	return "", rejection
}

func (s *service) Plant(ctx context.Context, plot int, crop string) (*ActionResult, error) {
	cropID, err := s.resolveCrop(crop)
	if err != nil {
		return nil, s.rejected(ctx, ActionPlant, err)
	}

	return s.apply(ctx, ActionPlant, func(e *Engine) (*ActionResult, []event.Event, error) {
		if err := e.Plant(plot, cropID); err != nil {
			return nil, nil, err
		}
		c, _ := e.catalog.Lookup(cropID)
		evt := event.NewCropPlantedEvent(domain.CropPlantedPayload{
			Plot:      plot,
			Crop:      cropID,
			SeedCost:  c.SeedCost,
			Source:    domain.SourcePlayer,
			Timestamp: e.nowMillis(),
		})
		return &ActionResult{
			Message: fmt.Sprintf(MsgPlanted, c.Name, plot+1),
			Cost:    c.SeedCost,
		}, []event.Event{evt}, nil
	})
}

func (s *service) Harvest(ctx context.Context, plot int) (*ActionResult, error) {
	return s.apply(ctx, ActionHarvest, func(e *Engine) (*ActionResult, []event.Event, error) {
		cropID := ""
		if e.state.ValidPlot(plot) {
			cropID = e.state.Plots[plot].Crop
		}
		v, err := e.Harvest(plot)
		if err != nil {
			return nil, nil, err
		}
		c, _ := e.catalog.Lookup(cropID)
		evt := event.NewCropHarvestedEvent(domain.CropHarvestedPayload{
			Plot:      plot,
			Crop:      cropID,
			Variant:   v,
			Source:    domain.SourcePlayer,
			Timestamp: e.nowMillis(),
		})
		return &ActionResult{
			Message: fmt.Sprintf(MsgHarvested, v, c.Name, plot+1),
			Variant: v,
		}, []event.Event{evt}, nil
	})
}

func (s *service) BuyPlot(ctx context.Context) (*ActionResult, error) {
	return s.apply(ctx, ActionBuyPlot, func(e *Engine) (*ActionResult, []event.Event, error) {
		cost, err := e.BuyPlot()
		if err != nil {
			return nil, nil, err
		}
		count := len(e.state.Plots)
		evt := event.NewPlotPurchasedEvent(domain.PlotPurchasedPayload{
			Cost:      cost,
			PlotCount: count,
			Timestamp: e.nowMillis(),
		})
		return &ActionResult{
			Message: fmt.Sprintf(MsgPlotBought, count, cost),
			Cost:    cost,
		}, []event.Event{evt}, nil
	})
}

func (s *service) Sell(ctx context.Context, order SellOrder) (*ActionResult, error) {
	cropID, err := s.resolveCrop(order.Crop)
	if err != nil {
		return nil, s.rejected(ctx, ActionSell, err)
	}

	var tier domain.Variant
	if order.Variant != "" {
		v, ok := domain.ParseVariant(order.Variant)
		if !ok {
			return nil, s.rejected(ctx, ActionSell, domain.ErrUnknownVariant)
		}
		tier = v
	}

	return s.apply(ctx, ActionSell, func(e *Engine) (*ActionResult, []event.Event, error) {
		var sale Sale
		var err error
		switch {
		case tier != "":
			sale, err = e.SellAllOfVariant(cropID, tier)
		case order.All:
			sale, err = e.SellAll(cropID)
		default:
			sale, err = e.SellOne(cropID)
		}
		if err != nil {
			return nil, nil, err
		}
		c, _ := e.catalog.Lookup(cropID)
		evt := event.NewCropSoldEvent(domain.CropSoldPayload{
			Crop:      cropID,
			Quantity:  sale.Quantity(),
			Payout:    sale.Payout,
			Timestamp: e.nowMillis(),
		})
		return &ActionResult{
			Message: fmt.Sprintf(MsgSold, sale.Quantity(), c.Name, sale.Payout),
			Sale:    &sale,
		}, []event.Event{evt}, nil
	})
}

func (s *service) HireFarmer(ctx context.Context) (*ActionResult, error) {
	return s.apply(ctx, ActionHire, func(e *Engine) (*ActionResult, []event.Event, error) {
		f, err := e.HireFarmer()
		if err != nil {
			return nil, nil, err
		}
		fv := FarmerView{ID: f.ID}
		return &ActionResult{
			Message: fmt.Sprintf(MsgFarmerHired, f.ID, domain.FarmerCost),
			Farmer:  &fv,
			Cost:    domain.FarmerCost,
		}, []event.Event{e.farmerEvent(event.FarmerHired, f)}, nil
	})
}

func (s *service) FireFarmer(ctx context.Context, id int) (*ActionResult, error) {
	return s.apply(ctx, ActionFire, func(e *Engine) (*ActionResult, []event.Event, error) {
		if err := e.FireFarmer(id); err != nil {
			return nil, nil, err
		}
		return &ActionResult{
			Message: fmt.Sprintf(MsgFarmerFired, id),
		}, []event.Event{e.farmerEvent(event.FarmerFired, domain.Farmer{ID: id})}, nil
	})
}

func (s *service) AssignFarmer(ctx context.Context, id, plot int) (*ActionResult, error) {
	return s.apply(ctx, ActionAssign, func(e *Engine) (*ActionResult, []event.Event, error) {
		if err := e.AssignFarmer(id, plot); err != nil {
			return nil, nil, err
		}
		f, _ := e.state.FindFarmer(id)
		return &ActionResult{
			Message: fmt.Sprintf(MsgFarmerAssigned, id, plot+1),
			Farmer:  farmerView(*f),
		}, []event.Event{e.farmerEvent(event.FarmerAssigned, *f)}, nil
	})
}

func (s *service) UnassignFarmer(ctx context.Context, id int) (*ActionResult, error) {
	return s.apply(ctx, ActionUnassign, func(e *Engine) (*ActionResult, []event.Event, error) {
		if err := e.UnassignFarmer(id); err != nil {
			return nil, nil, err
		}
		f, _ := e.state.FindFarmer(id)
		return &ActionResult{
			Message: fmt.Sprintf(MsgFarmerUnassign, id),
			Farmer:  farmerView(*f),
		}, []event.Event{e.farmerEvent(event.FarmerUpdated, *f)}, nil
	})
}

func (s *service) SetAutoReplant(ctx context.Context, id int, crop string) (*ActionResult, error) {
	cropID := ""
	if crop != "" {
		resolved, err := s.resolveCrop(crop)
		if err != nil {
			return nil, s.rejected(ctx, ActionReplant, err)
		}
		cropID = resolved
	}

	return s.apply(ctx, ActionReplant, func(e *Engine) (*ActionResult, []event.Event, error) {
		if err := e.SetAutoReplant(id, cropID); err != nil {
			return nil, nil, err
		}
		f, _ := e.state.FindFarmer(id)
		msg := fmt.Sprintf(MsgReplantCleared, id)
		if cropID != "" {
			c, _ := e.catalog.Lookup(cropID)
			msg = fmt.Sprintf(MsgReplantSet, id, c.Name)
		}
		return &ActionResult{
			Message: msg,
			Farmer:  farmerView(*f),
		}, []event.Event{e.farmerEvent(event.FarmerUpdated, *f)}, nil
	})
}

func (s *service) Rename(ctx context.Context, name string) (*ActionResult, error) {
	return s.apply(ctx, ActionRename, func(e *Engine) (*ActionResult, []event.Event, error) {
		old := e.state.FarmName
		newName, err := e.Rename(name)
		if err != nil {
			return nil, nil, err
		}
		evt := event.NewFarmRenamedEvent(domain.FarmRenamedPayload{
			OldName:   old,
			NewName:   newName,
			Timestamp: e.nowMillis(),
		})
		return &ActionResult{Message: fmt.Sprintf(MsgRenamed, newName)}, []event.Event{evt}, nil
	})
}

func (s *service) Reset(ctx context.Context) (*ActionResult, error) {
	return s.apply(ctx, ActionReset, func(e *Engine) (*ActionResult, []event.Event, error) {
		e.Reset()
		return &ActionResult{Message: MsgReset}, []event.Event{event.NewFarmResetEvent(e.nowMillis())}, nil
	})
}

func (s *service) Tick(ctx context.Context) (TickReport, error) {
	s.mu.Lock()
	report := s.engine.Tick()
	if !report.Changed() {
		s.mu.Unlock()
		return report, nil
	}

	ts := s.engine.nowMillis()
	events := make([]event.Event, 0, len(report.Harvests)+len(report.Replants)+2)
	for _, h := range report.Harvests {
		events = append(events, event.NewCropHarvestedEvent(domain.CropHarvestedPayload{
			Plot:      h.Plot,
			Crop:      h.Crop,
			Variant:   h.Variant,
			Source:    domain.SourceFarmer,
			FarmerID:  h.FarmerID,
			Timestamp: ts,
		}))
	}
	for _, r := range report.Replants {
		events = append(events, event.NewCropPlantedEvent(domain.CropPlantedPayload{
			Plot:      r.Plot,
			Crop:      r.Crop,
			SeedCost:  r.SeedCost,
			Source:    domain.SourceFarmer,
			Timestamp: ts,
		}))
	}
	events = append(events,
		event.NewFarmTickedEvent(domain.FarmTickedPayload{
			Harvested: len(report.Harvests),
			Replanted: len(report.Replants),
			Timestamp: ts,
		}),
		event.NewFarmUpdatedEvent(s.engine.View()),
	)

	saveErr := s.saveLocked(ctx)
	s.handOffLocked()
	defer s.publishMu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgTickApplied,
		"harvested", len(report.Harvests),
		"replanted", len(report.Replants))
	s.publish(ctx, events)
	return report, saveErr
}

func (s *service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	return s.Save(ctx)
}

// apply runs fn under the lock. On success the farm is saved, the result gets
// the new view, and fn's events plus a farm.updated event are published
// before any later mutation publishes.
func (s *service) apply(
	ctx context.Context,
	action string,
	fn func(e *Engine) (*ActionResult, []event.Event, error),
) (*ActionResult, error) {
	s.mu.Lock()
	result, events, err := fn(s.engine)
	if err != nil {
		s.mu.Unlock()
		return nil, s.rejected(ctx, action, err)
	}

	result.Farm = s.engine.View()
	events = append(events, event.NewFarmUpdatedEvent(result.Farm))
	if saveErr := s.saveLocked(ctx); saveErr != nil {
		// The in-memory farm stays ahead of the store; the next save catches up.
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "action", action, "error", saveErr)
	}
	s.handOffLocked()
	defer s.publishMu.Unlock()

	logger.FromContext(ctx).Info(LogMsgActionApplied, "action", action, "message", result.Message)
	s.publish(ctx, events)
	return result, nil
}

// handOffLocked trades mu for publishMu so events leave in the order their
// mutations were applied. The caller releases publishMu after publishing.
func (s *service) handOffLocked() {
	s.publishMu.Lock()
	s.mu.Unlock()
}

func (s *service) rejected(ctx context.Context, action string, err error) error {
	if domain.IsRejection(err) {
		logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "reason", err)
	}
	return err
}

func (s *service) saveLocked(ctx context.Context) error {
	return savegame.Save(ctx, s.store, s.engine.state)
}

func (s *service) publish(ctx context.Context, events []event.Event) {
	if s.bus == nil {
		return
	}
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

func (e *Engine) farmerEvent(t event.Type, f domain.Farmer) event.Event {
	return event.NewFarmerEvent(t, domain.FarmerPayload{
		FarmerID:     f.ID,
		AssignedPlot: f.AssignedPlot,
		AutoReplant:  f.AutoReplant,
		FarmerCount:  len(e.state.Farmers),
		Timestamp:    e.nowMillis(),
	})
}

func farmerView(f domain.Farmer) *FarmerView {
	fv := &FarmerView{ID: f.ID, AutoReplant: f.AutoReplant}
	if f.AssignedPlot != nil {
		idx := *f.AssignedPlot
		fv.AssignedPlot = &idx
	}
	return fv
}

