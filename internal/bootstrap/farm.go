package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Owennied/HimmyGames/internal/catalog"
	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/scheduler"
	"github.com/Owennied/HimmyGames/internal/storage"
	"github.com/Owennied/HimmyGames/internal/variant"
	"github.com/Owennied/HimmyGames/internal/worker"
)

// LoadCatalog returns the embedded crop catalog or the override at cfg.CatalogPath
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	cat, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "crops", cat.IDs())
	return cat, nil
}

// NewSampler returns a seeded sampler when RANDOM_SEED is set
func NewSampler(cfg *config.Config) *variant.Sampler {
	if cfg.HasRandomSeed {
		slog.Info(LogMsgSeededSampler, "seed", cfg.RandomSeed)
		return variant.NewSeededSampler(cfg.RandomSeed)
	}
	return variant.NewSampler()
}

// InitializeFarm loads the farm from store and returns the service that owns it
func InitializeFarm(ctx context.Context, cfg *config.Config, store storage.Store, bus event.Bus, cat *catalog.Catalog) (farm.Service, error) {
	svc, err := farm.NewService(ctx, store, bus, cat, NewSampler(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFarm, err)
	}
	return svc, nil
}

// StartJobs runs the farmer tick and the autosave on a one-worker pool
func StartJobs(cfg *config.Config, svc farm.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(JobWorkers, JobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(farm.TickJobName, cfg.TickInterval, worker.NewTickJob(svc))
	sched.Schedule(worker.AutosaveJobName, cfg.AutosaveInterval, worker.NewAutosaveJob(svc))

	slog.Info(LogMsgJobsScheduled,
		"tick_interval", cfg.TickInterval,
		"autosave_interval", cfg.AutosaveInterval)
	return pool, sched
}
