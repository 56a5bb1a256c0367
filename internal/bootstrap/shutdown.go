package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/scheduler"
	"github.com/Owennied/HimmyGames/internal/server"
	"github.com/Owennied/HimmyGames/internal/sse"
	"github.com/Owennied/HimmyGames/internal/storage"
	"github.com/Owennied/HimmyGames/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	Pool        *worker.Pool
	ReadyWorker *worker.ReadyWorker
	FarmService farm.Service
	SSEHub      *sse.Hub
	Store       storage.Store
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no more ticks)
// 3. Crop ready timers
// 4. Farm service (final save)
// 5. SSE hub and storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingJobs)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ReadyWorker != nil {
		if err := c.ReadyWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgReadyWorkerFailed, "error", err)
		}
	}

	if c.FarmService != nil {
		slog.Info(LogMsgSavingFarm)
		if err := c.FarmService.Shutdown(ctx); err != nil {
			slog.Error(LogMsgFarmSaveFailed, "error", err)
		}
	}

	if c.SSEHub != nil {
		c.SSEHub.Stop()
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
