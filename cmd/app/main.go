package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Owennied/HimmyGames/internal/bootstrap"
	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/server"
	"github.com/Owennied/HimmyGames/internal/sse"
)

// @title Tiny Farm API
// @version 1.0
// @description Idle farming sim: plant, harvest, sell and hire farmers.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tiny farm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	hub := sse.NewHub()
	hub.Start()

	readyWorker, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		SSEHub:   hub,
		Catalog:  cat,
	})
	if err != nil {
		hub.Stop()
		_ = store.Close()
		return err
	}

	farmSvc, err := bootstrap.InitializeFarm(ctx, cfg, store, bus, cat)
	if err != nil {
		hub.Stop()
		_ = store.Close()
		return err
	}

	readyWorker.Start(ctx, farmSvc.View(ctx))
	pool, sched := bootstrap.StartJobs(cfg, farmSvc)

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		FarmService: farmSvc,
		SSEHub:      hub,
		Readiness:   bootstrap.StoreReadiness(store),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		Pool:        pool,
		ReadyWorker: readyWorker,
		FarmService: farmSvc,
		SSEHub:      hub,
		Store:       store,
	})

	return runErr
}
