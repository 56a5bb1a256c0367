package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/database"
	"github.com/Owennied/HimmyGames/internal/database/postgres"
	"github.com/Owennied/HimmyGames/internal/handler"
	"github.com/Owennied/HimmyGames/internal/savegame"
	"github.com/Owennied/HimmyGames/internal/storage"
)

// OpenStore opens the key-value backend named by cfg.StorageBackend.
// The postgres backend runs its migrations before returning.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.StorageBackend {
	case storage.BackendMemory:
		store = storage.NewMemoryStore()
	case storage.BackendFile:
		store, err = storage.NewFileStore(cfg.DataDir)
	case storage.BackendSQLite:
		store, err = openSQLite(ctx, cfg)
	case storage.BackendPostgres:
		store, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return store, nil
}

func openSQLite(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
	}
	return storage.OpenSQLite(ctx, cfg.SQLitePath)
}

func openPostgres(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	return postgres.NewKVStore(pool), nil
}

// StoreReadiness reports the store healthy when the schema marker can be read
func StoreReadiness(store storage.Store) handler.HealthChecker {
	return handler.HealthCheckerFunc(func(ctx context.Context) error {
		_, _, err := store.Get(ctx, savegame.KeySchemaVersion)
		return err
	})
}
