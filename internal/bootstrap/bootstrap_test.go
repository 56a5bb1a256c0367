package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/event"
	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/storage"
	"github.com/Owennied/HimmyGames/mocks"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, base.Format(LogFileTimestampFormat)), "oldest removed")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     func(dir string) *config.Config
		wantErr bool
	}{
		{"memory", func(string) *config.Config { return &config.Config{StorageBackend: storage.BackendMemory} }, false},
		{"file", func(dir string) *config.Config {
			return &config.Config{StorageBackend: storage.BackendFile, DataDir: filepath.Join(dir, "data")}
		}, false},
		{"sqlite", func(dir string) *config.Config {
			return &config.Config{StorageBackend: storage.BackendSQLite, SQLitePath: filepath.Join(dir, "db", "farm.db")}
		}, false},
		{"unknown", func(string) *config.Config { return &config.Config{StorageBackend: "redis"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := OpenStore(ctx, tt.cfg(t.TempDir()))
			if tt.wantErr {
				assert.ErrorIs(t, err, storage.ErrUnknownBackend)
				return
			}
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Set(ctx, "tinyfarm_money_v1", []byte("12")))
			v, ok, err := store.Get(ctx, "tinyfarm_money_v1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "12", string(v))

			assert.NoError(t, StoreReadiness(store).CheckHealth(ctx))
		})
	}
}

func TestInitializeFarm_WiresBusAndCatalog(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{HasRandomSeed: true, RandomSeed: 1}
	cat, err := LoadCatalog(cfg)
	require.NoError(t, err)
	assert.True(t, cat.Has(domain.CropCarrot))

	bus := InitializeEventSystem()
	readyWorker, err := RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Catalog: cat})
	require.NoError(t, err)
	defer readyWorker.Shutdown(ctx)

	var planted int
	bus.Subscribe(event.CropPlanted, func(context.Context, event.Event) error {
		planted++
		return nil
	})

	svc, err := InitializeFarm(ctx, cfg, storage.NewMemoryStore(), bus, cat)
	require.NoError(t, err)

	_, err = svc.Plant(ctx, 0, domain.CropCarrot)
	require.NoError(t, err)
	assert.Equal(t, 1, planted)
	assert.Equal(t, 1, readyWorker.Pending(), "ready timer armed for the new crop")
}

func TestGracefulShutdown_SavesFarm(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Shutdown", mock.Anything).Return(nil).Once()
	store := storage.NewMemoryStore()

	GracefulShutdown(context.Background(), ShutdownComponents{FarmService: svc, Store: store})

	_, _, err := store.Get(context.Background(), "tinyfarm_money_v1")
	assert.ErrorIs(t, err, storage.ErrClosed)
}

func TestStartJobs_TicksFarm(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	ticked := make(chan struct{}, 8)
	svc.On("Tick", mock.Anything).Run(func(mock.Arguments) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}).Return(farm.TickReport{}, nil)
	svc.On("Save", mock.Anything).Return(nil).Maybe()

	pool, sched := StartJobs(&config.Config{TickInterval: 10 * time.Millisecond, AutosaveInterval: time.Hour}, svc)
	defer func() {
		sched.Stop()
		pool.Stop()
	}()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("farm was never ticked")
	}
}
