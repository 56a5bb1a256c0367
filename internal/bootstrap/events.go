package bootstrap

import (
	"log/slog"

	"github.com/Owennied/HimmyGames/internal/event"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}
