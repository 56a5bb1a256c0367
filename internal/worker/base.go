package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Owennied/HimmyGames/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage
// one timer per key
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[int]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[int]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn after d in a tracked goroutine, replacing any timer already
// registered under key
func (w *BaseWorker) schedule(key int, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[key]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.mu.Lock()
		if w.timers[key] != timer {
			w.mu.Unlock()
			return
		}
		delete(w.timers, key)
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		fn()
	})
	w.timers[key] = timer
}

func (w *BaseWorker) stopTimer(key int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[key]; ok {
		timer.Stop()
		delete(w.timers, key)
	}
}

func (w *BaseWorker) stopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, timer := range w.timers {
		timer.Stop()
		delete(w.timers, key)
	}
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	close(w.shutdown)
	for key, timer := range w.timers {
		timer.Stop()
		log.Debug("Cancelled pending "+workerName+" timer", "key", key)
	}
	w.timers = make(map[int]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
