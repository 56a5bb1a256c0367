package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Owennied/HimmyGames/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_FailingJobKeepsWorkerAlive(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	}))
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// Not started, so nothing drains the queue
	var executed int32
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
	pool.Stop()
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	pool.Stop()
	assert.NotPanics(t, pool.Stop)
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(4, TestQueueSize)
	pool.Start()
	var executed int32
	for i := 0; i < 4; i++ {
		pool.Enqueue(&testJob{executed: &executed})
	}
	pool.Stop()

	checker.Check(2)
}
