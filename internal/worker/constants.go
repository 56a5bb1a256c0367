package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Farm Jobs
// ============================================================================

// Log messages for the farm jobs and the ready worker
const (
	LogMsgTickFailed       = "Farm tick failed"
	LogMsgAutosaveFailed   = "Farm autosave failed"
	LogMsgReadyScheduled   = "Crop ready notification scheduled"
	LogMsgReadyPublishFail = "Failed to publish crop ready event"
	LogMsgReadyBadPayload  = "Ignoring event with unexpected payload"
	LogMsgReadyRestored    = "Crop ready timers restored from save"
)

// Worker and job names used in logs
const (
	ReadyWorkerName = "crop ready worker"
	AutosaveJobName = "farm_autosave"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
