package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept next to the new session log
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTinyFarm    = "Starting Tiny Farm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// DBMaxConnIdleTime closes idle postgres connections
	DBMaxConnIdleTime = 5 * time.Minute
	// DBMaxConnLifetime recycles postgres connections
	DBMaxConnLifetime = time.Hour
)

const (
	LogMsgStorageOpened       = "Storage opened"
	ErrMsgFailedOpenStorage   = "failed to open storage"
	ErrMsgFailedMigrate       = "failed to migrate farm storage"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
)

// =============================================================================
// Catalog and farm
// =============================================================================

const (
	LogMsgCatalogLoaded     = "Crop catalog loaded"
	LogMsgSeededSampler     = "Variant sampler seeded"
	ErrMsgFailedLoadCatalog = "failed to load crop catalog"
	ErrMsgFailedLoadFarm    = "failed to load farm"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgReadyWorkerRegistered      = "Crop ready worker registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Background jobs
// =============================================================================

const (
	// JobWorkers is one so ticks and autosaves never overlap
	JobWorkers = 1
	// JobQueueSize holds a few missed ticks before the scheduler starts dropping
	JobQueueSize = 4

	LogMsgJobsScheduled = "Background jobs scheduled"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingJobs         = "Stopping background jobs..."
	LogMsgSavingFarm           = "Saving farm..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgFarmSaveFailed       = "Final farm save failed"
	LogMsgReadyWorkerFailed    = "Crop ready worker shutdown failed"
	LogMsgStoreCloseFailed     = "Storage close failed"
)
