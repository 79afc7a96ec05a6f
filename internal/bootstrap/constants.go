package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Session log files
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Event system defaults, applied when config leaves a value zero
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages
const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting HeroArena"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventAuditRegistered       = "Event audit logger registered"
	LogMsgEventObserved              = "Event observed"
	LogMsgStorageInitialized         = "Storage initialized"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownScheduler      = "Stopping scheduled jobs..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingStorage             = "Closing storage..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)

// Error context messages
const (
	ErrMsgFailedCreateLogsDir            = "failed to create logs directory"
	ErrMsgFailedOpenLogFile              = "failed to open log file"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedConnectDatabase          = "failed to connect to database"
	ErrMsgFailedMigrateDatabase          = "failed to apply migrations"
	ErrMsgUnknownStorageDriver           = "unknown storage driver"
)
