package eventlog

// JSON payload field keys
const (
	PayloadKeyAccountID = "account_id"
)

// History query bounds
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not a JSON object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event"
	LogMsgEventLogged           = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldAccountID     = "account_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted_count"
)

// Error contexts
const (
	ErrContextEncodePayload = "failed to encode event payload"
	ErrContextLoadHistory   = "failed to load event history"
)
