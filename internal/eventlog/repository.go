package eventlog

import (
	"context"
	"time"
)

// Entry is one persisted event
type Entry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	AccountID *string                `json:"account_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository defines the interface for event history storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, accountID *string, payload, metadata map[string]interface{}) error

	// GetEventsByAccount returns the newest events for an account, newest first
	GetEventsByAccount(ctx context.Context, accountID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
