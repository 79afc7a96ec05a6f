package memory

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HeroArena_Go/internal/eventlog"
)

var _ eventlog.Repository = (*EventLog)(nil)

// EventLog keeps event history in an append-only slice
type EventLog struct {
	mu      sync.RWMutex
	entries []eventlog.Entry
	nextID  int64
	now     func() time.Time
}

// NewEventLog creates an empty EventLog
func NewEventLog() *EventLog {
	return &EventLog{nextID: 1, now: time.Now}
}

func (l *EventLog) LogEvent(_ context.Context, eventType string, accountID *string, payload, metadata map[string]interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, eventlog.Entry{
		ID:        l.nextID,
		EventType: eventType,
		AccountID: accountID,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: l.now(),
	})
	l.nextID++
	return nil
}

// GetEventsByAccount walks the log backwards so the newest entries come first
func (l *EventLog) GetEventsByAccount(_ context.Context, accountID string, limit int) ([]eventlog.Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []eventlog.Entry
	for i := len(l.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := l.entries[i]
		if e.AccountID != nil && *e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *EventLog) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().AddDate(0, 0, -retentionDays)
	kept := l.entries[:0]
	var removed int64
	for _, e := range l.entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed, nil
}
