// Package eventlog persists published progression events as a per-account history.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// Service handles event history business logic
type Service interface {
	// Subscribe registers the event logger for every progression event type
	Subscribe(bus event.Bus) error

	// GetAccountHistory returns recent events for an account.
	// limit is clamped to [1, MaxHistoryLimit]; zero selects DefaultHistoryLimit.
	GetAccountHistory(ctx context.Context, accountID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event history service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers handleEvent for all progression event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload into a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := toObject(evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextEncodePayload, err)
	}
	if payload == nil {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}
	metadata, err := toObject(evt.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextEncodePayload, err)
	}

	var accountID *string
	if id, ok := payload[PayloadKeyAccountID].(string); ok && id != "" {
		accountID = &id
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), accountID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldAccountID, accountID)
	return nil
}

// toObject round-trips v through JSON; non-object values yield a nil map
func toObject(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if m, ok := v.(map[string]interface{}); ok {
		return m, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil
	}
	return m, nil
}

func (s *service) GetAccountHistory(ctx context.Context, accountID string, limit int) ([]Entry, error) {
	switch {
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit < 1:
		limit = 1
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	entries, err := s.repo.GetEventsByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadHistory, err)
	}
	return entries, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
