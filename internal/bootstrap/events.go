package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/HeroArena_Go/internal/config"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process bus and the resilient publisher in front of it.
// Zero config values fall back to the package defaults.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}
	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers subscribes the metrics collector and the audit logger to every event type
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range event.AllTypes {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered)
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventObserved,
		"type", evt.Type,
		"version", evt.Version,
		"metadata", evt.Metadata)
	return nil
}
