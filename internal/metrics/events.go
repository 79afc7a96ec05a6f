package metrics

import (
	"context"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every progression event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.ProfileCreatedPayload:
		ProfilesCreated.Inc()

	case domain.BattleRecordedPayload:
		outcome := event.OutcomeLoss
		if p.IsWin {
			outcome = event.OutcomeWin
		}
		BattlesRecorded.WithLabelValues(outcome).Inc()

	case domain.LevelUpPayload:
		LevelUps.Inc()

	case domain.LeagueChangedPayload:
		direction := DirectionPromotion
		if p.NewLeague < p.OldLeague {
			direction = DirectionDemotion
		}
		LeagueChanges.WithLabelValues(direction).Inc()

	case domain.CrateAwardedPayload:
		CratesAwarded.WithLabelValues(p.CrateType).Inc()

	case domain.CrateClaimedPayload:
		CratesClaimed.WithLabelValues(p.CrateType).Inc()

	case domain.NFTMintedPayload:
		NFTsMinted.Inc()

	default:
		log.Debug(LogMsgUnknownPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
