package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
)

// StreamedTypes are the progression events pushed to stream clients
var StreamedTypes = []event.Type{
	event.LevelUp,
	event.LeagueChanged,
	event.CrateAwarded,
	event.CrateClaimed,
	event.NFTMinted,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarder for every streamed event type
func (s *Subscriber) Subscribe() {
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscriberReady, "types", StreamedTypes)
}

// forward broadcasts the typed payload unchanged, tagged with its account
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	accountID := payloadAccount(evt.Payload)
	if accountID == "" {
		slog.Warn(LogMsgPayloadMissingOwner, "event_type", evt.Type)
	}

	s.hub.Broadcast(string(evt.Type), accountID, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "account_id", accountID)
	return nil
}

func payloadAccount(payload interface{}) string {
	switch p := payload.(type) {
	case domain.LevelUpPayload:
		return p.AccountID
	case domain.LeagueChangedPayload:
		return p.AccountID
	case domain.CrateAwardedPayload:
		return p.AccountID
	case domain.CrateClaimedPayload:
		return p.AccountID
	case domain.NFTMintedPayload:
		return p.AccountID
	case map[string]interface{}:
		id, _ := p["account_id"].(string)
		return id
	default:
		return ""
	}
}
