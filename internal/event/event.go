package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HeroArena_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Event types
const (
	ProfileCreated Type = domain.EventTypeProfileCreated
	LevelUp        Type = domain.EventTypeLevelUp
	LeagueChanged  Type = domain.EventTypeLeagueChanged
	CrateAwarded   Type = domain.EventTypeCrateAwarded
	CrateClaimed   Type = domain.EventTypeCrateClaimed
	NFTMinted      Type = domain.EventTypeNFTMinted
	BattleRecorded Type = domain.EventTypeBattleRecorded
)

// AllTypes lists every event type the progression services publish
var AllTypes = []Type{
	ProfileCreated,
	LevelUp,
	LeagueChanged,
	CrateAwarded,
	CrateClaimed,
	NFTMinted,
	BattleRecorded,
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Type-safe event constructors

// NewProfileCreatedEvent creates a profile.created event
func NewProfileCreatedEvent(accountID, name string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProfileCreated,
		Payload: domain.ProfileCreatedPayload{
			AccountID: accountID,
			Name:      name,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a profile.level_up event
func NewLevelUpEvent(accountID string, newLevel, multiplier int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			AccountID:  accountID,
			NewLevel:   newLevel,
			Multiplier: multiplier,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewNFTMintedEvent creates an nft.minted event
func NewNFTMintedEvent(accountID string, tokenID int64, level int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    NFTMinted,
		Payload: domain.NFTMintedPayload{
			AccountID: accountID,
			TokenID:   tokenID,
			Level:     level,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCrateAwardedEvent creates a crate.awarded event
func NewCrateAwardedEvent(accountID, crateType string, rarity, newLeague int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CrateAwarded,
		Payload: domain.CrateAwardedPayload{
			AccountID: accountID,
			CrateType: crateType,
			Rarity:    rarity,
			NewLeague: newLeague,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCrateClaimedEvent creates a crate.claimed event
func NewCrateClaimedEvent(accountID string, index int, crateType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CrateClaimed,
		Payload: domain.CrateClaimedPayload{
			AccountID: accountID,
			Index:     index,
			CrateType: crateType,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLeagueChangedEvent creates a league.changed event
func NewLeagueChangedEvent(accountID string, oldLeague, newLeague int, crateType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LeagueChanged,
		Payload: domain.LeagueChangedPayload{
			AccountID: accountID,
			OldLeague: oldLeague,
			NewLeague: newLeague,
			CrateType: crateType,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBattleRecordedEvent creates a battle.recorded event
func NewBattleRecordedEvent(accountID string, isWin bool, trophyDelta, league int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BattleRecorded,
		Payload: domain.BattleRecordedPayload{
			AccountID:   accountID,
			IsWin:       isWin,
			TrophyDelta: trophyDelta,
			League:      league,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"outcome": outcomeLabel(isWin),
		},
	}
}

func outcomeLabel(isWin bool) string {
	if isWin {
		return OutcomeWin
	}
	return OutcomeLoss
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the fire-and-forget side used by services
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously in subscription order.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
