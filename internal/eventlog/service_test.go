package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/event"
)

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

	for _, et := range event.AllTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("typed payload is flattened and tagged with the account", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		evt := event.NewBattleRecordedEvent("p1", true, 15, 1)
		accountID := "p1"
		mockRepo.On("LogEvent", ctx, string(event.BattleRecorded), &accountID,
			mock.MatchedBy(func(p map[string]interface{}) bool {
				return p["account_id"] == "p1" && p["is_win"] == true && p["trophy_delta"] == float64(15)
			}),
			map[string]interface{}{"outcome": event.OutcomeWin},
		).Return(nil)

		require.NoError(t, svc.handleEvent(ctx, evt))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-object payload is skipped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		err := svc.handleEvent(ctx, event.Event{Type: event.LevelUp, Payload: 42})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)
		mockRepo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		err := svc.handleEvent(ctx, event.NewProfileCreatedEvent("p1", "Hero"))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_GetAccountHistory(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero selects default", 0, DefaultHistoryLimit},
		{"negative clamps to one", -4, 1},
		{"large clamps to max", 10_000, MaxHistoryLimit},
		{"in range passes through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("GetEventsByAccount", ctx, "p1", tt.wantLimit).Return([]Entry{{ID: 1}}, nil)

			entries, err := NewService(mockRepo).GetAccountHistory(ctx, "p1", tt.limit)
			require.NoError(t, err)
			assert.Len(t, entries, 1)
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetEventsByAccount", ctx, "p1", DefaultHistoryLimit).Return(nil, assert.AnError)

		_, err := NewService(mockRepo).GetAccountHistory(ctx, "p1", 0)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), ErrContextLoadHistory)
	})
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)

	count, err := service.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
