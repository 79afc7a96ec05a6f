package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/player"
)

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) CreateProfile(ctx context.Context, accountID, name string) (*domain.UserProfile, error) {
	args := m.Called(ctx, accountID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockPlayerService) RecordBattleResult(ctx context.Context, accountID string, isWin bool) (*domain.BattleOutcome, error) {
	args := m.Called(ctx, accountID, isWin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BattleOutcome), args.Error(1)
}

func (m *MockPlayerService) GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockPlayerService) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockPlayerService) GetLeagueDistribution(ctx context.Context) (map[int]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *MockPlayerService) LeagueTable() *league.Table {
	args := m.Called()
	return args.Get(0).(*league.Table)
}

func (m *MockPlayerService) GetCacheStats() player.CacheStats {
	args := m.Called()
	return args.Get(0).(player.CacheStats)
}

func (m *MockPlayerService) InvalidateProfile(accountID string) {
	m.Called(accountID)
}

// MockRewardService mocks reward.Service
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) ClaimCrate(ctx context.Context, accountID string, index int) (*domain.Crate, error) {
	args := m.Called(ctx, accountID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crate), args.Error(1)
}

func (m *MockRewardService) MintNFT(ctx context.Context, accountID string, atLevel int) (*domain.NFTStats, error) {
	args := m.Called(ctx, accountID, atLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NFTStats), args.Error(1)
}

func (m *MockRewardService) GetCrates(ctx context.Context, accountID string) ([]domain.Crate, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crate), args.Error(1)
}

func (m *MockRewardService) GetOwnedTokens(ctx context.Context, accountID string) ([]int64, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRewardService) GetNFT(ctx context.Context, tokenID int64) (*domain.NFTStats, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NFTStats), args.Error(1)
}

// MockHistoryService mocks eventlog.Service
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockHistoryService) GetAccountHistory(ctx context.Context, accountID string, limit int) ([]eventlog.Entry, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Entry), args.Error(1)
}

func (m *MockHistoryService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockSnapshotJob mocks SnapshotJob
type MockSnapshotJob struct {
	mock.Mock
}

func (m *MockSnapshotJob) Process(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// serveRoute mounts h at pattern on a chi router so URL params resolve, then serves one request
func serveRoute(method, pattern, target string, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
