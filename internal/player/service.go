package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/repository"
	"github.com/osse101/HeroArena_Go/internal/reward"
)

// Service defines the progression engine operations
type Service interface {
	CreateProfile(ctx context.Context, accountID, name string) (*domain.UserProfile, error)
	RecordBattleResult(ctx context.Context, accountID string, isWin bool) (*domain.BattleOutcome, error)

	GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	GetLeagueDistribution(ctx context.Context) (map[int]int, error)
	LeagueTable() *league.Table
	GetCacheStats() CacheStats

	// InvalidateProfile drops the cached profile after another service commits to it
	InvalidateProfile(accountID string)
}

var _ reward.ProfileInvalidator = Service(nil)

type service struct {
	repo      repository.Progression
	table     *league.Table
	locks     *concurrency.LockManager
	publisher event.Publisher
	cache     *profileCache
	now       func() time.Time
}

// NewService creates a new progression engine service.
// locks must be shared with the reward ledger so both serialize the same accounts.
func NewService(repo repository.Progression, table *league.Table, locks *concurrency.LockManager, publisher event.Publisher, cacheConfig CacheConfig) Service {
	if cacheConfig.Size <= 0 {
		cacheConfig.Size = DefaultCacheSize
	}
	if cacheConfig.TTL <= 0 {
		cacheConfig.TTL = DefaultCacheTTL
	}
	return &service{
		repo:      repo,
		table:     table,
		locks:     locks,
		publisher: publisher,
		cache:     newProfileCache(cacheConfig),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateProfile initializes a profile and mints its starter hero at level 1
func (s *service) CreateProfile(ctx context.Context, accountID, name string) (*domain.UserProfile, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(accountID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	profile := domain.NewUserProfile(accountID, name, now)
	if err := tx.InsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsert, err)
	}

	starter, err := reward.Mint(ctx, tx, profile, domain.StartingMintLevel, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToMintStarter, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	s.cache.Set(profile)

	log.Info(LogMsgProfileCreated, "account_id", accountID, "starter_token", starter.TokenID)

	s.publish(ctx,
		event.NewProfileCreatedEvent(accountID, name),
		event.NewNFTMintedEvent(accountID, starter.TokenID, starter.LevelMinted),
	)

	return profile.Clone(), nil
}

// RecordBattleResult applies one battle to the account and reports every step
func (s *service) RecordBattleResult(ctx context.Context, accountID string, isWin bool) (*domain.BattleOutcome, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(accountID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadProfile, err)
	}

	now := s.now()
	outcome := ApplyBattle(profile, s.table, isWin)
	profile.UpdatedAt = now

	if outcome.LeagueChanged() {
		crate, idx, err := reward.AwardCrate(ctx, tx, s.table, accountID, outcome.NewLeague, now)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToAwardCrate, err)
		}
		outcome.CrateAwarded = &crate
		outcome.CrateIndex = idx
	}

	if err := tx.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveProfile, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	s.cache.Set(profile)

	log.Info(LogMsgBattleRecorded,
		"account_id", accountID,
		"is_win", isWin,
		"trophies", profile.Trophies,
		"level", profile.Level,
		"league", profile.League)

	events := make([]event.Event, 0, len(outcome.LevelUps)+3)
	for _, up := range outcome.LevelUps {
		log.Debug(LogMsgLevelUp, "account_id", accountID, "level", up.Level, "multiplier", up.Multiplier)
		events = append(events, event.NewLevelUpEvent(accountID, up.Level, up.Multiplier))
	}
	if outcome.CrateAwarded != nil {
		log.Info(LogMsgLeagueChanged,
			"account_id", accountID,
			"old_league", outcome.OldLeague,
			"new_league", outcome.NewLeague)
		events = append(events,
			event.NewLeagueChangedEvent(accountID, outcome.OldLeague, outcome.NewLeague, outcome.CrateAwarded.Type),
			event.NewCrateAwardedEvent(accountID, outcome.CrateAwarded.Type, outcome.CrateAwarded.Rarity, outcome.NewLeague),
		)
	}
	events = append(events, event.NewBattleRecordedEvent(accountID, isWin, outcome.TrophyDelta, outcome.NewLeague))
	s.publish(ctx, events...)

	outcome.Profile = profile.Clone()
	return &outcome, nil
}

// GetProfile returns the committed profile, served from cache when warm.
// A miss fills the cache under the account lock so a concurrent write cannot be overwritten by an older read.
func (s *service) GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error) {
	if p, ok := s.cache.Get(accountID); ok {
		return p, nil
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	p, err := s.repo.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)
	return p, nil
}

// GetLeaderboard ranks profiles by trophies, then level. limit is clamped to [1, 100].
func (s *service) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	if limit > domain.MaxLeaderboardLimit {
		limit = domain.MaxLeaderboardLimit
	}

	profiles, err := s.repo.GetTopProfiles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadTop, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(profiles))
	for i, p := range profiles {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:      i + 1,
			AccountID: p.AccountID,
			Name:      p.Name,
			Trophies:  p.Trophies,
			Level:     p.Level,
			League:    p.League,
		})
	}
	return entries, nil
}

// GetLeagueDistribution returns profile counts for every tier, zero-filled
func (s *service) GetLeagueDistribution(ctx context.Context) (map[int]int, error) {
	counts, err := s.repo.CountProfilesByLeague(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCountLeagues, err)
	}

	out := make(map[int]int, s.table.MaxLeague())
	for tier := 1; tier <= s.table.MaxLeague(); tier++ {
		out[tier] = counts[tier]
	}
	return out, nil
}

// LeagueTable returns the shared league configuration
func (s *service) LeagueTable() *league.Table {
	return s.table
}

// GetCacheStats returns profile cache counters
func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

// InvalidateProfile drops the account's cache entry
func (s *service) InvalidateProfile(accountID string) {
	s.cache.Invalidate(accountID)
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
