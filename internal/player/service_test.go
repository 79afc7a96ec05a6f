package player

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/database/memory"
	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/repository"
	"github.com/osse101/HeroArena_Go/internal/reward"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// crateFailRepo opens transactions whose AppendCrate always fails
type crateFailRepo struct {
	repository.Progression
}

func (r crateFailRepo) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	tx, err := r.Progression.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return crateFailTx{tx}, nil
}

type crateFailTx struct {
	repository.ProgressionTx
}

func (crateFailTx) AppendCrate(context.Context, string, domain.Crate) (int, error) {
	return 0, errors.New("write failed")
}

type fixture struct {
	store *memory.Store
	pub   *recordingPublisher
	svc   Service
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	pub := &recordingPublisher{}
	return &fixture{
		store: store,
		pub:   pub,
		svc:   NewService(store, league.DefaultTable(), concurrency.NewLockManager(), pub, CacheConfig{}),
		ctx:   context.Background(),
	}
}

func TestCreateProfile(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 10, p.Experience)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.Trophies)
	assert.Equal(t, 1, p.League)
	assert.Equal(t, 10, p.BattleMultiplier)
	assert.Equal(t, 1, p.NFTsOwned, "starter hero is minted on creation")
	assert.True(t, p.Exists)

	tokens, err := f.store.GetOwnedTokens(f.ctx, "a")
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	stats, err := f.store.GetNFTStats(f.ctx, tokens[0])
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LevelMinted)
	assert.Equal(t, 5, stats.Attack)
	assert.Equal(t, 20, stats.HitPoints)

	assert.Equal(t, []event.Type{event.ProfileCreated, event.NFTMinted}, f.pub.types())
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)
	f.pub.reset()

	_, err = f.svc.CreateProfile(f.ctx, "a", "Someone Else")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Empty(t, f.pub.types())

	p, err := f.svc.GetProfile(f.ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name, "name is immutable once set")
	assert.Equal(t, 1, p.NFTsOwned)
}

func TestRecordBattleResult_ProfileNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.RecordBattleResult(f.ctx, "ghost", true)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Empty(t, f.pub.types())
}

func TestRecordBattleResult_TenWins(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)
	f.pub.reset()

	var crateOutcomes []*domain.BattleOutcome
	for i := 1; i <= 10; i++ {
		out, err := f.svc.RecordBattleResult(f.ctx, "a", true)
		require.NoError(t, err)
		assert.Equal(t, 15*i, out.Profile.Trophies)
		if out.CrateAwarded != nil {
			crateOutcomes = append(crateOutcomes, out)
		}
	}

	require.Len(t, crateOutcomes, 1, "exactly one crate per tier change")
	promo := crateOutcomes[0]
	assert.Equal(t, 105, promo.Profile.Trophies)
	assert.Equal(t, 1, promo.OldLeague)
	assert.Equal(t, 2, promo.NewLeague)
	assert.Equal(t, "Rare", promo.CrateAwarded.Type)
	assert.Equal(t, 1, promo.CrateAwarded.Rarity)
	assert.Equal(t, 0, promo.CrateIndex)

	p, err := f.svc.GetProfile(f.ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 150, p.Trophies)
	assert.Equal(t, 2, p.League)
	assert.Equal(t, 10, p.BattlesWon)

	crates, err := f.store.GetCrates(f.ctx, "a")
	require.NoError(t, err)
	require.Len(t, crates, 1)
	assert.False(t, crates[0].Claimed)

	types := f.pub.types()
	count := func(want event.Type) int {
		n := 0
		for _, typ := range types {
			if typ == want {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 10, count(event.BattleRecorded))
	assert.Equal(t, 1, count(event.LeagueChanged))
	assert.Equal(t, 1, count(event.CrateAwarded))
	assert.Equal(t, 4, count(event.LevelUp))
}

func TestRecordBattleResult_LevelUpEventsInOrder(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	// seed enough experience to cross several levels in one battle
	tx, err := f.store.BeginTx(f.ctx)
	require.NoError(t, err)
	p, err := tx.GetProfileForUpdate(f.ctx, "a")
	require.NoError(t, err)
	p.Experience = 55
	require.NoError(t, tx.UpdateProfile(f.ctx, p))
	require.NoError(t, tx.Commit(f.ctx))
	f.pub.reset()

	out, err := f.svc.RecordBattleResult(f.ctx, "a", false)
	require.NoError(t, err)

	// 55 + 7 = 62 crosses levels 2, 3 and 4
	assert.Equal(t, []domain.LevelUp{
		{Level: 2, Multiplier: 11},
		{Level: 3, Multiplier: 12},
		{Level: 4, Multiplier: 13},
	}, out.LevelUps)

	var levels []int
	for _, e := range f.pub.events {
		if e.Type == event.LevelUp {
			levels = append(levels, e.Payload.(domain.LevelUpPayload).NewLevel)
		}
	}
	assert.Equal(t, []int{2, 3, 4}, levels)
}

func TestRecordBattleResult_LossClampsAtZero(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	out, err := f.svc.RecordBattleResult(f.ctx, "a", false)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Profile.Trophies)
	assert.Equal(t, 0, out.TrophyDelta)
	assert.Nil(t, out.CrateAwarded)
}

func TestRecordBattleResult_DemotionAwardsCrate(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		_, err := f.svc.RecordBattleResult(f.ctx, "a", true)
		require.NoError(t, err)
	}

	out, err := f.svc.RecordBattleResult(f.ctx, "a", false)
	require.NoError(t, err)
	assert.Equal(t, 98, out.Profile.Trophies)
	assert.Equal(t, 1, out.NewLeague)
	require.NotNil(t, out.CrateAwarded)
	assert.Equal(t, "Basic", out.CrateAwarded.Type)
	assert.Equal(t, 1, out.CrateIndex)

	crates, err := f.store.GetCrates(f.ctx, "a")
	require.NoError(t, err)
	assert.Len(t, crates, 2)
}

func TestRecordBattleResult_FailureRollsBack(t *testing.T) {
	store := memory.NewStore()
	pub := &recordingPublisher{}
	locks := concurrency.NewLockManager()
	good := NewService(store, league.DefaultTable(), locks, pub, CacheConfig{})
	bad := NewService(crateFailRepo{store}, league.DefaultTable(), locks, pub, CacheConfig{})
	ctx := context.Background()

	_, err := good.CreateProfile(ctx, "a", "Ada")
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err := good.RecordBattleResult(ctx, "a", true)
		require.NoError(t, err)
	}
	pub.reset()

	// the seventh win promotes, and the crate write fails
	_, err = bad.RecordBattleResult(ctx, "a", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToAwardCrate)

	p, err := store.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 90, p.Trophies)
	assert.Equal(t, 1, p.League)
	assert.Equal(t, 6, p.BattlesWon)
	assert.Empty(t, pub.types())
}

func TestRecordBattleResult_ConcurrentBattlesSerialize(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	const battles = 40
	var wg sync.WaitGroup
	for i := 0; i < battles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.RecordBattleResult(f.ctx, "a", true); err != nil {
				t.Errorf("battle: %v", err)
			}
		}()
	}
	wg.Wait()

	p, err := f.svc.GetProfile(f.ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, battles, p.BattlesWon)
}

func TestGetProfile_CacheTracksWrites(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetProfile(f.ctx, "a")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	_, err = f.svc.RecordBattleResult(f.ctx, "a", true)
	require.NoError(t, err)

	p, err := f.svc.GetProfile(f.ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Trophies)
}

func TestGetProfile_CacheTracksLedgerMints(t *testing.T) {
	store := memory.NewStore()
	locks := concurrency.NewLockManager()
	players := NewService(store, league.DefaultTable(), locks, nil, CacheConfig{})
	ledger := reward.NewService(store, locks, nil, players)
	ctx := context.Background()

	_, err := players.CreateProfile(ctx, "a", "Ada")
	require.NoError(t, err)

	// warm the cache before the cross-service write
	p, err := players.GetProfile(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 1, p.NFTsOwned)

	_, err = ledger.MintNFT(ctx, "a", 5)
	require.NoError(t, err)

	p, err = players.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, p.NFTsOwned)

	stored, err := store.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, stored.NFTsOwned, p.NFTsOwned)
}

func TestMintThroughLedgerSharesLocks(t *testing.T) {
	store := memory.NewStore()
	locks := concurrency.NewLockManager()
	players := NewService(store, league.DefaultTable(), locks, nil, CacheConfig{})
	ledger := reward.NewService(store, locks, nil, players)
	ctx := context.Background()

	_, err := players.CreateProfile(ctx, "a", "Ada")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = players.RecordBattleResult(ctx, "a", true)
		}()
		go func() {
			defer wg.Done()
			_, _ = ledger.MintNFT(ctx, "a", 3)
		}()
	}
	wg.Wait()

	p, err := store.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 10, p.BattlesWon)
	assert.Equal(t, 11, p.NFTsOwned)

	cached, err := players.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, p.NFTsOwned, cached.NFTsOwned)
	assert.Equal(t, p.BattlesWon, cached.BattlesWon)
}

func TestGetLeaderboard(t *testing.T) {
	f := newFixture(t)
	for _, id := range []string{"a", "b", "c"} {
		_, err := f.svc.CreateProfile(f.ctx, id, "Player "+id)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := f.svc.RecordBattleResult(f.ctx, "b", true)
		require.NoError(t, err)
	}
	_, err := f.svc.RecordBattleResult(f.ctx, "c", true)
	require.NoError(t, err)

	board, err := f.svc.GetLeaderboard(f.ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "b", board[0].AccountID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, 45, board[0].Trophies)
	assert.Equal(t, "c", board[1].AccountID)
	assert.Equal(t, "a", board[2].AccountID)

	top, err := f.svc.GetLeaderboard(f.ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestGetLeagueDistribution(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateProfile(f.ctx, "a", "Ada")
	require.NoError(t, err)

	dist, err := f.svc.GetLeagueDistribution(f.ctx)
	require.NoError(t, err)
	assert.Len(t, dist, 6)
	assert.Equal(t, 1, dist[1])
	assert.Equal(t, 0, dist[6])
}
