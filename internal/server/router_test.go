package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/auth"
	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/database/memory"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/handler"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/metrics"
	"github.com/osse101/HeroArena_Go/internal/player"
	"github.com/osse101/HeroArena_Go/internal/reward"
)

const (
	testAPIKey = "test-key"
	testOwner  = "owner-1"
)

type testAPI struct {
	t      *testing.T
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	captureLogs(t)

	store := memory.NewStore()
	locks := concurrency.NewLockManager()

	bus := event.NewMemoryBus()
	history := eventlog.NewService(memory.NewEventLog())
	require.NoError(t, history.Subscribe(bus))
	publisher, err := event.NewResilientPublisher(bus, 1, time.Millisecond, filepath.Join(t.TempDir(), "deadletter.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	players := player.NewService(store, league.DefaultTable(), locks, publisher, player.CacheConfig{})
	rewards := reward.NewService(store, locks, publisher, players)

	router := NewRouter(Options{
		APIKey:             testAPIKey,
		CORSAllowedOrigins: []string{"https://arena.example"},
	}, Services{
		Storage:  store,
		Players:  players,
		Rewards:  rewards,
		Guard:    auth.NewGuard(testOwner),
		History:  history,
		Snapshot: player.NewLeagueSnapshotJob(players, metrics.LeagueGauge{}),
	})
	return &testAPI{t: t, router: router}
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_ProgressionLifecycle(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/profiles", `{"account_id":"p1","name":"Hero"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[handler.ProfileResponse](t, rec)
	assert.Equal(t, 1, created.Profile.NFTsOwned)
	assert.Equal(t, league.TierPeasant, created.Profile.League)

	rec = api.do(http.MethodPost, "/api/v1/profiles", `{"account_id":"p1","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Seven wins at 15 trophies each crosses the Squire threshold of 100
	var last handler.BattleResponse
	for i := 0; i < 7; i++ {
		rec = api.do(http.MethodPost, "/api/v1/profiles/p1/battles", `{"is_win":true}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		last = decode[handler.BattleResponse](t, rec)
	}
	assert.Equal(t, league.TierSquire, last.Outcome.NewLeague)
	require.NotNil(t, last.Outcome.CrateAwarded)
	assert.Equal(t, "Rare", last.Outcome.CrateAwarded.Type)

	rec = api.do(http.MethodGet, "/api/v1/profiles/p1/crates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	crates := decode[handler.CratesResponse](t, rec)
	require.Len(t, crates.Crates, 1)
	assert.False(t, crates.Crates[0].Claimed)

	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/v1/profiles/p1/crates/0/claim", "").Code)
	assert.Equal(t, http.StatusConflict, api.do(http.MethodPost, "/api/v1/profiles/p1/crates/0/claim", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/v1/profiles/p1/crates/5/claim", "").Code)

	rec = api.do(http.MethodPost, "/api/v1/profiles/p1/nfts", `{"level":3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	minted := decode[handler.MintResponse](t, rec)
	assert.Equal(t, 3, minted.Stats.LevelMinted)

	rec = api.do(http.MethodGet, "/api/v1/profiles/p1/nfts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tokens := decode[handler.TokensResponse](t, rec)
	assert.Len(t, tokens.TokenIDs, 2)
	assert.Contains(t, tokens.TokenIDs, minted.Stats.TokenID)

	rec = api.do(http.MethodGet, "/api/v1/nfts/"+jsonNumber(minted.Stats.TokenID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_id":"p1"`)

	rec = api.do(http.MethodGet, "/api/v1/profiles/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[map[string]any](t, rec)
	assert.EqualValues(t, 2, profile["nfts_owned"])
	assert.EqualValues(t, 7, profile["battles_won"])

	rec = api.do(http.MethodGet, "/api/v1/leaderboard?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[handler.LeaderboardResponse](t, rec)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, "p1", board.Entries[0].AccountID)

	rec = api.do(http.MethodGet, "/api/v1/profiles/p1/events?limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	history := decode[handler.HistoryResponse](t, rec)
	require.Len(t, history.Events, 3)
	assert.Equal(t, string(event.NFTMinted), history.Events[0].EventType)
}

func TestRouter_NotFoundAndValidation(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/profiles/ghost", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/api/v1/profiles/ghost/battles", `{"is_win":true}`).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/profiles/ghost/crates", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/v1/nfts/999", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/v1/profiles", `{"account_id":"p2","name":""}`).Code)
}

func TestRouter_AdminRequiresOwner(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/v1/profiles", `{"account_id":"p1","name":"Hero"}`).Code)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/v1/admin/league/distribution", "").Code)
	assert.Equal(t, http.StatusForbidden,
		api.do(http.MethodGet, "/api/v1/admin/league/distribution", "", handler.HeaderAccountID, "p1").Code)

	rec := api.do(http.MethodGet, "/api/v1/admin/league/distribution", "", handler.HeaderAccountID, testOwner)
	require.Equal(t, http.StatusOK, rec.Code)
	dist := decode[handler.LeagueDistributionResponse](t, rec)
	assert.Equal(t, 1, dist.Total)
	assert.Equal(t, 1, dist.Tiers[0].Profiles)

	rec = api.do(http.MethodPost, "/api/v1/admin/league/snapshot", "", handler.HeaderAccountID, testOwner)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicPathsAndAuth(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/league", nil)
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodGet, "/api/v1/league", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_CORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/profiles", nil)
	req.Header.Set("Origin", "https://arena.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, "https://arena.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/profiles", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func jsonNumber(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
