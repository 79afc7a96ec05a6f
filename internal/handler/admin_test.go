package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/auth"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/player"
)

const ownerAccount = "owner-1"

func newAdminRouter(players *MockPlayerService, job *MockSnapshotJob) http.Handler {
	h := NewAdminHandler(players, auth.NewGuard(ownerAccount), job)
	r := chi.NewRouter()
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireOwner)
		r.Get("/league/distribution", h.HandleGetLeagueDistribution)
		r.Post("/league/snapshot", h.HandleRecordSnapshot)
		r.Get("/cache/stats", h.HandleGetCacheStats)
	})
	return r
}

func adminRequest(method, target, caller string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if caller != "" {
		req.Header.Set(HeaderAccountID, caller)
	}
	return req
}

func TestAdmin_RequireOwner(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"other account", "player-2", http.StatusForbidden},
		{"owner", ownerAccount, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := &MockPlayerService{}
			players.On("GetCacheStats").Return(player.CacheStats{Hits: 3, Misses: 1, Size: 2}).Maybe()

			w := httptest.NewRecorder()
			newAdminRouter(players, &MockSnapshotJob{}).ServeHTTP(w, adminRequest(http.MethodGet, "/admin/cache/stats", tt.caller))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"hits":3`)
			} else {
				players.AssertNotCalled(t, "GetCacheStats")
			}
		})
	}
}

func TestAdmin_LeagueDistribution(t *testing.T) {
	players := &MockPlayerService{}
	players.On("GetLeagueDistribution", mock.Anything).
		Return(map[int]int{1: 5, 2: 3, 3: 0, 4: 1, 5: 0, 6: 0}, nil)
	players.On("LeagueTable").Return(league.DefaultTable())

	w := httptest.NewRecorder()
	newAdminRouter(players, &MockSnapshotJob{}).
		ServeHTTP(w, adminRequest(http.MethodGet, "/admin/league/distribution", ownerAccount))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LeagueDistributionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.Total)
	require.Len(t, resp.Tiers, league.MaxLeague)
	assert.Equal(t, LeagueDistributionEntry{Tier: 1, Name: "Peasant", Profiles: 5}, resp.Tiers[0])
	assert.Equal(t, 0, resp.Tiers[5].Profiles)
}

func TestAdmin_RecordSnapshot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		job := &MockSnapshotJob{}
		job.On("Process", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		newAdminRouter(&MockPlayerService{}, job).
			ServeHTTP(w, adminRequest(http.MethodPost, "/admin/league/snapshot", ownerAccount))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgSnapshotRecorded)
		job.AssertExpectations(t)
	})

	t.Run("job failure", func(t *testing.T) {
		job := &MockSnapshotJob{}
		job.On("Process", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		newAdminRouter(&MockPlayerService{}, job).
			ServeHTTP(w, adminRequest(http.MethodPost, "/admin/league/snapshot", ownerAccount))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSnapshotFailed)
	})

	t.Run("non-owner never runs the job", func(t *testing.T) {
		job := &MockSnapshotJob{}

		w := httptest.NewRecorder()
		newAdminRouter(&MockPlayerService{}, job).
			ServeHTTP(w, adminRequest(http.MethodPost, "/admin/league/snapshot", "intruder"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		job.AssertNotCalled(t, "Process", mock.Anything)
	})
}
