package handler

import (
	"context"
	"net/http"

	"github.com/osse101/HeroArena_Go/internal/auth"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/player"
)

// SnapshotJob records the current league distribution on demand
type SnapshotJob interface {
	Process(ctx context.Context) error
}

// AdminHandler serves owner-only operational endpoints
type AdminHandler struct {
	players  player.Service
	guard    *auth.Guard
	snapshot SnapshotJob
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(players player.Service, guard *auth.Guard, snapshot SnapshotJob) *AdminHandler {
	return &AdminHandler{players: players, guard: guard, snapshot: snapshot}
}

// LeagueDistributionEntry is one tier of the distribution report
type LeagueDistributionEntry struct {
	Tier     int    `json:"tier"`
	Name     string `json:"name"`
	Profiles int    `json:"profiles"`
}

// LeagueDistributionResponse lists profile counts for every tier
type LeagueDistributionResponse struct {
	Tiers []LeagueDistributionEntry `json:"tiers"`
	Total int                       `json:"total"`
}

// RequireOwner rejects requests whose X-Account-ID is not the configured owner
func (h *AdminHandler) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := r.Header.Get(HeaderAccountID)
		if caller == "" {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingCaller)
			return
		}
		if err := h.guard.Authorize(caller); err != nil {
			logger.FromContext(r.Context()).Warn("Admin access denied", "caller", caller, "path", r.URL.Path)
			respondServiceError(w, r, "Admin access", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleGetLeagueDistribution returns profile counts per tier
// @Summary League distribution
// @Tags admin
// @Produce json
// @Param X-Account-ID header string true "Owner account"
// @Success 200 {object} LeagueDistributionResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/league/distribution [get]
func (h *AdminHandler) HandleGetLeagueDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.players.GetLeagueDistribution(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get league distribution", err)
		return
	}

	table := h.players.LeagueTable()
	resp := LeagueDistributionResponse{Tiers: make([]LeagueDistributionEntry, 0, table.MaxLeague())}
	for tier := 1; tier <= table.MaxLeague(); tier++ {
		resp.Tiers = append(resp.Tiers, LeagueDistributionEntry{
			Tier:     tier,
			Name:     table.TierName(tier),
			Profiles: counts[tier],
		})
		resp.Total += counts[tier]
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleRecordSnapshot exports the league distribution to metrics immediately
// @Summary Record league snapshot
// @Tags admin
// @Produce json
// @Param X-Account-ID header string true "Owner account"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/league/snapshot [post]
func (h *AdminHandler) HandleRecordSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshot.Process(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgSnapshotFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSnapshotFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSnapshotRecorded})
}

// HandleGetCacheStats returns profile cache counters
// @Summary Profile cache stats
// @Tags admin
// @Produce json
// @Param X-Account-ID header string true "Owner account"
// @Success 200 {object} player.CacheStats
// @Router /admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.players.GetCacheStats())
}
