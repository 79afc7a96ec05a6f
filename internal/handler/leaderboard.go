package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/player"
)

// LeaderboardHandler serves ranking and league table endpoints
type LeaderboardHandler struct {
	players player.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(players player.Service) *LeaderboardHandler {
	return &LeaderboardHandler{players: players}
}

// LeaderboardResponse lists ranked profiles
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// LeagueTableResponse lists every assignable tier
type LeagueTableResponse struct {
	Tiers []league.TierInfo `json:"tiers"`
}

// HandleGetLeaderboard ranks profiles by trophies then level
// @Summary Leaderboard
// @Tags league
// @Produce json
// @Param limit query int false "Number of entries (1-100, default 10)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", strconv.Itoa(domain.DefaultLeaderboardLimit)))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	entries, err := h.players.GetLeaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
}

// HandleGetLeagueTable returns thresholds, trophy deltas and crates per tier
// @Summary League table
// @Tags league
// @Produce json
// @Success 200 {object} LeagueTableResponse
// @Router /league [get]
func (h *LeaderboardHandler) HandleGetLeagueTable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LeagueTableResponse{Tiers: h.players.LeagueTable().Tiers()})
}
