package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/HeroArena_Go/internal/eventlog"
	"github.com/osse101/HeroArena_Go/internal/player"
)

// HistoryHandler serves the per-account event history
type HistoryHandler struct {
	players player.Service
	history eventlog.Service
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(players player.Service, history eventlog.Service) *HistoryHandler {
	return &HistoryHandler{players: players, history: history}
}

// HistoryResponse lists events newest first
type HistoryResponse struct {
	AccountID string           `json:"account_id"`
	Events    []eventlog.Entry `json:"events"`
}

// HandleGetHistory returns recent progression events for a profile
// @Summary Event history
// @Tags profiles
// @Produce json
// @Param accountID path string true "Account ID"
// @Param limit query int false "Number of events (1-200, default 50)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID}/events [get]
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	if _, err := h.players.GetProfile(r.Context(), accountID); err != nil {
		respondServiceError(w, r, "Get history", err)
		return
	}

	entries, err := h.history.GetAccountHistory(r.Context(), accountID, limit)
	if err != nil {
		respondServiceError(w, r, "Get history", err)
		return
	}
	if entries == nil {
		entries = []eventlog.Entry{}
	}
	respondJSON(w, http.StatusOK, HistoryResponse{AccountID: accountID, Events: entries})
}
