package handler

import (
	"net/http"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/player"
)

// ProfileHandler serves profile lifecycle and battle endpoints
type ProfileHandler struct {
	players player.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(players player.Service) *ProfileHandler {
	return &ProfileHandler{players: players}
}

// CreateProfileRequest is the body of POST /profiles
type CreateProfileRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64,accountid"`
	Name      string `json:"name" validate:"max=32,excludesall=\x00\n\r\t"`
}

// ProfileResponse wraps a profile with a status message
type ProfileResponse struct {
	Message string              `json:"message,omitempty"`
	Profile *domain.UserProfile `json:"profile"`
}

// HandleCreateProfile creates a profile and mints its starter hero
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body CreateProfileRequest true "Profile details"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
		return
	}

	name := normalizeName(req.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyName)
		return
	}

	profile, err := h.players.CreateProfile(r.Context(), req.AccountID, name)
	if err != nil {
		respondServiceError(w, r, "Create profile", err)
		return
	}

	logger.FromContext(r.Context()).Info("Profile created", "account_id", profile.AccountID)
	respondJSON(w, http.StatusCreated, ProfileResponse{Message: MsgProfileCreated, Profile: profile})
}

// HandleGetProfile returns the committed profile of an account
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID} [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	profile, err := h.players.GetProfile(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// RecordBattleRequest is the body of POST /profiles/{accountID}/battles
type RecordBattleRequest struct {
	IsWin *bool `json:"is_win" validate:"required"`
}

// BattleResponse reports a recorded battle
type BattleResponse struct {
	Message string                `json:"message"`
	Outcome *domain.BattleOutcome `json:"outcome"`
}

// HandleRecordBattle applies a battle result to a profile
// @Summary Record battle result
// @Tags profiles
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body RecordBattleRequest true "Battle result"
// @Success 200 {object} BattleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID}/battles [post]
func (h *ProfileHandler) HandleRecordBattle(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	var req RecordBattleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record battle"); err != nil {
		return
	}

	outcome, err := h.players.RecordBattleResult(r.Context(), accountID, *req.IsWin)
	if err != nil {
		respondServiceError(w, r, "Record battle", err)
		return
	}

	logger.FromContext(r.Context()).Info("Battle recorded",
		"account_id", accountID,
		"is_win", outcome.IsWin,
		"level", outcome.NewLevel,
		"league", outcome.NewLeague)
	respondJSON(w, http.StatusOK, BattleResponse{Message: MsgBattleRecorded, Outcome: outcome})
}

// normalizeName trims and NFC-normalizes a display name
func normalizeName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}
