package handler

import (
	"net/http"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/reward"
)

// RewardHandler serves crate and hero token endpoints
type RewardHandler struct {
	rewards reward.Service
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewards reward.Service) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

// CratesResponse lists an account's crates in award order
type CratesResponse struct {
	AccountID string         `json:"account_id"`
	Crates    []domain.Crate `json:"crates"`
}

// ClaimCrateResponse reports a claimed crate
type ClaimCrateResponse struct {
	Message string        `json:"message"`
	Index   int           `json:"index"`
	Crate   *domain.Crate `json:"crate"`
}

// MintRequest is the body of POST /profiles/{accountID}/nfts
type MintRequest struct {
	Level int `json:"level" validate:"min=1,max=100"`
}

// MintResponse reports a freshly minted hero
type MintResponse struct {
	Message string           `json:"message"`
	Stats   *domain.NFTStats `json:"stats"`
}

// TokensResponse lists the token ids an account owns
type TokensResponse struct {
	AccountID string  `json:"account_id"`
	TokenIDs  []int64 `json:"token_ids"`
}

// HandleGetCrates lists every crate of an account
// @Summary List crates
// @Tags rewards
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} CratesResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID}/crates [get]
func (h *RewardHandler) HandleGetCrates(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	crates, err := h.rewards.GetCrates(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, "Get crates", err)
		return
	}
	if crates == nil {
		crates = []domain.Crate{}
	}
	respondJSON(w, http.StatusOK, CratesResponse{AccountID: accountID, Crates: crates})
}

// HandleClaimCrate claims the crate at {index}
// @Summary Claim crate
// @Tags rewards
// @Produce json
// @Param accountID path string true "Account ID"
// @Param index path int true "Crate index"
// @Success 200 {object} ClaimCrateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /profiles/{accountID}/crates/{index}/claim [post]
func (h *RewardHandler) HandleClaimCrate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}
	index, ok := getIntParam(w, r, "index", "crate index")
	if !ok {
		return
	}

	crate, err := h.rewards.ClaimCrate(r.Context(), accountID, int(index))
	if err != nil {
		respondServiceError(w, r, "Claim crate", err)
		return
	}

	logger.FromContext(r.Context()).Info("Crate claimed", "account_id", accountID, "index", index, "type", crate.Type)
	respondJSON(w, http.StatusOK, ClaimCrateResponse{Message: MsgCrateClaimed, Index: int(index), Crate: crate})
}

// HandleMintNFT mints a hero token at the requested level
// @Summary Mint hero
// @Tags rewards
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param request body MintRequest true "Mint level"
// @Success 201 {object} MintResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID}/nfts [post]
func (h *RewardHandler) HandleMintNFT(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	var req MintRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mint hero"); err != nil {
		return
	}

	stats, err := h.rewards.MintNFT(r.Context(), accountID, req.Level)
	if err != nil {
		respondServiceError(w, r, "Mint hero", err)
		return
	}

	logger.FromContext(r.Context()).Info("Hero minted", "account_id", accountID, "token_id", stats.TokenID)
	respondJSON(w, http.StatusCreated, MintResponse{Message: MsgNFTMinted, Stats: stats})
}

// HandleGetOwnedTokens lists the hero tokens an account owns
// @Summary List owned heroes
// @Tags rewards
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} TokensResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{accountID}/nfts [get]
func (h *RewardHandler) HandleGetOwnedTokens(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDParam(w, r)
	if !ok {
		return
	}

	tokens, err := h.rewards.GetOwnedTokens(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, "Get owned heroes", err)
		return
	}
	if tokens == nil {
		tokens = []int64{}
	}
	respondJSON(w, http.StatusOK, TokensResponse{AccountID: accountID, TokenIDs: tokens})
}

// HandleGetNFT returns the stats of one hero token
// @Summary Get hero stats
// @Tags rewards
// @Produce json
// @Param tokenID path int true "Token ID"
// @Success 200 {object} domain.NFTStats
// @Failure 404 {object} ErrorResponse
// @Router /nfts/{tokenID} [get]
func (h *RewardHandler) HandleGetNFT(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := getIntParam(w, r, "tokenID", "token id")
	if !ok {
		return
	}

	stats, err := h.rewards.GetNFT(r.Context(), tokenID)
	if err != nil {
		respondServiceError(w, r, "Get hero", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
