package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/league"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/repository"
	"github.com/osse101/HeroArena_Go/internal/statcurve"
)

// AwardCrate appends the crate earned by moving into newLeague.
// It runs inside the caller's transaction and returns the crate with its index.
func AwardCrate(ctx context.Context, tx repository.ProgressionTx, table *league.Table, accountID string, newLeague int, now time.Time) (domain.Crate, int, error) {
	crateType, rarity := table.CrateFor(newLeague)
	crate := domain.Crate{
		Type:      crateType,
		Rarity:    rarity,
		League:    newLeague,
		Claimed:   false,
		AwardedAt: now,
	}

	idx, err := tx.AppendCrate(ctx, accountID, crate)
	if err != nil {
		return domain.Crate{}, 0, fmt.Errorf("%s: %w", ErrContextFailedToAppendCrate, err)
	}

	logger.FromContext(ctx).Info(LogMsgCrateAwarded,
		"account_id", accountID,
		"crate_type", crateType,
		"rarity", rarity,
		"index", idx)

	return crate, idx, nil
}

// Mint issues a new hero token for profile inside the caller's transaction.
// The profile's NFT count is incremented and persisted. atLevel is stored verbatim.
func Mint(ctx context.Context, tx repository.ProgressionTx, profile *domain.UserProfile, atLevel int, now time.Time) (domain.NFTStats, error) {
	var registry Registry = tx

	tokenID, err := registry.IssueIdentifier(ctx)
	if err != nil {
		return domain.NFTStats{}, fmt.Errorf("%s: %w", ErrContextFailedToIssueToken, err)
	}
	if err := registry.AssignOwner(ctx, tokenID, profile.AccountID); err != nil {
		return domain.NFTStats{}, fmt.Errorf("%s: %w", ErrContextFailedToAssignOwner, err)
	}

	stats := statcurve.StatsForLevel(atLevel)
	stats.TokenID = tokenID
	stats.OwnerID = profile.AccountID
	stats.MintedAt = now

	if err := tx.SaveNFTStats(ctx, stats); err != nil {
		return domain.NFTStats{}, fmt.Errorf("%s: %w", ErrContextFailedToSaveStats, err)
	}

	profile.NFTsOwned++
	profile.UpdatedAt = now
	if err := tx.UpdateProfile(ctx, profile); err != nil {
		return domain.NFTStats{}, fmt.Errorf("%s: %w", ErrContextFailedToSaveProfile, err)
	}

	logger.FromContext(ctx).Info(LogMsgNFTMinted,
		"account_id", profile.AccountID,
		"token_id", tokenID,
		"level", atLevel)

	return stats, nil
}
