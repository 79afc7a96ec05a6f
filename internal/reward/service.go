package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HeroArena_Go/internal/concurrency"
	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/event"
	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/repository"
)

// Service defines the reward ledger operations
type Service interface {
	ClaimCrate(ctx context.Context, accountID string, index int) (*domain.Crate, error)
	MintNFT(ctx context.Context, accountID string, atLevel int) (*domain.NFTStats, error)

	GetCrates(ctx context.Context, accountID string) ([]domain.Crate, error)
	GetOwnedTokens(ctx context.Context, accountID string) ([]int64, error)
	GetNFT(ctx context.Context, tokenID int64) (*domain.NFTStats, error)
}

// ProfileInvalidator is told about every committed profile write made by the ledger
type ProfileInvalidator interface {
	InvalidateProfile(accountID string)
}

type service struct {
	repo        repository.Progression
	locks       *concurrency.LockManager
	publisher   event.Publisher
	invalidator ProfileInvalidator
	now         func() time.Time
}

// NewService creates a new reward ledger service.
// locks must be shared with every other service that writes the same accounts.
// invalidator may be nil when no profile cache sits in front of repo.
func NewService(repo repository.Progression, locks *concurrency.LockManager, publisher event.Publisher, invalidator ProfileInvalidator) Service {
	return &service{
		repo:        repo,
		locks:       locks,
		publisher:   publisher,
		invalidator: invalidator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ClaimCrate marks the crate at index claimed. It does not open the crate.
func (s *service) ClaimCrate(ctx context.Context, accountID string, index int) (*domain.Crate, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(accountID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetProfileForUpdate(ctx, accountID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadProfile, err)
	}

	crates, err := tx.GetCratesForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadCrates, err)
	}
	if index < 0 || index >= len(crates) {
		return nil, domain.ErrBadIndex
	}
	if crates[index].Claimed {
		return nil, domain.ErrAlreadyClaimed
	}

	if err := tx.MarkCrateClaimed(ctx, accountID, index); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToClaimCrate, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	crate := crates[index]
	crate.Claimed = true

	log.Info(LogMsgCrateClaimed, "account_id", accountID, "index", index, "crate_type", crate.Type)
	s.publish(ctx, event.NewCrateClaimedEvent(accountID, index, crate.Type))

	return &crate, nil
}

// MintNFT mints a hero token at atLevel for an existing profile.
// atLevel is not checked against the profile's current level.
func (s *service) MintNFT(ctx context.Context, accountID string, atLevel int) (*domain.NFTStats, error) {
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

	stats, err := Mint(ctx, tx, profile, atLevel, s.now())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateProfile(accountID)
	}

	s.publish(ctx, event.NewNFTMintedEvent(accountID, stats.TokenID, stats.LevelMinted))
	return &stats, nil
}

// GetCrates returns the account's crates in award order
func (s *service) GetCrates(ctx context.Context, accountID string) ([]domain.Crate, error) {
	if _, err := s.repo.GetProfile(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.GetCrates(ctx, accountID)
}

// GetOwnedTokens returns the account's token ids in mint order
func (s *service) GetOwnedTokens(ctx context.Context, accountID string) ([]int64, error) {
	if _, err := s.repo.GetProfile(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.GetOwnedTokens(ctx, accountID)
}

// GetNFT returns the stats of a minted token
func (s *service) GetNFT(ctx context.Context, tokenID int64) (*domain.NFTStats, error) {
	return s.repo.GetNFTStats(ctx, tokenID)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
