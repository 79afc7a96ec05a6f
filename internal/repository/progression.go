package repository

import (
	"context"

	"github.com/osse101/HeroArena_Go/internal/domain"
)

// Progression defines read access to player progression state and opens transactions
type Progression interface {
	GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error)
	GetCrates(ctx context.Context, accountID string) ([]domain.Crate, error)
	GetOwnedTokens(ctx context.Context, accountID string) ([]int64, error)
	GetNFTStats(ctx context.Context, tokenID int64) (*domain.NFTStats, error)
	GetTopProfiles(ctx context.Context, limit int) ([]domain.UserProfile, error)
	CountProfilesByLeague(ctx context.Context) (map[int]int, error)
	Ping(ctx context.Context) error
	BeginTx(ctx context.Context) (ProgressionTx, error)
}

// ProgressionTx groups every write of a single operation.
// Nothing is visible to readers until Commit; Rollback discards all writes.
type ProgressionTx interface {
	GetProfileForUpdate(ctx context.Context, accountID string) (*domain.UserProfile, error)
	InsertProfile(ctx context.Context, profile *domain.UserProfile) error
	UpdateProfile(ctx context.Context, profile *domain.UserProfile) error

	GetCratesForUpdate(ctx context.Context, accountID string) ([]domain.Crate, error)
	AppendCrate(ctx context.Context, accountID string, crate domain.Crate) (int, error)
	MarkCrateClaimed(ctx context.Context, accountID string, index int) error

	IssueIdentifier(ctx context.Context) (int64, error)
	AssignOwner(ctx context.Context, tokenID int64, accountID string) error
	SaveNFTStats(ctx context.Context, stats domain.NFTStats) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
