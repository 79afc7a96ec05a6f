package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HeroArena_Go/internal/database/generated"
	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/repository"
)

var _ repository.Progression = (*ProgressionRepository)(nil)

// ProgressionRepository implements repository.Progression for PostgreSQL
type ProgressionRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(pool *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetProfile retrieves a profile by account id
func (r *ProgressionRepository) GetProfile(ctx context.Context, accountID string) (*domain.UserProfile, error) {
	row, err := r.q.GetProfile(ctx, accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return toDomainProfile(row), nil
}

// GetCrates returns the account's crates in award order
func (r *ProgressionRepository) GetCrates(ctx context.Context, accountID string) ([]domain.Crate, error) {
	rows, err := r.q.GetCrates(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCrates, err)
	}

	crates := make([]domain.Crate, 0, len(rows))
	for _, row := range rows {
		crates = append(crates, domain.Crate{
			Type:      row.CrateType,
			Rarity:    int(row.Rarity),
			League:    int(row.League),
			Claimed:   row.Claimed,
			AwardedAt: row.AwardedAt.Time,
		})
	}
	return crates, nil
}

// GetOwnedTokens returns the account's token ids in mint order
func (r *ProgressionRepository) GetOwnedTokens(ctx context.Context, accountID string) ([]int64, error) {
	tokens, err := r.q.GetOwnedTokens(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTokens, err)
	}
	if tokens == nil {
		tokens = []int64{}
	}
	return tokens, nil
}

// GetNFTStats retrieves the stats and owner of a minted token
func (r *ProgressionRepository) GetNFTStats(ctx context.Context, tokenID int64) (*domain.NFTStats, error) {
	row, err := r.q.GetNFTStats(ctx, tokenID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetNFTStats, err)
	}

	return &domain.NFTStats{
		TokenID:     row.TokenID,
		Attack:      int(row.Attack),
		Defense:     int(row.Defense),
		HitPoints:   int(row.HitPoints),
		CritRate:    int(row.CritRate),
		LevelMinted: int(row.LevelMinted),
		OwnerID:     row.AccountID,
		MintedAt:    row.MintedAt.Time,
	}, nil
}

// GetTopProfiles returns profiles ordered by trophies, then level, then account id
func (r *ProgressionRepository) GetTopProfiles(ctx context.Context, limit int) ([]domain.UserProfile, error) {
	rows, err := r.q.GetTopProfiles(ctx, toInt32(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTop, err)
	}

	profiles := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, *toDomainProfile(row))
	}
	return profiles, nil
}

// CountProfilesByLeague returns the number of profiles in each populated tier
func (r *ProgressionRepository) CountProfilesByLeague(ctx context.Context) (map[int]int, error) {
	rows, err := r.q.CountProfilesByLeague(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountLeagues, err)
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[int(row.League)] = int(row.Profiles)
	}
	return counts, nil
}

// Ping checks database connectivity
func (r *ProgressionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// BeginTx starts a transaction for a single progression operation
func (r *ProgressionRepository) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &progressionTx{tx: tx, q: r.q.WithTx(tx)}, nil
}

// progressionTx implements repository.ProgressionTx on a pgx transaction
type progressionTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *progressionTx) GetProfileForUpdate(ctx context.Context, accountID string) (*domain.UserProfile, error) {
	row, err := t.q.GetProfileForUpdate(ctx, accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return toDomainProfile(row), nil
}

func (t *progressionTx) InsertProfile(ctx context.Context, p *domain.UserProfile) error {
	err := t.q.InsertProfile(ctx, generated.InsertProfileParams{
		AccountID:        p.AccountID,
		Name:             p.Name,
		Experience:       toInt32(p.Experience),
		Level:            toInt32(p.Level),
		Trophies:         toInt32(p.Trophies),
		BattlesWon:       toInt32(p.BattlesWon),
		NftsOwned:        toInt32(p.NFTsOwned),
		League:           toInt16(p.League),
		BattleMultiplier: toInt32(p.BattleMultiplier),
		CreatedAt:        timestamptz(p.CreatedAt),
		UpdatedAt:        timestamptz(p.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertProfile, err)
	}
	return nil
}

func (t *progressionTx) UpdateProfile(ctx context.Context, p *domain.UserProfile) error {
	affected, err := t.q.UpdateProfile(ctx, generated.UpdateProfileParams{
		AccountID:        p.AccountID,
		Experience:       toInt32(p.Experience),
		Level:            toInt32(p.Level),
		Trophies:         toInt32(p.Trophies),
		BattlesWon:       toInt32(p.BattlesWon),
		NftsOwned:        toInt32(p.NFTsOwned),
		League:           toInt16(p.League),
		BattleMultiplier: toInt32(p.BattleMultiplier),
		UpdatedAt:        timestamptz(p.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateProfile, err)
	}
	if affected == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (t *progressionTx) GetCratesForUpdate(ctx context.Context, accountID string) ([]domain.Crate, error) {
	rows, err := t.q.GetCratesForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCrates, err)
	}

	crates := make([]domain.Crate, 0, len(rows))
	for _, row := range rows {
		crates = append(crates, domain.Crate{
			Type:      row.CrateType,
			Rarity:    int(row.Rarity),
			League:    int(row.League),
			Claimed:   row.Claimed,
			AwardedAt: row.AwardedAt.Time,
		})
	}
	return crates, nil
}

func (t *progressionTx) AppendCrate(ctx context.Context, accountID string, c domain.Crate) (int, error) {
	awardedAt := c.AwardedAt
	if awardedAt.IsZero() {
		awardedAt = time.Now()
	}

	idx, err := t.q.AppendCrate(ctx, generated.AppendCrateParams{
		AccountID: accountID,
		CrateType: c.Type,
		Rarity:    toInt16(c.Rarity),
		League:    toInt16(c.League),
		AwardedAt: timestamptz(awardedAt),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToAppendCrate, err)
	}
	return int(idx), nil
}

func (t *progressionTx) MarkCrateClaimed(ctx context.Context, accountID string, index int) error {
	affected, err := t.q.MarkCrateClaimed(ctx, generated.MarkCrateClaimedParams{
		AccountID: accountID,
		Idx:       toInt32(index),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkClaimed, err)
	}
	if affected == 0 {
		return domain.ErrBadIndex
	}
	return nil
}

func (t *progressionTx) IssueIdentifier(ctx context.Context) (int64, error) {
	id, err := t.q.NextTokenID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToIssueToken, err)
	}
	return id, nil
}

func (t *progressionTx) AssignOwner(ctx context.Context, tokenID int64, accountID string) error {
	err := t.q.AssignOwner(ctx, generated.AssignOwnerParams{
		TokenID:   tokenID,
		AccountID: accountID,
	})
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAssignOwner, err)
	}
	return nil
}

func (t *progressionTx) SaveNFTStats(ctx context.Context, s domain.NFTStats) error {
	err := t.q.InsertNFTStats(ctx, generated.InsertNFTStatsParams{
		TokenID:     s.TokenID,
		Attack:      toInt32(s.Attack),
		Defense:     toInt32(s.Defense),
		HitPoints:   toInt32(s.HitPoints),
		CritRate:    toInt32(s.CritRate),
		LevelMinted: toInt32(s.LevelMinted),
		MintedAt:    timestamptz(s.MintedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveNFTStats, err)
	}
	return nil
}

func (t *progressionTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *progressionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func toDomainProfile(row generated.Profile) *domain.UserProfile {
	return &domain.UserProfile{
		AccountID:        row.AccountID,
		Name:             row.Name,
		Experience:       int(row.Experience),
		Level:            int(row.Level),
		Trophies:         int(row.Trophies),
		BattlesWon:       int(row.BattlesWon),
		NFTsOwned:        int(row.NftsOwned),
		League:           int(row.League),
		BattleMultiplier: int(row.BattleMultiplier),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
		Exists:           true,
	}
}
