// Package memory provides an in-process implementation of repository.Progression.
// Transactions are serialized and stage their writes until Commit.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

var _ repository.Progression = (*Store)(nil)

// Store keeps progression state in maps guarded by a RWMutex
type Store struct {
	mu        sync.RWMutex
	profiles  map[string]domain.UserProfile
	crates    map[string][]domain.Crate
	tokens    map[string][]int64
	owners    map[int64]string
	stats     map[int64]domain.NFTStats
	nextToken int64

	// one transaction at a time; acquisition honours ctx
	txSlot *semaphore.Weighted
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		profiles:  make(map[string]domain.UserProfile),
		crates:    make(map[string][]domain.Crate),
		tokens:    make(map[string][]int64),
		owners:    make(map[int64]string),
		stats:     make(map[int64]domain.NFTStats),
		nextToken: 1,
		txSlot:    semaphore.NewWeighted(1),
	}
}

// GetProfile retrieves a committed profile
func (s *Store) GetProfile(_ context.Context, accountID string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[accountID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

// GetCrates returns a copy of the committed crate list
func (s *Store) GetCrates(_ context.Context, accountID string) ([]domain.Crate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Crate{}, s.crates[accountID]...), nil
}

// GetOwnedTokens returns a copy of the committed token list
func (s *Store) GetOwnedTokens(_ context.Context, accountID string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.tokens[accountID]...), nil
}

// GetNFTStats retrieves a minted token's stats
func (s *Store) GetNFTStats(_ context.Context, tokenID int64) (*domain.NFTStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stats[tokenID]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	st.OwnerID = s.owners[tokenID]
	return &st, nil
}

// GetTopProfiles returns profiles ordered by trophies, then level, then account id
func (s *Store) GetTopProfiles(_ context.Context, limit int) ([]domain.UserProfile, error) {
	s.mu.RLock()
	all := make([]domain.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		all = append(all, p)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Trophies != all[j].Trophies {
			return all[i].Trophies > all[j].Trophies
		}
		if all[i].Level != all[j].Level {
			return all[i].Level > all[j].Level
		}
		return all[i].AccountID < all[j].AccountID
	})

	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// CountProfilesByLeague returns the number of profiles in each populated tier
func (s *Store) CountProfilesByLeague(_ context.Context) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, p := range s.profiles {
		counts[p.League]++
	}
	return counts, nil
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error {
	return nil
}

// BeginTx blocks until no other transaction is open or ctx is done
func (s *Store) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	if err := s.txSlot.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	s.mu.RLock()
	next := s.nextToken
	s.mu.RUnlock()

	return &tx{
		store:     s,
		profiles:  make(map[string]domain.UserProfile),
		crates:    make(map[string][]domain.Crate),
		tokens:    make(map[string][]int64),
		nextToken: next,
	}, nil
}

type ownership struct {
	tokenID   int64
	accountID string
}

// tx stages writes and applies them to the store on Commit
type tx struct {
	store  *Store
	closed bool

	profiles  map[string]domain.UserProfile
	crates    map[string][]domain.Crate
	tokens    map[string][]int64
	owners    []ownership
	stats     []domain.NFTStats
	nextToken int64
}

func (t *tx) profile(accountID string) (domain.UserProfile, bool) {
	if p, ok := t.profiles[accountID]; ok {
		return p, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	p, ok := t.store.profiles[accountID]
	return p, ok
}

func (t *tx) crateList(accountID string) []domain.Crate {
	if c, ok := t.crates[accountID]; ok {
		return c
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return append([]domain.Crate{}, t.store.crates[accountID]...)
}

func (t *tx) tokenList(accountID string) []int64 {
	if ids, ok := t.tokens[accountID]; ok {
		return ids
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return append([]int64{}, t.store.tokens[accountID]...)
}

func (t *tx) ownerOf(tokenID int64) (string, bool) {
	for _, o := range t.owners {
		if o.tokenID == tokenID {
			return o.accountID, true
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	owner, ok := t.store.owners[tokenID]
	return owner, ok
}

func (t *tx) GetProfileForUpdate(_ context.Context, accountID string) (*domain.UserProfile, error) {
	if t.closed {
		return nil, errTxClosed
	}
	p, ok := t.profile(accountID)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (t *tx) InsertProfile(_ context.Context, p *domain.UserProfile) error {
	if t.closed {
		return errTxClosed
	}
	if _, ok := t.profile(p.AccountID); ok {
		return domain.ErrAlreadyExists
	}
	t.profiles[p.AccountID] = *p
	return nil
}

func (t *tx) UpdateProfile(_ context.Context, p *domain.UserProfile) error {
	if t.closed {
		return errTxClosed
	}
	if _, ok := t.profile(p.AccountID); !ok {
		return domain.ErrProfileNotFound
	}
	t.profiles[p.AccountID] = *p
	return nil
}

func (t *tx) GetCratesForUpdate(_ context.Context, accountID string) ([]domain.Crate, error) {
	if t.closed {
		return nil, errTxClosed
	}
	return append([]domain.Crate{}, t.crateList(accountID)...), nil
}

func (t *tx) AppendCrate(_ context.Context, accountID string, c domain.Crate) (int, error) {
	if t.closed {
		return 0, errTxClosed
	}
	list := append(t.crateList(accountID), c)
	t.crates[accountID] = list
	return len(list) - 1, nil
}

func (t *tx) MarkCrateClaimed(_ context.Context, accountID string, index int) error {
	if t.closed {
		return errTxClosed
	}
	list := t.crateList(accountID)
	if index < 0 || index >= len(list) {
		return domain.ErrBadIndex
	}
	list[index].Claimed = true
	t.crates[accountID] = list
	return nil
}

func (t *tx) IssueIdentifier(context.Context) (int64, error) {
	if t.closed {
		return 0, errTxClosed
	}
	id := t.nextToken
	t.nextToken++
	return id, nil
}

func (t *tx) AssignOwner(_ context.Context, tokenID int64, accountID string) error {
	if t.closed {
		return errTxClosed
	}
	if _, ok := t.ownerOf(tokenID); ok {
		return domain.ErrAlreadyExists
	}
	t.owners = append(t.owners, ownership{tokenID: tokenID, accountID: accountID})
	t.tokens[accountID] = append(t.tokenList(accountID), tokenID)
	return nil
}

func (t *tx) SaveNFTStats(_ context.Context, st domain.NFTStats) error {
	if t.closed {
		return errTxClosed
	}
	for _, staged := range t.stats {
		if staged.TokenID == st.TokenID {
			return domain.ErrAlreadyExists
		}
	}
	t.store.mu.RLock()
	_, exists := t.store.stats[st.TokenID]
	t.store.mu.RUnlock()
	if exists {
		return domain.ErrAlreadyExists
	}
	t.stats = append(t.stats, st)
	return nil
}

func (t *tx) Commit(context.Context) error {
	if t.closed {
		return errTxClosed
	}

	s := t.store
	s.mu.Lock()
	for id, p := range t.profiles {
		s.profiles[id] = p
	}
	for id, list := range t.crates {
		s.crates[id] = list
	}
	for id, list := range t.tokens {
		s.tokens[id] = list
	}
	for _, o := range t.owners {
		s.owners[o.tokenID] = o.accountID
	}
	for _, st := range t.stats {
		st.OwnerID = ""
		s.stats[st.TokenID] = st
	}
	s.nextToken = t.nextToken
	s.mu.Unlock()

	t.close()
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.close()
	return nil
}

func (t *tx) close() {
	t.closed = true
	t.store.txSlot.Release(1)
}
