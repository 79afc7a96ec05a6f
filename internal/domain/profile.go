package domain

import "time"

// Profile defaults applied on creation
const (
	StartingExperience      = 10
	StartingLevel           = 1
	StartingLeague          = 1
	BaseBattleMultiplier    = 10
	MaxLevel                = 100
	StartingMintLevel       = 1
	MaxAccountIDLength      = 64
	MaxProfileNameLength    = 32
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// UserProfile is the per-account progression record
type UserProfile struct {
	AccountID        string    `json:"account_id"`
	Name             string    `json:"name"`
	Experience       int       `json:"experience"`
	Level            int       `json:"level"`
	Trophies         int       `json:"trophies"`
	BattlesWon       int       `json:"battles_won"`
	NFTsOwned        int       `json:"nfts_owned"`
	League           int       `json:"league"`
	BattleMultiplier int       `json:"battle_multiplier"`
	Exists           bool      `json:"exists"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUserProfile returns a freshly initialized profile for accountID
func NewUserProfile(accountID, name string, now time.Time) *UserProfile {
	return &UserProfile{
		AccountID:        accountID,
		Name:             name,
		Experience:       StartingExperience,
		Level:            StartingLevel,
		Trophies:         0,
		League:           StartingLeague,
		BattleMultiplier: BaseBattleMultiplier,
		NFTsOwned:        0,
		Exists:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// MultiplierForLevel returns the display multiplier for a level
func MultiplierForLevel(level int) int {
	return BaseBattleMultiplier + (level - 1)
}

// Clone returns a copy that can be mutated without touching the original
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// LevelUp records a single level crossed during a battle
type LevelUp struct {
	Level      int `json:"level"`
	Multiplier int `json:"multiplier"`
}

// BattleOutcome reports every step applied by a battle result
type BattleOutcome struct {
	AccountID        string       `json:"account_id"`
	IsWin            bool         `json:"is_win"`
	ExperienceGained int          `json:"experience_gained"`
	TrophyDelta      int          `json:"trophy_delta"`
	OldLevel         int          `json:"old_level"`
	NewLevel         int          `json:"new_level"`
	LevelUps         []LevelUp    `json:"level_ups,omitempty"`
	OldLeague        int          `json:"old_league"`
	NewLeague        int          `json:"new_league"`
	CrateAwarded     *Crate       `json:"crate_awarded,omitempty"`
	CrateIndex       int          `json:"crate_index,omitempty"`
	Profile          *UserProfile `json:"profile"`
}

// LeagueChanged reports whether the battle moved the profile to another tier
func (o BattleOutcome) LeagueChanged() bool {
	return o.OldLeague != o.NewLeague
}

// LeaderboardEntry is a ranked profile summary
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Trophies  int    `json:"trophies"`
	Level     int    `json:"level"`
	League    int    `json:"league"`
}
