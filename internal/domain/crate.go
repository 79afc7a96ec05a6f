package domain

import "time"

// Crate rarities
const (
	RarityBasic     = 0
	RarityRare      = 1
	RarityEpic      = 2
	RarityMythic    = 3
	RarityLegendary = 4
)

// Crate is a claimable reward granted on a league change
type Crate struct {
	Type      string    `json:"type"`
	Rarity    int       `json:"rarity"`
	League    int       `json:"league"`
	Claimed   bool      `json:"claimed"`
	AwardedAt time.Time `json:"awarded_at"`
}
