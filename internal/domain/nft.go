package domain

import "time"

// NFTStats holds the immutable combat attributes of a minted hero token
type NFTStats struct {
	TokenID     int64     `json:"token_id"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	HitPoints   int       `json:"hit_points"`
	CritRate    int       `json:"crit_rate"`
	LevelMinted int       `json:"level_minted"`
	OwnerID     string    `json:"owner_id"`
	MintedAt    time.Time `json:"minted_at"`
}
