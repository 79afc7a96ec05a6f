package domain

// ProfileCreatedPayload is the event payload for profile.created events
type ProfileCreatedPayload struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayload is the event payload for profile.level_up events
type LevelUpPayload struct {
	AccountID  string `json:"account_id"`
	NewLevel   int    `json:"new_level"`
	Multiplier int    `json:"multiplier"`
	Timestamp  int64  `json:"timestamp"`
}

// NFTMintedPayload is the event payload for nft.minted events
type NFTMintedPayload struct {
	AccountID string `json:"account_id"`
	TokenID   int64  `json:"token_id"`
	Level     int    `json:"level"`
	Timestamp int64  `json:"timestamp"`
}

// CrateAwardedPayload is the event payload for crate.awarded events
type CrateAwardedPayload struct {
	AccountID string `json:"account_id"`
	CrateType string `json:"crate_type"`
	Rarity    int    `json:"rarity"`
	NewLeague int    `json:"new_league"`
	Timestamp int64  `json:"timestamp"`
}

// CrateClaimedPayload is the event payload for crate.claimed events
type CrateClaimedPayload struct {
	AccountID string `json:"account_id"`
	Index     int    `json:"index"`
	CrateType string `json:"crate_type"`
	Timestamp int64  `json:"timestamp"`
}

// LeagueChangedPayload is the event payload for league.changed events
type LeagueChangedPayload struct {
	AccountID string `json:"account_id"`
	OldLeague int    `json:"old_league"`
	NewLeague int    `json:"new_league"`
	CrateType string `json:"crate_type"`
	Timestamp int64  `json:"timestamp"`
}

// BattleRecordedPayload is the event payload for battle.recorded events
type BattleRecordedPayload struct {
	AccountID   string `json:"account_id"`
	IsWin       bool   `json:"is_win"`
	TrophyDelta int    `json:"trophy_delta"`
	League      int    `json:"league"`
	Timestamp   int64  `json:"timestamp"`
}
