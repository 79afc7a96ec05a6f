package player

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 30 * time.Second
)

// Error context messages
const (
	ErrContextFailedToBeginTx      = "failed to begin transaction"
	ErrContextFailedToCommitTx     = "failed to commit transaction"
	ErrContextFailedToLoadProfile  = "failed to load profile"
	ErrContextFailedToInsert       = "failed to insert profile"
	ErrContextFailedToSaveProfile  = "failed to save profile"
	ErrContextFailedToMintStarter  = "failed to mint starter hero"
	ErrContextFailedToAwardCrate   = "failed to award crate"
	ErrContextFailedToLoadTop      = "failed to load top profiles"
	ErrContextFailedToCountLeagues = "failed to count profiles by league"
)

// Log messages
const (
	LogMsgProfileCreated   = "Profile created"
	LogMsgBattleRecorded   = "Battle recorded"
	LogMsgLevelUp          = "Level up"
	LogMsgLeagueChanged    = "League changed"
	LogMsgSnapshotComplete = "League snapshot complete"
)
