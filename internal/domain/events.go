package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeProfileCreated is published once when an account creates its profile
	EventTypeProfileCreated = "profile.created"

	// EventTypeLevelUp is published once per level crossed, so a single battle may emit several
	EventTypeLevelUp = "profile.level_up"

	// EventTypeLeagueChanged is published when the net league tier changes after a battle
	EventTypeLeagueChanged = "league.changed"

	// EventTypeCrateAwarded is published alongside every league change
	EventTypeCrateAwarded = "crate.awarded"

	// EventTypeCrateClaimed is published when a crate is claimed
	EventTypeCrateClaimed = "crate.claimed"

	// EventTypeNFTMinted is published for every minted hero token
	EventTypeNFTMinted = "nft.minted"

	// EventTypeBattleRecorded is published after every battle result commits
	EventTypeBattleRecorded = "battle.recorded"
)
