package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Profiles
const (
	ErrMsgFailedToGetProfile    = "failed to get profile"
	ErrMsgFailedToInsertProfile = "failed to insert profile"
	ErrMsgFailedToUpdateProfile = "failed to update profile"
	ErrMsgFailedToQueryTop      = "failed to query top profiles"
	ErrMsgFailedToCountLeagues  = "failed to count profiles by league"
)

// Error Messages - Crates
const (
	ErrMsgFailedToQueryCrates  = "failed to query crates"
	ErrMsgFailedToAppendCrate  = "failed to append crate"
	ErrMsgFailedToMarkClaimed  = "failed to mark crate claimed"
	ErrMsgFailedToQueryTokens  = "failed to query owned tokens"
	ErrMsgFailedToIssueToken   = "failed to issue token identifier"
	ErrMsgFailedToAssignOwner  = "failed to assign token owner"
	ErrMsgFailedToSaveNFTStats = "failed to save nft stats"
	ErrMsgFailedToGetNFTStats  = "failed to get nft stats"
)

// Error Messages - Event log
const (
	ErrMsgFailedToLogEvent    = "failed to log event"
	ErrMsgFailedToQueryEvents = "failed to query events"
)
