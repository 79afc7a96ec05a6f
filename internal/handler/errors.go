package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s"
	ErrMsgInvalidPathParam  = "Invalid %s"
	ErrMsgInvalidLimit      = "limit must be an integer"
	ErrMsgEmptyName         = "name must not be empty"
	ErrMsgMissingCaller     = "Missing " + HeaderAccountID + " header"

	ErrMsgSnapshotFailed = "Failed to record league snapshot"
)

// Success messages
const (
	MsgProfileCreated   = "Profile created"
	MsgBattleRecorded   = "Battle recorded"
	MsgCrateClaimed     = "Crate claimed"
	MsgNFTMinted        = "Hero minted"
	MsgSnapshotRecorded = "League snapshot recorded"
)

// HeaderAccountID carries the calling account for owner-only routes
const HeaderAccountID = "X-Account-ID"
