package reward

// Error context messages
const (
	ErrContextFailedToBeginTx     = "failed to begin transaction"
	ErrContextFailedToCommitTx    = "failed to commit transaction"
	ErrContextFailedToLoadProfile = "failed to load profile"
	ErrContextFailedToLoadCrates  = "failed to load crates"
	ErrContextFailedToClaimCrate  = "failed to mark crate claimed"
	ErrContextFailedToAppendCrate = "failed to append crate"
	ErrContextFailedToIssueToken  = "failed to issue token identifier"
	ErrContextFailedToAssignOwner = "failed to assign token owner"
	ErrContextFailedToSaveStats   = "failed to save nft stats"
	ErrContextFailedToSaveProfile = "failed to save profile"
)

// Log messages
const (
	LogMsgCrateClaimed = "Crate claimed"
	LogMsgCrateAwarded = "Crate awarded"
	LogMsgNFTMinted    = "NFT minted"
)
