package league

// Tier indices. TierNone is a sentinel and never assigned to an existing profile.
const (
	TierNone    = 0
	TierPeasant = 1
	TierSquire  = 2
	TierKnight  = 3
	TierBaron   = 4
	TierKing    = 5
	TierDivine  = 6

	// MaxLeague is the highest tier of the default table and the highest tier storage accepts.
	// Override tables may define fewer tiers, never more.
	MaxLeague = TierDivine
)

// ConfigVersion1 is the expected version string for league table files
const ConfigVersion1 = "1.0"

// TableSchemaName is the embedded JSON schema league table files must satisfy
const TableSchemaName = "schema/league_table.schema.json"

// Error context messages for wrapped errors during table loading
const (
	ErrContextFailedToReadTable  = "failed to read league table file"
	ErrContextFailedToParseTable = "failed to parse league table"
	ErrContextInvalidTable       = "invalid league table"
)

// Log messages
const (
	LogMsgUsingDefaultTable = "No league table path configured, using default table"
	LogMsgLoadedTable       = "Loaded league table"
)
