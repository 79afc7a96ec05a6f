package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameProfilesCreated = "profiles_created_total"
	MetricNameBattlesRecorded = "battles_recorded_total"
	MetricNameLevelUps        = "level_ups_total"
	MetricNameLeagueChanges   = "league_changes_total"
	MetricNameCratesAwarded   = "crates_awarded_total"
	MetricNameCratesClaimed   = "crates_claimed_total"
	MetricNameNFTsMinted      = "nfts_minted_total"
	MetricNameLeagueProfiles  = "league_profiles"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"
)

// Progression metric help text
const (
	HelpTextProfilesCreated = "Total number of profiles created"
	HelpTextBattlesRecorded = "Total number of battle results recorded by outcome"
	HelpTextLevelUps        = "Total number of levels gained"
	HelpTextLeagueChanges   = "Total number of league tier changes by direction"
	HelpTextCratesAwarded   = "Total number of crates awarded by crate type"
	HelpTextCratesClaimed   = "Total number of crates claimed by crate type"
	HelpTextNFTsMinted      = "Total number of hero tokens minted"
	HelpTextLeagueProfiles  = "Number of profiles in each league tier at the last snapshot"
)

// ============================================================================
// Label Names and Values
// ============================================================================

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOutcome   = "outcome"
	LabelDirection = "direction"
	LabelCrateType = "crate_type"
	LabelTier      = "tier"
)

// Label values
const (
	DirectionPromotion = "promotion"
	DirectionDemotion  = "demotion"
	PathUnmatched      = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the latency buckets for HTTP request duration (in seconds)
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnknownPayload  = "Event payload has unexpected type"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
