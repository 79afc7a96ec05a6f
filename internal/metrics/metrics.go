package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Progression Metrics
var (
	ProfilesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesCreated,
			Help: HelpTextProfilesCreated,
		},
	)

	BattlesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesRecorded,
			Help: HelpTextBattlesRecorded,
		},
		[]string{LabelOutcome},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	LeagueChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeagueChanges,
			Help: HelpTextLeagueChanges,
		},
		[]string{LabelDirection},
	)

	CratesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCratesAwarded,
			Help: HelpTextCratesAwarded,
		},
		[]string{LabelCrateType},
	)

	CratesClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCratesClaimed,
			Help: HelpTextCratesClaimed,
		},
		[]string{LabelCrateType},
	)

	NFTsMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNFTsMinted,
			Help: HelpTextNFTsMinted,
		},
	)

	LeagueProfiles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLeagueProfiles,
			Help: HelpTextLeagueProfiles,
		},
		[]string{LabelTier},
	)
)

// LeagueGauge exports snapshot counts through LeagueProfiles
type LeagueGauge struct{}

// SetLeagueProfiles sets the gauge for one tier
func (LeagueGauge) SetLeagueProfiles(tierName string, count int) {
	LeagueProfiles.WithLabelValues(tierName).Set(float64(count))
}
