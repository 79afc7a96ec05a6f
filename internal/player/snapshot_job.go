package player

import (
	"context"

	"github.com/osse101/HeroArena_Go/internal/logger"
)

// LeagueGauge receives the per-tier profile counts
type LeagueGauge interface {
	SetLeagueProfiles(tierName string, count int)
}

// LeagueSnapshotJob exports the current league distribution.
// It satisfies worker.Job and runs on the scheduler interval.
type LeagueSnapshotJob struct {
	svc   Service
	gauge LeagueGauge
}

// NewLeagueSnapshotJob creates a new snapshot job
func NewLeagueSnapshotJob(svc Service, gauge LeagueGauge) *LeagueSnapshotJob {
	return &LeagueSnapshotJob{svc: svc, gauge: gauge}
}

// Process reads the distribution and pushes every tier to the gauge
func (j *LeagueSnapshotJob) Process(ctx context.Context) error {
	counts, err := j.svc.GetLeagueDistribution(ctx)
	if err != nil {
		return err
	}

	table := j.svc.LeagueTable()
	total := 0
	for tier, count := range counts {
		j.gauge.SetLeagueProfiles(table.TierName(tier), count)
		total += count
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotComplete, "profiles", total)
	return nil
}
