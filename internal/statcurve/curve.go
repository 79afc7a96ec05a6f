// Package statcurve maps a mint level to the combat stats of a hero token.
package statcurve

import "github.com/osse101/HeroArena_Go/internal/domain"

// Linear formula coefficients used for every level without a calibration point
const (
	BaseAttack       = 5
	AttackPerLevel   = 2
	BaseHitPoints    = 20
	HitPointsPerLvl  = 3
	BaseCritRate     = 200
	CritRatePerLevel = 10
)

type calibration struct {
	attack, defense, hitPoints, critRate int
}

// Hand-tuned points. They intentionally do not lie on the linear curve.
var calibrationPoints = map[int]calibration{
	1:  {attack: 5, defense: 5, hitPoints: 20, critRate: 200},
	10: {attack: 8, defense: 8, hitPoints: 30, critRate: 300},
	20: {attack: 12, defense: 12, hitPoints: 45, critRate: 450},
	30: {attack: 18, defense: 18, hitPoints: 65, critRate: 650},
}

// StatsForLevel returns the stats of a token minted at level. LevelMinted is stored verbatim.
func StatsForLevel(level int) domain.NFTStats {
	if c, ok := calibrationPoints[level]; ok {
		return domain.NFTStats{
			Attack:      c.attack,
			Defense:     c.defense,
			HitPoints:   c.hitPoints,
			CritRate:    c.critRate,
			LevelMinted: level,
		}
	}

	steps := level - 1
	attack := BaseAttack + steps*AttackPerLevel
	return domain.NFTStats{
		Attack:      attack,
		Defense:     attack,
		HitPoints:   BaseHitPoints + steps*HitPointsPerLvl,
		CritRate:    BaseCritRate + steps*CritRatePerLevel,
		LevelMinted: level,
	}
}

// IsCalibrationPoint reports whether level uses hand-tuned stats
func IsCalibrationPoint(level int) bool {
	_, ok := calibrationPoints[level]
	return ok
}
