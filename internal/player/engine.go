package player

import (
	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/league"
)

// Experience constants for a single battle
const (
	BaseBattleExperience = 5
	ExperiencePerLeague  = 2
	WinBonusExperience   = 3
)

// Level threshold constants: expForNext(L) = LevelThresholdBase + L*LevelThresholdStep
const (
	LevelThresholdBase = 10
	LevelThresholdStep = 5
)

// ExpForNext returns the experience consumed when leaving level
func ExpForNext(level int) int {
	return LevelThresholdBase + level*LevelThresholdStep
}

// BattleExperience returns the experience granted for a battle fought in tier
func BattleExperience(tier int, isWin bool) int {
	exp := BaseBattleExperience + tier*ExperiencePerLeague
	if isWin {
		exp += WinBonusExperience
	}
	return exp
}

// BattleUpdate is what the first battle step changed
type BattleUpdate struct {
	ExperienceGained int
	TrophyDelta      int
}

// ApplyBattleUpdate adds experience and trophies for one battle, using the
// profile's current tier for every lookup. Trophies never drop below zero.
func ApplyBattleUpdate(p *domain.UserProfile, table *league.Table, isWin bool) BattleUpdate {
	before := p.Trophies
	exp := BattleExperience(p.League, isWin)

	if isWin {
		p.BattlesWon++
		p.Trophies += table.GainForWin(p.League)
	} else {
		p.Trophies -= table.LossForDefeat(p.League)
		if p.Trophies < 0 {
			p.Trophies = 0
		}
	}
	p.Experience += exp

	return BattleUpdate{
		ExperienceGained: exp,
		TrophyDelta:      p.Trophies - before,
	}
}

// RunLevelingLoop consumes experience one level at a time until the next
// threshold is out of reach or the level cap is hit. It returns one LevelUp per
// level crossed, in increasing order.
func RunLevelingLoop(p *domain.UserProfile) []domain.LevelUp {
	var ups []domain.LevelUp
	for p.Level < domain.MaxLevel && p.Experience >= ExpForNext(p.Level) {
		p.Experience -= ExpForNext(p.Level)
		p.Level++
		p.BattleMultiplier = domain.MultiplierForLevel(p.Level)
		ups = append(ups, domain.LevelUp{Level: p.Level, Multiplier: p.BattleMultiplier})
	}
	return ups
}

// ApplyBattle runs the battle update, the leveling loop and the league
// re-evaluation on p in that order. Crate issuance is left to the caller.
func ApplyBattle(p *domain.UserProfile, table *league.Table, isWin bool) domain.BattleOutcome {
	out := domain.BattleOutcome{
		AccountID: p.AccountID,
		IsWin:     isWin,
		OldLevel:  p.Level,
		OldLeague: p.League,
	}

	update := ApplyBattleUpdate(p, table, isWin)
	out.ExperienceGained = update.ExperienceGained
	out.TrophyDelta = update.TrophyDelta

	out.LevelUps = RunLevelingLoop(p)
	out.NewLevel = p.Level

	p.League = table.NextTier(p.Trophies, p.League)
	out.NewLeague = p.League
	out.Profile = p

	return out
}
