package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HeroArena_Go/internal/domain"
	"github.com/osse101/HeroArena_Go/internal/league"
)

func freshProfile() *domain.UserProfile {
	return domain.NewUserProfile("acct", "Ada", time.Now())
}

func TestExpForNext(t *testing.T) {
	assert.Equal(t, 15, ExpForNext(1))
	assert.Equal(t, 20, ExpForNext(2))
	assert.Equal(t, 505, ExpForNext(99))
}

func TestBattleExperience(t *testing.T) {
	tests := []struct {
		tier  int
		isWin bool
		want  int
	}{
		{1, true, 10},
		{1, false, 7},
		{2, true, 12},
		{6, false, 17},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BattleExperience(tt.tier, tt.isWin), "tier=%d win=%v", tt.tier, tt.isWin)
	}
}

func TestApplyBattleUpdate(t *testing.T) {
	table := league.DefaultTable()

	t.Run("win adds gain and counts the win", func(t *testing.T) {
		p := freshProfile()
		upd := ApplyBattleUpdate(p, table, true)
		assert.Equal(t, 15, p.Trophies)
		assert.Equal(t, 1, p.BattlesWon)
		assert.Equal(t, 20, p.Experience)
		assert.Equal(t, BattleUpdate{ExperienceGained: 10, TrophyDelta: 15}, upd)
	})

	t.Run("loss at three trophies clamps to zero", func(t *testing.T) {
		p := freshProfile()
		p.Trophies = 3
		upd := ApplyBattleUpdate(p, table, false)
		assert.Equal(t, 0, p.Trophies)
		assert.Equal(t, -3, upd.TrophyDelta)
		assert.Equal(t, 0, p.BattlesWon)
		assert.Equal(t, 17, p.Experience)
	})

	t.Run("loss uses the current tier", func(t *testing.T) {
		p := freshProfile()
		p.League = 4
		p.Trophies = 750
		ApplyBattleUpdate(p, table, false)
		assert.Equal(t, 738, p.Trophies)
	})
}

func TestRunLevelingLoop(t *testing.T) {
	t.Run("no level up below threshold", func(t *testing.T) {
		p := freshProfile()
		p.Experience = 14
		assert.Empty(t, RunLevelingLoop(p))
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 14, p.Experience)
	})

	t.Run("multi-level crossing emits one entry per level", func(t *testing.T) {
		p := freshProfile()
		// 15 + 20 + 25 = 60 crosses three levels with 2 left over
		p.Experience = 62
		ups := RunLevelingLoop(p)

		require.Len(t, ups, 3)
		assert.Equal(t, []domain.LevelUp{
			{Level: 2, Multiplier: 11},
			{Level: 3, Multiplier: 12},
			{Level: 4, Multiplier: 13},
		}, ups)
		assert.Equal(t, 4, p.Level)
		assert.Equal(t, 2, p.Experience)
		assert.Equal(t, 13, p.BattleMultiplier)
	})

	t.Run("level is capped at 100", func(t *testing.T) {
		p := freshProfile()
		p.Level = 99
		p.BattleMultiplier = domain.MultiplierForLevel(99)
		p.Experience = 10_000
		ups := RunLevelingLoop(p)

		require.Len(t, ups, 1)
		assert.Equal(t, domain.MaxLevel, p.Level)
		assert.Equal(t, 10_000-ExpForNext(99), p.Experience)
		assert.Empty(t, RunLevelingLoop(p))
	})
}

func TestApplyBattle_TenWinsFromFresh(t *testing.T) {
	table := league.DefaultTable()
	p := freshProfile()

	var leagueChanges []int
	for i := 1; i <= 10; i++ {
		out := ApplyBattle(p, table, true)
		assert.Equal(t, 15*i, p.Trophies, "trophies after win %d", i)
		if out.LeagueChanged() {
			leagueChanges = append(leagueChanges, i)
		}
	}

	assert.Equal(t, []int{7}, leagueChanges, "league 2 is reached on the seventh win (105 trophies)")
	assert.Equal(t, 150, p.Trophies)
	assert.Equal(t, 2, p.League)
	assert.Equal(t, 10, p.BattlesWon)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 26, p.Experience)
	assert.Equal(t, 14, p.BattleMultiplier)
}

func TestApplyBattle_Outcome(t *testing.T) {
	table := league.DefaultTable()
	p := freshProfile()
	p.Trophies = 95
	p.Experience = 14

	out := ApplyBattle(p, table, true)

	assert.Equal(t, "acct", out.AccountID)
	assert.True(t, out.IsWin)
	assert.Equal(t, 10, out.ExperienceGained)
	assert.Equal(t, 15, out.TrophyDelta)
	assert.Equal(t, 1, out.OldLevel)
	assert.Equal(t, 2, out.NewLevel)
	assert.Len(t, out.LevelUps, 1)
	assert.Equal(t, 1, out.OldLeague)
	assert.Equal(t, 2, out.NewLeague)
	assert.True(t, out.LeagueChanged())
	assert.Same(t, p, out.Profile)
}

func TestApplyBattle_Demotion(t *testing.T) {
	table := league.DefaultTable()
	p := freshProfile()
	p.League = 2
	p.Trophies = 104

	out := ApplyBattle(p, table, false)
	assert.Equal(t, 97, p.Trophies)
	assert.Equal(t, 1, out.NewLeague)
	assert.True(t, out.LeagueChanged())
}

func TestApplyBattle_Invariants(t *testing.T) {
	table := league.DefaultTable()
	p := freshProfile()

	// deterministic mixed sequence
	pattern := []bool{true, false, false, true, true, true, false, true, false, false, false}
	for i := 0; i < 2000; i++ {
		prevLevel := p.Level
		prevWins := p.BattlesWon
		out := ApplyBattle(p, table, pattern[i%len(pattern)])

		require.GreaterOrEqual(t, p.Trophies, 0)
		require.LessOrEqual(t, p.Level, domain.MaxLevel)
		require.GreaterOrEqual(t, p.Level, prevLevel)
		require.GreaterOrEqual(t, p.BattlesWon, prevWins)
		require.GreaterOrEqual(t, p.League, 1)
		require.LessOrEqual(t, p.League, table.MaxLeague())
		require.Equal(t, domain.MultiplierForLevel(p.Level), p.BattleMultiplier)
		require.Len(t, out.LevelUps, p.Level-prevLevel)
		require.Equal(t, table.NextTier(p.Trophies, p.League), p.League, "tier is stable on unchanged trophies")
	}
}
