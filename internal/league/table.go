package league

import (
	"errors"
	"fmt"
)

// Table is the immutable league configuration shared by every account.
// Every per-tier slice is indexed by tier, with index 0 reserved for TierNone.
type Table struct {
	TierNames       []string `json:"tier_names"`
	Thresholds      []int    `json:"thresholds"`
	TrophyGainOnWin []int    `json:"trophy_gain_on_win"`
	TrophyLossOnDef []int    `json:"trophy_loss_on_defeat"`
	CrateNames      []string `json:"crate_names"`
}

// DefaultTable returns the built-in league table
func DefaultTable() *Table {
	return &Table{
		TierNames:       []string{"None", "Peasant", "Squire", "Knight", "Baron", "King", "Divine"},
		Thresholds:      []int{0, 0, 100, 300, 700, 1500, 3000},
		TrophyGainOnWin: []int{0, 15, 15, 12, 10, 8, 6},
		TrophyLossOnDef: []int{0, 5, 7, 10, 12, 15, 20},
		CrateNames:      []string{"Basic", "Rare", "Epic", "Mythic", "Legendary"},
	}
}

// Validate checks the structural invariants of the table
func (t *Table) Validate() error {
	if len(t.TierNames) < 2 {
		return errors.New("at least one tier besides None is required")
	}
	tiers := len(t.TierNames)
	if tiers-1 > MaxLeague {
		return fmt.Errorf("at most %d tiers besides None are supported, got %d", MaxLeague, tiers-1)
	}
	if len(t.Thresholds) != tiers {
		return fmt.Errorf("thresholds: expected %d entries, got %d", tiers, len(t.Thresholds))
	}
	if len(t.TrophyGainOnWin) != tiers {
		return fmt.Errorf("trophy_gain_on_win: expected %d entries, got %d", tiers, len(t.TrophyGainOnWin))
	}
	if len(t.TrophyLossOnDef) != tiers {
		return fmt.Errorf("trophy_loss_on_defeat: expected %d entries, got %d", tiers, len(t.TrophyLossOnDef))
	}
	if len(t.CrateNames) == 0 {
		return errors.New("at least one crate name is required")
	}
	if t.Thresholds[TierPeasant] != 0 {
		return fmt.Errorf("threshold of tier 1 must be 0, got %d", t.Thresholds[TierPeasant])
	}
	for i := TierPeasant + 1; i < tiers; i++ {
		if t.Thresholds[i] <= t.Thresholds[i-1] {
			return fmt.Errorf("thresholds must be strictly increasing: tier %d (%d) <= tier %d (%d)",
				i, t.Thresholds[i], i-1, t.Thresholds[i-1])
		}
	}
	for i := TierPeasant; i < tiers; i++ {
		if t.TrophyGainOnWin[i] < 0 || t.TrophyLossOnDef[i] < 0 {
			return fmt.Errorf("trophy gain/loss for tier %d must not be negative", i)
		}
	}
	return nil
}

// MaxLeague returns the highest tier index
func (t *Table) MaxLeague() int {
	return len(t.TierNames) - 1
}

// TierName returns the display name for tier, or "None" when out of range
func (t *Table) TierName(tier int) string {
	if tier < 0 || tier >= len(t.TierNames) {
		return t.TierNames[TierNone]
	}
	return t.TierNames[tier]
}

// Threshold returns the minimum trophies needed to hold tier
func (t *Table) Threshold(tier int) int {
	return t.Thresholds[t.clamp(tier)]
}

// GainForWin returns the trophies gained by a win at tier
func (t *Table) GainForWin(tier int) int {
	return t.TrophyGainOnWin[t.clamp(tier)]
}

// LossForDefeat returns the trophies lost by a defeat at tier
func (t *Table) LossForDefeat(tier int) int {
	return t.TrophyLossOnDef[t.clamp(tier)]
}

// CrateFor returns the crate awarded on reaching newLeague.
// The name index is clamped to the crate-name table so tier and crate tables may differ in length.
func (t *Table) CrateFor(newLeague int) (crateType string, rarity int) {
	idx := min(newLeague-1, len(t.CrateNames)-1)
	if idx < 0 {
		idx = 0
	}
	return t.CrateNames[idx], newLeague - 1
}

func (t *Table) clamp(tier int) int {
	return max(TierPeasant, min(tier, t.MaxLeague()))
}

// TierInfo is a display row of the table
type TierInfo struct {
	Tier            int    `json:"tier"`
	Name            string `json:"name"`
	Threshold       int    `json:"threshold"`
	TrophyGainOnWin int    `json:"trophy_gain_on_win"`
	TrophyLossOnDef int    `json:"trophy_loss_on_defeat"`
	CrateType       string `json:"crate_type"`
}

// Tiers returns one row per assignable tier
func (t *Table) Tiers() []TierInfo {
	tiers := make([]TierInfo, 0, t.MaxLeague())
	for i := TierPeasant; i <= t.MaxLeague(); i++ {
		crateType, _ := t.CrateFor(i)
		tiers = append(tiers, TierInfo{
			Tier:            i,
			Name:            t.TierNames[i],
			Threshold:       t.Thresholds[i],
			TrophyGainOnWin: t.TrophyGainOnWin[i],
			TrophyLossOnDef: t.TrophyLossOnDef[i],
			CrateType:       crateType,
		})
	}
	return tiers
}
