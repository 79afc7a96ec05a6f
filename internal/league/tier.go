package league

// NextTier returns the tier a profile holding trophies should be in, starting from current.
//
// The upgrade loop runs first so a large gain is absorbed in one call, then the
// downgrade loop. Only the net result matters to callers: crossing several
// boundaries still counts as one transition.
func (t *Table) NextTier(trophies, current int) int {
	tier := t.clamp(current)
	tier = t.upgrade(trophies, tier)
	tier = t.downgrade(trophies, tier)
	return tier
}

func (t *Table) upgrade(trophies, tier int) int {
	for tier < t.MaxLeague() && trophies >= t.Thresholds[tier+1] {
		tier++
	}
	return tier
}

func (t *Table) downgrade(trophies, tier int) int {
	for tier > TierPeasant && trophies < t.Thresholds[tier] {
		tier--
	}
	return tier
}

// TierForTrophies derives the tier purely from the threshold table
func (t *Table) TierForTrophies(trophies int) int {
	return t.NextTier(trophies, TierPeasant)
}
