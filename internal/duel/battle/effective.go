package battle

import (
	"math"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
)

// RawStat computes the un-staged value of one of the combatant's stats from
// its current form's base stats. Accuracy and evasion have no raw value.
func (c *Combatant) RawStat(stat dex.Stat) int {
	if stat == dex.StatHP {
		return stats.HP(c.Species.BaseStat(dex.StatHP), c.IVs[dex.StatHP], c.EVs[dex.StatHP], c.Level)
	}
	return stats.Raw(c.Species.BaseStat(stat), c.IVs[stat], c.EVs[stat], c.Nature.Multiplier(stat), c.Level)
}

// EffectiveStat computes the battle value of a main stat: the raw value,
// the stage multiplier (cropped for critical hits), then the condition,
// ability, and item modifiers in a fixed order. Accuracy and evasion go
// through their own multiplier inside the accuracy check instead.
func (b *Battle) EffectiveStat(c *Combatant, stat dex.Stat, crop stats.Crop) int {
	v := stats.Staged(c.RawStat(stat), c.Stages[stat], crop)

	switch stat {
	case dex.StatAttack:
		if c.Status == dex.StatusBurn && !c.HasAbility(dex.AbilityGuts) {
			v *= 0.5
		}
		if c.Status != dex.StatusNone && c.HasAbility(dex.AbilityGuts) {
			v *= 1.5
		}
		if c.HasAbility(dex.AbilityHugePower) {
			v *= 2
		}
		if c.Item.Is(dex.ItemChoiceBand) {
			v *= 1.5
		}
		if b.anyActiveHas(dex.AbilityTabletsOfRuin, c) {
			v *= 0.75
		}
	case dex.StatDefense:
		if b.anyActiveHas(dex.AbilitySwordOfRuin, c) {
			v *= 0.75
		}
	case dex.StatSpAttack:
		if c.Item.Is(dex.ItemChoiceSpecs) {
			v *= 1.5
		}
		if b.anyActiveHas(dex.AbilityVesselOfRuin, c) {
			v *= 0.75
		}
	case dex.StatSpDefense:
		if b.anyActiveHas(dex.AbilityBeadsOfRuin, c) {
			v *= 0.75
		}
	case dex.StatSpeed:
		if c.Status == dex.StatusParalysis {
			v *= 0.5
		}
		if c.Item.Is(dex.ItemChoiceScarf) {
			v *= 1.5
		}
		if c.Item.Is(dex.ItemIronBall) {
			v *= 0.5
		}
		if c.HasAbility(dex.AbilitySandRush) && b.Weather == WeatherSandstorm {
			v *= 2
		}
	}

	if b.paradoxActive(c) && stat == c.paradoxStat {
		if stat == dex.StatSpeed {
			v *= 1.5
		} else {
			v *= 1.3
		}
	}

	result := int(math.Floor(v))
	if result < 1 {
		result = 1
	}
	return result
}

// paradoxActive reports whether the combatant's ancient-paradox boost is
// live: the matching field condition holds, or booster energy was burned
// for it earlier.
func (b *Battle) paradoxActive(c *Combatant) bool {
	if c.ParadoxBoosted {
		return true
	}
	switch {
	case c.HasAbility(dex.AbilityProtosynthesis):
		return b.Weather == WeatherSun
	case c.HasAbility(dex.AbilityQuarkDrive):
		return b.Terrain == TerrainElectric
	}
	return false
}

// refreshParadoxBoost recomputes whether a protosynthesis or quark drive
// boost should be live and which stat it targets, consuming a held booster
// energy when the field condition alone is not enough. Consumption happens
// at most once per stay on the field. Returns narration, empty when
// nothing changed.
func (b *Battle) refreshParadoxBoost(c *Combatant) string {
	isProto := c.HasAbility(dex.AbilityProtosynthesis)
	isQuark := c.HasAbility(dex.AbilityQuarkDrive)
	if !isProto && !isQuark {
		return ""
	}

	fieldLive := (isProto && b.Weather == WeatherSun) || (isQuark && b.Terrain == TerrainElectric)
	if c.ParadoxBoosted || fieldLive {
		if c.paradoxStat == dex.StatHP {
			c.paradoxStat = c.highestMainStat()
		}
		if fieldLive || c.ParadoxBoosted {
			return ""
		}
	}

	if !fieldLive && !c.ParadoxBoosted && c.Item.Is(dex.ItemBoosterEnergy) {
		c.Item.Consume()
		c.ParadoxBoosted = true
		c.paradoxStat = c.highestMainStat()
		return capitalizedAbility(c.Ability) + " was activated by " + c.Name() + "'s booster energy!"
	}
	return ""
}

// highestMainStat picks the boost target: the highest effective main stat
// before the paradox multiplier, ties broken in stat order with speed last.
func (c *Combatant) highestMainStat() dex.Stat {
	order := []dex.Stat{dex.StatAttack, dex.StatDefense, dex.StatSpAttack, dex.StatSpDefense, dex.StatSpeed}
	best := dex.StatAttack
	bestVal := -1
	for _, s := range order {
		v := int(stats.Staged(c.RawStat(s), c.Stages[s], stats.CropNone))
		if v > bestVal {
			best, bestVal = s, v
		}
	}
	return best
}
