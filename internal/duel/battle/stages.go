package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
)

// Source says on whose behalf a stage change is applied. Guard abilities
// and counter-boost hooks only react to changes the target did not inflict
// on itself.
type Source uint8

const (
	SourceSelf Source = iota
	SourceOpponent
	SourceField
)

var riseNarration = map[int]string{
	1: "%s's %s rose!",
	2: "%s's %s rose sharply!",
	3: "%s's %s rose drastically!",
}

var fallNarration = map[int]string{
	-1: "%s's %s fell!",
	-2: "%s's %s harshly fell!",
	-3: "%s's %s severely fell!",
}

// AppendStat applies a stage delta to one of the target's seven staged
// stats and returns the narration. The pipeline runs in a fixed order:
// substitute shield, delta-warping abilities, clamp, drop guards, apply,
// narrate, then post-change hooks. checkLooping must be false on any
// re-entrant call so mirrored reflection and copy-on-boost abilities
// cannot ping-pong forever.
func (b *Battle) AppendStat(target *Combatant, delta int, attacker *Combatant, move *dex.Move, stat dex.Stat, source Source, checkLooping bool) string {
	var n narration

	if target == nil || !target.Alive() || delta == 0 {
		return ""
	}

	if target.Substitute > 0 && source != SourceSelf && move != nil && move.IsAffectedBySubstitute {
		return ""
	}

	if target.HasAbility(dex.AbilitySimple) {
		delta *= 2
	}
	if target.HasAbility(dex.AbilityContrary) {
		delta = -delta
	}

	clamped := stats.ClampDelta(target.Stages[stat], delta)
	if clamped == 0 {
		if delta > 0 {
			n.add("%s's %s won't go any higher!", target.Name(), stat)
		} else {
			n.add("%s's %s won't go any lower!", target.Name(), stat)
		}
		return n.String()
	}

	if clamped < 0 && source != SourceSelf {
		if blocker, blocked := target.dropGuard(stat); blocked {
			n.add("%s's %s prevents stat loss!", target.Name(), capitalizedAbility(blocker))
			return n.String()
		}
		if b.Ally(target).Screens.Mist.Active() {
			n.add("%s is protected by the mist!", target.Name())
			return n.String()
		}
		if target.HasAbility(dex.AbilityMirrorArmor) && checkLooping {
			n.add("%s's Mirror Armor bounced the stat drop back!", target.Name())
			if attacker != nil && attacker.Alive() {
				n.merge(b.AppendStat(attacker, delta, target, move, stat, SourceOpponent, false))
			}
			return n.String()
		}
	}

	target.Stages[stat] += clamped
	if clamped > 0 {
		target.StatRaisedThisTurn = true
	} else {
		target.StatDroppedThisTurn = true
	}

	bucket := clamped
	if bucket > 3 {
		bucket = 3
	}
	if bucket < -3 {
		bucket = -3
	}
	if bucket > 0 {
		n.add(riseNarration[bucket], target.Name(), stat)
	} else {
		n.add(fallNarration[bucket], target.Name(), stat)
	}

	if clamped < 0 && source != SourceSelf {
		switch {
		case target.HasAbility(dex.AbilityDefiant):
			n.add("%s's Defiant!", target.Name())
			n.merge(b.AppendStat(target, 2, nil, nil, dex.StatAttack, SourceSelf, false))
		case target.HasAbility(dex.AbilityCompetitive):
			n.add("%s's Competitive!", target.Name())
			n.merge(b.AppendStat(target, 2, nil, nil, dex.StatSpAttack, SourceSelf, false))
		}
		if target.Item.Is(dex.ItemEjectPack) && len(b.Ally(target).LivingBench()) > 0 {
			target.Item.Consume()
			n.add("%s is switched out by its Eject Pack!", target.Name())
			n.merge(b.forcedSwitch(target))
		}
	}

	if clamped > 0 && checkLooping {
		for _, other := range b.Actives() {
			if other == target || !other.Alive() || !other.HasAbility(dex.AbilityOpportunist) {
				continue
			}
			n.add("%s copies the stat boost with Opportunist!", other.Name())
			n.merge(b.AppendStat(other, clamped, nil, nil, stat, SourceSelf, false))
		}
	}

	return n.String()
}

// dropGuard reports whether one of the target's stat-protection abilities
// blocks a drop of the given stat.
func (c *Combatant) dropGuard(stat dex.Stat) (dex.Ability, bool) {
	switch {
	case c.HasAbility(dex.AbilityClearBody):
		return dex.AbilityClearBody, true
	case c.HasAbility(dex.AbilityWhiteSmoke):
		return dex.AbilityWhiteSmoke, true
	case c.HasAbility(dex.AbilityFullMetalBody):
		return dex.AbilityFullMetalBody, true
	case stat == dex.StatAttack && c.HasAbility(dex.AbilityHyperCutter):
		return dex.AbilityHyperCutter, true
	case stat == dex.StatAccuracy && c.HasAbility(dex.AbilityKeenEye):
		return dex.AbilityKeenEye, true
	case stat == dex.StatDefense && c.HasAbility(dex.AbilityBigPecks):
		return dex.AbilityBigPecks, true
	}
	return dex.AbilityNone, false
}
