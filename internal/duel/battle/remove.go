package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// Remove withdraws the side's active combatant to the bench and returns the
// narration. Pre-removal abilities fire first, then every battle-scoped
// field resets to its starting baseline. HP, fainted bookkeeping,
// non-volatile status, PP, and item history survive the reset.
func (b *Battle) Remove(sideIndex int) (string, error) {
	side := b.Sides[sideIndex]
	c := side.Active
	if c == nil {
		return "", errors.WithMetadata(errors.CodeBattleNoActiveCombatant,
			"no active combatant to remove", map[string]string{"side": side.name()})
	}
	var n narration

	switch c.Ability {
	case dex.AbilityNaturalCure:
		if c.Status != dex.StatusNone {
			n.merge(b.cureStatus(c, "its Natural Cure"))
		}
	case dex.AbilityRegenerator:
		n.merge(b.Heal(c, c.StartingHP/3, "its Regenerator"))
	case dex.AbilityZeroToHero:
		if c.SpeciesKey == "palafin" {
			n.merge(b.changeForm(c, "palafin-hero"))
		}
	}

	n.add("%s withdrew!", c.Name())
	n.merge(b.removeBookkeeping(c))

	side.Active = nil
	side.Bench = append(side.Bench, c)
	return n.String(), nil
}

// removeBookkeeping resets the combatant to its send-out baseline: ability
// identity, type set, form, and every volatile condition. The hero form is
// the one form change that sticks for the rest of the duel. A trapper
// leaving play releases whoever it held.
func (b *Battle) removeBookkeeping(c *Combatant) string {
	var n narration
	if c.Trapping {
		if opp := b.Opposing(c).Active; opp != nil && opp.Bind.Active() {
			n.add("%s was freed from %s!", opp.Name(), dex.DisplayName(opp.Bind.Payload()))
			opp.Bind.Clear()
			opp.BindSharp = false
		}
	}
	c.clearVolatiles()

	c.Ability = c.StartingAbility
	if c.SpeciesKey != c.StartingSpeciesKey && c.SpeciesKey != "palafin-hero" {
		species, err := b.species(c.StartingSpeciesKey)
		if err != nil {
			panic(err)
		}
		c.SpeciesKey = c.StartingSpeciesKey
		c.Species = species
	}
	c.Types = append([]dex.Type(nil), c.Species.Types...)
	return n.String()
}

// forcedSwitch is the mid-turn removal an eject item or escape ability
// performs: an immediate synchronous withdraw-and-replace, never a
// suspension. The first living bench member comes in.
func (b *Battle) forcedSwitch(c *Combatant) string {
	side := b.Ally(c)
	living := side.LivingBench()
	if side.Active != c || len(living) == 0 {
		return ""
	}
	out, err := b.SendOut(side.index, living[0])
	if err != nil {
		logger.Error().Err(err).Str("battle", b.ID).Msg("forced switch failed")
		return ""
	}
	return out
}
