package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/timer"
)

// ApplyStatus attempts to inflict a non-volatile status and returns the
// narration. Type, terrain, ability, and already-statused immunities all
// resolve to expected no-op messages, never errors.
func (b *Battle) ApplyStatus(target *Combatant, status dex.StatusCondition, source *Combatant, move *dex.Move) string {
	var n narration

	if target == nil || target.Fainted || status == dex.StatusNone {
		return ""
	}
	if target.Status != dex.StatusNone {
		n.add("%s is already %s!", target.Name(), target.Status)
		return n.String()
	}
	if target.Substitute > 0 && source != target && move != nil && move.IsAffectedBySubstitute {
		n.add("But it failed!")
		return n.String()
	}

	if immune, why := b.statusImmunity(target, status); immune {
		n.add("%s %s!", target.Name(), why)
		return n.String()
	}

	target.Status = status
	switch status {
	case dex.StatusSleep:
		target.SleepTurns = 1 + b.Rng.Intn(3)
		n.add("%s fell asleep!", target.Name())
	case dex.StatusParalysis:
		n.add("%s was paralyzed!", target.Name())
	case dex.StatusPoison:
		n.add("%s was poisoned!", target.Name())
	case dex.StatusBadPoison:
		target.ToxicCounter = 0
		n.add("%s was badly poisoned!", target.Name())
	case dex.StatusBurn:
		n.add("%s was burned!", target.Name())
	case dex.StatusFreeze:
		n.add("%s was frozen solid!", target.Name())
	}

	if target.Item.Is(dex.ItemLumBerry) {
		target.Item.Consume()
		n.merge(b.cureStatus(target, "its Lum Berry"))
	}

	return n.String()
}

// statusImmunity reports whether the target cannot take the status, with
// the narration fragment explaining why.
func (b *Battle) statusImmunity(target *Combatant, status dex.StatusCondition) (bool, string) {
	switch status {
	case dex.StatusParalysis:
		if target.HasType(dex.TypeElectric) {
			return true, "can't be paralyzed"
		}
	case dex.StatusBurn:
		if target.HasType(dex.TypeFire) {
			return true, "can't be burned"
		}
	case dex.StatusPoison, dex.StatusBadPoison:
		if target.HasType(dex.TypePoison) || target.HasType(dex.TypeSteel) {
			return true, "can't be poisoned"
		}
		if target.HasAbility(dex.AbilityPastelVeil) {
			return true, "is protected by its Pastel Veil"
		}
	case dex.StatusFreeze:
		if target.HasType(dex.TypeIce) {
			return true, "can't be frozen"
		}
		if b.Weather == WeatherSun {
			return true, "can't be frozen in the harsh sunlight"
		}
	case dex.StatusSleep:
		if b.Terrain == TerrainElectric && target.Grounded(b) {
			return true, "can't sleep on the electric terrain"
		}
	}
	if b.Terrain == TerrainMisty && target.Grounded(b) {
		return true, "is protected by the misty terrain"
	}
	return false, ""
}

// cureStatus clears the non-volatile status and its progression counters.
func (b *Battle) cureStatus(target *Combatant, source string) string {
	if target.Status == dex.StatusNone {
		return ""
	}
	was := target.Status
	target.Status = dex.StatusNone
	target.SleepTurns = 0
	target.ToxicCounter = 0

	var n narration
	n.add("%s was cured of its %s by %s!", target.Name(), was, source)
	return n.String()
}

// ApplyConfusion starts a 2-5 turn confusion.
func (b *Battle) ApplyConfusion(target *Combatant) string {
	var n narration
	if target.Confusion.Active() {
		n.add("%s is already confused!", target.Name())
		return n.String()
	}
	target.Confusion.Set(2 + b.Rng.Intn(4))
	n.add("%s became confused!", target.Name())
	return n.String()
}

// applySubstitute carves a quarter of the user's maximum HP into a decoy.
func (b *Battle) applySubstitute(user *Combatant) string {
	var n narration
	cost := user.StartingHP / 4
	if user.Substitute > 0 {
		n.add("%s already has a substitute!", user.Name())
		return n.String()
	}
	if user.HP <= cost {
		n.add("%s is too weak to make a substitute!", user.Name())
		return n.String()
	}
	user.HP -= cost
	user.Substitute = cost
	n.add("%s put in a substitute!", user.Name())
	return n.String()
}

func (b *Battle) applyTaunt(target *Combatant) string {
	var n narration
	if target.Taunt.Active() {
		n.add("But it failed!")
		return n.String()
	}
	target.Taunt.Set(3)
	n.add("%s fell for the taunt!", target.Name())
	return n.String()
}

func (b *Battle) applyDisable(target *Combatant) string {
	var n narration
	if target.Disable.Active() || target.LastMoveKey == "" {
		n.add("But it failed!")
		return n.String()
	}
	target.Disable.Set(4, target.LastMoveKey)
	n.add("%s's %s was disabled!", target.Name(), dex.DisplayName(target.LastMoveKey))
	return n.String()
}

func (b *Battle) applyEncore(target *Combatant) string {
	var n narration
	if target.Encore.Active() || target.LastMoveKey == "" {
		n.add("But it failed!")
		return n.String()
	}
	target.Encore.Set(3, target.LastMoveKey)
	n.add("%s received an encore!", target.Name())
	return n.String()
}

func (b *Battle) applyLeechSeed(target *Combatant) string {
	var n narration
	if target.LeechSeeded || target.HasType(dex.TypeGrass) {
		n.add("But it failed!")
		return n.String()
	}
	target.LeechSeeded = true
	n.add("%s was seeded!", target.Name())
	return n.String()
}

// applyCurse is the ghost variant: the user pays half its maximum HP to
// curse the target.
func (b *Battle) applyCurse(user, target *Combatant) string {
	var n narration
	if target.Cursed {
		n.add("But it failed!")
		return n.String()
	}
	target.Cursed = true
	n.add("%s cut its own HP and laid a curse on %s!", user.Name(), target.Name())
	n.merge(b.Damage(user, user.StartingHP/2, DamageOpts{Self: true}, false))
	return n.String()
}

func (b *Battle) applyBind(attacker, target *Combatant, move *dex.Move) string {
	var n narration
	if target.Bind.Active() {
		n.add("But it failed!")
		return n.String()
	}
	turns := 4 + b.Rng.Intn(2)
	target.Bind.Set(turns, move.Key)
	target.BindSharp = attacker.Item.Is(dex.ItemBindingBand)
	attacker.Trapping = true
	n.add("%s was trapped by %s!", target.Name(), dex.DisplayName(move.Key))
	return n.String()
}

func (b *Battle) applyDestinyBond(user *Combatant) string {
	user.DestinyBonded = true
	var n narration
	n.add("%s is hoping to take its attacker down with it!", user.Name())
	return n.String()
}

func (b *Battle) applyIngrain(user *Combatant) string {
	var n narration
	if user.Ingrained {
		n.add("But it failed!")
		return n.String()
	}
	user.Ingrained = true
	n.add("%s planted its roots!", user.Name())
	return n.String()
}

func (b *Battle) applyAquaRing(user *Combatant) string {
	var n narration
	if user.AquaRinged {
		n.add("But it failed!")
		return n.String()
	}
	user.AquaRinged = true
	n.add("%s surrounded itself with a veil of water!", user.Name())
	return n.String()
}

func (b *Battle) applyInfatuation(target, source *Combatant) string {
	var n narration
	if !oppositeGenders(target, source) || target.Infatuation.Active() {
		n.add("But it failed!")
		return n.String()
	}
	target.Infatuation.Set(timer.Indefinite)
	n.add("%s fell in love with %s!", target.Name(), source.Name())
	return n.String()
}
