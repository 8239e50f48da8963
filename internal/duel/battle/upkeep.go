package battle

import "github.com/louisbranch/pokeduel/internal/duel/dex"

// NextTurn runs the end-of-turn upkeep and returns the narration. The
// steps run in a strict order, each visiting both sides in side order:
// per-turn flag resets, effect timer ticks, status progression, item
// passives, ability passives, cross-combatant effects, weather chip,
// binding damage, then regeneration.
func (b *Battle) NextTurn() string {
	var n narration
	b.Turn++

	for _, c := range b.Actives() {
		c.Flinched = false
		c.EnduringHit = false
		c.SwitchedInThisTurn = false
		c.StatRaisedThisTurn = false
		c.StatDroppedThisTurn = false
	}

	n.merge(b.tickFieldTimers())
	for _, c := range b.Actives() {
		n.merge(b.tickCombatantTimers(c))
	}

	for _, c := range b.Actives() {
		if c.Status == dex.StatusBadPoison {
			c.ToxicCounter++
		}
	}

	for _, c := range b.Actives() {
		n.merge(b.upkeepItems(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.upkeepAbilities(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.upkeepCrossEffects(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.weatherChip(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.bindingDamage(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.regeneration(c))
	}
	for _, c := range b.Actives() {
		n.merge(b.statusChip(c))
	}

	return n.String()
}

func (b *Battle) tickFieldTimers() string {
	var n narration
	if b.WeatherTurns.Tick() {
		n.merge(b.clearWeather())
	}
	if b.TerrainTurns.Tick() {
		n.merge(b.clearTerrain())
	}
	if b.Gravity.Tick() {
		n.add("Gravity returned to normal!")
	}
	if b.TrickRoom.Tick() {
		n.add("The twisted dimensions returned to normal!")
	}
	for _, s := range b.Sides {
		if s.Screens.Reflect.Tick() {
			n.add("The reflect barrier wore off!")
		}
		if s.Screens.LightScreen.Tick() {
			n.add("The light screen wore off!")
		}
		if s.Screens.AuroraVeil.Tick() {
			n.add("The aurora veil wore off!")
		}
		if s.Screens.Mist.Tick() {
			n.add("The mist faded!")
		}
	}
	return n.String()
}

func (b *Battle) clearWeather() string {
	b.Weather = WeatherNone
	b.WeatherTurns.Clear()
	var n narration
	n.add("The weather cleared up!")
	return n.String()
}

func (b *Battle) clearTerrain() string {
	b.Terrain = TerrainNone
	b.TerrainTurns.Clear()
	var n narration
	n.add("The terrain returned to normal!")
	return n.String()
}

func (b *Battle) tickCombatantTimers(c *Combatant) string {
	var n narration
	if c.Confusion.Tick() {
		n.add("%s snapped out of its confusion!", c.Name())
	}
	if c.Taunt.Tick() {
		n.add("%s's taunt wore off!", c.Name())
	}
	if c.Encore.Tick() {
		n.add("%s's encore ended!", c.Name())
	}
	if c.Disable.Tick() {
		n.add("%s is no longer disabled!", c.Name())
	}
	if c.MagnetRise.Tick() {
		n.add("%s's electromagnetism wore off!", c.Name())
	}
	if c.HealBlock.Tick() {
		n.add("%s's heal block wore off!", c.Name())
	}
	if c.Yawn.Tick() {
		n.merge(b.ApplyStatus(c, dex.StatusSleep, nil, nil))
	}
	if c.PerishCount.Active() {
		if c.PerishCount.Tick() {
			n.add("%s's perish count fell to 0!", c.Name())
			n.merge(b.Faint(c, DamageOpts{}, true))
		} else {
			n.add("%s's perish count fell to %d!", c.Name(), c.PerishCount.Turns())
		}
	}
	return n.String()
}

func (b *Battle) upkeepItems(c *Combatant) string {
	if !c.Alive() {
		return ""
	}
	var n narration
	switch {
	case c.Item.Is(dex.ItemLumBerry) && c.Status != dex.StatusNone:
		c.Item.Consume()
		n.merge(b.cureStatus(c, "its Lum Berry"))
	case c.Item.Is(dex.ItemToxicOrb) && c.Status == dex.StatusNone:
		n.merge(b.ApplyStatus(c, dex.StatusBadPoison, nil, nil))
	case c.Item.Is(dex.ItemFlameOrb) && c.Status == dex.StatusNone:
		n.merge(b.ApplyStatus(c, dex.StatusBurn, nil, nil))
	case c.Item.Is(dex.ItemLeftovers):
		n.merge(b.Heal(c, c.StartingHP/16, "its Leftovers"))
	case c.Item.Is(dex.ItemBlackSludge):
		if c.HasType(dex.TypePoison) {
			n.merge(b.Heal(c, c.StartingHP/16, "its Black Sludge"))
		} else {
			n.add("%s was hurt by its Black Sludge!", c.Name())
			n.merge(b.Damage(c, c.StartingHP/8, DamageOpts{}, true))
		}
	}
	return n.String()
}

func (b *Battle) upkeepAbilities(c *Combatant) string {
	if !c.Alive() {
		return ""
	}
	var n narration
	switch c.Ability {
	case dex.AbilitySpeedBoost:
		if !c.SwitchedInThisTurn {
			n.merge(b.AppendStat(c, 1, nil, nil, dex.StatSpeed, SourceSelf, true))
		}
	case dex.AbilityShedSkin:
		if c.Status != dex.StatusNone && b.Rng.Chance(30) {
			n.merge(b.cureStatus(c, "its Shed Skin"))
		}
	case dex.AbilityHydration:
		if c.Status != dex.StatusNone && b.Weather == WeatherRain {
			n.merge(b.cureStatus(c, "its Hydration"))
		}
	case dex.AbilityRainDish:
		if b.Weather == WeatherRain {
			n.merge(b.Heal(c, c.StartingHP/16, "its Rain Dish"))
		}
	case dex.AbilityIceBody:
		if b.Weather == WeatherSnow {
			n.merge(b.Heal(c, c.StartingHP/16, "its Ice Body"))
		}
	case dex.AbilityDrySkin:
		switch b.Weather {
		case WeatherRain:
			n.merge(b.Heal(c, c.StartingHP/8, "its Dry Skin"))
		case WeatherSun:
			n.add("%s's Dry Skin cracked in the sun!", c.Name())
			n.merge(b.Damage(c, c.StartingHP/8, DamageOpts{}, true))
		}
	case dex.AbilitySolarPower:
		if b.Weather == WeatherSun {
			n.add("%s was hurt by its Solar Power!", c.Name())
			n.merge(b.Damage(c, c.StartingHP/8, DamageOpts{}, true))
		}
	case dex.AbilitySchooling:
		if c.SpeciesKey == "wishiwashi" && c.HP > c.StartingHP/4 {
			n.merge(b.changeForm(c, "wishiwashi-school"))
			n.add("%s formed a school!", c.Name())
		}
	case dex.AbilityZenMode:
		if c.SpeciesKey == "darmanitan" && c.HP <= c.StartingHP/2 {
			n.merge(b.changeForm(c, "darmanitan-zen"))
			n.add("%s's Zen Mode triggered!", c.Name())
		} else if c.SpeciesKey == "darmanitan-zen" && c.HP > c.StartingHP/2 {
			n.merge(b.changeForm(c, "darmanitan"))
		}
	}
	return n.String()
}

func (b *Battle) upkeepCrossEffects(c *Combatant) string {
	if !c.Alive() {
		return ""
	}
	var n narration
	opp := b.Opposing(c).Active

	if c.HasAbility(dex.AbilityBadDreams) && opp != nil && opp.Alive() && opp.Status == dex.StatusSleep {
		n.add("%s is tormented by bad dreams!", opp.Name())
		n.merge(b.Damage(opp, opp.StartingHP/8, DamageOpts{}, true))
	}

	if c.LeechSeeded && opp != nil && opp.Alive() {
		drained := c.StartingHP / 8
		n.add("%s's health was sapped by the leech seed!", c.Name())
		n.merge(b.Damage(c, drained, DamageOpts{}, true))
		if opp.Item.Is(dex.ItemBigRoot) {
			drained = drained * 13 / 10
		}
		n.merge(b.Heal(opp, drained, "the leech seed"))
	}

	if c.Cursed && c.Alive() {
		n.add("%s is afflicted by the curse!", c.Name())
		n.merge(b.Damage(c, c.StartingHP/4, DamageOpts{}, true))
	}

	return n.String()
}

func (b *Battle) weatherChip(c *Combatant) string {
	if !c.Alive() || b.Weather != WeatherSandstorm {
		return ""
	}
	if c.HasType(dex.TypeRock) || c.HasType(dex.TypeSteel) || c.HasType(dex.TypeGround) {
		return ""
	}
	switch c.Ability {
	case dex.AbilitySandForce, dex.AbilitySandRush, dex.AbilitySandVeil, dex.AbilityOvercoat:
		return ""
	}
	if c.Item.Is(dex.ItemSafetyGoggles) {
		return ""
	}
	var n narration
	n.add("%s is buffeted by the sandstorm!", c.Name())
	n.merge(b.Damage(c, c.StartingHP/16, DamageOpts{}, true))
	return n.String()
}

func (b *Battle) bindingDamage(c *Combatant) string {
	if !c.Alive() || !c.Bind.Active() {
		return ""
	}
	var n narration
	move := dex.DisplayName(c.Bind.Payload())

	frac := 8
	if c.BindSharp {
		frac = 6
	}
	n.add("%s is hurt by %s!", c.Name(), move)
	n.merge(b.Damage(c, c.StartingHP/frac, DamageOpts{}, true))

	if c.Bind.Tick() {
		c.BindSharp = false
		n.add("%s was freed from %s!", c.Name(), move)
	}
	return n.String()
}

func (b *Battle) regeneration(c *Combatant) string {
	if !c.Alive() {
		return ""
	}
	var n narration
	boost := func(amount int) int {
		if c.Item.Is(dex.ItemBigRoot) {
			return amount * 13 / 10
		}
		return amount
	}
	if c.Ingrained {
		n.merge(b.Heal(c, boost(c.StartingHP/16), "its roots"))
	}
	if c.AquaRinged {
		n.merge(b.Heal(c, boost(c.StartingHP/16), "its aqua ring"))
	}
	if b.Terrain == TerrainGrassy && c.Grounded(b) {
		n.merge(b.Heal(c, c.StartingHP/16, "the grassy terrain"))
	}
	return n.String()
}

// statusChip is the poison and burn residual, last so healing effects can
// offset it within the same upkeep.
func (b *Battle) statusChip(c *Combatant) string {
	if !c.Alive() {
		return ""
	}
	var n narration
	switch c.Status {
	case dex.StatusPoison:
		n.add("%s is hurt by poison!", c.Name())
		n.merge(b.Damage(c, c.StartingHP/8, DamageOpts{}, true))
	case dex.StatusBadPoison:
		n.add("%s is hurt by poison!", c.Name())
		n.merge(b.Damage(c, c.StartingHP*c.ToxicCounter/16, DamageOpts{}, true))
	case dex.StatusBurn:
		n.add("%s is hurt by its burn!", c.Name())
		n.merge(b.Damage(c, c.StartingHP/16, DamageOpts{}, true))
	}
	return n.String()
}
