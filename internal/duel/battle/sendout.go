package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// SendOut brings a bench member into play and returns the narration. The
// phases run in a fixed order: illusion setup first (it changes the name
// every later line uses), then trap clearing, inheritance, entry hazards,
// send-out abilities, and terrain-conditional items. A living active
// combatant is removed first.
func (b *Battle) SendOut(sideIndex, benchIndex int) (string, error) {
	side := b.Sides[sideIndex]
	var n narration

	if side.Active != nil && side.Active.Alive() {
		out, err := b.Remove(sideIndex)
		if err != nil {
			return "", err
		}
		n.merge(out)
	}

	living := side.LivingBench()
	valid := false
	for _, i := range living {
		if i == benchIndex {
			valid = true
		}
	}
	if !valid {
		return "", errors.WithMetadata(errors.CodeBattleInvalidBenchIndex,
			"bench index is not a usable combatant", map[string]string{"side": side.name()})
	}

	c := side.Bench[benchIndex]
	side.Bench = append(side.Bench[:benchIndex], side.Bench[benchIndex+1:]...)

	if c.HasAbility(dex.AbilityIllusion) {
		if mask := side.illusionMask(c); mask != "" {
			c.IllusionOf = mask
		}
	}

	n.add("Go! %s!", c.Name())

	if opp := b.Sides[1-sideIndex].Active; opp != nil {
		opp.Trapping = false
	}

	side.Active = c
	c.SwitchedInThisTurn = true

	if side.pending != nil {
		p := side.pending
		side.pending = nil
		if p.hasStages {
			c.Stages = p.stages
		}
		if p.substitute > 0 {
			c.Substitute = p.substitute
		}
		if p.leechSeed && !c.HasType(dex.TypeGrass) {
			c.LeechSeeded = true
		}
		n.add("%s inherited its teammate's boosts!", c.Name())
	}

	n.merge(b.entryHazards(c))
	if !c.Alive() {
		return n.String(), nil
	}

	n.merge(b.sendOutAbilities(c, true))
	n.merge(b.entryItems(c))

	return n.String(), nil
}

// entryHazards applies the side's hazards to the incoming combatant:
// grounded hazards first, stealth rock last. Heavy-duty boots skip every
// hazard, but a grounded poison type still soaks up toxic spikes.
func (b *Battle) entryHazards(c *Combatant) string {
	var n narration
	h := &b.Ally(c).Hazards
	boots := c.Item.Is(dex.ItemHeavyDutyBoots)
	grounded := c.Grounded(b)

	if h.ToxicSpikesLayers > 0 && grounded {
		if c.HasType(dex.TypePoison) {
			h.ToxicSpikesLayers = 0
			n.add("%s absorbed the toxic spikes!", c.Name())
		} else if !boots {
			status := dex.StatusPoison
			if h.ToxicSpikesLayers >= 2 {
				status = dex.StatusBadPoison
			}
			n.merge(b.ApplyStatus(c, status, nil, nil))
		}
	}

	if h.SpikesLayers > 0 && grounded && !boots && c.Alive() {
		frac := [4]int{0, 8, 6, 4}[min(h.SpikesLayers, 3)]
		n.add("%s was hurt by the spikes!", c.Name())
		n.merge(b.Damage(c, c.StartingHP/frac, DamageOpts{}, true))
	}

	if h.StickyWeb && grounded && !boots && c.Alive() {
		n.add("%s was caught in a sticky web!", c.Name())
		n.merge(b.AppendStat(c, -1, nil, nil, dex.StatSpeed, SourceOpponent, true))
	}

	if h.StealthRock && !boots && c.Alive() {
		mult := 1.0
		for _, t := range c.Types {
			mult *= float64(b.Chart.Multiplier(dex.TypeRock, t)) / 100
		}
		if mult > 0 {
			n.add("Pointed stones dug into %s!", c.Name())
			n.merge(b.Damage(c, int(float64(c.StartingHP)*mult/8), DamageOpts{}, true))
		}
	}

	return n.String()
}

// sendOutAbilities dispatches the incoming combatant's ability. allowTrace
// is the recursion guard: a traced ability re-enters this routine once with
// the guard down.
func (b *Battle) sendOutAbilities(c *Combatant, allowTrace bool) string {
	var n narration
	opp := b.Opposing(c).Active

	switch c.Ability {
	case dex.AbilityDrizzle:
		n.merge(b.SetWeather(WeatherRain, 5))
	case dex.AbilityDrought:
		n.merge(b.SetWeather(WeatherSun, 5))
	case dex.AbilitySandStream:
		n.merge(b.SetWeather(WeatherSandstorm, 5))
	case dex.AbilitySnowWarning:
		n.merge(b.SetWeather(WeatherSnow, 5))
	case dex.AbilityElectricSurge:
		n.merge(b.SetTerrain(TerrainElectric, 5))
	case dex.AbilityGrassySurge:
		n.merge(b.SetTerrain(TerrainGrassy, 5))
	case dex.AbilityMistySurge:
		n.merge(b.SetTerrain(TerrainMisty, 5))
	case dex.AbilityPsychicSurge:
		n.merge(b.SetTerrain(TerrainPsychic, 5))
	case dex.AbilityDarkAura:
		n.add("%s is radiating a dark aura!", c.Name())
	case dex.AbilityFairyAura:
		n.add("%s is radiating a fairy aura!", c.Name())
	case dex.AbilityAuraBreak:
		n.add("%s reversed all other Pokémon's auras!", c.Name())
	case dex.AbilityTabletsOfRuin, dex.AbilitySwordOfRuin, dex.AbilityVesselOfRuin, dex.AbilityBeadsOfRuin:
		n.add("%s's %s weakened its foes!", c.Name(), capitalizedAbility(c.Ability))
	case dex.AbilityIntimidate:
		if opp != nil && opp.Alive() {
			n.merge(b.intimidate(c, opp))
		}
	case dex.AbilityScreenCleaner:
		for _, s := range b.Sides {
			s.Screens.Clear()
		}
		n.add("%s swept away all screens!", c.Name())
	case dex.AbilityTrace:
		if allowTrace && opp != nil && opp.Alive() && opp.Ability != dex.AbilityNone && opp.Ability != dex.AbilityTrace {
			c.Ability = opp.Ability
			n.add("%s traced %s's %s!", c.Name(), opp.Name(), capitalizedAbility(opp.Ability))
			n.merge(b.sendOutAbilities(c, false))
		}
	case dex.AbilityDownload:
		if opp != nil && opp.Alive() {
			target := dex.StatAttack
			if b.EffectiveStat(opp, dex.StatDefense, stats.CropNone) >= b.EffectiveStat(opp, dex.StatSpDefense, stats.CropNone) {
				target = dex.StatSpAttack
			}
			n.add("%s's Download!", c.Name())
			n.merge(b.AppendStat(c, 1, nil, nil, target, SourceSelf, false))
		}
	case dex.AbilityForecast:
		n.merge(b.forecastForm(c))
	case dex.AbilityMultitype:
		if plate := c.Item.Flags().PlateType; plate != nil {
			c.Types = []dex.Type{*plate}
			n.add("%s transformed into the %s type!", c.Name(), *plate)
		}
	case dex.AbilityRKSSystem:
		if mem := c.Item.Flags().PlateType; mem != nil {
			c.Types = []dex.Type{*mem}
			n.add("%s transformed into the %s type!", c.Name(), *mem)
		}
	case dex.AbilityPastelVeil:
		side := b.Sides[c.side]
		for _, member := range append([]*Combatant{c}, side.Bench...) {
			if member.Status == dex.StatusPoison || member.Status == dex.StatusBadPoison {
				n.merge(b.cureStatus(member, "its Pastel Veil"))
			}
		}
	}

	n.merge(b.refreshParadoxBoost(c))
	return n.String()
}

// intimidate runs the attack-drop sub-branch with its immunity checks.
func (b *Battle) intimidate(source, target *Combatant) string {
	var n narration
	n.add("%s intimidates %s!", source.Name(), target.Name())
	switch {
	case target.HasAbility(dex.AbilityOblivious), target.HasAbility(dex.AbilityOwnTempo),
		target.HasAbility(dex.AbilityInnerFocus):
		n.add("%s's %s prevents it from being intimidated!", target.Name(), capitalizedAbility(target.Ability))
	case target.HasAbility(dex.AbilityGuardDog):
		n.add("%s's Guard Dog!", target.Name())
		n.merge(b.AppendStat(target, 1, nil, nil, dex.StatAttack, SourceSelf, false))
	default:
		n.merge(b.AppendStat(target, -1, source, nil, dex.StatAttack, SourceOpponent, true))
	}
	return n.String()
}

// forecastForm syncs a forecaster's type to the weather.
func (b *Battle) forecastForm(c *Combatant) string {
	var t dex.Type
	switch b.Weather {
	case WeatherRain:
		t = dex.TypeWater
	case WeatherSun:
		t = dex.TypeFire
	case WeatherSnow:
		t = dex.TypeIce
	default:
		t = dex.TypeNormal
	}
	if c.HasType(t) && len(c.Types) == 1 {
		return ""
	}
	c.Types = []dex.Type{t}

	var n narration
	n.add("%s transformed into the %s type!", c.Name(), t)
	return n.String()
}

// entryItems fires items that react to entering the field.
func (b *Battle) entryItems(c *Combatant) string {
	var n narration

	seed := dex.ItemNone
	var stat dex.Stat
	switch b.Terrain {
	case TerrainElectric:
		seed, stat = dex.ItemElectricSeed, dex.StatDefense
	case TerrainGrassy:
		seed, stat = dex.ItemGrassySeed, dex.StatDefense
	case TerrainMisty:
		seed, stat = dex.ItemMistySeed, dex.StatSpDefense
	case TerrainPsychic:
		seed, stat = dex.ItemPsychicSeed, dex.StatSpDefense
	}
	if seed != dex.ItemNone && c.Item.Is(seed) && c.Grounded(b) {
		c.Item.Consume()
		n.add("%s used its %s!", c.Name(), dex.DisplayName(string(seed)))
		n.merge(b.AppendStat(c, 1, nil, nil, stat, SourceSelf, false))
	}

	if c.Item.Is(dex.ItemAirBalloon) {
		n.add("%s floats in the air with its Air Balloon!", c.Name())
	}

	return n.String()
}

// SetWeather replaces the shared weather slot. Setting the active weather
// again is an expected no-op.
func (b *Battle) SetWeather(w Weather, turns int) string {
	if b.Weather == w {
		return ""
	}
	b.Weather = w
	b.WeatherTurns.Set(turns)

	var n narration
	switch w {
	case WeatherRain:
		n.add("It started to rain!")
	case WeatherSun:
		n.add("The sunlight turned harsh!")
	case WeatherSandstorm:
		n.add("A sandstorm kicked up!")
	case WeatherSnow:
		n.add("It started to snow!")
	case WeatherNone:
		n.add("The weather cleared up!")
	}

	for _, c := range b.Actives() {
		n.merge(b.refreshParadoxBoost(c))
		if c.HasAbility(dex.AbilityForecast) {
			n.merge(b.forecastForm(c))
		}
	}
	return n.String()
}

// SetTerrain replaces the shared terrain slot.
func (b *Battle) SetTerrain(t Terrain, turns int) string {
	if b.Terrain == t {
		return ""
	}
	b.Terrain = t
	b.TerrainTurns.Set(turns)

	var n narration
	switch t {
	case TerrainElectric:
		n.add("An electric current ran across the battlefield!")
	case TerrainGrassy:
		n.add("Grass grew to cover the battlefield!")
	case TerrainMisty:
		n.add("Mist swirled around the battlefield!")
	case TerrainPsychic:
		n.add("The battlefield got weird!")
	case TerrainNone:
		n.add("The terrain returned to normal!")
	}

	for _, c := range b.Actives() {
		n.merge(b.refreshParadoxBoost(c))
	}
	return n.String()
}
