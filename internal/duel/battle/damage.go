package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/timer"
)

// DamageOpts describes the provenance of a damage event. A nil Move means
// indirect damage (hazards, weather, status chip); a nil Attacker means the
// field itself dealt it.
type DamageOpts struct {
	Attacker *Combatant
	Move     *dex.Move
	Crit     bool

	// Self marks an HP cost the target pays for its own action, such as
	// laying a curse or hurting itself in confusion.
	Self bool
}

// Damage applies a damage event to the target and returns the narration.
// The pipeline runs in a fixed order: no-op pre-checks, substitute
// absorption, shield form conversion, survival clauses, HP application,
// drain, then either the faint cascade or the post-damage trigger lists.
// checkLooping must be false on re-entrant calls (helmet recoil, destiny
// bond, aftermath) so mutual triggers cannot cascade forever.
func (b *Battle) Damage(target *Combatant, amount int, opts DamageOpts, checkLooping bool) string {
	var n narration

	if target == nil || target.Fainted {
		return ""
	}
	if amount < 1 {
		amount = 1
	}

	// Indirect damage never touches a magic guard holder. Costs the
	// holder pays for its own actions still land.
	if opts.Move == nil && !opts.Self && target.HasAbility(dex.AbilityMagicGuard) {
		return ""
	}

	if opts.Move != nil && target.IllusionOf != "" {
		target.IllusionOf = ""
		n.add("%s's illusion wore off!", target.Name())
	}

	if target.Substitute > 0 && opts.Move != nil && opts.Move.IsAffectedBySubstitute && opts.Attacker != target {
		if amount >= target.Substitute {
			target.Substitute = 0
			n.add("%s's substitute faded!", target.Name())
		} else {
			target.Substitute -= amount
			n.add("The substitute took the damage in %s's place!", target.Name())
		}
		return n.String()
	}

	if line, shielded := b.shieldForm(target, opts); shielded {
		n.merge(line)
		return n.String()
	}

	if amount >= target.HP {
		if line, held := b.survivalClause(target, amount); held {
			n.merge(line)
			amount = target.HP - 1
		}
	}

	dealt := amount
	if dealt > target.HP {
		dealt = target.HP
	}
	target.HP -= dealt
	n.add("%s took %d damage!", target.Name(), dealt)

	if opts.Move != nil && opts.Move.DrainPercent > 0 && opts.Attacker != nil && opts.Attacker.Alive() {
		drained := dealt * opts.Move.DrainPercent / 100
		if opts.Attacker.Item.Is(dex.ItemBigRoot) {
			drained = drained * 13 / 10
		}
		if target.HasAbility(dex.AbilityLiquidOoze) {
			n.add("%s sucked up the liquid ooze!", opts.Attacker.Name())
			n.merge(b.Damage(opts.Attacker, drained, DamageOpts{}, false))
		} else {
			n.merge(b.Heal(opts.Attacker, drained, "drained health"))
		}
	}

	if target.HP == 0 {
		n.merge(b.Faint(target, opts, checkLooping))
		return n.String()
	}

	n.merge(b.onDamageTriggers(target, dealt, opts))
	if checkLooping {
		n.merge(b.contactTriggers(target, opts))
	}
	return n.String()
}

// shieldForm converts a would-be hit into a one-time form change plus fixed
// chip damage for the disguise and ice-face species.
func (b *Battle) shieldForm(target *Combatant, opts DamageOpts) (string, bool) {
	if opts.Move == nil {
		return "", false
	}
	var n narration

	if target.HasAbility(dex.AbilityDisguise) && target.SpeciesKey == "mimikyu" {
		n.add("%s's disguise was busted!", target.Name())
		n.merge(b.changeForm(target, "mimikyu-busted"))
		n.merge(b.Damage(target, target.StartingHP/8, DamageOpts{}, false))
		return n.String(), true
	}

	if target.HasAbility(dex.AbilityIceFace) && target.SpeciesKey == "eiscue" && opts.Move.Class == dex.ClassPhysical {
		n.add("%s's ice face took the hit!", target.Name())
		n.merge(b.changeForm(target, "eiscue-noice"))
		return n.String(), true
	}

	return "", false
}

// survivalClause checks the lethal-hit holdouts in fixed priority: an
// endure flag, then sturdy at full HP, then a focus sash at full HP
// (consumed), then a focus band roll (kept).
func (b *Battle) survivalClause(target *Combatant, amount int) (string, bool) {
	var n narration
	switch {
	case target.EnduringHit:
		n.add("%s endured the hit!", target.Name())
	case target.HasAbility(dex.AbilitySturdy) && target.AtFullHP():
		n.add("%s endured the hit with Sturdy!", target.Name())
	case target.Item.Is(dex.ItemFocusSash) && target.AtFullHP():
		target.Item.Consume()
		n.add("%s hung on using its Focus Sash!", target.Name())
	case target.Item.Is(dex.ItemFocusBand) && b.Rng.Chance(10):
		n.add("%s hung on using its Focus Band!", target.Name())
	default:
		return "", false
	}
	return n.String(), true
}

// onDamageTriggers runs the strictly ordered non-contact reactions to a
// surviving hit: type morphing, crit rage, move-type reactions, then the
// half- and quarter-HP threshold crossings.
func (b *Battle) onDamageTriggers(target *Combatant, dealt int, opts DamageOpts) string {
	var n narration
	before := target.HP + dealt

	if opts.Move != nil {
		if target.HasAbility(dex.AbilityColorChange) && !target.HasType(opts.Move.Type) {
			target.Types = []dex.Type{opts.Move.Type}
			n.add("%s's Color Change made it the %s type!", target.Name(), opts.Move.Type)
		}
		if opts.Crit && target.HasAbility(dex.AbilityAngerPoint) {
			target.Stages[dex.StatAttack] = 6
			n.add("%s maxed its attack with Anger Point!", target.Name())
		}
		if target.HasAbility(dex.AbilityRattled) &&
			(opts.Move.Type == dex.TypeBug || opts.Move.Type == dex.TypeGhost || opts.Move.Type == dex.TypeDark) {
			n.merge(b.AppendStat(target, 1, nil, nil, dex.StatSpeed, SourceSelf, false))
		}
		if target.HasAbility(dex.AbilityJustified) && opts.Move.Type == dex.TypeDark {
			n.merge(b.AppendStat(target, 1, nil, nil, dex.StatAttack, SourceSelf, false))
		}
	}

	half := target.StartingHP / 2
	quarter := target.StartingHP / 4

	if before > half && target.HP <= half {
		if target.HasAbility(dex.AbilityBerserk) {
			n.add("%s's Berserk!", target.Name())
			n.merge(b.AppendStat(target, 1, nil, nil, dex.StatSpAttack, SourceSelf, false))
		}
		if target.Item.Is(dex.ItemSitrusBerry) {
			target.Item.Consume()
			n.add("%s ate its Sitrus Berry!", target.Name())
			n.merge(b.Heal(target, target.StartingHP/4, "the berry"))
		}
		if target.HasAbility(dex.AbilityEmergencyExit) && len(b.Ally(target).LivingBench()) > 0 {
			n.add("%s fled with Emergency Exit!", target.Name())
			n.merge(b.forcedSwitch(target))
			return n.String()
		}
	}

	if before > quarter && target.HP <= quarter && target.Item.Is(dex.ItemLiechiBerry) {
		target.Item.Consume()
		n.add("%s ate its Liechi Berry!", target.Name())
		n.merge(b.AppendStat(target, 1, nil, nil, dex.StatAttack, SourceSelf, false))
	}

	if target.SpeciesKey == "wishiwashi-school" && target.HasAbility(dex.AbilitySchooling) && target.HP <= quarter {
		n.merge(b.changeForm(target, "wishiwashi"))
		n.add("%s's school scattered!", target.Name())
	}

	return n.String()
}

// contactTriggers runs the strictly ordered contact-only reactions.
// Protective pads on the attacker suppress the whole list.
func (b *Battle) contactTriggers(target *Combatant, opts DamageOpts) string {
	if opts.Move == nil || !opts.Move.MakesContact || opts.Attacker == nil || !opts.Attacker.Alive() {
		return ""
	}
	if opts.Attacker.Item.Is(dex.ItemProtectivePads) {
		return ""
	}
	attacker := opts.Attacker
	var n narration

	switch {
	case target.HasAbility(dex.AbilityStatic) && b.Rng.Chance(30):
		n.merge(b.ApplyStatus(attacker, dex.StatusParalysis, target, nil))
	case target.HasAbility(dex.AbilityFlameBody) && b.Rng.Chance(30):
		n.merge(b.ApplyStatus(attacker, dex.StatusBurn, target, nil))
	case target.HasAbility(dex.AbilityPoisonPoint) && b.Rng.Chance(30):
		n.merge(b.ApplyStatus(attacker, dex.StatusPoison, target, nil))
	case target.HasAbility(dex.AbilityEffectSpore) && !attacker.Item.Is(dex.ItemSafetyGoggles) &&
		!attacker.HasAbility(dex.AbilityOvercoat) && b.Rng.Chance(30):
		switch b.Rng.Intn(3) {
		case 0:
			n.merge(b.ApplyStatus(attacker, dex.StatusSleep, target, nil))
		case 1:
			n.merge(b.ApplyStatus(attacker, dex.StatusParalysis, target, nil))
		default:
			n.merge(b.ApplyStatus(attacker, dex.StatusPoison, target, nil))
		}
	case target.HasAbility(dex.AbilityCuteCharm) && b.Rng.Chance(30):
		if oppositeGenders(target, attacker) && !attacker.Infatuation.Active() {
			attacker.Infatuation.Set(timer.Indefinite)
			n.add("%s fell in love with %s!", attacker.Name(), target.Name())
		}
	}

	if target.HasAbility(dex.AbilityPickpocket) && !target.Item.Present() && attacker.Item.Present() {
		if stolen, ok := attacker.Item.Take(); ok {
			target.Item.Give(stolen)
			n.add("%s stole %s's %s with Pickpocket!", target.Name(), attacker.Name(), dex.DisplayName(string(stolen.ID)))
		}
	}

	if target.HasAbility(dex.AbilityMummy) && attacker.Ability != dex.AbilityMummy {
		attacker.Ability = dex.AbilityMummy
		n.add("%s's ability became Mummy!", attacker.Name())
	}

	if target.Item.Is(dex.ItemRockyHelmet) {
		n.add("%s was hurt by the Rocky Helmet!", attacker.Name())
		n.merge(b.Damage(attacker, attacker.StartingHP/6, DamageOpts{}, false))
	}

	if target.HasAbility(dex.AbilityPerishBody) {
		for _, c := range []*Combatant{target, attacker} {
			if !c.PerishCount.Active() {
				c.PerishCount.Set(3)
			}
		}
		n.add("Both Pokémon will perish in three turns!")
	}

	return n.String()
}

// Faint marks the target down and runs the faint cascade: the retaliatory
// destiny bond, the defender's explode-on-faint ability, the attacker's
// post-KO boosts, then the full removal bookkeeping.
func (b *Battle) Faint(target *Combatant, opts DamageOpts, checkLooping bool) string {
	var n narration

	target.HP = 0
	target.Fainted = true
	if target.IllusionOf != "" {
		target.IllusionOf = ""
	}
	n.add("%s fainted!", target.Name())

	side := b.Ally(target)
	side.LastFainted = target.SpeciesKey

	attacker := opts.Attacker
	if attacker != nil && attacker.Alive() && checkLooping {
		if target.DestinyBonded && opts.Move != nil {
			n.add("%s took its attacker down with it!", target.Name())
			n.merge(b.Faint(attacker, DamageOpts{}, false))
		}
		if attacker.Alive() && target.HasAbility(dex.AbilityAftermath) &&
			opts.Move != nil && opts.Move.MakesContact && !b.anyActiveHas(dex.AbilityDamp, nil) {
			n.add("%s's Aftermath blew up!", target.Name())
			n.merge(b.Damage(attacker, attacker.StartingHP/4, DamageOpts{}, false))
		}
		if attacker.Alive() && opts.Move != nil {
			switch {
			case attacker.HasAbility(dex.AbilityMoxie):
				n.add("%s's Moxie!", attacker.Name())
				n.merge(b.AppendStat(attacker, 1, nil, nil, dex.StatAttack, SourceSelf, false))
			case attacker.HasAbility(dex.AbilityChillingNeigh):
				n.add("%s's Chilling Neigh!", attacker.Name())
				n.merge(b.AppendStat(attacker, 1, nil, nil, dex.StatAttack, SourceSelf, false))
			case attacker.HasAbility(dex.AbilityBeastBoost):
				n.add("%s's Beast Boost!", attacker.Name())
				n.merge(b.AppendStat(attacker, 1, nil, nil, attacker.highestMainStat(), SourceSelf, false))
			}
		}
	}

	n.merge(b.removeBookkeeping(target))
	if side.Active == target {
		side.Active = nil
		side.Bench = append(side.Bench, target)
	}
	return n.String()
}

// Heal restores HP up to the starting maximum and returns the narration.
// Fainted, full-HP, and heal-blocked targets are expected no-ops.
func (b *Battle) Heal(target *Combatant, amount int, source string) string {
	if target == nil || target.Fainted || amount <= 0 {
		return ""
	}
	if target.HealBlock.Active() {
		var n narration
		n.add("%s's heal block prevents recovery!", target.Name())
		return n.String()
	}
	deficit := target.StartingHP - target.HP
	if deficit <= 0 {
		return ""
	}
	if amount > deficit {
		amount = deficit
	}
	target.HP += amount

	var n narration
	n.add("%s restored %d HP from %s!", target.Name(), amount, source)
	return n.String()
}

// changeForm swaps the combatant's form key and reloads species-derived
// fields. A missing form record is a configuration fault.
func (b *Battle) changeForm(target *Combatant, formKey string) string {
	species, err := b.species(formKey)
	if err != nil {
		panic(err)
	}
	target.SpeciesKey = formKey
	target.Species = species
	target.Types = append([]dex.Type(nil), species.Types...)

	var n narration
	n.add("%s changed form!", target.Name())
	return n.String()
}

// oppositeGenders gates infatuation-class effects.
func oppositeGenders(a, c *Combatant) bool {
	if a.Gender == GenderUnknown || c.Gender == GenderUnknown {
		return false
	}
	return a.Gender != c.Gender
}
