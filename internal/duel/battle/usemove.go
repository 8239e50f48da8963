package battle

import (
	"math"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// critDenominators maps the crit-rate stage to an inverse probability.
var critDenominators = [4]int{24, 8, 2, 1}

// UseMove resolves one move by the side's active combatant against the
// opposing active and returns the narration. The gates run in a fixed
// order before anything is spent: flinch, non-volatile status, confusion,
// infatuation, taunt, disable, encore, choice lock. PP is only spent once
// the move actually launches.
func (b *Battle) UseMove(sideIndex, moveIndex int) (string, error) {
	attacker := b.Sides[sideIndex].Active
	if attacker == nil || !attacker.Alive() {
		return "", errors.WithMetadata(errors.CodeBattleNoActiveCombatant,
			"no active combatant to move", map[string]string{"side": b.Sides[sideIndex].name()})
	}
	defender := b.Opposing(attacker).Active

	if moveIndex < 0 || moveIndex >= len(attacker.Moves) {
		return "", errors.WithMetadata(errors.CodeBattleInvalidMoveIndex,
			"move index out of range", map[string]string{"side": b.Sides[sideIndex].name()})
	}

	if attacker.Encore.Active() {
		if i := attacker.MoveIndex(attacker.Encore.Payload()); i >= 0 {
			moveIndex = i
		}
	}
	bm := &attacker.Moves[moveIndex]
	move := &bm.Move

	var n narration

	if blocked, out := b.moveGates(attacker, move); blocked {
		return out, nil
	}

	if bm.PP <= 0 {
		n.add("%s has no PP left for %s!", attacker.Name(), dex.DisplayName(move.Key))
		return n.String(), nil
	}
	bm.PP--
	if defender != nil && defender.Alive() && defender.Ability == dex.AbilityPressure && bm.PP > 0 {
		bm.PP--
	}
	attacker.LastMoveKey = move.Key
	if attacker.Item.Is(dex.ItemChoiceScarf) || attacker.Item.Is(dex.ItemChoiceBand) || attacker.Item.Is(dex.ItemChoiceSpecs) {
		attacker.ChoiceLock = move.Key
	}

	n.add("%s used %s!", attacker.Name(), dex.DisplayName(move.Key))
	logger.Debug().Str("battle", b.ID).Str("move", move.Key).Int("turn", b.Turn).Msg("move launched")

	if defender == nil || !defender.Alive() {
		if !move.IsDamaging() && moveTargetsSelf(move) {
			n.merge(b.statusMove(attacker, nil, move))
			return n.String(), nil
		}
		n.add("But there was no target...")
		return n.String(), nil
	}

	// The miss roll stays authoritative: a move that would have missed
	// narrates the miss, not the defender's immunity.
	if !b.accuracyCheck(attacker, defender, move) {
		n.add("%s's attack missed!", attacker.Name())
		return n.String(), nil
	}

	if gate := b.defenderGates(attacker, defender, move); gate != "" {
		n.merge(gate)
		return n.String(), nil
	}

	if move.IsDamaging() {
		n.merge(b.damagingMove(attacker, defender, move))
	} else {
		n.merge(b.statusMove(attacker, defender, move))
	}

	return n.String(), nil
}

// moveGates runs the pre-launch checks. A true result means the turn is
// consumed without the move firing.
func (b *Battle) moveGates(attacker *Combatant, move *dex.Move) (bool, string) {
	var n narration

	if attacker.Flinched {
		attacker.Flinched = false
		n.add("%s flinched and couldn't move!", attacker.Name())
		return true, n.String()
	}

	switch attacker.Status {
	case dex.StatusSleep:
		attacker.SleepTurns--
		if attacker.SleepTurns > 0 {
			n.add("%s is fast asleep.", attacker.Name())
			return true, n.String()
		}
		n.merge(b.cureStatus(attacker, "waking up"))
	case dex.StatusFreeze:
		if move.Type == dex.TypeFire || b.Rng.Chance(20) {
			n.merge(b.cureStatus(attacker, "thawing out"))
		} else {
			n.add("%s is frozen solid!", attacker.Name())
			return true, n.String()
		}
	case dex.StatusParalysis:
		if b.Rng.Chance(25) {
			n.add("%s is fully paralyzed!", attacker.Name())
			return true, n.String()
		}
	}

	if attacker.Confusion.Active() && b.Rng.Chance(33) {
		n.add("%s hurt itself in its confusion!", attacker.Name())
		n.merge(b.Damage(attacker, b.confusionSelfHit(attacker), DamageOpts{Self: true}, true))
		return true, n.String()
	}

	if attacker.Infatuation.Active() && b.Rng.Chance(50) {
		n.add("%s is immobilized by love!", attacker.Name())
		return true, n.String()
	}

	if attacker.Taunt.Active() && !move.IsDamaging() {
		n.add("%s can't use %s after the taunt!", attacker.Name(), dex.DisplayName(move.Key))
		return true, n.String()
	}

	if attacker.Disable.Active() && attacker.Disable.Payload() == move.Key {
		n.add("%s's %s is disabled!", attacker.Name(), dex.DisplayName(move.Key))
		return true, n.String()
	}

	if attacker.ChoiceLock != "" && attacker.ChoiceLock != move.Key &&
		(attacker.Item.Is(dex.ItemChoiceScarf) || attacker.Item.Is(dex.ItemChoiceBand) || attacker.Item.Is(dex.ItemChoiceSpecs)) {
		n.add("%s is locked into %s!", attacker.Name(), dex.DisplayName(attacker.ChoiceLock))
		return true, n.String()
	}

	return false, ""
}

// confusionSelfHit is a typeless 40-power physical hit against oneself.
func (b *Battle) confusionSelfHit(c *Combatant) int {
	atk := b.EffectiveStat(c, dex.StatAttack, stats.CropNone)
	def := b.EffectiveStat(c, dex.StatDefense, stats.CropNone)
	base := ((2*c.Level/5+2)*40*atk/def)/50 + 2
	return base * (85 + b.Rng.Intn(16)) / 100
}

// defenderGates checks the defender's whole-move immunities. A non-empty
// result consumes the move.
func (b *Battle) defenderGates(attacker, defender *Combatant, move *dex.Move) string {
	var n narration
	if move.IsSoundBased && defender.HasAbility(dex.AbilitySoundproof) {
		n.add("%s's Soundproof blocks the move!", defender.Name())
		return n.String()
	}
	if move.IsWind && defender.HasAbility(dex.AbilityWindRider) {
		n.add("%s's Wind Rider caught the wind!", defender.Name())
		n.merge(b.AppendStat(defender, 1, nil, nil, dex.StatAttack, SourceSelf, false))
		return n.String()
	}
	return ""
}

// accuracyCheck rolls the staged accuracy. A nil move accuracy never
// misses. The attacker's accuracy stages and the defender's evasion stages
// combine into one effective stage before the table lookup.
func (b *Battle) accuracyCheck(attacker, defender *Combatant, move *dex.Move) bool {
	if move.Accuracy == nil {
		return true
	}
	stage := attacker.Stages[dex.StatAccuracy] - defender.Stages[dex.StatEvasion]
	if stage > stats.MaxStage {
		stage = stats.MaxStage
	}
	if stage < stats.MinStage {
		stage = stats.MinStage
	}
	chance := float64(*move.Accuracy) * stats.AccuracyStageMultiplier(stage, stats.CropNone)

	if defender.HasAbility(dex.AbilitySandVeil) && b.Weather == WeatherSandstorm {
		chance *= 0.8
	}
	if defender.HasAbility(dex.AbilitySnowCloak) && b.Weather == WeatherSnow {
		chance *= 0.8
	}

	return b.Rng.Chance(int(chance))
}

// damagingMove resolves the damage formula and its riders: crit roll,
// weather and screen modifiers, same-type bonus, variance, then the damage
// pipeline, secondaries, drain recoil, and trap setup.
func (b *Battle) damagingMove(attacker, defender *Combatant, move *dex.Move) string {
	var n narration

	eff := b.Effectiveness(attacker, move, defender)
	if eff == 0 {
		n.add(effectivenessLine(0, defender))
		return n.String()
	}

	critStage := move.CritRateBonus
	if critStage > 3 {
		critStage = 3
	}
	crit := b.Rng.Intn(critDenominators[critStage]) == 0

	power := 0
	if move.Power != nil {
		power = *move.Power
	}

	atkStat, defStat := dex.StatAttack, dex.StatDefense
	if move.Class == dex.ClassSpecial {
		atkStat, defStat = dex.StatSpAttack, dex.StatSpDefense
	}
	atkCrop, defCrop := stats.CropNone, stats.CropNone
	if crit {
		atkCrop, defCrop = stats.CropBottom, stats.CropTop
	}
	atk := b.EffectiveStat(attacker, atkStat, atkCrop)
	def := b.EffectiveStat(defender, defStat, defCrop)

	dmg := float64(((2*attacker.Level/5+2)*power*atk/def)/50 + 2)

	switch b.Weather {
	case WeatherSun:
		if move.Type == dex.TypeFire {
			dmg *= 1.5
		} else if move.Type == dex.TypeWater {
			dmg *= 0.5
		}
	case WeatherRain:
		if move.Type == dex.TypeWater {
			dmg *= 1.5
		} else if move.Type == dex.TypeFire {
			dmg *= 0.5
		}
	case WeatherSandstorm:
		if attacker.HasAbility(dex.AbilitySandForce) &&
			(move.Type == dex.TypeRock || move.Type == dex.TypeGround || move.Type == dex.TypeSteel) {
			dmg *= 1.3
		}
	}

	if !crit {
		screens := &b.Ally(defender).Screens
		switch {
		case screens.AuroraVeil.Active():
			dmg *= 0.5
		case move.Class == dex.ClassPhysical && screens.Reflect.Active():
			dmg *= 0.5
		case move.Class == dex.ClassSpecial && screens.LightScreen.Active():
			dmg *= 0.5
		}
	}

	if crit {
		dmg *= 1.5
	}
	dmg *= float64(85+b.Rng.Intn(16)) / 100
	if attacker.HasType(move.Type) {
		dmg *= 1.5
	}
	dmg *= eff

	if crit {
		n.add("A critical hit!")
	}
	if line := effectivenessLine(eff, defender); line != "" {
		n.add(line)
	}

	hpBefore := defender.HP
	n.merge(b.Damage(defender, int(math.Floor(dmg)), DamageOpts{Attacker: attacker, Move: move, Crit: crit}, true))
	dealt := hpBefore - defender.HP

	if move.Type == dex.TypeFire && defender.Status == dex.StatusFreeze {
		n.merge(b.cureStatus(defender, "the flames"))
	}

	if move.DrainPercent < 0 && dealt > 0 && attacker.Alive() {
		n.add("%s is damaged by the recoil!", attacker.Name())
		n.merge(b.Damage(attacker, dealt*-move.DrainPercent/100, DamageOpts{}, true))
	}

	if defender.Alive() {
		if move.Effect == dex.EffectHitsAirborne && !defender.Grounded(b) {
			defender.SmackedDown = true
			n.add("%s fell straight down!", defender.Name())
		}
		if move.SecondaryStatus != dex.StatusNone && b.Rng.Chance(move.SecondaryChance) {
			n.merge(b.ApplyStatus(defender, move.SecondaryStatus, attacker, move))
		}
		n.merge(b.moveStatChanges(attacker, defender, move))
		if move.Effect == dex.EffectBind {
			n.merge(b.applyBind(attacker, defender, move))
		}
	}

	return n.String()
}

// moveStatChanges rolls and applies a move's stage riders.
func (b *Battle) moveStatChanges(attacker, defender *Combatant, move *dex.Move) string {
	var n narration
	for _, sc := range move.StatChanges {
		if sc.Chance > 0 && !b.Rng.Chance(sc.Chance) {
			continue
		}
		if sc.Target == dex.ChangeTargetSelf {
			n.merge(b.AppendStat(attacker, sc.Delta, nil, move, sc.Stat, SourceSelf, true))
		} else if defender != nil && defender.Alive() {
			n.merge(b.AppendStat(defender, sc.Delta, attacker, move, sc.Stat, SourceOpponent, true))
		}
	}
	return n.String()
}

// statusMove dispatches a non-damaging move by its effect code.
func (b *Battle) statusMove(attacker, defender *Combatant, move *dex.Move) string {
	var n narration

	switch move.Effect {
	case dex.EffectToxic:
		n.merge(b.ApplyStatus(defender, dex.StatusBadPoison, attacker, move))
	case dex.EffectWillOWisp:
		n.merge(b.ApplyStatus(defender, dex.StatusBurn, attacker, move))
	case dex.EffectThunderW:
		if b.Effectiveness(attacker, move, defender) == 0 {
			n.add(effectivenessLine(0, defender))
		} else {
			n.merge(b.ApplyStatus(defender, dex.StatusParalysis, attacker, move))
		}
	case dex.EffectHypnosis:
		n.merge(b.ApplyStatus(defender, dex.StatusSleep, attacker, move))
	case dex.EffectConfuse:
		n.merge(b.ApplyConfusion(defender))
	case dex.EffectTaunt:
		n.merge(b.applyTaunt(defender))
	case dex.EffectDisable:
		n.merge(b.applyDisable(defender))
	case dex.EffectEncore:
		n.merge(b.applyEncore(defender))
	case dex.EffectLeechSeed:
		n.merge(b.applyLeechSeed(defender))
	case dex.EffectCurse:
		n.merge(b.applyCurse(attacker, defender))
	case dex.EffectBind:
		n.merge(b.applyBind(attacker, defender, move))
	case dex.EffectIdentify:
		defender.Identified = true
		n.add("%s was identified!", defender.Name())
	case dex.EffectInfatuate:
		n.merge(b.applyInfatuation(defender, attacker))
	case dex.EffectRecover:
		n.merge(b.Heal(attacker, attacker.StartingHP/2, dex.DisplayName(move.Key)))
	case dex.EffectSubstitute:
		n.merge(b.applySubstitute(attacker))
	case dex.EffectEndure:
		attacker.EnduringHit = true
		n.add("%s braced itself!", attacker.Name())
	case dex.EffectIngrain:
		n.merge(b.applyIngrain(attacker))
	case dex.EffectAquaRing:
		n.merge(b.applyAquaRing(attacker))
	case dex.EffectDestinyB:
		n.merge(b.applyDestinyBond(attacker))
	case dex.EffectYawn:
		if defender.Status == dex.StatusNone && !defender.Yawn.Active() {
			defender.Yawn.Set(2)
			n.add("%s grew drowsy!", defender.Name())
		} else {
			n.add("But it failed!")
		}
	case dex.EffectBatonPass, dex.EffectShedTail:
		n.merge(b.batonPass(attacker, move.Effect == dex.EffectShedTail))
	default:
		n.merge(b.moveStatChanges(attacker, defender, move))
		if len(move.StatChanges) == 0 {
			n.add("But nothing happened!")
		}
	}

	return n.String()
}

// moveTargetsSelf reports whether a status move is usable with no opposing
// active combatant.
func moveTargetsSelf(move *dex.Move) bool {
	switch move.Effect {
	case dex.EffectRecover, dex.EffectSubstitute, dex.EffectEndure, dex.EffectIngrain,
		dex.EffectAquaRing, dex.EffectDestinyB, dex.EffectBatonPass, dex.EffectShedTail:
		return true
	}
	if len(move.StatChanges) > 0 {
		for _, sc := range move.StatChanges {
			if sc.Target != dex.ChangeTargetSelf {
				return false
			}
		}
		return true
	}
	return false
}

// batonPass packages the user's stages (and for the tail variant, a fresh
// substitute) for the replacement and performs the switch. Shed tail pays
// half the user's maximum HP for the substitute.
func (b *Battle) batonPass(user *Combatant, shedTail bool) string {
	side := b.Ally(user)
	var n narration

	if len(side.LivingBench()) == 0 {
		n.add("But it failed!")
		return n.String()
	}

	p := &inheritance{}
	if shedTail {
		cost := user.StartingHP / 2
		if user.HP <= cost {
			n.add("%s is too weak to shed its tail!", user.Name())
			return n.String()
		}
		user.HP -= cost
		p.substitute = user.StartingHP / 4
		n.add("%s shed its tail to create a decoy!", user.Name())
	} else {
		p.stages = user.Stages
		p.hasStages = true
		if user.Substitute > 0 {
			p.substitute = user.Substitute
		}
		p.leechSeed = user.LeechSeeded
		n.add("%s passed its boosts along!", user.Name())
	}
	side.pending = p

	n.merge(b.forcedSwitch(user))
	return n.String()
}
