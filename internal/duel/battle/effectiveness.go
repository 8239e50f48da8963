package battle

import "github.com/louisbranch/pokeduel/internal/duel/dex"

// Effectiveness resolves the type multiplier of a move against a defender:
// the product of one chart lookup per defending type, with the overrides
// layered in a fixed order. A result of 0 means the move does not affect
// the target at all.
func (b *Battle) Effectiveness(attacker *Combatant, move *dex.Move, defender *Combatant) float64 {
	hitsAirborne := move.Effect == dex.EffectHitsAirborne

	// Airborne targets shrug off ground moves outright. This covers
	// levitation, balloons, and magnet rise; the flying type's own
	// immunity lives in the chart so inverse duels can flip it.
	if move.Type == dex.TypeGround && !hitsAirborne && !defender.Grounded(b) && !defender.HasType(dex.TypeFlying) {
		return 0
	}

	scrappy := attacker != nil && attacker.HasAbility(dex.AbilityScrappy)

	product := 1.0
	for _, t := range defender.Types {
		m := float64(b.Chart.Multiplier(move.Type, t)) / 100
		if b.Inverse {
			switch {
			case m == 0 || m < 1:
				m = 2
			case m > 1:
				m = 0.5
			}
		}

		// Per-type overrides replace the chart entry.
		switch {
		case move.Effect == dex.EffectAlwaysSuperVsWater && t == dex.TypeWater:
			m = 2
		case t == dex.TypeFlying && move.Type == dex.TypeGround && hitsAirborne:
			m = 1
		case t == dex.TypeFlying && move.Type == dex.TypeGround && defender.Grounded(b):
			// A grounded flier loses its type immunity.
			m = 1
		case m == 0 && t == dex.TypeGhost && (move.Type == dex.TypeNormal || move.Type == dex.TypeFighting) &&
			(defender.Identified || scrappy):
			m = 1
		}

		product *= m
	}

	// A pristine tera shell blunts hits that would land at full strength
	// or better; resisted hits already fare worse on their own.
	if product >= 1 && defender.HasAbility(dex.AbilityTeraShell) && defender.AtFullHP() {
		product = 0.5
	}

	return product
}

// effectivenessLine narrates a non-neutral multiplier, or returns "".
func effectivenessLine(multiplier float64, target *Combatant) string {
	switch {
	case multiplier == 0:
		return "It doesn't affect " + target.Name() + "..."
	case multiplier > 1:
		return "It's super effective!"
	case multiplier < 1:
		return "It's not very effective..."
	}
	return ""
}
