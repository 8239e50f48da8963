package battle

import (
	"testing"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
)

func typedMove(moveType dex.Type, effect dex.MoveEffect) *dex.Move {
	power := 80
	return &dex.Move{Key: "probe", Type: moveType, Class: dex.ClassSpecial, Power: &power, Effect: effect}
}

func TestEffectivenessChartProduct(t *testing.T) {
	attacker := testCombatant("attacker")

	tests := []struct {
		name     string
		moveType dex.Type
		defTypes []dex.Type
		want     float64
	}{
		{"neutral", dex.TypeNormal, []dex.Type{dex.TypeWater}, 1},
		{"super", dex.TypeElectric, []dex.Type{dex.TypeWater}, 2},
		{"double super", dex.TypeIce, []dex.Type{dex.TypeGrass, dex.TypeDragon}, 4},
		{"resisted", dex.TypeFire, []dex.Type{dex.TypeWater}, 0.5},
		{"immune", dex.TypeNormal, []dex.Type{dex.TypeGhost}, 0},
		{"mixed cancels out", dex.TypeFire, []dex.Type{dex.TypeGrass, dex.TypeWater}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defender := testCombatant("defender", tt.defTypes...)
			b := testBattle(t, attacker, defender)
			got := b.Effectiveness(attacker, typedMove(tt.moveType, dex.EffectNone), defender)
			if got != tt.want {
				t.Errorf("Effectiveness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreezeDryOverridesWater(t *testing.T) {
	attacker := testCombatant("attacker")
	defender := testCombatant("defender", dex.TypeWater)
	b := testBattle(t, attacker, defender)

	got := b.Effectiveness(attacker, typedMove(dex.TypeIce, dex.EffectAlwaysSuperVsWater), defender)
	if got != 2 {
		t.Errorf("Effectiveness = %v, want 2 against water", got)
	}
}

func TestGroundMoveMissesAirborne(t *testing.T) {
	attacker := testCombatant("attacker")
	move := typedMove(dex.TypeGround, dex.EffectNone)

	levitator := testCombatant("levitator", dex.TypeElectric)
	levitator.Ability = dex.AbilityLevitate
	b := testBattle(t, attacker, levitator)
	if got := b.Effectiveness(attacker, move, levitator); got != 0 {
		t.Errorf("levitating defender: Effectiveness = %v, want 0", got)
	}

	balloon := testCombatant("balloon", dex.TypeElectric)
	balloon.Item.Give(dex.Item{ID: dex.ItemAirBalloon, Removable: true, ConsumedOnUse: true})
	b = testBattle(t, attacker, balloon)
	if got := b.Effectiveness(attacker, move, balloon); got != 0 {
		t.Errorf("balloon holder: Effectiveness = %v, want 0", got)
	}

	// Gravity overrides the airborne state.
	b.Gravity.Set(5)
	if got := b.Effectiveness(attacker, move, balloon); got != 2 {
		t.Errorf("under gravity: Effectiveness = %v, want 2 vs electric", got)
	}
}

func TestThousandArrowsHitsFliers(t *testing.T) {
	attacker := testCombatant("attacker")
	defender := testCombatant("defender", dex.TypeFlying)
	b := testBattle(t, attacker, defender)

	got := b.Effectiveness(attacker, typedMove(dex.TypeGround, dex.EffectHitsAirborne), defender)
	if got != 1 {
		t.Errorf("Effectiveness = %v, want 1 against an airborne flier", got)
	}
}

func TestIdentifiedGhostLosesImmunity(t *testing.T) {
	attacker := testCombatant("attacker")
	defender := testCombatant("defender", dex.TypeGhost)
	defender.Identified = true
	b := testBattle(t, attacker, defender)

	if got := b.Effectiveness(attacker, typedMove(dex.TypeNormal, dex.EffectNone), defender); got != 1 {
		t.Errorf("Effectiveness = %v, want 1 against an identified ghost", got)
	}
}

func TestScrappyIgnoresGhostImmunity(t *testing.T) {
	attacker := testCombatant("attacker")
	attacker.Ability = dex.AbilityScrappy
	defender := testCombatant("defender", dex.TypeGhost)
	b := testBattle(t, attacker, defender)

	if got := b.Effectiveness(attacker, typedMove(dex.TypeFighting, dex.EffectNone), defender); got != 1 {
		t.Errorf("Effectiveness = %v, want 1 with scrappy", got)
	}
}

func TestInverseFlipsChartEntries(t *testing.T) {
	attacker := testCombatant("attacker")
	tests := []struct {
		name     string
		moveType dex.Type
		defTypes []dex.Type
		want     float64
	}{
		{"immunity becomes weakness", dex.TypeNormal, []dex.Type{dex.TypeGhost}, 2},
		{"weakness becomes resistance", dex.TypeElectric, []dex.Type{dex.TypeWater}, 0.5},
		{"resistance becomes weakness", dex.TypeFire, []dex.Type{dex.TypeWater}, 2},
		{"neutral stays neutral", dex.TypeNormal, []dex.Type{dex.TypeWater}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defender := testCombatant("defender", tt.defTypes...)
			b := testBattle(t, attacker, defender)
			b.Inverse = true
			got := b.Effectiveness(attacker, typedMove(tt.moveType, dex.EffectNone), defender)
			if got != tt.want {
				t.Errorf("Effectiveness = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTeraShellBluntsAtFullHP(t *testing.T) {
	attacker := testCombatant("attacker")
	defender := testCombatant("defender", dex.TypeNormal)
	defender.Ability = dex.AbilityTeraShell
	b := testBattle(t, attacker, defender)

	if got := b.Effectiveness(attacker, typedMove(dex.TypeFighting, dex.EffectNone), defender); got != 0.5 {
		t.Errorf("full HP: Effectiveness = %v, want 0.5", got)
	}

	defender.HP = 50
	if got := b.Effectiveness(attacker, typedMove(dex.TypeFighting, dex.EffectNone), defender); got != 2 {
		t.Errorf("chipped: Effectiveness = %v, want 2", got)
	}
}

func TestTeraShellLeavesResistedHitsAlone(t *testing.T) {
	attacker := testCombatant("attacker")
	defender := testCombatant("defender", dex.TypeGhost, dex.TypeSteel)
	defender.Ability = dex.AbilityTeraShell
	b := testBattle(t, attacker, defender)

	// Bug is resisted by both types; the shell must not buy it back up.
	if got := b.Effectiveness(attacker, typedMove(dex.TypeBug, dex.EffectNone), defender); got != 0.25 {
		t.Errorf("Effectiveness = %v, want 0.25", got)
	}

	if got := b.Effectiveness(attacker, typedMove(dex.TypeNormal, dex.EffectNone), defender); got != 0 {
		t.Errorf("immune: Effectiveness = %v, want 0", got)
	}
}
