package battle

import (
	"strings"
	"testing"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
)

func TestStatusTypeImmunities(t *testing.T) {
	tests := []struct {
		name    string
		types   []dex.Type
		status  dex.StatusCondition
		blocked bool
	}{
		{"electric vs paralysis", []dex.Type{dex.TypeElectric}, dex.StatusParalysis, true},
		{"fire vs burn", []dex.Type{dex.TypeFire}, dex.StatusBurn, true},
		{"steel vs poison", []dex.Type{dex.TypeSteel}, dex.StatusPoison, true},
		{"ice vs freeze", []dex.Type{dex.TypeIce}, dex.StatusFreeze, true},
		{"water takes burn", []dex.Type{dex.TypeWater}, dex.StatusBurn, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := testCombatant("target", tt.types...)
			b := testBattle(t, target, testCombatant("attacker"))
			b.ApplyStatus(target, tt.status, nil, nil)
			got := target.Status == dex.StatusNone
			if got != tt.blocked {
				t.Errorf("blocked = %v, want %v", got, tt.blocked)
			}
		})
	}
}

func TestStatusDoesNotStack(t *testing.T) {
	target := testCombatant("target")
	target.Status = dex.StatusBurn
	b := testBattle(t, target, testCombatant("attacker"))

	out := b.ApplyStatus(target, dex.StatusParalysis, nil, nil)

	if target.Status != dex.StatusBurn {
		t.Errorf("status = %v, want the original burn kept", target.Status)
	}
	if !strings.Contains(out, "already") {
		t.Errorf("want the already-statused line, got %q", out)
	}
}

func TestSleepRollsDuration(t *testing.T) {
	target := testCombatant("target")
	b := testBattle(t, target, testCombatant("attacker"))
	b.Rng = fakeRoller{intn: func(n int) int { return 1 }}

	b.ApplyStatus(target, dex.StatusSleep, nil, nil)

	if target.Status != dex.StatusSleep {
		t.Fatalf("status = %v, want sleep", target.Status)
	}
	if target.SleepTurns != 2 {
		t.Errorf("sleep turns = %d, want 2", target.SleepTurns)
	}
}

func TestLumBerryCuresOnApplication(t *testing.T) {
	target := testCombatant("target")
	target.Item.Give(dex.Item{ID: dex.ItemLumBerry, Removable: true, IsBerry: true, ConsumedOnUse: true})
	b := testBattle(t, target, testCombatant("attacker"))

	out := b.ApplyStatus(target, dex.StatusParalysis, nil, nil)

	if target.Status != dex.StatusNone {
		t.Errorf("status = %v, want cured by the berry:\n%s", target.Status, out)
	}
	if target.Item.Present() {
		t.Error("lum berry must be consumed")
	}
}

func TestMistyTerrainBlocksGroundedStatus(t *testing.T) {
	target := testCombatant("target")
	b := testBattle(t, target, testCombatant("attacker"))
	b.Terrain = TerrainMisty
	b.TerrainTurns.Set(5)

	b.ApplyStatus(target, dex.StatusBurn, nil, nil)

	if target.Status != dex.StatusNone {
		t.Errorf("status = %v, want blocked by the misty terrain", target.Status)
	}
}

func TestSubstituteCostsQuarterHP(t *testing.T) {
	user := testCombatant("user")
	b := testBattle(t, user, testCombatant("other"))

	b.applySubstitute(user)

	if user.HP != 75 {
		t.Errorf("HP = %d, want 75", user.HP)
	}
	if user.Substitute != 25 {
		t.Errorf("substitute HP = %d, want 25", user.Substitute)
	}

	user.HP = 20
	user.Substitute = 0
	out := b.applySubstitute(user)
	if !strings.Contains(out, "too weak") {
		t.Errorf("want the too-weak line, got %q", out)
	}
	if user.HP != 20 {
		t.Errorf("HP = %d, want unchanged 20", user.HP)
	}
}

func TestConfusionDoesNotReapply(t *testing.T) {
	target := testCombatant("target")
	b := testBattle(t, target, testCombatant("attacker"))
	b.Rng = fakeRoller{intn: func(int) int { return 0 }}

	b.ApplyConfusion(target)
	turns := target.Confusion.Turns()

	out := b.ApplyConfusion(target)
	if !strings.Contains(out, "already confused") {
		t.Errorf("want the already-confused line, got %q", out)
	}
	if target.Confusion.Turns() != turns {
		t.Error("reapplying confusion must not reset the timer")
	}
}
