package battle

import (
	"strings"
	"testing"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
)

func TestAppendStatCapsAtSix(t *testing.T) {
	target := testCombatant("target")
	b := testBattle(t, target, testCombatant("attacker"))

	var last string
	for i := 0; i < 7; i++ {
		last = b.AppendStat(target, 1, nil, nil, dex.StatAttack, SourceSelf, true)
	}

	if target.Stages[dex.StatAttack] != 6 {
		t.Errorf("attack stage = %d, want 6", target.Stages[dex.StatAttack])
	}
	if !strings.Contains(last, "won't go any higher") {
		t.Errorf("seventh boost should report the cap, got %q", last)
	}
	if strings.Contains(last, "rose") {
		t.Errorf("capped boost must not re-emit a rise line, got %q", last)
	}
}

func TestAppendStatFloorAtMinusSix(t *testing.T) {
	target := testCombatant("target")
	target.Stages[dex.StatSpeed] = -5
	b := testBattle(t, target, testCombatant("attacker"))

	b.AppendStat(target, -3, nil, nil, dex.StatSpeed, SourceSelf, true)
	if target.Stages[dex.StatSpeed] != -6 {
		t.Errorf("speed stage = %d, want -6", target.Stages[dex.StatSpeed])
	}

	out := b.AppendStat(target, -1, nil, nil, dex.StatSpeed, SourceSelf, true)
	if !strings.Contains(out, "won't go any lower") {
		t.Errorf("floored drop should report the cap, got %q", out)
	}
}

func TestAppendStatNarrationBuckets(t *testing.T) {
	tests := []struct {
		delta int
		want  string
	}{
		{1, "rose!"},
		{2, "rose sharply!"},
		{3, "rose drastically!"},
		{-1, "fell!"},
		{-2, "harshly fell!"},
		{-3, "severely fell!"},
	}
	for _, tt := range tests {
		target := testCombatant("target")
		b := testBattle(t, target, testCombatant("attacker"))
		out := b.AppendStat(target, tt.delta, nil, nil, dex.StatAttack, SourceSelf, true)
		if !strings.Contains(out, tt.want) {
			t.Errorf("delta %+d: narration %q does not contain %q", tt.delta, out, tt.want)
		}
	}
}

func TestSimpleDoublesAndContraryInverts(t *testing.T) {
	simple := testCombatant("simple")
	simple.Ability = dex.AbilitySimple
	b := testBattle(t, simple, testCombatant("attacker"))
	b.AppendStat(simple, 1, nil, nil, dex.StatAttack, SourceSelf, true)
	if simple.Stages[dex.StatAttack] != 2 {
		t.Errorf("simple: stage = %d, want 2", simple.Stages[dex.StatAttack])
	}

	contrary := testCombatant("contrary")
	contrary.Ability = dex.AbilityContrary
	b = testBattle(t, contrary, testCombatant("attacker"))
	b.AppendStat(contrary, 1, nil, nil, dex.StatAttack, SourceSelf, true)
	if contrary.Stages[dex.StatAttack] != -1 {
		t.Errorf("contrary: stage = %d, want -1", contrary.Stages[dex.StatAttack])
	}
}

func TestClearBodyBlocksExternalDrops(t *testing.T) {
	target := testCombatant("target")
	target.Ability = dex.AbilityClearBody
	attacker := testCombatant("attacker")
	b := testBattle(t, target, attacker)

	out := b.AppendStat(target, -1, attacker, nil, dex.StatAttack, SourceOpponent, true)

	if target.Stages[dex.StatAttack] != 0 {
		t.Errorf("stage = %d, want 0", target.Stages[dex.StatAttack])
	}
	if !strings.Contains(out, "Clear Body") {
		t.Errorf("want a guard line, got %q", out)
	}

	// Self-inflicted drops pass through the guard.
	b.AppendStat(target, -1, nil, nil, dex.StatAttack, SourceSelf, true)
	if target.Stages[dex.StatAttack] != -1 {
		t.Errorf("self drop: stage = %d, want -1", target.Stages[dex.StatAttack])
	}
}

func TestMirrorArmorReflectsOnce(t *testing.T) {
	target := testCombatant("target")
	target.Ability = dex.AbilityMirrorArmor
	attacker := testCombatant("attacker")
	attacker.Ability = dex.AbilityMirrorArmor
	b := testBattle(t, target, attacker)

	out := b.AppendStat(target, -1, attacker, nil, dex.StatAttack, SourceOpponent, true)

	if target.Stages[dex.StatAttack] != 0 {
		t.Errorf("target stage = %d, want 0 after reflecting", target.Stages[dex.StatAttack])
	}
	if attacker.Stages[dex.StatAttack] != -1 {
		t.Errorf("attacker stage = %d, want -1 from the single bounce", attacker.Stages[dex.StatAttack])
	}
	if lines := len(strings.Split(out, "\n")); lines > 4 {
		t.Errorf("narration unexpectedly long (%d lines), possible bounce loop:\n%s", lines, out)
	}
}

func TestDefiantCountersExternalDrop(t *testing.T) {
	target := testCombatant("target")
	target.Ability = dex.AbilityDefiant
	attacker := testCombatant("attacker")
	b := testBattle(t, target, attacker)

	b.AppendStat(target, -1, attacker, nil, dex.StatSpeed, SourceOpponent, true)

	if target.Stages[dex.StatSpeed] != -1 {
		t.Errorf("speed stage = %d, want -1", target.Stages[dex.StatSpeed])
	}
	if target.Stages[dex.StatAttack] != 2 {
		t.Errorf("attack stage = %d, want +2 from the counter-boost", target.Stages[dex.StatAttack])
	}
}

func TestOpportunistCopiesBoost(t *testing.T) {
	booster := testCombatant("booster")
	copier := testCombatant("copier")
	copier.Ability = dex.AbilityOpportunist
	b := testBattle(t, booster, copier)

	b.AppendStat(booster, 2, nil, nil, dex.StatAttack, SourceSelf, true)

	if copier.Stages[dex.StatAttack] != 2 {
		t.Errorf("opportunist stage = %d, want 2", copier.Stages[dex.StatAttack])
	}
}

func TestMutualOpportunistDoesNotChain(t *testing.T) {
	left := testCombatant("left")
	left.Ability = dex.AbilityOpportunist
	right := testCombatant("right")
	right.Ability = dex.AbilityOpportunist
	b := testBattle(t, left, right)

	b.AppendStat(left, 1, nil, nil, dex.StatSpeed, SourceSelf, true)

	if left.Stages[dex.StatSpeed] != 1 || right.Stages[dex.StatSpeed] != 1 {
		t.Errorf("stages = %d/%d, want 1/1 with no chain",
			left.Stages[dex.StatSpeed], right.Stages[dex.StatSpeed])
	}
}

func TestSubstituteShieldsExternalStatDrop(t *testing.T) {
	target := testCombatant("target")
	target.Substitute = 25
	attacker := testCombatant("attacker")
	b := testBattle(t, target, attacker)

	move := &dex.Move{Key: "charm", Class: dex.ClassStatus, IsAffectedBySubstitute: true}
	out := b.AppendStat(target, -2, attacker, move, dex.StatAttack, SourceOpponent, true)

	if out != "" {
		t.Errorf("substitute should silence the change, got %q", out)
	}
	if target.Stages[dex.StatAttack] != 0 {
		t.Errorf("stage = %d, want 0", target.Stages[dex.StatAttack])
	}
}
