package battle

import (
	"strings"
	"testing"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
)

func rosterCombatant(t *testing.T, b *Battle, side int, key string, moves ...string) *Combatant {
	t.Helper()
	if len(moves) == 0 {
		moves = []string{"tackle"}
	}
	c, err := NewCombatant(b.Catalog, RosterEntry{SpeciesKey: key, Level: 50, MoveKeys: moves})
	if err != nil {
		t.Fatalf("NewCombatant(%q): %v", key, err)
	}
	b.AddToBench(side, c)
	return c
}

func newFixtureBattle() *Battle {
	b := New(Config{Catalog: dex.Fixture()})
	b.Rng = fakeRoller{}
	return b
}

func TestSendOutNarratesEntry(t *testing.T) {
	b := newFixtureBattle()
	rosterCombatant(t, b, 0, "garchomp")

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if !strings.Contains(out, "Go! Garchomp!") {
		t.Errorf("narration missing the entry line:\n%s", out)
	}
	if b.Sides[0].Active == nil {
		t.Fatal("no active combatant after send-out")
	}
}

func TestSendOutInvalidBenchIndex(t *testing.T) {
	b := newFixtureBattle()
	rosterCombatant(t, b, 0, "garchomp")

	if _, err := b.SendOut(0, 3); err == nil {
		t.Fatal("want an error for an out-of-range bench index")
	}
}

func TestStealthRockScalesWithEffectiveness(t *testing.T) {
	b := newFixtureBattle()
	c := rosterCombatant(t, b, 0, "charizard")
	b.Sides[0].Hazards.StealthRock = true

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	// Fire/flying takes 4x rock damage: half the maximum on entry.
	want := c.StartingHP - c.StartingHP/2
	if c.HP != want {
		t.Errorf("HP = %d, want %d:\n%s", c.HP, want, out)
	}
}

func TestHeavyDutyBootsSkipHazards(t *testing.T) {
	b := newFixtureBattle()
	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "charizard", Level: 50, MoveKeys: []string{"tackle"},
		ItemID: dex.ItemHeavyDutyBoots,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)
	b.Sides[0].Hazards.StealthRock = true
	b.Sides[0].Hazards.SpikesLayers = 3

	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if c.HP != c.StartingHP {
		t.Errorf("HP = %d, want untouched %d", c.HP, c.StartingHP)
	}
}

func TestGroundedPoisonTypeAbsorbsToxicSpikes(t *testing.T) {
	b := newFixtureBattle()
	c := rosterCombatant(t, b, 0, "bulbasaur")
	b.Sides[0].Hazards.ToxicSpikesLayers = 2

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	if b.Sides[0].Hazards.ToxicSpikesLayers != 0 {
		t.Errorf("toxic spikes layers = %d, want 0", b.Sides[0].Hazards.ToxicSpikesLayers)
	}
	if c.Status != dex.StatusNone {
		t.Errorf("status = %v, want none for the absorber:\n%s", c.Status, out)
	}
}

func TestToxicSpikesPoisonOnEntry(t *testing.T) {
	b := newFixtureBattle()
	c := rosterCombatant(t, b, 0, "garchomp")
	b.Sides[0].Hazards.ToxicSpikesLayers = 2

	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if c.Status != dex.StatusBadPoison {
		t.Errorf("status = %v, want bad poison from two layers", c.Status)
	}
}

func TestIntimidateLowersAttack(t *testing.T) {
	b := newFixtureBattle()
	opp := testCombatant("opp")
	opp.side = 1
	b.Sides[1].Active = opp

	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "garchomp", Level: 50, MoveKeys: []string{"tackle"},
		AbilityKey: dex.AbilityIntimidate,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if opp.Stages[dex.StatAttack] != -1 {
		t.Errorf("opposing attack stage = %d, want -1:\n%s", opp.Stages[dex.StatAttack], out)
	}
}

func TestPastelVeilCuresBenchPoison(t *testing.T) {
	b := newFixtureBattle()
	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "garchomp", Level: 50, MoveKeys: []string{"tackle"},
		AbilityKey: dex.AbilityPastelVeil,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)
	benched := rosterCombatant(t, b, 0, "milotic")
	benched.Status = dex.StatusBadPoison

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if benched.Status != dex.StatusNone {
		t.Errorf("benched status = %q, want cured:\n%s", benched.Status, out)
	}
}

func TestGuardDogTurnsIntimidateAround(t *testing.T) {
	b := newFixtureBattle()
	opp := testCombatant("opp")
	opp.Ability = dex.AbilityGuardDog
	opp.side = 1
	b.Sides[1].Active = opp

	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "garchomp", Level: 50, MoveKeys: []string{"tackle"},
		AbilityKey: dex.AbilityIntimidate,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)

	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if opp.Stages[dex.StatAttack] != 1 {
		t.Errorf("guard dog attack stage = %d, want +1", opp.Stages[dex.StatAttack])
	}
}

func TestDrizzleSetsRain(t *testing.T) {
	b := newFixtureBattle()
	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "milotic", Level: 50, MoveKeys: []string{"water-gun"},
		AbilityKey: dex.AbilityDrizzle,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	if b.Weather != WeatherRain {
		t.Errorf("weather = %v, want rain:\n%s", b.Weather, out)
	}
}

func TestIllusionTakesBenchmateName(t *testing.T) {
	b := newFixtureBattle()
	zoroark := rosterCombatant(t, b, 0, "zoroark")
	rosterCombatant(t, b, 0, "garchomp")

	out, err := b.SendOut(0, 0)
	if err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	if zoroark.IllusionOf != "garchomp" {
		t.Fatalf("IllusionOf = %q, want garchomp", zoroark.IllusionOf)
	}
	if !strings.Contains(out, "Go! Garchomp!") {
		t.Errorf("entry must use the masked name:\n%s", out)
	}
	if zoroark.Name() != "Garchomp" {
		t.Errorf("Name() = %q, want the masked name", zoroark.Name())
	}
}

func TestTraceCopiesOpposingAbility(t *testing.T) {
	b := newFixtureBattle()
	opp := testCombatant("opp")
	opp.Ability = dex.AbilityIntimidate
	opp.side = 1
	b.Sides[1].Active = opp

	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "milotic", Level: 50, MoveKeys: []string{"water-gun"},
		AbilityKey: dex.AbilityTrace,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)

	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	if c.Ability != dex.AbilityIntimidate {
		t.Fatalf("ability = %q, want the traced intimidate", c.Ability)
	}
	// The traced ability fires its own send-out branch exactly once.
	if opp.Stages[dex.StatAttack] != -1 {
		t.Errorf("opposing attack stage = %d, want -1", opp.Stages[dex.StatAttack])
	}
}

func TestRemoveResetsVolatilesButKeepsStatus(t *testing.T) {
	b := newFixtureBattle()
	c := rosterCombatant(t, b, 0, "garchomp")
	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	c.Stages[dex.StatAttack] = 3
	c.Confusion.Set(3)
	c.Status = dex.StatusBurn
	c.HP = c.StartingHP / 2

	if _, err := b.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if c.Stages[dex.StatAttack] != 0 {
		t.Error("stages must reset on switch-out")
	}
	if c.Confusion.Active() {
		t.Error("confusion must clear on switch-out")
	}
	if c.Status != dex.StatusBurn {
		t.Error("non-volatile status must survive the switch")
	}
	if c.HP != c.StartingHP/2 {
		t.Error("HP must survive the switch")
	}
}

func TestNaturalCureHealsOnSwitch(t *testing.T) {
	b := newFixtureBattle()
	c, err := NewCombatant(b.Catalog, RosterEntry{
		SpeciesKey: "milotic", Level: 50, MoveKeys: []string{"recover"},
		AbilityKey: dex.AbilityNaturalCure,
	})
	if err != nil {
		t.Fatalf("NewCombatant: %v", err)
	}
	b.AddToBench(0, c)
	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}
	c.Status = dex.StatusParalysis

	if _, err := b.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if c.Status != dex.StatusNone {
		t.Errorf("status = %v, want cured by natural cure", c.Status)
	}
}

func TestZeroToHeroTransformsOnSwitchOut(t *testing.T) {
	b := newFixtureBattle()
	c := rosterCombatant(t, b, 0, "palafin")
	if _, err := b.SendOut(0, 0); err != nil {
		t.Fatalf("SendOut: %v", err)
	}

	if _, err := b.Remove(0); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if c.SpeciesKey != "palafin-hero" {
		t.Errorf("species key = %q, want the hero form to persist", c.SpeciesKey)
	}
}
