package dex

import (
	stderrors "errors"
	"testing"

	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

func TestDefaultChartMultipliers(t *testing.T) {
	chart := DefaultChart()

	tests := []struct {
		name      string
		attacking Type
		defending Type
		want      int
	}{
		{"water vs fire", TypeWater, TypeFire, 200},
		{"fire vs water", TypeFire, TypeWater, 50},
		{"electric vs ground", TypeElectric, TypeGround, 0},
		{"normal vs ghost", TypeNormal, TypeGhost, 0},
		{"dragon vs fairy", TypeDragon, TypeFairy, 0},
		{"neutral", TypeNormal, TypeNormal, 100},
		{"ice vs dragon", TypeIce, TypeDragon, 200},
		{"fighting vs steel", TypeFighting, TypeSteel, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chart.Multiplier(tt.attacking, tt.defending)
			if got != tt.want {
				t.Errorf("Multiplier(%s, %s) = %d, want %d", tt.attacking, tt.defending, got, tt.want)
			}
		})
	}
}

func TestChartCoversAllPairs(t *testing.T) {
	chart := DefaultChart()
	for atk := Type(0); atk < typeCount; atk++ {
		for def := Type(0); def < typeCount; def++ {
			m := chart.Multiplier(atk, def)
			if m != 0 && m != 50 && m != 100 && m != 200 {
				t.Fatalf("Multiplier(%s, %s) = %d, not a chart value", atk, def, m)
			}
		}
	}
}

func TestNatureMultiplier(t *testing.T) {
	adamant, ok := NatureByKey("adamant")
	if !ok {
		t.Fatal("adamant nature missing")
	}
	if got := adamant.Multiplier(StatAttack); got != 1.1 {
		t.Errorf("adamant attack multiplier = %v, want 1.1", got)
	}
	if got := adamant.Multiplier(StatSpAttack); got != 0.9 {
		t.Errorf("adamant sp. attack multiplier = %v, want 0.9", got)
	}
	if got := adamant.Multiplier(StatHP); got != 1.0 {
		t.Errorf("natures must not modify HP, got %v", got)
	}
	if got := NeutralNature.Multiplier(StatSpeed); got != 1.0 {
		t.Errorf("neutral nature speed multiplier = %v, want 1", got)
	}
}

func TestFixtureLookups(t *testing.T) {
	catalog := Fixture()

	s, err := catalog.SpeciesByKey("mimikyu-busted")
	if err != nil {
		t.Fatalf("species lookup: %v", err)
	}
	if !s.HasType(TypeGhost) {
		t.Fatal("mimikyu-busted should keep its ghost typing")
	}

	m, err := catalog.MoveByKey("freeze-dry")
	if err != nil {
		t.Fatalf("move lookup: %v", err)
	}
	if m.Effect != EffectAlwaysSuperVsWater {
		t.Fatalf("freeze-dry effect = %q", m.Effect)
	}

	i, err := catalog.ItemByID(ItemFocusSash)
	if err != nil {
		t.Fatalf("item lookup: %v", err)
	}
	if !i.ConsumedOnUse {
		t.Fatal("focus sash should be single-use")
	}
}

func TestMissingEntriesSurfaceCodes(t *testing.T) {
	catalog := Fixture()

	_, err := catalog.SpeciesByKey("missingno")
	if !stderrors.Is(err, errors.New(errors.CodeSpeciesNotFound, "")) {
		t.Fatalf("expected %s, got %v", errors.CodeSpeciesNotFound, err)
	}

	_, err = catalog.MoveByKey("splash-dance")
	if !stderrors.Is(err, errors.New(errors.CodeMoveNotFound, "")) {
		t.Fatalf("expected %s, got %v", errors.CodeMoveNotFound, err)
	}

	_, err = catalog.ItemByID("unobtanium-orb")
	if !stderrors.Is(err, errors.New(errors.CodeItemNotFound, "")) {
		t.Fatalf("expected %s, got %v", errors.CodeItemNotFound, err)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"mr-mime", "Mr Mime"},
		{"freeze-dry", "Freeze Dry"},
		{"pikachu", "Pikachu"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.key); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestBaseStatPanicsOnStages(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for accuracy base stat")
		}
	}()

	fixtureSpecies[0].BaseStat(StatAccuracy)
}
