package dex

// Ability identifies an ability in the reference catalog. The battle
// dispatcher switches over these identities per trigger event.
type Ability string

// AbilityNone marks an empty or suppressed ability slot.
const AbilityNone Ability = ""

// Species is the read-only reference record for one species or form.
// Alternate forms (busted disguises, hero forms, no-ice forms) are separate
// records; a form change swaps the species key used for base-stat lookup.
type Species struct {
	Key       string
	BaseStats [6]int // indexed by Stat for HP through Speed
	Types     []Type
	Abilities []Ability
	WeightKg  float64
	Evolvable bool
}

// BaseStat returns the base value for one of the six permanent stats.
// Accuracy and evasion have no base stat; asking for one is a programming
// error.
func (s Species) BaseStat(stat Stat) int {
	if stat > StatSpeed {
		panic("dex: " + stat.String() + " has no base stat")
	}
	return s.BaseStats[stat]
}

// HasType reports whether the species' reference type set includes t.
func (s Species) HasType(t Type) bool {
	for _, st := range s.Types {
		if st == t {
			return true
		}
	}
	return false
}
