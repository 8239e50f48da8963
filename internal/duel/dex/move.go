package dex

// DamageClass partitions moves into the two damaging kinds and status moves.
type DamageClass uint8

const (
	ClassPhysical DamageClass = iota
	ClassSpecial
	ClassStatus
)

func (c DamageClass) String() string {
	switch c {
	case ClassPhysical:
		return "physical"
	case ClassSpecial:
		return "special"
	case ClassStatus:
		return "status"
	}
	panic("dex: unknown damage class")
}

// MoveEffect is the effect code a move template carries. Most moves are
// EffectNone and resolve through the plain damage pipeline; the rest are
// dispatched by the engine.
type MoveEffect string

const (
	EffectNone MoveEffect = ""

	// EffectAlwaysSuperVsWater hits water-types super-effectively
	// regardless of the chart (freeze-dry).
	EffectAlwaysSuperVsWater MoveEffect = "always-super-vs-water"
	// EffectHitsAirborne ignores the flying-type chart entry against an
	// airborne defender and grounds it (thousand-arrows).
	EffectHitsAirborne MoveEffect = "hits-airborne"

	EffectSubstitute MoveEffect = "substitute"
	EffectEndure     MoveEffect = "endure"
	EffectBatonPass  MoveEffect = "baton-pass"
	EffectShedTail   MoveEffect = "shed-tail"
	EffectToxic      MoveEffect = "toxic"
	EffectWillOWisp  MoveEffect = "will-o-wisp"
	EffectThunderW   MoveEffect = "thunder-wave"
	EffectHypnosis   MoveEffect = "hypnosis"
	EffectYawn       MoveEffect = "yawn"
	EffectConfuse    MoveEffect = "confuse"
	EffectTaunt      MoveEffect = "taunt"
	EffectDisable    MoveEffect = "disable"
	EffectEncore     MoveEffect = "encore"
	EffectLeechSeed  MoveEffect = "leech-seed"
	EffectCurse      MoveEffect = "curse"
	EffectBind       MoveEffect = "bind"
	EffectRecover    MoveEffect = "recover"
	EffectIdentify   MoveEffect = "identify"
	EffectInfatuate  MoveEffect = "infatuate"
	EffectIngrain    MoveEffect = "ingrain"
	EffectAquaRing   MoveEffect = "aqua-ring"
	EffectDestinyB   MoveEffect = "destiny-bond"
)

// StatChangeTarget says whose stages a move's stat changes touch.
type StatChangeTarget uint8

const (
	ChangeTargetSelf StatChangeTarget = iota
	ChangeTargetOpponent
)

// StatChange is one stage delta a move can apply, with an activation chance
// in percent (0 means always).
type StatChange struct {
	Stat   Stat
	Delta  int
	Target StatChangeTarget
	Chance int
}

// Move is the read-only move template from the catalog. Battle-scoped PP
// lives on the combatant's copy, not here.
type Move struct {
	Key      string
	Effect   MoveEffect
	Type     Type
	Class    DamageClass
	Power    *int // nil means variable, computed elsewhere
	Accuracy *int // nil means the move cannot miss
	PP       int
	Priority int

	MakesContact           bool
	IsSoundBased           bool
	IsAffectedBySubstitute bool
	IsWind                 bool

	// DrainPercent heals the attacker this share of dealt damage;
	// negative values are recoil.
	DrainPercent int
	// SecondaryStatus is a non-volatile status inflicted with
	// SecondaryChance percent probability.
	SecondaryStatus StatusCondition
	SecondaryChance int
	StatChanges     []StatChange
	CritRateBonus   int
}

// IsDamaging reports whether the move resolves through the damage formula.
func (m Move) IsDamaging() bool {
	return m.Class != ClassStatus
}
